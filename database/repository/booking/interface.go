package bookingRepo

import (
	"errors"

	"fixly/models"
)

var (
	// ErrNotFound is returned when no booking matches the lookup.
	ErrNotFound = errors.New("booking not found")
	// ErrStaleStatus is returned by UpdateStatus when the booking's
	// persisted status no longer matches the expected one, i.e. a
	// concurrent transition won.
	ErrStaleStatus = errors.New("booking status changed concurrently")
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// ListByCustomer retrieves a customer's bookings, newest first.
	ListByCustomer(customerID string) ([]models.Booking, error)
	// ListByProvider retrieves a provider's bookings, newest first.
	ListByProvider(providerID string) ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// UpdateStatus sets a booking's status, guarded by the status the
	// caller read. Returns ErrStaleStatus if the guard no longer holds.
	UpdateStatus(id, newStatus, expectedStatus string) error
}
