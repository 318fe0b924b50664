package booking

import (
	"context"

	bookingRepo "fixly/database/repository/booking"
	providerRepo "fixly/database/repository/provider"
	serviceRepo "fixly/database/repository/service"
	userRepo "fixly/database/repository/user"
	"fixly/models"
	"fixly/services/notification"
)

// BookingService owns the booking lifecycle: creation, status transitions
// with actor authorization, and the role-scoped query surface.
type BookingService interface {
	// Create records a new pending booking for the customer and notifies
	// the provider, if one was referenced.
	Create(ctx context.Context, customerID string, input models.CreateBookingInput) (*models.BookingDetail, error)
	// Transition moves a booking to targetStatus if the actor is related
	// to the booking and the transition table allows it.
	Transition(ctx context.Context, bookingID, actorID, targetStatus string) (*models.BookingDetail, error)
	// Cancel is Transition restricted to cancellable source statuses.
	Cancel(ctx context.Context, bookingID, actorID string) (*models.BookingDetail, error)
	// ListMine returns the actor's bookings scoped by role, newest first.
	ListMine(ctx context.Context, actorID, actorRole string) ([]models.BookingDetail, error)
	// GetOne returns one booking if the actor is its customer or its
	// provider's owner.
	GetOne(ctx context.Context, bookingID, actorID string) (*models.BookingDetail, error)
}

// ReminderScheduler queues appointment reminders for a confirmed booking.
type ReminderScheduler interface {
	ScheduleBookingReminders(booking *models.Booking) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	UserRepo     userRepo.UserRepository
	ServiceRepo  serviceRepo.ServiceRepository
	Notifier     notification.Channel
	Reminders    ReminderScheduler // optional
}
