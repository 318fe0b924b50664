package reviewRepo

import (
	"errors"

	"fixly/models"
)

var (
	// ErrNotFound is returned when no review matches the lookup.
	ErrNotFound = errors.New("review not found")
	// ErrDuplicate is returned when a review already exists for the booking.
	ErrDuplicate = errors.New("review already exists for this booking")
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// GetByID retrieves a review by its unique ID.
	GetByID(id string) (*models.Review, error)
	// GetByBookingID retrieves the review attached to a booking, if any.
	GetByBookingID(bookingID string) (*models.Review, error)
	// ListByProvider retrieves all reviews for a provider, newest first.
	ListByProvider(providerID string) ([]models.Review, error)
	// Create inserts a new review. Returns ErrDuplicate when the booking
	// already has one.
	Create(review *models.Review) error
	// SetResponse attaches the provider's single response to a review.
	SetResponse(id string, response *models.ReviewResponse) error
}
