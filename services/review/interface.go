package review

import (
	"context"

	bookingRepo "fixly/database/repository/booking"
	providerRepo "fixly/database/repository/provider"
	reviewRepo "fixly/database/repository/review"
	userRepo "fixly/database/repository/user"
	"fixly/models"
)

// ReviewService attaches reviews to completed bookings and keeps the
// provider rating aggregate consistent with the review set.
type ReviewService interface {
	// AttachReview validates the booking relationship and state, stores
	// the review, and recomputes the provider's rating from scratch.
	AttachReview(ctx context.Context, customerID string, input models.CreateReviewInput) (*models.ReviewDetail, error)
	// ListByProvider returns a provider's reviews, newest first.
	ListByProvider(ctx context.Context, providerID string) ([]models.ReviewDetail, error)
	// Respond attaches the owning provider's single response to a review.
	Respond(ctx context.Context, providerUserID, reviewID, comment string) (*models.ReviewDetail, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo         reviewRepo.ReviewRepository
	BookingRepo  bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	UserRepo     userRepo.UserRepository
}
