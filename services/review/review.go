package review

import (
	"context"
	"errors"
	"time"

	bookingRepo "fixly/database/repository/booking"
	providerRepo "fixly/database/repository/provider"
	reviewRepo "fixly/database/repository/review"
	"fixly/models"
	"fixly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AttachReview runs the ordered preconditions, persists the review and
// recomputes the provider aggregate.
func (s *DefaultReviewService) AttachReview(ctx context.Context, customerID string, input models.CreateReviewInput) (*models.ReviewDetail, error) {
	b, err := s.BookingRepo.GetByID(input.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			// A booking the customer cannot see reads the same as one
			// that is not theirs.
			return nil, utils.NewServiceError(utils.CodeForbidden, "Not authorized to review this booking")
		}
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
	}
	if b.CustomerID != customerID {
		return nil, utils.NewServiceError(utils.CodeForbidden, "Not authorized to review this booking")
	}

	if b.Status != models.StatusCompleted {
		return nil, utils.NewServiceError(utils.CodeInvalidState, "Can only review completed bookings")
	}

	if input.Rating < 1 || input.Rating > 5 {
		return nil, utils.NewServiceError(utils.CodeValidation, "Rating must be between 1 and 5")
	}

	if _, err := s.Repo.GetByBookingID(b.ID); err == nil {
		return nil, utils.NewServiceError(utils.CodeConflict, "Review already exists for this booking")
	} else if !errors.Is(err, reviewRepo.ErrNotFound) {
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
	}

	now := time.Now().UTC()
	rev := &models.Review{
		ID:         uuid.New().String(),
		BookingID:  b.ID,
		CustomerID: customerID,
		ProviderID: b.ProviderID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(rev); err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicate) {
			return nil, utils.NewServiceError(utils.CodeConflict, "Review already exists for this booking")
		}
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
	}

	if b.ProviderID != "" {
		if err := s.recomputeRating(b.ProviderID); err != nil {
			// The review is stored; the aggregate self-corrects on the
			// next full rescan.
			utils.GetLogger().Warn("rating recompute failed",
				zap.String("providerId", b.ProviderID), zap.Error(err))
		}
	}

	detail := s.expand(rev, b)
	return detail, nil
}

// recomputeRating rescans every review for the provider and writes the
// exact mean. A rescan rather than a running average keeps the invariant
// intact even after prior data corrections.
func (s *DefaultReviewService) recomputeRating(providerID string) error {
	reviews, err := s.Repo.ListByProvider(providerID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return s.ProviderRepo.UpdateRating(providerID, 0, 0)
	}

	var sum float64
	for _, r := range reviews {
		sum += float64(r.Rating)
	}
	return s.ProviderRepo.UpdateRating(providerID, sum/float64(len(reviews)), len(reviews))
}

// ListByProvider returns the provider's reviews expanded for display.
func (s *DefaultReviewService) ListByProvider(ctx context.Context, providerID string) ([]models.ReviewDetail, error) {
	reviews, err := s.Repo.ListByProvider(providerID)
	if err != nil {
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
	}

	details := make([]models.ReviewDetail, 0, len(reviews))
	for i := range reviews {
		details = append(details, *s.expand(&reviews[i], nil))
	}
	return details, nil
}

// Respond attaches the owning provider's response to a review. A review
// holds at most one response.
func (s *DefaultReviewService) Respond(ctx context.Context, providerUserID, reviewID, comment string) (*models.ReviewDetail, error) {
	rev, err := s.Repo.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrNotFound) {
			return nil, utils.NewServiceError(utils.CodeNotFound, "Review not found")
		}
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
	}

	prov, err := s.ProviderRepo.GetByUserID(providerUserID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, utils.NewServiceError(utils.CodeForbidden, "Not authorized to respond to this review")
		}
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
	}
	if rev.ProviderID == "" || prov.ID != rev.ProviderID {
		return nil, utils.NewServiceError(utils.CodeForbidden, "Not authorized to respond to this review")
	}

	if rev.Response != nil {
		return nil, utils.NewServiceError(utils.CodeConflict, "Response already exists for this review")
	}

	response := &models.ReviewResponse{Comment: comment, Date: time.Now().UTC()}
	if err := s.Repo.SetResponse(rev.ID, response); err != nil {
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
	}
	rev.Response = response

	return s.expand(rev, nil), nil
}

// expand resolves the review's customer and booking summaries. The booking
// may be passed in when the caller already fetched it.
func (s *DefaultReviewService) expand(rev *models.Review, b *models.Booking) *models.ReviewDetail {
	detail := &models.ReviewDetail{Review: *rev}

	if customer, err := s.UserRepo.GetByID(rev.CustomerID); err == nil {
		summary := customer.Summary()
		// Reviews are public; keep contact details out of the embed.
		summary.Email = ""
		summary.Phone = ""
		detail.Customer = summary
	}

	if b == nil {
		if fetched, err := s.BookingRepo.GetByID(rev.BookingID); err == nil {
			b = fetched
		}
	}
	if b != nil {
		detail.Booking = b.Summary()
	}

	return detail
}
