package models

import "time"

// ReviewResponse is the provider's single reply to a review.
type ReviewResponse struct {
	Comment string    `bson:"comment" json:"comment"`
	Date    time.Time `bson:"date" json:"date"`
}

// Review is one customer's evaluation of one completed booking. At most one
// review exists per booking.
type Review struct {
	ID         string          `bson:"id" json:"id"`
	BookingID  string          `bson:"bookingId" json:"bookingId"`
	CustomerID string          `bson:"customerId" json:"customerId"`
	ProviderID string          `bson:"providerId" json:"providerId"` // denormalized from booking.provider
	Rating     int             `bson:"rating" json:"rating"`         // 1..5
	Comment    string          `bson:"comment" json:"comment"`
	Response   *ReviewResponse `bson:"response,omitempty" json:"response,omitempty"`
	CreatedAt  time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// ReviewDetail is a review expanded with customer and booking summaries.
type ReviewDetail struct {
	Review   `bson:",inline"`
	Customer UserSummary    `json:"customer"`
	Booking  BookingSummary `json:"booking"`
}

// CreateReviewInput is the client payload for submitting a review.
type CreateReviewInput struct {
	BookingID string `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

// ReviewResponseInput is the client payload for a provider response.
type ReviewResponseInput struct {
	Comment string `json:"comment" binding:"required"`
}
