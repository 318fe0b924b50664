package models

import "time"

// Booking statuses. A booking starts pending and only ever changes through
// the lifecycle engine's transition table.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Booking represents one scheduled service engagement. Bookings are never
// deleted; cancellation is a terminal status.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	CustomerID    string    `bson:"customerId" json:"customerId"`
	ProviderID    string    `bson:"providerId,omitempty" json:"providerId,omitempty"`
	ServiceID     string    `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	Status        string    `bson:"status" json:"status"`
	ScheduledDate string    `bson:"scheduledDate" json:"scheduledDate"` // "YYYY-MM-DD"
	ScheduledTime string    `bson:"scheduledTime" json:"scheduledTime"` // "HH:MM"
	Duration      int       `bson:"duration" json:"duration"`           // minutes
	Location      Location  `bson:"location" json:"location"`
	Price         float64   `bson:"price" json:"price"` // caller-supplied, not re-derived
	Description   string    `bson:"description" json:"description,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingDetail is a booking with its references resolved to summaries.
// Provider and Service stay nil when the booking carries no reference or
// the referenced record is gone.
type BookingDetail struct {
	Booking  `bson:",inline"`
	Customer UserSummary     `json:"customer"`
	Provider *ProviderDetail `json:"provider,omitempty"`
	Service  *ServiceSummary `json:"service,omitempty"`
}

// BookingSummary is the reduced booking shape embedded in expanded reviews.
type BookingSummary struct {
	ID            string `bson:"id" json:"id"`
	ServiceID     string `bson:"serviceId" json:"serviceId"`
	ScheduledDate string `bson:"scheduledDate" json:"scheduledDate"`
}

// Summary strips a Booking down to the shape embedded in reviews.
func (b *Booking) Summary() BookingSummary {
	return BookingSummary{ID: b.ID, ServiceID: b.ServiceID, ScheduledDate: b.ScheduledDate}
}

// Terminal reports whether status permits no further transitions.
func Terminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}
