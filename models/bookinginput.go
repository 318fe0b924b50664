package models

// CreateBookingInput is the client payload for creating a booking. Provider
// and service are references the caller must supply; a missing service is
// tolerated and simply surfaces as an unresolved summary downstream. Price
// is trusted as sent.
type CreateBookingInput struct {
	Provider      string   `json:"provider"`
	Service       string   `json:"service"`
	ScheduledDate string   `json:"scheduledDate" binding:"required"`
	ScheduledTime string   `json:"scheduledTime" binding:"required"`
	Duration      int      `json:"duration"`
	Location      Location `json:"location"`
	Price         float64  `json:"price"`
	Description   string   `json:"description"`
}

// TransitionInput is the client payload for a status change request.
type TransitionInput struct {
	Status string `json:"status" binding:"required"`
}
