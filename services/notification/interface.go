package notification

import (
	"context"
	"time"

	"fixly/utils"

	"go.uber.org/zap"
)

// Event names pushed over the channel. The realtime gateway forwards them
// verbatim to connected clients.
const (
	EventNewBooking     = "new-booking"
	EventBookingUpdated = "booking-updated"
	EventReminder       = "booking-reminder"
)

// Channel pushes an event to one recipient's channel. Delivery is
// best-effort; callers treat every publish as fire-and-forget.
type Channel interface {
	Publish(ctx context.Context, recipientID, event string, payload interface{}) error
}

// Dispatch publishes asynchronously with its own timeout and only logs
// failure. No booking or review operation ever blocks on, or fails
// because of, a notification.
func Dispatch(ch Channel, recipientID, event string, payload interface{}) {
	if ch == nil || recipientID == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := ch.Publish(ctx, recipientID, event, payload); err != nil {
			utils.GetLogger().Warn("notification dispatch failed",
				zap.String("event", event),
				zap.String("recipient", recipientID),
				zap.Error(err))
		}
	}()
}
