package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
)

// TokenResolver maps a recipient id to their FCM device token. An empty
// token means the recipient has no registered device.
type TokenResolver func(ctx context.Context, recipientID string) (string, error)

// FCMChannel mirrors events as mobile push notifications for recipients
// with a registered device token.
type FCMChannel struct {
	Client  *messaging.Client
	Resolve TokenResolver
}

// NewFCMChannel wraps an FCM messaging client as a notification channel.
func NewFCMChannel(client *messaging.Client, resolve TokenResolver) *FCMChannel {
	return &FCMChannel{Client: client, Resolve: resolve}
}

var pushText = map[string][2]string{
	EventNewBooking:     {"New booking request", "You have a new booking request."},
	EventBookingUpdated: {"Booking updated", "One of your bookings changed status."},
	EventReminder:       {"Upcoming appointment", "You have an appointment coming up."},
}

// Publish sends a push for the event. Recipients without a token are
// skipped silently.
func (c *FCMChannel) Publish(ctx context.Context, recipientID, event string, payload interface{}) error {
	if c.Client == nil {
		return nil
	}
	token, err := c.Resolve(ctx, recipientID)
	if err != nil {
		return fmt.Errorf("could not resolve FCM token for %s: %w", recipientID, err)
	}
	if token == "" {
		return nil
	}

	text, ok := pushText[event]
	if !ok {
		text = [2]string{"Fixly", event}
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: text[0],
			Body:  text[1],
		},
		Data: map[string]string{"event": event},
	}
	if _, err := c.Client.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
