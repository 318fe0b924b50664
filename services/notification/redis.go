package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisChannel publishes events to per-recipient pub/sub channels. The
// realtime gateway subscribes to events:<recipientID> and forwards to that
// recipient's open connections, which is how clients get their
// "new-booking" and "booking-updated" pushes.
type RedisChannel struct {
	Client *redis.Client
}

// NewRedisChannel wraps a redis client as a notification channel.
func NewRedisChannel(client *redis.Client) *RedisChannel {
	return &RedisChannel{Client: client}
}

type envelope struct {
	Event     string      `json:"event"`
	Payload   interface{} `json:"payload"`
	EmittedAt time.Time   `json:"emittedAt"`
}

func channelKey(recipientID string) string {
	return "events:" + recipientID
}

// Publish sends one event to the recipient's channel.
func (c *RedisChannel) Publish(ctx context.Context, recipientID, event string, payload interface{}) error {
	body, err := json.Marshal(envelope{Event: event, Payload: payload, EmittedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event, err)
	}
	if err := c.Client.Publish(ctx, channelKey(recipientID), body).Err(); err != nil {
		return fmt.Errorf("failed to publish %s event to %s: %w", event, recipientID, err)
	}
	return nil
}
