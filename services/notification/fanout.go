package notification

import "context"

// FanoutChannel publishes to every configured channel and reports the
// first failure. Channels later in the list still receive the event.
type FanoutChannel struct {
	Channels []Channel
}

// NewFanoutChannel combines channels into one.
func NewFanoutChannel(channels ...Channel) *FanoutChannel {
	return &FanoutChannel{Channels: channels}
}

func (c *FanoutChannel) Publish(ctx context.Context, recipientID, event string, payload interface{}) error {
	var firstErr error
	for _, ch := range c.Channels {
		if ch == nil {
			continue
		}
		if err := ch.Publish(ctx, recipientID, event, payload); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
