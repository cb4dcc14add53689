package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PublisherInterface appends entity lifecycle events to a stream
type PublisherInterface interface {
	Publish(ctx context.Context, event EntityActionEvent) error
}

// StreamPublisher publishes events to a Redis stream
type StreamPublisher struct {
	client *redis.Client
	stream string
}

// NewStreamPublisher creates a publisher writing to the given stream
func NewStreamPublisher(client *redis.Client, stream string) *StreamPublisher {
	return &StreamPublisher{
		client: client,
		stream: stream,
	}
}

// Publish appends the event to the stream
func (p *StreamPublisher) Publish(ctx context.Context, event EntityActionEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"event_type": event.EventType,
			"event":      eventJSON,
		},
	}

	if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
