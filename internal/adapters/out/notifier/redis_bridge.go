package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultChannelPrefix namespaces the Redis channels used by the bridge.
const DefaultChannelPrefix = "fulfillment:events:"

// RedisBridge publishes events through Redis pub/sub and relays every message
// received from Redis into the local hub. Subscribers keep using the hub.
type RedisBridge struct {
	client redis.UniversalClient
	hub    *Hub
	prefix string
	logger *slog.Logger
}

func NewRedisBridge(client redis.UniversalClient, hub *Hub, logger *slog.Logger) *RedisBridge {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisBridge{
		client: client,
		hub:    hub,
		prefix: DefaultChannelPrefix,
		logger: logger.With("component", "RedisBridge"),
	}
}

// Publish sends event to the Redis channel backing channel. Local subscribers
// receive it once Run relays it back.
func (b *RedisBridge) Publish(ctx context.Context, channel string, event ports.InvoiceEvent) error {
	payload, err := Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err = b.client.Publish(ctx, b.prefix+channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (b *RedisBridge) Subscribe(channel string) (<-chan ports.InvoiceEvent, func()) {
	return b.hub.Subscribe(channel)
}

// Run relays messages from the Redis channels into the hub until ctx is done.
// ready, when not nil, is closed once the Redis subscription is confirmed.
func (b *RedisBridge) Run(ctx context.Context, ready chan<- struct{}, channels ...string) error {
	names := make([]string, 0, len(channels))
	for _, c := range channels {
		names = append(names, b.prefix+c)
	}

	pubsub := b.client.Subscribe(ctx, names...)
	defer func() {
		_ = pubsub.Close()
	}()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %v: %w", names, err)
	}
	if ready != nil {
		close(ready)
	}
	b.logger.Info("relaying redis events", "channels", names)

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			event, err := Unmarshal([]byte(msg.Payload))
			if err != nil {
				b.logger.Warn("discarding malformed event", "channel", msg.Channel, "error", err)
				continue
			}
			_ = b.hub.Publish(ctx, msg.Channel[len(b.prefix):], event)
		}
	}
}
