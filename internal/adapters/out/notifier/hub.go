package notifier

import (
	"context"
	"log/slog"
	"sync"

	"fulfillment/internal/core/ports"
)

// DefaultBuffer is the per-subscriber backlog used when NewHub gets a
// non-positive size.
const DefaultBuffer = 16

type subscriber struct {
	ch   chan ports.InvoiceEvent
	once sync.Once
}

// Hub fans events out to the subscribers of a channel inside one process.
// It implements both ports.EventPublisher and ports.EventSubscriber.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*subscriber]struct{}
	buffer      int
	logger      *slog.Logger
}

func NewHub(buffer int, logger *slog.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subscribers: make(map[string]map[*subscriber]struct{}),
		buffer:      buffer,
		logger:      logger.With("component", "NotifierHub"),
	}
}

// Publish hands event to every current subscriber of channel without blocking.
// A subscriber whose buffer is full misses the event.
func (h *Hub) Publish(_ context.Context, channel string, event ports.InvoiceEvent) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[channel] {
		select {
		case sub.ch <- event:
		default:
			h.logger.Debug("subscriber buffer full, event dropped",
				"channel", channel,
				"invoice_no", event.Invoice.InvoiceNo,
				"event", string(event.Type))
		}
	}
	return nil
}

// Subscribe registers a new subscriber on channel. The returned function
// unsubscribes and closes the event channel; it may be called more than once.
func (h *Hub) Subscribe(channel string) (<-chan ports.InvoiceEvent, func()) {
	sub := &subscriber{ch: make(chan ports.InvoiceEvent, h.buffer)}

	h.mu.Lock()
	if h.subscribers[channel] == nil {
		h.subscribers[channel] = make(map[*subscriber]struct{})
	}
	h.subscribers[channel][sub] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		sub.once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers[channel], sub)
			if len(h.subscribers[channel]) == 0 {
				delete(h.subscribers, channel)
			}
			h.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Subscribers reports how many subscribers channel currently has.
func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[channel])
}
