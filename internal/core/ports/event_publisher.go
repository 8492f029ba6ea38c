package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
)

// InvoicesChannel is the logical channel every invoice change is published on.
const InvoicesChannel = "invoices"

// InvoiceEvent is a change notification carrying the full current invoice.
type InvoiceEvent struct {
	Type       invoice.EventType
	OccurredAt time.Time
	Invoice    invoice.Snapshot
}

// EventPublisher delivers events to subscribers of a channel. Delivery is
// at-most-once: subscribers that are slow or disconnected miss events.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, event InvoiceEvent) error
}

// EventSubscriber hands out live event streams. The returned cancel function
// releases the subscription and closes the channel.
type EventSubscriber interface {
	Subscribe(channel string) (<-chan InvoiceEvent, func())
}
