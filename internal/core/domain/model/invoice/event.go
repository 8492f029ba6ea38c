package invoice

import "time"

// EventType names a change notification published on the invoices channel.
type EventType string

const (
	EventInvoiceCreated       EventType = "invoice_created"
	EventInvoiceStatusChanged EventType = "invoice_status_changed"
	EventInvoiceReview        EventType = "invoice_review"
	EventInvoiceUpdated       EventType = "invoice_updated"
)

// Event is recorded by the aggregate on every successful mutation and drained by
// the unit of work once the surrounding transaction has committed.
type Event struct {
	Type       EventType
	OccurredAt time.Time
}
