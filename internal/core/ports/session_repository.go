package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for work sessions.
//
// Storage enforces the registry rules atomically: at most one active session per
// worker and at most one active session per invoice and stage. Add reports a
// violation of either rule as *errs.StateConflictError.
type SessionRepository interface {
	Add(ctx context.Context, s *session.Session) error
	Update(ctx context.Context, s *session.Session) error

	// GetActiveByInvoiceStage returns the open session of stage on the invoice,
	// or *errs.ObjectNotFoundError.
	GetActiveByInvoiceStage(ctx context.Context, invoiceID kernel.UUID, stage session.Stage) (*session.Session, error)

	// GetActiveByWorker returns the worker's open session of any stage,
	// or *errs.ObjectNotFoundError.
	GetActiveByWorker(ctx context.Context, worker kernel.Email) (*session.Session, error)

	// ListActiveStartedBefore returns open sessions started before the given instant, oldest first.
	ListActiveStartedBefore(ctx context.Context, before time.Time) ([]*session.Session, error)
}
