package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
)

// WorkerAccount is the directory entry of a user who can be scanned at a station.
type WorkerAccount struct {
	ID    kernel.UUID
	Email kernel.Email
	Name  string
	Role  access.Role
}

// WorkerDirectory resolves scanned e-mails to known workers. User administration
// owns the data; this service only reads it.
type WorkerDirectory interface {
	// GetActiveWorker returns the active account registered under email, or
	// *errs.ObjectNotFoundError when the address is unknown or the account is disabled.
	GetActiveWorker(ctx context.Context, email kernel.Email) (WorkerAccount, error)
}
