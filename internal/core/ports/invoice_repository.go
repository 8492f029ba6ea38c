// Package ports defines the contracts between the fulfillment core and its
// infrastructure: repositories, the unit of work, the worker directory and the
// event publisher.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
)

// InvoiceRepository defines the persistence contract for invoice aggregates,
// including their items and return history.
type InvoiceRepository interface {
	// Add persists a new invoice. A duplicate invoice_no yields *errs.AlreadyExistsError
	// and leaves the stored invoice untouched.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice, replacing its items and
	// upserting its returns.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// GetByNo loads an invoice by its invoice number without locking it.
	// Returns *errs.ObjectNotFoundError when it does not exist.
	GetByNo(ctx context.Context, invoiceNo string) (*invoice.Invoice, error)

	// GetByNoForUpdate loads an invoice and locks its row until the surrounding
	// transaction ends, serializing every transition of the same invoice.
	GetByNoForUpdate(ctx context.Context, invoiceNo string) (*invoice.Invoice, error)
}
