package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
)

// ImportInvoiceResult is returned to the importing system.
type ImportInvoiceResult struct {
	ID          kernel.UUID
	InvoiceNo   string
	TotalAmount kernel.Money
}

// ImportInvoiceCommandHandler creates PENDING invoices. invoice_no is the
// idempotency key: a second import of the same number fails with
// *errs.AlreadyExistsError and leaves the stored invoice as it was.
type ImportInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

func NewImportInvoiceCommandHandler(uowFactory InvoiceUoWFactory) ImportInvoiceCommandHandler {
	return ImportInvoiceCommandHandler{uowFactory: uowFactory}
}

// Handle checks that the actor may import, builds the aggregate and stores it.
func (h ImportInvoiceCommandHandler) Handle(ctx context.Context, command ImportInvoiceCommand) (ImportInvoiceResult, error) {
	if err := command.Validate(); err != nil {
		return ImportInvoiceResult{}, err
	}
	if err := command.Actor().RequireBilling("import invoices"); err != nil {
		return ImportInvoiceResult{}, err
	}

	inv, err := invoice.NewInvoice(command.InvoiceID(), command.Header(), command.Items(), now())
	if err != nil {
		return ImportInvoiceResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ImportInvoiceResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return ImportInvoiceResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ImportInvoiceResult{}, err
	}

	return ImportInvoiceResult{
		ID:          inv.ID(),
		InvoiceNo:   inv.InvoiceNo(),
		TotalAmount: inv.TotalAmount(),
	}, nil
}
