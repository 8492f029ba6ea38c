package commands

import (
	"context"
)

// CorrectInvoiceCommandHandler applies a correction to a returned invoice and
// resolves its open return. The invoice stays in REVIEW until it is released.
type CorrectInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

func NewCorrectInvoiceCommandHandler(uowFactory InvoiceUoWFactory) CorrectInvoiceCommandHandler {
	return CorrectInvoiceCommandHandler{uowFactory: uowFactory}
}

func (h CorrectInvoiceCommandHandler) Handle(ctx context.Context, command CorrectInvoiceCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().RequireBilling("correct invoices"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InvoiceRepository()

	inv, err := repo.GetByNoForUpdate(ctx, command.InvoiceNo())
	if err != nil {
		return err
	}

	if err = inv.Correct(command.Correction(), command.Actor().DisplayName(), now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
