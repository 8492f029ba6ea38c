package commands

import (
	"context"
)

// ReleaseInvoiceCommandHandler moves REVIEW + RE_INVOICED invoices back to PENDING.
type ReleaseInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

func NewReleaseInvoiceCommandHandler(uowFactory InvoiceUoWFactory) ReleaseInvoiceCommandHandler {
	return ReleaseInvoiceCommandHandler{uowFactory: uowFactory}
}

func (h ReleaseInvoiceCommandHandler) Handle(ctx context.Context, command ReleaseInvoiceCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().RequireBilling("release invoices"); err != nil {
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

	if err = inv.Release(now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
