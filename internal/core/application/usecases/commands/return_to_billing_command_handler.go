package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/domain/services"
)

// ReturnToBillingResult describes the return that was recorded.
type ReturnToBillingResult struct {
	ReturnID          kernel.UUID
	InvoiceNo         string
	Section           invoice.Section
	CancelledSessions []kernel.UUID
}

// ReturnToBillingCommandHandler moves an invoice into REVIEW, records the return
// and cancels the invoice's open picking and packing sessions, all in one transaction.
type ReturnToBillingCommandHandler struct {
	uowFactory UoWFactory
	returner   services.ReturnToBilling
}

func NewReturnToBillingCommandHandler(uowFactory UoWFactory) ReturnToBillingCommandHandler {
	return ReturnToBillingCommandHandler{
		uowFactory: uowFactory,
		returner:   services.NewReturnToBilling(),
	}
}

func (h ReturnToBillingCommandHandler) Handle(ctx context.Context, command ReturnToBillingCommand) (ReturnToBillingResult, error) {
	if err := command.Validate(); err != nil {
		return ReturnToBillingResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReturnToBillingResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoices := uow.InvoiceRepository()
	sessions := uow.SessionRepository()

	inv, err := invoices.GetByNoForUpdate(ctx, command.InvoiceNo())
	if err != nil {
		return ReturnToBillingResult{}, err
	}

	var active []*session.Session
	for _, stage := range []session.Stage{session.StagePicking, session.StagePacking} {
		s, lookupErr := optional(sessions.GetActiveByInvoiceStage(ctx, inv.ID(), stage))
		if lookupErr != nil {
			return ReturnToBillingResult{}, lookupErr
		}
		if s != nil {
			active = append(active, s)
		}
	}

	ret, cancelled, err := h.returner.Return(inv, active, command.ReturnID(), command.Reason(), command.ReturnedBy(), now())
	if err != nil {
		return ReturnToBillingResult{}, err
	}

	result := ReturnToBillingResult{
		ReturnID:  ret.ID(),
		InvoiceNo: inv.InvoiceNo(),
		Section:   ret.Section(),
	}
	for _, s := range cancelled {
		if err = sessions.Update(ctx, s); err != nil {
			return ReturnToBillingResult{}, err
		}
		result.CancelledSessions = append(result.CancelledSessions, s.ID())
	}

	if err = invoices.Update(ctx, inv); err != nil {
		return ReturnToBillingResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReturnToBillingResult{}, err
	}

	return result, nil
}
