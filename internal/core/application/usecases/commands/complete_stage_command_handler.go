package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// CompleteStageCommandHandler closes a stage session and advances the invoice.
type CompleteStageCommandHandler struct {
	uowFactory UoWFactory
	workers    ports.WorkerDirectory
	workflow   services.FulfillmentWorkflow
}

func NewCompleteStageCommandHandler(uowFactory UoWFactory, workers ports.WorkerDirectory) CompleteStageCommandHandler {
	return CompleteStageCommandHandler{
		uowFactory: uowFactory,
		workers:    workers,
		workflow:   services.NewFulfillmentWorkflow(),
	}
}

// Handle verifies the scanned worker exists, locks the invoice, and completes the
// invoice's active session of the stage. A mismatching worker leaves both the
// session and the invoice untouched.
func (h CompleteStageCommandHandler) Handle(ctx context.Context, command CompleteStageCommand) (StageResult, error) {
	if err := command.Validate(); err != nil {
		return StageResult{}, err
	}

	if !command.Worker().IsZero() {
		if _, err := h.workers.GetActiveWorker(ctx, command.Worker()); err != nil {
			return StageResult{}, err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return StageResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoices := uow.InvoiceRepository()
	sessions := uow.SessionRepository()

	inv, err := invoices.GetByNoForUpdate(ctx, command.InvoiceNo())
	if err != nil {
		return StageResult{}, err
	}

	active, err := optional(sessions.GetActiveByInvoiceStage(ctx, inv.ID(), command.Stage()))
	if err != nil {
		return StageResult{}, err
	}

	if command.Stage() == session.StageDelivery {
		_, err = h.workflow.CompleteDelivery(inv, active, command.Worker(), command.Outcome(), command.Notes(), now())
	} else {
		err = h.workflow.Complete(inv, command.Stage(), active, command.Worker(), command.Notes(), now())
	}
	if err != nil {
		return StageResult{}, err
	}

	if err = sessions.Update(ctx, active); err != nil {
		return StageResult{}, err
	}

	if err = invoices.Update(ctx, inv); err != nil {
		return StageResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return StageResult{}, err
	}

	return StageResult{
		SessionID:     active.ID(),
		InvoiceNo:     inv.InvoiceNo(),
		Stage:         active.Stage(),
		SessionStatus: active.Status(),
		InvoiceStatus: inv.Status(),
	}, nil
}
