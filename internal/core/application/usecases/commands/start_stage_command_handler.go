package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// StageResult reports the state after a stage transition.
type StageResult struct {
	SessionID     kernel.UUID
	InvoiceNo     string
	Stage         session.Stage
	SessionStatus session.Status
	InvoiceStatus invoice.Status
}

// StartStageCommandHandler opens a stage session and advances the invoice in one
// transaction. The invoice row is locked first, so concurrent starts on the same
// invoice are serialized; concurrent starts by the same worker on different
// invoices are caught by the session store's uniqueness constraints.
type StartStageCommandHandler struct {
	uowFactory UoWFactory
	workers    ports.WorkerDirectory
	workflow   services.FulfillmentWorkflow
}

func NewStartStageCommandHandler(uowFactory UoWFactory, workers ports.WorkerDirectory) StartStageCommandHandler {
	return StartStageCommandHandler{
		uowFactory: uowFactory,
		workers:    workers,
		workflow:   services.NewFulfillmentWorkflow(),
	}
}

// Handle resolves the worker, locks the invoice, checks the session registry and
// persists the new session together with the invoice.
func (h StartStageCommandHandler) Handle(ctx context.Context, command StartStageCommand) (StageResult, error) {
	if err := command.Validate(); err != nil {
		return StageResult{}, err
	}

	var worker *services.StageWorker
	if command.HasWorker() {
		account, err := h.workers.GetActiveWorker(ctx, command.Worker())
		if err != nil {
			return StageResult{}, err
		}
		worker = &services.StageWorker{
			Worker: session.Worker{Email: account.Email, Name: account.Name},
			Role:   account.Role,
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

	stageActive, err := optional(sessions.GetActiveByInvoiceStage(ctx, inv.ID(), command.Stage()))
	if err != nil {
		return StageResult{}, err
	}

	var workerActive *session.Session
	if worker != nil {
		if workerActive, err = optional(sessions.GetActiveByWorker(ctx, worker.Email)); err != nil {
			return StageResult{}, err
		}
	}

	s, err := h.workflow.Start(services.StartRequest{
		SessionID:    command.SessionID(),
		Invoice:      inv,
		Stage:        command.Stage(),
		Worker:       worker,
		Delivery:     command.Delivery(),
		Notes:        command.Notes(),
		StageActive:  stageActive,
		WorkerActive: workerActive,
	}, now())
	if err != nil {
		return StageResult{}, err
	}

	if err = sessions.Add(ctx, s); err != nil {
		return StageResult{}, err
	}

	if err = invoices.Update(ctx, inv); err != nil {
		return StageResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return StageResult{}, err
	}

	return StageResult{
		SessionID:     s.ID(),
		InvoiceNo:     inv.InvoiceNo(),
		Stage:         s.Stage(),
		SessionStatus: s.Status(),
		InvoiceStatus: inv.Status(),
	}, nil
}
