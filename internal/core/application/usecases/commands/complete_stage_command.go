package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteStageCommandIsNotConstructed = errors.New(
	"CompleteStageCommand must be created via NewCompletePickingCommand, NewCompletePackingCommand or NewCompleteDeliveryCommand",
)

// CompleteStageCommand closes the active session of a stage. The scanned e-mail
// must match the worker who started it.
type CompleteStageCommand struct {
	actor     access.Actor
	invoiceNo string
	stage     session.Stage
	worker    kernel.Email
	outcome   session.Status
	notes     string

	guard guard.ConstructorGuard
}

func NewCompletePickingCommand(actor access.Actor, invoiceNo, userEmail, notes string) (CompleteStageCommand, error) {
	return newWorkerCompleteCommand(actor, session.StagePicking, invoiceNo, userEmail, notes)
}

func NewCompletePackingCommand(actor access.Actor, invoiceNo, userEmail, notes string) (CompleteStageCommand, error) {
	return newWorkerCompleteCommand(actor, session.StagePacking, invoiceNo, userEmail, notes)
}

func newWorkerCompleteCommand(actor access.Actor, stage session.Stage, invoiceNo, userEmail, notes string) (CompleteStageCommand, error) {
	email, emailErr := kernel.NewEmail(userEmail)
	if err := errors.Join(requireInvoiceNo(invoiceNo), emailErr); err != nil {
		return CompleteStageCommand{}, err
	}
	return CompleteStageCommand{
		actor:     actor,
		invoiceNo: strings.TrimSpace(invoiceNo),
		stage:     stage,
		worker:    email,
		outcome:   stageDoneStatus(stage),
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewCompleteDeliveryCommand builds a complete-delivery command. status is
// DELIVERED or IN_TRANSIT; userEmail may be empty for COURIER deliveries.
func NewCompleteDeliveryCommand(actor access.Actor, invoiceNo, userEmail, status, notes string) (CompleteStageCommand, error) {
	outcome, outcomeErr := session.ParseStatus(status)
	if outcomeErr == nil && outcome != session.StatusDelivered && outcome != session.StatusInTransit {
		outcomeErr = errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a delivery outcome", outcome))
	}

	var email kernel.Email
	var emailErr error
	if strings.TrimSpace(userEmail) != "" {
		email, emailErr = kernel.NewEmail(userEmail)
	}

	if err := errors.Join(requireInvoiceNo(invoiceNo), outcomeErr, emailErr); err != nil {
		return CompleteStageCommand{}, err
	}
	return CompleteStageCommand{
		actor:     actor,
		invoiceNo: strings.TrimSpace(invoiceNo),
		stage:     session.StageDelivery,
		worker:    email,
		outcome:   outcome,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteStageCommand) Actor() access.Actor     { return c.actor }
func (c CompleteStageCommand) InvoiceNo() string       { return c.invoiceNo }
func (c CompleteStageCommand) Stage() session.Stage    { return c.stage }
func (c CompleteStageCommand) Worker() kernel.Email    { return c.worker }
func (c CompleteStageCommand) Outcome() session.Status { return c.outcome }
func (c CompleteStageCommand) Notes() string           { return c.notes }

func (c CompleteStageCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStageCommandIsNotConstructed)
}

func stageDoneStatus(stage session.Stage) session.Status {
	if stage == session.StagePacking {
		return session.StatusPacked
	}
	return session.StatusPicked
}
