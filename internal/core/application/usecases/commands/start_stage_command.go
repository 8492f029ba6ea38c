package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrStartStageCommandIsNotConstructed = errors.New(
	"StartStageCommand must be created via NewStartPickingCommand, NewStartPackingCommand or NewStartDeliveryCommand",
)

// StartStageCommand opens a picking, packing or delivery session on an invoice
// for the worker whose badge e-mail was scanned.
type StartStageCommand struct {
	actor     access.Actor
	sessionID kernel.UUID
	invoiceNo string
	stage     session.Stage
	worker    kernel.Email
	delivery  session.DeliveryDetails
	notes     string

	guard guard.ConstructorGuard
}

// NewStartPickingCommand builds a start-picking command.
func NewStartPickingCommand(actor access.Actor, sessionID kernel.UUID, invoiceNo, userEmail, notes string) (StartStageCommand, error) {
	return newWorkerStartCommand(actor, sessionID, session.StagePicking, invoiceNo, userEmail, notes)
}

// NewStartPackingCommand builds a start-packing command.
func NewStartPackingCommand(actor access.Actor, sessionID kernel.UUID, invoiceNo, userEmail, notes string) (StartStageCommand, error) {
	return newWorkerStartCommand(actor, sessionID, session.StagePacking, invoiceNo, userEmail, notes)
}

func newWorkerStartCommand(
	actor access.Actor,
	sessionID kernel.UUID,
	stage session.Stage,
	invoiceNo, userEmail, notes string,
) (StartStageCommand, error) {
	email, emailErr := kernel.NewEmail(userEmail)
	if err := errors.Join(sessionID.Validate(), requireInvoiceNo(invoiceNo), emailErr); err != nil {
		return StartStageCommand{}, err
	}
	return StartStageCommand{
		actor:     actor,
		sessionID: sessionID,
		invoiceNo: strings.TrimSpace(invoiceNo),
		stage:     stage,
		worker:    email,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewStartDeliveryCommand builds a start-delivery command. userEmail is required
// for DIRECT and INTERNAL deliveries, courierName for COURIER deliveries.
func NewStartDeliveryCommand(
	actor access.Actor,
	sessionID kernel.UUID,
	invoiceNo, userEmail, deliveryType, courierName, trackingNo, notes string,
) (StartStageCommand, error) {
	dt, dtErr := session.ParseDeliveryType(deliveryType)

	var email kernel.Email
	var emailErr, courierErr error
	if dtErr == nil {
		if dt.RequiresWorker() {
			email, emailErr = kernel.NewEmail(userEmail)
		} else if strings.TrimSpace(courierName) == "" {
			courierErr = errs.NewValueIsRequiredError("courier_name")
		}
	}

	if err := errors.Join(sessionID.Validate(), requireInvoiceNo(invoiceNo), dtErr, emailErr, courierErr); err != nil {
		return StartStageCommand{}, err
	}

	return StartStageCommand{
		actor:     actor,
		sessionID: sessionID,
		invoiceNo: strings.TrimSpace(invoiceNo),
		stage:     session.StageDelivery,
		worker:    email,
		delivery: session.DeliveryDetails{
			Type:        dt,
			CourierName: courierName,
			TrackingNo:  trackingNo,
		},
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c StartStageCommand) Actor() access.Actor               { return c.actor }
func (c StartStageCommand) SessionID() kernel.UUID            { return c.sessionID }
func (c StartStageCommand) InvoiceNo() string                 { return c.invoiceNo }
func (c StartStageCommand) Stage() session.Stage              { return c.stage }
func (c StartStageCommand) Worker() kernel.Email              { return c.worker }
func (c StartStageCommand) Delivery() session.DeliveryDetails { return c.delivery }
func (c StartStageCommand) Notes() string                     { return c.notes }

// HasWorker reports whether the session is bound to a scanned worker.
func (c StartStageCommand) HasWorker() bool {
	return !c.worker.IsZero()
}

func (c StartStageCommand) Validate() error {
	return c.guard.Validate(ErrStartStageCommandIsNotConstructed)
}

func requireInvoiceNo(invoiceNo string) error {
	if strings.TrimSpace(invoiceNo) == "" {
		return errs.NewValueIsRequiredError("invoice_no")
	}
	return nil
}
