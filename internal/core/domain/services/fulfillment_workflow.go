package services

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"
)

// StageWorker is a scanned worker together with the role the directory reports.
type StageWorker struct {
	session.Worker
	Role access.Role
}

// StartRequest describes a start-stage action.
//
// StageActive is the invoice's open session of the stage and WorkerActive the
// worker's open session of any stage, each nil when there is none. Worker is nil
// only for COURIER deliveries.
type StartRequest struct {
	SessionID    kernel.UUID
	Invoice      *invoice.Invoice
	Stage        session.Stage
	Worker       *StageWorker
	Delivery     session.DeliveryDetails
	Notes        string
	StageActive  *session.Session
	WorkerActive *session.Session
}

// FulfillmentWorkflow moves an invoice through picking, packing and delivery by
// pairing every invoice transition with the start or close of a Session.
//
// Business rules:
//   - an invoice may hold one open session per stage
//   - a worker may hold one open session across all stages
//   - the worker's role must match the stage unless the worker is privileged
//   - only the starting worker may complete a worker-bound session
//
// Both aggregates are mutated in memory only; persisting them atomically is the
// caller's job. On error neither aggregate is modified.
//
// Example:
//
//	wf := services.NewFulfillmentWorkflow()
//	s, err := wf.Start(services.StartRequest{
//	    SessionID: kernel.NewUUID(), Invoice: inv, Stage: session.StagePicking, Worker: &alice,
//	}, time.Now())
type FulfillmentWorkflow struct{}

func NewFulfillmentWorkflow() FulfillmentWorkflow {
	return FulfillmentWorkflow{}
}

// Start opens a session of req.Stage and advances the invoice:
// picking PENDING -> PICKING, packing PICKED -> PACKING, delivery PACKED -> DISPATCHED.
func (w FulfillmentWorkflow) Start(req StartRequest, now time.Time) (*session.Session, error) {
	if err := req.Invoice.Validate(); err != nil {
		return nil, err
	}
	if err := req.Stage.Validate(); err != nil {
		return nil, err
	}
	if req.StageActive != nil && req.StageActive.IsActive() {
		return nil, errs.NewStateConflictError(
			"session_active",
			"invoice_no",
			fmt.Sprintf("%s of %s is already in progress by %s", req.Stage, req.Invoice.InvoiceNo(), ownerOf(req.StageActive)),
		)
	}
	if req.Worker != nil {
		if err := ValidateWorkerRole(req.Worker.Role, req.Stage); err != nil {
			return nil, err
		}
		if req.WorkerActive != nil && req.WorkerActive.IsActive() {
			return nil, errs.NewStateConflictError(
				"worker_busy",
				"user_email",
				fmt.Sprintf("%s already has an active %s session on %s",
					req.Worker.Email, req.WorkerActive.Stage(), req.WorkerActive.InvoiceNo()),
			)
		}
	}

	advance, err := startTransition(req.Invoice, req.Stage)
	if err != nil {
		return nil, err
	}
	if err = req.Invoice.Status().ValidateIs(requiredStartStatus(req.Stage)); err != nil {
		return nil, fmt.Errorf("invoice %s: %w", req.Invoice.InvoiceNo(), err)
	}

	s, err := newStageSession(req, now)
	if err != nil {
		return nil, err
	}
	if err = advance(now); err != nil {
		return nil, err
	}
	return s, nil
}

// Complete closes a picking or packing session and advances the invoice to PICKED or PACKED.
// active is the invoice's open session of the stage, nil when there is none.
func (w FulfillmentWorkflow) Complete(
	inv *invoice.Invoice,
	stage session.Stage,
	active *session.Session,
	by kernel.Email,
	notes string,
	now time.Time,
) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	if stage != session.StagePicking && stage != session.StagePacking {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%s cannot be completed this way", stage))
	}
	if err := requireActive(inv, stage, active); err != nil {
		return err
	}

	required := invoice.StatusPicking
	advance := inv.CompletePicking
	if stage == session.StagePacking {
		required = invoice.StatusPacking
		advance = inv.CompletePacking
	}
	if err := inv.Status().ValidateIs(required); err != nil {
		return fmt.Errorf("invoice %s: %w", inv.InvoiceNo(), err)
	}

	if err := active.Complete(by, notes, now); err != nil {
		return err
	}
	return advance(now)
}

// CompleteDelivery records a delivery outcome. DELIVERED closes the session and
// moves the invoice DISPATCHED -> DELIVERED, IN_TRANSIT only records progress.
// Returns whether the invoice was delivered.
func (w FulfillmentWorkflow) CompleteDelivery(
	inv *invoice.Invoice,
	active *session.Session,
	by kernel.Email,
	outcome session.Status,
	notes string,
	now time.Time,
) (bool, error) {
	if err := inv.Validate(); err != nil {
		return false, err
	}
	if err := requireActive(inv, session.StageDelivery, active); err != nil {
		return false, err
	}
	if err := inv.Status().ValidateIs(invoice.StatusDispatched); err != nil {
		return false, fmt.Errorf("invoice %s: %w", inv.InvoiceNo(), err)
	}

	delivered, err := active.CompleteDelivery(by, outcome, notes, now)
	if err != nil || !delivered {
		return false, err
	}
	if err = inv.Deliver(now); err != nil {
		return false, err
	}
	return true, nil
}

// ValidateWorkerRole checks that role may work stage: PICKER picks, PACKER packs,
// DRIVER delivers, ADMIN and SUPERADMIN may work any stage.
func ValidateWorkerRole(role access.Role, stage session.Stage) error {
	if role.IsPrivileged() {
		return nil
	}
	required := map[session.Stage]access.Role{
		session.StagePicking:  access.RolePicker,
		session.StagePacking:  access.RolePacker,
		session.StageDelivery: access.RoleDriver,
	}[stage]
	if role != required {
		return errs.NewForbiddenError(
			"start "+stage.String(),
			fmt.Sprintf("role %s cannot work the %s stage, required %s", role, stage, required),
		)
	}
	return nil
}

func requiredStartStatus(stage session.Stage) invoice.Status {
	switch stage {
	case session.StagePicking:
		return invoice.StatusPending
	case session.StagePacking:
		return invoice.StatusPicked
	default:
		return invoice.StatusPacked
	}
}

func startTransition(inv *invoice.Invoice, stage session.Stage) (func(time.Time) error, error) {
	switch stage {
	case session.StagePicking:
		return inv.StartPicking, nil
	case session.StagePacking:
		return inv.StartPacking, nil
	case session.StageDelivery:
		return inv.Dispatch, nil
	default:
		return nil, errs.NewValueIsInvalidError("stage")
	}
}

func newStageSession(req StartRequest, now time.Time) (*session.Session, error) {
	inv := req.Invoice
	var worker *session.Worker
	if req.Worker != nil {
		worker = &req.Worker.Worker
	}

	switch req.Stage {
	case session.StagePicking, session.StagePacking:
		if worker == nil {
			return nil, errs.NewValueIsRequiredError("user_email")
		}
		if req.Stage == session.StagePicking {
			return session.NewPickingSession(req.SessionID, inv.ID(), inv.InvoiceNo(), *worker, req.Notes, now)
		}
		return session.NewPackingSession(req.SessionID, inv.ID(), inv.InvoiceNo(), *worker, req.Notes, now)
	default:
		return session.NewDeliverySession(req.SessionID, inv.ID(), inv.InvoiceNo(), worker, req.Delivery, req.Notes, now)
	}
}

func requireActive(inv *invoice.Invoice, stage session.Stage, active *session.Session) error {
	if active == nil || !active.IsActive() {
		return errs.NewStateConflictError(
			"no_active_session",
			"invoice_no",
			fmt.Sprintf("%s has no active %s session", inv.InvoiceNo(), stage),
		)
	}
	if !active.InvoiceID().IsEqual(inv.ID()) || active.Stage() != stage {
		return errors.New("active session does not belong to the invoice stage")
	}
	return nil
}

func ownerOf(s *session.Session) string {
	if w := s.Worker(); w != nil {
		return w.Email.String()
	}
	return s.Delivery().CourierName
}
