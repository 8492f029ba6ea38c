package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrSessionIsNotConstructed is returned when a Session was not built by a constructor.
var ErrSessionIsNotConstructed = errors.New("Session must be created via a New*Session constructor")

// Worker is the verified identity of the person performing a stage.
type Worker struct {
	Email kernel.Email
	Name  string
}

// DeliveryDetails carries the delivery-only attributes of a session.
type DeliveryDetails struct {
	Type        DeliveryType
	CourierName string
	TrackingNo  string
}

// Session is a time-bounded record of one worker (or courier) performing one
// stage on one invoice. A session is active while its end time is unset.
//
// Business rules:
//   - picking and packing sessions always carry a worker
//   - DIRECT and INTERNAL deliveries carry a worker, COURIER deliveries carry a courier name instead
//   - only the starting worker may complete a worker-bound session
//   - a closed session cannot be completed or cancelled again
type Session struct {
	id           kernel.UUID
	invoiceID    kernel.UUID
	invoiceNo    string
	stage        Stage
	worker       *Worker
	status       Status
	startTime    time.Time
	endTime      *time.Time
	notes        string
	cancelReason string
	delivery     DeliveryDetails
	guard        guard.ConstructorGuard
}

// NewPickingSession starts a PREPARING picking session for worker.
func NewPickingSession(id, invoiceID kernel.UUID, invoiceNo string, worker Worker, notes string, now time.Time) (*Session, error) {
	return newWorkerSession(StagePicking, id, invoiceID, invoiceNo, worker, notes, now)
}

// NewPackingSession starts an IN_PROGRESS packing session for worker.
func NewPackingSession(id, invoiceID kernel.UUID, invoiceNo string, worker Worker, notes string, now time.Time) (*Session, error) {
	return newWorkerSession(StagePacking, id, invoiceID, invoiceNo, worker, notes, now)
}

func newWorkerSession(
	stage Stage,
	id, invoiceID kernel.UUID,
	invoiceNo string,
	worker Worker,
	notes string,
	now time.Time,
) (*Session, error) {
	s := newSession(stage, now, notes)
	if err := errors.Join(
		s.setIDs(id, invoiceID, invoiceNo),
		s.setWorker(&worker),
	); err != nil {
		return nil, err
	}
	return s, nil
}

// NewDeliverySession starts an IN_TRANSIT delivery session.
//
// Parameters:
//   - worker: required for DIRECT and INTERNAL, must be nil for COURIER
//   - details: delivery type plus courier_name (required for COURIER) and optional tracking_no
func NewDeliverySession(
	id, invoiceID kernel.UUID,
	invoiceNo string,
	worker *Worker,
	details DeliveryDetails,
	notes string,
	now time.Time,
) (*Session, error) {
	s := newSession(StageDelivery, now, notes)
	if err := errors.Join(
		s.setIDs(id, invoiceID, invoiceNo),
		s.setDelivery(worker, details),
	); err != nil {
		return nil, err
	}
	return s, nil
}

func newSession(stage Stage, now time.Time, notes string) *Session {
	return &Session{
		stage:     stage,
		status:    stage.initialStatus(),
		startTime: now,
		notes:     strings.TrimSpace(notes),
		guard:     guard.NewConstructorGuard(),
	}
}

// State is the persisted form of a session accepted by RestoreSession.
type State struct {
	ID           kernel.UUID
	InvoiceID    kernel.UUID
	InvoiceNo    string
	Stage        Stage
	Worker       *Worker
	Status       Status
	StartTime    time.Time
	EndTime      *time.Time
	Notes        string
	CancelReason string
	Delivery     DeliveryDetails
}

// RestoreSession rebuilds a Session from persistence.
func RestoreSession(st State) *Session {
	return &Session{
		id:           st.ID,
		invoiceID:    st.InvoiceID,
		invoiceNo:    st.InvoiceNo,
		stage:        st.Stage,
		worker:       st.Worker,
		status:       st.Status,
		startTime:    st.StartTime,
		endTime:      st.EndTime,
		notes:        st.Notes,
		cancelReason: st.CancelReason,
		delivery:     st.Delivery,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the session was built through a constructor.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s *Session) ID() kernel.UUID           { return s.id }
func (s *Session) InvoiceID() kernel.UUID    { return s.invoiceID }
func (s *Session) InvoiceNo() string         { return s.invoiceNo }
func (s *Session) Stage() Stage              { return s.stage }
func (s *Session) Worker() *Worker           { return s.worker }
func (s *Session) Status() Status            { return s.status }
func (s *Session) StartTime() time.Time      { return s.startTime }
func (s *Session) EndTime() *time.Time       { return s.endTime }
func (s *Session) Notes() string             { return s.notes }
func (s *Session) CancelReason() string      { return s.cancelReason }
func (s *Session) Delivery() DeliveryDetails { return s.delivery }

// IsActive reports whether the session is still open.
func (s *Session) IsActive() bool {
	return s.endTime == nil
}

// IsOwnedBy reports whether email is the session's worker.
func (s *Session) IsOwnedBy(email kernel.Email) bool {
	return s.worker != nil && s.worker.Email.IsEqual(email)
}

// Complete closes a picking or packing session with PICKED or PACKED.
// by must be the email of the worker who started it.
func (s *Session) Complete(by kernel.Email, notes string, now time.Time) error {
	if s.stage == StageDelivery {
		return errs.NewValueIsInvalidErrorWithCause("stage", errors.New("use CompleteDelivery for delivery sessions"))
	}
	if err := errors.Join(s.validateActive(), s.validateOwner(by)); err != nil {
		return err
	}
	s.close(s.stage.doneStatus(), now)
	s.appendNotes(notes)
	return nil
}

// CompleteDelivery records the outcome of a delivery session. DELIVERED closes the
// session, IN_TRANSIT records a progress note and leaves it open. by is checked
// only for DIRECT and INTERNAL deliveries.
//
// Returns whether the goods were delivered.
func (s *Session) CompleteDelivery(by kernel.Email, outcome Status, notes string, now time.Time) (bool, error) {
	if s.stage != StageDelivery {
		return false, errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%s session is not a delivery", s.stage))
	}
	if outcome != StatusDelivered && outcome != StatusInTransit {
		return false, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a delivery outcome, use %s or %s", outcome, StatusDelivered, StatusInTransit))
	}
	if err := s.validateActive(); err != nil {
		return false, err
	}
	if s.delivery.Type.RequiresWorker() {
		if err := s.validateOwner(by); err != nil {
			return false, err
		}
	}

	s.appendNotes(notes)
	if outcome == StatusInTransit {
		return false, nil
	}
	s.close(StatusDelivered, now)
	return true, nil
}

// Cancel closes an active session as CANCELLED, keeping reason as the cancellation note.
func (s *Session) Cancel(reason string, now time.Time) error {
	if err := s.validateActive(); err != nil {
		return err
	}
	s.cancelReason = strings.TrimSpace(reason)
	s.close(StatusCancelled, now)
	return nil
}

func (s *Session) close(status Status, now time.Time) {
	s.status = status
	s.endTime = &now
}

func (s *Session) appendNotes(notes string) {
	notes = strings.TrimSpace(notes)
	switch {
	case notes == "":
	case s.notes == "":
		s.notes = notes
	default:
		s.notes = s.notes + "\n" + notes
	}
}

func (s *Session) validateActive() error {
	if !s.IsActive() {
		return errs.NewStateConflictError(
			"session_closed",
			"session",
			fmt.Sprintf("%s session for %s is already %s", s.stage, s.invoiceNo, s.status),
		)
	}
	return nil
}

func (s *Session) validateOwner(by kernel.Email) error {
	if by.IsZero() {
		return errs.NewValueIsRequiredError("user_email")
	}
	if !s.IsOwnedBy(by) {
		owner := ""
		if s.worker != nil {
			owner = s.worker.Email.String()
		}
		return errs.NewStateConflictError(
			"worker_mismatch",
			"user_email",
			fmt.Sprintf("%s session for %s was started by %s, not %s", s.stage, s.invoiceNo, owner, by),
		)
	}
	return nil
}

func (s *Session) setIDs(id, invoiceID kernel.UUID, invoiceNo string) error {
	var invoiceNoErr error
	if strings.TrimSpace(invoiceNo) == "" {
		invoiceNoErr = errs.NewValueIsRequiredError("invoice_no")
	}
	if err := errors.Join(id.Validate(), invoiceID.Validate(), invoiceNoErr); err != nil {
		return err
	}
	s.id = id
	s.invoiceID = invoiceID
	s.invoiceNo = strings.TrimSpace(invoiceNo)
	return nil
}

func (s *Session) setWorker(w *Worker) error {
	if w == nil || w.Email.IsZero() {
		return errs.NewValueIsRequiredError("user_email")
	}
	s.worker = &Worker{Email: w.Email, Name: strings.TrimSpace(w.Name)}
	return nil
}

func (s *Session) setDelivery(w *Worker, d DeliveryDetails) error {
	d.CourierName = strings.TrimSpace(d.CourierName)
	d.TrackingNo = strings.TrimSpace(d.TrackingNo)

	switch d.Type {
	case DeliveryDirect, DeliveryInternal:
		if err := s.setWorker(w); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("user_email", fmt.Errorf("%s delivery", d.Type))
		}
	case DeliveryCourier:
		if d.CourierName == "" {
			return errs.NewValueIsRequiredErrorWithCause("courier_name", fmt.Errorf("%s delivery", d.Type))
		}
		if w != nil {
			return errs.NewValueIsInvalidErrorWithCause("user_email", fmt.Errorf("%s delivery carries no worker", d.Type))
		}
	default:
		return errs.NewValueIsInvalidErrorWithCause("delivery_type", fmt.Errorf("%q is not a valid delivery type", string(d.Type)))
	}
	s.delivery = d
	return nil
}
