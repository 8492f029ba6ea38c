package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice was not built by NewInvoice or RestoreInvoice.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")
	// ErrItemsAreRequired is returned when an invoice would be left without lines.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Header holds the descriptive attributes supplied on import.
type Header struct {
	InvoiceNo   string
	InvoiceDate time.Time
	Priority    Priority
	Customer    Customer
	Salesman    Salesman
	// CreatedBy is free text supplied by the importing system.
	CreatedBy string
	// CreatedUser is the authenticated importer, nil for API-key imports.
	CreatedUser *kernel.UUID
	Remarks     string
}

// Invoice is the aggregate root of the fulfillment pipeline. It owns its items and
// return history and is the unit of mutual exclusion for every transition: callers
// load it under a row lock, mutate it, and persist it in the same transaction.
//
// Invariants:
//   - invoiceNo is non-empty and never changes
//   - status moves only through the transitions of Status
//   - total always equals the sum of quantity × mrp over items
//   - billingStatus REVIEW implies exactly one unresolved return
type Invoice struct {
	id            kernel.UUID
	invoiceNo     string
	invoiceDate   time.Time
	status        Status
	billingStatus BillingStatus
	priority      Priority
	customer      Customer
	salesman      Salesman
	items         []Item
	total         kernel.Money
	createdBy     string
	createdUser   *kernel.UUID
	remarks       string
	createdAt     time.Time
	updatedAt     time.Time
	returns       []*Return
	events        []Event
	guard         guard.ConstructorGuard
}

// NewInvoice creates a PENDING, BILLED invoice and records invoice_created.
//
// Parameters:
//   - id: identifier of the new invoice
//   - header: import attributes; InvoiceNo and Customer are required
//   - items: at least one valid line
//   - now: creation timestamp
//
// Example:
//
//	customer, _ := invoice.NewCustomer("C-1", "City Pharmacy", "North", "", "")
//	inv, err := invoice.NewInvoice(kernel.NewUUID(), invoice.Header{
//	    InvoiceNo: "LTPI-1", Customer: customer, Priority: invoice.PriorityMedium,
//	}, items, time.Now())
func NewInvoice(id kernel.UUID, header Header, items []Item, now time.Time) (*Invoice, error) {
	inv := &Invoice{
		status:        StatusPending,
		billingStatus: BillingStatusBilled,
		createdBy:     strings.TrimSpace(header.CreatedBy),
		createdUser:   header.CreatedUser,
		remarks:       strings.TrimSpace(header.Remarks),
		salesman:      header.Salesman,
		invoiceDate:   header.InvoiceDate,
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}
	if inv.invoiceDate.IsZero() {
		inv.invoiceDate = now
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setInvoiceNo(header.InvoiceNo),
		inv.setPriority(header.Priority),
		inv.setCustomer(header.Customer),
		inv.setItems(items),
	); err != nil {
		return nil, err
	}

	inv.record(EventInvoiceCreated, now)
	return inv, nil
}

// RestoreInvoice rebuilds an Invoice from persistence. It trusts the stored state
// and records no events.
func RestoreInvoice(
	id kernel.UUID,
	header Header,
	status Status,
	billingStatus BillingStatus,
	items []Item,
	returns []*Return,
	createdAt, updatedAt time.Time,
) *Invoice {
	inv := &Invoice{
		id:            id,
		invoiceNo:     header.InvoiceNo,
		invoiceDate:   header.InvoiceDate,
		status:        status,
		billingStatus: billingStatus,
		priority:      header.Priority,
		customer:      header.Customer,
		salesman:      header.Salesman,
		items:         items,
		createdBy:     header.CreatedBy,
		createdUser:   header.CreatedUser,
		remarks:       header.Remarks,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		returns:       returns,
		guard:         guard.NewConstructorGuard(),
	}
	inv.total = sumItems(items)
	return inv
}

// Validate ensures the Invoice was built through a constructor.
func (i *Invoice) Validate() error {
	if i == nil {
		return ErrInvoiceIsNotConstructed
	}
	return i.guard.Validate(ErrInvoiceIsNotConstructed)
}

func (i *Invoice) ID() kernel.UUID              { return i.id }
func (i *Invoice) InvoiceNo() string            { return i.invoiceNo }
func (i *Invoice) InvoiceDate() time.Time       { return i.invoiceDate }
func (i *Invoice) Status() Status               { return i.status }
func (i *Invoice) BillingStatus() BillingStatus { return i.billingStatus }
func (i *Invoice) Priority() Priority           { return i.priority }
func (i *Invoice) Customer() Customer           { return i.customer }
func (i *Invoice) Salesman() Salesman           { return i.salesman }
func (i *Invoice) TotalAmount() kernel.Money    { return i.total }
func (i *Invoice) CreatedBy() string            { return i.createdBy }
func (i *Invoice) CreatedUser() *kernel.UUID    { return i.createdUser }
func (i *Invoice) Remarks() string              { return i.remarks }
func (i *Invoice) CreatedAt() time.Time         { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time         { return i.updatedAt }

// Items returns a copy of the invoice lines in order.
func (i *Invoice) Items() []Item {
	out := make([]Item, len(i.items))
	copy(out, i.items)
	return out
}

// Returns returns the return-to-billing history, oldest first.
func (i *Invoice) Returns() []*Return {
	out := make([]*Return, len(i.returns))
	copy(out, i.returns)
	return out
}

// OpenReturn returns the unresolved return, or nil.
func (i *Invoice) OpenReturn() *Return {
	for _, r := range i.returns {
		if !r.IsResolved() {
			return r
		}
	}
	return nil
}

// StartPicking moves PENDING -> PICKING.
func (i *Invoice) StartPicking(now time.Time) error {
	return i.transition(Status.StartPicking, now)
}

// CompletePicking moves PICKING -> PICKED.
func (i *Invoice) CompletePicking(now time.Time) error {
	return i.transition(Status.CompletePicking, now)
}

// StartPacking moves PICKED -> PACKING.
func (i *Invoice) StartPacking(now time.Time) error {
	return i.transition(Status.StartPacking, now)
}

// CompletePacking moves PACKING -> PACKED.
func (i *Invoice) CompletePacking(now time.Time) error {
	return i.transition(Status.CompletePacking, now)
}

// Dispatch moves PACKED -> DISPATCHED when a delivery session starts.
func (i *Invoice) Dispatch(now time.Time) error {
	return i.transition(Status.Dispatch, now)
}

// Deliver moves DISPATCHED -> DELIVERED.
func (i *Invoice) Deliver(now time.Time) error {
	return i.transition(Status.Deliver, now)
}

func (i *Invoice) transition(next func(Status) (Status, error), now time.Time) error {
	status, err := next(i.status)
	if err != nil {
		return fmt.Errorf("invoice %s: %w", i.invoiceNo, err)
	}
	i.status = status
	i.touch(now)
	i.record(EventInvoiceStatusChanged, now)
	return nil
}

// ReturnToBilling sends an in-progress invoice back to billing.
//
// An invoice whose billing status is already REVIEW fails with an already_returned
// state conflict. An invoice outside PICKING, PICKED and PACKING fails with an
// invalid_status conflict naming the current status. On success status and
// billing status become REVIEW and a new Return is appended and returned.
// Cancelling the open session of the invoice is the caller's responsibility.
func (i *Invoice) ReturnToBilling(returnID kernel.UUID, reason, returnedBy string, now time.Time) (*Return, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("return_reason")
	}
	if err := returnID.Validate(); err != nil {
		return nil, err
	}
	if i.billingStatus == BillingStatusReview {
		return nil, errs.NewStateConflictError(
			"already_returned",
			"billing_status",
			fmt.Sprintf("invoice %s is already in REVIEW", i.invoiceNo),
		)
	}

	section := sectionOf(i.status)
	status, err := i.status.ReturnToReview()
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", i.invoiceNo, err)
	}

	ret := &Return{
		id:         returnID,
		reason:     reason,
		returnedBy: strings.TrimSpace(returnedBy),
		section:    section,
		returnedAt: now,
	}
	i.returns = append(i.returns, ret)
	i.status = status
	i.billingStatus = BillingStatusReview
	i.touch(now)
	i.record(EventInvoiceStatusChanged, now)
	i.record(EventInvoiceReview, now)
	return ret, nil
}

// Correction describes the changes billing applies to a returned invoice.
// Nil pointers leave the corresponding attribute unchanged.
type Correction struct {
	Priority *Priority
	Customer *Customer
	Salesman *Salesman
	Remarks  *string
	// Items, when non-empty, replace (ReplaceItems) or merge by item code and batch into the current lines.
	Items        []Item
	ReplaceItems bool
	// ResolutionNotes is stored on the open return.
	ResolutionNotes string
}

// Correct applies c to an invoice in REVIEW, recomputes the total, marks the
// invoice RE_INVOICED and resolves the open return. Status stays REVIEW until Release.
func (i *Invoice) Correct(c Correction, resolvedBy string, now time.Time) error {
	if err := i.status.ValidateIs(StatusReview); err != nil {
		return fmt.Errorf("invoice %s: %w", i.invoiceNo, err)
	}

	var priorityErr, customerErr error
	if c.Priority != nil {
		priorityErr = c.Priority.Validate()
	}
	if c.Customer != nil && c.Customer.IsZero() {
		customerErr = errs.NewValueIsRequiredError("customer")
	}
	items := i.items
	if len(c.Items) > 0 {
		if c.ReplaceItems {
			items = c.Items
		} else {
			items = mergeItems(i.items, c.Items)
		}
	}
	if err := errors.Join(priorityErr, customerErr, validateItems(items)); err != nil {
		return err
	}

	if c.Priority != nil {
		i.priority = *c.Priority
	}
	if c.Customer != nil {
		i.customer = *c.Customer
	}
	if c.Salesman != nil {
		i.salesman = *c.Salesman
	}
	if c.Remarks != nil {
		i.remarks = strings.TrimSpace(*c.Remarks)
	}
	i.assignItems(items)

	if open := i.OpenReturn(); open != nil {
		open.resolve(strings.TrimSpace(resolvedBy), strings.TrimSpace(c.ResolutionNotes), now)
	}
	i.billingStatus = BillingStatusReInvoiced
	i.touch(now)
	i.record(EventInvoiceUpdated, now)
	return nil
}

// Release puts a corrected invoice back into the picking queue. It requires
// status REVIEW and billing status RE_INVOICED and is never triggered implicitly.
func (i *Invoice) Release(now time.Time) error {
	if i.billingStatus != BillingStatusReInvoiced {
		return errs.NewStateConflictError(
			"not_reinvoiced",
			"billing_status",
			fmt.Sprintf("billing status is %s, required %s", i.billingStatus, BillingStatusReInvoiced),
		)
	}
	return i.transition(Status.Release, now)
}

// PullEvents returns and clears the events recorded since the last call.
func (i *Invoice) PullEvents() []Event {
	events := i.events
	i.events = nil
	return events
}

func (i *Invoice) record(t EventType, at time.Time) {
	i.events = append(i.events, Event{Type: t, OccurredAt: at})
}

func (i *Invoice) touch(now time.Time) {
	i.updatedAt = now
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setInvoiceNo(no string) error {
	no = strings.TrimSpace(no)
	if no == "" {
		return errs.NewValueIsRequiredError("invoice_no")
	}
	i.invoiceNo = no
	return nil
}

func (i *Invoice) setPriority(p Priority) error {
	if p == PriorityUnknown {
		p = PriorityMedium
	}
	if err := p.Validate(); err != nil {
		return err
	}
	i.priority = p
	return nil
}

func (i *Invoice) setCustomer(c Customer) error {
	if c.IsZero() {
		return errs.NewValueIsRequiredError("customer")
	}
	i.customer = c
	return nil
}

// setItems replaces the lines and recomputes the total.
func (i *Invoice) setItems(items []Item) error {
	if err := validateItems(items); err != nil {
		return err
	}
	i.assignItems(items)
	return nil
}

func (i *Invoice) assignItems(items []Item) {
	i.items = make([]Item, len(items))
	copy(i.items, items)
	i.total = sumItems(i.items)
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, it := range items {
		if it.itemCode == "" {
			return errs.NewValueIsRequiredError("item_code")
		}
	}
	return nil
}
