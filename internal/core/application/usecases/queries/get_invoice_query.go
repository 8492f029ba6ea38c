package queries

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetInvoiceQueryIsNotConstructed = errors.New(
	"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
)

// GetInvoiceQuery reads one invoice with its lines, return history and sessions.
type GetInvoiceQuery struct {
	scope     access.Scope
	invoiceNo string

	guard guard.ConstructorGuard
}

func NewGetInvoiceQuery(actor access.Actor, invoiceNo string) (GetInvoiceQuery, error) {
	invoiceNo = strings.TrimSpace(invoiceNo)
	if invoiceNo == "" {
		return GetInvoiceQuery{}, errs.NewValueIsRequiredError("invoice_no")
	}
	return GetInvoiceQuery{
		scope:     access.ScopeFor(actor),
		invoiceNo: invoiceNo,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

// InvoiceDetail is the full read model of one invoice.
type InvoiceDetail struct {
	InvoiceSummary
	CustomerPhone   string
	CustomerAddress string
	Remarks         string
	Items           []InvoiceItemView
	Returns         []ReturnView
	Sessions        []SessionView
}

type InvoiceItemView struct {
	ItemCode      string
	Name          string
	Quantity      int
	MRP           decimal.Decimal
	Amount        decimal.Decimal
	BatchNo       string
	ExpiryDate    *time.Time
	ShelfLocation string
}

// ReturnView is one return-to-billing record.
type ReturnView struct {
	ID              kernel.UUID
	InvoiceNo       string
	CustomerName    string
	Reason          string
	ReturnedBy      string
	Section         string
	ReturnedAt      time.Time
	ResolvedAt      *time.Time
	ResolvedBy      string
	ResolutionNotes string
}

// SessionView is one work session. Duration is set once the session has ended.
type SessionView struct {
	ID           kernel.UUID
	InvoiceNo    string
	CustomerName string
	Stage        string
	Status       string
	WorkerEmail  string
	WorkerName   string
	StartTime    time.Time
	EndTime      *time.Time
	Duration     *time.Duration
	Notes        string
	CancelReason string
	DeliveryType string
	CourierName  string
	TrackingNo   string
}
