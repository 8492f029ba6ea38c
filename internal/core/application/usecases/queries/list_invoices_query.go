package queries

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListInvoicesQueryIsNotConstructed = errors.New(
	"ListInvoicesQuery must be created via NewListInvoicesQuery constructor",
)

// InvoiceFilter holds the raw list filters. Empty values do not filter.
type InvoiceFilter struct {
	Statuses      []string
	BillingStatus string
	Priority      string
	Dates         DateRange
	Search        string
}

// ListInvoicesQuery pages through the invoices visible to the actor.
//
// Example:
//
//	pagination, err := NewPagination(1, 20)
//	query, err := NewListInvoicesQuery(actor, InvoiceFilter{
//	    Statuses: []string{"PENDING", "PICKING"},
//	    Search:   "city",
//	}, pagination)
type ListInvoicesQuery struct {
	scope         access.Scope
	statuses      []string
	billingStatus string
	priority      string
	dates         DateRange
	search        string
	pagination    Pagination

	guard guard.ConstructorGuard
}

func NewListInvoicesQuery(actor access.Actor, filter InvoiceFilter, pagination Pagination) (ListInvoicesQuery, error) {
	statuses := make([]string, 0, len(filter.Statuses))
	var statusErrs []error
	for _, raw := range filter.Statuses {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		s, err := invoice.ParseStatus(raw)
		if err != nil {
			statusErrs = append(statusErrs, err)
			continue
		}
		statuses = append(statuses, s.String())
	}

	var billingStatus, priority string
	var billingErr, priorityErr error
	if strings.TrimSpace(filter.BillingStatus) != "" {
		var bs invoice.BillingStatus
		bs, billingErr = invoice.ParseBillingStatus(filter.BillingStatus)
		billingStatus = bs.String()
	}
	if strings.TrimSpace(filter.Priority) != "" {
		var p invoice.Priority
		p, priorityErr = invoice.ParsePriority(filter.Priority)
		priority = p.String()
	}

	if err := errors.Join(errors.Join(statusErrs...), billingErr, priorityErr, filter.Dates.validate()); err != nil {
		return ListInvoicesQuery{}, err
	}

	return ListInvoicesQuery{
		scope:         access.ScopeFor(actor),
		statuses:      statuses,
		billingStatus: billingStatus,
		priority:      priority,
		dates:         filter.Dates,
		search:        strings.TrimSpace(filter.Search),
		pagination:    pagination,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrListInvoicesQueryIsNotConstructed)
}

// InvoiceSummary is one row of the invoice list.
type InvoiceSummary struct {
	ID            kernel.UUID
	InvoiceNo     string
	InvoiceDate   time.Time
	Status        string
	BillingStatus string
	Priority      string
	CustomerCode  string
	CustomerName  string
	CustomerArea  string
	SalesmanName  string
	TotalAmount   decimal.Decimal
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
