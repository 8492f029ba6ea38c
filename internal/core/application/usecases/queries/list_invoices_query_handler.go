package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const invoiceSummaryColumns = `
	invoices.id,
	invoices.invoice_no,
	invoices.invoice_date,
	invoices.status,
	invoices.billing_status,
	invoices.priority,
	invoices.customer_code,
	invoices.customer_name,
	invoices.customer_area,
	invoices.salesman_name,
	invoices.total_amount,
	invoices.created_by,
	invoices.created_at,
	invoices.updated_at`

// ListInvoicesQueryHandler reads invoice pages, newest invoice date first.
type ListInvoicesQueryHandler struct {
	db *gorm.DB
}

func NewListInvoicesQueryHandler(db *gorm.DB) ListInvoicesQueryHandler {
	return ListInvoicesQueryHandler{db: db}
}

func (h ListInvoicesQueryHandler) Handle(ctx context.Context, query ListInvoicesQuery) (Page[InvoiceSummary], error) {
	if err := query.Validate(); err != nil {
		return Page[InvoiceSummary]{}, err
	}

	filtered := func() *gorm.DB {
		return h.db.WithContext(ctx).Table("invoices").Scopes(
			invoiceScope(query.scope, "invoices"),
			query.dates.scope("invoices.invoice_date"),
			query.filters,
		)
	}

	var count int64
	if err := filtered().Count(&count).Error; err != nil {
		return Page[InvoiceSummary]{}, err
	}

	rows, err := filtered().
		Select(invoiceSummaryColumns).
		Order("invoices.invoice_date DESC, invoices.invoice_no").
		Scopes(query.pagination.apply).
		Rows()
	if err != nil {
		return Page[InvoiceSummary]{}, err
	}
	defer rows.Close()

	results := make([]InvoiceSummary, 0, query.pagination.PageSize())
	for rows.Next() {
		summary, scanErr := scanInvoiceSummary(rows)
		if scanErr != nil {
			return Page[InvoiceSummary]{}, scanErr
		}
		results = append(results, summary)
	}
	if err = rows.Err(); err != nil {
		return Page[InvoiceSummary]{}, err
	}

	return newPage(query.pagination, count, results), nil
}

func (q ListInvoicesQuery) filters(db *gorm.DB) *gorm.DB {
	if len(q.statuses) > 0 {
		db = db.Where("invoices.status = ANY(?)", pq.Array(q.statuses))
	}
	if q.billingStatus != "" {
		db = db.Where("invoices.billing_status = ?", q.billingStatus)
	}
	if q.priority != "" {
		db = db.Where("invoices.priority = ?", q.priority)
	}
	if q.search != "" {
		pattern := containsPattern(q.search)
		db = db.Where("(invoices.invoice_no ILIKE ? OR invoices.customer_name ILIKE ?)", pattern, pattern)
	}
	return db
}

func scanInvoiceSummary(rows *sql.Rows) (InvoiceSummary, error) {
	var s InvoiceSummary
	var id uuid.UUID
	err := rows.Scan(
		&id,
		&s.InvoiceNo,
		&s.InvoiceDate,
		&s.Status,
		&s.BillingStatus,
		&s.Priority,
		&s.CustomerCode,
		&s.CustomerName,
		&s.CustomerArea,
		&s.SalesmanName,
		&s.TotalAmount,
		&s.CreatedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return InvoiceSummary{}, err
	}

	invoiceID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return InvoiceSummary{}, err
	}
	s.ID = invoiceID
	return s, nil
}
