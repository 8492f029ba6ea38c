package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListReturnsQueryHandler struct {
	db *gorm.DB
}

func NewListReturnsQueryHandler(db *gorm.DB) ListReturnsQueryHandler {
	return ListReturnsQueryHandler{db: db}
}

// Handle returns one page of returns, newest first.
func (h ListReturnsQueryHandler) Handle(ctx context.Context, query ListReturnsQuery) (Page[ReturnView], error) {
	if err := query.Validate(); err != nil {
		return Page[ReturnView]{}, err
	}

	filtered := func() *gorm.DB {
		return h.db.WithContext(ctx).Table("invoice_returns").
			Joins("JOIN invoices ON invoices.id = invoice_returns.invoice_id").
			Scopes(
				invoiceScope(query.scope, "invoices"),
				query.dates.scope("invoice_returns.returned_at"),
				query.filters,
			)
	}

	var count int64
	if err := filtered().Count(&count).Error; err != nil {
		return Page[ReturnView]{}, err
	}

	rows, err := filtered().
		Select(returnViewColumns).
		Order("invoice_returns.returned_at DESC").
		Scopes(query.pagination.apply).
		Rows()
	if err != nil {
		return Page[ReturnView]{}, err
	}

	results, err := collect(rows, scanReturnView)
	if err != nil {
		return Page[ReturnView]{}, err
	}
	return newPage(query.pagination, count, results), nil
}

func (q ListReturnsQuery) filters(db *gorm.DB) *gorm.DB {
	switch q.state {
	case ReturnStateOpen:
		db = db.Where("invoice_returns.resolved_at IS NULL")
	case ReturnStateResolved:
		db = db.Where("invoice_returns.resolved_at IS NOT NULL")
	}
	if q.section != "" {
		db = db.Where("invoice_returns.section = ?", q.section)
	}
	if q.search != "" {
		pattern := containsPattern(q.search)
		db = db.Where("(invoices.invoice_no ILIKE ? OR invoices.customer_name ILIKE ?)", pattern, pattern)
	}
	return db
}
