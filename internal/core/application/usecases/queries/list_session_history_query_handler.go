package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListSessionHistoryQueryHandler struct {
	db *gorm.DB
}

func NewListSessionHistoryQueryHandler(db *gorm.DB) ListSessionHistoryQueryHandler {
	return ListSessionHistoryQueryHandler{db: db}
}

// Handle returns one page of sessions ordered by start time, newest first.
// Search matches the invoice number, the customer name or the worker name.
func (h ListSessionHistoryQueryHandler) Handle(ctx context.Context, query ListSessionHistoryQuery) (Page[SessionView], error) {
	if err := query.Validate(); err != nil {
		return Page[SessionView]{}, err
	}

	filtered := func() *gorm.DB {
		return h.db.WithContext(ctx).Table("sessions").
			Joins("JOIN invoices ON invoices.id = sessions.invoice_id").
			Scopes(
				sessionScope(query.scope, "sessions"),
				query.dates.scope("sessions.start_time"),
				query.filters,
			)
	}

	var count int64
	if err := filtered().Count(&count).Error; err != nil {
		return Page[SessionView]{}, err
	}

	rows, err := filtered().
		Select(sessionViewColumns).
		Order("sessions.start_time DESC").
		Scopes(query.pagination.apply).
		Rows()
	if err != nil {
		return Page[SessionView]{}, err
	}

	results, err := collect(rows, scanSessionView)
	if err != nil {
		return Page[SessionView]{}, err
	}
	return newPage(query.pagination, count, results), nil
}

func (q ListSessionHistoryQuery) filters(db *gorm.DB) *gorm.DB {
	if q.stage != "" {
		db = db.Where("sessions.stage = ?", q.stage)
	}
	if q.status != "" {
		db = db.Where("sessions.status = ?", q.status)
	}
	if q.search != "" {
		pattern := containsPattern(q.search)
		db = db.Where(
			"(sessions.invoice_no ILIKE ? OR invoices.customer_name ILIKE ? OR sessions.worker_name ILIKE ?)",
			pattern, pattern, pattern,
		)
	}
	return db
}
