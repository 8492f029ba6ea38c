// Package queries contains the read side of the fulfillment service. Query
// handlers read straight from the database with GORM and return flat response
// structs; they never load aggregates.
package queries

import (
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination is a validated page request.
type Pagination struct {
	page     int
	pageSize int
}

// NewPagination checks that page is at least 1 and pageSize lies in 1..MaxPageSize.
// Callers substitute DefaultPage and DefaultPageSize for absent parameters.
func NewPagination(page, pageSize int) (Pagination, error) {
	if page < 1 {
		return Pagination{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return Pagination{}, errs.NewValueIsOutOfRangeError("page_size", pageSize, 1, MaxPageSize)
	}
	return Pagination{page: page, pageSize: pageSize}, nil
}

func (p Pagination) Page() int     { return p.page }
func (p Pagination) PageSize() int { return p.pageSize }

func (p Pagination) offset() int {
	return (p.page - 1) * p.pageSize
}

func (p Pagination) apply(db *gorm.DB) *gorm.DB {
	return db.Offset(p.offset()).Limit(p.pageSize)
}

// Page is one page of a list query. Count is the number of rows matching the
// filter across all pages.
type Page[T any] struct {
	Count    int64
	Page     int
	PageSize int
	Results  []T
}

func newPage[T any](p Pagination, count int64, results []T) Page[T] {
	return Page[T]{Count: count, Page: p.page, PageSize: p.pageSize, Results: results}
}

// DateRange bounds a listing by calendar day. Both ends are inclusive; a nil end
// is open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) validate() error {
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return errs.NewValueIsInvalidError("date_to")
	}
	return nil
}

// scope restricts column to the day range.
func (r DateRange) scope(column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if r.From != nil {
			db = db.Where(column+" >= ?", truncateDay(*r.From))
		}
		if r.To != nil {
			db = db.Where(column+" < ?", truncateDay(*r.To).AddDate(0, 0, 1))
		}
		return db
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// invoiceScope admits invoices the actor imported or worked on.
func invoiceScope(scope access.Scope, table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if scope.AllowsAll() {
			return db
		}
		return db.Where(
			"("+table+".created_user = ? OR "+table+".id IN (SELECT invoice_id FROM sessions WHERE worker_email = ?))",
			scope.UserID().Google(), scope.Email().String(),
		)
	}
}

// sessionScope admits the actor's own sessions.
func sessionScope(scope access.Scope, table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if scope.AllowsAll() {
			return db
		}
		return db.Where(table+".worker_email = ?", scope.Email().String())
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching text anywhere.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(text)) + "%"
}
