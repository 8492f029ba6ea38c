package queries

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrListReturnsQueryIsNotConstructed = errors.New(
	"ListReturnsQuery must be created via NewListReturnsQuery constructor",
)

// ReturnState filters returns by resolution.
type ReturnState string

const (
	ReturnStateAny      ReturnState = ""
	ReturnStateOpen     ReturnState = "open"
	ReturnStateResolved ReturnState = "resolved"
)

// ReturnFilter holds the raw return-history filters.
type ReturnFilter struct {
	State   string
	Section string
	Dates   DateRange
	Search  string
}

// ListReturnsQuery pages through the return-to-billing history of the invoices
// visible to the actor.
type ListReturnsQuery struct {
	scope      access.Scope
	state      ReturnState
	section    string
	dates      DateRange
	search     string
	pagination Pagination

	guard guard.ConstructorGuard
}

func NewListReturnsQuery(actor access.Actor, filter ReturnFilter, pagination Pagination) (ListReturnsQuery, error) {
	state := ReturnState(strings.ToLower(strings.TrimSpace(filter.State)))
	var stateErr error
	switch state {
	case ReturnStateAny, ReturnStateOpen, ReturnStateResolved:
	default:
		stateErr = errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not open or resolved", filter.State))
	}

	section := invoice.Section(strings.ToLower(strings.TrimSpace(filter.Section)))
	var sectionErr error
	switch section {
	case "", invoice.SectionPicking, invoice.SectionPacking:
	default:
		sectionErr = errs.NewValueIsInvalidErrorWithCause("section", fmt.Errorf("%q is not a return section", filter.Section))
	}

	if err := errors.Join(stateErr, sectionErr, filter.Dates.validate()); err != nil {
		return ListReturnsQuery{}, err
	}

	return ListReturnsQuery{
		scope:      access.ScopeFor(actor),
		state:      state,
		section:    string(section),
		dates:      filter.Dates,
		search:     strings.TrimSpace(filter.Search),
		pagination: pagination,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListReturnsQuery) Validate() error {
	return q.guard.Validate(ErrListReturnsQueryIsNotConstructed)
}
