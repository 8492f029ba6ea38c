package queries

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/guard"
)

var ErrListSessionHistoryQueryIsNotConstructed = errors.New(
	"ListSessionHistoryQuery must be created via NewListSessionHistoryQuery constructor",
)

// SessionFilter holds the raw history filters. Status is checked against Stage
// when both are given.
type SessionFilter struct {
	Stage  string
	Status string
	Dates  DateRange
	Search string
}

// ListSessionHistoryQuery pages through work sessions, most recent first.
// Non-privileged actors see only their own sessions.
type ListSessionHistoryQuery struct {
	scope      access.Scope
	stage      string
	status     string
	dates      DateRange
	search     string
	pagination Pagination

	guard guard.ConstructorGuard
}

func NewListSessionHistoryQuery(actor access.Actor, filter SessionFilter, pagination Pagination) (ListSessionHistoryQuery, error) {
	var stage session.Stage
	var stageErr, statusErr error
	if strings.TrimSpace(filter.Stage) != "" {
		stage, stageErr = session.ParseStage(filter.Stage)
	}

	var status session.Status
	if strings.TrimSpace(filter.Status) != "" {
		status, statusErr = session.ParseStatus(filter.Status)
		if statusErr == nil && stageErr == nil && stage != "" {
			statusErr = status.ValidateFor(stage)
		}
	}

	if err := errors.Join(stageErr, statusErr, filter.Dates.validate()); err != nil {
		return ListSessionHistoryQuery{}, err
	}

	return ListSessionHistoryQuery{
		scope:      access.ScopeFor(actor),
		stage:      string(stage),
		status:     string(status),
		dates:      filter.Dates,
		search:     strings.TrimSpace(filter.Search),
		pagination: pagination,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListSessionHistoryQuery) Validate() error {
	return q.guard.Validate(ErrListSessionHistoryQueryIsNotConstructed)
}
