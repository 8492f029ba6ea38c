package queries

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/guard"
)

var ErrGetActiveTaskQueryIsNotConstructed = errors.New(
	"GetActiveTaskQuery must be created via NewGetActiveTaskQuery constructor",
)

// GetActiveTaskQuery asks for the open session of a worker, optionally limited to
// one stage. Only the worker or a privileged actor may ask.
type GetActiveTaskQuery struct {
	actor  access.Actor
	worker kernel.Email
	stage  session.Stage

	guard guard.ConstructorGuard
}

func NewGetActiveTaskQuery(actor access.Actor, userEmail, stage string) (GetActiveTaskQuery, error) {
	worker, emailErr := kernel.NewEmail(userEmail)

	var st session.Stage
	var stageErr error
	if strings.TrimSpace(stage) != "" {
		st, stageErr = session.ParseStage(stage)
	}

	if err := errors.Join(emailErr, stageErr); err != nil {
		return GetActiveTaskQuery{}, err
	}

	return GetActiveTaskQuery{
		actor:  actor,
		worker: worker,
		stage:  st,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetActiveTaskQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveTaskQueryIsNotConstructed)
}

// ActiveTask is the worker's open session together with the invoice it is for.
type ActiveTask struct {
	Session       SessionView
	InvoiceStatus string
	Priority      string
	ItemCount     int
}
