package services

import (
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
)

// ReturnToBilling pulls an in-progress invoice back to billing: the invoice enters
// REVIEW with a new Return and every open picking or packing session of the invoice
// is cancelled with the return reason as its cancellation note.
type ReturnToBilling struct{}

func NewReturnToBilling() ReturnToBilling {
	return ReturnToBilling{}
}

// Return applies the side transition.
//
// Parameters:
//   - inv: the invoice, locked by the caller
//   - active: open sessions of the invoice; delivery sessions are ignored
//   - returnID, reason, returnedBy: attributes of the new Return
//
// Returns the created Return and the sessions that were cancelled. On error
// nothing is modified.
func (ReturnToBilling) Return(
	inv *invoice.Invoice,
	active []*session.Session,
	returnID kernel.UUID,
	reason, returnedBy string,
	now time.Time,
) (*invoice.Return, []*session.Session, error) {
	if err := inv.Validate(); err != nil {
		return nil, nil, err
	}

	ret, err := inv.ReturnToBilling(returnID, reason, returnedBy, now)
	if err != nil {
		return nil, nil, err
	}

	var cancelled []*session.Session
	for _, s := range active {
		if s == nil || !s.IsActive() || s.Stage() == session.StageDelivery {
			continue
		}
		if err = s.Cancel("returned to billing: "+ret.Reason(), now); err != nil {
			return nil, nil, err
		}
		cancelled = append(cancelled, s)
	}
	return ret, cancelled, nil
}
