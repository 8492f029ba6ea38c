package session

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Stage is the fulfillment step a session performs.
type Stage string

const (
	StagePicking  Stage = "picking"
	StagePacking  Stage = "packing"
	StageDelivery Stage = "delivery"
)

// ParseStage accepts picking, packing or delivery in any case.
func ParseStage(s string) (Stage, error) {
	st := Stage(strings.ToLower(strings.TrimSpace(s)))
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

func (s Stage) Validate() error {
	switch s {
	case StagePicking, StagePacking, StageDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%q is not a valid stage", string(s)))
	}
}

func (s Stage) String() string {
	return string(s)
}

// initialStatus is the status a freshly started session of the stage carries.
func (s Stage) initialStatus() Status {
	switch s {
	case StagePicking:
		return StatusPreparing
	case StagePacking:
		return StatusInProgress
	default:
		return StatusInTransit
	}
}

// doneStatus is the status that closes a session of the stage successfully.
func (s Stage) doneStatus() Status {
	switch s {
	case StagePicking:
		return StatusPicked
	case StagePacking:
		return StatusPacked
	default:
		return StatusDelivered
	}
}

// Status is the per-stage session status.
//
//	picking:  PREPARING  -> PICKED | CANCELLED
//	packing:  IN_PROGRESS -> PACKED | CANCELLED
//	delivery: IN_TRANSIT -> DELIVERED | IN_TRANSIT | CANCELLED
type Status string

const (
	StatusPreparing  Status = "PREPARING"
	StatusPicked     Status = "PICKED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusPacked     Status = "PACKED"
	StatusInTransit  Status = "IN_TRANSIT"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

func getStageStatuses() map[Stage][]Status {
	return map[Stage][]Status{
		StagePicking:  {StatusPreparing, StatusPicked, StatusCancelled},
		StagePacking:  {StatusInProgress, StatusPacked, StatusCancelled},
		StageDelivery: {StatusInTransit, StatusDelivered, StatusCancelled},
	}
}

// ParseStatus accepts any session status name in any case.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	for _, statuses := range getStageStatuses() {
		for _, candidate := range statuses {
			if candidate == st {
				return st, nil
			}
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid session status", s))
}

// ValidateFor reports whether s belongs to the status set of stage.
func (s Status) ValidateFor(stage Stage) error {
	for _, candidate := range getStageStatuses()[stage] {
		if candidate == s {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is not a %s status", s, stage))
}

func (s Status) String() string {
	return string(s)
}

// DeliveryType decides which identity a delivery session carries.
// DIRECT and INTERNAL deliveries are made by a scanned worker, COURIER deliveries
// by a third-party courier named on the session.
type DeliveryType string

const (
	DeliveryDirect   DeliveryType = "DIRECT"
	DeliveryCourier  DeliveryType = "COURIER"
	DeliveryInternal DeliveryType = "INTERNAL"
)

func ParseDeliveryType(s string) (DeliveryType, error) {
	dt := DeliveryType(strings.ToUpper(strings.TrimSpace(s)))
	switch dt {
	case DeliveryDirect, DeliveryCourier, DeliveryInternal:
		return dt, nil
	case "":
		return "", errs.NewValueIsRequiredError("delivery_type")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("delivery_type", fmt.Errorf("%q is not a valid delivery type", s))
	}
}

// RequiresWorker reports whether the delivery is made by a scanned worker.
func (d DeliveryType) RequiresWorker() bool {
	return d == DeliveryDirect || d == DeliveryInternal
}

func (d DeliveryType) String() string {
	return string(d)
}
