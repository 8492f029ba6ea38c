package invoice

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the fulfillment state of an invoice.
//
// State transitions:
//
//	PENDING ──> PICKING ──> PICKED ──> PACKING ──> PACKED ──> DISPATCHED ──> DELIVERED
//	   ^           │           │          │
//	   │           └───────────┴──────────┴──> REVIEW
//	   └───────────────(release)───────────────┘
//
// The forward chain never skips a state. REVIEW is reachable only from PICKING,
// PICKED and PACKING; leaving it requires an explicit release after correction.
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota
	StatusPending
	StatusPicking
	StatusPicked
	StatusPacking
	StatusPacked
	StatusDispatched
	// StatusDelivered is terminal.
	StatusDelivered
	// StatusReview means the invoice was returned to billing for correction.
	StatusReview
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:    "PENDING",
		StatusPicking:    "PICKING",
		StatusPicked:     "PICKED",
		StatusPacking:    "PACKING",
		StatusPacked:     "PACKED",
		StatusDispatched: "DISPATCHED",
		StatusDelivered:  "DELIVERED",
		StatusReview:     "REVIEW",
	}
}

// ParseStatus converts the persisted or transported name (case-insensitive) into a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name, or "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsReturnable reports whether the invoice may be sent back to billing from s.
func (s Status) IsReturnable() bool {
	return s == StatusPicking || s == StatusPicked || s == StatusPacking
}

// ValidateIs returns a state conflict naming the found and the required status
// unless s equals required.
func (s Status) ValidateIs(required Status) error {
	if s != required {
		return errs.NewStateConflictError(
			"invalid_status",
			"status",
			fmt.Sprintf("status is %s, required %s", s, required),
		)
	}
	return nil
}

// ValidateReturnable checks the return-to-billing precondition without side effects.
func (s Status) ValidateReturnable() error {
	if !s.IsReturnable() {
		return errs.NewStateConflictError(
			"invalid_status",
			"status",
			fmt.Sprintf("status is %s, required one of %s, %s, %s", s, StatusPicking, StatusPicked, StatusPacking),
		)
	}
	return nil
}

func (s Status) advance(from, to Status) (Status, error) {
	if err := s.ValidateIs(from); err != nil {
		return StatusUnknown, err
	}
	return to, nil
}

// StartPicking transitions PENDING -> PICKING.
func (s Status) StartPicking() (Status, error) { return s.advance(StatusPending, StatusPicking) }

// CompletePicking transitions PICKING -> PICKED.
func (s Status) CompletePicking() (Status, error) { return s.advance(StatusPicking, StatusPicked) }

// StartPacking transitions PICKED -> PACKING.
func (s Status) StartPacking() (Status, error) { return s.advance(StatusPicked, StatusPacking) }

// CompletePacking transitions PACKING -> PACKED.
func (s Status) CompletePacking() (Status, error) { return s.advance(StatusPacking, StatusPacked) }

// Dispatch transitions PACKED -> DISPATCHED.
func (s Status) Dispatch() (Status, error) { return s.advance(StatusPacked, StatusDispatched) }

// Deliver transitions DISPATCHED -> DELIVERED.
func (s Status) Deliver() (Status, error) { return s.advance(StatusDispatched, StatusDelivered) }

// Release transitions REVIEW -> PENDING.
func (s Status) Release() (Status, error) { return s.advance(StatusReview, StatusPending) }

// ReturnToReview transitions PICKING, PICKED or PACKING -> REVIEW.
func (s Status) ReturnToReview() (Status, error) {
	if err := s.ValidateReturnable(); err != nil {
		return StatusUnknown, err
	}
	return StatusReview, nil
}
