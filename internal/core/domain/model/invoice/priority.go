package invoice

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Priority orders the picking queue. Imports without a priority get PriorityMedium.
type Priority int

const (
	PriorityUnknown Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityLow:    "LOW",
		PriorityMedium: "MEDIUM",
		PriorityHigh:   "HIGH",
	}
}

// ParsePriority accepts LOW, MEDIUM or HIGH in any case. An empty string yields PriorityMedium.
func ParsePriority(s string) (Priority, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return PriorityMedium, nil
	}
	for p, str := range getPriorityStrings() {
		if str == name {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", s))
}

func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
