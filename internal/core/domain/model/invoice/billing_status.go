package invoice

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// BillingStatus tracks the billing side of an invoice independently of fulfillment.
type BillingStatus int

const (
	BillingStatusUnknown BillingStatus = iota
	// BillingStatusBilled is the status of every freshly imported invoice.
	BillingStatusBilled
	// BillingStatusReview is set by return-to-billing.
	BillingStatusReview
	// BillingStatusReInvoiced is set once billing has corrected a returned invoice.
	BillingStatusReInvoiced
)

func getBillingStatusStrings() map[BillingStatus]string {
	return map[BillingStatus]string{
		BillingStatusBilled:     "BILLED",
		BillingStatusReview:     "REVIEW",
		BillingStatusReInvoiced: "RE_INVOICED",
	}
}

func ParseBillingStatus(s string) (BillingStatus, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getBillingStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return BillingStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"billing_status", fmt.Errorf("%q is not a valid billing status", s))
}

func (s BillingStatus) Validate() error {
	if _, ok := getBillingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("billing_status", fmt.Errorf("%d is not a valid billing status", s))
	}
	return nil
}

func (s BillingStatus) String() string {
	if str, ok := getBillingStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
