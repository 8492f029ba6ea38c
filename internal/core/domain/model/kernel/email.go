package kernel

import (
	"fmt"
	"net/mail"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Email is a normalized (trimmed, lower-case) worker e-mail address. Scanning a
// badge yields the address, so two spellings of the same mailbox must compare equal.
type Email struct {
	value string
}

// NewEmail normalizes and validates raw.
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Email{}, errs.NewValueIsRequiredError("user_email")
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("user_email", fmt.Errorf("%q is not an e-mail address", raw))
	}
	return Email{value: v}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}

func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}
