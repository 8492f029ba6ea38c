package invoice

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Customer is the billed party, copied onto the invoice at import time.
type Customer struct {
	code    string
	name    string
	area    string
	phone   string
	address string
}

// NewCustomer requires code and name; area, phone and address are optional.
func NewCustomer(code, name, area, phone, address string) (Customer, error) {
	c := Customer{
		code:    strings.TrimSpace(code),
		name:    strings.TrimSpace(name),
		area:    strings.TrimSpace(area),
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
	}
	var codeErr, nameErr error
	if c.code == "" {
		codeErr = errs.NewValueIsRequiredError("customer.code")
	}
	if c.name == "" {
		nameErr = errs.NewValueIsRequiredError("customer.name")
	}
	if err := errors.Join(codeErr, nameErr); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (c Customer) Code() string    { return c.code }
func (c Customer) Name() string    { return c.name }
func (c Customer) Area() string    { return c.area }
func (c Customer) Phone() string   { return c.phone }
func (c Customer) Address() string { return c.address }

// IsZero reports whether the customer was never constructed.
func (c Customer) IsZero() bool { return c.code == "" }

// Salesman is the sales representative credited with the invoice. The name may be empty.
type Salesman struct {
	name string
}

func NewSalesman(name string) Salesman {
	return Salesman{name: strings.TrimSpace(name)}
}

func (s Salesman) Name() string { return s.name }
