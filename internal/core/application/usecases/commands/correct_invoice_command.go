package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/pkg/guard"
)

var ErrCorrectInvoiceCommandIsNotConstructed = errors.New(
	"CorrectInvoiceCommand must be created via NewCorrectInvoiceCommand constructor",
)

// CorrectInvoiceInput is a partial update of a returned invoice. Nil fields are left unchanged.
type CorrectInvoiceInput struct {
	Priority        *string
	Customer        *CustomerInput
	SalesmanName    *string
	Remarks         *string
	Items           []ItemInput
	ReplaceItems    bool
	ResolutionNotes string
}

// CorrectInvoiceCommand applies billing's corrections to an invoice in REVIEW and
// marks it RE_INVOICED.
type CorrectInvoiceCommand struct {
	actor      access.Actor
	invoiceNo  string
	correction invoice.Correction

	guard guard.ConstructorGuard
}

func NewCorrectInvoiceCommand(actor access.Actor, invoiceNo string, input CorrectInvoiceInput) (CorrectInvoiceCommand, error) {
	var c invoice.Correction
	var priorityErr, customerErr error

	if input.Priority != nil {
		var p invoice.Priority
		if p, priorityErr = invoice.ParsePriority(*input.Priority); priorityErr == nil {
			c.Priority = &p
		}
	}
	if input.Customer != nil {
		var customer invoice.Customer
		customer, customerErr = invoice.NewCustomer(
			input.Customer.Code, input.Customer.Name, input.Customer.Area, input.Customer.Phone, input.Customer.Address)
		if customerErr == nil {
			c.Customer = &customer
		}
	}
	if input.SalesmanName != nil {
		s := invoice.NewSalesman(*input.SalesmanName)
		c.Salesman = &s
	}
	c.Remarks = input.Remarks
	c.ReplaceItems = input.ReplaceItems
	c.ResolutionNotes = strings.TrimSpace(input.ResolutionNotes)

	items, itemsErr := buildItems(input.Items)
	c.Items = items

	if err := errors.Join(requireInvoiceNo(invoiceNo), priorityErr, customerErr, itemsErr); err != nil {
		return CorrectInvoiceCommand{}, err
	}

	return CorrectInvoiceCommand{
		actor:      actor,
		invoiceNo:  strings.TrimSpace(invoiceNo),
		correction: c,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CorrectInvoiceCommand) Actor() access.Actor            { return c.actor }
func (c CorrectInvoiceCommand) InvoiceNo() string              { return c.invoiceNo }
func (c CorrectInvoiceCommand) Correction() invoice.Correction { return c.correction }

func (c CorrectInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCorrectInvoiceCommandIsNotConstructed)
}
