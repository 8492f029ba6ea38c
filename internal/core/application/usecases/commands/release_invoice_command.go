package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/pkg/guard"
)

var ErrReleaseInvoiceCommandIsNotConstructed = errors.New(
	"ReleaseInvoiceCommand must be created via NewReleaseInvoiceCommand constructor",
)

// ReleaseInvoiceCommand puts a corrected (REVIEW, RE_INVOICED) invoice back into
// the PENDING queue so it can be picked again.
type ReleaseInvoiceCommand struct {
	actor     access.Actor
	invoiceNo string

	guard guard.ConstructorGuard
}

func NewReleaseInvoiceCommand(actor access.Actor, invoiceNo string) (ReleaseInvoiceCommand, error) {
	if err := requireInvoiceNo(invoiceNo); err != nil {
		return ReleaseInvoiceCommand{}, err
	}
	return ReleaseInvoiceCommand{
		actor:     actor,
		invoiceNo: strings.TrimSpace(invoiceNo),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseInvoiceCommand) Actor() access.Actor { return c.actor }
func (c ReleaseInvoiceCommand) InvoiceNo() string   { return c.invoiceNo }

func (c ReleaseInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrReleaseInvoiceCommandIsNotConstructed)
}
