package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrReturnToBillingCommandIsNotConstructed = errors.New(
	"ReturnToBillingCommand must be created via NewReturnToBillingCommand constructor",
)

// ReturnToBillingCommand sends an in-progress invoice back to billing.
// returnedBy overrides the actor's name in the return record when set.
type ReturnToBillingCommand struct {
	actor      access.Actor
	returnID   kernel.UUID
	invoiceNo  string
	reason     string
	returnedBy string

	guard guard.ConstructorGuard
}

func NewReturnToBillingCommand(
	actor access.Actor,
	returnID kernel.UUID,
	invoiceNo, reason, returnedBy string,
) (ReturnToBillingCommand, error) {
	var reasonErr error
	if strings.TrimSpace(reason) == "" {
		reasonErr = errs.NewValueIsRequiredError("return_reason")
	}
	if err := errors.Join(returnID.Validate(), requireInvoiceNo(invoiceNo), reasonErr); err != nil {
		return ReturnToBillingCommand{}, err
	}

	returnedBy = strings.TrimSpace(returnedBy)
	if returnedBy == "" {
		returnedBy = actor.DisplayName()
	}

	return ReturnToBillingCommand{
		actor:      actor,
		returnID:   returnID,
		invoiceNo:  strings.TrimSpace(invoiceNo),
		reason:     reason,
		returnedBy: returnedBy,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ReturnToBillingCommand) Actor() access.Actor   { return c.actor }
func (c ReturnToBillingCommand) ReturnID() kernel.UUID { return c.returnID }
func (c ReturnToBillingCommand) InvoiceNo() string     { return c.invoiceNo }
func (c ReturnToBillingCommand) Reason() string        { return c.reason }
func (c ReturnToBillingCommand) ReturnedBy() string    { return c.returnedBy }

func (c ReturnToBillingCommand) Validate() error {
	return c.guard.Validate(ErrReturnToBillingCommandIsNotConstructed)
}
