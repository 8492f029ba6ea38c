package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrImportInvoiceCommandIsNotConstructed = errors.New(
	"ImportInvoiceCommand must be created via NewImportInvoiceCommand constructor",
)

// CustomerInput is the raw customer block of an import or correction payload.
type CustomerInput struct {
	Code    string
	Name    string
	Area    string
	Phone   string
	Address string
}

// ItemInput is one raw invoice line. MRP is a decimal literal such as "85.00".
type ItemInput struct {
	ItemCode      string
	Name          string
	Quantity      int
	MRP           string
	BatchNo       string
	ExpiryDate    *time.Time
	ShelfLocation string
}

// ImportInvoiceInput is the payload pushed by the billing system.
type ImportInvoiceInput struct {
	InvoiceNo    string
	InvoiceDate  time.Time
	Priority     string
	Customer     CustomerInput
	SalesmanName string
	CreatedBy    string
	Remarks      string
	Items        []ItemInput
}

// ImportInvoiceCommand registers a billed invoice, keyed by invoice_no.
//
// Example:
//
//	cmd, err := NewImportInvoiceCommand(actor, kernel.NewUUID(), input)
//	if err != nil {
//	    return err // per-field validation errors joined together
//	}
//	result, err := handler.Handle(ctx, cmd)
type ImportInvoiceCommand struct {
	actor     access.Actor
	invoiceID kernel.UUID
	header    invoice.Header
	items     []invoice.Item

	guard guard.ConstructorGuard
}

// NewImportInvoiceCommand validates input into domain values. Every offending
// field is reported, not only the first.
func NewImportInvoiceCommand(actor access.Actor, invoiceID kernel.UUID, input ImportInvoiceInput) (ImportInvoiceCommand, error) {
	priority, priorityErr := invoice.ParsePriority(input.Priority)
	customer, customerErr := invoice.NewCustomer(
		input.Customer.Code, input.Customer.Name, input.Customer.Area, input.Customer.Phone, input.Customer.Address)
	items, itemsErr := buildItems(input.Items)

	var createdUser *kernel.UUID
	if !actor.UserID.IsZero() {
		id := actor.UserID
		createdUser = &id
	}
	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = actor.DisplayName()
	}

	if err := errors.Join(invoiceID.Validate(), priorityErr, customerErr, itemsErr); err != nil {
		return ImportInvoiceCommand{}, err
	}

	return ImportInvoiceCommand{
		actor:     actor,
		invoiceID: invoiceID,
		header: invoice.Header{
			InvoiceNo:   input.InvoiceNo,
			InvoiceDate: input.InvoiceDate,
			Priority:    priority,
			Customer:    customer,
			Salesman:    invoice.NewSalesman(input.SalesmanName),
			CreatedBy:   createdBy,
			CreatedUser: createdUser,
			Remarks:     input.Remarks,
		},
		items: items,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ImportInvoiceCommand) Actor() access.Actor    { return c.actor }
func (c ImportInvoiceCommand) InvoiceID() kernel.UUID { return c.invoiceID }
func (c ImportInvoiceCommand) Header() invoice.Header { return c.header }
func (c ImportInvoiceCommand) Items() []invoice.Item  { return c.items }

func (c ImportInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrImportInvoiceCommandIsNotConstructed)
}

// buildItems converts raw lines, prefixing errors with the line position.
func buildItems(inputs []ItemInput) ([]invoice.Item, error) {
	items := make([]invoice.Item, 0, len(inputs))
	var errs []error
	for i, in := range inputs {
		mrp, err := kernel.MoneyFromString(in.MRP)
		if err != nil {
			errs = append(errs, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		it, err := invoice.NewItem(invoice.ItemAttrs{
			ItemCode:      in.ItemCode,
			Name:          in.Name,
			Quantity:      in.Quantity,
			MRP:           mrp,
			BatchNo:       in.BatchNo,
			ExpiryDate:    in.ExpiryDate,
			ShelfLocation: in.ShelfLocation,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		items = append(items, it)
	}
	return items, errors.Join(errs...)
}
