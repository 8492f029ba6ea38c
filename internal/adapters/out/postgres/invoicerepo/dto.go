// Package invoicerepo provides data transfer objects and mapping functions for invoice persistence.
// This package implements the repository pattern for the invoice aggregate, handling
// the conversion between the aggregate (with its items and return history) and database rows.
package invoicerepo

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoice aggregates.
type InvoiceDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceNo     string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	InvoiceDate   time.Time       `gorm:"not null;index"`
	Status        string          `gorm:"type:varchar(16);not null;index"`
	BillingStatus string          `gorm:"type:varchar(16);not null;index"`
	Priority      string          `gorm:"type:varchar(8);not null"`
	Customer      CustomerDTO     `gorm:"embedded;embeddedPrefix:customer_"`
	SalesmanName  string          `gorm:"type:varchar(255)"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedBy     string          `gorm:"type:varchar(255)"`
	CreatedUser   *uuid.UUID      `gorm:"type:uuid;index"`
	Remarks       string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime:false"`
	Items         []ItemDTO       `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	Returns       []ReturnDTO     `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

func (InvoiceDTO) TableName() string {
	return "invoices"
}

// CustomerDTO is embedded in the invoices table with the customer_ prefix.
type CustomerDTO struct {
	Code    string `gorm:"type:varchar(64);not null"`
	Name    string `gorm:"type:varchar(255);not null;index"`
	Area    string `gorm:"type:varchar(255)"`
	Phone   string `gorm:"type:varchar(64)"`
	Address string `gorm:"type:text"`
}

// ItemDTO is one invoice line. Position keeps the import order; an item code
// may repeat across lines with different batches.
type ItemDTO struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	InvoiceID     uuid.UUID       `gorm:"type:uuid;not null;index:ix_invoice_items_invoice"`
	Position      int             `gorm:"not null"`
	ItemCode      string          `gorm:"type:varchar(64);not null"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Quantity      int             `gorm:"not null"`
	MRP           decimal.Decimal `gorm:"column:mrp;type:numeric(12,2);not null"`
	BatchNo       string          `gorm:"type:varchar(64)"`
	ExpiryDate    *time.Time
	ShelfLocation string `gorm:"type:varchar(64)"`
}

func (ItemDTO) TableName() string {
	return "invoice_items"
}

// ReturnDTO is one return-to-billing record.
type ReturnDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Reason          string    `gorm:"type:text;not null"`
	ReturnedBy      string    `gorm:"type:varchar(255)"`
	Section         string    `gorm:"type:varchar(16);not null"`
	ReturnedAt      time.Time `gorm:"not null;index"`
	ResolvedAt      *time.Time
	ResolvedBy      string `gorm:"type:varchar(255)"`
	ResolutionNotes string `gorm:"type:text"`
}

func (ReturnDTO) TableName() string {
	return "invoice_returns"
}

// fromDomain converts an invoice aggregate to its database representation.
func fromDomain(inv *invoice.Invoice) InvoiceDTO {
	invoiceID := inv.ID().Google()

	var createdUser *uuid.UUID
	if u := inv.CreatedUser(); u != nil {
		raw := u.Google()
		createdUser = &raw
	}

	items := make([]ItemDTO, 0, len(inv.Items()))
	for pos, it := range inv.Items() {
		items = append(items, ItemDTO{
			InvoiceID:     invoiceID,
			Position:      pos,
			ItemCode:      it.ItemCode(),
			Name:          it.Name(),
			Quantity:      it.Quantity(),
			MRP:           it.MRP().Decimal(),
			BatchNo:       it.BatchNo(),
			ExpiryDate:    it.ExpiryDate(),
			ShelfLocation: it.ShelfLocation(),
		})
	}

	returns := make([]ReturnDTO, 0, len(inv.Returns()))
	for _, r := range inv.Returns() {
		returns = append(returns, ReturnDTO{
			ID:              r.ID().Google(),
			InvoiceID:       invoiceID,
			Reason:          r.Reason(),
			ReturnedBy:      r.ReturnedBy(),
			Section:         string(r.Section()),
			ReturnedAt:      r.ReturnedAt(),
			ResolvedAt:      r.ResolvedAt(),
			ResolvedBy:      r.ResolvedBy(),
			ResolutionNotes: r.ResolutionNotes(),
		})
	}

	customer := inv.Customer()
	return InvoiceDTO{
		ID:            invoiceID,
		InvoiceNo:     inv.InvoiceNo(),
		InvoiceDate:   inv.InvoiceDate(),
		Status:        inv.Status().String(),
		BillingStatus: inv.BillingStatus().String(),
		Priority:      inv.Priority().String(),
		Customer: CustomerDTO{
			Code:    customer.Code(),
			Name:    customer.Name(),
			Area:    customer.Area(),
			Phone:   customer.Phone(),
			Address: customer.Address(),
		},
		SalesmanName: inv.Salesman().Name(),
		TotalAmount:  inv.TotalAmount().Decimal(),
		CreatedBy:    inv.CreatedBy(),
		CreatedUser:  createdUser,
		Remarks:      inv.Remarks(),
		CreatedAt:    inv.CreatedAt(),
		UpdatedAt:    inv.UpdatedAt(),
		Items:        items,
		Returns:      returns,
	}
}

// toDomain rebuilds the aggregate with RestoreInvoice. Items must be ordered by position.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	status, statusErr := invoice.ParseStatus(dto.Status)
	billing, billingErr := invoice.ParseBillingStatus(dto.BillingStatus)
	priority, priorityErr := invoice.ParsePriority(dto.Priority)
	customer, customerErr := invoice.NewCustomer(
		dto.Customer.Code, dto.Customer.Name, dto.Customer.Area, dto.Customer.Phone, dto.Customer.Address)
	if err = errors.Join(statusErr, billingErr, priorityErr, customerErr); err != nil {
		return nil, err
	}

	var createdUser *kernel.UUID
	if dto.CreatedUser != nil {
		u, userErr := kernel.UUIDFromGoogle(*dto.CreatedUser)
		if userErr != nil {
			return nil, userErr
		}
		createdUser = &u
	}

	items := make([]invoice.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		mrp, mrpErr := kernel.NewMoney(itemDTO.MRP)
		if mrpErr != nil {
			return nil, mrpErr
		}
		it, itemErr := invoice.NewItem(invoice.ItemAttrs{
			ItemCode:      itemDTO.ItemCode,
			Name:          itemDTO.Name,
			Quantity:      itemDTO.Quantity,
			MRP:           mrp,
			BatchNo:       itemDTO.BatchNo,
			ExpiryDate:    itemDTO.ExpiryDate,
			ShelfLocation: itemDTO.ShelfLocation,
		})
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, it)
	}

	returns := make([]*invoice.Return, 0, len(dto.Returns))
	for _, returnDTO := range dto.Returns {
		r, returnErr := returnToDomain(returnDTO)
		if returnErr != nil {
			return nil, returnErr
		}
		returns = append(returns, r)
	}

	return invoice.RestoreInvoice(id, invoice.Header{
		InvoiceNo:   dto.InvoiceNo,
		InvoiceDate: dto.InvoiceDate,
		Priority:    priority,
		Customer:    customer,
		Salesman:    invoice.NewSalesman(dto.SalesmanName),
		CreatedBy:   dto.CreatedBy,
		CreatedUser: createdUser,
		Remarks:     dto.Remarks,
	}, status, billing, items, returns, dto.CreatedAt, dto.UpdatedAt), nil
}

func returnToDomain(dto ReturnDTO) (*invoice.Return, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return invoice.RestoreReturn(
		id,
		dto.Reason,
		dto.ReturnedBy,
		invoice.Section(dto.Section),
		dto.ReturnedAt,
		dto.ResolvedAt,
		dto.ResolvedBy,
		dto.ResolutionNotes,
	), nil
}
