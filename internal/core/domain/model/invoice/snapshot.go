package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is a plain, serializable copy of an invoice used as the payload of
// change notifications.
type Snapshot struct {
	ID            string
	InvoiceNo     string
	InvoiceDate   time.Time
	Status        string
	BillingStatus string
	Priority      string
	Customer      CustomerSnapshot
	SalesmanName  string
	Items         []ItemSnapshot
	TotalAmount   decimal.Decimal
	CreatedBy     string
	Remarks       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CustomerSnapshot struct {
	Code    string
	Name    string
	Area    string
	Phone   string
	Address string
}

type ItemSnapshot struct {
	ItemCode      string
	Name          string
	Quantity      int
	MRP           decimal.Decimal
	Amount        decimal.Decimal
	BatchNo       string
	ExpiryDate    *time.Time
	ShelfLocation string
}

// Snapshot copies the current state of the invoice.
func (i *Invoice) Snapshot() Snapshot {
	items := make([]ItemSnapshot, 0, len(i.items))
	for _, it := range i.items {
		items = append(items, ItemSnapshot{
			ItemCode:      it.itemCode,
			Name:          it.name,
			Quantity:      it.quantity,
			MRP:           it.mrp.Decimal(),
			Amount:        it.Amount().Decimal(),
			BatchNo:       it.batchNo,
			ExpiryDate:    it.expiryDate,
			ShelfLocation: it.shelfLocation,
		})
	}
	return Snapshot{
		ID:            i.id.String(),
		InvoiceNo:     i.invoiceNo,
		InvoiceDate:   i.invoiceDate,
		Status:        i.status.String(),
		BillingStatus: i.billingStatus.String(),
		Priority:      i.priority.String(),
		Customer: CustomerSnapshot{
			Code:    i.customer.code,
			Name:    i.customer.name,
			Area:    i.customer.area,
			Phone:   i.customer.phone,
			Address: i.customer.address,
		},
		SalesmanName: i.salesman.name,
		Items:        items,
		TotalAmount:  i.total.Decimal(),
		CreatedBy:    i.createdBy,
		Remarks:      i.remarks,
		CreatedAt:    i.createdAt,
		UpdatedAt:    i.updatedAt,
	}
}
