package notifier

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
)

// Message is the wire form of an invoice event, shared by the Redis channel and
// the SSE stream.
type Message struct {
	Type          string         `json:"type"`
	InvoiceNo     string         `json:"invoice_no"`
	Status        string         `json:"status"`
	BillingStatus string         `json:"billing_status"`
	OccurredAt    time.Time      `json:"occurred_at"`
	Invoice       InvoicePayload `json:"invoice"`
}

type InvoicePayload struct {
	ID            string          `json:"id"`
	InvoiceNo     string          `json:"invoice_no"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	Status        string          `json:"status"`
	BillingStatus string          `json:"billing_status"`
	Priority      string          `json:"priority"`
	Customer      CustomerPayload `json:"customer"`
	SalesmanName  string          `json:"salesman_name"`
	Items         []ItemPayload   `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CreatedBy     string          `json:"created_by"`
	Remarks       string          `json:"remarks"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CustomerPayload struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Area    string `json:"area"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ItemPayload struct {
	ItemCode      string          `json:"item_code"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	MRP           decimal.Decimal `json:"mrp"`
	Amount        decimal.Decimal `json:"amount"`
	BatchNo       string          `json:"batch_no,omitempty"`
	ExpiryDate    *time.Time      `json:"expiry_date,omitempty"`
	ShelfLocation string          `json:"shelf_location,omitempty"`
}

// NewMessage converts an event into its wire form.
func NewMessage(event ports.InvoiceEvent) Message {
	snap := event.Invoice
	items := make([]ItemPayload, 0, len(snap.Items))
	for _, it := range snap.Items {
		items = append(items, ItemPayload{
			ItemCode:      it.ItemCode,
			Name:          it.Name,
			Quantity:      it.Quantity,
			MRP:           it.MRP,
			Amount:        it.Amount,
			BatchNo:       it.BatchNo,
			ExpiryDate:    it.ExpiryDate,
			ShelfLocation: it.ShelfLocation,
		})
	}

	return Message{
		Type:          string(event.Type),
		InvoiceNo:     snap.InvoiceNo,
		Status:        snap.Status,
		BillingStatus: snap.BillingStatus,
		OccurredAt:    event.OccurredAt,
		Invoice: InvoicePayload{
			ID:            snap.ID,
			InvoiceNo:     snap.InvoiceNo,
			InvoiceDate:   snap.InvoiceDate,
			Status:        snap.Status,
			BillingStatus: snap.BillingStatus,
			Priority:      snap.Priority,
			Customer: CustomerPayload{
				Code:    snap.Customer.Code,
				Name:    snap.Customer.Name,
				Area:    snap.Customer.Area,
				Phone:   snap.Customer.Phone,
				Address: snap.Customer.Address,
			},
			SalesmanName: snap.SalesmanName,
			Items:        items,
			TotalAmount:  snap.TotalAmount,
			CreatedBy:    snap.CreatedBy,
			Remarks:      snap.Remarks,
			CreatedAt:    snap.CreatedAt,
			UpdatedAt:    snap.UpdatedAt,
		},
	}
}

// Event converts the wire form back into an event.
func (m Message) Event() ports.InvoiceEvent {
	p := m.Invoice
	items := make([]invoice.ItemSnapshot, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, invoice.ItemSnapshot{
			ItemCode:      it.ItemCode,
			Name:          it.Name,
			Quantity:      it.Quantity,
			MRP:           it.MRP,
			Amount:        it.Amount,
			BatchNo:       it.BatchNo,
			ExpiryDate:    it.ExpiryDate,
			ShelfLocation: it.ShelfLocation,
		})
	}

	return ports.InvoiceEvent{
		Type:       invoice.EventType(m.Type),
		OccurredAt: m.OccurredAt,
		Invoice: invoice.Snapshot{
			ID:            p.ID,
			InvoiceNo:     p.InvoiceNo,
			InvoiceDate:   p.InvoiceDate,
			Status:        p.Status,
			BillingStatus: p.BillingStatus,
			Priority:      p.Priority,
			Customer: invoice.CustomerSnapshot{
				Code:    p.Customer.Code,
				Name:    p.Customer.Name,
				Area:    p.Customer.Area,
				Phone:   p.Customer.Phone,
				Address: p.Customer.Address,
			},
			SalesmanName: p.SalesmanName,
			Items:        items,
			TotalAmount:  p.TotalAmount,
			CreatedBy:    p.CreatedBy,
			Remarks:      p.Remarks,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		},
	}
}

// Marshal encodes the event as JSON.
func Marshal(event ports.InvoiceEvent) ([]byte, error) {
	return json.Marshal(NewMessage(event))
}

// Unmarshal decodes an event encoded with Marshal.
func Unmarshal(data []byte) (ports.InvoiceEvent, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return ports.InvoiceEvent{}, err
	}
	return m.Event(), nil
}
