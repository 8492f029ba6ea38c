package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ItemAttrs carries the raw attributes of an invoice line before validation.
type ItemAttrs struct {
	ItemCode      string
	Name          string
	Quantity      int
	MRP           kernel.Money
	BatchNo       string
	ExpiryDate    *time.Time
	ShelfLocation string
}

// Item is one line of an invoice. Items are values owned by the invoice: they are
// replaced or merged by line key, never edited in place. The same item code may
// appear on several lines, one per batch.
type Item struct {
	itemCode      string
	name          string
	quantity      int
	mrp           kernel.Money
	batchNo       string
	expiryDate    *time.Time
	shelfLocation string
}

// NewItem validates attrs. item_code and name are required, quantity must be
// positive and mrp non-negative.
func NewItem(attrs ItemAttrs) (Item, error) {
	it := Item{
		itemCode:      strings.TrimSpace(attrs.ItemCode),
		name:          strings.TrimSpace(attrs.Name),
		quantity:      attrs.Quantity,
		mrp:           attrs.MRP,
		batchNo:       strings.TrimSpace(attrs.BatchNo),
		expiryDate:    attrs.ExpiryDate,
		shelfLocation: strings.TrimSpace(attrs.ShelfLocation),
	}

	var codeErr, nameErr, qtyErr, mrpErr error
	if it.itemCode == "" {
		codeErr = errs.NewValueIsRequiredError("item_code")
	}
	if it.name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if it.quantity <= 0 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", it.quantity))
	}
	if it.mrp.Decimal().IsNegative() {
		mrpErr = errs.NewValueIsInvalidErrorWithCause("mrp", fmt.Errorf("%s is negative", it.mrp))
	}
	if err := errors.Join(codeErr, nameErr, qtyErr, mrpErr); err != nil {
		return Item{}, fmt.Errorf("item %q: %w", it.itemCode, err)
	}
	return it, nil
}

func (i Item) ItemCode() string       { return i.itemCode }
func (i Item) Name() string           { return i.name }
func (i Item) Quantity() int          { return i.quantity }
func (i Item) MRP() kernel.Money      { return i.mrp }
func (i Item) BatchNo() string        { return i.batchNo }
func (i Item) ExpiryDate() *time.Time { return i.expiryDate }
func (i Item) ShelfLocation() string  { return i.shelfLocation }

// lineKey identifies a line for merging: item code plus batch number.
type lineKey struct {
	itemCode string
	batchNo  string
}

func (i Item) key() lineKey {
	return lineKey{itemCode: i.itemCode, batchNo: i.batchNo}
}

// Amount is quantity × mrp.
func (i Item) Amount() kernel.Money {
	return i.mrp.Times(i.quantity)
}

// mergeItems overlays incoming onto existing by item code and batch number. The
// first existing line with the same key is replaced in place, other lines are
// appended in incoming order.
func mergeItems(existing, incoming []Item) []Item {
	merged := make([]Item, len(existing))
	copy(merged, existing)

	index := make(map[lineKey]int, len(merged))
	for i, it := range merged {
		if _, ok := index[it.key()]; !ok {
			index[it.key()] = i
		}
	}
	for _, it := range incoming {
		if pos, ok := index[it.key()]; ok {
			merged[pos] = it
			continue
		}
		index[it.key()] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

func sumItems(items []Item) kernel.Money {
	total := kernel.ZeroMoney
	for _, it := range items {
		total = total.Add(it.Amount())
	}
	return total
}
