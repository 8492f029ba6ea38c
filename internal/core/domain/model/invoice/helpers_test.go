package invoice_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func mustItem(t *testing.T, code string, qty int, mrp string) invoice.Item {
	t.Helper()
	it, err := invoice.NewItem(invoice.ItemAttrs{
		ItemCode:      code,
		Name:          "Item " + code,
		Quantity:      qty,
		MRP:           kernel.MustMoney(mrp),
		ShelfLocation: "A-01",
	})
	require.NoError(t, err)
	return it
}

func mustBatchItem(t *testing.T, code, batch string, qty int, mrp string) invoice.Item {
	t.Helper()
	it, err := invoice.NewItem(invoice.ItemAttrs{
		ItemCode: code,
		Name:     "Item " + code,
		Quantity: qty,
		MRP:      kernel.MustMoney(mrp),
		BatchNo:  batch,
	})
	require.NoError(t, err)
	return it
}

func newTestInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()
	customer, err := invoice.NewCustomer("C-100", "City Pharmacy", "North", "555-0100", "1 Main St")
	require.NoError(t, err)

	inv, err := invoice.NewInvoice(kernel.NewUUID(), invoice.Header{
		InvoiceNo: "LTPI-1",
		Customer:  customer,
		Salesman:  invoice.NewSalesman("Ravi"),
		CreatedBy: "tally-sync",
	}, []invoice.Item{
		mustItem(t, "PARA500", 20, "3.50"),
		mustItem(t, "AMOX250", 10, "85.00"),
	}, testNow)
	require.NoError(t, err)
	return inv
}

// advanceTo walks a fresh invoice along the forward chain until it reaches target.
func advanceTo(t *testing.T, inv *invoice.Invoice, target invoice.Status) {
	t.Helper()
	steps := []func(time.Time) error{
		inv.StartPicking, inv.CompletePicking, inv.StartPacking,
		inv.CompletePacking, inv.Dispatch, inv.Deliver,
	}
	for _, step := range steps {
		if inv.Status() == target {
			return
		}
		require.NoError(t, step(testNow))
	}
	require.Equal(t, target, inv.Status())
}
