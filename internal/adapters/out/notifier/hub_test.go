package notifier_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/notifier"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(no string, status string) ports.InvoiceEvent {
	return ports.InvoiceEvent{
		Type:       invoice.EventInvoiceStatusChanged,
		OccurredAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		Invoice: invoice.Snapshot{
			InvoiceNo:     no,
			Status:        status,
			BillingStatus: "BILLED",
			Priority:      "HIGH",
			Customer:      invoice.CustomerSnapshot{Code: "C-1", Name: "City Pharmacy"},
			Items: []invoice.ItemSnapshot{{
				ItemCode: "PARA500",
				Name:     "Paracetamol",
				Quantity: 20,
				MRP:      decimal.RequireFromString("3.50"),
				Amount:   decimal.RequireFromString("70.00"),
			}},
			TotalAmount: decimal.RequireFromString("920.00"),
		},
	}
}

func receive(t *testing.T, ch <-chan ports.InvoiceEvent) ports.InvoiceEvent {
	t.Helper()
	select {
	case e, ok := <-ch:
		require.True(t, ok, "channel closed")
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
		return ports.InvoiceEvent{}
	}
}

func TestHub_FansOutToEverySubscriber(t *testing.T) {
	hub := notifier.NewHub(4, nil)
	first, cancelFirst := hub.Subscribe(ports.InvoicesChannel)
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe(ports.InvoicesChannel)
	defer cancelSecond()
	other, cancelOther := hub.Subscribe("other")
	defer cancelOther()

	require.NoError(t, hub.Publish(t.Context(), ports.InvoicesChannel, event("LTPI-1", "PICKING")))

	assert.Equal(t, "LTPI-1", receive(t, first).Invoice.InvoiceNo)
	assert.Equal(t, "LTPI-1", receive(t, second).Invoice.InvoiceNo)
	assert.Empty(t, other)
}

func TestHub_PublishWithoutSubscribersIsNoop(t *testing.T) {
	hub := notifier.NewHub(1, nil)
	require.NoError(t, hub.Publish(context.Background(), ports.InvoicesChannel, event("LTPI-1", "PENDING")))
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	hub := notifier.NewHub(1, nil)
	slow, cancel := hub.Subscribe(ports.InvoicesChannel)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, status := range []string{"PICKING", "PICKED", "PACKING"} {
			_ = hub.Publish(t.Context(), ports.InvoicesChannel, event("LTPI-1", status))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	assert.Equal(t, "PICKING", receive(t, slow).Invoice.Status)
	assert.Empty(t, slow, "later events were dropped")
}

func TestHub_CancelClosesAndUnsubscribes(t *testing.T) {
	hub := notifier.NewHub(1, nil)
	ch, cancel := hub.Subscribe(ports.InvoicesChannel)
	require.Equal(t, 1, hub.Subscribers(ports.InvoicesChannel))

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	assert.Zero(t, hub.Subscribers(ports.InvoicesChannel))
	require.NoError(t, hub.Publish(t.Context(), ports.InvoicesChannel, event("LTPI-1", "PENDING")))
}

func TestHub_ConcurrentPublishAndCancel(t *testing.T) {
	hub := notifier.NewHub(8, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		ch, cancel := hub.Subscribe(ports.InvoicesChannel)
		go func() {
			defer wg.Done()
			for range ch {
			}
		}()
		go func() {
			defer wg.Done()
			_ = hub.Publish(t.Context(), ports.InvoicesChannel, event("LTPI-1", "PENDING"))
			cancel()
		}()
	}
	wg.Wait()

	assert.Zero(t, hub.Subscribers(ports.InvoicesChannel))
}

func TestMessage_WireShape(t *testing.T) {
	data, err := notifier.Marshal(event("LTPI-1", "PICKING"))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "invoice_status_changed", raw["type"])
	assert.Equal(t, "LTPI-1", raw["invoice_no"])
	assert.Equal(t, "PICKING", raw["status"])
	assert.Equal(t, "BILLED", raw["billing_status"])

	inv, ok := raw["invoice"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "920", inv["total_amount"])
	assert.Equal(t, "City Pharmacy", inv["customer"].(map[string]any)["name"])

	back, err := notifier.Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("920").Equal(back.Invoice.TotalAmount))
	assert.Equal(t, invoice.EventInvoiceStatusChanged, back.Type)
}
