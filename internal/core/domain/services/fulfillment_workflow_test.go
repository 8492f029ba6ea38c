package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFulfillmentWorkflow_StartPicking(t *testing.T) {
	alice := stageWorker(t, "alice@x.com", access.RolePicker)
	bob := stageWorker(t, "bob@x.com", access.RolePicker)

	t.Run("first picker wins, second gets active-session conflict", func(t *testing.T) {
		inv := newInvoice(t)

		aliceSession, err := start(t, inv, session.StagePicking, alice, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, invoice.StatusPicking, inv.Status())
		assert.Equal(t, session.StatusPreparing, aliceSession.Status())

		_, err = start(t, inv, session.StagePicking, bob, aliceSession, nil)

		var conflict *errs.StateConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "session_active", conflict.Code)
		assert.Contains(t, err.Error(), "alice@x.com")
		assert.Equal(t, invoice.StatusPicking, inv.Status())
	})

	t.Run("busy worker cannot start a second task", func(t *testing.T) {
		first := newInvoice(t)
		busy, err := start(t, first, session.StagePicking, alice, nil, nil)
		require.NoError(t, err)

		second := newInvoice(t)
		_, err = start(t, second, session.StagePicking, alice, nil, busy)

		var conflict *errs.StateConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "worker_busy", conflict.Code)
		assert.Equal(t, invoice.StatusPending, second.Status())
	})

	t.Run("wrong status fails and leaves invoice unchanged", func(t *testing.T) {
		inv := newInvoice(t)

		_, err := start(t, inv, session.StagePacking, stageWorker(t, "p@x.com", access.RolePacker), nil, nil)

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Contains(t, err.Error(), "status is PENDING, required PICKED")
		assert.Equal(t, invoice.StatusPending, inv.Status())
		assert.Empty(t, inv.PullEvents())
	})

	t.Run("role must match stage", func(t *testing.T) {
		inv := newInvoice(t)

		_, err := start(t, inv, session.StagePicking, stageWorker(t, "d@x.com", access.RoleDriver), nil, nil)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, invoice.StatusPending, inv.Status())
	})

	t.Run("privileged worker may work any stage", func(t *testing.T) {
		inv := newInvoice(t)

		_, err := start(t, inv, session.StagePicking, stageWorker(t, "admin@x.com", access.RoleAdmin), nil, nil)

		require.NoError(t, err)
	})
}

func TestFulfillmentWorkflow_CompletePicking(t *testing.T) {
	wf := services.NewFulfillmentWorkflow()
	alice := stageWorker(t, "alice@x.com", access.RolePicker)
	bob, _ := kernel.NewEmail("bob@x.com")

	inv := newInvoice(t)
	s, err := start(t, inv, session.StagePicking, alice, nil, nil)
	require.NoError(t, err)

	err = wf.Complete(inv, session.StagePicking, s, bob, "", testNow)
	var conflict *errs.StateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "worker_mismatch", conflict.Code)
	assert.Equal(t, invoice.StatusPicking, inv.Status())
	assert.True(t, s.IsActive())

	require.NoError(t, wf.Complete(inv, session.StagePicking, s, alice.Email, "all lines", testNow))
	assert.Equal(t, invoice.StatusPicked, inv.Status())
	assert.Equal(t, session.StatusPicked, s.Status())
	assert.False(t, s.IsActive())
}

func TestFulfillmentWorkflow_CompleteWithoutSession(t *testing.T) {
	inv := newInvoice(t)
	alice := stageWorker(t, "alice@x.com", access.RolePicker)

	err := services.NewFulfillmentWorkflow().Complete(inv, session.StagePicking, nil, alice.Email, "", testNow)

	var conflict *errs.StateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "no_active_session", conflict.Code)
}

func TestFulfillmentWorkflow_FullPipeline(t *testing.T) {
	wf := services.NewFulfillmentWorkflow()
	inv := newInvoice(t)
	picker := stageWorker(t, "picker@x.com", access.RolePicker)
	packer := stageWorker(t, "packer@x.com", access.RolePacker)
	driver := stageWorker(t, "driver@x.com", access.RoleDriver)

	pick, err := start(t, inv, session.StagePicking, picker, nil, nil)
	require.NoError(t, err)
	require.NoError(t, wf.Complete(inv, session.StagePicking, pick, picker.Email, "", testNow))

	pack, err := start(t, inv, session.StagePacking, packer, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPacking, inv.Status())
	require.NoError(t, wf.Complete(inv, session.StagePacking, pack, packer.Email, "", testNow))
	assert.Equal(t, invoice.StatusPacked, inv.Status())

	deliver, err := services.NewFulfillmentWorkflow().Start(services.StartRequest{
		SessionID: kernel.NewUUID(),
		Invoice:   inv,
		Stage:     session.StageDelivery,
		Worker:    driver,
		Delivery:  session.DeliveryDetails{Type: session.DeliveryDirect},
	}, testNow)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusDispatched, inv.Status())

	delivered, err := wf.CompleteDelivery(inv, deliver, driver.Email, session.StatusInTransit, "at hub", testNow)
	require.NoError(t, err)
	assert.False(t, delivered)
	assert.Equal(t, invoice.StatusDispatched, inv.Status())

	delivered, err = wf.CompleteDelivery(inv, deliver, driver.Email, session.StatusDelivered, "signed", testNow)
	require.NoError(t, err)
	assert.True(t, delivered)
	assert.Equal(t, invoice.StatusDelivered, inv.Status())
}

func TestFulfillmentWorkflow_CourierDelivery(t *testing.T) {
	wf := services.NewFulfillmentWorkflow()
	inv := newInvoice(t)
	picker := stageWorker(t, "picker@x.com", access.RolePicker)
	packer := stageWorker(t, "packer@x.com", access.RolePacker)
	pick, _ := start(t, inv, session.StagePicking, picker, nil, nil)
	require.NoError(t, wf.Complete(inv, session.StagePicking, pick, picker.Email, "", testNow))
	pack, _ := start(t, inv, session.StagePacking, packer, nil, nil)
	require.NoError(t, wf.Complete(inv, session.StagePacking, pack, packer.Email, "", testNow))

	t.Run("missing courier name fails", func(t *testing.T) {
		_, err := wf.Start(services.StartRequest{
			SessionID: kernel.NewUUID(),
			Invoice:   inv,
			Stage:     session.StageDelivery,
			Delivery:  session.DeliveryDetails{Type: session.DeliveryCourier},
		}, testNow)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, invoice.StatusPacked, inv.Status())
	})

	t.Run("courier delivery completes without identity", func(t *testing.T) {
		s, err := wf.Start(services.StartRequest{
			SessionID: kernel.NewUUID(),
			Invoice:   inv,
			Stage:     session.StageDelivery,
			Delivery:  session.DeliveryDetails{Type: session.DeliveryCourier, CourierName: "BlueDart"},
		}, testNow)
		require.NoError(t, err)

		delivered, err := wf.CompleteDelivery(inv, s, kernel.Email{}, session.StatusDelivered, "", testNow)

		require.NoError(t, err)
		assert.True(t, delivered)
	})
}
