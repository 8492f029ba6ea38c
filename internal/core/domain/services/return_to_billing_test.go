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

func TestReturnToBilling_FromPacking(t *testing.T) {
	wf := services.NewFulfillmentWorkflow()
	inv := newInvoice(t)
	picker := stageWorker(t, "picker@x.com", access.RolePicker)
	packer := stageWorker(t, "packer@x.com", access.RolePacker)
	pick, err := start(t, inv, session.StagePicking, picker, nil, nil)
	require.NoError(t, err)
	require.NoError(t, wf.Complete(inv, session.StagePicking, pick, picker.Email, "", testNow))
	pack, err := start(t, inv, session.StagePacking, packer, nil, nil)
	require.NoError(t, err)

	ret, cancelled, err := services.NewReturnToBilling().Return(
		inv, []*session.Session{pack}, kernel.NewUUID(), "wrong batch", "Billing Desk", testNow)

	require.NoError(t, err)
	assert.Equal(t, invoice.StatusReview, inv.Status())
	assert.Equal(t, invoice.BillingStatusReview, inv.BillingStatus())
	assert.Equal(t, invoice.SectionPacking, ret.Section())
	require.Len(t, cancelled, 1)
	assert.Equal(t, session.StatusCancelled, pack.Status())
	assert.Equal(t, "returned to billing: wrong batch", pack.CancelReason())

	_, _, err = services.NewReturnToBilling().Return(inv, nil, kernel.NewUUID(), "again", "", testNow)

	var conflict *errs.StateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "already_returned", conflict.Code)
}

func TestReturnToBilling_DeliveredInvoice(t *testing.T) {
	inv := invoice.RestoreInvoice(kernel.NewUUID(), invoice.Header{InvoiceNo: "LTPI-9"},
		invoice.StatusDelivered, invoice.BillingStatusBilled, nil, nil, testNow, testNow)

	_, _, err := services.NewReturnToBilling().Return(inv, nil, kernel.NewUUID(), "damaged", "", testNow)

	var conflict *errs.StateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "invalid_status", conflict.Code)
	assert.Contains(t, conflict.Message, "DELIVERED")
	assert.Equal(t, invoice.StatusDelivered, inv.Status())
}

func TestReturnToBilling_CancelledSessionIsNotReusedOnError(t *testing.T) {
	inv := newInvoice(t)
	s, err := start(t, inv, session.StagePicking, stageWorker(t, "alice@x.com", access.RolePicker), nil, nil)
	require.NoError(t, err)

	_, _, err = services.NewReturnToBilling().Return(inv, []*session.Session{s}, kernel.NewUUID(), "", "", testNow)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.True(t, s.IsActive())
	assert.Equal(t, invoice.StatusPicking, inv.Status())
}
