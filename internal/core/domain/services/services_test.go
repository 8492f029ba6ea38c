package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 11, 0, 0, 0, time.UTC)

func newInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()
	customer, err := invoice.NewCustomer("C-1", "City Pharmacy", "", "", "")
	require.NoError(t, err)
	para, err := invoice.NewItem(invoice.ItemAttrs{ItemCode: "PARA500", Name: "Paracetamol", Quantity: 20, MRP: kernel.MustMoney("3.50")})
	require.NoError(t, err)
	amox, err := invoice.NewItem(invoice.ItemAttrs{ItemCode: "AMOX250", Name: "Amoxicillin", Quantity: 10, MRP: kernel.MustMoney("85.00")})
	require.NoError(t, err)

	inv, err := invoice.NewInvoice(kernel.NewUUID(), invoice.Header{InvoiceNo: "LTPI-1", Customer: customer},
		[]invoice.Item{para, amox}, testNow)
	require.NoError(t, err)
	inv.PullEvents()
	return inv
}

func stageWorker(t *testing.T, email string, role access.Role) *services.StageWorker {
	t.Helper()
	e, err := kernel.NewEmail(email)
	require.NoError(t, err)
	return &services.StageWorker{Worker: session.Worker{Email: e, Name: email}, Role: role}
}

func start(
	t *testing.T,
	inv *invoice.Invoice,
	stage session.Stage,
	w *services.StageWorker,
	stageActive, workerActive *session.Session,
) (*session.Session, error) {
	t.Helper()
	return services.NewFulfillmentWorkflow().Start(services.StartRequest{
		SessionID:    kernel.NewUUID(),
		Invoice:      inv,
		Stage:        stage,
		Worker:       w,
		StageActive:  stageActive,
		WorkerActive: workerActive,
	}, testNow)
}
