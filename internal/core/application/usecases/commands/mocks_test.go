package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetByNo(ctx context.Context, invoiceNo string) (*invoice.Invoice, error) {
	args := m.Called(ctx, invoiceNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetByNoForUpdate(ctx context.Context, invoiceNo string) (*invoice.Invoice, error) {
	args := m.Called(ctx, invoiceNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) GetActiveByInvoiceStage(
	ctx context.Context,
	invoiceID kernel.UUID,
	stage session.Stage,
) (*session.Session, error) {
	args := m.Called(ctx, invoiceID, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionRepository) GetActiveByWorker(ctx context.Context, worker kernel.Email) (*session.Session, error) {
	args := m.Called(ctx, worker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionRepository) ListActiveStartedBefore(ctx context.Context, before time.Time) ([]*session.Session, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*session.Session), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

func (m *MockUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockInvoiceUoWFactory struct{ mock.Mock }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceUoW)
}

type MockWorkerDirectory struct{ mock.Mock }

func (m *MockWorkerDirectory) GetActiveWorker(ctx context.Context, email kernel.Email) (ports.WorkerAccount, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(ports.WorkerAccount), args.Error(1)
}

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func mustEmail(t *testing.T, raw string) kernel.Email {
	t.Helper()
	e, err := kernel.NewEmail(raw)
	require.NoError(t, err)
	return e
}

func account(t *testing.T, email string, role access.Role) ports.WorkerAccount {
	t.Helper()
	return ports.WorkerAccount{ID: kernel.NewUUID(), Email: mustEmail(t, email), Name: email, Role: role}
}

func billingActor(t *testing.T) access.Actor {
	t.Helper()
	return access.Actor{UserID: kernel.NewUUID(), Email: mustEmail(t, "billing@x.com"), Name: "Billing Desk", Role: access.RoleBilling}
}

func pickerActor(t *testing.T) access.Actor {
	t.Helper()
	return access.Actor{UserID: kernel.NewUUID(), Email: mustEmail(t, "alice@x.com"), Role: access.RolePicker}
}

func restoredInvoice(t *testing.T, status invoice.Status, billing invoice.BillingStatus) *invoice.Invoice {
	t.Helper()
	customer, err := invoice.NewCustomer("C-1", "City Pharmacy", "", "", "")
	require.NoError(t, err)
	item, err := invoice.NewItem(invoice.ItemAttrs{ItemCode: "PARA500", Name: "Paracetamol", Quantity: 20, MRP: kernel.MustMoney("3.50")})
	require.NoError(t, err)
	return invoice.RestoreInvoice(kernel.NewUUID(), invoice.Header{
		InvoiceNo: "LTPI-1",
		Customer:  customer,
		Priority:  invoice.PriorityMedium,
	}, status, billing, []invoice.Item{item}, nil, testNow, testNow)
}

func activeSession(t *testing.T, inv *invoice.Invoice, stage session.Stage, email string) *session.Session {
	t.Helper()
	w := session.Worker{Email: mustEmail(t, email)}
	var (
		s   *session.Session
		err error
	)
	switch stage {
	case session.StagePicking:
		s, err = session.NewPickingSession(kernel.NewUUID(), inv.ID(), inv.InvoiceNo(), w, "", testNow)
	case session.StagePacking:
		s, err = session.NewPackingSession(kernel.NewUUID(), inv.ID(), inv.InvoiceNo(), w, "", testNow)
	default:
		s, err = session.NewDeliverySession(kernel.NewUUID(), inv.ID(), inv.InvoiceNo(), &w,
			session.DeliveryDetails{Type: session.DeliveryDirect}, "", testNow)
	}
	require.NoError(t, err)
	return s
}
