package sessionrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/sessionrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SessionRepositoryIntegrationTestSuite verifies the session registry constraints
// against PostgreSQL.
type SessionRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *sessionrepo.GormSessionRepository
}

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func (suite *SessionRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&sessionrepo.SessionDTO{}))
}

func (suite *SessionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE sessions").Error)
	suite.repository = sessionrepo.NewGormSessionRepository(suite.db)
}

func (suite *SessionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SessionRepositoryIntegrationTestSuite) TestAdd_ThenLookupByInvoiceStageAndWorker() {
	ctx := context.Background()
	invoiceID := kernel.NewUUID()
	s := suite.picking(invoiceID, "LTPI-1", "alice@x.com", testNow)

	suite.Require().NoError(suite.repository.Add(ctx, s))

	byStage, err := suite.repository.GetActiveByInvoiceStage(ctx, invoiceID, session.StagePicking)
	suite.Require().NoError(err)
	suite.True(s.ID().IsEqual(byStage.ID()))
	suite.Equal(session.StatusPreparing, byStage.Status())
	suite.Require().NotNil(byStage.Worker())
	suite.Equal("alice@x.com", byStage.Worker().Email.String())

	byWorker, err := suite.repository.GetActiveByWorker(ctx, suite.email("alice@x.com"))
	suite.Require().NoError(err)
	suite.True(s.ID().IsEqual(byWorker.ID()))

	_, err = suite.repository.GetActiveByInvoiceStage(ctx, invoiceID, session.StagePacking)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SessionRepositoryIntegrationTestSuite) TestAdd_SecondActiveSessionForWorker_IsStateConflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.picking(kernel.NewUUID(), "LTPI-1", "alice@x.com", testNow)))

	err := suite.repository.Add(ctx, suite.picking(kernel.NewUUID(), "LTPI-2", "alice@x.com", testNow))

	suite.Require().ErrorIs(err, errs.ErrStateConflict)
	suite.assertSessionCount(1)
}

func (suite *SessionRepositoryIntegrationTestSuite) TestAdd_SecondActiveSessionForInvoiceStage_IsStateConflict() {
	ctx := context.Background()
	invoiceID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.picking(invoiceID, "LTPI-1", "alice@x.com", testNow)))

	err := suite.repository.Add(ctx, suite.picking(invoiceID, "LTPI-1", "bob@x.com", testNow))

	suite.Require().ErrorIs(err, errs.ErrStateConflict)
	suite.assertSessionCount(1)
}

func (suite *SessionRepositoryIntegrationTestSuite) TestUpdate_ClosedSessionFreesWorker() {
	ctx := context.Background()
	alice := suite.email("alice@x.com")
	first := suite.picking(kernel.NewUUID(), "LTPI-1", "alice@x.com", testNow)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	suite.Require().NoError(first.Complete(alice, "done", testNow.Add(5*time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	_, err := suite.repository.GetActiveByWorker(ctx, alice)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	second := suite.picking(kernel.NewUUID(), "LTPI-2", "alice@x.com", testNow.Add(6*time.Minute))
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.assertSessionCount(2)
}

func (suite *SessionRepositoryIntegrationTestSuite) TestCourierDelivery_HasNoWorker() {
	ctx := context.Background()
	invoiceID := kernel.NewUUID()
	s, err := session.NewDeliverySession(kernel.NewUUID(), invoiceID, "LTPI-1", nil, session.DeliveryDetails{
		Type:        session.DeliveryCourier,
		CourierName: "BlueDart",
		TrackingNo:  "BD-1",
	}, "", testNow)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, s))

	other, err := session.NewDeliverySession(kernel.NewUUID(), kernel.NewUUID(), "LTPI-2", nil, session.DeliveryDetails{
		Type:        session.DeliveryCourier,
		CourierName: "BlueDart",
	}, "", testNow)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, other), "courier sessions do not occupy a worker")

	got, err := suite.repository.GetActiveByInvoiceStage(ctx, invoiceID, session.StageDelivery)
	suite.Require().NoError(err)
	suite.Nil(got.Worker())
	suite.Equal(session.DeliveryCourier, got.Delivery().Type)
	suite.Equal("BD-1", got.Delivery().TrackingNo)
	suite.Equal(session.StatusInTransit, got.Status())
}

func (suite *SessionRepositoryIntegrationTestSuite) TestListActiveStartedBefore_OldestFirst() {
	ctx := context.Background()
	older := suite.picking(kernel.NewUUID(), "LTPI-1", "alice@x.com", testNow.Add(-2*time.Hour))
	newer := suite.picking(kernel.NewUUID(), "LTPI-2", "bob@x.com", testNow.Add(-time.Hour))
	fresh := suite.picking(kernel.NewUUID(), "LTPI-3", "carol@x.com", testNow)
	for _, s := range []*session.Session{newer, fresh, older} {
		suite.Require().NoError(suite.repository.Add(ctx, s))
	}

	stale, err := suite.repository.ListActiveStartedBefore(ctx, testNow.Add(-30*time.Minute))

	suite.Require().NoError(err)
	suite.Require().Len(stale, 2)
	suite.True(older.ID().IsEqual(stale[0].ID()))
	suite.True(newer.ID().IsEqual(stale[1].ID()))
}

func (suite *SessionRepositoryIntegrationTestSuite) picking(invoiceID kernel.UUID, no, email string, at time.Time) *session.Session {
	s, err := session.NewPickingSession(kernel.NewUUID(), invoiceID, no, session.Worker{Email: suite.email(email)}, "", at)
	suite.Require().NoError(err)
	return s
}

func (suite *SessionRepositoryIntegrationTestSuite) email(raw string) kernel.Email {
	e, err := kernel.NewEmail(raw)
	suite.Require().NoError(err)
	return e
}

func (suite *SessionRepositoryIntegrationTestSuite) assertSessionCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&sessionrepo.SessionDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestSessionRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SessionRepositoryIntegrationTestSuite))
}
