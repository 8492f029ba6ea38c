package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/notifier"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/sessionrepo"
	"fulfillment/internal/adapters/out/postgres/workerrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"github.com/bsm/redislock"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const bridgeReadyTimeout = 10 * time.Second

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	hub        *notifier.Hub
	redis      *redis.Client
	bridge     *notifier.RedisBridge
	publisher  ports.EventPublisher
	subscriber ports.EventSubscriber
	workers    *workerrepo.GormWorkerDirectory
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot wires the adapters. With REDIS_ADDR set, events travel
// through Redis so every instance's subscribers see them; otherwise they stay
// in process.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	hub := notifier.NewHub(notifier.DefaultBuffer, logger)
	root := CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		hub:        hub,
		publisher:  hub,
		subscriber: hub,
		workers:    workerrepo.NewGormWorkerDirectory(gormDB),
	}

	if config.RedisAddr != "" {
		root.redis = redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		root.bridge = notifier.NewRedisBridge(root.redis, hub, logger)
		root.publisher = root.bridge
		root.subscriber = root.bridge
	}

	root.uowFactory = *postgres.NewGormUnitOfWorkFactory(gormDB, root.publisher, logger)
	return root
}

// StartEventBridge relays Redis messages into the local hub until ctx is done.
// It returns once the subscription is confirmed. Without Redis it does nothing.
func (c *CompositionRoot) StartEventBridge(ctx context.Context) error {
	if c.bridge == nil {
		return nil
	}

	ready := make(chan struct{})
	failed := make(chan error, 1)
	go func() {
		if err := c.bridge.Run(ctx, ready, ports.InvoicesChannel); err != nil {
			c.logger.Error("event bridge stopped", "error", err)
			failed <- err
		}
	}()

	select {
	case <-ready:
		return nil
	case err := <-failed:
		return fmt.Errorf("start event bridge: %w", err)
	case <-time.After(bridgeReadyTimeout):
		return fmt.Errorf("start event bridge: not ready after %s", bridgeReadyTimeout)
	}
}

// Close releases the Redis connection.
func (c *CompositionRoot) Close() error {
	if c.redis == nil {
		return nil
	}
	return c.redis.Close()
}

func (c *CompositionRoot) CreateImportInvoiceCommandHandler() commands.ImportInvoiceCommandHandler {
	return commands.NewImportInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateCorrectInvoiceCommandHandler() commands.CorrectInvoiceCommandHandler {
	return commands.NewCorrectInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateReleaseInvoiceCommandHandler() commands.ReleaseInvoiceCommandHandler {
	return commands.NewReleaseInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateStartStageCommandHandler() commands.StartStageCommandHandler {
	return commands.NewStartStageCommandHandler(c.uowFactoryFunc(), c.workers)
}

func (c *CompositionRoot) CreateCompleteStageCommandHandler() commands.CompleteStageCommandHandler {
	return commands.NewCompleteStageCommandHandler(c.uowFactoryFunc(), c.workers)
}

func (c *CompositionRoot) CreateReturnToBillingCommandHandler() commands.ReturnToBillingCommandHandler {
	return commands.NewReturnToBillingCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateListInvoicesQueryHandler() queries.ListInvoicesQueryHandler {
	return queries.NewListInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoiceQueryHandler() queries.GetInvoiceQueryHandler {
	return queries.NewGetInvoiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListReturnsQueryHandler() queries.ListReturnsQueryHandler {
	return queries.NewListReturnsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveTaskQueryHandler() queries.GetActiveTaskQueryHandler {
	return queries.NewGetActiveTaskQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListSessionHistoryQueryHandler() queries.ListSessionHistoryQueryHandler {
	return queries.NewListSessionHistoryQueryHandler(c.gormDB)
}

// CreateEcho builds the HTTP surface.
func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	rateLimit, err := httpin.NewRateLimit(c.config.ImportRateLimit)
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(httpin.Handlers{
		ImportInvoice:      c.CreateImportInvoiceCommandHandler(),
		CorrectInvoice:     c.CreateCorrectInvoiceCommandHandler(),
		ReleaseInvoice:     c.CreateReleaseInvoiceCommandHandler(),
		StartStage:         c.CreateStartStageCommandHandler(),
		CompleteStage:      c.CreateCompleteStageCommandHandler(),
		ReturnToBilling:    c.CreateReturnToBillingCommandHandler(),
		ListInvoices:       c.CreateListInvoicesQueryHandler(),
		GetInvoice:         c.CreateGetInvoiceQueryHandler(),
		ListReturns:        c.CreateListReturnsQueryHandler(),
		GetActiveTask:      c.CreateGetActiveTaskQueryHandler(),
		ListSessionHistory: c.CreateListSessionHistoryQueryHandler(),
	}, c.subscriber, c.config.SSEKeepAlive, c.logger)

	return httpin.NewEcho(server, httpin.RouterConfig{
		Authenticator:   httpin.NewAuthenticator(c.config.JWTSecret, c.config.APIKeyHash),
		ImportRateLimit: rateLimit,
		Logger:          c.logger,
	}), nil
}

// CreateJobManager builds the scheduled jobs. The stale session report is
// serialized across instances through Redis when it is configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var locker jobs.Locker
	if c.redis != nil {
		locker = redislock.New(c.redis)
	}

	staleSessions := jobs.NewStaleSessionJob(
		sessionrepo.NewGormSessionRepository(c.gormDB),
		locker,
		c.config.StaleSessionAfter,
		c.config.StaleSessionCron,
		c.logger,
	)
	return jobs.NewJobManager(staleSessions)
}

func (c *CompositionRoot) invoiceUoWFactory() commands.InvoiceUoWFactory {
	return FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
