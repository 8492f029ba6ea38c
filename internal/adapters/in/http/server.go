package http

import (
	"log/slog"
	"sync"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
)

// DefaultKeepAlive is the idle interval after which the event stream sends a
// comment line.
const DefaultKeepAlive = time.Second

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	ImportInvoice   commands.ImportInvoiceCommandHandler
	CorrectInvoice  commands.CorrectInvoiceCommandHandler
	ReleaseInvoice  commands.ReleaseInvoiceCommandHandler
	StartStage      commands.StartStageCommandHandler
	CompleteStage   commands.CompleteStageCommandHandler
	ReturnToBilling commands.ReturnToBillingCommandHandler

	// Query handlers
	ListInvoices       queries.ListInvoicesQueryHandler
	GetInvoice         queries.GetInvoiceQueryHandler
	ListReturns        queries.ListReturnsQueryHandler
	GetActiveTask      queries.GetActiveTaskQueryHandler
	ListSessionHistory queries.ListSessionHistoryQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers   Handlers
	subscriber ports.EventSubscriber
	keepAlive  time.Duration
	logger     *slog.Logger

	streamsDone chan struct{}
	stopStreams sync.Once
}

// NewServer creates a new HTTP server. A non-positive keepAlive falls back to
// DefaultKeepAlive.
func NewServer(
	handlers Handlers,
	subscriber ports.EventSubscriber,
	keepAlive time.Duration,
	logger *slog.Logger,
) *Server {
	if keepAlive <= 0 {
		keepAlive = DefaultKeepAlive
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers:    handlers,
		subscriber:  subscriber,
		keepAlive:   keepAlive,
		logger:      logger.With("component", "http"),
		streamsDone: make(chan struct{}),
	}
}

// StopStreams ends every open event stream. NewEcho registers it to run when the
// HTTP server begins shutting down.
func (s *Server) StopStreams() {
	s.stopStreams.Do(func() { close(s.streamsDone) })
}
