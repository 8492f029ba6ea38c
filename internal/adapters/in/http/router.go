package http

import (
	"log/slog"
	"net/http"

	_ "fulfillment/internal/generated/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries the middleware the routes depend on. A nil
// ImportRateLimit leaves the import endpoint unthrottled.
type RouterConfig struct {
	Authenticator   *Authenticator
	ImportRateLimit echo.MiddlewareFunc
	Logger          *slog.Logger
}

// NewEcho builds the echo instance serving the REST API under /api/v1, the
// event stream, health and API docs.
func NewEcho(server *Server, cfg RouterConfig) *echo.Echo {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)
	e.Server.RegisterOnShutdown(server.StopStreams)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			cfg.Logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	bearer := cfg.Authenticator.RequireBearer()
	api := e.Group("/api/v1")

	importMiddleware := []echo.MiddlewareFunc{cfg.Authenticator.RequireBearerOrAPIKey()}
	if cfg.ImportRateLimit != nil {
		importMiddleware = append([]echo.MiddlewareFunc{cfg.ImportRateLimit}, importMiddleware...)
	}
	api.POST("/invoices/import", server.ImportInvoice, importMiddleware...)

	invoices := api.Group("/invoices", bearer)
	invoices.GET("", server.ListInvoices)
	invoices.GET("/:invoice_no", server.GetInvoice)
	invoices.PATCH("/:invoice_no", server.CorrectInvoice)
	invoices.POST("/:invoice_no/release", server.ReleaseInvoice)

	billing := api.Group("/billing", bearer)
	billing.POST("/return", server.ReturnToBilling)
	billing.GET("/returns", server.ListReturns)

	picking := api.Group("/picking", bearer)
	picking.POST("/start", server.StartPicking)
	picking.POST("/complete", server.CompletePicking)

	packing := api.Group("/packing", bearer)
	packing.POST("/start", server.StartPacking)
	packing.POST("/complete", server.CompletePacking)

	delivery := api.Group("/delivery", bearer)
	delivery.POST("/start", server.StartDelivery)
	delivery.POST("/complete", server.CompleteDelivery)

	sessions := api.Group("/sessions", bearer)
	sessions.GET("/active", server.GetActiveTask)
	sessions.GET("/history", server.ListSessionHistory)

	api.GET("/events/invoices", server.StreamInvoiceEvents, bearer)

	return e
}
