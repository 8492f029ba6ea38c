package http

import (
	"fmt"
	"net/http"
	"time"

	"fulfillment/internal/adapters/out/notifier"
	"fulfillment/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// StreamInvoiceEvents handles GET /api/v1/events/invoices. Every invoice change
// is written as one "data:" frame; idle periods are filled with comment lines so
// proxies keep the connection open. Events published while the client is slow
// are dropped.
//
//	@Summary	Stream invoice changes (server-sent events)
//	@Tags		events
//	@Produce	text/event-stream
//	@Success	200	{object}	notifier.Message
//	@Security	BearerAuth
//	@Router		/events/invoices [get]
func (s *Server) StreamInvoiceEvents(c echo.Context) error {
	events, cancel := s.subscriber.Subscribe(ports.InvoicesChannel)
	defer cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ticker := time.NewTicker(s.keepAlive)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.streamsDone:
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			data, err := notifier.Marshal(event)
			if err != nil {
				s.logger.Error("failed to encode invoice event",
					"invoice_no", event.Invoice.InvoiceNo, "error", err)
				continue
			}
			if _, err := fmt.Fprintf(res, "data: %s\n\n", data); err != nil {
				return nil
			}
			res.Flush()
			ticker.Reset(s.keepAlive)
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
