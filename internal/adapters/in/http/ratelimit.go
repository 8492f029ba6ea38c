package http

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimit limits requests per client IP. formatted uses the limiter
// notation, e.g. "60-M" for sixty requests a minute.
func NewRateLimit(formatted string) (echo.MiddlewareFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", formatted, err)
	}

	store := memory.NewStore()
	instance := limiter.New(store, rate)

	return echo.WrapMiddleware(stdlib.NewMiddleware(instance).Handler), nil
}
