package http_test

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/notifier"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret = "test-secret"
	testAPIKey = "billing-integration-key"
)

type fixture struct {
	echo   *echo.Echo
	hub    *notifier.Hub
	server *httpin.Server
}

// newFixture wires the router with zero-valued use case handlers. Only paths that
// fail before touching storage are exercised here.
func newFixture(t *testing.T, rateLimit string) fixture {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAPIKey), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := httpin.RouterConfig{Authenticator: httpin.NewAuthenticator(testSecret, string(hash))}
	if rateLimit != "" {
		cfg.ImportRateLimit, err = httpin.NewRateLimit(rateLimit)
		require.NoError(t, err)
	}

	hub := notifier.NewHub(notifier.DefaultBuffer, nil)
	server := httpin.NewServer(httpin.Handlers{}, hub, 20*time.Millisecond, nil)
	return fixture{echo: httpin.NewEcho(server, cfg), hub: hub, server: server}
}

func token(t *testing.T, role, email string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   kernel.NewUUID().String(),
		"email": email,
		"name":  "Test User",
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func (f fixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpin.ErrorResponse {
	t.Helper()
	var body httpin.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const validImport = `{
	"invoice_no": "LTPI-1",
	"invoice_date": "2025-03-14",
	"priority": "HIGH",
	"customer": {"code": "C-1", "name": "City Pharmacy"},
	"items": [
		{"item_code": "PARA500", "name": "Paracetamol", "quantity": 20, "mrp": "3.50"},
		{"item_code": "AMOX250", "name": "Amoxicillin", "quantity": 10, "mrp": 85}
	]
}`

func TestHealth(t *testing.T) {
	f := newFixture(t, "")

	rec := f.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestBearerAuth(t *testing.T) {
	f := newFixture(t, "")

	t.Run("missing token", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/invoices", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "unauthorized", decodeError(t, rec).Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  kernel.NewUUID().String(),
			"role": "ADMIN",
		}).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		rec := f.do(http.MethodGet, "/api/v1/invoices", "", map[string]string{
			echo.HeaderAuthorization: "Bearer " + forged,
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/invoices", "", map[string]string{
			echo.HeaderAuthorization: token(t, "JANITOR", "x@x.com"),
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  kernel.NewUUID().String(),
			"role": "ADMIN",
			"exp":  time.Now().Add(-time.Hour).Unix(),
		}).SignedString([]byte(testSecret))
		require.NoError(t, err)

		rec := f.do(http.MethodGet, "/api/v1/invoices", "", map[string]string{
			echo.HeaderAuthorization: "Bearer " + expired,
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("api key is not accepted outside import", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/invoices", "", map[string]string{"X-API-KEY": testAPIKey})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestImportInvoice_Auth(t *testing.T) {
	f := newFixture(t, "")

	t.Run("wrong api key", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/invoices/import", validImport, map[string]string{"X-API-KEY": "guess"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid api key reaches validation", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/invoices/import", `{"invoice_no": "LTPI-1"}`,
			map[string]string{"X-API-KEY": testAPIKey})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "validation_error", body.Code)
		assert.Equal(t, "required", body.Errors["invoice_date"])
		assert.Equal(t, "required", body.Errors["items"])
	})

	t.Run("picker may not import", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/invoices/import", validImport, map[string]string{
			echo.HeaderAuthorization: token(t, "PICKER", "alice@x.com"),
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "forbidden", decodeError(t, rec).Code)
	})
}

func TestImportInvoice_RateLimited(t *testing.T) {
	f := newFixture(t, "2-M")
	headers := map[string]string{"X-API-KEY": testAPIKey}

	for range 2 {
		rec := f.do(http.MethodPost, "/api/v1/invoices/import", `{}`, headers)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}

	rec := f.do(http.MethodPost, "/api/v1/invoices/import", `{}`, headers)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRequestValidation(t *testing.T) {
	f := newFixture(t, "")
	auth := map[string]string{echo.HeaderAuthorization: token(t, "PICKER", "alice@x.com")}

	t.Run("missing stage fields", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/picking/start", `{"notes": "x"}`, auth)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "required", body.Errors["invoice_no"])
		assert.Equal(t, "required", body.Errors["user_email"])
	})

	t.Run("malformed worker email", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/packing/complete",
			`{"invoice_no": "LTPI-1", "user_email": "not-an-email"}`, auth)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email", decodeError(t, rec).Errors["user_email"])
	})

	t.Run("courier delivery without courier name", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/delivery/start",
			`{"invoice_no": "LTPI-1", "delivery_type": "COURIER"}`, auth)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Errors, "courier_name")
	})

	t.Run("unknown delivery outcome", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/delivery/complete",
			`{"invoice_no": "LTPI-1", "user_email": "dave@x.com", "status": "LOST"}`, auth)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("return without reason", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/api/v1/billing/return", `{"invoice_no": "LTPI-1"}`, auth)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "required", decodeError(t, rec).Errors["return_reason"])
	})

	t.Run("malformed date filter", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/invoices?date_from=14-03-2025", "", auth)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Errors, "date_from")
	})

	t.Run("page size out of range", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/sessions/history?page_size=500", "", auth)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Errors, "page_size")
	})

	t.Run("active task requires worker", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/sessions/active", "", auth)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "required", decodeError(t, rec).Errors["user_email"])
	})
}

func TestGetActiveTask_OtherWorkerIsForbidden(t *testing.T) {
	f := newFixture(t, "")

	rec := f.do(http.MethodGet, "/api/v1/sessions/active?user_email=bob@x.com", "", map[string]string{
		echo.HeaderAuthorization: token(t, "PICKER", "alice@x.com"),
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	f := newFixture(t, "")

	rec := f.do(http.MethodGet, "/api/v1/nowhere", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStreamInvoiceEvents(t *testing.T) {
	f := newFixture(t, "")
	srv := httptest.NewServer(f.echo)
	defer srv.Close()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/events/invoices", nil)
	require.NoError(t, err)
	req.Header.Set(echo.HeaderAuthorization, token(t, "PACKER", "carol@x.com"))

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/event-stream", res.Header.Get(echo.HeaderContentType))
	require.Eventually(t, func() bool {
		return f.hub.Subscribers(ports.InvoicesChannel) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, f.hub.Publish(ctx, ports.InvoicesChannel, ports.InvoiceEvent{
		Type:       invoice.EventInvoiceStatusChanged,
		OccurredAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		Invoice: invoice.Snapshot{
			InvoiceNo:     "LTPI-1",
			Status:        "PICKING",
			BillingStatus: "BILLED",
			Priority:      "MEDIUM",
			Customer:      invoice.CustomerSnapshot{Code: "C-1", Name: "City Pharmacy"},
			TotalAmount:   decimal.RequireFromString("920.00"),
		},
	}))

	reader := bufio.NewReader(res.Body)
	var data string
	var keepAlive bool
	deadline := time.Now().Add(3 * time.Second)
	for (data == "" || !keepAlive) && time.Now().Before(deadline) {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		switch {
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimSpace(strings.TrimPrefix(line, "data: "))
		case strings.HasPrefix(line, ": keep-alive"):
			keepAlive = true
		}
	}

	require.NotEmpty(t, data)
	assert.True(t, keepAlive)

	var msg notifier.Message
	require.NoError(t, json.Unmarshal([]byte(data), &msg))
	assert.Equal(t, "invoice_status_changed", msg.Type)
	assert.Equal(t, "LTPI-1", msg.InvoiceNo)
	assert.Equal(t, "PICKING", msg.Status)

	cancel()
	assert.Eventually(t, func() bool {
		return f.hub.Subscribers(ports.InvoicesChannel) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStreamInvoiceEvents_EndsOnShutdown(t *testing.T) {
	f := newFixture(t, "")
	srv := httptest.NewServer(f.echo)
	defer srv.Close()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL+"/api/v1/events/invoices", nil)
	require.NoError(t, err)
	req.Header.Set(echo.HeaderAuthorization, token(t, "ADMIN", "admin@x.com"))

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	f.server.StopStreams()

	_, err = io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		return f.hub.Subscribers(ports.InvoicesChannel) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
