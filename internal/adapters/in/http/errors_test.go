package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_ReportsEveryFieldBehindWrappers(t *testing.T) {
	_, itemErr := invoice.NewItem(invoice.ItemAttrs{ItemCode: "PARA500", Quantity: 0, MRP: kernel.MustMoney("1.00")})
	require.Error(t, itemErr)

	err := fmt.Errorf("import invoice: %w", errors.Join(errs.NewValueIsRequiredError("invoice_no"), itemErr))

	status, body := classify(err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "validation_error", body.Code)
	assert.Len(t, body.Errors, 3)
	assert.Contains(t, body.Errors, "invoice_no")
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "quantity")
}

func TestClassify_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"conflict", errs.NewStateConflictError("invalid_status", "status", "status is DELIVERED"), http.StatusConflict, "state_conflict"},
		{"already exists", errs.NewAlreadyExistsError("invoice_no", "LTPI-1"), http.StatusConflict, "already_exists"},
		{"not found", errs.NewObjectNotFoundError("invoice", "LTPI-1"), http.StatusNotFound, "not_found"},
		{"forbidden", errs.NewForbiddenError("correct_invoice", "role PICKER"), http.StatusForbidden, "forbidden"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := classify(tt.err)

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}
