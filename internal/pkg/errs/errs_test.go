package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("invoice", "LTPI-1")

		assert.Equal(t, "invoice", err.ParamName)
		assert.Equal(t, "LTPI-1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: invoice LTPI-1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("worker", "alice@x.com", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: worker, ID is: alice@x.com (cause: database connection failed)",
			err.Error())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("session", 456)
		assert.Equal(t, "object not found: session 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("delivery_type")

		assert.Equal(t, "delivery_type", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: delivery_type", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("user_email", cause)

		assert.Equal(t, "value is invalid: user_email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("page_size", 150, 1, 100)

		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, "value is invalid: 150 is page_size, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("return_reason")

	assert.Equal(t, "value is required: return_reason", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("courier_name", errors.New("COURIER delivery"))
	assert.Equal(t, "value is required: courier_name (cause: COURIER delivery)", withCause.Error())
}

func TestAlreadyExistsError(t *testing.T) {
	err := errs.NewAlreadyExistsError("invoice_no", "LTPI-1")

	assert.Equal(t, "object already exists: invoice_no LTPI-1", err.Error())
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestStateConflictError(t *testing.T) {
	err := errs.NewStateConflictError("invalid_status", "status", "status is DELIVERED")

	assert.Equal(t, "state conflict: invalid_status: status is DELIVERED", err.Error())
	require.ErrorIs(t, err, errs.ErrStateConflict)

	var target *errs.StateConflictError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &target)
	assert.Equal(t, "invalid_status", target.Code)
	assert.Equal(t, "status", target.Field)
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("view_active_task", "not privileged")

	assert.Equal(t, "forbidden: view_active_task: not privileged", err.Error())
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "object already exists", errs.ErrAlreadyExists.Error())
	assert.Equal(t, "state conflict", errs.ErrStateConflict.Error())
	assert.Equal(t, "forbidden", errs.ErrForbidden.Error())
}

func TestErrorsCanBeJoined(t *testing.T) {
	joined := errors.Join(
		errs.NewValueIsRequiredError("invoice_no"),
		errs.NewValueIsInvalidError("priority"),
	)

	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
	assert.NotErrorIs(t, joined, errs.ErrStateConflict)
}
