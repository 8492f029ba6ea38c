package invoice_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []invoice.Status{
	invoice.StatusPending, invoice.StatusPicking, invoice.StatusPicked, invoice.StatusPacking,
	invoice.StatusPacked, invoice.StatusDispatched, invoice.StatusDelivered, invoice.StatusReview,
}

func TestStatus_ParseAndString(t *testing.T) {
	for _, s := range allStatuses {
		parsed, err := invoice.ParseStatus(s.String())

		require.NoError(t, err)
		assert.Equal(t, s, parsed)
		require.NoError(t, s.Validate())
	}

	_, err := invoice.ParseStatus("shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	parsed, err := invoice.ParseStatus(" picking ")
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPicking, parsed)

	assert.Equal(t, "UNKNOWN", invoice.StatusUnknown.String())
	require.Error(t, invoice.Status(42).Validate())
}

// TestStatus_NoSkipping checks every (from, transition) pair: exactly one source
// status is accepted by each forward transition and the result is the next state.
func TestStatus_NoSkipping(t *testing.T) {
	transitions := []struct {
		name string
		fn   func(invoice.Status) (invoice.Status, error)
		from invoice.Status
		to   invoice.Status
	}{
		{"StartPicking", invoice.Status.StartPicking, invoice.StatusPending, invoice.StatusPicking},
		{"CompletePicking", invoice.Status.CompletePicking, invoice.StatusPicking, invoice.StatusPicked},
		{"StartPacking", invoice.Status.StartPacking, invoice.StatusPicked, invoice.StatusPacking},
		{"CompletePacking", invoice.Status.CompletePacking, invoice.StatusPacking, invoice.StatusPacked},
		{"Dispatch", invoice.Status.Dispatch, invoice.StatusPacked, invoice.StatusDispatched},
		{"Deliver", invoice.Status.Deliver, invoice.StatusDispatched, invoice.StatusDelivered},
		{"Release", invoice.Status.Release, invoice.StatusReview, invoice.StatusPending},
	}

	for _, tr := range transitions {
		for _, from := range allStatuses {
			t.Run(fmt.Sprintf("%s from %s", tr.name, from), func(t *testing.T) {
				got, err := tr.fn(from)
				if from == tr.from {
					require.NoError(t, err)
					assert.Equal(t, tr.to, got)
					return
				}
				require.ErrorIs(t, err, errs.ErrStateConflict)
				assert.Contains(t, err.Error(), "status is "+from.String())
				assert.Equal(t, invoice.StatusUnknown, got)
			})
		}
	}
}

func TestStatus_ReturnToReview(t *testing.T) {
	for _, from := range allStatuses {
		got, err := from.ReturnToReview()
		if from.IsReturnable() {
			require.NoError(t, err)
			assert.Equal(t, invoice.StatusReview, got)
			continue
		}
		require.ErrorIs(t, err, errs.ErrStateConflict, from.String())
	}

	assert.True(t, invoice.StatusPicking.IsReturnable())
	assert.True(t, invoice.StatusPicked.IsReturnable())
	assert.True(t, invoice.StatusPacking.IsReturnable())
	assert.False(t, invoice.StatusPacked.IsReturnable())
	assert.False(t, invoice.StatusReview.IsReturnable())
}

func TestBillingStatusAndPriority(t *testing.T) {
	bs, err := invoice.ParseBillingStatus("re_invoiced")
	require.NoError(t, err)
	assert.Equal(t, invoice.BillingStatusReInvoiced, bs)
	assert.Equal(t, "RE_INVOICED", bs.String())

	_, err = invoice.ParseBillingStatus("PAID")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	p, err := invoice.ParsePriority("")
	require.NoError(t, err)
	assert.Equal(t, invoice.PriorityMedium, p)

	p, err = invoice.ParsePriority("high")
	require.NoError(t, err)
	assert.Equal(t, invoice.PriorityHigh, p)

	_, err = invoice.ParsePriority("urgent")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
