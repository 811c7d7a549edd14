package order_test

import (
	"testing"

	"localcrust/internal/core/domain/model/order"
	"localcrust/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTable(t *testing.T) {
	all := []order.Status{
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusPreparing,
		order.StatusReady,
		order.StatusOutForDelivery,
		order.StatusDelivered,
		order.StatusCancelled,
	}

	allowed := map[order.Status][]order.Status{
		order.StatusPending:        {order.StatusConfirmed, order.StatusCancelled},
		order.StatusConfirmed:      {order.StatusPreparing, order.StatusCancelled},
		order.StatusPreparing:      {order.StatusReady, order.StatusCancelled},
		order.StatusReady:          {order.StatusOutForDelivery, order.StatusCancelled},
		order.StatusOutForDelivery: {order.StatusDelivered},
		order.StatusDelivered:      {},
		order.StatusCancelled:      {},
	}

	for from, nexts := range allowed {
		legal := make(map[order.Status]bool, len(nexts))
		for _, next := range nexts {
			legal[next] = true
		}

		for _, to := range all {
			from, to := from, to
			t.Run(from.String()+" to "+to.String(), func(t *testing.T) {
				got, err := from.TransitionTo(to)
				if legal[to] {
					require.NoError(t, err)
					assert.Equal(t, to, got)
				} else {
					require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				}
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusOutForDelivery.IsTerminal())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips every status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusPending,
			order.StatusConfirmed,
			order.StatusPreparing,
			order.StatusReady,
			order.StatusOutForDelivery,
			order.StatusDelivered,
			order.StatusCancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown value", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects the unknown sentinel", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")
		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	assert.NoError(t, order.StatusPreparing.Validate())
	assert.Error(t, order.StatusUnknown.Validate())
	assert.Error(t, order.Status(42).Validate())
}

func TestPaymentStatusFromString(t *testing.T) {
	t.Run("round trips every status", func(t *testing.T) {
		for _, s := range []order.PaymentStatus{
			order.PaymentPending,
			order.PaymentCompleted,
			order.PaymentFailed,
		} {
			parsed, err := order.PaymentStatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown value", func(t *testing.T) {
		_, err := order.PaymentStatusFromString("refunded")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
