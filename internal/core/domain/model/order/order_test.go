package order_test

import (
	"testing"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"
	"localcrust/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) order.Address {
	t.Helper()
	addr, err := order.NewAddress("Asha Rao", "+919876543210", "12 MG Road", "Bengaluru", "Karnataka", "560001")
	require.NoError(t, err)
	return addr
}

func testItem(t *testing.T, rupees float64, quantity int) order.Item {
	t.Helper()
	price, err := kernel.MoneyFromRupees(rupees)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Sourdough Loaf", price, quantity)
	require.NoError(t, err)
	return item
}

func testOrder(t *testing.T, items ...order.Item) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.Item{testItem(t, 100, 1)}
	}
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"LC17251234AB",
		kernel.NewUUID(),
		items,
		testAddress(t),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("computes total from line items", func(t *testing.T) {
		o := testOrder(t, testItem(t, 100, 2), testItem(t, 50, 1))

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.InDelta(t, 250.0, o.TotalAmount().Rupees(), 0.0001)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			"LC17251234AB",
			kernel.NewUUID(),
			nil,
			testAddress(t),
			time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			"",
			kernel.NewUUID(),
			[]order.Item{testItem(t, 100, 1)},
			testAddress(t),
			time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unconstructed address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			"LC17251234AB",
			kernel.NewUUID(),
			[]order.Item{testItem(t, 100, 1)},
			order.Address{},
			time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_MarkPaymentCompleted(t *testing.T) {
	t.Run("confirms a pending order", func(t *testing.T) {
		o := testOrder(t)

		err := o.MarkPaymentCompleted("pay_N8qZ2f4kX1")
		require.NoError(t, err)

		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
		assert.Equal(t, "pay_N8qZ2f4kX1", o.PaymentID())
	})

	t.Run("rejects a second settlement", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPaymentCompleted("pay_N8qZ2f4kX1"))

		err := o.MarkPaymentCompleted("pay_other")
		require.ErrorIs(t, err, order.ErrPaymentAlreadySettled)
		assert.Equal(t, "pay_N8qZ2f4kX1", o.PaymentID())
	})

	t.Run("rejects empty payment ID", func(t *testing.T) {
		o := testOrder(t)
		require.ErrorIs(t, o.MarkPaymentCompleted(""), errs.ErrValueIsRequired)
	})

	t.Run("rejects settlement of a cancelled order", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Cancel())

		err := o.MarkPaymentCompleted("pay_N8qZ2f4kX1")
		require.Error(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
	})
}

func TestOrder_AttachGatewayOrder(t *testing.T) {
	t.Run("recorded once while payment is pending", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.AttachGatewayOrder("order_MhYt5Wp3K"))
		assert.Equal(t, "order_MhYt5Wp3K", o.GatewayOrderID())

		require.ErrorIs(t, o.AttachGatewayOrder("order_other"), errs.ErrValueIsInvalid)
		assert.Equal(t, "order_MhYt5Wp3K", o.GatewayOrderID())
	})

	t.Run("rejected after settlement", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPaymentCompleted("pay_N8qZ2f4kX1"))

		require.ErrorIs(t, o.AttachGatewayOrder("order_MhYt5Wp3K"), order.ErrPaymentAlreadySettled)
	})

	t.Run("rejects empty reference", func(t *testing.T) {
		o := testOrder(t)
		require.ErrorIs(t, o.AttachGatewayOrder(""), errs.ErrValueIsRequired)
	})
}

func TestOrder_MarkPaymentFailed(t *testing.T) {
	t.Run("cancels a pending order", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.MarkPaymentFailed())

		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, order.PaymentFailed, o.PaymentStatus())
	})

	t.Run("rejects after settlement", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPaymentCompleted("pay_N8qZ2f4kX1"))

		require.ErrorIs(t, o.MarkPaymentFailed(), order.ErrPaymentAlreadySettled)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("fails the payment leg of an unpaid order", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, order.PaymentFailed, o.PaymentStatus())
	})

	t.Run("keeps a completed payment for the refund", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPaymentCompleted("pay_N8qZ2f4kX1"))

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
		assert.Equal(t, "pay_N8qZ2f4kX1", o.PaymentID())
	})

	t.Run("leaves the payment leg alone when cancellation is rejected", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPaymentCompleted("pay_N8qZ2f4kX1"))
		require.NoError(t, o.ChangeStatus(order.StatusPreparing))
		require.NoError(t, o.ChangeStatus(order.StatusReady))
		require.NoError(t, o.ChangeStatus(order.StatusOutForDelivery))

		require.Error(t, o.Cancel())
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("walks the full happy path", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPaymentCompleted("pay_N8qZ2f4kX1"))

		for _, next := range []order.Status{
			order.StatusPreparing,
			order.StatusReady,
			order.StatusOutForDelivery,
			order.StatusDelivered,
		} {
			require.NoError(t, o.ChangeStatus(next))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("rejects skipping states", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPaymentCompleted("pay_N8qZ2f4kX1"))

		err := o.ChangeStatus(order.StatusDelivered)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})

	t.Run("rejects confirming without payment", func(t *testing.T) {
		o := testOrder(t)

		err := o.ChangeStatus(order.StatusConfirmed)
		require.ErrorIs(t, err, order.ErrPaymentNotCompleted)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("rejects cancelling after dispatch", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkPaymentCompleted("pay_N8qZ2f4kX1"))
		require.NoError(t, o.ChangeStatus(order.StatusPreparing))
		require.NoError(t, o.ChangeStatus(order.StatusReady))
		require.NoError(t, o.ChangeStatus(order.StatusOutForDelivery))

		require.Error(t, o.Cancel())
		assert.Equal(t, order.StatusOutForDelivery, o.Status())
	})
}

func TestOrder_CanReview(t *testing.T) {
	item := testItem(t, 100, 1)

	t.Run("delivered order with the product", func(t *testing.T) {
		o := testOrder(t, item)
		require.NoError(t, o.MarkPaymentCompleted("pay_N8qZ2f4kX1"))
		for _, next := range []order.Status{
			order.StatusPreparing, order.StatusReady,
			order.StatusOutForDelivery, order.StatusDelivered,
		} {
			require.NoError(t, o.ChangeStatus(next))
		}

		assert.True(t, o.CanReview(item.ProductID()))
		assert.False(t, o.CanReview(kernel.NewUUID()))
	})

	t.Run("undelivered order", func(t *testing.T) {
		o := testOrder(t, item)
		assert.False(t, o.CanReview(item.ProductID()))
	})
}

func TestRestoreOrder(t *testing.T) {
	item := testItem(t, 49.50, 2)
	total, err := item.LineTotal()
	require.NoError(t, err)

	t.Run("restores persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		restored, err := order.RestoreOrder(
			id,
			"LC17251234AB",
			kernel.NewUUID(),
			[]order.Item{item},
			testAddress(t),
			total,
			order.StatusPreparing,
			order.PaymentCompleted,
			"order_MhYt5Wp3K",
			"pay_N8qZ2f4kX1",
			time.Now().Add(-time.Hour),
		)
		require.NoError(t, err)

		assert.True(t, restored.ID().IsEqual(id))
		assert.Equal(t, order.StatusPreparing, restored.Status())
		assert.Equal(t, order.PaymentCompleted, restored.PaymentStatus())
		assert.InDelta(t, 99.0, restored.TotalAmount().Rupees(), 0.0001)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			"LC17251234AB",
			kernel.NewUUID(),
			[]order.Item{item},
			testAddress(t),
			total,
			order.Status(99),
			order.PaymentCompleted,
			"order_MhYt5Wp3K",
			"pay_N8qZ2f4kX1",
			time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
