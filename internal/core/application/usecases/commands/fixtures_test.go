package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"localcrust/internal/core/domain/model/customer"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"
	"localcrust/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeAddress(t *testing.T) order.Address {
	t.Helper()
	addr, err := order.NewAddress("Asha Rao", "+919876543210", "12 MG Road", "Bengaluru", "Karnataka", "560001")
	require.NoError(t, err)
	return addr
}

func makeItem(t *testing.T, productID, bakerID kernel.UUID, rupees float64, quantity int) order.Item {
	t.Helper()
	price, err := kernel.MoneyFromRupees(rupees)
	require.NoError(t, err)
	item, err := order.NewItem(productID, bakerID, "Sourdough Loaf", price, quantity)
	require.NoError(t, err)
	return item
}

// makeOrderInStatus restores an order already settled by payment, sitting in
// the given fulfillment status.
func makeOrderInStatus(t *testing.T, customerID kernel.UUID, items []order.Item, status order.Status) *order.Order {
	t.Helper()

	total, err := kernel.NewMoney(0)
	require.NoError(t, err)
	for _, item := range items {
		lineTotal, ltErr := item.LineTotal()
		require.NoError(t, ltErr)
		total, ltErr = total.Add(lineTotal)
		require.NoError(t, ltErr)
	}

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		"LC1725012345A7F3",
		customerID,
		items,
		makeAddress(t),
		total,
		status,
		order.PaymentCompleted,
		"order_MhYt5Wp3K",
		"pay_N8qZ2f4kX1",
		time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	return o
}

func makePendingOrder(t *testing.T, customerID kernel.UUID, items []order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"LC1725012345A7F3",
		customerID,
		items,
		makeAddress(t),
		time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, o.AttachGatewayOrder("order_MhYt5Wp3K"))
	return o
}

// makeCancelledUnpaidOrder restores an order that was cancelled while its
// payment leg was still pending, as rows written before cancellation began
// failing the payment leg look.
func makeCancelledUnpaidOrder(t *testing.T, customerID kernel.UUID, items []order.Item) *order.Order {
	t.Helper()

	total, err := kernel.NewMoney(0)
	require.NoError(t, err)
	for _, item := range items {
		lineTotal, ltErr := item.LineTotal()
		require.NoError(t, ltErr)
		total, ltErr = total.Add(lineTotal)
		require.NoError(t, ltErr)
	}

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		"LC1725012345B2K9",
		customerID,
		items,
		makeAddress(t),
		total,
		order.StatusCancelled,
		order.PaymentPending,
		"order_Jw3fJx8dQ",
		"",
		time.Now().Add(-2*time.Hour),
	)
	require.NoError(t, err)
	return o
}

func makeCustomer(t *testing.T, id kernel.UUID) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(id, "asha@example.com", "hash", "Asha Rao", "", time.Now())
	require.NoError(t, err)
	return c
}

func makeProduct(t *testing.T, id, bakerID kernel.UUID, rupees float64) *product.Product {
	t.Helper()
	price, err := kernel.MoneyFromRupees(rupees)
	require.NoError(t, err)
	p, err := product.NewProduct(id, bakerID, "Sourdough Loaf", "", "bread", price, "", time.Now())
	require.NoError(t, err)
	return p
}
