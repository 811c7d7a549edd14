package queries

import (
	"context"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler lists a customer's orders, newest first.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for order history queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the order history query.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.code,
			o.status,
			o.payment_status,
			o.total_paise,
			o.created_at,
			COUNT(i.product_id)
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.customer_id = ?
		GROUP BY o.id, o.code, o.status, o.payment_status, o.total_paise, o.created_at
		ORDER BY o.created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			code          string
			status        int
			paymentStatus int
			totalPaise    int64
			createdAt     time.Time
			itemCount     int
		)
		if err = rows.Scan(&id, &code, &status, &paymentStatus, &totalPaise, &createdAt, &itemCount); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, OrderSummaryResponse{
			ID:            orderID,
			Code:          code,
			Status:        order.Status(status).String(),
			PaymentStatus: order.PaymentStatus(paymentStatus).String(),
			TotalPaise:    totalPaise,
			ItemCount:     itemCount,
			CreatedAt:     createdAt.Format(time.RFC3339),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
