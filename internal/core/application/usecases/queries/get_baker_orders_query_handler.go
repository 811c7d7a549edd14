package queries

import (
	"context"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBakerOrdersQueryHandler lists paid orders containing a baker's items.
type GetBakerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBakerOrdersQueryHandler creates a handler for baker order listings.
func NewGetBakerOrdersQueryHandler(db *gorm.DB) GetBakerOrdersQueryHandler {
	return GetBakerOrdersQueryHandler{db: db}
}

// Handle executes the baker order listing query.
func (h GetBakerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBakerOrdersQuery,
) ([]BakerOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.code,
			o.status,
			o.address_full_name,
			o.address_city,
			o.created_at,
			i.product_id,
			i.product_name,
			i.unit_price_paise,
			i.quantity
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE i.baker_id = ? AND o.payment_status = ?
		ORDER BY o.created_at DESC, i.product_name
	`, query.BakerID().Bytes(), int(order.PaymentCompleted)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]BakerOrderResponse, 0)
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var (
			id        uuid.UUID
			code      string
			status    int
			fullName  string
			city      string
			createdAt time.Time
			productID uuid.UUID
			item      OrderItemResponse
		)
		err = rows.Scan(
			&id, &code, &status, &fullName, &city, &createdAt,
			&productID, &item.ProductName, &item.UnitPricePaise, &item.Quantity,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		item.BakerID = query.BakerID()

		pos, seen := index[orderID]
		if !seen {
			orders = append(orders, BakerOrderResponse{
				ID:           orderID,
				Code:         code,
				Status:       order.Status(status).String(),
				CustomerName: fullName,
				City:         city,
				Items:        make([]OrderItemResponse, 0, 1),
				CreatedAt:    createdAt.Format(time.RFC3339),
			})
			pos = len(orders) - 1
			index[orderID] = pos
		}
		orders[pos].Items = append(orders[pos].Items, item)
		orders[pos].BakerSharePaise += item.UnitPricePaise * int64(item.Quantity)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
