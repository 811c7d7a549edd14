package queries

import (
	"context"

	"localcrust/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetBakerDashboardQueryHandler computes a baker's dashboard numbers.
type GetBakerDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetBakerDashboardQueryHandler creates a handler for dashboard queries.
func NewGetBakerDashboardQueryHandler(db *gorm.DB) GetBakerDashboardQueryHandler {
	return GetBakerDashboardQueryHandler{db: db}
}

// Handle executes the dashboard query.
func (h GetBakerDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetBakerDashboardQuery,
) (BakerDashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return BakerDashboardResponse{}, err
	}

	var dashboard BakerDashboardResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(DISTINCT o.id) FILTER (WHERE o.status NOT IN (?, ?)),
			COUNT(DISTINCT o.id) FILTER (WHERE o.status = ?),
			COALESCE(SUM(i.unit_price_paise * i.quantity) FILTER (WHERE o.status = ?), 0)
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE i.baker_id = ? AND o.payment_status = ?
	`,
		int(order.StatusDelivered), int(order.StatusCancelled),
		int(order.StatusDelivered),
		int(order.StatusDelivered),
		query.BakerID().Bytes(), int(order.PaymentCompleted),
	).Row()
	err := row.Scan(&dashboard.ActiveOrders, &dashboard.DeliveredOrders, &dashboard.RevenuePaise)
	if err != nil {
		return BakerDashboardResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(DISTINCT p.id),
			COALESCE(AVG(r.rating), 0),
			COUNT(r.id),
			COUNT(r.id) FILTER (WHERE r.reply_text IS NULL)
		FROM products p
		LEFT JOIN reviews r ON r.product_id = p.id
		WHERE p.baker_id = ?
	`, query.BakerID().Bytes()).Row()
	err = row.Scan(
		&dashboard.ProductCount, &dashboard.AverageRating,
		&dashboard.ReviewCount, &dashboard.PendingReplies,
	)
	if err != nil {
		return BakerDashboardResponse{}, err
	}

	return dashboard, nil
}
