package queries

import (
	"context"

	"localcrust/internal/core/domain/model/baker"
	"localcrust/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPlatformStatsQueryHandler computes marketplace-wide totals.
type GetPlatformStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetPlatformStatsQueryHandler creates a handler for platform stats.
func NewGetPlatformStatsQueryHandler(db *gorm.DB) GetPlatformStatsQueryHandler {
	return GetPlatformStatsQueryHandler{db: db}
}

// Handle executes the platform stats query.
func (h GetPlatformStatsQueryHandler) Handle(
	ctx context.Context,
	query GetPlatformStatsQuery,
) (PlatformStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return PlatformStatsResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM bakers WHERE verification = ?),
			(SELECT COUNT(*) FROM bakers WHERE verification = ?),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders WHERE payment_status = ?),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COALESCE(SUM(total_paise), 0) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM reviews)
	`,
		int(baker.VerificationVerified),
		int(baker.VerificationPending),
		int(order.PaymentCompleted),
		int(order.StatusDelivered),
		int(order.StatusDelivered),
	).Row()

	var stats PlatformStatsResponse
	err := row.Scan(
		&stats.CustomerCount, &stats.VerifiedBakers, &stats.PendingBakers,
		&stats.ProductCount, &stats.OrderCount, &stats.DeliveredOrders,
		&stats.RevenuePaise, &stats.ReviewCount,
	)
	if err != nil {
		return PlatformStatsResponse{}, err
	}

	return stats, nil
}
