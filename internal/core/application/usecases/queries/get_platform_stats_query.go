package queries

import (
	"errors"

	"localcrust/internal/pkg/guard"
)

var ErrGetPlatformStatsQueryIsNotConstructed = errors.New(
	"GetPlatformStatsQuery must be created via NewGetPlatformStatsQuery constructor",
)

// GetPlatformStatsQuery retrieves marketplace-wide totals for the admin
// overview.
type GetPlatformStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPlatformStatsQuery creates a platform stats query.
func NewGetPlatformStatsQuery() (GetPlatformStatsQuery, error) {
	return GetPlatformStatsQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPlatformStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPlatformStatsQueryIsNotConstructed)
}

// PlatformStatsResponse aggregates marketplace totals. Revenue covers
// delivered, paid orders.
type PlatformStatsResponse struct {
	CustomerCount   int   `json:"customer_count"`
	VerifiedBakers  int   `json:"verified_bakers"`
	PendingBakers   int   `json:"pending_bakers"`
	ProductCount    int   `json:"product_count"`
	OrderCount      int   `json:"order_count"`
	DeliveredOrders int   `json:"delivered_orders"`
	RevenuePaise    int64 `json:"revenue_paise"`
	ReviewCount     int   `json:"review_count"`
}
