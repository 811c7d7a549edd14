package queries

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrGetBakerDashboardQueryIsNotConstructed = errors.New(
	"GetBakerDashboardQuery must be created via NewGetBakerDashboardQuery constructor",
)

// GetBakerDashboardQuery retrieves a baker's sales dashboard numbers.
type GetBakerDashboardQuery struct {
	bakerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBakerDashboardQuery creates a dashboard query.
func NewGetBakerDashboardQuery(bakerID kernel.UUID) (GetBakerDashboardQuery, error) {
	if err := bakerID.Validate(); err != nil {
		return GetBakerDashboardQuery{}, err
	}
	return GetBakerDashboardQuery{
		bakerID: bakerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBakerDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetBakerDashboardQueryIsNotConstructed)
}

// BakerID returns the baker whose dashboard is requested.
func (q GetBakerDashboardQuery) BakerID() kernel.UUID {
	return q.bakerID
}

// BakerDashboardResponse aggregates a baker's sales and catalog numbers.
// Order counts and revenue cover paid orders only; revenue counts the
// baker's own lines, not whole order totals.
type BakerDashboardResponse struct {
	ActiveOrders    int     `json:"active_orders"`
	DeliveredOrders int     `json:"delivered_orders"`
	RevenuePaise    int64   `json:"revenue_paise"`
	ProductCount    int     `json:"product_count"`
	AverageRating   float64 `json:"average_rating"`
	ReviewCount     int     `json:"review_count"`
	PendingReplies  int     `json:"pending_replies"`
}
