package queries

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrGetBakerOrdersQueryIsNotConstructed = errors.New(
	"GetBakerOrdersQuery must be created via NewGetBakerOrdersQuery constructor",
)

// GetBakerOrdersQuery retrieves paid orders that contain at least one item
// from the given baker. Orders still awaiting payment are hidden, as the
// baker has nothing to act on yet.
type GetBakerOrdersQuery struct {
	bakerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBakerOrdersQuery creates a baker order listing query.
func NewGetBakerOrdersQuery(bakerID kernel.UUID) (GetBakerOrdersQuery, error) {
	if err := bakerID.Validate(); err != nil {
		return GetBakerOrdersQuery{}, err
	}
	return GetBakerOrdersQuery{
		bakerID: bakerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBakerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBakerOrdersQueryIsNotConstructed)
}

// BakerID returns the baker whose incoming orders are requested.
func (q GetBakerOrdersQuery) BakerID() kernel.UUID {
	return q.bakerID
}

// BakerOrderResponse is one incoming order as a baker sees it: only their
// own lines and the share of the total those lines represent.
type BakerOrderResponse struct {
	ID              kernel.UUID         `json:"id"`
	Code            string              `json:"code"`
	Status          string              `json:"status"`
	CustomerName    string              `json:"customer_name"`
	City            string              `json:"city"`
	Items           []OrderItemResponse `json:"items"`
	BakerSharePaise int64               `json:"baker_share_paise"`
	CreatedAt       string              `json:"created_at"`
}
