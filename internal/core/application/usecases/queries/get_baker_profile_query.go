package queries

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrGetBakerProfileQueryIsNotConstructed = errors.New(
	"GetBakerProfileQuery must be created via NewGetBakerProfileQuery constructor",
)

// GetBakerProfileQuery retrieves a baker's public storefront: shop details,
// available products and review totals.
type GetBakerProfileQuery struct {
	bakerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBakerProfileQuery creates a storefront query.
func NewGetBakerProfileQuery(bakerID kernel.UUID) (GetBakerProfileQuery, error) {
	if err := bakerID.Validate(); err != nil {
		return GetBakerProfileQuery{}, err
	}
	return GetBakerProfileQuery{
		bakerID: bakerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBakerProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetBakerProfileQueryIsNotConstructed)
}

// BakerID returns the baker whose storefront is requested.
func (q GetBakerProfileQuery) BakerID() kernel.UUID {
	return q.bakerID
}

// BakerProfileResponse is a baker's public storefront.
type BakerProfileResponse struct {
	ID            kernel.UUID              `json:"id"`
	ShopName      string                   `json:"shop_name"`
	OwnerName     string                   `json:"owner_name"`
	Description   string                   `json:"description"`
	City          string                   `json:"city"`
	AverageRating float64                  `json:"average_rating"`
	ReviewCount   int                      `json:"review_count"`
	Products      []CatalogProductResponse `json:"products"`
}
