package queries

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrGetBakersQueryIsNotConstructed = errors.New(
	"GetBakersQuery must be created via NewGetBakersQuery constructor",
)

// GetBakersQuery retrieves verified bakers, optionally filtered by city.
type GetBakersQuery struct {
	city string

	guard guard.ConstructorGuard
}

// NewGetBakersQuery creates a baker listing query. An empty city means all
// cities.
func NewGetBakersQuery(city string) (GetBakersQuery, error) {
	return GetBakersQuery{
		city:  city,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBakersQuery) Validate() error {
	return q.guard.Validate(ErrGetBakersQueryIsNotConstructed)
}

// City returns the city filter, empty for all cities.
func (q GetBakersQuery) City() string {
	return q.city
}

// BakerSummaryResponse is one baker in a storefront listing.
type BakerSummaryResponse struct {
	ID            kernel.UUID `json:"id"`
	ShopName      string      `json:"shop_name"`
	Description   string      `json:"description"`
	City          string      `json:"city"`
	ProductCount  int         `json:"product_count"`
	AverageRating float64     `json:"average_rating"`
	ReviewCount   int         `json:"review_count"`
}
