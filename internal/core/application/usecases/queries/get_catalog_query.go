package queries

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery retrieves available products of verified bakers. Category
// and city filters are optional; an empty string means no filter.
type GetCatalogQuery struct {
	category string
	city     string

	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a catalog query with optional filters.
func NewGetCatalogQuery(category, city string) (GetCatalogQuery, error) {
	return GetCatalogQuery{
		category: category,
		city:     city,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// Category returns the category filter, empty for all categories.
func (q GetCatalogQuery) Category() string {
	return q.category
}

// City returns the city filter, empty for all cities.
func (q GetCatalogQuery) City() string {
	return q.city
}

// CatalogProductResponse is one product in the storefront catalog.
type CatalogProductResponse struct {
	ID          kernel.UUID `json:"id"`
	BakerID     kernel.UUID `json:"baker_id"`
	ShopName    string      `json:"shop_name"`
	City        string      `json:"city"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	PricePaise  int64       `json:"price_paise"`
	ImageURL    string      `json:"image_url"`
}
