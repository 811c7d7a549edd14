package queries

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrGetWishlistQueryIsNotConstructed = errors.New(
	"GetWishlistQuery must be created via NewGetWishlistQuery constructor",
)

// GetWishlistQuery retrieves a customer's wishlisted products.
type GetWishlistQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWishlistQuery creates a wishlist query.
func NewGetWishlistQuery(customerID kernel.UUID) (GetWishlistQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetWishlistQuery{}, err
	}
	return GetWishlistQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWishlistQuery) Validate() error {
	return q.guard.Validate(ErrGetWishlistQueryIsNotConstructed)
}

// CustomerID returns the customer whose wishlist is requested.
func (q GetWishlistQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// WishlistItemResponse is one wishlisted product. Available reflects the
// product's current state, so a customer can see when a saved item sells out.
type WishlistItemResponse struct {
	ProductID  kernel.UUID `json:"product_id"`
	BakerID    kernel.UUID `json:"baker_id"`
	ShopName   string      `json:"shop_name"`
	Name       string      `json:"name"`
	Category   string      `json:"category"`
	PricePaise int64       `json:"price_paise"`
	ImageURL   string      `json:"image_url"`
	Available  bool        `json:"available"`
	AddedAt    string      `json:"added_at"`
}
