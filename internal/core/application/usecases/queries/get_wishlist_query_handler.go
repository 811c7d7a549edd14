package queries

import (
	"context"
	"time"

	"localcrust/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWishlistQueryHandler loads a customer's wishlist, most recently saved
// first.
type GetWishlistQueryHandler struct {
	db *gorm.DB
}

// NewGetWishlistQueryHandler creates a handler for wishlist queries.
func NewGetWishlistQueryHandler(db *gorm.DB) GetWishlistQueryHandler {
	return GetWishlistQueryHandler{db: db}
}

// Handle executes the wishlist query.
func (h GetWishlistQueryHandler) Handle(
	ctx context.Context,
	query GetWishlistQuery,
) ([]WishlistItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id, p.baker_id, b.shop_name, p.name, p.category,
			p.price_paise, p.image_url, p.available, w.added_at
		FROM wishlist_items w
		JOIN products p ON p.id = w.product_id
		JOIN bakers b ON b.id = p.baker_id
		WHERE w.customer_id = ?
		ORDER BY w.added_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]WishlistItemResponse, 0)
	for rows.Next() {
		var (
			productID uuid.UUID
			bakerID   uuid.UUID
			item      WishlistItemResponse
			addedAt   time.Time
		)
		err = rows.Scan(
			&productID, &bakerID, &item.ShopName, &item.Name, &item.Category,
			&item.PricePaise, &item.ImageURL, &item.Available, &addedAt,
		)
		if err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if item.BakerID, err = kernel.UUIDFromBytes(bakerID[:]); err != nil {
			return nil, err
		}
		item.AddedAt = addedAt.Format(time.RFC3339)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
