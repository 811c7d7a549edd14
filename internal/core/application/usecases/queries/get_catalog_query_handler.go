package queries

import (
	"context"

	"localcrust/internal/core/domain/model/baker"
	"localcrust/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCatalogQueryHandler lists available products of verified bakers.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog queries.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle executes the catalog query.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) ([]CatalogProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			p.id, p.baker_id, b.shop_name, b.city,
			p.name, p.description, p.category, p.price_paise, p.image_url
		FROM products p
		JOIN bakers b ON b.id = p.baker_id
		WHERE p.available = TRUE AND b.verification = ?
	`
	args := []any{int(baker.VerificationVerified)}

	if query.Category() != "" {
		sql += " AND p.category = ?"
		args = append(args, query.Category())
	}
	if query.City() != "" {
		sql += " AND b.city = ?"
		args = append(args, query.City())
	}
	sql += " ORDER BY b.shop_name, p.name"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]CatalogProductResponse, 0)
	for rows.Next() {
		var (
			id      uuid.UUID
			bakerID uuid.UUID
			product CatalogProductResponse
		)
		err = rows.Scan(
			&id, &bakerID, &product.ShopName, &product.City,
			&product.Name, &product.Description, &product.Category,
			&product.PricePaise, &product.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		if product.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if product.BakerID, err = kernel.UUIDFromBytes(bakerID[:]); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
