package queries

import (
	"context"

	"localcrust/internal/core/domain/model/baker"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBakerProfileQueryHandler loads a verified baker's storefront.
type GetBakerProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetBakerProfileQueryHandler creates a handler for storefront queries.
func NewGetBakerProfileQueryHandler(db *gorm.DB) GetBakerProfileQueryHandler {
	return GetBakerProfileQueryHandler{db: db}
}

// Handle executes the storefront query. It returns errs.ErrObjectNotFound
// when the baker does not exist or is not verified.
func (h GetBakerProfileQueryHandler) Handle(
	ctx context.Context,
	query GetBakerProfileQuery,
) (BakerProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return BakerProfileResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.shop_name,
			b.owner_name,
			b.description,
			b.city,
			COALESCE(AVG(r.rating), 0),
			COUNT(r.id)
		FROM bakers b
		LEFT JOIN products p ON p.baker_id = b.id
		LEFT JOIN reviews r ON r.product_id = p.id
		WHERE b.id = ? AND b.verification = ?
		GROUP BY b.id, b.shop_name, b.owner_name, b.description, b.city
	`, query.BakerID().Bytes(), int(baker.VerificationVerified)).Row()

	var (
		id      uuid.UUID
		profile BakerProfileResponse
	)
	err := row.Scan(
		&id, &profile.ShopName, &profile.OwnerName, &profile.Description,
		&profile.City, &profile.AverageRating, &profile.ReviewCount,
	)
	if err != nil {
		return BakerProfileResponse{}, errs.NewObjectNotFoundErrorWithCause("baker", query.BakerID(), err)
	}
	if profile.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return BakerProfileResponse{}, err
	}

	profile.Products, err = h.loadProducts(ctx, query.BakerID())
	if err != nil {
		return BakerProfileResponse{}, err
	}

	return profile, nil
}

func (h GetBakerProfileQueryHandler) loadProducts(
	ctx context.Context,
	bakerID kernel.UUID,
) ([]CatalogProductResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id, p.baker_id, b.shop_name, b.city,
			p.name, p.description, p.category, p.price_paise, p.image_url
		FROM products p
		JOIN bakers b ON b.id = p.baker_id
		WHERE p.baker_id = ? AND p.available = TRUE
		ORDER BY p.name
	`, bakerID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]CatalogProductResponse, 0)
	for rows.Next() {
		var (
			id      uuid.UUID
			ownerID uuid.UUID
			product CatalogProductResponse
		)
		err = rows.Scan(
			&id, &ownerID, &product.ShopName, &product.City,
			&product.Name, &product.Description, &product.Category,
			&product.PricePaise, &product.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		if product.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if product.BakerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
