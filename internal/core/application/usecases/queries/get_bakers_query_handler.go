package queries

import (
	"context"

	"localcrust/internal/core/domain/model/baker"
	"localcrust/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBakersQueryHandler lists verified bakers with their catalog size and
// review totals.
type GetBakersQueryHandler struct {
	db *gorm.DB
}

// NewGetBakersQueryHandler creates a handler for baker listings.
func NewGetBakersQueryHandler(db *gorm.DB) GetBakersQueryHandler {
	return GetBakersQueryHandler{db: db}
}

// Handle executes the baker listing query.
func (h GetBakersQueryHandler) Handle(ctx context.Context, query GetBakersQuery) ([]BakerSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			b.id,
			b.shop_name,
			b.description,
			b.city,
			COUNT(DISTINCT p.id),
			COALESCE(AVG(r.rating), 0),
			COUNT(DISTINCT r.id)
		FROM bakers b
		LEFT JOIN products p ON p.baker_id = b.id AND p.available = TRUE
		LEFT JOIN reviews r ON r.product_id = p.id
		WHERE b.verification = ?
	`
	args := []any{int(baker.VerificationVerified)}

	if query.City() != "" {
		sql += " AND b.city = ?"
		args = append(args, query.City())
	}
	sql += " GROUP BY b.id, b.shop_name, b.description, b.city ORDER BY b.shop_name"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bakers := make([]BakerSummaryResponse, 0)
	for rows.Next() {
		var (
			id      uuid.UUID
			summary BakerSummaryResponse
		)
		err = rows.Scan(
			&id, &summary.ShopName, &summary.Description, &summary.City,
			&summary.ProductCount, &summary.AverageRating, &summary.ReviewCount,
		)
		if err != nil {
			return nil, err
		}
		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		bakers = append(bakers, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bakers, nil
}
