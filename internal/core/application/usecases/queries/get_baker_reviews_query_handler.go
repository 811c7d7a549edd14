package queries

import (
	"context"
	"database/sql"
	"time"

	"localcrust/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBakerReviewsQueryHandler lists reviews of a baker's products, with
// the unanswered ones first.
type GetBakerReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetBakerReviewsQueryHandler creates a handler for baker review queries.
func NewGetBakerReviewsQueryHandler(db *gorm.DB) GetBakerReviewsQueryHandler {
	return GetBakerReviewsQueryHandler{db: db}
}

// Handle executes the baker review query.
func (h GetBakerReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetBakerReviewsQuery,
) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.product_id,
			p.name,
			c.name,
			r.rating,
			r.comment,
			r.reply_text,
			r.reply_created_at,
			r.created_at
		FROM reviews r
		JOIN products p ON p.id = r.product_id
		JOIN customers c ON c.id = r.customer_id
		WHERE p.baker_id = ?
		ORDER BY (r.reply_text IS NULL) DESC, r.created_at DESC
	`, query.BakerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewResponse, 0)
	for rows.Next() {
		var (
			id             uuid.UUID
			productID      uuid.UUID
			item           ReviewResponse
			replyText      sql.NullString
			replyCreatedAt sql.NullTime
			createdAt      time.Time
		)
		err = rows.Scan(
			&id, &productID, &item.ProductName, &item.CustomerName,
			&item.Rating, &item.Comment, &replyText, &replyCreatedAt, &createdAt,
		)
		if err != nil {
			return nil, err
		}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		item.CreatedAt = createdAt.Format(time.RFC3339)
		if replyText.Valid {
			item.Reply = &ReviewReplyResponse{
				Text:      replyText.String,
				CreatedAt: replyCreatedAt.Time.Format(time.RFC3339),
			}
		}
		reviews = append(reviews, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
