package queries

import (
	"context"
	"database/sql"
	"time"

	"localcrust/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductReviewsQueryHandler loads a product's reviews, newest first.
type GetProductReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductReviewsQueryHandler creates a handler for product review queries.
func NewGetProductReviewsQueryHandler(db *gorm.DB) GetProductReviewsQueryHandler {
	return GetProductReviewsQueryHandler{db: db}
}

// Handle executes the product review query.
func (h GetProductReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetProductReviewsQuery,
) (ProductReviewsResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductReviewsResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
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
		WHERE r.product_id = ?
		ORDER BY r.created_at DESC
	`, query.ProductID().Bytes()).Rows()
	if err != nil {
		return ProductReviewsResponse{}, err
	}
	defer rows.Close()

	page := ProductReviewsResponse{Reviews: make([]ReviewResponse, 0)}
	ratingSum := 0

	for rows.Next() {
		var (
			id             uuid.UUID
			item           ReviewResponse
			replyText      sql.NullString
			replyCreatedAt sql.NullTime
			createdAt      time.Time
		)
		err = rows.Scan(
			&id, &item.ProductName, &item.CustomerName, &item.Rating,
			&item.Comment, &replyText, &replyCreatedAt, &createdAt,
		)
		if err != nil {
			return ProductReviewsResponse{}, err
		}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ProductReviewsResponse{}, err
		}
		item.ProductID = query.ProductID()
		item.CreatedAt = createdAt.Format(time.RFC3339)
		if replyText.Valid {
			item.Reply = &ReviewReplyResponse{
				Text:      replyText.String,
				CreatedAt: replyCreatedAt.Time.Format(time.RFC3339),
			}
		}

		ratingSum += item.Rating
		page.Reviews = append(page.Reviews, item)
	}

	if err = rows.Err(); err != nil {
		return ProductReviewsResponse{}, err
	}

	page.ReviewCount = len(page.Reviews)
	if page.ReviewCount > 0 {
		page.AverageRating = float64(ratingSum) / float64(page.ReviewCount)
	}

	return page, nil
}
