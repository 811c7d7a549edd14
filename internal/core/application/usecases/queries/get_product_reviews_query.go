package queries

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrGetProductReviewsQueryIsNotConstructed = errors.New(
	"GetProductReviewsQuery must be created via NewGetProductReviewsQuery constructor",
)

// GetProductReviewsQuery retrieves a product's reviews with rating totals.
type GetProductReviewsQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductReviewsQuery creates a product review query.
func NewGetProductReviewsQuery(productID kernel.UUID) (GetProductReviewsQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductReviewsQuery{}, err
	}
	return GetProductReviewsQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductReviewsQueryIsNotConstructed)
}

// ProductID returns the product whose reviews are requested.
func (q GetProductReviewsQuery) ProductID() kernel.UUID {
	return q.productID
}

// ReviewReplyResponse is a baker's reply attached to a review.
type ReviewReplyResponse struct {
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// ReviewResponse is one review, including the reply when present.
type ReviewResponse struct {
	ID           kernel.UUID          `json:"id"`
	ProductID    kernel.UUID          `json:"product_id"`
	ProductName  string               `json:"product_name"`
	CustomerName string               `json:"customer_name"`
	Rating       int                  `json:"rating"`
	Comment      string               `json:"comment"`
	Reply        *ReviewReplyResponse `json:"reply,omitempty"`
	CreatedAt    string               `json:"created_at"`
}

// ProductReviewsResponse is a product's review page: totals plus the list.
type ProductReviewsResponse struct {
	AverageRating float64          `json:"average_rating"`
	ReviewCount   int              `json:"review_count"`
	Reviews       []ReviewResponse `json:"reviews"`
}
