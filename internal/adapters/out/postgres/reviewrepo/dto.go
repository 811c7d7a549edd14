// Package reviewrepo provides data transfer objects and mapping functions for
// review persistence. The optional baker reply is flattened into nullable
// columns of the reviews table.
package reviewrepo

import (
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting review aggregates.
// The (order_id, product_id) unique index backs the one-review-per-product-
// per-order rule.
type ReviewDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID      uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_order_product"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_order_product"`
	Rating         int        `gorm:"type:int;not null"`
	Comment        string     `gorm:"type:text"`
	ReplyBakerID   *uuid.UUID `gorm:"type:uuid"`
	ReplyText      *string    `gorm:"type:text"`
	ReplyCreatedAt *time.Time
	CreatedAt      time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(aggregate *review.Review) ReviewDTO {
	dto := ReviewDTO{
		ID:         aggregate.ID().Bytes(),
		ProductID:  aggregate.ProductID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		Rating:     aggregate.Rating().Value(),
		Comment:    aggregate.Comment(),
		CreatedAt:  aggregate.CreatedAt(),
	}

	if reply := aggregate.Reply(); reply != nil {
		bakerID := reply.BakerID().Bytes()
		text := reply.Text()
		createdAt := reply.CreatedAt()
		dto.ReplyBakerID = &bakerID
		dto.ReplyText = &text
		dto.ReplyCreatedAt = &createdAt
	}

	return dto
}

func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	rating, err := review.NewRating(dto.Rating)
	if err != nil {
		return nil, err
	}

	var reply *review.Reply
	if dto.ReplyBakerID != nil && dto.ReplyText != nil && dto.ReplyCreatedAt != nil {
		bakerID, replyErr := kernel.UUIDFromBytes((*dto.ReplyBakerID)[:])
		if replyErr != nil {
			return nil, replyErr
		}
		reply, replyErr = review.RestoreReply(bakerID, *dto.ReplyText, *dto.ReplyCreatedAt)
		if replyErr != nil {
			return nil, replyErr
		}
	}

	return review.RestoreReview(id, productID, customerID, orderID, rating, dto.Comment, reply, dto.CreatedAt)
}
