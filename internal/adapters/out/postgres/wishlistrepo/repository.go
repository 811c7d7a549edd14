// Package wishlistrepo persists wishlist entries. An entry is a plain
// (customer, product) pair, so the package carries no domain mapping beyond
// the DTO itself.
package wishlistrepo

import (
	"context"
	"time"

	"localcrust/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WishlistItemDTO represents one saved product on a customer's wishlist.
type WishlistItemDTO struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	AddedAt    time.Time `gorm:"not null"`
}

// TableName specifies the database table name for wishlist entries.
func (WishlistItemDTO) TableName() string {
	return "wishlist_items"
}

// GormWishlistRepository implements WishlistRepository using GORM.
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewGormWishlistRepository creates a new GORM wishlist repository.
func NewGormWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// Add stores a wishlist entry. Re-adding an existing entry keeps the
// original timestamp.
func (r *GormWishlistRepository) Add(ctx context.Context, customerID, productID kernel.UUID, at time.Time) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if err := productID.Validate(); err != nil {
		return err
	}

	dto := WishlistItemDTO{
		CustomerID: customerID.Bytes(),
		ProductID:  productID.Bytes(),
		AddedAt:    at,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
}

// Remove deletes a wishlist entry. Removing a missing entry is a no-op.
func (r *GormWishlistRepository) Remove(ctx context.Context, customerID, productID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if err := productID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&WishlistItemDTO{}, "customer_id = ? AND product_id = ?", customerID.Bytes(), productID.Bytes()).
		Error
}

// Contains reports whether the product is on the customer's wishlist.
func (r *GormWishlistRepository) Contains(ctx context.Context, customerID, productID kernel.UUID) (bool, error) {
	if err := customerID.Validate(); err != nil {
		return false, err
	}
	if err := productID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&WishlistItemDTO{}).
		Where("customer_id = ? AND product_id = ?", customerID.Bytes(), productID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
