// Package productrepo provides data transfer objects and mapping functions
// for product persistence.
package productrepo

import (
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BakerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(64);not null;index"`
	PricePaise  int64     `gorm:"type:bigint;not null"`
	ImageURL    string    `gorm:"type:varchar(512)"`
	Available   bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		BakerID:     aggregate.BakerID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Category:    aggregate.Category(),
		PricePaise:  aggregate.Price().Paise(),
		ImageURL:    aggregate.ImageURL(),
		Available:   aggregate.IsAvailable(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bakerID, err := kernel.UUIDFromBytes(dto.BakerID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PricePaise)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		bakerID,
		dto.Name,
		dto.Description,
		dto.Category,
		price,
		dto.ImageURL,
		dto.Available,
		dto.CreatedAt,
	)
}
