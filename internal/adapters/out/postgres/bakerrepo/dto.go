// Package bakerrepo provides data transfer objects and mapping functions for
// baker persistence.
package bakerrepo

import (
	"time"

	"localcrust/internal/core/domain/model/baker"
	"localcrust/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BakerDTO represents the database structure for persisting baker aggregates.
type BakerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	OwnerName    string    `gorm:"type:varchar(255);not null"`
	ShopName     string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Phone        string    `gorm:"type:varchar(32);not null"`
	City         string    `gorm:"type:varchar(128);not null;index"`
	Verification int       `gorm:"type:int;not null;index"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the database table name for baker entities.
func (BakerDTO) TableName() string {
	return "bakers"
}

func fromDomain(aggregate *baker.Baker) BakerDTO {
	return BakerDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		OwnerName:    aggregate.OwnerName(),
		ShopName:     aggregate.ShopName(),
		Description:  aggregate.Description(),
		Phone:        aggregate.Phone(),
		City:         aggregate.City(),
		Verification: int(aggregate.Verification()),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto BakerDTO) (*baker.Baker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return baker.RestoreBaker(
		id,
		dto.Email,
		dto.PasswordHash,
		dto.OwnerName,
		dto.ShopName,
		dto.Description,
		dto.Phone,
		dto.City,
		baker.VerificationStatus(dto.Verification),
		dto.CreatedAt,
	)
}
