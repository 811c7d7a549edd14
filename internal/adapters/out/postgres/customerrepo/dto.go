// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"time"

	"localcrust/internal/core/domain/model/customer"
	"localcrust/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates.
type CustomerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(32);not null"`
	LoyaltyPoints int       `gorm:"type:int;not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:            aggregate.ID().Bytes(),
		Email:         aggregate.Email(),
		PasswordHash:  aggregate.PasswordHash(),
		Name:          aggregate.Name(),
		Phone:         aggregate.Phone(),
		LoyaltyPoints: aggregate.LoyaltyPoints(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.Email,
		dto.PasswordHash,
		dto.Name,
		dto.Phone,
		dto.LoyaltyPoints,
		dto.CreatedAt,
	)
}
