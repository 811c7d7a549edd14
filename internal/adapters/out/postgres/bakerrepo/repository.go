package bakerrepo

import (
	"context"
	"errors"

	"localcrust/internal/core/domain/model/baker"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBakerRepository implements BakerRepository using GORM.
type GormBakerRepository struct {
	db *gorm.DB
}

// NewGormBakerRepository creates a new GORM baker repository.
func NewGormBakerRepository(db *gorm.DB) *GormBakerRepository {
	return &GormBakerRepository{db: db}
}

// Add saves a new baker to the database.
func (r *GormBakerRepository) Add(ctx context.Context, aggregate *baker.Baker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing baker to the database.
func (r *GormBakerRepository) Update(ctx context.Context, aggregate *baker.Baker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BakerDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a baker by ID.
func (r *GormBakerRepository) Get(ctx context.Context, id kernel.UUID) (*baker.Baker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BakerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("baker", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a baker by login email.
func (r *GormBakerRepository) GetByEmail(ctx context.Context, email string) (*baker.Baker, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto BakerDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("baker", email)
		}
		return nil, err
	}

	return toDomain(dto)
}
