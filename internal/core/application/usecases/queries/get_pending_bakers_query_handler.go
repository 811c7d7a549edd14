package queries

import (
	"context"
	"time"

	"localcrust/internal/core/domain/model/baker"
	"localcrust/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingBakersQueryHandler lists the admin moderation queue.
type GetPendingBakersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingBakersQueryHandler creates a handler for the moderation queue.
func NewGetPendingBakersQueryHandler(db *gorm.DB) GetPendingBakersQueryHandler {
	return GetPendingBakersQueryHandler{db: db}
}

// Handle executes the moderation queue query.
func (h GetPendingBakersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingBakersQuery,
) ([]PendingBakerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, email, owner_name, shop_name, description, phone, city, created_at
		FROM bakers
		WHERE verification = ?
		ORDER BY created_at
	`, int(baker.VerificationPending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pending := make([]PendingBakerResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			applicant PendingBakerResponse
			createdAt time.Time
		)
		err = rows.Scan(
			&id, &applicant.Email, &applicant.OwnerName, &applicant.ShopName,
			&applicant.Description, &applicant.Phone, &applicant.City, &createdAt,
		)
		if err != nil {
			return nil, err
		}
		if applicant.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		applicant.AppliedAt = createdAt.Format(time.RFC3339)
		pending = append(pending, applicant)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
