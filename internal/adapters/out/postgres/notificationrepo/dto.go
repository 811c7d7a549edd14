// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// notifications.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        int       `gorm:"type:int;not null"`
	Message     string    `gorm:"type:text;not null"`
	ReferenceID uuid.UUID `gorm:"type:uuid;not null"`
	Read        bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          aggregate.ID().Bytes(),
		RecipientID: aggregate.RecipientID().Bytes(),
		Kind:        int(aggregate.Kind()),
		Message:     aggregate.Message(),
		ReferenceID: aggregate.ReferenceID().Bytes(),
		Read:        aggregate.IsRead(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	referenceID, err := kernel.UUIDFromBytes(dto.ReferenceID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		recipientID,
		notification.Kind(dto.Kind),
		dto.Message,
		referenceID,
		dto.Read,
		dto.CreatedAt,
	)
}
