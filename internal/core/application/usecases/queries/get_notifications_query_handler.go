package queries

import (
	"context"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler loads a recipient's notification feed.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification feeds.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the notification feed query.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) (NotificationFeedResponse, error) {
	if err := query.Validate(); err != nil {
		return NotificationFeedResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, kind, message, reference_id, read, created_at
		FROM notifications
		WHERE recipient_id = ?
		ORDER BY created_at DESC
	`, query.RecipientID().Bytes()).Rows()
	if err != nil {
		return NotificationFeedResponse{}, err
	}
	defer rows.Close()

	feed := NotificationFeedResponse{Notifications: make([]NotificationResponse, 0)}
	for rows.Next() {
		var (
			id          uuid.UUID
			kind        int
			referenceID uuid.UUID
			item        NotificationResponse
			createdAt   time.Time
		)
		if err = rows.Scan(&id, &kind, &item.Message, &referenceID, &item.Read, &createdAt); err != nil {
			return NotificationFeedResponse{}, err
		}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return NotificationFeedResponse{}, err
		}
		if item.ReferenceID, err = kernel.UUIDFromBytes(referenceID[:]); err != nil {
			return NotificationFeedResponse{}, err
		}
		item.Kind = notification.Kind(kind).String()
		item.CreatedAt = createdAt.Format(time.RFC3339)

		if !item.Read {
			feed.UnreadCount++
		}
		feed.Notifications = append(feed.Notifications, item)
	}

	if err = rows.Err(); err != nil {
		return NotificationFeedResponse{}, err
	}

	return feed, nil
}
