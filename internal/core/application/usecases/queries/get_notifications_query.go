package queries

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves a recipient's notifications, newest first.
type GetNotificationsQuery struct {
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a notification feed query.
func NewGetNotificationsQuery(recipientID kernel.UUID) (GetNotificationsQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}
	return GetNotificationsQuery{
		recipientID: recipientID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// RecipientID returns the recipient whose feed is requested.
func (q GetNotificationsQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

// NotificationResponse is one entry of a notification feed.
type NotificationResponse struct {
	ID          kernel.UUID `json:"id"`
	Kind        string      `json:"kind"`
	Message     string      `json:"message"`
	ReferenceID kernel.UUID `json:"reference_id"`
	Read        bool        `json:"read"`
	CreatedAt   string      `json:"created_at"`
}

// NotificationFeedResponse is a recipient's feed with its unread count.
type NotificationFeedResponse struct {
	UnreadCount   int                    `json:"unread_count"`
	Notifications []NotificationResponse `json:"notifications"`
}
