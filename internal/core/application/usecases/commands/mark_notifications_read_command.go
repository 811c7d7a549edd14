package commands

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrMarkNotificationsReadCommandIsNotConstructed = errors.New(
	"notification read commands must be created via their constructors",
)

// MarkNotificationReadCommand marks one notification as seen.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	recipientID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a single-notification read command.
func NewMarkNotificationReadCommand(notificationID, recipientID kernel.UUID) (MarkNotificationReadCommand, error) {
	if err := errors.Join(notificationID.Validate(), recipientID.Validate()); err != nil {
		return MarkNotificationReadCommand{}, err
	}
	return MarkNotificationReadCommand{
		notificationID: notificationID,
		recipientID:    recipientID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationsReadCommandIsNotConstructed)
}

// NotificationID returns the target notification's identifier.
func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

// RecipientID returns the acting recipient's identifier.
func (c MarkNotificationReadCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// MarkAllNotificationsReadCommand marks all of a recipient's notifications as
// seen.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a mark-all-read command.
func NewMarkAllNotificationsReadCommand(recipientID kernel.UUID) (MarkAllNotificationsReadCommand, error) {
	if err := recipientID.Validate(); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}
	return MarkAllNotificationsReadCommand{
		recipientID: recipientID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationsReadCommandIsNotConstructed)
}

// RecipientID returns the acting recipient's identifier.
func (c MarkAllNotificationsReadCommand) RecipientID() kernel.UUID {
	return c.recipientID
}
