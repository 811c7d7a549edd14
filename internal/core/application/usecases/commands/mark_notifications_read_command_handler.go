package commands

import (
	"context"
	"fmt"
)

// MarkNotificationsReadCommandHandler maintains notification read state.
type MarkNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationsReadCommandHandler creates a handler for notification
// read-state operations.
func NewMarkNotificationsReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationsReadCommandHandler {
	return MarkNotificationsReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// HandleOne marks a single notification as seen. Only its recipient may do so.
func (h *MarkNotificationsReadCommandHandler) HandleOne(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()
	target, err := notificationRepo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}
	if !target.RecipientID().IsEqual(cmd.RecipientID()) {
		return fmt.Errorf("%w: notification belongs to another recipient", ErrNotAllowed)
	}

	target.MarkRead()
	if err = notificationRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// HandleAll marks every unread notification of the recipient as seen.
func (h *MarkNotificationsReadCommandHandler) HandleAll(ctx context.Context, cmd MarkAllNotificationsReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().MarkAllRead(ctx, cmd.RecipientID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
