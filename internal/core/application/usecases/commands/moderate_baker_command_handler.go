package commands

import (
	"context"
	"fmt"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/notification"
)

// ModerateBakerCommandHandler applies an admin's verification decision and
// notifies the baker.
type ModerateBakerCommandHandler struct {
	uowFactory BakerUoWFactory
}

// NewModerateBakerCommandHandler creates a handler for baker moderation.
func NewModerateBakerCommandHandler(uowFactory BakerUoWFactory) ModerateBakerCommandHandler {
	return ModerateBakerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decision. A baker is decided exactly once.
func (h *ModerateBakerCommandHandler) Handle(ctx context.Context, cmd ModerateBakerCommand) error {
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

	bakerRepo := uow.BakerRepository()
	target, err := bakerRepo.Get(ctx, cmd.BakerID())
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Congratulations! %s is now verified on LocalCrust.", target.ShopName())
	if cmd.Approve() {
		err = target.Verify()
	} else {
		err = target.Reject()
		message = fmt.Sprintf("Unfortunately, the application for %s was declined.", target.ShopName())
	}
	if err != nil {
		return err
	}

	if err = bakerRepo.Update(ctx, target); err != nil {
		return err
	}

	decisionNote, err := notification.NewNotification(
		kernel.NewUUID(),
		target.ID(),
		notification.KindVerification,
		message,
		target.ID(),
		time.Now(),
	)
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, decisionNote); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
