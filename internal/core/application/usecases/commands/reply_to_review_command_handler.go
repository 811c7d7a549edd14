package commands

import (
	"context"
	"fmt"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/notification"
)

// ReplyToReviewCommandHandler attaches a baker's single reply to a review and
// notifies the customer. Ownership is checked through the reviewed product.
type ReplyToReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewReplyToReviewCommandHandler creates a handler for review replies.
func NewReplyToReviewCommandHandler(uowFactory ReviewUoWFactory) ReplyToReviewCommandHandler {
	return ReplyToReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reply.
//
// Business rules:
//   - Only the baker who owns the reviewed product may reply
//   - A review carries at most one reply
func (h *ReplyToReviewCommandHandler) Handle(ctx context.Context, cmd ReplyToReviewCommand) error {
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

	reviewRepo := uow.ReviewRepository()
	target, err := reviewRepo.Get(ctx, cmd.ReviewID())
	if err != nil {
		return err
	}

	reviewed, err := uow.ProductRepository().Get(ctx, target.ProductID())
	if err != nil {
		return err
	}
	if !reviewed.IsOwnedBy(cmd.BakerID()) {
		return fmt.Errorf("%w: review is about another baker's product", ErrNotAllowed)
	}

	now := time.Now()
	if err = target.AddReply(cmd.BakerID(), cmd.Text(), now); err != nil {
		return err
	}

	if err = reviewRepo.Update(ctx, target); err != nil {
		return err
	}

	replyNote, err := notification.NewNotification(
		kernel.NewUUID(),
		target.CustomerID(),
		notification.KindReviewReply,
		fmt.Sprintf("The baker replied to your review of %s.", reviewed.Name()),
		target.ID(),
		now,
	)
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, replyNote); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
