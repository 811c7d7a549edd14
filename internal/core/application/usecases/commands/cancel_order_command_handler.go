package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/notification"
	"localcrust/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order on the customer's request.
// The state machine decides whether cancellation is still possible; an order
// already out for delivery stays on its way.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	log        *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for customer cancellations.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	log *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
	}
}

// Handle processes the cancellation. Only the order's owner may cancel it.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !target.CustomerID().IsEqual(cmd.CustomerID()) {
		return fmt.Errorf("%w: order %s belongs to another customer", ErrNotAllowed, target.Code())
	}

	oldStatus := target.Status()
	if err = target.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	now := time.Now()
	for _, bakerID := range distinctBakerIDs(target.Items()) {
		n, nErr := notification.NewNotification(
			kernel.NewUUID(),
			bakerID,
			notification.KindOrderStatus,
			fmt.Sprintf("Order %s was cancelled by the customer.", target.Code()),
			target.ID(),
			now,
		)
		if nErr != nil {
			return nErr
		}
		if nErr = uow.NotificationRepository().Add(ctx, n); nErr != nil {
			return nErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := ports.OrderStatusChangedEvent{
		OrderID:    target.ID().String(),
		OrderCode:  target.Code(),
		CustomerID: target.CustomerID().String(),
		OldStatus:  oldStatus.String(),
		NewStatus:  target.Status().String(),
		ChangedAt:  now,
	}
	if err = h.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		h.log.Warn("publish order status changed event failed",
			"order_code", target.Code(), "error", err)
	}

	return nil
}
