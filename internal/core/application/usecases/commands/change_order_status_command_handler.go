package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/notification"
	"localcrust/internal/core/domain/model/order"
	"localcrust/internal/core/ports"
)

// ChangeOrderStatusCommandHandler moves an order along the fulfillment
// lifecycle on behalf of a baker. The transition table inside the aggregate
// is the authority; this handler adds authorization, the customer
// notification, and the loyalty accrual on delivery.
type ChangeOrderStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	publisher  ports.EventPublisher
	log        *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for fulfillment
// transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory FulfillmentUoWFactory,
	publisher ports.EventPublisher,
	log *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
	}
}

// Handle processes the status transition.
//
// Business rules:
//   - Only a baker with items in the order may transition it
//   - The transition must be legal per the order's state machine
//   - Delivery awards loyalty points to the customer
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if !target.ContainsBaker(cmd.BakerID()) {
		return fmt.Errorf("%w: baker %s has no items in order %s",
			ErrNotAllowed, cmd.BakerID(), target.Code())
	}

	oldStatus := target.Status()
	if err = target.ChangeStatus(cmd.Next()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	now := time.Now()
	statusNote, err := notification.NewNotification(
		kernel.NewUUID(),
		target.CustomerID(),
		notification.KindOrderStatus,
		fmt.Sprintf("Your order %s is now %s.", target.Code(), target.Status()),
		target.ID(),
		now,
	)
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, statusNote); err != nil {
		return err
	}

	if target.Status() == order.StatusDelivered {
		if err = h.awardLoyalty(ctx, uow, target); err != nil {
			return err
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

// awardLoyalty accrues points for the delivered order's total.
func (h *ChangeOrderStatusCommandHandler) awardLoyalty(
	ctx context.Context,
	uow FulfillmentUoW,
	delivered *order.Order,
) error {
	customerRepo := uow.CustomerRepository()
	buyer, err := customerRepo.Get(ctx, delivered.CustomerID())
	if err != nil {
		return err
	}

	if err = buyer.EarnLoyaltyPoints(delivered.TotalAmount()); err != nil {
		return err
	}

	return customerRepo.Update(ctx, buyer)
}
