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

// ConfirmPaymentCommandHandler settles an order's payment from the gateway
// callback. The signature is verified first; only a verified callback can
// move the order from pending to confirmed, and only for the acting
// customer's own order. Each baker with items in the order gets a new-order
// notification.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	publisher  ports.EventPublisher
	log        *slog.Logger
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmations.
func NewConfirmPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
	publisher ports.EventPublisher,
	log *slog.Logger,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		publisher:  publisher,
		log:        log,
	}
}

// Handle processes the payment confirmation.
//
// The order-placed event is published after the transaction commits; a
// publish failure is logged but never fails the settlement.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gateway.VerifyPaymentSignature(cmd.GatewayOrderID(), cmd.PaymentID(), cmd.Signature()); err != nil {
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
	paidOrder, err := orderRepo.GetByGatewayOrderID(ctx, cmd.GatewayOrderID())
	if err != nil {
		return err
	}

	// The callback must settle the order the customer said they were paying
	// for, and that order must be theirs.
	if !paidOrder.ID().IsEqual(cmd.OrderID()) {
		return fmt.Errorf("%w: gateway order %s is not attached to order %s",
			ErrNotAllowed, cmd.GatewayOrderID(), cmd.OrderID())
	}
	if !paidOrder.CustomerID().IsEqual(cmd.CustomerID()) {
		return fmt.Errorf("%w: order %s belongs to another customer", ErrNotAllowed, paidOrder.Code())
	}

	if err = paidOrder.MarkPaymentCompleted(cmd.PaymentID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, paidOrder); err != nil {
		return err
	}

	now := time.Now()
	notificationRepo := uow.NotificationRepository()
	for _, bakerID := range distinctBakerIDs(paidOrder.Items()) {
		n, nErr := notification.NewNotification(
			kernel.NewUUID(),
			bakerID,
			notification.KindNewOrder,
			fmt.Sprintf("New order %s is paid and waiting for you.", paidOrder.Code()),
			paidOrder.ID(),
			now,
		)
		if nErr != nil {
			return nErr
		}
		if nErr = notificationRepo.Add(ctx, n); nErr != nil {
			return nErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := ports.OrderPlacedEvent{
		OrderID:    paidOrder.ID().String(),
		OrderCode:  paidOrder.Code(),
		CustomerID: paidOrder.CustomerID().String(),
		TotalPaise: paidOrder.TotalAmount().Paise(),
		PlacedAt:   now,
	}
	if err = h.publisher.PublishOrderPlaced(ctx, event); err != nil {
		h.log.Warn("publish order placed event failed",
			"order_code", paidOrder.Code(), "error", err)
	}

	return nil
}

// distinctBakerIDs returns the unique baker IDs across the order's items.
func distinctBakerIDs(items []order.Item) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(items))
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		id := item.BakerID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
