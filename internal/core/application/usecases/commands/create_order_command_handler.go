package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"
	"localcrust/internal/core/ports"
)

// ErrProductNotAvailable is returned when a cart line points at a product
// that was taken off sale between browsing and checkout.
var ErrProductNotAvailable = errors.New("product is not available")

// CheckoutResult is what the client needs to start the payment: our order
// identity plus the gateway order reference the payment SDK pays against.
type CheckoutResult struct {
	OrderID        kernel.UUID
	OrderCode      string
	GatewayOrderID string
	AmountPaise    int64
	Currency       string
}

// CreateOrderCommandHandler handles checkout. It prices the cart from the
// catalog, creates the order in pending status, and registers the amount with
// the payment gateway. The client-supplied cart only ever contributes product
// identifiers and quantities.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	gateway    ports.PaymentGateway
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	gateway ports.PaymentGateway,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the checkout command.
//
// The order total is computed from catalog prices snapshotted inside the
// transaction, so a concurrent price edit either lands fully before or fully
// after this checkout.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CheckoutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return CheckoutResult{}, err
	}

	items, err := h.priceLines(ctx, uow, cmd.Lines())
	if err != nil {
		return CheckoutResult{}, err
	}

	now := time.Now()
	code := order.GenerateCode(now)

	newOrder, err := order.NewOrder(cmd.OrderID(), code, cmd.CustomerID(), items, cmd.Address(), now)
	if err != nil {
		return CheckoutResult{}, err
	}

	gatewayOrder, err := h.gateway.CreateOrder(ctx, newOrder.TotalAmount(), code)
	if err != nil {
		return CheckoutResult{}, err
	}
	if err = newOrder.AttachGatewayOrder(gatewayOrder.ID); err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{
		OrderID:        newOrder.ID(),
		OrderCode:      newOrder.Code(),
		GatewayOrderID: gatewayOrder.ID,
		AmountPaise:    newOrder.TotalAmount().Paise(),
		Currency:       gatewayOrder.Currency,
	}, nil
}

// priceLines resolves the cart lines against the catalog and snapshots names
// and prices into order items.
func (h *CreateOrderCommandHandler) priceLines(
	ctx context.Context,
	uow CheckoutUoW,
	lines []OrderLine,
) ([]order.Item, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID())
	}

	products, err := uow.ProductRepository().GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]int, len(products))
	for i, p := range products {
		byID[p.ID()] = i
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		idx, ok := byID[line.ProductID()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotAvailable, line.ProductID())
		}
		p := products[idx]
		if !p.IsAvailable() {
			return nil, fmt.Errorf("%w: %s", ErrProductNotAvailable, p.Name())
		}

		item, err := order.NewItem(p.ID(), p.BakerID(), p.Name(), p.Price(), line.Quantity())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
