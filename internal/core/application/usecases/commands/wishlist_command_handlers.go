package commands

import (
	"context"
	"time"
)

// WishlistCommandHandler handles wishlist adds and removes. Both are
// idempotent at the repository level, so retries are harmless.
type WishlistCommandHandler struct {
	uowFactory WishlistUoWFactory
}

// NewWishlistCommandHandler creates a handler for wishlist operations.
func NewWishlistCommandHandler(uowFactory WishlistUoWFactory) WishlistCommandHandler {
	return WishlistCommandHandler{
		uowFactory: uowFactory,
	}
}

// HandleAdd saves a product on the customer's wishlist. The product must
// exist in the catalog.
func (h *WishlistCommandHandler) HandleAdd(ctx context.Context, cmd AddToWishlistCommand) error {
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

	if _, err := uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err := uow.WishlistRepository().Add(ctx, cmd.CustomerID(), cmd.ProductID(), time.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// HandleRemove removes a product from the customer's wishlist.
func (h *WishlistCommandHandler) HandleRemove(ctx context.Context, cmd RemoveFromWishlistCommand) error {
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

	if err := uow.WishlistRepository().Remove(ctx, cmd.CustomerID(), cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
