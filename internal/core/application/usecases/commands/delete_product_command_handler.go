package commands

import (
	"context"
	"fmt"
)

// DeleteProductCommandHandler removes a baker's own listing from the catalog.
// Past orders keep their snapshots; only the live catalog shrinks.
type DeleteProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for listing deletes.
func NewDeleteProductCommandHandler(uowFactory CatalogUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete. Only the owner may remove a listing.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	productRepo := uow.ProductRepository()
	target, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !target.IsOwnedBy(cmd.BakerID()) {
		return fmt.Errorf("%w: product belongs to another baker", ErrNotAllowed)
	}

	if err = productRepo.Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
