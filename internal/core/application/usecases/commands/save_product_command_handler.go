package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"localcrust/internal/core/domain/model/product"
	"localcrust/internal/pkg/errs"
)

// ErrBakerNotVerified is returned when an unverified baker tries to list a
// product.
var ErrBakerNotVerified = errors.New("baker is not verified")

// SaveProductCommandHandler creates or edits a catalog listing. Creation
// requires a verified baker; edits require ownership.
type SaveProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewSaveProductCommandHandler creates a handler for listing saves.
func NewSaveProductCommandHandler(uowFactory CatalogUoWFactory) SaveProductCommandHandler {
	return SaveProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the save. Orders placed earlier keep the prices they were
// placed at; only future checkouts see the new listing.
func (h *SaveProductCommandHandler) Handle(ctx context.Context, cmd SaveProductCommand) error {
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
	existing, err := productRepo.Get(ctx, cmd.ProductID())
	switch {
	case err == nil:
		if !existing.IsOwnedBy(cmd.BakerID()) {
			return fmt.Errorf("%w: product belongs to another baker", ErrNotAllowed)
		}
		if err = existing.Update(cmd.Name(), cmd.Description(), cmd.Category(), cmd.Price(), cmd.ImageURL()); err != nil {
			return err
		}
		existing.SetAvailability(cmd.Available())
		if err = productRepo.Update(ctx, existing); err != nil {
			return err
		}

	case errors.Is(err, errs.ErrObjectNotFound):
		owner, ownerErr := uow.BakerRepository().Get(ctx, cmd.BakerID())
		if ownerErr != nil {
			return ownerErr
		}
		if !owner.IsVerified() {
			return ErrBakerNotVerified
		}

		listing, newErr := product.NewProduct(
			cmd.ProductID(),
			cmd.BakerID(),
			cmd.Name(),
			cmd.Description(),
			cmd.Category(),
			cmd.Price(),
			cmd.ImageURL(),
			time.Now(),
		)
		if newErr != nil {
			return newErr
		}
		listing.SetAvailability(cmd.Available())
		if err = productRepo.Add(ctx, listing); err != nil {
			return err
		}

	default:
		return err
	}

	return uow.Commit(ctx)
}
