package commands

import (
	"context"
	"errors"
	"time"

	"localcrust/internal/core/domain/model/baker"
	"localcrust/internal/pkg/errs"
)

// RegisterBakerCommandHandler creates new seller accounts in pending
// verification.
type RegisterBakerCommandHandler struct {
	uowFactory BakerUoWFactory
}

// NewRegisterBakerCommandHandler creates a handler for baker registration.
func NewRegisterBakerCommandHandler(uowFactory BakerUoWFactory) RegisterBakerCommandHandler {
	return RegisterBakerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration. The email must not be in use.
func (h *RegisterBakerCommandHandler) Handle(ctx context.Context, cmd RegisterBakerCommand) error {
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
	if _, err := bakerRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return ErrEmailAlreadyRegistered
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newBaker, err := baker.NewBaker(
		cmd.BakerID(),
		cmd.Email(),
		cmd.PasswordHash(),
		cmd.OwnerName(),
		cmd.ShopName(),
		cmd.Description(),
		cmd.Phone(),
		cmd.City(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = bakerRepo.Add(ctx, newBaker); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
