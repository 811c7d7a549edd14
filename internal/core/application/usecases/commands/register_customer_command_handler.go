package commands

import (
	"context"
	"errors"
	"time"

	"localcrust/internal/core/domain/model/customer"
	"localcrust/internal/pkg/errs"
)

// RegisterCustomerCommandHandler creates new buyer accounts.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration. The email must not be in use.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()
	if _, err := customerRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return ErrEmailAlreadyRegistered
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newCustomer, err := customer.NewCustomer(
		cmd.CustomerID(),
		cmd.Email(),
		cmd.PasswordHash(),
		cmd.Name(),
		cmd.Phone(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = customerRepo.Add(ctx, newCustomer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
