package commands

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents a baker taking one of their listings off
// the catalog.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	bakerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a listing delete command.
func NewDeleteProductCommand(productID, bakerID kernel.UUID) (DeleteProductCommand, error) {
	if err := errors.Join(productID.Validate(), bakerID.Validate()); err != nil {
		return DeleteProductCommand{}, err
	}

	return DeleteProductCommand{
		productID: productID,
		bakerID:   bakerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the target listing's identifier.
func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// BakerID returns the acting baker's identifier.
func (c DeleteProductCommand) BakerID() kernel.UUID {
	return c.bakerID
}
