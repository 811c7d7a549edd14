package commands

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrWishlistCommandIsNotConstructed = errors.New(
	"wishlist commands must be created via their constructors",
)

// AddToWishlistCommand represents a customer saving a product for later.
type AddToWishlistCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddToWishlistCommand creates a wishlist add command.
func NewAddToWishlistCommand(customerID, productID kernel.UUID) (AddToWishlistCommand, error) {
	if err := errors.Join(customerID.Validate(), productID.Validate()); err != nil {
		return AddToWishlistCommand{}, err
	}
	return AddToWishlistCommand{
		customerID: customerID,
		productID:  productID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToWishlistCommand) Validate() error {
	return c.guard.Validate(ErrWishlistCommandIsNotConstructed)
}

// CustomerID returns the acting customer's identifier.
func (c AddToWishlistCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the saved product's identifier.
func (c AddToWishlistCommand) ProductID() kernel.UUID {
	return c.productID
}

// RemoveFromWishlistCommand represents a customer removing a saved product.
type RemoveFromWishlistCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveFromWishlistCommand creates a wishlist remove command.
func NewRemoveFromWishlistCommand(customerID, productID kernel.UUID) (RemoveFromWishlistCommand, error) {
	if err := errors.Join(customerID.Validate(), productID.Validate()); err != nil {
		return RemoveFromWishlistCommand{}, err
	}
	return RemoveFromWishlistCommand{
		customerID: customerID,
		productID:  productID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromWishlistCommand) Validate() error {
	return c.guard.Validate(ErrWishlistCommandIsNotConstructed)
}

// CustomerID returns the acting customer's identifier.
func (c RemoveFromWishlistCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the removed product's identifier.
func (c RemoveFromWishlistCommand) ProductID() kernel.UUID {
	return c.productID
}
