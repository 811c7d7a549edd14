package commands

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var (
	ErrSaveProductCommandIsNotConstructed = errors.New(
		"SaveProductCommand must be created via NewSaveProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrCategoryIsRequired    = errors.New("category is required")
)

// SaveProductCommand represents a baker creating or editing a catalog
// listing. The same command serves both: the handler decides by looking the
// product up.
type SaveProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	bakerID     kernel.UUID
	name        string
	description string
	category    string
	price       kernel.Money
	imageURL    string
	available   bool

	guard guard.ConstructorGuard
}

// NewSaveProductCommand creates a listing save command.
// Description and image URL are optional.
func NewSaveProductCommand(
	productID kernel.UUID,
	bakerID kernel.UUID,
	name string,
	description string,
	category string,
	price kernel.Money,
	imageURL string,
	available bool,
) (SaveProductCommand, error) {
	cmd := SaveProductCommand{
		description: description,
		imageURL:    imageURL,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setBakerID(bakerID),
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setPrice(price),
	); err != nil {
		return SaveProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveProductCommand) Validate() error {
	return c.guard.Validate(ErrSaveProductCommandIsNotConstructed)
}

// ProductID returns the listing's identifier.
func (c SaveProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// BakerID returns the acting baker's identifier.
func (c SaveProductCommand) BakerID() kernel.UUID {
	return c.bakerID
}

// Name returns the product name.
func (c SaveProductCommand) Name() string {
	return c.name
}

// Description returns the product description, possibly empty.
func (c SaveProductCommand) Description() string {
	return c.description
}

// Category returns the catalog category.
func (c SaveProductCommand) Category() string {
	return c.category
}

// Price returns the listing price.
func (c SaveProductCommand) Price() kernel.Money {
	return c.price
}

// ImageURL returns the product image URL, possibly empty.
func (c SaveProductCommand) ImageURL() string {
	return c.imageURL
}

// Available reports whether the product can be ordered.
func (c SaveProductCommand) Available() bool {
	return c.available
}

func (c *SaveProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *SaveProductCommand) setBakerID(bakerID kernel.UUID) error {
	if err := bakerID.Validate(); err != nil {
		return err
	}
	c.bakerID = bakerID
	return nil
}

func (c *SaveProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	c.name = name
	return nil
}

func (c *SaveProductCommand) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}
	c.category = category
	return nil
}

func (c *SaveProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}
