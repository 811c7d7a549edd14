package commands

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var (
	ErrRegisterBakerCommandIsNotConstructed = errors.New(
		"RegisterBakerCommand must be created via NewRegisterBakerCommand constructor",
	)
	ErrShopNameIsRequired = errors.New("shop name is required")
	ErrPhoneIsRequired    = errors.New("phone is required")
	ErrCityIsRequired     = errors.New("city is required")
)

// RegisterBakerCommand represents a new seller signing up with their
// storefront details. The account stays pending until an admin decides it.
type RegisterBakerCommand struct { //nolint:recvcheck //using for validation
	bakerID      kernel.UUID
	email        string
	passwordHash string
	ownerName    string
	shopName     string
	description  string
	phone        string
	city         string

	guard guard.ConstructorGuard
}

// NewRegisterBakerCommand creates a baker registration command.
// Description is optional.
func NewRegisterBakerCommand(
	bakerID kernel.UUID,
	email string,
	passwordHash string,
	ownerName string,
	shopName string,
	description string,
	phone string,
	city string,
) (RegisterBakerCommand, error) {
	cmd := RegisterBakerCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBakerID(bakerID),
		cmd.setRequired(email, ErrEmailIsRequired, &cmd.email),
		cmd.setRequired(passwordHash, ErrPasswordHashIsRequired, &cmd.passwordHash),
		cmd.setRequired(ownerName, ErrNameIsRequired, &cmd.ownerName),
		cmd.setRequired(shopName, ErrShopNameIsRequired, &cmd.shopName),
		cmd.setRequired(phone, ErrPhoneIsRequired, &cmd.phone),
		cmd.setRequired(city, ErrCityIsRequired, &cmd.city),
	); err != nil {
		return RegisterBakerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterBakerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterBakerCommandIsNotConstructed)
}

// BakerID returns the identifier the new baker will get.
func (c RegisterBakerCommand) BakerID() kernel.UUID {
	return c.bakerID
}

// Email returns the login email.
func (c RegisterBakerCommand) Email() string {
	return c.email
}

// PasswordHash returns the bcrypt hash of the chosen password.
func (c RegisterBakerCommand) PasswordHash() string {
	return c.passwordHash
}

// OwnerName returns the name of the person running the shop.
func (c RegisterBakerCommand) OwnerName() string {
	return c.ownerName
}

// ShopName returns the public storefront name.
func (c RegisterBakerCommand) ShopName() string {
	return c.shopName
}

// Description returns the storefront description, possibly empty.
func (c RegisterBakerCommand) Description() string {
	return c.description
}

// Phone returns the contact phone.
func (c RegisterBakerCommand) Phone() string {
	return c.phone
}

// City returns the city the baker operates in.
func (c RegisterBakerCommand) City() string {
	return c.city
}

func (c *RegisterBakerCommand) setBakerID(bakerID kernel.UUID) error {
	if err := bakerID.Validate(); err != nil {
		return err
	}
	c.bakerID = bakerID
	return nil
}

func (c *RegisterBakerCommand) setRequired(value string, missing error, field *string) error {
	if value == "" {
		return missing
	}
	*field = value
	return nil
}
