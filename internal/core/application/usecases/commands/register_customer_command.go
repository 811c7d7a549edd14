package commands

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrEmailIsRequired        = errors.New("email is required")
	ErrPasswordHashIsRequired = errors.New("password hash is required")
	ErrNameIsRequired         = errors.New("name is required")
)

// RegisterCustomerCommand represents a new buyer signing up. The password is
// hashed before it reaches the command; the application core never sees the
// plaintext.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	email        string
	passwordHash string
	name         string
	phone        string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a customer registration command.
// Phone is optional.
func NewRegisterCustomerCommand(
	customerID kernel.UUID,
	email string,
	passwordHash string,
	name string,
	phone string,
) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setEmail(email),
		cmd.setPasswordHash(passwordHash),
		cmd.setName(name),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier the new customer will get.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Email returns the login email.
func (c RegisterCustomerCommand) Email() string {
	return c.email
}

// PasswordHash returns the bcrypt hash of the chosen password.
func (c RegisterCustomerCommand) PasswordHash() string {
	return c.passwordHash
}

// Name returns the display name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Phone returns the contact phone, possibly empty.
func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

func (c *RegisterCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *RegisterCustomerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *RegisterCustomerCommand) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	c.passwordHash = hash
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
