package customer

import (
	"errors"
	"fmt"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/errs"
	"localcrust/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer or RestoreCustomer constructors.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the aggregate root for a buyer account. The loyalty balance is
// a lifetime counter; the level is always derived from it, never stored.
type Customer struct {
	id            kernel.UUID
	email         string
	passwordHash  string
	name          string
	phone         string
	loyaltyPoints int
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewCustomer registers a new buyer account with an empty loyalty balance.
func NewCustomer(
	id kernel.UUID,
	email string,
	passwordHash string,
	name string,
	phone string,
	createdAt time.Time,
) (*Customer, error) {
	c := &Customer{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setRequired("email", email, &c.email),
		c.setRequired("password hash", passwordHash, &c.passwordHash),
		c.setRequired("name", name, &c.name),
		c.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer aggregate from persistent storage.
func RestoreCustomer(
	id kernel.UUID,
	email string,
	passwordHash string,
	name string,
	phone string,
	loyaltyPoints int,
	createdAt time.Time,
) (*Customer, error) {
	c, err := NewCustomer(id, email, passwordHash, name, phone, createdAt)
	if err != nil {
		return nil, err
	}
	if loyaltyPoints < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("loyalty points",
			fmt.Errorf("%d is negative", loyaltyPoints))
	}
	c.loyaltyPoints = loyaltyPoints
	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Email returns the login email.
func (c *Customer) Email() string {
	return c.email
}

// PasswordHash returns the stored bcrypt hash.
func (c *Customer) PasswordHash() string {
	return c.passwordHash
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the contact phone number, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}

// LoyaltyPoints returns the lifetime loyalty balance.
func (c *Customer) LoyaltyPoints() int {
	return c.loyaltyPoints
}

// LoyaltyLevel returns the ladder tier derived from the lifetime balance.
func (c *Customer) LoyaltyLevel() LoyaltyLevel {
	return LevelForPoints(c.loyaltyPoints)
}

// CreatedAt returns the registration timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// EarnLoyaltyPoints accrues points for a delivered order at PointsPerRupee
// applied to the order total. Fractions of a rupee do not earn points.
func (c *Customer) EarnLoyaltyPoints(orderTotal kernel.Money) error {
	if err := orderTotal.Validate(); err != nil {
		return err
	}
	c.loyaltyPoints += int(orderTotal.Paise()/100) * PointsPerRupee
	return nil
}

// UpdateProfile changes the display name and phone.
func (c *Customer) UpdateProfile(name, phone string) error {
	if err := c.setRequired("name", name, &c.name); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setRequired(name, value string, field *string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*field = value
	return nil
}

func (c *Customer) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	c.createdAt = createdAt
	return nil
}
