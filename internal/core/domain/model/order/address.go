package order

import (
	"fmt"

	"localcrust/internal/pkg/errs"
	"localcrust/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created through NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

// Address is the structured delivery address captured at checkout.
// It is an immutable value object; two addresses are equal when all fields match.
type Address struct {
	fullName string
	phone    string
	street   string
	city     string
	state    string
	zipCode  string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated delivery address. All fields are required.
func NewAddress(fullName, phone, street, city, state, zipCode string) (Address, error) {
	fields := map[string]string{
		"full name": fullName,
		"phone":     phone,
		"street":    street,
		"city":      city,
		"state":     state,
		"zip code":  zipCode,
	}
	for name, value := range fields {
		if value == "" {
			return Address{}, errs.NewValueIsRequiredError(name)
		}
	}

	return Address{
		fullName: fullName,
		phone:    phone,
		street:   street,
		city:     city,
		state:    state,
		zipCode:  zipCode,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// FullName returns the recipient's name.
func (a Address) FullName() string {
	return a.fullName
}

// Phone returns the contact phone number.
func (a Address) Phone() string {
	return a.phone
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the state or region.
func (a Address) State() string {
	return a.state
}

// ZipCode returns the postal code.
func (a Address) ZipCode() string {
	return a.zipCode
}

// IsEqual reports whether two addresses have identical fields.
func (a Address) IsEqual(other Address) bool {
	return a.fullName == other.fullName &&
		a.phone == other.phone &&
		a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.zipCode == other.zipCode
}

// String renders the address as a single postal line.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s, %s %s", a.fullName, a.street, a.city, a.state, a.zipCode)
}
