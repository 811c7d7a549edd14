package kernel

import (
	"fmt"
	"math"

	"localcrust/internal/pkg/errs"
	"localcrust/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney or MoneyFromRupees.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or MoneyFromRupees constructors")

// Money represents a non-negative INR amount stored in paise.
// Storing the smallest currency unit avoids floating point drift when summing
// order lines and matches what the payment gateway expects on the wire.
//
// Money is an immutable value object; arithmetic methods return new instances.
//
// Example:
//
//	price, err := kernel.MoneyFromRupees(100)
//	if err != nil {
//	    // handle validation error
//	}
//	lineTotal, _ := price.MulQuantity(2)
//	fmt.Println(lineTotal) // ₹200.00
type Money struct { //nolint:recvcheck //using for validation
	paise int64
	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in paise.
// The amount must not be negative.
func NewMoney(paise int64) (Money, error) {
	if paise < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount in paise", paise, 0, math.MaxInt64)
	}
	return Money{paise: paise, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromRupees creates a Money value from an amount in whole-or-fractional
// rupees, as received from catalog input. Fractions smaller than a paisa are
// rejected rather than rounded.
func MoneyFromRupees(rupees float64) (Money, error) {
	paise := rupees * 100
	if paise != math.Trunc(paise) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount in rupees",
			fmt.Errorf("%v is not representable in paise", rupees))
	}
	return NewMoney(int64(paise))
}

// Zero returns a valid zero amount.
func Zero() Money {
	m, _ := NewMoney(0)
	return m
}

// Validate ensures the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Paise returns the amount in paise.
func (m Money) Paise() int64 {
	return m.paise
}

// Rupees returns the amount in rupees.
func (m Money) Rupees() float64 {
	return float64(m.paise) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) (Money, error) {
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.paise + other.paise)
}

// MulQuantity returns the amount multiplied by a positive line-item quantity.
func (m Money) MulQuantity(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return NewMoney(m.paise * int64(quantity))
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.paise == other.paise
}

// String implements fmt.Stringer, formatting the amount as rupees.
func (m Money) String() string {
	return fmt.Sprintf("₹%d.%02d", m.paise/100, m.paise%100)
}
