package commands

import (
	"errors"
	"fmt"
	"time"

	"localcrust/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
	ErrPaymentWindowIsInvalid = errors.New("payment window must be greater than 0")
)

// CancelStaleOrdersCommand represents a sweep of orders whose payment never
// arrived within the payment window.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	paymentWindow time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a sweep command. paymentWindow is how
// long a pending order may wait for its payment before being cancelled.
func NewCancelStaleOrdersCommand(paymentWindow time.Duration) (CancelStaleOrdersCommand, error) {
	if paymentWindow <= 0 {
		return CancelStaleOrdersCommand{}, fmt.Errorf("%w: got %s", ErrPaymentWindowIsInvalid, paymentWindow)
	}

	return CancelStaleOrdersCommand{
		paymentWindow: paymentWindow,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// PaymentWindow returns how long a pending order may wait for payment.
func (c CancelStaleOrdersCommand) PaymentWindow() time.Duration {
	return c.paymentWindow
}
