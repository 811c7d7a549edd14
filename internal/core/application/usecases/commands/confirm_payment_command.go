package commands

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
	ErrGatewayOrderIDIsRequired = errors.New("gateway order ID is required")
	ErrPaymentIDIsRequired      = errors.New("payment ID is required")
	ErrSignatureIsRequired      = errors.New("signature is required")
)

// ConfirmPaymentCommand carries the payment gateway's callback payload,
// bound to the order the customer claims to be paying for. The signature is
// what makes the callback trustworthy; the handler rejects the command before
// touching any state if it does not verify, and rejects a verified callback
// whose gateway order resolves to a different order or customer.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	gatewayOrderID string
	paymentID      string
	signature      string

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a payment confirmation command from the
// gateway callback fields, for the acting customer's given order.
func NewConfirmPaymentCommand(
	orderID, customerID kernel.UUID,
	gatewayOrderID, paymentID, signature string,
) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setGatewayOrderID(gatewayOrderID),
		cmd.setPaymentID(paymentID),
		cmd.setSignature(signature),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid for.
func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the acting customer's identifier.
func (c ConfirmPaymentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// GatewayOrderID returns the gateway's order reference.
func (c ConfirmPaymentCommand) GatewayOrderID() string {
	return c.gatewayOrderID
}

// PaymentID returns the gateway's payment reference.
func (c ConfirmPaymentCommand) PaymentID() string {
	return c.paymentID
}

// Signature returns the gateway's HMAC signature over the callback.
func (c ConfirmPaymentCommand) Signature() string {
	return c.signature
}

func (c *ConfirmPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmPaymentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *ConfirmPaymentCommand) setGatewayOrderID(id string) error {
	if id == "" {
		return ErrGatewayOrderIDIsRequired
	}
	c.gatewayOrderID = id
	return nil
}

func (c *ConfirmPaymentCommand) setPaymentID(id string) error {
	if id == "" {
		return ErrPaymentIDIsRequired
	}
	c.paymentID = id
	return nil
}

func (c *ConfirmPaymentCommand) setSignature(signature string) error {
	if signature == "" {
		return ErrSignatureIsRequired
	}
	c.signature = signature
	return nil
}
