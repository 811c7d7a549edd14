package commands

import (
	"errors"
	"fmt"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"
	"localcrust/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// OrderLine is one requested (product, quantity) pair from the client's cart.
// Prices are never accepted from the client; the handler snapshots them from
// the catalog.
type OrderLine struct {
	productID kernel.UUID
	quantity  int
}

// NewOrderLine creates a validated cart line.
func NewOrderLine(productID kernel.UUID, quantity int) (OrderLine, error) {
	if err := productID.Validate(); err != nil {
		return OrderLine{}, err
	}
	if quantity <= 0 {
		return OrderLine{}, fmt.Errorf("%w: got %d", ErrQuantityIsInvalid, quantity)
	}
	return OrderLine{productID: productID, quantity: quantity}, nil
}

// ProductID returns the requested product's identifier.
func (l OrderLine) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the requested unit count.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// CreateOrderCommand represents a checkout request: a customer's cart plus a
// delivery address, to be priced server-side and handed to the payment
// gateway.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	lines      []OrderLine
	address    order.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command. The order ID is generated
// by the caller so retries stay idempotent.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	lines []OrderLine,
	address order.Address,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
		cmd.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will get.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the purchasing customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the requested cart lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}
	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}
