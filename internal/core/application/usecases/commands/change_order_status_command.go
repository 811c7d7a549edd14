package commands

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"
	"localcrust/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a baker moving one of their orders
// along the fulfillment lifecycle. The requested status is parsed and
// validated before it ever reaches the aggregate.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	bakerID kernel.UUID
	next    order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status transition command for the
// acting baker.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	bakerID kernel.UUID,
	next order.Status,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBakerID(bakerID),
		cmd.setNext(next),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BakerID returns the acting baker's identifier.
func (c ChangeOrderStatusCommand) BakerID() kernel.UUID {
	return c.bakerID
}

// Next returns the requested fulfillment status.
func (c ChangeOrderStatusCommand) Next() order.Status {
	return c.next
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setBakerID(bakerID kernel.UUID) error {
	if err := bakerID.Validate(); err != nil {
		return err
	}
	c.bakerID = bakerID
	return nil
}

func (c *ChangeOrderStatusCommand) setNext(next order.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	c.next = next
	return nil
}
