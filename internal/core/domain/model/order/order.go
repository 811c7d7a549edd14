package order

import (
	"errors"
	"fmt"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/errs"
	"localcrust/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrPaymentAlreadySettled is returned when a payment result arrives for an
	// order whose payment leg already reached a terminal state.
	ErrPaymentAlreadySettled = errors.New("payment is already settled")

	// ErrPaymentNotCompleted is returned when a fulfillment transition requires a
	// completed payment and the order has none.
	ErrPaymentNotCompleted = errors.New("order payment is not completed")
)

// Order is the aggregate root for a customer's purchase. It holds the line
// items with their checkout price snapshots, the computed total, the delivery
// address, and the two state machines (fulfillment and payment).
//
// Order maintains these invariants:
//   - The total always equals the sum of line totals
//   - The fulfillment status only moves along the legal-transition table
//   - An order becomes Confirmed only after its payment is completed
//   - A gateway payment ID is recorded exactly once
type Order struct {
	id            kernel.UUID
	code          string
	customerID    kernel.UUID
	items         []Item
	address       Address
	totalAmount   kernel.Money
	status        Status
	paymentStatus PaymentStatus

	// gatewayOrderID is the payment gateway's order reference created at
	// checkout; callbacks are matched against it.
	gatewayOrderID string

	// paymentID is the gateway's payment reference, set on settlement.
	paymentID string

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new order at checkout.
//
// The order starts in StatusPending with PaymentPending, and the total is
// computed from the line items. The caller is responsible for snapshotting
// catalog prices into the items before calling this constructor.
//
// Parameters:
//   - id: unique order identifier
//   - code: short human-facing order code (for example "LC17251234AB")
//   - customerID: identifier of the purchasing customer
//   - items: order lines (at least one)
//   - address: delivery address
//   - createdAt: checkout timestamp
func NewOrder(
	id kernel.UUID,
	code string,
	customerID kernel.UUID,
	items []Item,
	address Address,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		paymentStatus: PaymentPending,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setAddress(address),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	total, err := totalOf(items)
	if err != nil {
		return nil, err
	}
	o.totalAmount = total

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage,
// including its lifecycle state and payment leg. The restored order behaves
// identically to one created through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	code string,
	customerID kernel.UUID,
	items []Item,
	address Address,
	totalAmount kernel.Money,
	status Status,
	paymentStatus PaymentStatus,
	gatewayOrderID string,
	paymentID string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		gatewayOrderID: gatewayOrderID,
		paymentID:      paymentID,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setAddress(address),
		o.setTotalAmount(totalAmount),
		o.setStatus(status),
		o.setPaymentStatus(paymentStatus),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the short human-facing order code.
func (o *Order) Code() string {
	return o.code
}

// CustomerID returns the purchasing customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Address returns the delivery address.
func (o *Order) Address() Address {
	return o.address
}

// TotalAmount returns the order total computed at checkout.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// GatewayOrderID returns the payment gateway's order reference, or "" before
// the checkout handoff.
func (o *Order) GatewayOrderID() string {
	return o.gatewayOrderID
}

// PaymentID returns the gateway payment identifier, or "" before payment.
func (o *Order) PaymentID() string {
	return o.paymentID
}

// AttachGatewayOrder records the payment gateway's order reference created
// during the checkout handoff. It is recorded exactly once, while the payment
// leg is still pending.
func (o *Order) AttachGatewayOrder(gatewayOrderID string) error {
	if gatewayOrderID == "" {
		return errs.NewValueIsRequiredError("gateway order ID")
	}
	if o.paymentStatus != PaymentPending {
		return fmt.Errorf("%w: payment status is %s", ErrPaymentAlreadySettled, o.paymentStatus)
	}
	if o.gatewayOrderID != "" {
		return errs.NewValueIsInvalidErrorWithCause("gateway order ID",
			errors.New("gateway order is already attached"))
	}
	o.gatewayOrderID = gatewayOrderID
	return nil
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// MarkPaymentCompleted records a gateway-verified successful payment and
// confirms the order.
//
// Business rules:
//   - The payment leg must still be pending
//   - The fulfillment status must allow the Pending -> Confirmed transition
//   - The gateway payment ID is required and recorded exactly once
func (o *Order) MarkPaymentCompleted(paymentID string) error {
	if paymentID == "" {
		return errs.NewValueIsRequiredError("payment ID")
	}
	if o.paymentStatus != PaymentPending {
		return fmt.Errorf("%w: payment status is %s", ErrPaymentAlreadySettled, o.paymentStatus)
	}

	newStatus, err := o.status.TransitionTo(StatusConfirmed)
	if err != nil {
		return err
	}

	o.paymentStatus = PaymentCompleted
	o.paymentID = paymentID
	o.status = newStatus
	return nil
}

// MarkPaymentFailed records a failed or abandoned payment and cancels the order.
//
// Business rules:
//   - The payment leg must still be pending
//   - The order must still be cancellable
func (o *Order) MarkPaymentFailed() error {
	if o.paymentStatus != PaymentPending {
		return fmt.Errorf("%w: payment status is %s", ErrPaymentAlreadySettled, o.paymentStatus)
	}

	newStatus, err := o.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}

	o.paymentStatus = PaymentFailed
	o.status = newStatus
	return nil
}

// ChangeStatus moves the order along the fulfillment lifecycle.
//
// The transition must be listed in the legal-transition table, and an order
// can only be confirmed through a completed payment, never directly.
func (o *Order) ChangeStatus(next Status) error {
	if next == StatusConfirmed && o.paymentStatus != PaymentCompleted {
		return ErrPaymentNotCompleted
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel cancels the order if its current status still allows it. Cancelling
// an order whose payment never arrived also fails the payment leg, so the
// order no longer counts as awaiting payment. A completed payment is kept on
// the order as the reference for a refund.
func (o *Order) Cancel() error {
	if err := o.ChangeStatus(StatusCancelled); err != nil {
		return err
	}
	if o.paymentStatus == PaymentPending {
		o.paymentStatus = PaymentFailed
	}
	return nil
}

// ContainsProduct reports whether the order has a line for the given product.
func (o *Order) ContainsProduct(productID kernel.UUID) bool {
	for _, item := range o.items {
		if item.ProductID().IsEqual(productID) {
			return true
		}
	}
	return false
}

// ContainsBaker reports whether any line of the order belongs to the given baker.
func (o *Order) ContainsBaker(bakerID kernel.UUID) bool {
	for _, item := range o.items {
		if item.BakerID().IsEqual(bakerID) {
			return true
		}
	}
	return false
}

// CanReview reports whether the customer may review the given product based on
// this order: the order must be delivered and contain the product.
func (o *Order) CanReview(productID kernel.UUID) bool {
	return o.status == StatusDelivered && o.ContainsProduct(productID)
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCode validates and sets the human-facing order code.
func (o *Order) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("order code")
	}
	o.code = code
	return nil
}

// setCustomerID validates and sets the purchasing customer's identifier.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setItems validates and sets the order lines. At least one line is required.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setAddress validates and sets the delivery address.
func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

// setTotalAmount validates and sets the persisted order total.
func (o *Order) setTotalAmount(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.totalAmount = total
	return nil
}

// setStatus validates and sets the fulfillment status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setPaymentStatus validates and sets the payment status during restoration.
func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

// setCreatedAt validates and sets the checkout timestamp.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}

// totalOf sums the line totals of the given items.
func totalOf(items []Item) (kernel.Money, error) {
	total := kernel.Zero()
	for _, item := range items {
		lineTotal, err := item.LineTotal()
		if err != nil {
			return kernel.Money{}, err
		}
		total, err = total.Add(lineTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}
