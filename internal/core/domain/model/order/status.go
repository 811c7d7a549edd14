package order

import (
	"fmt"

	"localcrust/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// It implements a state machine with an explicit legal-transition table so
// that illegal jumps (for example pending -> delivered) are rejected at the
// domain layer, regardless of what a client submits.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> OutForDelivery ──> Delivered
//	   │            │             │           │
//	   └────────────┴─────────────┴───────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. An order that has left the shop
// (OutForDelivery) can no longer be cancelled.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status at checkout, before the baker confirms.
	StatusPending

	// StatusConfirmed indicates the baker has accepted the order
	// (set automatically when payment completes).
	StatusConfirmed

	// StatusPreparing indicates the baker is preparing the items.
	StatusPreparing

	// StatusReady indicates the order is baked and packed for handoff.
	StatusReady

	// StatusOutForDelivery indicates the order has left the shop.
	StatusOutForDelivery

	// StatusDelivered indicates the order reached the customer. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before dispatch. Terminal.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusConfirmed:      "confirmed",
		StatusPreparing:      "preparing",
		StatusReady:          "ready",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// statusTransitions is the legal-transition table. A status missing from the
// map is terminal.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusPreparing, StatusCancelled},
		StatusPreparing:      {StatusReady, StatusCancelled},
		StatusReady:          {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered},
	}
}

// StatusFromString parses the wire representation of a status
// ("pending", "confirmed", ...). Returns an error for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether moving from s to next is allowed by the
// legal-transition table, without performing the transition.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition to next.
//
// Returns:
//   - (next, nil) when the transition is listed in the legal-transition table
//   - (0, error) when next is invalid or not a legal successor of s
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot transition from %s to %s", s, next))
	}
	return next, nil
}
