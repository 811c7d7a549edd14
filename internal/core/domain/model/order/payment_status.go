package order

import (
	"fmt"

	"localcrust/internal/pkg/errs"
)

// PaymentStatus represents the payment leg of an order.
//
// State transitions:
//
//	PaymentPending ──┬──> PaymentCompleted
//	                 └──> PaymentFailed
//
// Both PaymentCompleted and PaymentFailed are terminal.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status at checkout.
	PaymentPending

	// PaymentCompleted indicates a gateway-verified successful payment.
	PaymentCompleted

	// PaymentFailed indicates the gateway reported a failed or rejected payment.
	PaymentFailed
)

func paymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "unknown",
		PaymentPending:   "pending",
		PaymentCompleted: "completed",
		PaymentFailed:    "failed",
	}
}

// PaymentStatusFromString parses the wire representation of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range paymentStatusStrings() {
		if str == s && status != PaymentUnknown {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks that the PaymentStatus is one of the defined states.
func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusStrings()[s]; !ok || s == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire representation of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := paymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
