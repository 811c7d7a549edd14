package ports

import (
	"context"
	"errors"

	"localcrust/internal/core/domain/model/kernel"
)

// ErrPaymentVerificationFailed is returned when a payment callback's
// signature does not verify. Callbacks failing verification are untrusted.
var ErrPaymentVerificationFailed = errors.New("payment verification failed")

// GatewayOrder is the payment gateway's half of the checkout handoff: the
// reference the client SDK needs to collect the payment.
type GatewayOrder struct {
	// ID is the gateway's order reference (for example "order_MhYt5Wp3K").
	ID string

	// Amount is the amount the gateway will collect.
	Amount kernel.Money

	// Currency is the ISO currency code, always "INR" today.
	Currency string
}

// PaymentGateway defines the contract with the external payment provider.
// The server creates the gateway order and later verifies the signed callback;
// the client never becomes the source of truth for payment state.
type PaymentGateway interface {
	// CreateOrder registers the amount with the gateway and returns the
	// gateway order the client SDK pays against. receipt is our order code.
	CreateOrder(ctx context.Context, amount kernel.Money, receipt string) (GatewayOrder, error)

	// VerifyPaymentSignature checks the HMAC signature the gateway attached
	// to its payment callback. A verification failure means the callback must
	// not be trusted.
	VerifyPaymentSignature(gatewayOrderID, paymentID, signature string) error
}
