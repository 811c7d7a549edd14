// Package order provides domain entities and business logic for order
// management in the marketplace. It implements the Order aggregate root with
// lifecycle management, payment tracking, and state transitions.
//
// The package includes:
//   - Order: The aggregate root holding identity, line items, totals, and lifecycle
//   - Status: A state machine enforcing the legal fulfillment transitions
//   - PaymentStatus: A state machine for the payment leg of the order
//   - Item: A line item with a unit price snapshot taken at checkout
//   - Address: The structured delivery address
//
// Key business rules:
//   - The order total always equals the sum of line totals snapshotted at creation
//   - Fulfillment follows pending -> confirmed -> preparing -> ready ->
//     out_for_delivery -> delivered, with cancellation allowed before dispatch
//   - Delivered and cancelled are terminal; no code path rolls back a terminal order
//   - Payment confirmation moves a pending order to confirmed
//   - Only delivered orders accept product reviews
package order
