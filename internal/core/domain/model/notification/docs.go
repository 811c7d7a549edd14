// Package notification provides the Notification aggregate: an in-app message
// delivered to a customer or baker when something they care about happens
// (order status change, review reply, verification decision).
package notification
