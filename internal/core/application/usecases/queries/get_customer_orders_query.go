// Package queries contains read-only operations serving the HTTP API.
// Query handlers read directly from the database with raw SQL, bypassing the
// domain aggregates, as reads have no invariants to protect.
package queries

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves a customer's order history, newest first.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates an order history query.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderSummaryResponse is one row of an order listing.
type OrderSummaryResponse struct {
	ID            kernel.UUID `json:"id"`
	Code          string      `json:"code"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	TotalPaise    int64       `json:"total_paise"`
	ItemCount     int         `json:"item_count"`
	CreatedAt     string      `json:"created_at"`
}
