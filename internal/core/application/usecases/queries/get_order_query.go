package queries

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its items and delivery address.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates an order detail query.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one line of an order detail.
type OrderItemResponse struct {
	ProductID      kernel.UUID `json:"product_id"`
	BakerID        kernel.UUID `json:"baker_id"`
	ProductName    string      `json:"product_name"`
	UnitPricePaise int64       `json:"unit_price_paise"`
	Quantity       int         `json:"quantity"`
}

// OrderAddressResponse is the delivery address of an order detail.
type OrderAddressResponse struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}

// OrderDetailResponse is a full order: header, lines and address.
type OrderDetailResponse struct {
	ID            kernel.UUID          `json:"id"`
	Code          string               `json:"code"`
	CustomerID    kernel.UUID          `json:"customer_id"`
	Status        string               `json:"status"`
	PaymentStatus string               `json:"payment_status"`
	TotalPaise    int64                `json:"total_paise"`
	Items         []OrderItemResponse  `json:"items"`
	Address       OrderAddressResponse `json:"address"`
	CreatedAt     string               `json:"created_at"`
}
