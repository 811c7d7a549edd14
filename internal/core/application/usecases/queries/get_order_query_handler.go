package queries

import (
	"context"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"
	"localcrust/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler loads a single order with its items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order detail query. It returns errs.ErrObjectNotFound
// when no order with the given ID exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	detail, err := h.loadHeader(ctx, query.OrderID())
	if err != nil {
		return OrderDetailResponse{}, err
	}

	detail.Items, err = h.loadItems(ctx, query.OrderID())
	if err != nil {
		return OrderDetailResponse{}, err
	}

	return detail, nil
}

func (h GetOrderQueryHandler) loadHeader(ctx context.Context, orderID kernel.UUID) (OrderDetailResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, code, customer_id, status, payment_status, total_paise,
			address_full_name, address_phone, address_street,
			address_city, address_state, address_zip_code,
			created_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var (
		id         uuid.UUID
		code       string
		customerID uuid.UUID
		status     int
		payment    int
		totalPaise int64
		address    OrderAddressResponse
		createdAt  time.Time
	)
	err := row.Scan(
		&id, &code, &customerID, &status, &payment, &totalPaise,
		&address.FullName, &address.Phone, &address.Street,
		&address.City, &address.State, &address.ZipCode,
		&createdAt,
	)
	if err != nil {
		return OrderDetailResponse{}, errs.NewObjectNotFoundErrorWithCause("order", orderID, err)
	}

	oid, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}
	cid, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}

	return OrderDetailResponse{
		ID:            oid,
		Code:          code,
		CustomerID:    cid,
		Status:        order.Status(status).String(),
		PaymentStatus: order.PaymentStatus(payment).String(),
		TotalPaise:    totalPaise,
		Address:       address,
		CreatedAt:     createdAt.Format(time.RFC3339),
	}, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_id, baker_id, product_name, unit_price_paise, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			productID uuid.UUID
			bakerID   uuid.UUID
			item      OrderItemResponse
		)
		if err = rows.Scan(&productID, &bakerID, &item.ProductName, &item.UnitPricePaise, &item.Quantity); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if item.BakerID, err = kernel.UUIDFromBytes(bakerID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
