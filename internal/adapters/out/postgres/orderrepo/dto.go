// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It converts between the order aggregate and its
// relational representation: an orders row plus one order_items row per line.
package orderrepo

import (
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The delivery address is embedded; items live in their own table.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code           string     `gorm:"type:varchar(32);uniqueIndex;not null"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Items          []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Address        AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	TotalPaise     int64      `gorm:"type:bigint;not null"`
	Status         int        `gorm:"type:int;not null;index"`
	PaymentStatus  int        `gorm:"type:int;not null;index"`
	GatewayOrderID string     `gorm:"type:varchar(64);index"`
	PaymentID      string     `gorm:"type:varchar(64)"`
	CreatedAt      time.Time  `gorm:"not null;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line with its price snapshot.
type ItemDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	BakerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName    string    `gorm:"type:varchar(255);not null"`
	UnitPricePaise int64     `gorm:"type:bigint;not null"`
	Quantity       int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO represents the embedded delivery address within the orders table.
type AddressDTO struct {
	FullName string `gorm:"type:varchar(255);not null"`
	Phone    string `gorm:"type:varchar(32);not null"`
	Street   string `gorm:"type:varchar(255);not null"`
	City     string `gorm:"type:varchar(128);not null"`
	State    string `gorm:"type:varchar(128);not null"`
	ZipCode  string `gorm:"type:varchar(16);not null"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:        aggregate.ID().Bytes(),
			ProductID:      item.ProductID().Bytes(),
			BakerID:        item.BakerID().Bytes(),
			ProductName:    item.ProductName(),
			UnitPricePaise: item.UnitPrice().Paise(),
			Quantity:       item.Quantity(),
		})
	}

	address := aggregate.Address()

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		Code:       aggregate.Code(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Items:      items,
		Address: AddressDTO{
			FullName: address.FullName(),
			Phone:    address.Phone(),
			Street:   address.Street(),
			City:     address.City(),
			State:    address.State(),
			ZipCode:  address.ZipCode(),
		},
		TotalPaise:     aggregate.TotalAmount().Paise(),
		Status:         int(aggregate.Status()),
		PaymentStatus:  int(aggregate.PaymentStatus()),
		GatewayOrderID: aggregate.GatewayOrderID(),
		PaymentID:      aggregate.PaymentID(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		dto.Address.FullName, dto.Address.Phone, dto.Address.Street,
		dto.Address.City, dto.Address.State, dto.Address.ZipCode,
	)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalPaise)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		customerID,
		items,
		address,
		total,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		dto.GatewayOrderID,
		dto.PaymentID,
		dto.CreatedAt,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	bakerID, err := kernel.UUIDFromBytes(dto.BakerID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPricePaise)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, bakerID, dto.ProductName, unitPrice, dto.Quantity)
}
