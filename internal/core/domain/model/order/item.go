package order

import (
	"fmt"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/errs"
	"localcrust/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("item must be created via NewItem constructor")

// Item is a single order line. The unit price and product name are snapshots
// taken at checkout from the catalog, so later catalog edits never change what
// the customer agreed to pay.
type Item struct {
	productID   kernel.UUID
	bakerID     kernel.UUID
	productName string
	unitPrice   kernel.Money
	quantity    int

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
//
// Parameters:
//   - productID: catalog identifier of the ordered product
//   - bakerID: identifier of the baker who sells the product
//   - productName: product name snapshot at checkout
//   - unitPrice: unit price snapshot at checkout
//   - quantity: number of units (must be positive)
func NewItem(
	productID kernel.UUID,
	bakerID kernel.UUID,
	productName string,
	unitPrice kernel.Money,
	quantity int,
) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if err := bakerID.Validate(); err != nil {
		return Item{}, err
	}
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("product name")
	}
	if err := unitPrice.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		productID:   productID,
		bakerID:     bakerID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the catalog identifier of the ordered product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// BakerID returns the identifier of the baker who sells the product.
func (i Item) BakerID() kernel.UUID {
	return i.bakerID
}

// ProductName returns the product name snapshot taken at checkout.
func (i Item) ProductName() string {
	return i.productName
}

// UnitPrice returns the unit price snapshot taken at checkout.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns unit price multiplied by quantity.
func (i Item) LineTotal() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return i.unitPrice.MulQuantity(i.quantity)
}
