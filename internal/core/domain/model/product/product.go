package product

import (
	"errors"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/errs"
	"localcrust/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct constructors.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the aggregate root for a catalog listing. The price stored here
// is the live price; orders copy it into their line items at checkout, so
// editing a product never rewrites past orders.
type Product struct {
	id          kernel.UUID
	bakerID     kernel.UUID
	name        string
	description string
	category    string
	price       kernel.Money
	imageURL    string
	available   bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewProduct creates a new catalog listing, available by default.
// Description and image URL are optional.
func NewProduct(
	id kernel.UUID,
	bakerID kernel.UUID,
	name string,
	description string,
	category string,
	price kernel.Money,
	imageURL string,
	createdAt time.Time,
) (*Product, error) {
	p := &Product{
		description: description,
		imageURL:    imageURL,
		available:   true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setBakerID(bakerID),
		p.setName(name),
		p.setCategory(category),
		p.setPrice(price),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product aggregate from persistent storage.
func RestoreProduct(
	id kernel.UUID,
	bakerID kernel.UUID,
	name string,
	description string,
	category string,
	price kernel.Money,
	imageURL string,
	available bool,
	createdAt time.Time,
) (*Product, error) {
	p, err := NewProduct(id, bakerID, name, description, category, price, imageURL, createdAt)
	if err != nil {
		return nil, err
	}
	p.available = available
	return p, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// BakerID returns the owning baker's identifier.
func (p *Product) BakerID() kernel.UUID {
	return p.bakerID
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description, possibly empty.
func (p *Product) Description() string {
	return p.description
}

// Category returns the catalog category (for example "bread", "cakes").
func (p *Product) Category() string {
	return p.category
}

// Price returns the live catalog price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// ImageURL returns the product image URL, possibly empty.
func (p *Product) ImageURL() string {
	return p.imageURL
}

// IsAvailable reports whether the product can be ordered.
func (p *Product) IsAvailable() bool {
	return p.available
}

// CreatedAt returns the listing timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// IsOwnedBy reports whether the product belongs to the given baker.
func (p *Product) IsOwnedBy(bakerID kernel.UUID) bool {
	return p.bakerID.IsEqual(bakerID)
}

// Update changes the listing fields. Future orders will snapshot the new
// price; existing orders keep the price they were placed at.
func (p *Product) Update(name, description, category string, price kernel.Money, imageURL string) error {
	if err := errors.Join(
		p.setName(name),
		p.setCategory(category),
		p.setPrice(price),
	); err != nil {
		return err
	}
	p.description = description
	p.imageURL = imageURL
	return nil
}

// SetAvailability toggles whether the product can be ordered.
func (p *Product) SetAvailability(available bool) {
	p.available = available
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setBakerID(bakerID kernel.UUID) error {
	if err := bakerID.Validate(); err != nil {
		return err
	}
	p.bakerID = bakerID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	p.createdAt = createdAt
	return nil
}
