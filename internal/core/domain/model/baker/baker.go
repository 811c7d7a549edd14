package baker

import (
	"errors"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/errs"
	"localcrust/internal/pkg/guard"
)

// ErrBakerIsNotConstructed is returned when a Baker instance was not created
// through the NewBaker or RestoreBaker constructors.
var ErrBakerIsNotConstructed = errors.New("Baker must be created via NewBaker constructor")

// Baker is the aggregate root for a seller account and its storefront.
//
// Baker maintains these invariants:
//   - Email, owner name, shop name, and password hash are always present
//   - A new baker starts unverified and becomes visible only after an admin
//     approves it
//   - Verification is decided exactly once
type Baker struct {
	id           kernel.UUID
	email        string
	passwordHash string
	ownerName    string
	shopName     string
	description  string
	phone        string
	city         string
	verification VerificationStatus
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewBaker registers a new baker account. The storefront starts in
// VerificationPending and stays out of the public catalog until approved.
// Description is optional; every other field is required.
func NewBaker(
	id kernel.UUID,
	email string,
	passwordHash string,
	ownerName string,
	shopName string,
	description string,
	phone string,
	city string,
	createdAt time.Time,
) (*Baker, error) {
	b := &Baker{
		description:  description,
		verification: VerificationPending,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setRequired("email", email, &b.email),
		b.setRequired("password hash", passwordHash, &b.passwordHash),
		b.setRequired("owner name", ownerName, &b.ownerName),
		b.setRequired("shop name", shopName, &b.shopName),
		b.setRequired("phone", phone, &b.phone),
		b.setRequired("city", city, &b.city),
		b.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBaker reconstructs a baker aggregate from persistent storage.
func RestoreBaker(
	id kernel.UUID,
	email string,
	passwordHash string,
	ownerName string,
	shopName string,
	description string,
	phone string,
	city string,
	verification VerificationStatus,
	createdAt time.Time,
) (*Baker, error) {
	b, err := NewBaker(id, email, passwordHash, ownerName, shopName, description, phone, city, createdAt)
	if err != nil {
		return nil, err
	}
	if err := verification.Validate(); err != nil {
		return nil, err
	}
	b.verification = verification
	return b, nil
}

// Validate ensures the Baker was created through a constructor.
func (b *Baker) Validate() error {
	if b == nil {
		return ErrBakerIsNotConstructed
	}
	return b.guard.Validate(ErrBakerIsNotConstructed)
}

// IsEqual compares two bakers by their unique identifiers.
func (b *Baker) IsEqual(other *Baker) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the baker's unique identifier.
func (b *Baker) ID() kernel.UUID {
	return b.id
}

// Email returns the login email.
func (b *Baker) Email() string {
	return b.email
}

// PasswordHash returns the stored bcrypt hash.
func (b *Baker) PasswordHash() string {
	return b.passwordHash
}

// OwnerName returns the name of the person running the shop.
func (b *Baker) OwnerName() string {
	return b.ownerName
}

// ShopName returns the public storefront name.
func (b *Baker) ShopName() string {
	return b.shopName
}

// Description returns the storefront description, possibly empty.
func (b *Baker) Description() string {
	return b.description
}

// Phone returns the contact phone number.
func (b *Baker) Phone() string {
	return b.phone
}

// City returns the city the baker operates in.
func (b *Baker) City() string {
	return b.city
}

// Verification returns the admin moderation state.
func (b *Baker) Verification() VerificationStatus {
	return b.verification
}

// IsVerified reports whether an admin approved the baker.
func (b *Baker) IsVerified() bool {
	return b.verification == VerificationVerified
}

// CreatedAt returns the registration timestamp.
func (b *Baker) CreatedAt() time.Time {
	return b.createdAt
}

// Verify approves the baker. Only a pending baker can be approved.
func (b *Baker) Verify() error {
	newStatus, err := b.verification.decide(VerificationVerified)
	if err != nil {
		return err
	}
	b.verification = newStatus
	return nil
}

// Reject declines the baker. Only a pending baker can be rejected.
func (b *Baker) Reject() error {
	newStatus, err := b.verification.decide(VerificationRejected)
	if err != nil {
		return err
	}
	b.verification = newStatus
	return nil
}

// UpdateStorefront changes the public storefront fields.
func (b *Baker) UpdateStorefront(shopName, description, phone, city string) error {
	if err := errors.Join(
		b.setRequired("shop name", shopName, &b.shopName),
		b.setRequired("phone", phone, &b.phone),
		b.setRequired("city", city, &b.city),
	); err != nil {
		return err
	}
	b.description = description
	return nil
}

func (b *Baker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Baker) setRequired(name, value string, field *string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*field = value
	return nil
}

func (b *Baker) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	b.createdAt = createdAt
	return nil
}
