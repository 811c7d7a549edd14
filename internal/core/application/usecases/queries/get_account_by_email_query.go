package queries

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/errs"
	"localcrust/internal/pkg/guard"
)

var ErrGetAccountByEmailQueryIsNotConstructed = errors.New(
	"GetAccountByEmailQuery must be created via NewGetAccountByEmailQuery constructor",
)

// Account roles as carried in access tokens.
const (
	RoleCustomer = "customer"
	RoleBaker    = "baker"
	RoleAdmin    = "admin"
)

// GetAccountByEmailQuery resolves login credentials for an email address,
// searching customers and bakers.
type GetAccountByEmailQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetAccountByEmailQuery creates a credential lookup query.
func NewGetAccountByEmailQuery(email string) (GetAccountByEmailQuery, error) {
	if email == "" {
		return GetAccountByEmailQuery{}, errs.NewValueIsRequiredError("email")
	}
	return GetAccountByEmailQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountByEmailQueryIsNotConstructed)
}

// Email returns the address being looked up.
func (q GetAccountByEmailQuery) Email() string {
	return q.email
}

// AccountCredentialsResponse carries what a login check needs: the stored
// hash, the account's role, and whether a baker account is verified yet.
type AccountCredentialsResponse struct {
	ID           kernel.UUID
	Role         string
	PasswordHash string
	Verified     bool
}
