package queries

import (
	"context"
	"database/sql"
	"errors"

	"localcrust/internal/core/domain/model/baker"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAccountByEmailQueryHandler resolves an email to an account, looking at
// customers first and bakers second.
type GetAccountByEmailQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountByEmailQueryHandler creates a handler for credential lookups.
func NewGetAccountByEmailQueryHandler(db *gorm.DB) GetAccountByEmailQueryHandler {
	return GetAccountByEmailQueryHandler{db: db}
}

// Handle executes the credential lookup. It returns errs.ErrObjectNotFound
// when no account uses the address.
func (h GetAccountByEmailQueryHandler) Handle(
	ctx context.Context,
	query GetAccountByEmailQuery,
) (AccountCredentialsResponse, error) {
	if err := query.Validate(); err != nil {
		return AccountCredentialsResponse{}, err
	}

	account, err := h.findCustomer(ctx, query.Email())
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return AccountCredentialsResponse{}, err
	}

	account, err = h.findBaker(ctx, query.Email())
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return AccountCredentialsResponse{}, err
	}

	return AccountCredentialsResponse{}, errs.NewObjectNotFoundErrorWithCause("account", query.Email(), err)
}

func (h GetAccountByEmailQueryHandler) findCustomer(
	ctx context.Context,
	email string,
) (AccountCredentialsResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, password_hash FROM customers WHERE email = ?
	`, email).Row()

	var (
		id   uuid.UUID
		hash string
	)
	if err := row.Scan(&id, &hash); err != nil {
		return AccountCredentialsResponse{}, err
	}

	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AccountCredentialsResponse{}, err
	}

	return AccountCredentialsResponse{
		ID:           accountID,
		Role:         RoleCustomer,
		PasswordHash: hash,
		Verified:     true,
	}, nil
}

func (h GetAccountByEmailQueryHandler) findBaker(
	ctx context.Context,
	email string,
) (AccountCredentialsResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, password_hash, verification FROM bakers WHERE email = ?
	`, email).Row()

	var (
		id           uuid.UUID
		hash         string
		verification int
	)
	if err := row.Scan(&id, &hash, &verification); err != nil {
		return AccountCredentialsResponse{}, err
	}

	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AccountCredentialsResponse{}, err
	}

	return AccountCredentialsResponse{
		ID:           accountID,
		Role:         RoleBaker,
		PasswordHash: hash,
		Verified:     baker.VerificationStatus(verification) == baker.VerificationVerified,
	}, nil
}
