package queries

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrGetLoyaltyQueryIsNotConstructed = errors.New(
	"GetLoyaltyQuery must be created via NewGetLoyaltyQuery constructor",
)

// GetLoyaltyQuery retrieves a customer's loyalty standing.
type GetLoyaltyQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoyaltyQuery creates a loyalty standing query.
func NewGetLoyaltyQuery(customerID kernel.UUID) (GetLoyaltyQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetLoyaltyQuery{}, err
	}
	return GetLoyaltyQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoyaltyQuery) Validate() error {
	return q.guard.Validate(ErrGetLoyaltyQueryIsNotConstructed)
}

// CustomerID returns the customer whose standing is requested.
func (q GetLoyaltyQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// LoyaltyResponse is a customer's loyalty standing. PointsToNextLevel is
// zero at the top level.
type LoyaltyResponse struct {
	Points            int    `json:"points"`
	Level             string `json:"level"`
	PointsToNextLevel int    `json:"points_to_next_level"`
}
