package queries

import (
	"errors"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/guard"
)

var ErrGetPendingBakersQueryIsNotConstructed = errors.New(
	"GetPendingBakersQuery must be created via NewGetPendingBakersQuery constructor",
)

// GetPendingBakersQuery retrieves bakers awaiting an admin decision, oldest
// application first.
type GetPendingBakersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingBakersQuery creates a moderation queue query.
func NewGetPendingBakersQuery() (GetPendingBakersQuery, error) {
	return GetPendingBakersQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingBakersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingBakersQueryIsNotConstructed)
}

// PendingBakerResponse is one application in the moderation queue.
type PendingBakerResponse struct {
	ID          kernel.UUID `json:"id"`
	Email       string      `json:"email"`
	OwnerName   string      `json:"owner_name"`
	ShopName    string      `json:"shop_name"`
	Description string      `json:"description"`
	Phone       string      `json:"phone"`
	City        string      `json:"city"`
	AppliedAt   string      `json:"applied_at"`
}
