package queries

import (
	"context"

	"localcrust/internal/core/domain/model/customer"
	"localcrust/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetLoyaltyQueryHandler loads a customer's loyalty standing.
type GetLoyaltyQueryHandler struct {
	db *gorm.DB
}

// NewGetLoyaltyQueryHandler creates a handler for loyalty queries.
func NewGetLoyaltyQueryHandler(db *gorm.DB) GetLoyaltyQueryHandler {
	return GetLoyaltyQueryHandler{db: db}
}

// Handle executes the loyalty query.
func (h GetLoyaltyQueryHandler) Handle(ctx context.Context, query GetLoyaltyQuery) (LoyaltyResponse, error) {
	if err := query.Validate(); err != nil {
		return LoyaltyResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT loyalty_points FROM customers WHERE id = ?
	`, query.CustomerID().Bytes()).Row()

	var points int
	if err := row.Scan(&points); err != nil {
		return LoyaltyResponse{}, errs.NewObjectNotFoundErrorWithCause("customer", query.CustomerID(), err)
	}

	return LoyaltyResponse{
		Points:            points,
		Level:             customer.LevelForPoints(points).String(),
		PointsToNextLevel: customer.PointsToNextLevel(points),
	}, nil
}
