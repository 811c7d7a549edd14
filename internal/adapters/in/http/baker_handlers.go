package http

import (
	"net/http"

	"localcrust/internal/core/application/usecases/commands"
	"localcrust/internal/core/application/usecases/queries"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"
	"localcrust/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetBakerOrders handles GET /api/baker/orders: the baker's share of paid
// orders, line items and per-order totals.
func (s *Server) GetBakerOrders(ctx echo.Context) error {
	query, err := queries.NewGetBakerOrdersQuery(accountID(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.handlers.BakerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// ChangeOrderStatus handles PATCH /api/baker/orders/:id/status. The target
// status must be a legal successor of the current one; the transition table
// lives in the order domain, not here.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, accountID(ctx), next)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBakerReviews handles GET /api/baker/reviews, unanswered first.
func (s *Server) GetBakerReviews(ctx echo.Context) error {
	query, err := queries.NewGetBakerReviewsQuery(accountID(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	reviews, err := s.handlers.BakerReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, reviews)
}

// GetBakerReviewStats handles GET /api/baker/reviews/stats.
func (s *Server) GetBakerReviewStats(ctx echo.Context) error {
	query, err := queries.NewGetBakerReviewsQuery(accountID(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	reviews, err := s.handlers.BakerReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	stats := BakerReviewStatsResponse{ReviewCount: len(reviews)}
	ratingSum := 0
	for _, r := range reviews {
		ratingSum += r.Rating
		if r.Reply != nil {
			stats.Replied++
		}
	}
	stats.PendingReplies = stats.ReviewCount - stats.Replied
	if stats.ReviewCount > 0 {
		stats.AverageRating = float64(ratingSum) / float64(stats.ReviewCount)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// ReplyToReview handles POST /api/baker/reviews/:id/reply. One reply per
// review, by the baker who owns the reviewed product.
func (s *Server) ReplyToReview(ctx echo.Context) error {
	reviewID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("review id", err))
	}

	var req ReplyRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewReplyToReviewCommand(reviewID, accountID(ctx), req.Text)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.ReplyToReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/baker/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	return s.saveProduct(ctx, kernel.NewUUID(), http.StatusCreated)
}

// UpdateProduct handles PUT /api/baker/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("product id", err))
	}
	return s.saveProduct(ctx, productID, http.StatusOK)
}

func (s *Server) saveProduct(ctx echo.Context, productID kernel.UUID, status int) error {
	var req SaveProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	price, err := kernel.NewMoney(req.PricePaise)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSaveProductCommand(
		productID, accountID(ctx),
		req.Name, req.Description, req.Category, price, req.ImageURL, req.Available)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.SaveProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(status, IDResponse{ID: productID})
}

// DeleteProduct handles DELETE /api/baker/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("product id", err))
	}

	cmd, err := commands.NewDeleteProductCommand(productID, accountID(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBakerDashboard handles GET /api/baker/dashboard/stats.
func (s *Server) GetBakerDashboard(ctx echo.Context) error {
	query, err := queries.NewGetBakerDashboardQuery(accountID(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	stats, err := s.handlers.BakerDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}
