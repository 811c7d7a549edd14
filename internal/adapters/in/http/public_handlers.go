package http

import (
	"net/http"

	"localcrust/internal/core/application/usecases/queries"
	"localcrust/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetCatalog handles GET /api/products. Optional ?category= and ?city=
// filters narrow the result; only in-stock products of verified bakers are
// listed.
func (s *Server) GetCatalog(ctx echo.Context) error {
	query, err := queries.NewGetCatalogQuery(
		ctx.QueryParam("category"), ctx.QueryParam("city"))
	if err != nil {
		return badRequest(ctx, err)
	}

	products, err := s.handlers.Catalog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, products)
}

// ListBakers handles GET /api/bakers and GET /api/admin/bakers. Optional
// ?city= filter.
func (s *Server) ListBakers(ctx echo.Context) error {
	query, err := queries.NewGetBakersQuery(ctx.QueryParam("city"))
	if err != nil {
		return badRequest(ctx, err)
	}

	bakers, err := s.handlers.Bakers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bakers)
}

// GetBakerProfile handles GET /api/bakers/:id.
func (s *Server) GetBakerProfile(ctx echo.Context) error {
	bakerID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("baker id", err))
	}

	query, err := queries.NewGetBakerProfileQuery(bakerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	profile, err := s.handlers.BakerProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, profile)
}

// GetProductReviews handles GET /api/products/:id/reviews.
func (s *Server) GetProductReviews(ctx echo.Context) error {
	productID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("product id", err))
	}

	query, err := queries.NewGetProductReviewsQuery(productID)
	if err != nil {
		return badRequest(ctx, err)
	}

	reviews, err := s.handlers.ProductReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, reviews)
}
