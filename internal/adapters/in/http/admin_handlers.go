package http

import (
	"net/http"

	"localcrust/internal/core/application/usecases/commands"
	"localcrust/internal/core/application/usecases/queries"
	"localcrust/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetPendingBakers handles GET /api/admin/bakers/pending.
func (s *Server) GetPendingBakers(ctx echo.Context) error {
	query, err := queries.NewGetPendingBakersQuery()
	if err != nil {
		return badRequest(ctx, err)
	}

	bakers, err := s.handlers.PendingBakers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bakers)
}

// VerifyBaker handles POST /api/admin/bakers/:id/verify.
func (s *Server) VerifyBaker(ctx echo.Context) error {
	return s.moderateBaker(ctx, true)
}

// RejectBaker handles POST /api/admin/bakers/:id/reject.
func (s *Server) RejectBaker(ctx echo.Context) error {
	return s.moderateBaker(ctx, false)
}

func (s *Server) moderateBaker(ctx echo.Context, approve bool) error {
	bakerID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("baker id", err))
	}

	cmd, err := commands.NewModerateBakerCommand(bakerID, approve)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.ModerateBaker.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPlatformStats handles GET /api/admin/dashboard/stats.
func (s *Server) GetPlatformStats(ctx echo.Context) error {
	query, err := queries.NewGetPlatformStatsQuery()
	if err != nil {
		return badRequest(ctx, err)
	}

	stats, err := s.handlers.PlatformStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}
