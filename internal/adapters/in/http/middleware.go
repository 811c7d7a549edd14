package http

import (
	"net/http"
	"slices"
	"strings"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

const (
	ctxAccountID = "accountID"
	ctxRole      = "role"
)

// authMiddleware parses the bearer token and stores the account identity in
// the request context. Requests without a valid token get 401.
func authMiddleware(tokens *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			raw, ok := strings.CutPrefix(ctx.Request().Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				return unauthorized(ctx, "missing bearer token")
			}

			accountID, role, err := tokens.Parse(raw)
			if err != nil {
				return unauthorized(ctx, "invalid or expired token")
			}

			ctx.Set(ctxAccountID, accountID)
			ctx.Set(ctxRole, role)
			return next(ctx)
		}
	}
}

// requireRole rejects authenticated requests whose role is not in the allow
// list. Must run after authMiddleware.
func requireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			current, _ := ctx.Get(ctxRole).(string)
			if !slices.Contains(roles, current) {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "insufficient role",
				})
			}
			return next(ctx)
		}
	}
}

func accountID(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(ctxAccountID).(kernel.UUID)
	return id
}
