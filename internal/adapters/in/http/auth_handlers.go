package http

import (
	"errors"
	"net/http"
	"strings"

	"localcrust/internal/core/application/usecases/commands"
	"localcrust/internal/core/application/usecases/queries"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// RegisterCustomer handles POST /api/auth/register.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req RegisterCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if req.Password == "" {
		return badRequest(ctx, errs.NewValueIsRequiredError("password"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondError(ctx, err)
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(
		customerID, req.Email, string(hash), req.Name, req.Phone)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.RegisterCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondAuth(ctx, http.StatusCreated, customerID, queries.RoleCustomer, true)
}

// RegisterBaker handles POST /api/baker/register. New bakers start pending
// verification and stay off the public marketplace until approved.
func (s *Server) RegisterBaker(ctx echo.Context) error {
	var req RegisterBakerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if req.Password == "" {
		return badRequest(ctx, errs.NewValueIsRequiredError("password"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondError(ctx, err)
	}

	bakerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterBakerCommand(
		bakerID, req.Email, string(hash),
		req.OwnerName, req.ShopName, req.Description, req.Phone, req.City)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.RegisterBaker.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondAuth(ctx, http.StatusCreated, bakerID, queries.RoleBaker, false)
}

// Login handles POST /api/auth/login. Customers and bakers authenticate
// against their stored bcrypt hash; the platform admin against the
// configured credentials.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	if s.admin.Email != "" && strings.EqualFold(req.Email, s.admin.Email) {
		if bcrypt.CompareHashAndPassword(
			[]byte(s.admin.PasswordHash), []byte(req.Password)) != nil {
			return unauthorized(ctx, "invalid credentials")
		}
		return s.respondAuth(ctx, http.StatusOK, s.adminID, queries.RoleAdmin, true)
	}

	query, err := queries.NewGetAccountByEmailQuery(req.Email)
	if err != nil {
		return badRequest(ctx, err)
	}

	account, err := s.handlers.AccountByEmail.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return unauthorized(ctx, "invalid credentials")
		}
		return respondError(ctx, err)
	}

	if bcrypt.CompareHashAndPassword(
		[]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return unauthorized(ctx, "invalid credentials")
	}

	return s.respondAuth(ctx, http.StatusOK, account.ID, account.Role, account.Verified)
}

func (s *Server) respondAuth(
	ctx echo.Context,
	status int,
	accountID kernel.UUID,
	role string,
	verified bool,
) error {
	signed, err := s.tokens.Issue(accountID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(status, AuthResponse{
		Token:     signed,
		AccountID: accountID,
		Role:      role,
		Verified:  verified,
	})
}
