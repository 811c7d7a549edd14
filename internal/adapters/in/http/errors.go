package http

import (
	"errors"
	"net/http"

	"localcrust/internal/core/application/usecases/commands"
	"localcrust/internal/core/domain/model/order"
	"localcrust/internal/core/domain/model/review"
	"localcrust/internal/core/ports"
	"localcrust/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps a use-case error to an HTTP status and writes the JSON
// error body. Unrecognized errors become 500 without leaking their message.
func respondError(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrNotAllowed),
		errors.Is(err, commands.ErrBakerNotVerified):
		return http.StatusForbidden
	case errors.Is(err, commands.ErrEmailAlreadyRegistered),
		errors.Is(err, commands.ErrReviewAlreadyExists),
		errors.Is(err, commands.ErrReviewSubmissionInFlight),
		errors.Is(err, commands.ErrReviewNotEligible),
		errors.Is(err, commands.ErrProductNotAvailable),
		errors.Is(err, review.ErrReviewAlreadyReplied),
		errors.Is(err, order.ErrPaymentAlreadySettled):
		return http.StatusConflict
	case errors.Is(err, ports.ErrPaymentVerificationFailed),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// badRequest writes a 400 with the given error's message. Used for request
// parsing and command construction failures, whose sentinels are not always
// part of the errs family.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
