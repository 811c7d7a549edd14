package http

import (
	"net/http"

	"localcrust/internal/core/application/usecases/commands"
	"localcrust/internal/core/application/usecases/queries"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"
	"localcrust/internal/core/domain/model/review"
	"localcrust/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Checkout handles POST /api/orders. The cart contributes product IDs and
// quantities only; pricing and the payment-gateway handoff happen
// server-side.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("product id", err))
		}

		line, err := commands.NewOrderLine(productID, item.Quantity)
		if err != nil {
			return badRequest(ctx, err)
		}
		lines = append(lines, line)
	}

	address, err := order.NewAddress(
		req.Address.FullName, req.Address.Phone, req.Address.Street,
		req.Address.City, req.Address.State, req.Address.ZipCode)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), accountID(ctx), lines, address)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{
		OrderID:         result.OrderID,
		OrderCode:       result.OrderCode,
		RazorpayOrderID: result.GatewayOrderID,
		AmountPaise:     result.AmountPaise,
		Currency:        result.Currency,
	})
}

// GetMyOrders handles GET /api/orders/my-orders.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(accountID(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.handlers.CustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id. Customers only ever see their own
// orders; a foreign order reads as not found.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	detail, err := s.handlers.Order.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	if !detail.CustomerID.IsEqual(accountID(ctx)) {
		return respondError(ctx, errs.NewObjectNotFoundError("order", orderID))
	}

	return ctx.JSON(http.StatusOK, detail)
}

// CancelOrder handles DELETE /api/orders/:id. Only the owning customer can
// cancel, and only while the order is still cancellable.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, accountID(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPayment handles POST /api/orders/:id/payment. The gateway signature
// is verified server-side, and the callback must resolve to the order in the
// path, owned by the authenticated customer.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	var req PaymentCallbackRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewConfirmPaymentCommand(
		orderID, accountID(ctx),
		req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.ConfirmPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitReview handles POST /api/orders/:id/review.
func (s *Server) SubmitReview(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	var req SubmitReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("product id", err))
	}

	rating, err := review.NewRating(req.Rating)
	if err != nil {
		return badRequest(ctx, err)
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewSubmitReviewCommand(
		reviewID, accountID(ctx), orderID, productID, rating, req.Comment)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.SubmitReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: reviewID})
}

// GetWishlist handles GET /api/wishlist.
func (s *Server) GetWishlist(ctx echo.Context) error {
	query, err := queries.NewGetWishlistQuery(accountID(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	items, err := s.handlers.WishlistItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, items)
}

// AddToWishlist handles POST /api/wishlist.
func (s *Server) AddToWishlist(ctx echo.Context) error {
	var req WishlistAddRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("product id", err))
	}

	cmd, err := commands.NewAddToWishlistCommand(accountID(ctx), productID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.Wishlist.HandleAdd(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveFromWishlist handles DELETE /api/wishlist/:productID.
func (s *Server) RemoveFromWishlist(ctx echo.Context) error {
	productID, err := pathID(ctx, "productID")
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("product id", err))
	}

	cmd, err := commands.NewRemoveFromWishlistCommand(accountID(ctx), productID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.Wishlist.HandleRemove(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLoyalty handles GET /api/customer/loyalty.
func (s *Server) GetLoyalty(ctx echo.Context) error {
	query, err := queries.NewGetLoyaltyQuery(accountID(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	loyalty, err := s.handlers.Loyalty.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loyalty)
}

// GetNotifications handles GET /api/notifications.
func (s *Server) GetNotifications(ctx echo.Context) error {
	query, err := queries.NewGetNotificationsQuery(accountID(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	feed, err := s.handlers.Notifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, feed)
}

// GetUnreadCount handles GET /api/notifications/unread-count.
func (s *Server) GetUnreadCount(ctx echo.Context) error {
	query, err := queries.NewGetNotificationsQuery(accountID(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	feed, err := s.handlers.Notifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UnreadCountResponse{UnreadCount: feed.UnreadCount})
}

// MarkNotificationRead handles POST /api/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("notification id", err))
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, accountID(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.MarkNotificationsRead.HandleOne(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/notifications/mark-all-read.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	cmd, err := commands.NewMarkAllNotificationsReadCommand(accountID(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.MarkNotificationsRead.HandleAll(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
