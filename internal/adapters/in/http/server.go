// Package http exposes the marketplace over a JSON REST API. Handlers
// translate requests into commands and queries; authentication is a bearer
// JWT carrying the account ID and role.
package http

import (
	"net/http"

	"localcrust/internal/core/application/usecases/commands"
	"localcrust/internal/core/application/usecases/queries"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	// Command handlers
	RegisterCustomer      commands.RegisterCustomerCommandHandler
	RegisterBaker         commands.RegisterBakerCommandHandler
	CreateOrder           commands.CreateOrderCommandHandler
	ConfirmPayment        commands.ConfirmPaymentCommandHandler
	CancelOrder           commands.CancelOrderCommandHandler
	ChangeOrderStatus     commands.ChangeOrderStatusCommandHandler
	SubmitReview          commands.SubmitReviewCommandHandler
	ReplyToReview         commands.ReplyToReviewCommandHandler
	SaveProduct           commands.SaveProductCommandHandler
	DeleteProduct         commands.DeleteProductCommandHandler
	ModerateBaker         commands.ModerateBakerCommandHandler
	Wishlist              commands.WishlistCommandHandler
	MarkNotificationsRead commands.MarkNotificationsReadCommandHandler

	// Query handlers
	AccountByEmail queries.GetAccountByEmailQueryHandler
	CustomerOrders queries.GetCustomerOrdersQueryHandler
	Order          queries.GetOrderQueryHandler
	BakerOrders    queries.GetBakerOrdersQueryHandler
	Catalog        queries.GetCatalogQueryHandler
	Bakers         queries.GetBakersQueryHandler
	BakerProfile   queries.GetBakerProfileQueryHandler
	ProductReviews queries.GetProductReviewsQueryHandler
	BakerReviews   queries.GetBakerReviewsQueryHandler
	BakerDashboard queries.GetBakerDashboardQueryHandler
	Notifications  queries.GetNotificationsQueryHandler
	WishlistItems  queries.GetWishlistQueryHandler
	Loyalty        queries.GetLoyaltyQueryHandler
	PendingBakers  queries.GetPendingBakersQueryHandler
	PlatformStats  queries.GetPlatformStatsQueryHandler
}

// AdminCredentials is the configured platform-admin login. The admin is not
// a stored account; it authenticates against these credentials and acts
// through the admin role claim.
type AdminCredentials struct {
	Email        string
	PasswordHash string
}

// Server routes HTTP requests to the application's use cases.
type Server struct {
	handlers Handlers
	tokens   *token.Issuer
	admin    AdminCredentials
	adminID  kernel.UUID
}

// NewServer creates the HTTP server.
func NewServer(handlers Handlers, tokens *token.Issuer, admin AdminCredentials) *Server {
	return &Server{
		handlers: handlers,
		tokens:   tokens,
		admin:    admin,
		adminID:  kernel.NewUUID(),
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", s.Health)

	// Public
	api.POST("/auth/register", s.RegisterCustomer)
	api.POST("/auth/login", s.Login)
	api.POST("/baker/register", s.RegisterBaker)
	api.GET("/bakers", s.ListBakers)
	api.GET("/bakers/:id", s.GetBakerProfile)
	api.GET("/products", s.GetCatalog)
	api.GET("/products/:id/reviews", s.GetProductReviews)

	auth := authMiddleware(s.tokens)

	// Customer
	customer := api.Group("", auth, requireRole(queries.RoleCustomer))
	customer.POST("/orders", s.Checkout)
	customer.GET("/orders/my-orders", s.GetMyOrders)
	customer.GET("/orders/:id", s.GetOrder)
	customer.DELETE("/orders/:id", s.CancelOrder)
	customer.POST("/orders/:id/payment", s.ConfirmPayment)
	customer.POST("/orders/:id/review", s.SubmitReview)
	customer.GET("/wishlist", s.GetWishlist)
	customer.POST("/wishlist", s.AddToWishlist)
	customer.DELETE("/wishlist/:productID", s.RemoveFromWishlist)
	customer.GET("/customer/loyalty", s.GetLoyalty)

	// Notifications go to customers and bakers alike.
	notifications := api.Group("/notifications", auth,
		requireRole(queries.RoleCustomer, queries.RoleBaker))
	notifications.GET("", s.GetNotifications)
	notifications.GET("/unread-count", s.GetUnreadCount)
	notifications.POST("/:id/read", s.MarkNotificationRead)
	notifications.POST("/mark-all-read", s.MarkAllNotificationsRead)

	// Baker
	baker := api.Group("/baker", auth, requireRole(queries.RoleBaker))
	baker.GET("/orders", s.GetBakerOrders)
	baker.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	baker.GET("/reviews", s.GetBakerReviews)
	baker.GET("/reviews/stats", s.GetBakerReviewStats)
	baker.POST("/reviews/:id/reply", s.ReplyToReview)
	baker.POST("/products", s.CreateProduct)
	baker.PUT("/products/:id", s.UpdateProduct)
	baker.DELETE("/products/:id", s.DeleteProduct)
	baker.GET("/dashboard/stats", s.GetBakerDashboard)

	// Admin
	admin := api.Group("/admin", auth, requireRole(queries.RoleAdmin))
	admin.GET("/bakers", s.ListBakers)
	admin.GET("/bakers/pending", s.GetPendingBakers)
	admin.POST("/bakers/:id/verify", s.VerifyBaker)
	admin.POST("/bakers/:id/reject", s.RejectBaker)
	admin.GET("/dashboard/stats", s.GetPlatformStats)
}

// Health handles GET /api/health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// pathID parses a UUID path parameter.
func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}
