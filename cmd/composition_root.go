package cmd

import (
	"log/slog"
	"strings"

	lchttp "localcrust/internal/adapters/in/http"
	"localcrust/internal/adapters/out/kafka"
	"localcrust/internal/adapters/out/postgres"
	"localcrust/internal/adapters/out/razorpay"
	redisadapter "localcrust/internal/adapters/out/redis"
	"localcrust/internal/core/application/usecases/commands"
	"localcrust/internal/core/application/usecases/queries"
	"localcrust/internal/pkg/token"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    *razorpay.Client
	publisher  *kafka.Publisher
	guard      *redisadapter.ReviewSubmissionGuard
	tokens     *token.Issuer
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	redisClient := goredis.NewClient(&goredis.Options{Addr: configs.RedisAddr})

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    razorpay.NewClient(configs.RazorpayKeyID, configs.RazorpayKeySecret),
		publisher:  kafka.NewPublisher(strings.Split(configs.KafkaBrokers, ",")),
		guard:      redisadapter.NewReviewSubmissionGuard(redisClient, redisadapter.DefaultLockTTL),
		tokens:     token.NewIssuer(configs.TokenSecret, token.DefaultTTL),
		logger:     logger,
	}
}

// TokenIssuer returns the shared JWT issuer.
func (c *CompositionRoot) TokenIssuer() *token.Issuer {
	return c.tokens
}

// Publisher returns the Kafka publisher so main can close it on shutdown.
func (c *CompositionRoot) Publisher() *kafka.Publisher {
	return c.publisher
}

// HTTPHandlers bundles every command and query handler for the HTTP server.
func (c *CompositionRoot) HTTPHandlers() lchttp.Handlers {
	return lchttp.Handlers{
		RegisterCustomer:      c.CreateRegisterCustomerCommandHandler(),
		RegisterBaker:         c.CreateRegisterBakerCommandHandler(),
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		ConfirmPayment:        c.CreateConfirmPaymentCommandHandler(),
		CancelOrder:           c.CreateCancelOrderCommandHandler(),
		ChangeOrderStatus:     c.CreateChangeOrderStatusCommandHandler(),
		SubmitReview:          c.CreateSubmitReviewCommandHandler(),
		ReplyToReview:         c.CreateReplyToReviewCommandHandler(),
		SaveProduct:           c.CreateSaveProductCommandHandler(),
		DeleteProduct:         c.CreateDeleteProductCommandHandler(),
		ModerateBaker:         c.CreateModerateBakerCommandHandler(),
		Wishlist:              c.CreateWishlistCommandHandler(),
		MarkNotificationsRead: c.CreateMarkNotificationsReadCommandHandler(),

		AccountByEmail: queries.NewGetAccountByEmailQueryHandler(c.gormDB),
		CustomerOrders: queries.NewGetCustomerOrdersQueryHandler(c.gormDB),
		Order:          queries.NewGetOrderQueryHandler(c.gormDB),
		BakerOrders:    queries.NewGetBakerOrdersQueryHandler(c.gormDB),
		Catalog:        queries.NewGetCatalogQueryHandler(c.gormDB),
		Bakers:         queries.NewGetBakersQueryHandler(c.gormDB),
		BakerProfile:   queries.NewGetBakerProfileQueryHandler(c.gormDB),
		ProductReviews: queries.NewGetProductReviewsQueryHandler(c.gormDB),
		BakerReviews:   queries.NewGetBakerReviewsQueryHandler(c.gormDB),
		BakerDashboard: queries.NewGetBakerDashboardQueryHandler(c.gormDB),
		Notifications:  queries.NewGetNotificationsQueryHandler(c.gormDB),
		WishlistItems:  queries.NewGetWishlistQueryHandler(c.gormDB),
		Loyalty:        queries.NewGetLoyaltyQueryHandler(c.gormDB),
		PendingBakers:  queries.NewGetPendingBakersQueryHandler(c.gormDB),
		PlatformStats:  queries.NewGetPlatformStatsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterBakerCommandHandler() commands.RegisterBakerCommandHandler {
	var f commands.BakerUoWFactory = FuncBakerUoWFactory(func() commands.BakerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterBakerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPaymentCommandHandler(f, c.gateway, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitReviewCommandHandler(f, c.guard, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateReplyToReviewCommandHandler() commands.ReplyToReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplyToReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveProductCommandHandler() commands.SaveProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveProductCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f)
}

func (c *CompositionRoot) CreateModerateBakerCommandHandler() commands.ModerateBakerCommandHandler {
	var f commands.BakerUoWFactory = FuncBakerUoWFactory(func() commands.BakerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewModerateBakerCommandHandler(f)
}

func (c *CompositionRoot) CreateWishlistCommandHandler() commands.WishlistCommandHandler {
	var f commands.WishlistUoWFactory = FuncWishlistUoWFactory(func() commands.WishlistUoW {
		return c.uowFactory.Create()
	})
	return commands.NewWishlistCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkNotificationsReadCommandHandler() commands.MarkNotificationsReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationsReadCommandHandler(f)
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncBakerUoWFactory func() commands.BakerUoW

func (f FuncBakerUoWFactory) Create() commands.BakerUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncWishlistUoWFactory func() commands.WishlistUoW

func (f FuncWishlistUoWFactory) Create() commands.WishlistUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
