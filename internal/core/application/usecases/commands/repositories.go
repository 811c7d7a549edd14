// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"
	"errors"

	"localcrust/internal/core/ports"
)

// Errors shared by the command handlers.
var (
	// ErrNotAllowed is returned when the acting user is not permitted to
	// perform the operation on the target aggregate.
	ErrNotAllowed = errors.New("operation is not allowed for this actor")

	// ErrEmailAlreadyRegistered is returned when a registration reuses an email.
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command depends on the narrowest combination of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// BakerRepoFactory provides access to the baker repository within a transaction.
	BakerRepoFactory interface {
		BakerRepository() ports.BakerRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// WishlistRepoFactory provides access to the wishlist repository within a transaction.
	WishlistRepoFactory interface {
		WishlistRepository() ports.WishlistRepository
	}

	// CheckoutUoW manages the checkout transaction: pricing products into a
	// new order for an existing customer.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		CustomerRepoFactory
	}

	// CheckoutUoWFactory creates checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions that touch orders and the notifications
	// their transitions produce.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		NotificationRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FulfillmentUoW manages status transitions, which may also award loyalty
	// points on delivery.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		NotificationRepoFactory
		CustomerRepoFactory
	}

	// FulfillmentUoWFactory creates fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// ReviewUoW manages review submissions and replies, including the
	// eligibility checks against orders and products.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		OrderRepoFactory
		ProductRepoFactory
		NotificationRepoFactory
	}

	// ReviewUoWFactory creates review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// CustomerUoW manages customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// BakerUoW manages baker account operations and the notifications that
	// moderation decisions produce.
	BakerUoW interface {
		TxManager
		BakerRepoFactory
		NotificationRepoFactory
	}

	// BakerUoWFactory creates baker unit of work instances.
	BakerUoWFactory interface {
		Create() BakerUoW
	}

	// CatalogUoW manages product listing operations, which check the owning
	// baker's verification.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
		BakerRepoFactory
	}

	// CatalogUoWFactory creates catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// WishlistUoW manages wishlist entries, validating products exist.
	WishlistUoW interface {
		TxManager
		WishlistRepoFactory
		ProductRepoFactory
	}

	// WishlistUoWFactory creates wishlist unit of work instances.
	WishlistUoWFactory interface {
		Create() WishlistUoW
	}

	// NotificationUoW manages notification read-state operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
