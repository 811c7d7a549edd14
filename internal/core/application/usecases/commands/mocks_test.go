package commands_test

import (
	"context"
	"time"

	"localcrust/internal/core/application/usecases/commands"
	"localcrust/internal/core/domain/model/baker"
	"localcrust/internal/core/domain/model/customer"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/notification"
	"localcrust/internal/core/domain/model/order"
	"localcrust/internal/core/domain/model/product"
	"localcrust/internal/core/domain/model/review"
	"localcrust/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*order.Order, error) {
	args := m.Called(ctx, gatewayOrderID)
	if v := args.Get(0); v != nil {
		return v.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if v := args.Get(0); v != nil {
		return v.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*review.Review), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockReviewRepository) Exists(ctx context.Context, orderID, productID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID, productID)
	return args.Bool(0), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if v := args.Get(0); v != nil {
		return v.([]*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*customer.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*customer.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBakerRepository struct{ mock.Mock }

func (m *MockBakerRepository) Add(ctx context.Context, b *baker.Baker) error {
	return m.Called(ctx, b).Error(0)
}
func (m *MockBakerRepository) Update(ctx context.Context, b *baker.Baker) error {
	return m.Called(ctx, b).Error(0)
}
func (m *MockBakerRepository) Get(ctx context.Context, id kernel.UUID) (*baker.Baker, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*baker.Baker), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockBakerRepository) GetByEmail(ctx context.Context, email string) (*baker.Baker, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*baker.Baker), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*notification.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, recipientID kernel.UUID) error {
	return m.Called(ctx, recipientID).Error(0)
}

type MockWishlistRepository struct{ mock.Mock }

func (m *MockWishlistRepository) Add(ctx context.Context, customerID, productID kernel.UUID, at time.Time) error {
	return m.Called(ctx, customerID, productID, at).Error(0)
}
func (m *MockWishlistRepository) Remove(ctx context.Context, customerID, productID kernel.UUID) error {
	return m.Called(ctx, customerID, productID).Error(0)
}
func (m *MockWishlistRepository) Contains(ctx context.Context, customerID, productID kernel.UUID) (bool, error) {
	args := m.Called(ctx, customerID, productID)
	return args.Bool(0), args.Error(1)
}

// MockUoW serves every UoW combination the commands package defines.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	return m.Called().Get(0).(ports.ReviewRepository)
}
func (m *MockUoW) BakerRepository() ports.BakerRepository {
	return m.Called().Get(0).(ports.BakerRepository)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}
func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}
func (m *MockUoW) WishlistRepository() ports.WishlistRepository {
	return m.Called().Get(0).(ports.WishlistRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return m.Called().Get(0).(commands.CheckoutUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return m.Called().Get(0).(commands.FulfillmentUoW)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	return m.Called().Get(0).(commands.ReviewUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, amount kernel.Money, receipt string) (ports.GatewayOrder, error) {
	args := m.Called(ctx, amount, receipt)
	return args.Get(0).(ports.GatewayOrder), args.Error(1)
}
func (m *MockPaymentGateway) VerifyPaymentSignature(gatewayOrderID, paymentID, signature string) error {
	return m.Called(gatewayOrderID, paymentID, signature).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderPlaced(ctx context.Context, event ports.OrderPlacedEvent) error {
	return m.Called(ctx, event).Error(0)
}
func (m *MockEventPublisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	return m.Called(ctx, event).Error(0)
}
func (m *MockEventPublisher) PublishReviewSubmitted(ctx context.Context, event ports.ReviewSubmittedEvent) error {
	return m.Called(ctx, event).Error(0)
}
func (m *MockEventPublisher) Close() error { return m.Called().Error(0) }

type MockReviewSubmissionGuard struct{ mock.Mock }

func (m *MockReviewSubmissionGuard) Acquire(ctx context.Context, customerID, productID kernel.UUID) (bool, error) {
	args := m.Called(ctx, customerID, productID)
	return args.Bool(0), args.Error(1)
}
func (m *MockReviewSubmissionGuard) Release(ctx context.Context, customerID, productID kernel.UUID) error {
	return m.Called(ctx, customerID, productID).Error(0)
}
