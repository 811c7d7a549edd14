package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"localcrust/internal/adapters/out/postgres/orderrepo"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"
	"localcrust/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(createdAt time.Time) *order.Order {
	address, err := order.NewAddress("Asha Rao", "+91 98200 11223", "14 Hill Road", "Mumbai", "MH", "400050")
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(12500)
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Sourdough Loaf", price, 2)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), order.GenerateCode(createdAt), kernel.NewUUID(),
		[]order.Item{item}, address, createdAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(time.Now().UTC().Truncate(time.Microsecond))

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(testOrder))
	suite.Equal(testOrder.Code(), retrieved.Code())
	suite.Equal(testOrder.TotalAmount().Paise(), retrieved.TotalAmount().Paise())
	suite.Len(retrieved.Items(), 1)
	suite.Equal("Sourdough Loaf", retrieved.Items()[0].ProductName())
	suite.Equal(order.StatusPending, retrieved.Status())
	suite.Equal(order.PaymentPending, retrieved.PaymentStatus())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsPaymentSettlement() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(testOrder.AttachGatewayOrder("order_MhYt5Wp3K"))
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.MarkPaymentCompleted("pay_N8qZ2f4kX1"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, retrieved.Status())
	suite.Equal(order.PaymentCompleted, retrieved.PaymentStatus())
	suite.Equal("pay_N8qZ2f4kX1", retrieved.PaymentID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByGatewayOrderID_FindsAttachedOrder() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(testOrder.AttachGatewayOrder("order_Lk82hFq1R"))
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.GetByGatewayOrderID(ctx, "order_Lk82hFq1R")
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(testOrder))

	_, err = suite.repository.GetByGatewayOrderID(ctx, "order_unknown")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetStalePending_ReturnsOnlyOldPendingOrders() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	stale := suite.createTestOrder(now.Add(-time.Hour))
	fresh := suite.createTestOrder(now.Add(-time.Minute))
	paid := suite.createTestOrder(now.Add(-time.Hour))
	suite.Require().NoError(paid.AttachGatewayOrder("order_X91bT7c2M"))
	suite.Require().NoError(paid.MarkPaymentCompleted("pay_T4wq8Lm0J"))

	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))
	suite.Require().NoError(suite.repository.Add(ctx, paid))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	found, err := orderrepo.NewGormOrderRepository(tx).GetStalePending(ctx, now.Add(-30*time.Minute))
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.True(found[0].IsEqual(stale))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetStalePending_SkipsCancelledOrders() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	cancelled := suite.createTestOrder(now.Add(-time.Hour))
	suite.Require().NoError(cancelled.Cancel())
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	// A row from before cancellation failed the payment leg: cancelled but
	// still payment-pending. The sweep must never pick it up.
	legacy := suite.createTestOrder(now.Add(-time.Hour))
	suite.Require().NoError(legacy.Cancel())
	suite.Require().NoError(suite.repository.Add(ctx, legacy))
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", legacy.ID().Bytes()).
		Update("payment_status", int(order.PaymentPending)).Error)

	sweepable := suite.createTestOrder(now.Add(-time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, sweepable))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	found, err := orderrepo.NewGormOrderRepository(tx).GetStalePending(ctx, now.Add(-30*time.Minute))
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.True(found[0].IsEqual(sweepable))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
