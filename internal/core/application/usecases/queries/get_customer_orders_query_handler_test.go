package queries_test

import (
	"context"
	"testing"
	"time"

	"localcrust/internal/adapters/out/postgres/orderrepo"
	"localcrust/internal/core/application/usecases/queries"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCustomerOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCustomerOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCustomerOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items CASCADE").Error)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) seedOrder(
	customerID kernel.UUID,
	createdAt time.Time,
	pricesPaise []int64,
) *order.Order {
	address, err := order.NewAddress("Meera Iyer", "+91 99870 55441", "2 Gandhi Street", "Chennai", "TN", "600004")
	suite.Require().NoError(err)

	items := make([]order.Item, 0, len(pricesPaise))
	for _, paise := range pricesPaise {
		price, priceErr := kernel.NewMoney(paise)
		suite.Require().NoError(priceErr)
		item, itemErr := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Butter Croissant", price, 1)
		suite.Require().NoError(itemErr)
		items = append(items, item)
	}

	seeded, err := order.NewOrder(
		kernel.NewUUID(), order.GenerateCode(createdAt), customerID, items, address, createdAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), seeded))
	return seeded
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_ReturnsOwnOrdersNewestFirst() {
	customerID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	older := suite.seedOrder(customerID, now.Add(-2*time.Hour), []int64{10000, 5000})
	newer := suite.seedOrder(customerID, now.Add(-time.Hour), []int64{20000})
	suite.seedOrder(kernel.NewUUID(), now, []int64{7500}) // someone else's order

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].ID.IsEqual(newer.ID()))
	suite.Equal(int64(20000), result[0].TotalPaise)
	suite.Equal(1, result[0].ItemCount)
	suite.Equal("pending", result[0].Status)
	suite.Equal("pending", result[0].PaymentStatus)

	suite.True(result[1].ID.IsEqual(older.ID()))
	suite.Equal(int64(15000), result[1].TotalPaise)
	suite.Equal(2, result[1].ItemCount)
}

func TestGetCustomerOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCustomerOrdersQueryHandlerTestSuite))
}
