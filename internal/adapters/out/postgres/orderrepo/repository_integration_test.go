package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"neushop/internal/adapters/out/postgres/orderrepo"
	"neushop/internal/core/domain/model/cart"
	"neushop/internal/core/domain/model/checkout"
	"neushop/internal/core/domain/model/kernel"
	"neushop/internal/core/domain/model/order"
	"neushop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

func (m *MockAggregateTracker) TrackedAggregate(id kernel.UUID) interface{} {
	args := m.Called(id)
	return args.Get(0)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()
	suite.tracker.On("TrackedAggregate", mock.AnythingOfType("kernel.UUID")).Return(nil)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(testOrder))
	suite.Equal(testOrder.Status(), restored.Status())
	suite.Equal(testOrder.PaymentStatus(), restored.PaymentStatus())
	suite.True(restored.Subtotal().IsEqual(testOrder.Subtotal()))
	suite.True(restored.Tax().IsEqual(testOrder.Tax()))
	suite.True(restored.Total().IsEqual(testOrder.Total()))
	suite.Equal(testOrder.ShippingInfo(), restored.ShippingInfo())
	suite.Equal(testOrder.PaymentDetails(), restored.PaymentDetails())

	restoredLines := restored.Lines()
	expectedLines := testOrder.Lines()
	suite.Require().Len(restoredLines, len(expectedLines))
	for i, line := range expectedLines {
		suite.Equal(line.ProductID, restoredLines[i].ProductID)
		suite.Equal(line.Quantity, restoredLines[i].Quantity)
		suite.Equal(line.Variant, restoredLines[i].Variant)
		suite.True(restoredLines[i].UnitPrice.IsEqual(line.UnitPrice))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()
	suite.tracker.On("TrackedAggregate", mock.AnythingOfType("kernel.UUID")).Return(nil)

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_TrackedOrder_ServedWithoutDatabaseRead() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	// The order was never persisted, so a database read would fail. Serving
	// it proves the repository consults the unit of work's identity map
	// first.
	suite.tracker.On("TrackedAggregate", testOrder.ID()).Return(testOrder).Once()

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Same(testOrder, restored)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChange_Persisted() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.tracker.On("TrackedAggregate", mock.AnythingOfType("kernel.UUID")).Return(nil)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(
		testOrder.ChangeStatus(order.Processing, order.ActorStaff, "", time.Now().UTC()),
	)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, restored.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive_MixedStatuses_ExcludesTerminal() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	active := []*order.Order{
		suite.createTestOrder(),
		suite.createTestOrder(),
	}
	cancelled := suite.createTestOrder()
	suite.Require().NoError(
		cancelled.ChangeStatus(order.Cancelled, order.ActorStaff, "out of stock", time.Now().UTC()),
	)
	returned := suite.createOrderInStatus(order.Delivered)
	suite.Require().NoError(
		returned.ChangeStatus(order.Returned, order.ActorShopper, "wrong size", time.Now().UTC()),
	)

	for _, o := range append(active, cancelled, returned) {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	activeOrders, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)

	suite.Len(activeOrders, 2)
	for _, o := range activeOrders {
		suite.False(o.Status().IsTerminal())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive_NoActiveOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()
	cancelled := suite.createTestOrder()
	suite.Require().NoError(
		cancelled.ChangeStatus(order.Cancelled, order.ActorStaff, "out of stock", time.Now().UTC()),
	)
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	activeOrders, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Empty(activeOrders)
}

// createTestOrder builds a pending order with two lines totalling 60.00 plus
// 6.00 tax.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	shirt, err := cart.NewLine("prod-1", "Linen Shirt", suite.money("24.50"), 2, cart.NewVariant("white", "M"), "")
	suite.Require().NoError(err)
	mug, err := cart.NewLine("prod-2", "Stoneware Mug", suite.money("11.00"), 1, cart.Variant{}, "")
	suite.Require().NoError(err)

	payload, err := order.NewSubmissionPayload(
		[]cart.Line{shirt, mug},
		checkout.ShippingInfo{
			AddressLine1: "12 Harbor Lane",
			City:         "Portsmouth",
			PostalCode:   "PO1 2AB",
			Country:      "GB",
		},
		checkout.PaymentDetails{
			Method:     checkout.MethodCard,
			CardHolder: "Sam Carter",
			CardNumber: "4111111111111111",
			ExpMonth:   9,
			ExpYear:    2028,
			CVV:        "123",
		},
		suite.money("60.00"),
		suite.money("6.00"),
		suite.money("66.00"),
	)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), payload, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return testOrder
}

// createOrderInStatus walks a fresh order through the table to the given
// status.
func (suite *OrderRepositoryIntegrationTestSuite) createOrderInStatus(target order.Status) *order.Order {
	testOrder := suite.createTestOrder()

	paths := map[order.Status][]order.Status{
		order.Processing: {order.Processing},
		order.Shipped:    {order.Processing, order.Shipped},
		order.Delivered:  {order.Processing, order.Shipped, order.Delivered},
	}
	for _, step := range paths[target] {
		suite.Require().NoError(
			testOrder.ChangeStatus(step, order.ActorStaff, "", time.Now().UTC()),
		)
	}
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) money(value string) kernel.Money {
	money, err := kernel.NewMoneyFromString(value)
	suite.Require().NoError(err)
	return money
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
