package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"ordersvc/internal/adapters/out/postgres/paymentrepo"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/payment"
	"ordersvc/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// PaymentRepositoryIntegrationTestSuite verifies payment persistence behavior
// against a real PostgreSQL container.
type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *paymentrepo.GormPaymentRepository
	tracker    *MockAggregateTracker
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&paymentrepo.PaymentDTO{}))
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = paymentrepo.NewGormPaymentRepository(suite.db, suite.tracker)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) createTestPayment(amount string) *payment.Payment {
	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(),
		decimal.RequireFromString(amount), `{"method":"card"}`, time.Now().UTC())
	suite.Require().NoError(err)
	return p
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAddAndGetByOrderID() {
	ctx := context.Background()
	testPayment := suite.createTestPayment("12.50")

	suite.tracker.On("TrackAggregate", testPayment.ID(), testPayment).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testPayment))

	restored, err := suite.repository.GetByOrderID(ctx, testPayment.OrderID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(testPayment.ID()))
	suite.True(restored.Amount().Equal(testPayment.Amount()))
	suite.Equal(`{"method":"card"}`, restored.Details())
	suite.Equal(payment.Pending, restored.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetByOrderID_NotFound() {
	_, err := suite.repository.GetByOrderID(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()
	testPayment := suite.createTestPayment("12.50")

	suite.tracker.On("TrackAggregate", testPayment.ID(), testPayment).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testPayment))

	suite.Require().NoError(testPayment.Cancel(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testPayment))

	restored, err := suite.repository.GetByOrderID(ctx, testPayment.OrderID())
	suite.Require().NoError(err)
	suite.Equal(payment.Cancelled, restored.Status())
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
