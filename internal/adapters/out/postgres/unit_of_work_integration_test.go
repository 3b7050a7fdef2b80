package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"ordersvc/internal/adapters/out/postgres"
	"ordersvc/internal/adapters/out/postgres/deliveryrepo"
	"ordersvc/internal/adapters/out/postgres/orderrepo"
	"ordersvc/internal/adapters/out/postgres/paymentrepo"
	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/domain/model/delivery"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/payment"
	"ordersvc/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// uowFactoryFunc adapts the concrete factory to the command-layer interface.
type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW { return f() }

// UnitOfWorkIntegrationTestSuite verifies that the unit of work gives the
// cross-record protocols real transactional behavior: nothing is observable
// before commit, and rollback leaves no partial writes behind.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&paymentrepo.PaymentDTO{},
		&deliveryrepo.DeliveryDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, payments, deliveries").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newTriple() (*order.Order, *payment.Payment, *delivery.Delivery) {
	now := time.Now().UTC()
	items := []order.Item{{Name: "apple", Quantity: 2}, {Name: "bread", Quantity: 1}}

	o, err := order.NewOrder(kernel.NewUUID(), "customer-1", items,
		decimal.RequireFromString("12.50"), now)
	suite.Require().NoError(err)

	p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), o.TotalAmount(), "", now)
	suite.Require().NoError(err)

	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), o.OrderNumber(),
		o.CustomerID(), "1 Farm Rd", `[{"name":"apple","quantity":2}]`,
		now.Add(24*time.Hour), now)
	suite.Require().NoError(err)

	return o, p, d
}

func (suite *UnitOfWorkIntegrationTestSuite) countRows(table string) int64 {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_MakesAllThreeRecordsVisible() {
	ctx := context.Background()
	o, p, d := suite.newTriple()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, p))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.countRows("orders"))
	suite.Equal(int64(1), suite.countRows("payments"))
	suite.Equal(int64(1), suite.countRows("deliveries"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_LeavesNoPartialWrites() {
	ctx := context.Background()
	o, p, _ := suite.newTriple()

	// Write the order and payment, then abort before the delivery, simulating
	// a mid-protocol failure.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, p))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.countRows("orders"))
	suite.Equal(int64(0), suite.countRows("payments"))
	suite.Equal(int64(0), suite.countRows("deliveries"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedWrites_NotVisibleOutsideTransaction() {
	ctx := context.Background()
	o, _, _ := suite.newTriple()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	// A reader on the main connection must not see the in-flight row.
	suite.Equal(int64(0), suite.countRows("orders"))

	suite.Require().NoError(uow.Commit(ctx))
	suite.Equal(int64(1), suite.countRows("orders"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommit_Fails() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentUnits_AreIsolated() {
	ctx := context.Background()
	first, _, _ := suite.newTriple()

	uowA := suite.factory.Create()
	uowB := suite.factory.Create()
	suite.Require().NoError(uowA.Begin(ctx))
	suite.Require().NoError(uowB.Begin(ctx))

	suite.Require().NoError(uowA.OrderRepository().Add(ctx, first))

	// B cannot see A's uncommitted order.
	_, err := uowB.OrderRepository().Get(ctx, first.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uowA.Commit(ctx))
	suite.Require().NoError(uowB.Rollback(ctx))

	suite.Equal(int64(1), suite.countRows("orders"))
}

// Two concurrent cancellations of the same order must both succeed, leave all
// three records cancelled exactly once, and never expose a snapshot where only
// some of the records are cancelled.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentCancellations_ConsistentAndIdempotent() {
	ctx := context.Background()
	o, p, d := suite.newTriple()

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, o))
	suite.Require().NoError(seed.PaymentRepository().Add(ctx, p))
	suite.Require().NoError(seed.DeliveryRepository().Add(ctx, d))
	suite.Require().NoError(seed.Commit(ctx))

	handler := commands.NewCancelOrderCommandHandler(
		uowFactoryFunc(func() commands.UoW { return suite.factory.Create() }),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	cmd, err := commands.NewCancelOrderCommand(o.ID())
	suite.Require().NoError(err)

	// Reader sampling one-statement snapshots while the cancels race. A single
	// statement sees one consistent snapshot, so a mixed row set here would
	// mean a cancel escaped its transaction.
	done := make(chan struct{})
	var readerWG sync.WaitGroup
	var tornSnapshots int
	readerWG.Add(1)
	go func() {
		defer readerWG.Done()
		for {
			select {
			case <-done:
				return
			default:
			}

			var row struct {
				OrderStatus    int
				PaymentStatus  int
				DeliveryStatus int
			}
			scanErr := suite.db.Raw(
				`SELECT o.status AS order_status, p.status AS payment_status, d.status AS delivery_status
				 FROM orders o
				 JOIN payments p ON p.order_id = o.id
				 JOIN deliveries d ON d.order_id = o.id
				 WHERE o.id = ?`, o.ID().Bytes()).Scan(&row).Error
			if scanErr != nil {
				continue
			}

			orderCancelled := row.OrderStatus == int(order.Cancelled)
			paymentCancelled := row.PaymentStatus == int(payment.Cancelled)
			deliveryCancelled := row.DeliveryStatus == int(delivery.Cancelled)
			if orderCancelled != paymentCancelled || orderCancelled != deliveryCancelled {
				tornSnapshots++
			}
		}
	}()

	results := make([]error, 2)
	var cancelWG sync.WaitGroup
	for i := range results {
		cancelWG.Add(1)
		go func(slot int) {
			defer cancelWG.Done()
			_, handleErr := handler.Handle(ctx, cmd)
			results[slot] = handleErr
		}(i)
	}
	cancelWG.Wait()
	close(done)
	readerWG.Wait()

	suite.Require().NoError(results[0])
	suite.Require().NoError(results[1])
	suite.Zero(tornSnapshots)

	restoredOrder, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, restoredOrder.Status())

	restoredPayment, err := suite.factory.Create().PaymentRepository().GetByOrderID(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.Cancelled, restoredPayment.Status())

	restoredDelivery, err := suite.factory.Create().DeliveryRepository().GetByOrderID(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Cancelled, restoredDelivery.Status())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
