package cmd

import (
	"log/slog"
	"os"

	"ordersvc/internal/adapters/out/postgres"
	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderPaymentStatusCommandHandler() commands.UpdateOrderPaymentStatusCommandHandler {
	var f commands.OrderPaymentUoWFactory = FuncOrderPaymentUoWFactory(func() commands.OrderPaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderPaymentStatusCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateRescheduleDeliveryCommandHandler() commands.RescheduleDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRescheduleDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchDeliveriesCommandHandler() commands.DispatchDeliveriesCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchDeliveriesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByCustomerQueryHandler() queries.GetOrdersByCustomerQueryHandler {
	return queries.NewGetOrdersByCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOrdersQueryHandler() queries.CountOrdersQueryHandler {
	return queries.NewCountOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSumPaymentsQueryHandler() queries.SumPaymentsQueryHandler {
	return queries.NewSumPaymentsQueryHandler(c.gormDB)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderPaymentUoWFactory func() commands.OrderPaymentUoW

func (f FuncOrderPaymentUoWFactory) Create() commands.OrderPaymentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
