package cmd

import (
	"log/slog"

	"picante/internal/adapters/out/postgres"
	"picante/internal/core/application/usecases/commands"
	"picante/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) tableUoWFactory() commands.TableUoWFactory {
	return FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tableOrderUoWFactory() commands.TableOrderUoWFactory {
	return FuncTableOrderUoWFactory(func() commands.TableOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateDeliveryStatusMirror() *commands.DeliveryStatusMirror {
	return commands.NewDeliveryStatusMirror(c.deliveryUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateOccupyTableCommandHandler() commands.OccupyTableCommandHandler {
	return commands.NewOccupyTableCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateConfirmTableOrderCommandHandler() commands.ConfirmTableOrderCommandHandler {
	return commands.NewConfirmTableOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateSendTableToKitchenCommandHandler() commands.SendTableToKitchenCommandHandler {
	return commands.NewSendTableToKitchenCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateStartPreparationCommandHandler() commands.StartPreparationCommandHandler {
	return commands.NewStartPreparationCommandHandler(c.tableUoWFactory(), c.CreateDeliveryStatusMirror())
}

func (c *CompositionRoot) CreateMarkTableReadyCommandHandler() commands.MarkTableReadyCommandHandler {
	return commands.NewMarkTableReadyCommandHandler(c.tableUoWFactory(), c.CreateDeliveryStatusMirror())
}

func (c *CompositionRoot) CreateServeTableCommandHandler() commands.ServeTableCommandHandler {
	return commands.NewServeTableCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateRequestBillCommandHandler() commands.RequestBillCommandHandler {
	return commands.NewRequestBillCommandHandler(c.tableOrderUoWFactory())
}

func (c *CompositionRoot) CreatePayTableCommandHandler() commands.PayTableCommandHandler {
	return commands.NewPayTableCommandHandler(c.tableOrderUoWFactory())
}

func (c *CompositionRoot) CreateFreeTableCommandHandler() commands.FreeTableCommandHandler {
	return commands.NewFreeTableCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateCancelTableOrderCommandHandler() commands.CancelTableOrderCommandHandler {
	return commands.NewCancelTableOrderCommandHandler(c.tableOrderUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryOrderCommandHandler() commands.CreateDeliveryOrderCommandHandler {
	return commands.NewCreateDeliveryOrderCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateSendDeliveryToKitchenCommandHandler() commands.SendDeliveryToKitchenCommandHandler {
	return commands.NewSendDeliveryToKitchenCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateGetAllTablesQueryHandler() queries.GetAllTablesQueryHandler {
	return queries.NewGetAllTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTableOrderQueryHandler() queries.GetTableOrderQueryHandler {
	return queries.NewGetTableOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCompletedOrdersQueryHandler() queries.GetCompletedOrdersQueryHandler {
	return queries.NewGetCompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryOrderQueryHandler() queries.GetDeliveryOrderQueryHandler {
	return queries.NewGetDeliveryOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDeliveryOrdersQueryHandler() queries.GetAllDeliveryOrdersQueryHandler {
	return queries.NewGetAllDeliveryOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryOrdersByStatusQueryHandler() queries.GetDeliveryOrdersByStatusQueryHandler {
	return queries.NewGetDeliveryOrdersByStatusQueryHandler(c.gormDB)
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncTableOrderUoWFactory func() commands.TableOrderUoW

func (f FuncTableOrderUoWFactory) Create() commands.TableOrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
