package commands_test

import (
	"testing"

	"picante/internal/core/application/usecases/commands"
	"picante/internal/core/domain/model/order"
	"picante/internal/core/domain/model/product"
	"picante/internal/core/domain/model/table"
	"picante/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredProduct(t *testing.T, id uint, name string, price float64) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, name, &price, "", true)
	require.NoError(t, err)
	return p
}

func TestConfirmTableOrderCommandHandler_Handle_ComputesTotalFromCatalog(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewConfirmTableOrderCommand(1, []commands.OrderLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 3},
	})
	require.NoError(t, err)

	tbl := restoredTable(t, 1, table.StatusOccupied)
	lomo := restoredProduct(t, 1, "Lomo Saltado", 25.0)
	causa := restoredProduct(t, 2, "Causa Limena", 15.0)

	tableRepo := new(MockTableRepository)
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, uint(1)).Return(tbl, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, uint(1)).Return(lomo, nil).Once(),
		productRepo.On("Get", mock.Anything, uint(2)).Return(causa, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		tableRepo.On("Update", mock.Anything, tbl).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmTableOrderCommandHandler(factory)
	total, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.InDelta(t, 95.0, total, 0.001)
	assert.Equal(t, table.StatusReadyToKitchen, tbl.Status())
	assert.NotNil(t, tbl.OccupiedAt())

	added := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.Equal(t, order.StatusOpen, added.Status())
	assert.InDelta(t, 95.0, added.TotalAmount(), 0.001)
	assert.Len(t, added.Items(), 2)

	tableRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConfirmTableOrderCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewConfirmTableOrderCommand(1, []commands.OrderLine{
		{ProductID: 42, Quantity: 1},
	})
	require.NoError(t, err)

	tbl := restoredTable(t, 1, table.StatusOccupied)

	tableRepo := new(MockTableRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, uint(1)).Return(tbl, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, uint(42)).
			Return(nil, errs.NewObjectNotFoundError("productId", uint(42))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmTableOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	tableRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
