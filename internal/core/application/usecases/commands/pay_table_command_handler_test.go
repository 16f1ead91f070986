package commands_test

import (
	"testing"

	"picante/internal/core/application/usecases/commands"
	"picante/internal/core/domain/model/order"
	"picante/internal/core/domain/model/table"
	"picante/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPayTableCommandHandler_Handle_SettlesOrderAndReleasesTable(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPayTableCommand(1)
	tbl := restoredTable(t, 1, table.StatusWaitingPayment)
	ord := restoredOrder(t, 7, 1, order.StatusWaitingPayment)

	tableRepo := new(MockTableRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, uint(1)).Return(tbl, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByTableAndStatus", mock.Anything, uint(1), order.StatusWaitingPayment).
			Return(ord, nil).Once(),
		orderRepo.On("Update", mock.Anything, ord).Return(nil).Once(),
		tableRepo.On("Update", mock.Anything, tbl).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayTableCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, ord.Status())
	assert.NotNil(t, ord.PaidAt())
	assert.Equal(t, table.StatusAvailable, tbl.Status())
	assert.Nil(t, tbl.OccupiedAt())
	assert.Nil(t, tbl.PreparationAt())
	tableRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPayTableCommandHandler_Handle_NoWaitingOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPayTableCommand(1)
	tbl := restoredTable(t, 1, table.StatusWaitingPayment)

	tableRepo := new(MockTableRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, uint(1)).Return(tbl, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByTableAndStatus", mock.Anything, uint(1), order.StatusWaitingPayment).
			Return(nil, errs.NewObjectNotFoundError("tableId", uint(1))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayTableCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, table.StatusWaitingPayment, tbl.Status())
	tableRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
