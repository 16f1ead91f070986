package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"picante/internal/core/application/usecases/commands"
	"picante/internal/core/domain/model/deliveryorder"
	"picante/internal/core/domain/model/table"
	"picante/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardMirror(factory commands.DeliveryUoWFactory) *commands.DeliveryStatusMirror {
	return commands.NewDeliveryStatusMirror(factory, slog.New(slog.DiscardHandler))
}

func restoredProxyTable(t *testing.T, id, deliveryOrderID uint, status table.Status) *table.Table {
	t.Helper()
	tbl, err := table.RestoreTable(id, table.ProxyName(deliveryOrderID), 0, status, nil, nil)
	require.NoError(t, err)
	return tbl
}

func restoredDeliveryOrder(t *testing.T, id uint, status deliveryorder.Status) *deliveryorder.DeliveryOrder {
	t.Helper()
	d, err := deliveryorder.RestoreDeliveryOrder(id, "Ana Torres", "999888777",
		"Av. Arequipa 1234", "", "", status, 80.0, time.Now(), nil, nil, nil, nil)
	require.NoError(t, err)
	return d
}

func TestStartPreparationCommandHandler_Handle_MirrorsProxyTable(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewStartPreparationCommand(10)
	tbl := restoredProxyTable(t, 10, 5, table.StatusWaitingKitchen)
	d := restoredDeliveryOrder(t, 5, deliveryorder.StatusPending)

	tableRepo := new(MockTableRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, uint(10)).Return(tbl, nil).Once(),
		tableRepo.On("Update", mock.Anything, tbl).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	deliveryRepo := new(MockDeliveryOrderRepository)
	mirrorUoW := new(MockUoW)
	mock.InOrder(
		mirrorUoW.On("Begin", ctx).Return(nil).Once(),
		mirrorUoW.On("DeliveryOrderRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, uint(5)).Return(d, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		mirrorUoW.On("Commit", ctx).Return(nil).Once(),
		mirrorUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableUoWFactory)
	factory.On("Create").Return(uow).Once()
	mirrorFactory := new(MockDeliveryUoWFactory)
	mirrorFactory.On("Create").Return(mirrorUoW).Once()

	h := commands.NewStartPreparationCommandHandler(factory, discardMirror(mirrorFactory))
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, table.StatusPreparing, tbl.Status())
	assert.NotNil(t, tbl.PreparationAt())
	assert.Equal(t, deliveryorder.StatusPreparing, d.Status())
	tableRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	mirrorUoW.AssertExpectations(t)
}

func TestStartPreparationCommandHandler_Handle_MirrorFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewStartPreparationCommand(10)
	tbl := restoredProxyTable(t, 10, 5, table.StatusWaitingKitchen)

	tableRepo := new(MockTableRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, uint(10)).Return(tbl, nil).Once(),
		tableRepo.On("Update", mock.Anything, tbl).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	deliveryRepo := new(MockDeliveryOrderRepository)
	mirrorUoW := new(MockUoW)
	mock.InOrder(
		mirrorUoW.On("Begin", ctx).Return(nil).Once(),
		mirrorUoW.On("DeliveryOrderRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, uint(5)).
			Return(nil, errs.NewObjectNotFoundError("deliveryOrderId", uint(5))).Once(),
		mirrorUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableUoWFactory)
	factory.On("Create").Return(uow).Once()
	mirrorFactory := new(MockDeliveryUoWFactory)
	mirrorFactory.On("Create").Return(mirrorUoW).Once()

	h := commands.NewStartPreparationCommandHandler(factory, discardMirror(mirrorFactory))
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, table.StatusPreparing, tbl.Status())
	tableRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	mirrorUoW.AssertExpectations(t)
}

func TestStartPreparationCommandHandler_Handle_PhysicalTableSkipsMirror(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewStartPreparationCommand(1)
	tbl := restoredTable(t, 1, table.StatusWaitingKitchen)

	tableRepo := new(MockTableRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, uint(1)).Return(tbl, nil).Once(),
		tableRepo.On("Update", mock.Anything, tbl).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableUoWFactory)
	factory.On("Create").Return(uow).Once()
	mirrorFactory := new(MockDeliveryUoWFactory)

	h := commands.NewStartPreparationCommandHandler(factory, discardMirror(mirrorFactory))
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	mirrorFactory.AssertNotCalled(t, "Create")
	tableRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
