package commands

import (
	"context"
	"errors"

	"picante/internal/core/domain/model/order"
	"picante/internal/core/ports"
	"picante/internal/pkg/errs"
)

// CancelTableOrderCommandHandler aborts a table's order. Cancellation is only
// allowed while the order has not reached the stove (OCCUPIED,
// READY_TO_KITCHEN, WAITING_KITCHEN); afterwards it fails with a state
// conflict and leaves table and order untouched. A successful cancel deletes
// the order row outright and returns the table to AVAILABLE.
type CancelTableOrderCommandHandler struct {
	uowFactory TableOrderUoWFactory
}

// NewCancelTableOrderCommandHandler creates a handler for order cancellation.
func NewCancelTableOrderCommandHandler(uowFactory TableOrderUoWFactory) CancelTableOrderCommandHandler {
	return CancelTableOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation inside one transaction.
func (h *CancelTableOrderCommandHandler) Handle(ctx context.Context, cmd CancelTableOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tableRepo := uow.TableRepository()
	tbl, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		return err
	}

	if err = tbl.Cancel(); err != nil {
		return err
	}

	if err = h.deleteActiveOrder(ctx, uow.OrderRepository(), tbl.ID()); err != nil {
		return err
	}

	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// deleteActiveOrder removes the table's OPEN order, or failing that its
// WAITING_PAYMENT order. A table without either is fine; the cancel then
// only releases the table.
func (h *CancelTableOrderCommandHandler) deleteActiveOrder(
	ctx context.Context, orderRepo ports.OrderRepository, tableID uint,
) error {
	for _, status := range []order.Status{order.StatusOpen, order.StatusWaitingPayment} {
		ord, err := orderRepo.GetByTableAndStatus(ctx, tableID, status)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return err
		}
		return orderRepo.Delete(ctx, ord.ID())
	}
	return nil
}
