package commands

import (
	"context"
	"time"

	"picante/internal/core/domain/model/order"
)

// PayTableCommandHandler settles the WAITING_PAYMENT order of a table and
// returns the table to AVAILABLE with both service clocks cleared. A table
// without a waiting order cannot be paid.
type PayTableCommandHandler struct {
	uowFactory TableOrderUoWFactory
}

// NewPayTableCommandHandler creates a handler for settling bills.
func NewPayTableCommandHandler(uowFactory TableOrderUoWFactory) PayTableCommandHandler {
	return PayTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment inside one transaction.
func (h *PayTableCommandHandler) Handle(ctx context.Context, cmd PayTableCommand) error {
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

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.GetByTableAndStatus(ctx, tbl.ID(), order.StatusWaitingPayment)
	if err != nil {
		return err
	}

	if err = ord.MarkPaid(time.Now().UTC()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	tbl.Release()
	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
