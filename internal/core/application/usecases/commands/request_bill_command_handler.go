package commands

import (
	"context"
	"errors"

	"picante/internal/core/domain/model/order"
	"picante/internal/pkg/errs"
)

// RequestBillCommandHandler moves a table to WAITING_PAYMENT. When the table
// has an OPEN order, that order advances to WAITING_PAYMENT in the same
// transaction; a table without one (freed early, walk-in mistake) still gets
// its bill requested.
type RequestBillCommandHandler struct {
	uowFactory TableOrderUoWFactory
}

// NewRequestBillCommandHandler creates a handler for bill requests.
func NewRequestBillCommandHandler(uowFactory TableOrderUoWFactory) RequestBillCommandHandler {
	return RequestBillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command inside one transaction.
func (h *RequestBillCommandHandler) Handle(ctx context.Context, cmd RequestBillCommand) error {
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
	ord, err := orderRepo.GetByTableAndStatus(ctx, tbl.ID(), order.StatusOpen)
	switch {
	case err == nil:
		if err = ord.RequestPayment(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, ord); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// No open order for this table; only the table state changes.
	default:
		return err
	}

	tbl.RequestBill()
	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
