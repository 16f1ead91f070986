package commands

import (
	"context"
	"time"

	"picante/internal/core/domain/model/order"
)

// ConfirmTableOrderCommandHandler turns a table's pending selection into a
// priced order. Every line is re-priced from the catalog at confirmation
// time, so a client can never inject its own prices; the order total is the
// sum of the line subtotals. The table advances to READY_TO_KITCHEN and its
// occupation clock starts.
type ConfirmTableOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmTableOrderCommandHandler creates a handler for order confirmation.
func NewConfirmTableOrderCommandHandler(uowFactory UoWFactory) ConfirmTableOrderCommandHandler {
	return ConfirmTableOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation inside one transaction and returns the
// computed order total.
func (h *ConfirmTableOrderCommandHandler) Handle(
	ctx context.Context, cmd ConfirmTableOrderCommand,
) (float64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tableRepo := uow.TableRepository()
	tbl, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		return 0, err
	}

	ord, err := order.NewOrder(tbl.ID(), tbl.Name(), now)
	if err != nil {
		return 0, err
	}

	productRepo := uow.ProductRepository()
	for _, line := range cmd.Lines() {
		p, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return 0, err
		}
		if err = ord.AddItem(p.ID(), p.Name(), line.Quantity, p.UnitPrice()); err != nil {
			return 0, err
		}
	}
	ord.RecalculateTotal()

	if err = uow.OrderRepository().Add(ctx, ord); err != nil {
		return 0, err
	}

	tbl.ConfirmOrder(now)
	if err = tableRepo.Update(ctx, tbl); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return ord.TotalAmount(), nil
}
