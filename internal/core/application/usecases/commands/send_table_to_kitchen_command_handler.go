package commands

import (
	"context"
)

// SendTableToKitchenCommandHandler moves a table to WAITING_KITCHEN.
type SendTableToKitchenCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewSendTableToKitchenCommandHandler creates a handler for queuing tables
// into the kitchen.
func NewSendTableToKitchenCommandHandler(uowFactory TableUoWFactory) SendTableToKitchenCommandHandler {
	return SendTableToKitchenCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command inside one transaction.
func (h *SendTableToKitchenCommandHandler) Handle(ctx context.Context, cmd SendTableToKitchenCommand) error {
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

	tbl.SendToKitchen()
	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
