package commands

import (
	"context"
)

// FreeTableCommandHandler resets a table to AVAILABLE and clears its clocks.
type FreeTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewFreeTableCommandHandler creates a handler for freeing tables.
func NewFreeTableCommandHandler(uowFactory TableUoWFactory) FreeTableCommandHandler {
	return FreeTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command inside one transaction.
func (h *FreeTableCommandHandler) Handle(ctx context.Context, cmd FreeTableCommand) error {
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

	tbl.Release()
	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
