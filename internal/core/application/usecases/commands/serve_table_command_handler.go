package commands

import (
	"context"
)

// ServeTableCommandHandler moves a table to SERVING.
type ServeTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewServeTableCommandHandler creates a handler for serving tables.
func NewServeTableCommandHandler(uowFactory TableUoWFactory) ServeTableCommandHandler {
	return ServeTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command inside one transaction.
func (h *ServeTableCommandHandler) Handle(ctx context.Context, cmd ServeTableCommand) error {
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

	tbl.Serve()
	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
