package commands

import (
	"context"
)

// OccupyTableCommandHandler handles seating guests at a table. The table
// moves to OCCUPIED with the occupation clock cleared; the clock starts only
// when the order is confirmed.
type OccupyTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewOccupyTableCommandHandler creates a handler for table occupation.
func NewOccupyTableCommandHandler(uowFactory TableUoWFactory) OccupyTableCommandHandler {
	return OccupyTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the occupy command inside one transaction.
func (h *OccupyTableCommandHandler) Handle(ctx context.Context, cmd OccupyTableCommand) error {
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

	tbl.Occupy()
	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
