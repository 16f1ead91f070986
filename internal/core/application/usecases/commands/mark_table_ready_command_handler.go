package commands

import (
	"context"

	"picante/internal/core/domain/model/deliveryorder"
)

// MarkTableReadyCommandHandler moves a table to READY. Proxy tables mirror
// the READY stage onto their delivery order after the commit.
type MarkTableReadyCommandHandler struct {
	uowFactory TableUoWFactory
	mirror     *DeliveryStatusMirror
}

// NewMarkTableReadyCommandHandler creates a handler for marking tables ready.
func NewMarkTableReadyCommandHandler(
	uowFactory TableUoWFactory, mirror *DeliveryStatusMirror,
) MarkTableReadyCommandHandler {
	return MarkTableReadyCommandHandler{
		uowFactory: uowFactory,
		mirror:     mirror,
	}
}

// Handle processes the command inside one transaction, then mirrors the
// stage to the delivery order if the table fronts one.
func (h *MarkTableReadyCommandHandler) Handle(ctx context.Context, cmd MarkTableReadyCommand) error {
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

	tbl.MarkReady()
	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.mirror.Mirror(ctx, tbl.Name(), deliveryorder.StatusReady)
	return nil
}
