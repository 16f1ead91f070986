package commands

import (
	"context"
	"time"

	"picante/internal/core/domain/model/deliveryorder"
)

// StartPreparationCommandHandler moves a table to PREPARING and stamps the
// preparation clock. When the table is a delivery proxy, the PREPARING stage
// is mirrored onto the owning delivery order after the commit; the mirror is
// best-effort and never fails the operation.
type StartPreparationCommandHandler struct {
	uowFactory TableUoWFactory
	mirror     *DeliveryStatusMirror
}

// NewStartPreparationCommandHandler creates a handler for starting preparation.
func NewStartPreparationCommandHandler(
	uowFactory TableUoWFactory, mirror *DeliveryStatusMirror,
) StartPreparationCommandHandler {
	return StartPreparationCommandHandler{
		uowFactory: uowFactory,
		mirror:     mirror,
	}
}

// Handle processes the command inside one transaction, then mirrors the
// stage to the delivery order if the table fronts one.
func (h *StartPreparationCommandHandler) Handle(ctx context.Context, cmd StartPreparationCommand) error {
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

	tbl.StartPreparation(time.Now().UTC())
	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.mirror.Mirror(ctx, tbl.Name(), deliveryorder.StatusPreparing)
	return nil
}
