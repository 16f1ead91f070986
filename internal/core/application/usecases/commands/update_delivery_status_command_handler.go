package commands

import (
	"context"
	"time"

	"picante/internal/core/domain/model/deliveryorder"
)

// UpdateDeliveryStatusCommandHandler changes a delivery order's status and
// stamps the stage timestamp for READY, DISPATCHED, and DELIVERED. Repeating
// a transition re-stamps the timestamp; retried transitions are expected.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery status updates.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change inside one transaction and returns the
// refreshed delivery order.
func (h *UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateDeliveryStatusCommand,
) (*deliveryorder.DeliveryOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryOrderRepository()
	d, err := deliveryRepo.Get(ctx, cmd.DeliveryOrderID())
	if err != nil {
		return nil, err
	}

	if err = d.ChangeStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
