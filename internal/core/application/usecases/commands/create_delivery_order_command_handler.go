package commands

import (
	"context"
	"time"

	"picante/internal/core/domain/model/deliveryorder"
)

// CreateDeliveryOrderCommandHandler registers a new PENDING delivery order.
// Each line's product reference is resolved against the catalog for the name
// snapshot; an unknown product aborts the whole creation. The created order
// stays outside the kitchen queue until it is explicitly sent there.
type CreateDeliveryOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryOrderCommandHandler creates a handler for delivery order creation.
func NewCreateDeliveryOrderCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryOrderCommandHandler {
	return CreateDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation inside one transaction and returns the
// persisted delivery order.
func (h *CreateDeliveryOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateDeliveryOrderCommand,
) (*deliveryorder.DeliveryOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := deliveryorder.NewDeliveryOrder(
		cmd.CustomerName(), cmd.Phone(), cmd.Address(),
		cmd.Reference(), cmd.Notes(), cmd.TotalAmount(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	for _, line := range cmd.Lines() {
		p, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if err = d.AddItem(p.ID(), p.Name(), line.Quantity, line.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err = uow.DeliveryOrderRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
