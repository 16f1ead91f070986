package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"picante/internal/core/domain/model/deliveryorder"
	"picante/internal/core/domain/model/order"
	"picante/internal/core/domain/model/table"
	"picante/internal/pkg/errs"
)

// SendDeliveryToKitchenCommandHandler converts a delivery order into a proxy
// table + kitchen order pair so the dine-in pipeline cooks it. The proxy
// table is looked up by its deterministic name and created only on the first
// routing; repeated calls for the same delivery order reuse it. The kitchen
// order carries the delivery order's total while its lines are re-priced
// from the catalog, so the two amounts may legitimately diverge. The
// delivery order itself moves to PREPARING and is never deleted here.
type SendDeliveryToKitchenCommandHandler struct {
	uowFactory UoWFactory
}

// NewSendDeliveryToKitchenCommandHandler creates a handler for kitchen routing.
func NewSendDeliveryToKitchenCommandHandler(uowFactory UoWFactory) SendDeliveryToKitchenCommandHandler {
	return SendDeliveryToKitchenCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the routing inside one transaction and returns a
// confirmation naming the created kitchen order.
func (h *SendDeliveryToKitchenCommandHandler) Handle(
	ctx context.Context, cmd SendDeliveryToKitchenCommand,
) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryOrderRepository()
	d, err := deliveryRepo.Get(ctx, cmd.DeliveryOrderID())
	if err != nil {
		return "", err
	}

	proxy, err := h.routeProxyTable(ctx, uow, d.ID(), now)
	if err != nil {
		return "", err
	}

	kitchenOrder, err := order.NewKitchenOrder(proxy.ID(), proxy.Name(), d.TotalAmount(), now)
	if err != nil {
		return "", err
	}

	productRepo := uow.ProductRepository()
	for _, line := range cmd.Lines() {
		p, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return "", err
		}
		if err = kitchenOrder.AddItem(p.ID(), p.Name(), line.Quantity, p.UnitPrice()); err != nil {
			return "", err
		}
	}

	if err = uow.OrderRepository().Add(ctx, kitchenOrder); err != nil {
		return "", err
	}

	if err = d.ChangeStatus(deliveryorder.StatusPreparing, now); err != nil {
		return "", err
	}
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return fmt.Sprintf("delivery order %d sent to kitchen as order %d", d.ID(), kitchenOrder.ID()), nil
}

// routeProxyTable finds the delivery order's proxy table by its deterministic
// name, creating it on the first routing, and places it in the kitchen queue
// with a fresh occupation clock.
func (h *SendDeliveryToKitchenCommandHandler) routeProxyTable(
	ctx context.Context, uow UoW, deliveryOrderID uint, now time.Time,
) (*table.Table, error) {
	tableRepo := uow.TableRepository()

	proxy, err := tableRepo.GetByName(ctx, table.ProxyName(deliveryOrderID))
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}

		proxy, err = table.NewProxyTable(deliveryOrderID)
		if err != nil {
			return nil, err
		}
		proxy.RouteToKitchen(now)
		if err = tableRepo.Add(ctx, proxy); err != nil {
			return nil, err
		}
		return proxy, nil
	}

	proxy.RouteToKitchen(now)
	if err = tableRepo.Update(ctx, proxy); err != nil {
		return nil, err
	}
	return proxy, nil
}
