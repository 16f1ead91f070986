package commands

import (
	"context"
	"log/slog"
	"time"

	"picante/internal/core/domain/model/deliveryorder"
	"picante/internal/core/domain/model/table"
)

// DeliveryStatusMirror propagates kitchen stage changes on a delivery proxy
// table back onto the owning delivery order. The propagation is advisory:
// it runs in its own unit of work after the primary transaction has
// committed, and any failure is logged and swallowed so kitchen staff are
// never blocked by a delivery-subsystem fault. A lost mirror is picked up by
// the next stage transition.
type DeliveryStatusMirror struct {
	uowFactory DeliveryUoWFactory
	logger     *slog.Logger
}

// NewDeliveryStatusMirror creates a mirror bound to its own transaction
// factory and logger.
func NewDeliveryStatusMirror(uowFactory DeliveryUoWFactory, logger *slog.Logger) *DeliveryStatusMirror {
	return &DeliveryStatusMirror{
		uowFactory: uowFactory,
		logger:     logger.With("component", "delivery-status-mirror"),
	}
}

// Mirror reflects a kitchen stage onto the delivery order encoded in the
// table name. Non-proxy tables are ignored. Never returns an error.
func (m *DeliveryStatusMirror) Mirror(ctx context.Context, tableName string, status deliveryorder.Status) {
	deliveryOrderID, ok := table.ExtractDeliveryOrderID(tableName)
	if !ok {
		return
	}

	if err := m.apply(ctx, deliveryOrderID, status); err != nil {
		m.logger.WarnContext(ctx, "delivery status mirror failed",
			"deliveryOrderId", deliveryOrderID,
			"status", status.String(),
			"error", err)
	}
}

func (m *DeliveryStatusMirror) apply(ctx context.Context, deliveryOrderID uint, status deliveryorder.Status) error {
	uow := m.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryOrderRepository()
	d, err := deliveryRepo.Get(ctx, deliveryOrderID)
	if err != nil {
		return err
	}

	if err = d.ChangeStatus(status, time.Now().UTC()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
