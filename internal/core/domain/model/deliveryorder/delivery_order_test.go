package deliveryorder_test

import (
	"testing"
	"time"

	"picante/internal/core/domain/model/deliveryorder"
	"picante/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)

	t.Run("creates_pending_order", func(t *testing.T) {
		d, err := deliveryorder.NewDeliveryOrder(
			"Ana Torres", "+51 999 888 777", "Av. Arequipa 1234",
			"Edificio azul, dpto 501", "sin ají", 76.0, now)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, deliveryorder.StatusPending, d.Status())
		assert.Equal(t, "Ana Torres", d.CustomerName())
		assert.InDelta(t, 76.0, d.TotalAmount(), 0.001)
		assert.Equal(t, now, d.CreatedAt())
		assert.Nil(t, d.ReadyAt())
		assert.Nil(t, d.DispatchedAt())
		assert.Nil(t, d.DeliveredAt())
	})

	t.Run("requires_customer_contact_fields", func(t *testing.T) {
		_, err := deliveryorder.NewDeliveryOrder("", "999", "Av. A", "", "", 0, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = deliveryorder.NewDeliveryOrder("Ana", "", "Av. A", "", "", 0, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = deliveryorder.NewDeliveryOrder("Ana", "999", "", "", "", 0, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var d deliveryorder.DeliveryOrder
		require.ErrorIs(t, d.Validate(), deliveryorder.ErrDeliveryOrderIsNotConstructed)
	})
}

func TestDeliveryOrder_ChangeStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)

	newOrder := func(t *testing.T) *deliveryorder.DeliveryOrder {
		t.Helper()
		d, err := deliveryorder.NewDeliveryOrder("Ana", "999", "Av. A", "", "", 50, now)
		require.NoError(t, err)
		return d
	}

	t.Run("stamps_stage_timestamps", func(t *testing.T) {
		d := newOrder(t)

		readyAt := now.Add(20 * time.Minute)
		require.NoError(t, d.ChangeStatus(deliveryorder.StatusReady, readyAt))
		require.NotNil(t, d.ReadyAt())
		assert.Equal(t, readyAt, *d.ReadyAt())

		dispatchedAt := readyAt.Add(5 * time.Minute)
		require.NoError(t, d.ChangeStatus(deliveryorder.StatusDispatched, dispatchedAt))
		require.NotNil(t, d.DispatchedAt())
		assert.Equal(t, dispatchedAt, *d.DispatchedAt())

		deliveredAt := dispatchedAt.Add(25 * time.Minute)
		require.NoError(t, d.ChangeStatus(deliveryorder.StatusDelivered, deliveredAt))
		require.NotNil(t, d.DeliveredAt())
		assert.Equal(t, deliveredAt, *d.DeliveredAt())
	})

	t.Run("restamps_on_repeated_transition", func(t *testing.T) {
		d := newOrder(t)

		first := now.Add(20 * time.Minute)
		require.NoError(t, d.ChangeStatus(deliveryorder.StatusReady, first))

		retry := first.Add(3 * time.Minute)
		require.NoError(t, d.ChangeStatus(deliveryorder.StatusReady, retry))
		assert.Equal(t, retry, *d.ReadyAt(), "retried transitions refresh the stamp")
	})

	t.Run("preparing_has_no_stage_timestamp", func(t *testing.T) {
		d := newOrder(t)

		require.NoError(t, d.ChangeStatus(deliveryorder.StatusPreparing, now))
		assert.Equal(t, deliveryorder.StatusPreparing, d.Status())
		assert.Nil(t, d.ReadyAt())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		d := newOrder(t)
		require.ErrorIs(t, d.ChangeStatus(deliveryorder.Status("FLYING"), now), errs.ErrValueIsInvalid)
	})
}

func TestDeliveryOrder_AddItem(t *testing.T) {
	now := time.Now()
	d, err := deliveryorder.NewDeliveryOrder("Ana", "999", "Av. A", "", "", 100, now)
	require.NoError(t, err)

	t.Run("keeps_caller_supplied_total", func(t *testing.T) {
		require.NoError(t, d.AddItem(1, "Ceviche", 2, 32.0))
		assert.InDelta(t, 100.0, d.TotalAmount(), 0.001, "total is caller-trusted, not recomputed")

		items := d.Items()
		require.Len(t, items, 1)
		assert.InDelta(t, 64.0, items[0].Subtotal(), 0.001)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		require.ErrorIs(t, d.AddItem(1, "Ceviche", 0, 32.0), errs.ErrValueIsInvalid)
	})
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    deliveryorder.Status
		wantErr bool
	}{
		{"PENDING", deliveryorder.StatusPending, false},
		{"preparing", deliveryorder.StatusPreparing, false},
		{"Ready", deliveryorder.StatusReady, false},
		{" dispatched ", deliveryorder.StatusDispatched, false},
		{"DELIVERED", deliveryorder.StatusDelivered, false},
		{"cancelled", deliveryorder.StatusCancelled, false},
		{"FLYING", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := deliveryorder.ParseStatus(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRestoreDeliveryOrder(t *testing.T) {
	now := time.Now()
	readyAt := now.Add(15 * time.Minute)
	items := []deliveryorder.Item{
		deliveryorder.RestoreItem(1, 3, "Aji de Gallina", 2, 28.0, 56.0),
	}

	d, err := deliveryorder.RestoreDeliveryOrder(
		8, "Ana", "999", "Av. A", "ref", "notes", deliveryorder.StatusReady,
		56.0, now, &readyAt, nil, nil, items)

	require.NoError(t, err)
	assert.Equal(t, uint(8), d.ID())
	assert.Equal(t, deliveryorder.StatusReady, d.Status())
	assert.Equal(t, &readyAt, d.ReadyAt())
	require.Len(t, d.Items(), 1)

	_, err = deliveryorder.RestoreDeliveryOrder(
		8, "Ana", "999", "Av. A", "", "", deliveryorder.Status("VOID"), 0, now, nil, nil, nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
