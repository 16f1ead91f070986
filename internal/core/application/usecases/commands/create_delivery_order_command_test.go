package commands_test

import (
	"testing"

	"picante/internal/core/application/usecases/commands"
	"picante/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDeliveryOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateDeliveryOrderCommand(
		"Ana Torres", "999888777", "Av. Arequipa 1234", "Porton verde", "Sin aji",
		80.0, []commands.DeliveryLine{{ProductID: 1, Quantity: 2, UnitPrice: 40.0}},
	)
	require.NoError(t, err)
	assert.Equal(t, "Ana Torres", cmd.CustomerName())
	assert.InDelta(t, 80.0, cmd.TotalAmount(), 0.001)
	assert.Len(t, cmd.Lines(), 1)
}

func TestNewCreateDeliveryOrderCommand_ItemsAreOptional(t *testing.T) {
	cmd, err := commands.NewCreateDeliveryOrderCommand(
		"Ana Torres", "999888777", "Av. Arequipa 1234", "", "", 0, nil,
	)
	require.NoError(t, err)
	assert.Empty(t, cmd.Lines())
}

func TestNewCreateDeliveryOrderCommand_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name         string
		customerName string
		phone        string
		address      string
	}{
		{"empty customer name", "", "999888777", "Av. Arequipa 1234"},
		{"empty phone", "Ana Torres", "", "Av. Arequipa 1234"},
		{"empty address", "Ana Torres", "999888777", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateDeliveryOrderCommand(
				tt.customerName, tt.phone, tt.address, "", "", 0, nil,
			)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestNewUpdateDeliveryStatusCommand_ParsesCaseInsensitively(t *testing.T) {
	cmd, err := commands.NewUpdateDeliveryStatusCommand(5, "dispatched")
	require.NoError(t, err)
	assert.Equal(t, "DISPATCHED", cmd.Status().String())
}

func TestNewUpdateDeliveryStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateDeliveryStatusCommand(5, "TELEPORTED")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
