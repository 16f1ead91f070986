package commands_test

import (
	"testing"

	"picante/internal/core/application/usecases/commands"
	"picante/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSendDeliveryToKitchenCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewSendDeliveryToKitchenCommand(5, []commands.KitchenLine{
		{ProductID: 1, Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), cmd.DeliveryOrderID())
	assert.Len(t, cmd.Lines(), 1)
}

func TestNewSendDeliveryToKitchenCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewSendDeliveryToKitchenCommand(5, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSendDeliveryToKitchenCommand_ZeroQuantity(t *testing.T) {
	_, err := commands.NewSendDeliveryToKitchenCommand(5, []commands.KitchenLine{
		{ProductID: 1, Quantity: 0},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
