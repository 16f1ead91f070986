package queries_test

import (
	"testing"

	"picante/internal/core/application/usecases/queries"
	"picante/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetTableOrderQuery_ZeroTableID_ReturnsError(t *testing.T) {
	_, err := queries.NewGetTableOrderQuery(0)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetTableOrderQuery_ValidTableID_ExposesID(t *testing.T) {
	query, err := queries.NewGetTableOrderQuery(3)

	require.NoError(t, err)
	assert.Equal(t, uint(3), query.TableID())
	assert.NoError(t, query.Validate())
}

func TestNewGetDeliveryOrderQuery_ZeroID_ReturnsError(t *testing.T) {
	_, err := queries.NewGetDeliveryOrderQuery(0)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetDeliveryOrdersByStatusQuery_ParsesCaseInsensitively(t *testing.T) {
	query, err := queries.NewGetDeliveryOrdersByStatusQuery("dispatched")

	require.NoError(t, err)
	assert.Equal(t, "DISPATCHED", query.Status().String())
}

func TestNewGetDeliveryOrdersByStatusQuery_UnknownStatus_ReturnsError(t *testing.T) {
	_, err := queries.NewGetDeliveryOrdersByStatusQuery("TELEPORTED")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
