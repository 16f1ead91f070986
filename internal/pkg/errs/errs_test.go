package errs_test

import (
	"errors"
	"testing"

	"picante/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("tableId", "12")

		assert.Equal(t, "tableId", err.ParamName)
		assert.Equal(t, "12", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 12", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("productId", "7", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: productId, ID is: 7 (cause: record not found)",
			err.Error())
	})

	t.Run("numeric id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("tableId", uint(3))

		assert.Equal(t, "object not found: 3", err.Error())
	})

	t.Run("numeric id with cause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", uint(42), cause)

		assert.Equal(t,
			"object not found: param is: orderId, ID is: 42 (cause: record not found)",
			err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customerName")

	assert.Equal(t, "customerName", err.ParamName)
	assert.Equal(t, "value is required: customerName", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("FLYING is not a delivery status")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "value is invalid: status (cause: FLYING is not a delivery status)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100)

	assert.Equal(t, "value is out of range: 0 is quantity, min value is 1, max value is 100", err.Error())
	assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
}

func TestStateConflictError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewStateConflictError("cancel order", "PREPARING")

		assert.Equal(t, "cancel order", err.Operation)
		assert.Equal(t, "PREPARING", err.BlockingStatus)
		assert.Equal(t, "state conflict: cannot cancel order while status is PREPARING", err.Error())
		assert.Equal(t, errs.ErrStateConflict, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("kitchen already cooking")
		err := errs.NewStateConflictErrorWithCause("cancel order", "READY", cause)

		assert.Equal(t,
			"state conflict: cannot cancel order while status is READY (cause: kitchen already cooking)",
			err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "3"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsRequiredError("phone"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", -1, 1, 100), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewStateConflictError("cancel order", "SERVING"), errs.ErrStateConflict)
}

func TestSanitizeNewlines(t *testing.T) {
	err := errs.NewObjectNotFoundError("tableName", "DELIVERY\n#9")

	assert.Contains(t, err.Error(), "DELIVERY #9")
	assert.NotContains(t, err.Error(), "\n")
}
