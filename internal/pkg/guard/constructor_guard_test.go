package guard_test

import (
	"errors"
	"testing"

	"picante/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates enforcing constructor usage
// on a domain value object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type receipt struct {
		total float64
		guard guard.ConstructorGuard
	}

	errReceiptNotConstructed := errors.New("receipt must be created via newReceipt")

	newReceipt := func(total float64) (receipt, error) {
		if total < 0 {
			return receipt{}, errors.New("total cannot be negative")
		}
		return receipt{total: total, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(r receipt) error {
		return r.guard.Validate(errReceiptNotConstructed)
	}

	t.Run("constructed_receipt_is_valid", func(t *testing.T) {
		r, err := newReceipt(95.0)
		require.NoError(t, err)
		require.NoError(t, validate(r))
		assert.InDelta(t, 95.0, r.total, 0.001)
	})

	t.Run("zero_value_receipt_fails_validation", func(t *testing.T) {
		var r receipt
		err := validate(r)
		require.Error(t, err)
		assert.Equal(t, errReceiptNotConstructed, err)
	})
}
