package guard_test

import (
	"errors"
	"testing"

	"ordersvc/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used in a
// guarded value object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type money struct {
		amount int
		guard  guard.ConstructorGuard
	}

	errMoneyNotConstructed := errors.New("money must be created via newMoney")

	newMoney := func(amount int) (money, error) {
		if amount < 0 {
			return money{}, errors.New("amount cannot be negative")
		}
		return money{amount: amount, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_instance_passes_validation", func(t *testing.T) {
		m, err := newMoney(100)

		require.NoError(t, err)
		require.NoError(t, m.guard.Validate(errMoneyNotConstructed))
		assert.Equal(t, 100, m.amount)
	})

	t.Run("zero_value_instance_fails_validation", func(t *testing.T) {
		var m money

		err := m.guard.Validate(errMoneyNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errMoneyNotConstructed, err)
	})
}

func TestConstructorGuard_PassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	gCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, gCopy.Validate(testError))
}
