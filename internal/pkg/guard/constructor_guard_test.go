package guard_test

import (
	"errors"
	"testing"

	"parceltrack/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("parcel not constructed")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copies_keep_state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		cp := g

		require.NoError(t, cp.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type weight struct {
		kg    float64
		guard guard.ConstructorGuard
	}
	newWeight := func(kg float64) (weight, error) {
		if kg <= 0 {
			return weight{}, errors.New("weight must be positive")
		}
		return weight{kg: kg, guard: guard.NewConstructorGuard()}, nil
	}
	errWeight := errors.New("weight must be created via newWeight")

	w, err := newWeight(2.5)
	require.NoError(t, err)
	require.NoError(t, w.guard.Validate(errWeight))

	_, err = newWeight(0)
	require.Error(t, err)

	var zero weight
	assert.Equal(t, errWeight, zero.guard.Validate(errWeight))
}
