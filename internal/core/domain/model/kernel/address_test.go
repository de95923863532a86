package kernel_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("defaults country", func(t *testing.T) {
		a, err := kernel.NewAddress(" 1 Main St ", "Austin", "TX", "73301", "")

		require.NoError(t, err)
		assert.Equal(t, "1 Main St", a.Street)
		assert.Equal(t, kernel.DefaultCountry, a.Country)
		assert.False(t, a.IsZero())
	})

	t.Run("keeps given country", func(t *testing.T) {
		a, err := kernel.NewAddress("1 Main St", "Toronto", "ON", "M5H", "Canada")

		require.NoError(t, err)
		assert.Equal(t, "Canada", a.Country)
	})

	t.Run("reports every missing part", func(t *testing.T) {
		_, err := kernel.NewAddress("", "", "TX", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "address.street")
		assert.Contains(t, err.Error(), "address.city")
		assert.Contains(t, err.Error(), "address.zipCode")
		assert.NotContains(t, err.Error(), "address.state")
	})
}

func TestAddress_IsZero(t *testing.T) {
	assert.True(t, kernel.Address{}.IsZero())
}
