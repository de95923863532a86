package user_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() user.Profile {
	return user.Profile{Name: "Ann Lee", Email: " Ann@Example.COM ", Phone: "555-0100"}
}

func TestNewUser(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("normalizes email and activates", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), validProfile(), "hash", user.Customer, now)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "ann@example.com", u.Email())
		assert.Equal(t, "Ann Lee", u.Name())
		assert.True(t, u.IsActive())
		assert.Equal(t, now, u.CreatedAt())
		assert.Nil(t, u.Address())
	})

	t.Run("joins every validation error", func(t *testing.T) {
		_, err := user.NewUser(kernel.UUID{}, user.Profile{Email: "nope"}, "", user.Role("boss"), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "password")
		assert.Contains(t, err.Error(), "role")
	})

	t.Run("rejects incomplete address", func(t *testing.T) {
		p := validProfile()
		p.Address = &kernel.Address{Street: "1 Main"}

		_, err := user.NewUser(kernel.NewUUID(), p, "hash", user.Customer, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUser_ZeroValueIsInvalid(t *testing.T) {
	var u *user.User
	require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	require.ErrorIs(t, (&user.User{}).Validate(), user.ErrUserIsNotConstructed)
}

func TestUser_UpdateProfile(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), validProfile(), "hash", user.Customer, time.Now())
	require.NoError(t, err)

	addr, err := kernel.NewAddress("1 Main", "Austin", "TX", "73301", "")
	require.NoError(t, err)

	require.NoError(t, u.UpdateProfile(user.Profile{Name: "Ann B", Email: "ann.b@example.com", Address: &addr}))
	assert.Equal(t, "Ann B", u.Name())
	assert.Equal(t, "ann.b@example.com", u.Email())
	assert.Equal(t, "Austin", u.Address().City)

	require.Error(t, u.UpdateProfile(user.Profile{Name: "", Email: "x@y"}))
	assert.Equal(t, "Ann B", u.Name(), "failed update leaves the user untouched")
}

func TestUser_RoleAndActivity(t *testing.T) {
	u, err := user.RestoreUser(kernel.NewUUID(), validProfile(), "hash", user.Courier, false, time.Now())
	require.NoError(t, err)

	assert.False(t, u.IsActive())
	assert.True(t, u.HasRole(user.Courier, user.Admin))
	assert.False(t, u.HasRole(user.Customer))

	require.NoError(t, u.ChangeRole(user.Admin))
	assert.Equal(t, user.Admin, u.Role())
	require.Error(t, u.ChangeRole("root"))

	u.SetActive(true)
	assert.True(t, u.IsActive())
}

func TestParseRole(t *testing.T) {
	r, err := user.ParseRole(" Courier ")
	require.NoError(t, err)
	assert.Equal(t, user.Courier, r)
	assert.True(t, r.IsStaff())
	assert.False(t, user.Customer.IsStaff())

	_, err = user.ParseRole("superuser")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
