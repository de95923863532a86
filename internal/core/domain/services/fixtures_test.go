package services_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), "PKG42", kernel.NewUUID(),
		parcel.Recipient{
			Name:    "Bo Diaz",
			Email:   "bo@example.com",
			Phone:   "555-0101",
			Address: kernel.Address{Street: "1 Elm", City: "Austin", State: "TX", ZipCode: "73301"},
		},
		parcel.Details{Weight: 3, Dimensions: parcel.Dimensions{Length: 1, Width: 1, Height: 1}, Description: "Mug"},
		parcel.Shipping{Service: parcel.Express, Cost: 20.49, EstimatedDelivery: now.AddDate(0, 0, 2)},
		now)
	require.NoError(t, err)
	return p
}

func newTestUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), user.Profile{Name: "Cy Park", Email: "cy@example.com"}, "hash", role, now)
	require.NoError(t, err)
	return u
}
