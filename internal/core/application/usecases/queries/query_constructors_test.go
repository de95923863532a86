package queries_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name    string
		query   interface{ Validate() error }
		wantErr error
	}{
		{"couriers", queries.GetAllCouriersQuery{}, queries.ErrGetAllCouriersQueryIsNotConstructed},
		{"courier stats", queries.GetCourierStatsQuery{}, queries.ErrGetCourierStatsQueryIsNotConstructed},
		{"user", queries.GetUserQuery{}, queries.ErrGetUserQueryIsNotConstructed},
		{"users", queries.ListUsersQuery{}, queries.ErrListUsersQueryIsNotConstructed},
		{"parcel", queries.GetParcelQuery{}, queries.ErrGetParcelQueryIsNotConstructed},
		{"parcels", queries.ListParcelsQuery{}, queries.ErrListParcelsQueryIsNotConstructed},
		{"track", queries.TrackParcelQuery{}, queries.ErrTrackParcelQueryIsNotConstructed},
		{"delivery", queries.GetDeliveryQuery{}, queries.ErrGetDeliveryQueryIsNotConstructed},
		{"deliveries", queries.ListDeliveriesQuery{}, queries.ErrListDeliveriesQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.query.Validate(), tt.wantErr)
		})
	}
}

func TestQueries_RequireActor(t *testing.T) {
	anonymous := services.Actor{Role: user.Admin}
	q := listing.NewQuery(ports.ParcelListing)

	_, err := queries.NewGetAllCouriersQuery(anonymous)
	require.Error(t, err)
	_, err = queries.NewGetParcelQuery(anonymous, kernel.NewUUID())
	require.Error(t, err)
	_, err = queries.NewListMyParcelsQuery(anonymous, q)
	require.Error(t, err)
	_, err = queries.NewListMyDeliveriesQuery(anonymous, q)
	require.Error(t, err)
}

func TestNewListParcelsQuery_OwnOnly(t *testing.T) {
	actor := services.Actor{ID: kernel.NewUUID(), Role: user.Admin}
	q := listing.NewQuery(ports.ParcelListing)

	all, err := queries.NewListParcelsQuery(actor, q)
	require.NoError(t, err)
	assert.False(t, all.OwnOnly())

	mine, err := queries.NewListMyParcelsQuery(actor, q)
	require.NoError(t, err)
	assert.True(t, mine.OwnOnly())
	require.NoError(t, mine.Validate())
}

func TestNewTrackParcelQuery(t *testing.T) {
	q, err := queries.NewTrackParcelQuery("  PKG1700000000000042 ")
	require.NoError(t, err)
	assert.Equal(t, "PKG1700000000000042", q.TrackingNumber())

	_, err = queries.NewTrackParcelQuery(" ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
