package queries

import (
	"errors"

	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetCourierStatsQueryIsNotConstructed = errors.New(
		"GetCourierStatsQuery must be created via NewGetCourierStatsQuery constructor",
	)
)

// GetCourierStatsQuery reports parcel counters per courier.
type GetCourierStatsQuery struct { //nolint:recvcheck //using for validation
	actor services.Actor

	guard guard.ConstructorGuard
}

// NewGetCourierStatsQuery validates its arguments and builds the query.
func NewGetCourierStatsQuery(actor services.Actor) (GetCourierStatsQuery, error) {
	if err := actor.ID.Validate(); err != nil {
		return GetCourierStatsQuery{}, err
	}
	return GetCourierStatsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatsQueryIsNotConstructed)
}

// Actor returns the user the request is evaluated for.
func (q GetCourierStatsQuery) Actor() services.Actor {
	return q.actor
}

// CourierStats counts the parcels assigned to one courier.
// DeliveryRate is delivered/assigned as a percentage with two decimals, 0 when nothing is assigned.
type CourierStats struct {
	Courier          CourierView
	AssignedParcels  int64
	DeliveredParcels int64
	InTransitParcels int64
	DeliveryRate     float64
}
