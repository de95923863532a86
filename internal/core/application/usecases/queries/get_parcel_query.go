package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New("GetParcelQuery must be created via NewGetParcelQuery constructor")

// GetParcelQuery is the query for the get parcel use case.
type GetParcelQuery struct { //nolint:recvcheck //using for validation
	actor    services.Actor
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery validates its arguments and builds the query.
func NewGetParcelQuery(actor services.Actor, parcelID kernel.UUID) (GetParcelQuery, error) {
	if err := errors.Join(actor.ID.Validate(), parcelID.Validate()); err != nil {
		return GetParcelQuery{}, err
	}
	return GetParcelQuery{actor: actor, parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// Actor returns the user the request is evaluated for.
func (q GetParcelQuery) Actor() services.Actor {
	return q.actor
}

// ParcelID returns the targeted parcel identifier.
func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}
