package queries

import (
	"errors"

	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
	"parceltrack/internal/pkg/listing"
)

var ErrListParcelsQueryIsNotConstructed = errors.New("ListParcelsQuery must be created via NewListParcelsQuery constructor")

// ListParcelsQuery pages through parcels. With ownOnly set, or for a caller who may not
// see every parcel, the listing is narrowed to parcels the caller sent.
type ListParcelsQuery struct { //nolint:recvcheck //using for validation
	actor   services.Actor
	listing listing.Query
	ownOnly bool

	guard guard.ConstructorGuard
}

// NewListParcelsQuery validates its arguments and builds the query.
func NewListParcelsQuery(actor services.Actor, q listing.Query) (ListParcelsQuery, error) {
	return newListParcelsQuery(actor, q, false)
}

// NewListMyParcelsQuery lists the parcels the caller sent, whatever their role.
func NewListMyParcelsQuery(actor services.Actor, q listing.Query) (ListParcelsQuery, error) {
	return newListParcelsQuery(actor, q, true)
}

func newListParcelsQuery(actor services.Actor, q listing.Query, ownOnly bool) (ListParcelsQuery, error) {
	if err := actor.ID.Validate(); err != nil {
		return ListParcelsQuery{}, err
	}
	return ListParcelsQuery{actor: actor, listing: q, ownOnly: ownOnly, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

// Actor returns the user the request is evaluated for.
func (q ListParcelsQuery) Actor() services.Actor {
	return q.actor
}

// Listing returns the filter, sort and page parsed from the request.
func (q ListParcelsQuery) Listing() listing.Query {
	return q.listing
}

// OwnOnly returns whether the listing is scoped to the actor's own records.
func (q ListParcelsQuery) OwnOnly() bool {
	return q.ownOnly
}
