package queries

import (
	"errors"

	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
	"parceltrack/internal/pkg/listing"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery pages through deliveries, either all of them (admin) or the ones
// carried by the calling courier.
type ListDeliveriesQuery struct { //nolint:recvcheck //using for validation
	actor   services.Actor
	listing listing.Query
	ownOnly bool

	guard guard.ConstructorGuard
}

// NewListDeliveriesQuery validates its arguments and builds the query.
func NewListDeliveriesQuery(actor services.Actor, q listing.Query) (ListDeliveriesQuery, error) {
	return newListDeliveriesQuery(actor, q, false)
}

// NewListMyDeliveriesQuery validates its arguments and builds the query.
func NewListMyDeliveriesQuery(actor services.Actor, q listing.Query) (ListDeliveriesQuery, error) {
	return newListDeliveriesQuery(actor, q, true)
}

func newListDeliveriesQuery(actor services.Actor, q listing.Query, ownOnly bool) (ListDeliveriesQuery, error) {
	if err := actor.ID.Validate(); err != nil {
		return ListDeliveriesQuery{}, err
	}
	return ListDeliveriesQuery{actor: actor, listing: q, ownOnly: ownOnly, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

// Actor returns the user the request is evaluated for.
func (q ListDeliveriesQuery) Actor() services.Actor {
	return q.actor
}

// Listing returns the filter, sort and page parsed from the request.
func (q ListDeliveriesQuery) Listing() listing.Query {
	return q.listing
}

// OwnOnly returns whether the listing is scoped to the actor's own records.
func (q ListDeliveriesQuery) OwnOnly() bool {
	return q.ownOnly
}
