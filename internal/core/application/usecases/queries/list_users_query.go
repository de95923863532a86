package queries

import (
	"errors"

	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
	"parceltrack/internal/pkg/listing"
)

var ErrListUsersQueryIsNotConstructed = errors.New("ListUsersQuery must be created via NewListUsersQuery constructor")

// ListUsersQuery pages through accounts. The listing is parsed against ports.UserListing.
type ListUsersQuery struct { //nolint:recvcheck //using for validation
	actor   services.Actor
	listing listing.Query

	guard guard.ConstructorGuard
}

// NewListUsersQuery validates its arguments and builds the query.
func NewListUsersQuery(actor services.Actor, q listing.Query) (ListUsersQuery, error) {
	if err := actor.ID.Validate(); err != nil {
		return ListUsersQuery{}, err
	}
	return ListUsersQuery{actor: actor, listing: q, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// Actor returns the user the request is evaluated for.
func (q ListUsersQuery) Actor() services.Actor {
	return q.actor
}

// Listing returns the filter, sort and page parsed from the request.
func (q ListUsersQuery) Listing() listing.Query {
	return q.listing
}
