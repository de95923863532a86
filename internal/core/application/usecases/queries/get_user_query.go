package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New("GetUserQuery must be created via NewGetUserQuery constructor")

// GetUserQuery loads one account. The current user is read with their own id.
type GetUserQuery struct { //nolint:recvcheck //using for validation
	actor  services.Actor
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserQuery validates its arguments and builds the query.
func NewGetUserQuery(actor services.Actor, userID kernel.UUID) (GetUserQuery, error) {
	if err := errors.Join(actor.ID.Validate(), userID.Validate()); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{actor: actor, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// Actor returns the user the request is evaluated for.
func (q GetUserQuery) Actor() services.Actor {
	return q.actor
}

// UserID returns the targeted user identifier.
func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}
