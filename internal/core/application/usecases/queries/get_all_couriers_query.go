package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetAllCouriersQueryIsNotConstructed = errors.New(
		"GetAllCouriersQuery must be created via NewGetAllCouriersQuery constructor",
	)
)

// GetAllCouriersQuery lists every courier account, active or not.
//
// Example:
//
//	query, err := NewGetAllCouriersQuery(actor)
//	handler := NewGetAllCouriersQueryHandler(db, services.NewAccessPolicy())
//
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve couriers: %w", err)
//	}
type GetAllCouriersQuery struct { //nolint:recvcheck //using for validation
	actor services.Actor

	guard guard.ConstructorGuard
}

// NewGetAllCouriersQuery validates its arguments and builds the query.
func NewGetAllCouriersQuery(actor services.Actor) (GetAllCouriersQuery, error) {
	if err := actor.ID.Validate(); err != nil {
		return GetAllCouriersQuery{}, err
	}
	return GetAllCouriersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

// Actor returns the user the request is evaluated for.
func (q GetAllCouriersQuery) Actor() services.Actor {
	return q.actor
}

// CourierView is the courier read model. It never carries the password hash.
type CourierView struct {
	ID       kernel.UUID
	Name     string
	Email    string
	Phone    string
	IsActive bool
}
