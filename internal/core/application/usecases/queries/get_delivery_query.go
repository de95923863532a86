package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New("GetDeliveryQuery must be created via NewGetDeliveryQuery constructor")

// GetDeliveryQuery is the query for the get delivery use case.
type GetDeliveryQuery struct { //nolint:recvcheck //using for validation
	actor      services.Actor
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery validates its arguments and builds the query.
func NewGetDeliveryQuery(actor services.Actor, deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := errors.Join(actor.ID.Validate(), deliveryID.Validate()); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{actor: actor, deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// Actor returns the user the request is evaluated for.
func (q GetDeliveryQuery) Actor() services.Actor {
	return q.actor
}

// DeliveryID returns the targeted delivery identifier.
func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}
