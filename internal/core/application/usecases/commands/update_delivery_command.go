package commands

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand reschedules a delivery or attaches its proof. Status changes go
// through UpdateDeliveryStatusCommand.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor             services.Actor
	deliveryID        kernel.UUID
	pickupDate        time.Time
	estimatedDelivery time.Time
	proof             *delivery.Proof

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand takes zero dates and a nil proof as "unchanged".
func NewUpdateDeliveryCommand(
	actor services.Actor,
	deliveryID kernel.UUID,
	pickupDate, estimatedDelivery time.Time,
	proof *delivery.Proof,
) (UpdateDeliveryCommand, error) {
	if err := errors.Join(actor.ID.Validate(), deliveryID.Validate()); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return UpdateDeliveryCommand{
		actor:             actor,
		deliveryID:        deliveryID,
		pickupDate:        pickupDate,
		estimatedDelivery: estimatedDelivery,
		proof:             proof,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// Actor returns the user the request is evaluated for.
func (c UpdateDeliveryCommand) Actor() services.Actor {
	return c.actor
}

// DeliveryID returns the targeted delivery identifier.
func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// PickupDate returns the pickup date, zero when not given.
func (c UpdateDeliveryCommand) PickupDate() time.Time {
	return c.pickupDate
}

// EstimatedDelivery returns the estimated delivery date, zero when not given.
func (c UpdateDeliveryCommand) EstimatedDelivery() time.Time {
	return c.estimatedDelivery
}

// Proof returns the delivery proof, nil when not given.
func (c UpdateDeliveryCommand) Proof() *delivery.Proof {
	return c.proof
}
