package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is a courier's report from the field.
//
// Example:
//
//	cmd, err := NewUpdateDeliveryStatusCommand(courier, deliveryID, delivery.StatusUpdate{
//	    Status:   delivery.Delivered,
//	    Location: "Front door",
//	    Proof:    &delivery.Proof{RecipientName: "Bo"},
//	})
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	actor      services.Actor
	deliveryID kernel.UUID
	update     delivery.StatusUpdate

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand validates its arguments and builds the command.
func NewUpdateDeliveryStatusCommand(
	actor services.Actor,
	deliveryID kernel.UUID,
	update delivery.StatusUpdate,
) (UpdateDeliveryStatusCommand, error) {
	if err := errors.Join(
		actor.ID.Validate(),
		deliveryID.Validate(),
		update.Status.Validate(),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		actor:      actor,
		deliveryID: deliveryID,
		update:     update,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// Actor returns the user the request is evaluated for.
func (c UpdateDeliveryStatusCommand) Actor() services.Actor {
	return c.actor
}

// DeliveryID returns the targeted delivery identifier.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Update returns the courier report.
func (c UpdateDeliveryStatusCommand) Update() delivery.StatusUpdate {
	return c.update
}
