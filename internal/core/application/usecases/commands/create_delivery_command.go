package commands

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand hands a pending parcel to a courier.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(admin, parcelID, courierID, time.Time{})
//	if err != nil {
//	    return err
//	}
//	d, err := handler.Handle(ctx, cmd)
//	// the parcel is now picked_up and assigned to courierID
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor      services.Actor
	parcelID   kernel.UUID
	courierID  kernel.UUID
	pickupDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand validates identifiers. A zero pickupDate means now.
func NewCreateDeliveryCommand(
	actor services.Actor,
	parcelID, courierID kernel.UUID,
	pickupDate time.Time,
) (CreateDeliveryCommand, error) {
	var parcelErr, courierErr error
	if err := parcelID.Validate(); err != nil {
		parcelErr = errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	if err := courierID.Validate(); err != nil {
		courierErr = errs.NewValueIsRequiredErrorWithCause("courierId", err)
	}
	if err := errors.Join(actor.ID.Validate(), parcelErr, courierErr); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return CreateDeliveryCommand{
		actor:      actor,
		parcelID:   parcelID,
		courierID:  courierID,
		pickupDate: pickupDate,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// Actor returns the user the request is evaluated for.
func (c CreateDeliveryCommand) Actor() services.Actor {
	return c.actor
}

// ParcelID returns the targeted parcel identifier.
func (c CreateDeliveryCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CourierID returns the courier identifier.
func (c CreateDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// PickupDate returns the pickup date, zero when not given.
func (c CreateDeliveryCommand) PickupDate() time.Time {
	return c.pickupDate
}
