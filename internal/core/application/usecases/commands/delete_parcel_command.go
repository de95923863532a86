package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
)

var ErrDeleteParcelCommandIsNotConstructed = errors.New(
	"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
)

// DeleteParcelCommand hard-deletes a parcel together with its history.
type DeleteParcelCommand struct { //nolint:recvcheck //using for validation
	actor    services.Actor
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteParcelCommand validates its arguments and builds the command.
func NewDeleteParcelCommand(actor services.Actor, parcelID kernel.UUID) (DeleteParcelCommand, error) {
	if err := errors.Join(actor.ID.Validate(), parcelID.Validate()); err != nil {
		return DeleteParcelCommand{}, err
	}
	return DeleteParcelCommand{actor: actor, parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

// Actor returns the user the request is evaluated for.
func (c DeleteParcelCommand) Actor() services.Actor {
	return c.actor
}

// ParcelID returns the targeted parcel identifier.
func (c DeleteParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
