package commands

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateParcelCommandIsNotConstructed = errors.New(
	"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
)

// ParcelChanges is a partial parcel update. Nil fields keep their current value.
type ParcelChanges struct {
	Recipient       *parcel.Recipient
	Details         *parcel.Details
	Service         *parcel.Service
	Status          *parcel.Status
	Location        string
	Notes           string
	PaymentStatus   *parcel.PaymentStatus
	AssignedCourier *kernel.UUID
}

// OnlyStatus reports whether the status, with its location and notes, is all that changes.
func (c ParcelChanges) OnlyStatus() bool {
	return c.Recipient == nil && c.Details == nil && c.Service == nil &&
		c.PaymentStatus == nil && c.AssignedCourier == nil
}

func (c ParcelChanges) requote() bool {
	return c.Details != nil || c.Service != nil
}

// UpdateParcelCommand is the generic parcel edit. Admins may change anything, including
// overriding the status; the assigned courier may only move the status.
type UpdateParcelCommand struct { //nolint:recvcheck //using for validation
	actor    services.Actor
	parcelID kernel.UUID
	changes  ParcelChanges

	guard guard.ConstructorGuard
}

// NewUpdateParcelCommand validates its arguments and builds the command.
func NewUpdateParcelCommand(actor services.Actor, parcelID kernel.UUID, changes ParcelChanges) (UpdateParcelCommand, error) {
	var problems []error
	problems = append(problems, actor.ID.Validate(), parcelID.Validate())
	if changes.Service != nil {
		problems = append(problems, changes.Service.Validate())
	}
	if changes.Status != nil {
		problems = append(problems, changes.Status.Validate())
	}
	if changes.PaymentStatus != nil {
		problems = append(problems, changes.PaymentStatus.Validate())
	}
	if changes.AssignedCourier != nil {
		problems = append(problems, changes.AssignedCourier.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return UpdateParcelCommand{}, err
	}

	changes.Location = strings.TrimSpace(changes.Location)
	return UpdateParcelCommand{
		actor:    actor,
		parcelID: parcelID,
		changes:  changes,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

// Actor returns the user the request is evaluated for.
func (c UpdateParcelCommand) Actor() services.Actor {
	return c.actor
}

// ParcelID returns the targeted parcel identifier.
func (c UpdateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Changes returns the fields to change.
func (c UpdateParcelCommand) Changes() ParcelChanges {
	return c.changes
}
