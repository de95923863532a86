package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand registers a parcel on behalf of its sender. Cost and estimated
// delivery are computed by the handler, never taken from the caller.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(senderID, recipient, details, "express")
//	if err != nil {
//	    return err
//	}
//	p, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	senderID  kernel.UUID
	recipient parcel.Recipient
	details   parcel.Details
	service   parcel.Service

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand checks the sender and service. An empty service means standard.
// Recipient and details are validated when the parcel is built.
func NewCreateParcelCommand(
	senderID kernel.UUID,
	recipient parcel.Recipient,
	details parcel.Details,
	service string,
) (CreateParcelCommand, error) {
	svc, svcErr := parcel.ParseService(service)
	if err := errors.Join(senderID.Validate(), svcErr); err != nil {
		return CreateParcelCommand{}, err
	}

	return CreateParcelCommand{
		senderID:  senderID,
		recipient: recipient,
		details:   details,
		service:   svc,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// SenderID returns the id of the user registering the parcel.
func (c CreateParcelCommand) SenderID() kernel.UUID {
	return c.senderID
}

// Recipient returns the recipient snapshot.
func (c CreateParcelCommand) Recipient() parcel.Recipient {
	return c.recipient
}

// Details returns the physical parcel details.
func (c CreateParcelCommand) Details() parcel.Details {
	return c.details
}

// Service returns the requested shipping service.
func (c CreateParcelCommand) Service() parcel.Service {
	return c.service
}
