package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand records the agent responsible for a parcel. The agent is any
// existing user and is unrelated to the courier carrying the parcel.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	actor    services.Actor
	parcelID kernel.UUID
	agentID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand validates its arguments and builds the command.
func NewAssignAgentCommand(actor services.Actor, parcelID, agentID kernel.UUID) (AssignAgentCommand, error) {
	var agentErr error
	if err := agentID.Validate(); err != nil {
		agentErr = errs.NewValueIsRequiredErrorWithCause("agentId", err)
	}
	if err := errors.Join(actor.ID.Validate(), parcelID.Validate(), agentErr); err != nil {
		return AssignAgentCommand{}, err
	}

	return AssignAgentCommand{
		actor:    actor,
		parcelID: parcelID,
		agentID:  agentID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// Actor returns the user the request is evaluated for.
func (c AssignAgentCommand) Actor() services.Actor {
	return c.actor
}

// ParcelID returns the targeted parcel identifier.
func (c AssignAgentCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// AgentID returns the agent to assign.
func (c AssignAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}
