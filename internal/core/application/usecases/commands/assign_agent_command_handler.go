package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
)

// AssignAgentCommandHandler handles the assign agent use case.
type AssignAgentCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     services.AccessPolicy
}

// NewAssignAgentCommandHandler wires the handler to its dependencies.
func NewAssignAgentCommandHandler(uowFactory ParcelUoWFactory, policy services.AccessPolicy) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{uowFactory: uowFactory, policy: policy}
}

// Handle returns ErrObjectNotFound when either the parcel or the agent does not exist.
func (h *AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.AssignAgent, services.Resource{}); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	p, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	agent, err := uow.UserRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return nil, err
	}

	if err = p.AssignAgent(agent.ID(), time.Now()); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
