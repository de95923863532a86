package commands

import (
	"context"

	"parceltrack/internal/core/domain/services"
)

// DeleteParcelCommandHandler handles the delete parcel use case.
type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteParcelCommandHandler wires the handler to its dependencies.
func NewDeleteParcelCommandHandler(uowFactory ParcelUoWFactory, policy services.AccessPolicy) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{uowFactory: uowFactory, policy: policy}
}

// Handle runs the delete parcel use case.
func (h *DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.DeleteParcel, services.Resource{}); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ParcelRepository().Delete(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
