package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/user"
)

// UpdateUserCommandHandler handles the update user use case.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserCommandHandler wires the handler to its dependencies.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{uowFactory: uowFactory}
}

// Handle runs the update user use case.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if !cmd.Changes().IsEmpty() {
		if err = u.UpdateProfile(cmd.Changes().merge(u)); err != nil {
			return nil, err
		}
	}
	if role := cmd.Role(); role != nil {
		if err = u.ChangeRole(*role); err != nil {
			return nil, err
		}
	}
	if active := cmd.IsActive(); active != nil {
		u.SetActive(*active)
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
