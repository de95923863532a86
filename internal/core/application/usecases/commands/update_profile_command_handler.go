package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/user"
)

// UpdateProfileCommandHandler handles the update profile use case.
type UpdateProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateProfileCommandHandler wires the handler to its dependencies.
func NewUpdateProfileCommandHandler(uowFactory UserUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{uowFactory: uowFactory}
}

// Handle returns the updated user. A taken email surfaces as ports.ErrDuplicateEmail.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*user.User, error) {
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

	if err = u.UpdateProfile(cmd.Changes().merge(u)); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
