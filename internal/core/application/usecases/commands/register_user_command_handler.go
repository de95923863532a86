package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// Session is an authenticated user together with a freshly issued bearer token.
type Session struct {
	User  *user.User
	Token string
}

// RegisterUserCommandHandler creates the account and signs the new user in.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
}

// NewRegisterUserCommandHandler wires the handler to its dependencies.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle rejects an email that is already registered with ports.ErrDuplicateEmail.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (Session, error) {
	if err := cmd.Validate(); err != nil {
		return Session{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Session{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByEmail(ctx, cmd.Profile().Email)
	switch {
	case err == nil:
		return Session{}, fmt.Errorf("%w: %w", ports.ErrDuplicateEmail, errs.NewValueIsInvalidError("email"))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return Session{}, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return Session{}, err
	}

	u, err := user.NewUser(kernel.NewUUID(), cmd.Profile(), hash, cmd.Role(), time.Now())
	if err != nil {
		return Session{}, err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return Session{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Session{}, err
	}

	token, err := h.tokens.Issue(u.ID())
	if err != nil {
		return Session{}, err
	}

	return Session{User: u, Token: token}, nil
}
