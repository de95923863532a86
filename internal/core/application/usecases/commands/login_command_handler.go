package commands

import (
	"context"
	"errors"
	"fmt"

	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for an unknown email, a wrong password or a deactivated
// account alike.
var ErrInvalidCredentials = errors.New("Invalid credentials")

// LoginCommandHandler handles the login use case.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
}

// NewLoginCommandHandler wires the handler to its dependencies.
func NewLoginCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle only reads, so it runs without a transaction.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (Session, error) {
	if err := cmd.Validate(); err != nil {
		return Session{}, err
	}

	denied := fmt.Errorf("%w: %w", ErrInvalidCredentials, errs.NewAccessDeniedError("login", "invalid credentials"))

	u, err := h.uowFactory.Create().UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Session{}, denied
	}
	if err != nil {
		return Session{}, err
	}

	if err = h.hasher.Compare(u.PasswordHash(), cmd.Password()); err != nil {
		if errors.Is(err, ports.ErrPasswordMismatch) {
			return Session{}, denied
		}
		return Session{}, err
	}
	if !u.IsActive() {
		return Session{}, denied
	}

	token, err := h.tokens.Issue(u.ID())
	if err != nil {
		return Session{}, err
	}

	return Session{User: u, Token: token}, nil
}
