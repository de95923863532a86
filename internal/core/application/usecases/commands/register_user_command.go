package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrAdminSelfRegistration = errors.New("admin accounts cannot be self-registered")
)

// RegisterUserCommand signs up a new customer or courier.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand(user.Profile{Name: "Ann", Email: "ann@example.com"}, "secret1", "")
//	if err != nil {
//	    return err
//	}
//	session, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	profile  user.Profile
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand validates the sign-up form. An empty role means customer; the
// admin role is refused.
func NewRegisterUserCommand(profile user.Profile, password, role string) (RegisterUserCommand, error) {
	profile.Email = user.NormalizeEmail(profile.Email)
	cmd := RegisterUserCommand{
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Profile returns the profile of the new account.
func (c RegisterUserCommand) Profile() user.Profile {
	return c.profile
}

// Password returns the plain-text password.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < MinPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, "unbounded")
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role string) error {
	if role == "" {
		c.role = user.Customer
		return nil
	}

	r, err := user.ParseRole(role)
	if err != nil {
		return err
	}
	if r == user.Admin {
		return fmt.Errorf("%w: %w", ErrAdminSelfRegistration, errs.NewValueIsInvalidError("role"))
	}

	c.role = r
	return nil
}
