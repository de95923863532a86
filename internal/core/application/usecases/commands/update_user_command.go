package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand is the administrative edit of any account.
//
// Example:
//
//	active := false
//	cmd, err := NewUpdateUserCommand(userID, ProfileChanges{}, "", &active)
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	changes  ProfileChanges
	role     *user.Role
	isActive *bool

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand validates the edit. An empty role keeps the current one.
func NewUpdateUserCommand(userID kernel.UUID, changes ProfileChanges, role string, isActive *bool) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		changes:  changes,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userID.Validate(),
		cmd.setRole(role),
	); err != nil {
		return UpdateUserCommand{}, err
	}
	cmd.userID = userID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// UserID returns the targeted user identifier.
func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Changes returns the fields to change.
func (c UpdateUserCommand) Changes() ProfileChanges {
	return c.changes
}

// Role is nil when the role is not being changed.
func (c UpdateUserCommand) Role() *user.Role {
	return c.role
}

// IsActive is nil when activation is not being changed.
func (c UpdateUserCommand) IsActive() *bool {
	return c.isActive
}

func (c *UpdateUserCommand) setRole(role string) error {
	if role == "" {
		return nil
	}
	r, err := user.ParseRole(role)
	if err != nil {
		return err
	}
	c.role = &r
	return nil
}
