package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand lets the signed-in user edit their own contact details.
// Role, password and activation are not reachable from here.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	changes ProfileChanges

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand validates its arguments and builds the command.
func NewUpdateProfileCommand(userID kernel.UUID, changes ProfileChanges) (UpdateProfileCommand, error) {
	if err := userID.Validate(); err != nil {
		return UpdateProfileCommand{}, err
	}

	return UpdateProfileCommand{
		userID:  userID,
		changes: changes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// UserID returns the targeted user identifier.
func (c UpdateProfileCommand) UserID() kernel.UUID {
	return c.userID
}

// Changes returns the fields to change.
func (c UpdateProfileCommand) Changes() ProfileChanges {
	return c.changes
}
