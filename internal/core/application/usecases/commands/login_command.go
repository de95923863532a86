package commands

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New("LoginCommand must be created via NewLoginCommand constructor")

// LoginCommand exchanges credentials for a token.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand validates its arguments and builds the command.
func NewLoginCommand(email, password string) (LoginCommand, error) {
	cmd := LoginCommand{guard: guard.NewConstructorGuard()}

	var problems []error
	if strings.TrimSpace(email) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(problems...); err != nil {
		return LoginCommand{}, err
	}

	cmd.email = user.NormalizeEmail(email)
	cmd.password = password
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Email returns the email address.
func (c LoginCommand) Email() string {
	return c.email
}

// Password returns the plain-text password.
func (c LoginCommand) Password() string {
	return c.password
}
