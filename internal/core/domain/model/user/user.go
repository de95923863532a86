package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User was not created via NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the account aggregate root.
//
// Invariants:
//   - id, name, email, password hash and role are always set
//   - email is stored trimmed and lower-cased
//   - address is optional; when present it is a complete kernel.Address
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	phone        string
	role         Role
	address      *kernel.Address
	isActive     bool
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// Profile carries the self-editable part of a user.
type Profile struct {
	Name    string
	Email   string
	Phone   string
	Address *kernel.Address
}

// NewUser registers a new, active user.
//
// Example:
//
//	hash, _ := hasher.Hash(password)
//	u, err := user.NewUser(kernel.NewUUID(), user.Profile{Name: "Ann", Email: "ann@example.com"}, hash, user.Customer, time.Now())
func NewUser(id kernel.UUID, profile Profile, passwordHash string, role Role, now time.Time) (*User, error) {
	u := &User{
		isActive:  true,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setProfile(profile),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a user loaded from persistence.
func RestoreUser(
	id kernel.UUID,
	profile Profile,
	passwordHash string,
	role Role,
	isActive bool,
	createdAt time.Time,
) (*User, error) {
	u, err := NewUser(id, profile, passwordHash, role, createdAt)
	if err != nil {
		return nil, err
	}
	u.isActive = isActive
	return u, nil
}

// Validate ensures the user was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the normalized email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Phone returns the phone number.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the user role.
func (u *User) Role() Role {
	return u.role
}

// IsActive returns whether the account may sign in.
func (u *User) IsActive() bool {
	return u.isActive
}

// CreatedAt returns when the account was created.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Address returns the postal address, nil when none was given.
func (u *User) Address() *kernel.Address {
	return u.address
}

// HasRole reports whether the user holds one of roles.
func (u *User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.role == r {
			return true
		}
	}
	return false
}

// UpdateProfile replaces name, email, phone and address in one step.
func (u *User) UpdateProfile(profile Profile) error {
	return u.setProfile(profile)
}

// ChangeRole is an administrative operation.
func (u *User) ChangeRole(role Role) error {
	return u.setRole(role)
}

// SetActive toggles whether the account may be used.
func (u *User) SetActive(active bool) {
	u.isActive = active
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setProfile(p Profile) error {
	name := strings.TrimSpace(p.Name)
	email := NormalizeEmail(p.Email)

	var problems []error
	if name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	switch {
	case email == "":
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	case !strings.Contains(email, "@"):
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email)))
	}
	if p.Address != nil {
		if err := p.Address.Validate(); err != nil {
			problems = append(problems, err)
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	u.name = name
	u.email = email
	u.phone = strings.TrimSpace(p.Phone)
	u.address = p.Address
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
