package user

import (
	"fmt"
	"strings"

	"parceltrack/internal/pkg/errs"
)

// Role is the authorization role of a user.
type Role string

const (
	Customer Role = "customer"
	Courier  Role = "courier"
	Admin    Role = "admin"
)

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate reports a role outside customer, courier and admin.
func (r Role) Validate() error {
	switch r {
	case Customer, Courier, Admin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the stored form of the role.
func (r Role) String() string {
	return string(r)
}

// IsStaff reports whether the role handles parcels on behalf of others.
func (r Role) IsStaff() bool {
	return r == Courier || r == Admin
}
