package commands

import (
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
)

// ProfileChanges is a partial profile update. Nil fields keep their current value.
type ProfileChanges struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *kernel.Address
}

// IsEmpty reports whether nothing would change.
func (c ProfileChanges) IsEmpty() bool {
	return c.Name == nil && c.Email == nil && c.Phone == nil && c.Address == nil
}

// merge applies the changes over the current profile of u.
func (c ProfileChanges) merge(u *user.User) user.Profile {
	p := user.Profile{
		Name:    u.Name(),
		Email:   u.Email(),
		Phone:   u.Phone(),
		Address: u.Address(),
	}
	if c.Name != nil {
		p.Name = *c.Name
	}
	if c.Email != nil {
		p.Email = *c.Email
	}
	if c.Phone != nil {
		p.Phone = *c.Phone
	}
	if c.Address != nil {
		a := *c.Address
		if strings.TrimSpace(a.Country) == "" {
			a.Country = kernel.DefaultCountry
		}
		p.Address = &a
	}
	return p
}
