package kernel

import (
	"errors"
	"strings"

	"parceltrack/internal/pkg/errs"
)

// DefaultCountry is used when an address is given without a country.
const DefaultCountry = "USA"

// Address is a postal address value object. Parcels keep a snapshot of the
// recipient's address; users keep their own, optional, contact address.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// NewAddress trims every part, defaults the country and requires street, city,
// state and zip code.
func NewAddress(street, city, state, zipCode, country string) (Address, error) {
	a := Address{
		Street:  strings.TrimSpace(street),
		City:    strings.TrimSpace(city),
		State:   strings.TrimSpace(state),
		ZipCode: strings.TrimSpace(zipCode),
		Country: strings.TrimSpace(country),
	}
	if a.Country == "" {
		a.Country = DefaultCountry
	}

	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

// Validate reports every missing mandatory part at once.
func (a Address) Validate() error {
	var problems []error
	if a.Street == "" {
		problems = append(problems, errs.NewValueIsRequiredError("address.street"))
	}
	if a.City == "" {
		problems = append(problems, errs.NewValueIsRequiredError("address.city"))
	}
	if a.State == "" {
		problems = append(problems, errs.NewValueIsRequiredError("address.state"))
	}
	if a.ZipCode == "" {
		problems = append(problems, errs.NewValueIsRequiredError("address.zipCode"))
	}
	return errors.Join(problems...)
}

// IsZero reports whether no part of the address is set.
func (a Address) IsZero() bool {
	return a == Address{}
}
