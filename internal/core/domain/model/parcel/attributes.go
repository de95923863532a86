package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// Service is the shipping service level chosen by the sender.
type Service string

const (
	Standard  Service = "standard"
	Express   Service = "express"
	Overnight Service = "overnight"
)

// ParseService defaults an empty value to Standard.
func ParseService(s string) (Service, error) {
	if strings.TrimSpace(s) == "" {
		return Standard, nil
	}
	svc := Service(strings.ToLower(strings.TrimSpace(s)))
	if err := svc.Validate(); err != nil {
		return "", err
	}
	return svc, nil
}

// Validate reports an unknown shipping service.
func (s Service) Validate() error {
	switch s {
	case Standard, Express, Overnight:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("shipping.service", fmt.Errorf("%q is not a valid service", string(s)))
	}
}

// Category classifies the parcel content.
type Category string

const (
	Documents   Category = "documents"
	Electronics Category = "electronics"
	Clothing    Category = "clothing"
	Food        Category = "food"
	Fragile     Category = "fragile"
	Other       Category = "other"
)

// ParseCategory defaults an empty value to Other.
func ParseCategory(s string) (Category, error) {
	if strings.TrimSpace(s) == "" {
		return Other, nil
	}
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate reports an unknown category.
func (c Category) Validate() error {
	switch c {
	case Documents, Electronics, Clothing, Food, Fragile, Other:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("parcelDetails.category", fmt.Errorf("%q is not a valid category", string(c)))
	}
}

// PaymentStatus is informational only; no payment is processed.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Validate reports an unknown payment status.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a valid payment status", string(p)))
	}
}

// Recipient is a snapshot of who receives the parcel. It is not a user reference.
type Recipient struct {
	Name    string
	Email   string
	Phone   string
	Address kernel.Address
}

// Validate checks that name, email, phone and address are present.
func (r Recipient) Validate() error {
	var problems []error
	if strings.TrimSpace(r.Name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("recipient.name"))
	}
	if strings.TrimSpace(r.Email) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("recipient.email"))
	}
	if strings.TrimSpace(r.Phone) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("recipient.phone"))
	}
	if err := r.Address.Validate(); err != nil {
		problems = append(problems, err)
	}
	return errors.Join(problems...)
}

// Dimensions in centimetres.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// Details describes the physical parcel.
type Details struct {
	Weight      float64
	Dimensions  Dimensions
	Description string
	Value       float64
	Category    Category
}

// Validate checks every field of the details and joins the problems found.
func (d Details) Validate() error {
	var problems []error
	if d.Weight <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"parcelDetails.weight", fmt.Errorf("%v is not greater than 0", d.Weight)))
	}
	if d.Dimensions.Length <= 0 || d.Dimensions.Width <= 0 || d.Dimensions.Height <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"parcelDetails.dimensions", errors.New("length, width and height must be greater than 0")))
	}
	if strings.TrimSpace(d.Description) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("parcelDetails.description"))
	}
	if d.Value < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"parcelDetails.value", fmt.Errorf("%v is negative", d.Value)))
	}
	if err := d.Category.Validate(); err != nil {
		problems = append(problems, err)
	}
	return errors.Join(problems...)
}

// Shipping is the quote computed when the parcel is registered.
type Shipping struct {
	Service           Service
	Cost              float64
	EstimatedDelivery time.Time
}

// Validate checks service, cost and estimated delivery date.
func (s Shipping) Validate() error {
	if err := s.Service.Validate(); err != nil {
		return err
	}
	if s.Cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipping.cost", fmt.Errorf("%v is negative", s.Cost))
	}
	if s.EstimatedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("shipping.estimatedDelivery")
	}
	return nil
}
