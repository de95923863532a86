package delivery

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

const (
	// MaxAttempts is the number of failed hand-overs after which the parcel is returned.
	MaxAttempts = 3

	// DefaultLocation is recorded on a route entry when no location is given.
	DefaultLocation = "Unknown Location"

	maxAttemptsReason = "maximum delivery attempts reached"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created via NewDelivery or Restore.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrDeliveryIsClosed is returned when a status update targets a delivered or returned delivery.
	ErrDeliveryIsClosed = errors.New("delivery is already closed")
)

// Delivery is the aggregate root for a courier assignment.
//
// Invariants:
//   - attempts only grows on a failed update and never exceeds MaxAttempts
//   - actualDelivery is set only when the status becomes delivered
//   - every status update appends exactly one route entry
type Delivery struct {
	id                kernel.UUID
	parcelID          kernel.UUID
	courierID         kernel.UUID
	pickupDate        time.Time
	estimatedDelivery time.Time
	actualDelivery    *time.Time
	route             []RouteEntry
	proof             *Proof
	status            Status
	attempts          int
	failureReason     string
	createdAt         time.Time
	updatedAt         time.Time

	guard guard.ConstructorGuard
}

// NewDelivery assigns courierID to carry parcelID. A zero pickupDate means now.
func NewDelivery(
	id, parcelID, courierID kernel.UUID,
	pickupDate, estimatedDelivery, now time.Time,
) (*Delivery, error) {
	now = now.UTC()
	if pickupDate.IsZero() {
		pickupDate = now
	}

	d := &Delivery{
		status:    Assigned,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setParcel(parcelID),
		d.setCourier(courierID),
		d.setSchedule(pickupDate, estimatedDelivery),
	); err != nil {
		return nil, err
	}
	return d, nil
}

// State is the full persisted form of a delivery, used to restore it.
type State struct {
	ID                kernel.UUID
	ParcelID          kernel.UUID
	CourierID         kernel.UUID
	PickupDate        time.Time
	EstimatedDelivery time.Time
	ActualDelivery    *time.Time
	Route             []RouteEntry
	Proof             *Proof
	Status            Status
	Attempts          int
	FailureReason     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Restore rebuilds a delivery loaded from persistence.
func Restore(s State) (*Delivery, error) {
	d := &Delivery{
		actualDelivery: s.ActualDelivery,
		route:          slices.Clone(s.Route),
		proof:          s.Proof,
		failureReason:  s.FailureReason,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
		guard:          guard.NewConstructorGuard(),
	}

	var attemptsErr error
	if s.Attempts < 0 || s.Attempts > MaxAttempts {
		attemptsErr = errs.NewValueIsOutOfRangeError("attempts", s.Attempts, 0, MaxAttempts)
	}

	if err := errors.Join(
		d.setID(s.ID),
		d.setParcel(s.ParcelID),
		d.setCourier(s.CourierID),
		d.setSchedule(s.PickupDate, s.EstimatedDelivery),
		s.Status.Validate(),
		attemptsErr,
	); err != nil {
		return nil, err
	}
	d.status = s.Status
	d.attempts = s.Attempts
	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// ParcelID returns the parcel being delivered.
func (d *Delivery) ParcelID() kernel.UUID {
	return d.parcelID
}

// CourierID returns the assigned courier.
func (d *Delivery) CourierID() kernel.UUID {
	return d.courierID
}

// PickupDate returns the planned or actual pickup date.
func (d *Delivery) PickupDate() time.Time {
	return d.pickupDate
}

// EstimatedDelivery returns the planned delivery date.
func (d *Delivery) EstimatedDelivery() time.Time {
	return d.estimatedDelivery
}

// ActualDelivery is nil until the delivery is delivered.
func (d *Delivery) ActualDelivery() *time.Time {
	return d.actualDelivery
}

// Route returns a copy of the route, oldest first.
func (d *Delivery) Route() []RouteEntry {
	return slices.Clone(d.route)
}

// Proof returns the delivery proof, nil until one is attached.
func (d *Delivery) Proof() *Proof {
	return d.proof
}

// Status returns the current delivery status.
func (d *Delivery) Status() Status {
	return d.status
}

// Attempts returns the number of failed hand-overs.
func (d *Delivery) Attempts() int {
	return d.attempts
}

// FailureReason returns the notes of the last failed attempt.
func (d *Delivery) FailureReason() string {
	return d.failureReason
}

// CreatedAt returns when the delivery was created.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns when the delivery last changed.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// IsCarriedBy reports whether courierID is the assigned courier.
func (d *Delivery) IsCarriedBy(courierID kernel.UUID) bool {
	return d.courierID.IsEqual(courierID)
}

// StatusUpdate is a courier report from the field.
type StatusUpdate struct {
	Status   Status
	Location string
	Notes    string
	Proof    *Proof
}

// ApplyStatus records a courier report and returns the status the delivery ended up in.
//
// Rules:
//   - delivered and returned deliveries reject further updates
//   - assigned cannot be reported, it is only the initial state
//   - delivered stamps actualDelivery and attaches the proof when given
//   - failed increments attempts and keeps the notes as failure reason; once MaxAttempts
//     failures are recorded, a further failure turns into returned
//   - one route entry is appended for the resulting status
func (d *Delivery) ApplyStatus(u StatusUpdate, at time.Time) (Status, error) {
	if d.status.IsFinal() {
		return d.status, fmt.Errorf("%w: %w", ErrDeliveryIsClosed, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("delivery is %s", d.status)))
	}
	if err := u.Status.Validate(); err != nil {
		return d.status, err
	}
	if u.Status == Assigned {
		return d.status, errs.NewValueIsInvalidErrorWithCause("status", errors.New("assigned is set on creation only"))
	}

	at = at.UTC()
	next := u.Status

	switch next {
	case Delivered:
		d.actualDelivery = &at
		if u.Proof != nil && !u.Proof.IsZero() {
			proof := *u.Proof
			d.proof = &proof
		}
	case Failed:
		if d.attempts >= MaxAttempts {
			next = Returned
			d.failureReason = maxAttemptsReason
			if u.Notes != "" {
				d.failureReason = u.Notes
			}
			break
		}
		d.attempts++
		d.failureReason = u.Notes
	}

	location := strings.TrimSpace(u.Location)
	if location == "" {
		location = DefaultLocation
	}

	d.status = next
	d.route = append(d.route, RouteEntry{Location: location, Status: next, Timestamp: at})
	d.updatedAt = at
	return next, nil
}

// Reschedule changes the planned dates. A zero value keeps the current one.
func (d *Delivery) Reschedule(pickupDate, estimatedDelivery time.Time, at time.Time) error {
	if pickupDate.IsZero() {
		pickupDate = d.pickupDate
	}
	if estimatedDelivery.IsZero() {
		estimatedDelivery = d.estimatedDelivery
	}
	if err := d.setSchedule(pickupDate, estimatedDelivery); err != nil {
		return err
	}
	d.updatedAt = at.UTC()
	return nil
}

// AttachProof replaces the delivery proof.
func (d *Delivery) AttachProof(p Proof, at time.Time) error {
	if p.IsZero() {
		return errs.NewValueIsRequiredError("deliveryProof")
	}
	d.proof = &p
	d.updatedAt = at.UTC()
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setParcel(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcel", err)
	}
	d.parcelID = id
	return nil
}

func (d *Delivery) setCourier(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courier", err)
	}
	d.courierID = id
	return nil
}

func (d *Delivery) setSchedule(pickupDate, estimatedDelivery time.Time) error {
	var problems []error
	if pickupDate.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("pickupDate"))
	}
	if estimatedDelivery.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("estimatedDelivery"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}
	d.pickupDate = pickupDate.UTC()
	d.estimatedDelivery = estimatedDelivery.UTC()
	return nil
}
