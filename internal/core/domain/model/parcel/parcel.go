package parcel

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

// DefaultLocation is recorded on a history entry when no location is given.
const DefaultLocation = "Processing Center"

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not created via NewParcel or Restore.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrParcelIsNotPending is returned when an operation needs a parcel nobody has picked up yet.
	ErrParcelIsNotPending = errors.New("parcel is not pending")
)

// Parcel is the shipment aggregate root.
//
// Invariants:
//   - trackingNumber, sender, recipient, details and shipping are always valid
//   - statusHistory is append-only and its last entry matches status
//   - every status change appends exactly one history entry
type Parcel struct {
	id              kernel.UUID
	trackingNumber  string
	senderID        kernel.UUID
	recipient       Recipient
	details         Details
	shipping        Shipping
	status          Status
	assignedCourier *kernel.UUID
	assignedAgent   *kernel.UUID
	statusHistory   []StatusHistoryEntry
	paymentStatus   PaymentStatus
	createdAt       time.Time
	updatedAt       time.Time

	guard guard.ConstructorGuard
}

// NewParcel registers a parcel in pending state and records the initial history entry.
//
// Example:
//
//	p, err := parcel.NewParcel(kernel.NewUUID(), parcel.NewTrackingNumber(now), senderID, recipient, details, shipping, now)
func NewParcel(
	id kernel.UUID,
	trackingNumber string,
	senderID kernel.UUID,
	recipient Recipient,
	details Details,
	shipping Shipping,
	now time.Time,
) (*Parcel, error) {
	now = now.UTC()
	p := &Parcel{
		status:        Pending,
		paymentStatus: PaymentPending,
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingNumber(trackingNumber),
		p.setSender(senderID),
		p.setRecipient(recipient),
		p.setDetails(details),
		p.setShipping(shipping),
	); err != nil {
		return nil, err
	}

	p.statusHistory = []StatusHistoryEntry{{
		Status:    Pending,
		Timestamp: now,
		Location:  DefaultLocation,
		Notes:     "Parcel created",
	}}
	return p, nil
}

// State is the full persisted form of a parcel, used to restore it.
type State struct {
	ID              kernel.UUID
	TrackingNumber  string
	SenderID        kernel.UUID
	Recipient       Recipient
	Details         Details
	Shipping        Shipping
	Status          Status
	AssignedCourier *kernel.UUID
	AssignedAgent   *kernel.UUID
	StatusHistory   []StatusHistoryEntry
	PaymentStatus   PaymentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Restore rebuilds a parcel loaded from persistence.
func Restore(s State) (*Parcel, error) {
	p := &Parcel{
		assignedCourier: s.AssignedCourier,
		assignedAgent:   s.AssignedAgent,
		statusHistory:   slices.Clone(s.StatusHistory),
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(s.ID),
		p.setTrackingNumber(s.TrackingNumber),
		p.setSender(s.SenderID),
		p.setRecipient(s.Recipient),
		p.setDetails(s.Details),
		p.setShipping(s.Shipping),
		s.Status.Validate(),
		s.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	p.status = s.Status
	p.paymentStatus = s.PaymentStatus
	return p, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	if err := p.guard.Validate(ErrParcelIsNotConstructed); err != nil {
		return err
	}
	return nil
}

// ID returns the parcel identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingNumber returns the public tracking number.
func (p *Parcel) TrackingNumber() string {
	return p.trackingNumber
}

// SenderID returns the user who registered the parcel.
func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

// Recipient returns the recipient snapshot.
func (p *Parcel) Recipient() Recipient {
	return p.recipient
}

// Details returns the physical details.
func (p *Parcel) Details() Details {
	return p.details
}

// Shipping returns the shipping quote.
func (p *Parcel) Shipping() Shipping {
	return p.shipping
}

// Status returns the current status.
func (p *Parcel) Status() Status {
	return p.status
}

// AssignedCourier returns nil while no courier has been assigned.
func (p *Parcel) AssignedCourier() *kernel.UUID {
	return p.assignedCourier
}

// AssignedAgent returns nil while no agent has been assigned.
func (p *Parcel) AssignedAgent() *kernel.UUID {
	return p.assignedAgent
}

// StatusHistory returns a copy of the history, oldest first.
func (p *Parcel) StatusHistory() []StatusHistoryEntry {
	return slices.Clone(p.statusHistory)
}

// PaymentStatus returns the payment status.
func (p *Parcel) PaymentStatus() PaymentStatus {
	return p.paymentStatus
}

// CreatedAt returns when the parcel was registered.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the parcel last changed.
func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

// IsSentBy reports whether userID registered the parcel.
func (p *Parcel) IsSentBy(userID kernel.UUID) bool {
	return p.senderID.IsEqual(userID)
}

// IsAssignedTo reports whether courierID is the courier assigned to the parcel.
func (p *Parcel) IsAssignedTo(courierID kernel.UUID) bool {
	return kernel.UUIDPtrEqual(p.assignedCourier, courierID)
}

// ChangeStatus moves the parcel to status and appends one history entry.
// Nothing is recorded when status equals the current one; the returned flag reports
// whether a change happened. An empty location is recorded as DefaultLocation.
func (p *Parcel) ChangeStatus(status Status, location, notes string, at time.Time) (bool, error) {
	if err := status.Validate(); err != nil {
		return false, err
	}
	if status == p.status {
		return false, nil
	}

	location = strings.TrimSpace(location)
	if location == "" {
		location = DefaultLocation
	}

	at = at.UTC()
	p.status = status
	p.statusHistory = append(p.statusHistory, StatusHistoryEntry{
		Status:    status,
		Timestamp: at,
		Location:  location,
		Notes:     notes,
	})
	p.updatedAt = at
	return true, nil
}

// Cancel withdraws a parcel that has not been picked up yet.
func (p *Parcel) Cancel(notes string, at time.Time) error {
	if p.status != Pending {
		return fmt.Errorf("%w: %w", ErrParcelIsNotPending, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("parcel is %s", p.status)))
	}
	_, err := p.ChangeStatus(Cancelled, "", notes, at)
	return err
}

// AssignCourier records the courier that will carry the parcel.
func (p *Parcel) AssignCourier(courierID kernel.UUID, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	p.assignedCourier = &courierID
	p.updatedAt = at.UTC()
	return nil
}

// AssignAgent records the agent responsible for the parcel.
func (p *Parcel) AssignAgent(agentID kernel.UUID, at time.Time) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	p.assignedAgent = &agentID
	p.updatedAt = at.UTC()
	return nil
}

// UpdateRecipient replaces the recipient snapshot.
func (p *Parcel) UpdateRecipient(r Recipient, at time.Time) error {
	if err := p.setRecipient(r); err != nil {
		return err
	}
	p.updatedAt = at.UTC()
	return nil
}

// UpdateDetails replaces the physical details. The caller is responsible for re-quoting.
func (p *Parcel) UpdateDetails(d Details, at time.Time) error {
	if err := p.setDetails(d); err != nil {
		return err
	}
	p.updatedAt = at.UTC()
	return nil
}

// UpdateShipping replaces the shipping quote.
func (p *Parcel) UpdateShipping(s Shipping, at time.Time) error {
	if err := p.setShipping(s); err != nil {
		return err
	}
	p.updatedAt = at.UTC()
	return nil
}

// SetPaymentStatus records a payment status change. It does not touch the history.
func (p *Parcel) SetPaymentStatus(s PaymentStatus, at time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	p.paymentStatus = s
	p.updatedAt = at.UTC()
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingNumber(tn string) error {
	tn = strings.TrimSpace(tn)
	if tn == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	p.trackingNumber = tn
	return nil
}

func (p *Parcel) setSender(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sender", err)
	}
	p.senderID = id
	return nil
}

func (p *Parcel) setRecipient(r Recipient) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Address.Country == "" {
		r.Address.Country = kernel.DefaultCountry
	}
	if err := r.Validate(); err != nil {
		return err
	}
	p.recipient = r
	return nil
}

func (p *Parcel) setDetails(d Details) error {
	if d.Category == "" {
		d.Category = Other
	}
	d.Description = strings.TrimSpace(d.Description)
	if err := d.Validate(); err != nil {
		return err
	}
	p.details = d
	return nil
}

func (p *Parcel) setShipping(s Shipping) error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.EstimatedDelivery = s.EstimatedDelivery.UTC()
	p.shipping = s
	return nil
}
