package services

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrCourierUnavailable is returned when the chosen user cannot carry parcels.
	ErrCourierUnavailable = errors.New("courier is not available")

	// ErrDeliveryParcelMismatch is returned when a delivery and a parcel do not belong together.
	ErrDeliveryParcelMismatch = errors.New("delivery does not carry this parcel")
)

// parcelStatusByDelivery mirrors a courier report onto the parcel.
var parcelStatusByDelivery = map[delivery.Status]parcel.Status{
	delivery.PickedUp:  parcel.PickedUp,
	delivery.InTransit: parcel.InTransit,
	delivery.Delivered: parcel.Delivered,
	delivery.Failed:    parcel.OutForDelivery,
	delivery.Returned:  parcel.Cancelled,
}

// ParcelLifecycle keeps a parcel and its delivery consistent.
//
// Business rules:
//   - only pending parcels can be handed to a courier
//   - the courier must be an active user with the courier role
//   - assigning a courier marks the parcel picked up
//   - every courier report moves the parcel to the mapped status, recording history once
//
// Both aggregates are mutated in memory; the caller persists them in one unit of work.
//
// Example usage:
//
//	lifecycle := services.NewParcelLifecycle()
//	d, err := lifecycle.Assign(kernel.NewUUID(), p, courier, pickup, time.Now())
//	if err != nil {
//	    return err
//	}
//	uow.ParcelRepository().Update(ctx, p)
//	uow.DeliveryRepository().Add(ctx, d)
type ParcelLifecycle struct{}

// NewParcelLifecycle returns the lifecycle service. It is stateless and safe to share.
func NewParcelLifecycle() ParcelLifecycle {
	return ParcelLifecycle{}
}

// ParcelStatusFor returns the parcel status a delivery status implies.
// The second result is false for assigned, which leaves the parcel untouched.
func (ParcelLifecycle) ParcelStatusFor(s delivery.Status) (parcel.Status, bool) {
	st, ok := parcelStatusByDelivery[s]
	return st, ok
}

// Assign creates a delivery of p by courier. A zero pickupDate means now; the delivery
// estimate is taken from the parcel's shipping quote.
func (l ParcelLifecycle) Assign(
	deliveryID kernel.UUID,
	p *parcel.Parcel,
	courier *user.User,
	pickupDate time.Time,
	now time.Time,
) (*delivery.Delivery, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := courier.Validate(); err != nil {
		return nil, err
	}

	if p.Status() != parcel.Pending {
		return nil, fmt.Errorf("%w: %w", parcel.ErrParcelIsNotPending, errs.NewValueIsInvalidErrorWithCause(
			"parcel", errors.New("parcel is not ready for delivery assignment")))
	}
	if !courier.HasRole(user.Courier) || !courier.IsActive() {
		return nil, fmt.Errorf("%w: %w", ErrCourierUnavailable, errs.NewValueIsInvalidErrorWithCause(
			"courier", fmt.Errorf("user %s is not an active courier", courier.ID())))
	}

	d, err := delivery.NewDelivery(deliveryID, p.ID(), courier.ID(), pickupDate, p.Shipping().EstimatedDelivery, now)
	if err != nil {
		return nil, err
	}

	if err := p.AssignCourier(courier.ID(), now); err != nil {
		return nil, err
	}
	if _, err := p.ChangeStatus(parcel.PickedUp, "", "Assigned to courier "+courier.Name(), now); err != nil {
		return nil, err
	}

	return d, nil
}

// Report applies a courier status update to d and mirrors it onto p.
// It returns the status the delivery ended up in, which differs from the reported one when
// the attempts cap turns a failure into a return.
func (l ParcelLifecycle) Report(
	d *delivery.Delivery,
	p *parcel.Parcel,
	update delivery.StatusUpdate,
	now time.Time,
) (delivery.Status, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	if err := p.Validate(); err != nil {
		return "", err
	}
	if !d.ParcelID().IsEqual(p.ID()) {
		return "", ErrDeliveryParcelMismatch
	}

	status, err := d.ApplyStatus(update, now)
	if err != nil {
		return "", err
	}

	if next, ok := l.ParcelStatusFor(status); ok {
		if _, err := p.ChangeStatus(next, update.Location, update.Notes, now); err != nil {
			return "", err
		}
	}
	return status, nil
}
