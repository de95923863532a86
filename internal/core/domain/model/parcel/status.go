package parcel

import (
	"fmt"
	"time"

	"parceltrack/internal/pkg/errs"
)

// Status is the lifecycle state of a parcel.
type Status string

const (
	Pending        Status = "pending"
	PickedUp       Status = "picked_up"
	InTransit      Status = "in_transit"
	OutForDelivery Status = "out_for_delivery"
	Delivered      Status = "delivered"
	Cancelled      Status = "cancelled"
)

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, PickedUp, InTransit, OutForDelivery, Delivered, Cancelled}
}

// Validate reports an invalid status value.
func (s Status) Validate() error {
	for _, valid := range Statuses() {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid parcel status", string(s)))
}

// String returns the stored form of the status.
func (s Status) String() string {
	return string(s)
}

// IsFinal reports whether no courier work is expected any more.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// IsInProgress reports whether the parcel is with a courier.
func (s Status) IsInProgress() bool {
	return s == PickedUp || s == InTransit || s == OutForDelivery
}

// StatusHistoryEntry is one record of the append-only status log.
type StatusHistoryEntry struct {
	Status    Status
	Timestamp time.Time
	Location  string
	Notes     string
}
