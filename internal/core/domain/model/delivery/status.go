package delivery

import (
	"fmt"
	"time"

	"parceltrack/internal/pkg/errs"
)

// Status is the state of a delivery.
type Status string

const (
	Assigned  Status = "assigned"
	PickedUp  Status = "picked_up"
	InTransit Status = "in_transit"
	Delivered Status = "delivered"
	Failed    Status = "failed"
	Returned  Status = "returned"
)

// Statuses lists every delivery status in lifecycle order.
func Statuses() []Status {
	return []Status{Assigned, PickedUp, InTransit, Delivered, Failed, Returned}
}

// Validate reports an invalid status value.
func (s Status) Validate() error {
	for _, valid := range Statuses() {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid delivery status", string(s)))
}

// String returns the stored form of the status.
func (s Status) String() string {
	return string(s)
}

// IsFinal reports whether the delivery accepts no further status updates.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Returned
}

// RouteEntry is one point of the append-only route log.
type RouteEntry struct {
	Location  string
	Status    Status
	Timestamp time.Time
}

// Proof is attached when the parcel is handed over.
type Proof struct {
	Signature     string
	Photo         string
	RecipientName string
	Notes         string
}

// IsZero reports whether no proof field is set.
func (p Proof) IsZero() bool {
	return p == Proof{}
}
