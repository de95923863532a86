package queries

import (
	"errors"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New("TrackParcelQuery must be created via NewTrackParcelQuery constructor")

// TrackParcelQuery is the public lookup by tracking number.
type TrackParcelQuery struct { //nolint:recvcheck //using for validation
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery validates its arguments and builds the query.
func NewTrackParcelQuery(trackingNumber string) (TrackParcelQuery, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return TrackParcelQuery{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	return TrackParcelQuery{trackingNumber: trackingNumber, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingNumber returns the trimmed tracking number.
func (q TrackParcelQuery) TrackingNumber() string {
	return q.trackingNumber
}

// TrackingView is what anyone holding a tracking number may see.
type TrackingView struct {
	TrackingNumber    string
	Status            parcel.Status
	StatusHistory     []parcel.StatusHistoryEntry
	EstimatedDelivery time.Time
	AssignedCourier   *CourierContact
}

// CourierContact identifies the courier carrying a tracked parcel.
type CourierContact struct {
	ID    kernel.UUID
	Name  string
	Phone string
}
