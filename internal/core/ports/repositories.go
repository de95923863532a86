// Package ports defines the contracts between the application core and its adapters.
// Repositories persist aggregates, the unit of work scopes them to one transaction,
// and the security ports hide password hashing and token handling.
package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/listing"
)

// UserRepository persists user aggregates.
type UserRepository interface {
	// Add persists a new user. A duplicate email yields an error wrapping ErrDuplicateEmail.
	Add(ctx context.Context, aggregate *user.User) error

	Update(ctx context.Context, aggregate *user.User) error

	Delete(ctx context.Context, id kernel.UUID) error

	// Get returns an errs.ObjectNotFoundError when no user has id.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail looks the user up by normalized email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// List returns one page of users matching q together with the total number of matches.
	List(ctx context.Context, q listing.Query) ([]*user.User, int64, error)
}

// ParcelRepository persists parcel aggregates with their status history.
type ParcelRepository interface {
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update saves the parcel and any history entries appended since it was loaded.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Parcel, error)

	// List returns one page of parcels matching q together with the total number of matches.
	// The total is counted with the same filter as the page.
	List(ctx context.Context, q listing.Query) ([]*parcel.Parcel, int64, error)
}

// DeliveryRepository persists delivery aggregates with their route.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	Update(ctx context.Context, aggregate *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	List(ctx context.Context, q listing.Query) ([]*delivery.Delivery, int64, error)
}
