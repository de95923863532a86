// Package commands contains business operations that modify system state.
// Every command is validated on construction, and every handler owns its unit of work:
// Begin, defer Rollback, Commit.
package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// UserUoW manages transactions for account operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// ParcelUoW manages transactions for parcel operations. Users are reachable to resolve
	// referenced agents and couriers.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		UserRepoFactory
	}

	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// UoW spans parcels, deliveries and users. Delivery commands use it so the parcel and
	// its delivery are written in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   uow.ParcelRepository().Update(ctx, p)
	//   uow.DeliveryRepository().Add(ctx, d)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		UserRepoFactory
		ParcelRepoFactory
		DeliveryRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
