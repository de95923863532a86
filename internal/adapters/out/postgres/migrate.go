package postgres

import (
	"context"

	"parceltrack/internal/adapters/out/postgres/deliveryrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&parcelrepo.ParcelDTO{},
		&parcelrepo.StatusHistoryDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.RouteEntryDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}

// Tables lists the table names, children first, for truncation in tests.
func Tables() []string {
	return []string{"delivery_route", "deliveries", "parcel_status_history", "parcels", "users"}
}
