// Package queries contains read operations.
// Repository backed queries read outside a transaction; reporting queries run plain SQL
// against the database and return flat read models.
package queries

import "parceltrack/internal/core/ports"

// Repositories is the read side of a unit of work. Queries never call Begin.
type Repositories interface {
	UserRepository() ports.UserRepository
	ParcelRepository() ports.ParcelRepository
	DeliveryRepository() ports.DeliveryRepository
}

// RepositoriesFactory creates the read-side repositories for one request.
type RepositoriesFactory interface {
	Create() Repositories
}
