package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler reads couriers straight from the users table.
type GetAllCouriersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetAllCouriersQueryHandler wires the handler to its dependencies.
func NewGetAllCouriersQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db, policy: policy}
}

// Handle returns the couriers sorted by name.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]CourierView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ManageCouriers, services.Resource{}); err != nil {
		return nil, err
	}

	couriers := make([]CourierView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			is_active
		FROM users
		WHERE role = 'courier'
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var courier CourierView
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&courier.Name,
			&courier.Email,
			&courier.Phone,
			&courier.IsActive,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		courier.ID = courierID
		couriers = append(couriers, courier)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
