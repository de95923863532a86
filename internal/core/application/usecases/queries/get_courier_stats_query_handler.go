package queries

import (
	"context"
	"math"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierStatsQueryHandler aggregates parcel counters in one statement.
// In transit covers every status between pickup and hand-over.
type GetCourierStatsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetCourierStatsQueryHandler wires the handler to its dependencies.
func NewGetCourierStatsQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetCourierStatsQueryHandler {
	return GetCourierStatsQueryHandler{db: db, policy: policy}
}

// Handle runs the get courier stats use case.
func (h GetCourierStatsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierStatsQuery,
) ([]CourierStats, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ManageCouriers, services.Resource{}); err != nil {
		return nil, err
	}

	inTransit := []string{string(parcel.PickedUp), string(parcel.InTransit), string(parcel.OutForDelivery)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.name,
			u.email,
			u.phone,
			u.is_active,
			COUNT(p.id) AS assigned,
			COUNT(p.id) FILTER (WHERE p.status = ?) AS delivered,
			COUNT(p.id) FILTER (WHERE p.status IN ?) AS in_transit
		FROM users u
		LEFT JOIN parcels p ON p.assigned_courier_id = u.id
		WHERE u.role = ?
		GROUP BY u.id, u.name, u.email, u.phone, u.is_active
		ORDER BY u.name
	`, string(parcel.Delivered), inTransit, string(user.Courier)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]CourierStats, 0)
	for rows.Next() {
		var s CourierStats
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&s.Courier.Name,
			&s.Courier.Email,
			&s.Courier.Phone,
			&s.Courier.IsActive,
			&s.AssignedParcels,
			&s.DeliveredParcels,
			&s.InTransitParcels,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		s.Courier.ID = courierID
		s.DeliveryRate = deliveryRate(s.DeliveredParcels, s.AssignedParcels)
		stats = append(stats, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func deliveryRate(delivered, assigned int64) float64 {
	if assigned == 0 {
		return 0
	}
	return math.Round(float64(delivered)/float64(assigned)*10000) / 100
}
