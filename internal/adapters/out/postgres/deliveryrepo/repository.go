package deliveryrepo

import (
	"context"
	"errors"

	"parceltrack/internal/adapters/out/postgres/listingsql"
	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/listing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDeliveryRepository creates a delivery repository over db.
// Loaded and saved aggregates are reported to tracker.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

func preloadRoute(db *gorm.DB) *gorm.DB {
	return db.Preload("Route", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq")
	})
}

// Add inserts the delivery with its route.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the delivery row and inserts route entries not stored yet.
// A delivery that no longer exists yields ErrObjectNotFound and nothing is written.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&DeliveryDTO{ID: dto.ID}).Select("*").Omit(clause.Associations).Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("deliveryID", aggregate.ID().String())
		}
		if len(dto.Route) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Route).Error
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads a delivery with its route ordered oldest first.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := preloadRoute(r.db.WithContext(ctx)).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns one page of deliveries matching q and the total number of matches.
func (r *GormDeliveryRepository) List(ctx context.Context, q listing.Query) ([]*delivery.Delivery, int64, error) {
	dtos, total, err := listingsql.Find[DeliveryDTO](ctx, r.db, q, columns, preloadRoute)
	if err != nil {
		return nil, 0, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, total, nil
}
