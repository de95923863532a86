package parcelrepo

import (
	"context"
	"errors"

	"parceltrack/internal/adapters/out/postgres/listingsql"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/listing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormParcelRepository creates a parcel repository over db.
// Loaded and saved aggregates are reported to tracker.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

func preloadHistory(db *gorm.DB) *gorm.DB {
	return db.Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq")
	})
}

// Add inserts the parcel with its initial history.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrDuplicateTrackingNumber
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the parcel row and inserts history entries not stored yet.
// History is append-only, so stored entries are left alone.
// A parcel that no longer exists yields ErrObjectNotFound and nothing is written.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ParcelDTO{ID: dto.ID}).Select("*").Omit(clause.Associations).Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("parcelID", aggregate.ID().String())
		}
		if len(dto.StatusHistory) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.StatusHistory).Error
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the parcel; its history goes with it.
func (r *GormParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ParcelDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcelID", id.String())
	}
	return nil
}

// Get loads a parcel with its status history.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := preloadHistory(r.db.WithContext(ctx)).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcelID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber loads a parcel by its public tracking number.
func (r *GormParcelRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Parcel, error) {
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	var dto ParcelDTO
	if err := preloadHistory(r.db.WithContext(ctx)).First(&dto, "tracking_number = ?", trackingNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns one page of parcels matching q and the total number of matches.
// Histories are preloaded for the page only.
func (r *GormParcelRepository) List(ctx context.Context, q listing.Query) ([]*parcel.Parcel, int64, error) {
	dtos, total, err := listingsql.Find[ParcelDTO](ctx, r.db, q, columns, preloadHistory)
	if err != nil {
		return nil, 0, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		parcels = append(parcels, p)
	}
	return parcels, total, nil
}
