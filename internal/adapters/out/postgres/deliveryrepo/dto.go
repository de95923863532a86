// Package deliveryrepo persists delivery aggregates in the deliveries table, with the
// route in delivery_route.
package deliveryrepo

import (
	"time"

	"parceltrack/internal/adapters/out/postgres/listingsql"
	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the deliveries table row.
type DeliveryDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ParcelID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	CourierID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	PickupDate        time.Time       `gorm:"type:timestamptz;not null"`
	EstimatedDelivery time.Time       `gorm:"type:timestamptz;not null"`
	ActualDelivery    *time.Time      `gorm:"type:timestamptz"`
	Proof             ProofDTO        `gorm:"embedded;embeddedPrefix:proof_"`
	Status            string          `gorm:"type:varchar(32);not null;index"`
	Attempts          int             `gorm:"not null"`
	FailureReason     string          `gorm:"type:text"`
	CreatedAt         time.Time       `gorm:"type:timestamptz;not null;index;autoCreateTime:false"`
	UpdatedAt         time.Time       `gorm:"type:timestamptz;not null;autoUpdateTime:false"`
	Route             []RouteEntryDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// ProofDTO is the embedded delivery proof; all fields empty means no proof.
type ProofDTO struct {
	Signature     string `gorm:"type:text"`
	Photo         string `gorm:"type:text"`
	RecipientName string `gorm:"type:varchar(255)"`
	Notes         string `gorm:"type:text"`
}

// RouteEntryDTO is one route row; Seq orders the entries of a delivery.
type RouteEntryDTO struct {
	DeliveryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey;autoIncrement:false"`
	Location   string    `gorm:"type:varchar(255);not null"`
	Status     string    `gorm:"type:varchar(32);not null"`
	Timestamp  time.Time `gorm:"type:timestamptz;not null"`
}

func (RouteEntryDTO) TableName() string {
	return "delivery_route"
}

var columns = listingsql.Columns{
	"status":            "status",
	"parcel":            "parcel_id",
	"courier":           "courier_id",
	"attempts":          "attempts",
	"pickupDate":        "pickup_date",
	"estimatedDelivery": "estimated_delivery",
	"actualDelivery":    "actual_delivery",
	"createdAt":         "created_at",
	"updatedAt":         "updated_at",
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	deliveryID := d.ID().Bytes()

	route := make([]RouteEntryDTO, 0, len(d.Route()))
	for i, e := range d.Route() {
		route = append(route, RouteEntryDTO{
			DeliveryID: deliveryID,
			Seq:        i,
			Location:   e.Location,
			Status:     e.Status.String(),
			Timestamp:  e.Timestamp,
		})
	}

	var proof ProofDTO
	if p := d.Proof(); p != nil {
		proof = ProofDTO{Signature: p.Signature, Photo: p.Photo, RecipientName: p.RecipientName, Notes: p.Notes}
	}

	return DeliveryDTO{
		ID:                deliveryID,
		ParcelID:          d.ParcelID().Bytes(),
		CourierID:         d.CourierID().Bytes(),
		PickupDate:        d.PickupDate(),
		EstimatedDelivery: d.EstimatedDelivery(),
		ActualDelivery:    d.ActualDelivery(),
		Proof:             proof,
		Status:            d.Status().String(),
		Attempts:          d.Attempts(),
		FailureReason:     d.FailureReason(),
		CreatedAt:         d.CreatedAt(),
		UpdatedAt:         d.UpdatedAt(),
		Route:             route,
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	route := make([]delivery.RouteEntry, 0, len(dto.Route))
	for _, e := range dto.Route {
		route = append(route, delivery.RouteEntry{
			Location:  e.Location,
			Status:    delivery.Status(e.Status),
			Timestamp: e.Timestamp.UTC(),
		})
	}

	var proof *delivery.Proof
	if p := (delivery.Proof{
		Signature:     dto.Proof.Signature,
		Photo:         dto.Proof.Photo,
		RecipientName: dto.Proof.RecipientName,
		Notes:         dto.Proof.Notes,
	}); !p.IsZero() {
		proof = &p
	}

	var actual *time.Time
	if dto.ActualDelivery != nil {
		t := dto.ActualDelivery.UTC()
		actual = &t
	}

	return delivery.Restore(delivery.State{
		ID:                id,
		ParcelID:          parcelID,
		CourierID:         courierID,
		PickupDate:        dto.PickupDate.UTC(),
		EstimatedDelivery: dto.EstimatedDelivery.UTC(),
		ActualDelivery:    actual,
		Route:             route,
		Proof:             proof,
		Status:            delivery.Status(dto.Status),
		Attempts:          dto.Attempts,
		FailureReason:     dto.FailureReason,
		CreatedAt:         dto.CreatedAt.UTC(),
		UpdatedAt:         dto.UpdatedAt.UTC(),
	})
}
