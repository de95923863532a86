// Package parcelrepo persists parcel aggregates in the parcels table, with the status
// history in parcel_status_history.
package parcelrepo

import (
	"time"

	"parceltrack/internal/adapters/out/postgres/listingsql"
	"parceltrack/internal/adapters/out/postgres/userrepo"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO is the parcels table row.
type ParcelDTO struct {
	ID                uuid.UUID          `gorm:"type:uuid;primaryKey"`
	TrackingNumber    string             `gorm:"type:varchar(64);not null;uniqueIndex"`
	SenderID          uuid.UUID          `gorm:"type:uuid;not null;index"`
	Recipient         RecipientDTO       `gorm:"embedded;embeddedPrefix:recipient_"`
	Details           DetailsDTO         `gorm:"embedded;embeddedPrefix:details_"`
	Shipping          ShippingDTO        `gorm:"embedded;embeddedPrefix:shipping_"`
	Status            string             `gorm:"type:varchar(32);not null;index"`
	AssignedCourierID *uuid.UUID         `gorm:"type:uuid;index"`
	AssignedAgentID   *uuid.UUID         `gorm:"type:uuid"`
	PaymentStatus     string             `gorm:"type:varchar(32);not null"`
	CreatedAt         time.Time          `gorm:"type:timestamptz;not null;index;autoCreateTime:false"`
	UpdatedAt         time.Time          `gorm:"type:timestamptz;not null;autoUpdateTime:false"`
	StatusHistory     []StatusHistoryDTO `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

// RecipientDTO is embedded with the recipient_ prefix.
type RecipientDTO struct {
	Name    string              `gorm:"type:varchar(255);not null"`
	Email   string              `gorm:"type:varchar(255);not null"`
	Phone   string              `gorm:"type:varchar(64);not null"`
	Address userrepo.AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

// DetailsDTO is embedded with the details_ prefix.
type DetailsDTO struct {
	Weight      float64 `gorm:"not null"`
	Length      float64 `gorm:"not null"`
	Width       float64 `gorm:"not null"`
	Height      float64 `gorm:"not null"`
	Description string  `gorm:"type:text;not null"`
	Value       float64 `gorm:"not null"`
	Category    string  `gorm:"type:varchar(32);not null"`
}

// ShippingDTO is embedded with the shipping_ prefix.
type ShippingDTO struct {
	Service           string    `gorm:"type:varchar(32);not null"`
	Cost              float64   `gorm:"not null"`
	EstimatedDelivery time.Time `gorm:"type:timestamptz;not null"`
}

// StatusHistoryDTO is one history row; Seq orders the entries of a parcel.
type StatusHistoryDTO struct {
	ParcelID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int       `gorm:"primaryKey;autoIncrement:false"`
	Status    string    `gorm:"type:varchar(32);not null"`
	Timestamp time.Time `gorm:"type:timestamptz;not null"`
	Location  string    `gorm:"type:varchar(255)"`
	Notes     string    `gorm:"type:text"`
}

func (StatusHistoryDTO) TableName() string {
	return "parcel_status_history"
}

var columns = listingsql.Columns{
	"trackingNumber":                  "tracking_number",
	"status":                          "status",
	"paymentStatus":                   "payment_status",
	"sender":                          "sender_id",
	"assignedCourier":                 "assigned_courier_id",
	"assignedAgent":                   "assigned_agent_id",
	"recipient.name":                  "recipient_name",
	"recipient.email":                 "recipient_email",
	"recipient.phone":                 "recipient_phone",
	"recipient.address.street":        "recipient_address_street",
	"recipient.address.city":          "recipient_address_city",
	"recipient.address.state":         "recipient_address_state",
	"recipient.address.zipCode":       "recipient_address_zip_code",
	"recipient.address.country":       "recipient_address_country",
	"parcelDetails.weight":            "details_weight",
	"parcelDetails.value":             "details_value",
	"parcelDetails.category":          "details_category",
	"parcelDetails.dimensions.length": "details_length",
	"parcelDetails.dimensions.width":  "details_width",
	"parcelDetails.dimensions.height": "details_height",
	"shipping.service":                "shipping_service",
	"shipping.cost":                   "shipping_cost",
	"shipping.estimatedDelivery":      "shipping_estimated_delivery",
	"createdAt":                       "created_at",
	"updatedAt":                       "updated_at",
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	k, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	parcelID := p.ID().Bytes()
	r, d, s := p.Recipient(), p.Details(), p.Shipping()

	history := make([]StatusHistoryDTO, 0, len(p.StatusHistory()))
	for i, h := range p.StatusHistory() {
		history = append(history, StatusHistoryDTO{
			ParcelID:  parcelID,
			Seq:       i,
			Status:    h.Status.String(),
			Timestamp: h.Timestamp,
			Location:  h.Location,
			Notes:     h.Notes,
		})
	}

	return ParcelDTO{
		ID:             parcelID,
		TrackingNumber: p.TrackingNumber(),
		SenderID:       p.SenderID().Bytes(),
		Recipient: RecipientDTO{
			Name:    r.Name,
			Email:   r.Email,
			Phone:   r.Phone,
			Address: userrepo.FromAddress(r.Address),
		},
		Details: DetailsDTO{
			Weight:      d.Weight,
			Length:      d.Dimensions.Length,
			Width:       d.Dimensions.Width,
			Height:      d.Dimensions.Height,
			Description: d.Description,
			Value:       d.Value,
			Category:    string(d.Category),
		},
		Shipping: ShippingDTO{
			Service:           string(s.Service),
			Cost:              s.Cost,
			EstimatedDelivery: s.EstimatedDelivery,
		},
		Status:            p.Status().String(),
		AssignedCourierID: uuidPtr(p.AssignedCourier()),
		AssignedAgentID:   uuidPtr(p.AssignedAgent()),
		PaymentStatus:     string(p.PaymentStatus()),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
		StatusHistory:     history,
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernelPtr(dto.AssignedCourierID)
	if err != nil {
		return nil, err
	}
	agentID, err := kernelPtr(dto.AssignedAgentID)
	if err != nil {
		return nil, err
	}

	history := make([]parcel.StatusHistoryEntry, 0, len(dto.StatusHistory))
	for _, h := range dto.StatusHistory {
		history = append(history, parcel.StatusHistoryEntry{
			Status:    parcel.Status(h.Status),
			Timestamp: h.Timestamp.UTC(),
			Location:  h.Location,
			Notes:     h.Notes,
		})
	}

	return parcel.Restore(parcel.State{
		ID:             id,
		TrackingNumber: dto.TrackingNumber,
		SenderID:       senderID,
		Recipient: parcel.Recipient{
			Name:    dto.Recipient.Name,
			Email:   dto.Recipient.Email,
			Phone:   dto.Recipient.Phone,
			Address: dto.Recipient.Address.ToAddress(),
		},
		Details: parcel.Details{
			Weight: dto.Details.Weight,
			Dimensions: parcel.Dimensions{
				Length: dto.Details.Length,
				Width:  dto.Details.Width,
				Height: dto.Details.Height,
			},
			Description: dto.Details.Description,
			Value:       dto.Details.Value,
			Category:    parcel.Category(dto.Details.Category),
		},
		Shipping: parcel.Shipping{
			Service:           parcel.Service(dto.Shipping.Service),
			Cost:              dto.Shipping.Cost,
			EstimatedDelivery: dto.Shipping.EstimatedDelivery.UTC(),
		},
		Status:          parcel.Status(dto.Status),
		AssignedCourier: courierID,
		AssignedAgent:   agentID,
		StatusHistory:   history,
		PaymentStatus:   parcel.PaymentStatus(dto.PaymentStatus),
		CreatedAt:       dto.CreatedAt.UTC(),
		UpdatedAt:       dto.UpdatedAt.UTC(),
	})
}
