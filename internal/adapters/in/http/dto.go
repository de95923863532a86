package http

import (
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
)

// Request bodies.

// AddressBody is the postal address accepted in requests.
type AddressBody struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

func (a AddressBody) toAddress() kernel.Address {
	return kernel.Address{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string       `json:"name" validate:"required"`
	Email    string       `json:"email" validate:"required,email"`
	Password string       `json:"password" validate:"required,min=6"`
	Phone    string       `json:"phone"`
	Role     string       `json:"role" validate:"omitempty,oneof=customer courier admin"`
	Address  *AddressBody `json:"address"`
}

func (r RegisterRequest) profile() user.Profile {
	p := user.Profile{Name: r.Name, Email: r.Email, Phone: r.Phone}
	if r.Address != nil {
		addr := r.Address.toAddress()
		p.Address = &addr
	}
	return p
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileRequest carries optional profile changes; absent fields are left as stored.
type ProfileRequest struct {
	Name    *string      `json:"name" validate:"omitempty,min=1"`
	Email   *string      `json:"email" validate:"omitempty,email"`
	Phone   *string      `json:"phone"`
	Address *AddressBody `json:"address"`
}

func (r ProfileRequest) changes() commands.ProfileChanges {
	c := commands.ProfileChanges{Name: r.Name, Email: r.Email, Phone: r.Phone}
	if r.Address != nil {
		addr := r.Address.toAddress()
		c.Address = &addr
	}
	return c
}

// UpdateUserRequest is the admin view of ProfileRequest, adding role and activation.
type UpdateUserRequest struct {
	ProfileRequest
	Role     string `json:"role" validate:"omitempty,oneof=customer courier admin"`
	IsActive *bool  `json:"isActive"`
}

// RecipientBody is the recipient snapshot sent when creating a parcel.
type RecipientBody struct {
	Name    string      `json:"name" validate:"required"`
	Email   string      `json:"email" validate:"required,email"`
	Phone   string      `json:"phone" validate:"required"`
	Address AddressBody `json:"address"`
}

func (r RecipientBody) toRecipient() parcel.Recipient {
	return parcel.Recipient{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address.toAddress()}
}

// DimensionsBody holds the parcel size in centimeters.
type DimensionsBody struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DetailsBody describes the physical parcel.
type DetailsBody struct {
	Weight      float64        `json:"weight" validate:"gt=0"`
	Dimensions  DimensionsBody `json:"dimensions"`
	Description string         `json:"description"`
	Value       float64        `json:"value" validate:"gte=0"`
	Category    string         `json:"category"`
}

func (d DetailsBody) toDetails() parcel.Details {
	return parcel.Details{
		Weight:      d.Weight,
		Dimensions:  parcel.Dimensions{Length: d.Dimensions.Length, Width: d.Dimensions.Width, Height: d.Dimensions.Height},
		Description: d.Description,
		Value:       d.Value,
		Category:    parcel.Category(d.Category),
	}
}

// ShippingBody selects the shipping service.
type ShippingBody struct {
	Service string `json:"service"`
}

// CreateParcelRequest is the body of POST /api/parcels.
type CreateParcelRequest struct {
	Recipient     RecipientBody `json:"recipient"`
	ParcelDetails DetailsBody   `json:"parcelDetails"`
	Shipping      ShippingBody  `json:"shipping"`
}

// UpdateParcelRequest is the body of PUT /api/parcels/:id.
type UpdateParcelRequest struct {
	Recipient       *RecipientBody `json:"recipient"`
	ParcelDetails   *DetailsBody   `json:"parcelDetails"`
	Shipping        *ShippingBody  `json:"shipping"`
	Status          *string        `json:"status"`
	Location        string         `json:"location"`
	Notes           string         `json:"notes"`
	PaymentStatus   *string        `json:"paymentStatus"`
	AssignedCourier *string        `json:"assignedCourier" validate:"omitempty,uuid"`
}

func (r UpdateParcelRequest) changes() (commands.ParcelChanges, error) {
	c := commands.ParcelChanges{Location: r.Location, Notes: r.Notes}
	if r.Recipient != nil {
		rec := r.Recipient.toRecipient()
		c.Recipient = &rec
	}
	if r.ParcelDetails != nil {
		d := r.ParcelDetails.toDetails()
		c.Details = &d
	}
	if r.Shipping != nil && r.Shipping.Service != "" {
		svc := parcel.Service(r.Shipping.Service)
		c.Service = &svc
	}
	if r.Status != nil {
		st := parcel.Status(*r.Status)
		c.Status = &st
	}
	if r.PaymentStatus != nil {
		ps := parcel.PaymentStatus(*r.PaymentStatus)
		c.PaymentStatus = &ps
	}
	if r.AssignedCourier != nil {
		id, err := parseID("assignedCourier", *r.AssignedCourier)
		if err != nil {
			return commands.ParcelChanges{}, err
		}
		c.AssignedCourier = &id
	}
	return c, nil
}

// AssignAgentRequest is the body of PATCH /api/parcels/:id/assign-agent.
type AssignAgentRequest struct {
	AgentID string `json:"agentId" validate:"required,uuid"`
}

// ProofBody is the delivery proof reported by a courier.
type ProofBody struct {
	Signature     string `json:"signature"`
	Photo         string `json:"photo"`
	RecipientName string `json:"recipientName"`
	Notes         string `json:"notes"`
}

func (p *ProofBody) toProof() *delivery.Proof {
	if p == nil {
		return nil
	}
	return &delivery.Proof{Signature: p.Signature, Photo: p.Photo, RecipientName: p.RecipientName, Notes: p.Notes}
}

// CreateDeliveryRequest is the body of POST /api/deliveries.
type CreateDeliveryRequest struct {
	ParcelID   string     `json:"parcelId" validate:"required,uuid"`
	CourierID  string     `json:"courierId" validate:"required,uuid"`
	PickupDate *time.Time `json:"pickupDate"`
}

// UpdateDeliveryRequest is the body of PUT /api/deliveries/:id.
type UpdateDeliveryRequest struct {
	PickupDate        *time.Time `json:"pickupDate"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	DeliveryProof     *ProofBody `json:"deliveryProof"`
}

// DeliveryStatusRequest is the body of PUT /api/deliveries/:id/status.
type DeliveryStatusRequest struct {
	Status        string     `json:"status" validate:"required"`
	Location      string     `json:"location"`
	Notes         string     `json:"notes"`
	DeliveryProof *ProofBody `json:"deliveryProof"`
}

// Response bodies.

// AddressResponse renders a postal address.
type AddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

func toAddressResponse(a kernel.Address) AddressResponse {
	return AddressResponse{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Role      string           `json:"role"`
	Address   *AddressResponse `json:"address,omitempty"`
	IsActive  bool             `json:"isActive"`
	CreatedAt time.Time        `json:"createdAt"`
}

func toUserResponse(u *user.User) UserResponse {
	r := UserResponse{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email(),
		Phone:     u.Phone(),
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
	if a := u.Address(); a != nil {
		addr := toAddressResponse(*a)
		r.Address = &addr
	}
	return r
}

// RecipientResponse renders the recipient snapshot.
type RecipientResponse struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address AddressResponse `json:"address"`
}

// DimensionsResponse renders the parcel size.
type DimensionsResponse struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DetailsResponse renders the physical parcel details.
type DetailsResponse struct {
	Weight      float64            `json:"weight"`
	Dimensions  DimensionsResponse `json:"dimensions"`
	Description string             `json:"description"`
	Value       float64            `json:"value"`
	Category    string             `json:"category"`
}

// ShippingResponse renders the shipping quote.
type ShippingResponse struct {
	Service           string    `json:"service"`
	Cost              float64   `json:"cost"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// StatusHistoryResponse renders one status history entry.
type StatusHistoryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes,omitempty"`
}

// ParcelResponse is the full parcel view returned to authorized users.
type ParcelResponse struct {
	ID              string                  `json:"id"`
	TrackingNumber  string                  `json:"trackingNumber"`
	Sender          string                  `json:"sender"`
	Recipient       RecipientResponse       `json:"recipient"`
	ParcelDetails   DetailsResponse         `json:"parcelDetails"`
	Shipping        ShippingResponse        `json:"shipping"`
	Status          string                  `json:"status"`
	AssignedCourier *string                 `json:"assignedCourier,omitempty"`
	AssignedAgent   *string                 `json:"assignedAgent,omitempty"`
	StatusHistory   []StatusHistoryResponse `json:"statusHistory"`
	PaymentStatus   string                  `json:"paymentStatus"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toHistoryResponse(entries []parcel.StatusHistoryEntry) []StatusHistoryResponse {
	out := make([]StatusHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, StatusHistoryResponse{
			Status:    string(e.Status),
			Timestamp: e.Timestamp,
			Location:  e.Location,
			Notes:     e.Notes,
		})
	}
	return out
}

func toParcelResponse(p *parcel.Parcel) ParcelResponse {
	rec := p.Recipient()
	det := p.Details()
	ship := p.Shipping()
	return ParcelResponse{
		ID:             p.ID().String(),
		TrackingNumber: p.TrackingNumber(),
		Sender:         p.SenderID().String(),
		Recipient: RecipientResponse{
			Name:    rec.Name,
			Email:   rec.Email,
			Phone:   rec.Phone,
			Address: toAddressResponse(rec.Address),
		},
		ParcelDetails: DetailsResponse{
			Weight: det.Weight,
			Dimensions: DimensionsResponse{
				Length: det.Dimensions.Length,
				Width:  det.Dimensions.Width,
				Height: det.Dimensions.Height,
			},
			Description: det.Description,
			Value:       det.Value,
			Category:    string(det.Category),
		},
		Shipping: ShippingResponse{
			Service:           string(ship.Service),
			Cost:              ship.Cost,
			EstimatedDelivery: ship.EstimatedDelivery,
		},
		Status:          string(p.Status()),
		AssignedCourier: idString(p.AssignedCourier()),
		AssignedAgent:   idString(p.AssignedAgent()),
		StatusHistory:   toHistoryResponse(p.StatusHistory()),
		PaymentStatus:   string(p.PaymentStatus()),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

// CourierContactResponse exposes the courier contact on the public tracking page.
type CourierContactResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// TrackingResponse is the public tracking view. It carries no sender data.
type TrackingResponse struct {
	TrackingNumber    string                  `json:"trackingNumber"`
	Status            string                  `json:"status"`
	StatusHistory     []StatusHistoryResponse `json:"statusHistory"`
	EstimatedDelivery time.Time               `json:"estimatedDelivery"`
	AssignedCourier   *CourierContactResponse `json:"assignedCourier"`
}

func toTrackingResponse(v queries.TrackingView) TrackingResponse {
	r := TrackingResponse{
		TrackingNumber:    v.TrackingNumber,
		Status:            string(v.Status),
		StatusHistory:     toHistoryResponse(v.StatusHistory),
		EstimatedDelivery: v.EstimatedDelivery,
	}
	if c := v.AssignedCourier; c != nil {
		r.AssignedCourier = &CourierContactResponse{ID: c.ID.String(), Name: c.Name, Phone: c.Phone}
	}
	return r
}

// RouteEntryResponse renders one route entry.
type RouteEntryResponse struct {
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ProofResponse renders the delivery proof.
type ProofResponse struct {
	Signature     string `json:"signature,omitempty"`
	Photo         string `json:"photo,omitempty"`
	RecipientName string `json:"recipientName,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// DeliveryResponse is the delivery view returned to couriers and admins.
type DeliveryResponse struct {
	ID                string               `json:"id"`
	Parcel            string               `json:"parcel"`
	Courier           string               `json:"courier"`
	PickupDate        time.Time            `json:"pickupDate"`
	EstimatedDelivery time.Time            `json:"estimatedDelivery"`
	ActualDelivery    *time.Time           `json:"actualDelivery,omitempty"`
	Route             []RouteEntryResponse `json:"route"`
	DeliveryProof     *ProofResponse       `json:"deliveryProof,omitempty"`
	Status            string               `json:"status"`
	Attempts          int                  `json:"attempts"`
	FailureReason     string               `json:"failureReason,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

func toDeliveryResponse(d *delivery.Delivery) DeliveryResponse {
	route := make([]RouteEntryResponse, 0, len(d.Route()))
	for _, e := range d.Route() {
		route = append(route, RouteEntryResponse{Location: e.Location, Status: string(e.Status), Timestamp: e.Timestamp})
	}

	r := DeliveryResponse{
		ID:                d.ID().String(),
		Parcel:            d.ParcelID().String(),
		Courier:           d.CourierID().String(),
		PickupDate:        d.PickupDate(),
		EstimatedDelivery: d.EstimatedDelivery(),
		ActualDelivery:    d.ActualDelivery(),
		Route:             route,
		Status:            string(d.Status()),
		Attempts:          d.Attempts(),
		FailureReason:     d.FailureReason(),
		CreatedAt:         d.CreatedAt(),
		UpdatedAt:         d.UpdatedAt(),
	}
	if p := d.Proof(); p != nil {
		r.DeliveryProof = &ProofResponse{
			Signature:     p.Signature,
			Photo:         p.Photo,
			RecipientName: p.RecipientName,
			Notes:         p.Notes,
		}
	}
	return r
}

// CourierResponse renders one courier in the couriers listing.
type CourierResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"isActive"`
}

func toCourierResponse(c queries.CourierView) CourierResponse {
	return CourierResponse{ID: c.ID.String(), Name: c.Name, Email: c.Email, Phone: c.Phone, IsActive: c.IsActive}
}

// CourierStatsResponse holds the delivery counters of one courier.
type CourierStatsResponse struct {
	Courier          CourierResponse `json:"courier"`
	AssignedParcels  int64           `json:"assignedParcels"`
	DeliveredParcels int64           `json:"deliveredParcels"`
	InTransitParcels int64           `json:"inTransitParcels"`
	DeliveryRate     float64         `json:"deliveryRate"`
}

func toCourierStatsResponse(s queries.CourierStats) CourierStatsResponse {
	return CourierStatsResponse{
		Courier:          toCourierResponse(s.Courier),
		AssignedParcels:  s.AssignedParcels,
		DeliveredParcels: s.DeliveredParcels,
		InTransitParcels: s.InTransitParcels,
		DeliveryRate:     s.DeliveryRate,
	}
}
