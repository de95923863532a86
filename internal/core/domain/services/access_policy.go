package services

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"
)

// Action names something an actor wants to do.
type Action string

const (
	ReadParcel           Action = "read parcel"
	UpdateParcel         Action = "update parcel"
	DeleteParcel         Action = "delete parcel"
	AssignAgent          Action = "assign agent"
	ListAllParcels       Action = "list all parcels"
	CreateDelivery       Action = "create delivery"
	ListDeliveries       Action = "list deliveries"
	ListOwnDeliveries    Action = "list own deliveries"
	ReadDelivery         Action = "read delivery"
	UpdateDelivery       Action = "update delivery"
	ReportDeliveryStatus Action = "report delivery status"
	ReadUser             Action = "read user"
	ManageUsers          Action = "manage users"
	ManageCouriers       Action = "manage couriers"
)

// Actor is the authenticated caller.
type Actor struct {
	ID   kernel.UUID
	Role user.Role
}

// Resource carries the ownership facts a decision needs. Unset fields mean "nobody".
type Resource struct {
	// OwnerID is the parcel sender, or the user being read.
	OwnerID *kernel.UUID
	// CourierID is the courier assigned to the parcel or delivery.
	CourierID *kernel.UUID
}

// ParcelResource describes a parcel sent by sender and optionally assigned to courier.
func ParcelResource(sender kernel.UUID, courier *kernel.UUID) Resource {
	return Resource{OwnerID: &sender, CourierID: courier}
}

// DeliveryResource describes a delivery carried by courier.
func DeliveryResource(courier kernel.UUID) Resource {
	return Resource{CourierID: &courier}
}

// UserResource describes the account of id.
func UserResource(id kernel.UUID) Resource {
	return Resource{OwnerID: &id}
}

// AccessPolicy is the single place role and ownership rules live.
//
//	read parcel             sender, any courier, admin
//	update parcel           admin, assigned courier
//	read/update delivery    admin, assigned courier
//	report delivery status  assigned courier
//	read user               self, admin
//	list own deliveries     courier
//	list all parcels        courier, admin
//	everything else         admin
type AccessPolicy struct{}

// NewAccessPolicy returns the policy. It is stateless and safe to share.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize returns an AccessDeniedError when actor may not perform action on res.
func (AccessPolicy) Authorize(actor Actor, action Action, res Resource) error {
	isAdmin := actor.Role == user.Admin
	isOwner := kernel.UUIDPtrEqual(res.OwnerID, actor.ID)
	isAssignedCourier := actor.Role == user.Courier && kernel.UUIDPtrEqual(res.CourierID, actor.ID)

	var allowed bool
	switch action {
	case ReadParcel:
		allowed = isAdmin || isOwner || actor.Role == user.Courier
	case UpdateParcel, ReadDelivery, UpdateDelivery:
		allowed = isAdmin || isAssignedCourier
	case ReportDeliveryStatus:
		allowed = isAssignedCourier
	case ReadUser:
		allowed = isAdmin || isOwner
	case ListOwnDeliveries:
		allowed = actor.Role == user.Courier
	case ListAllParcels:
		allowed = actor.Role.IsStaff()
	case DeleteParcel, AssignAgent, CreateDelivery, ListDeliveries, ManageUsers, ManageCouriers:
		allowed = isAdmin
	}

	if !allowed {
		return errs.NewAccessDeniedError(string(action), "not authorized")
	}
	return nil
}

// ConcealMissing decides what a lookup miss looks like to actor. Admins see the not-found
// error; anyone else is told they are not authorized, so existence is never revealed.
func (p AccessPolicy) ConcealMissing(actor Actor, action Action, notFound error) error {
	if actor.Role == user.Admin || !errors.Is(notFound, errs.ErrObjectNotFound) {
		return notFound
	}
	return errs.NewAccessDeniedError(string(action), "not authorized")
}
