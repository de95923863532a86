package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
)

// CreateDeliveryCommandHandler creates the delivery and marks the parcel picked up in one
// transaction, so neither write is visible without the other.
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
	lifecycle  services.ParcelLifecycle
}

// NewCreateDeliveryCommandHandler wires the handler to its dependencies.
func NewCreateDeliveryCommandHandler(
	uowFactory UoWFactory,
	policy services.AccessPolicy,
	lifecycle services.ParcelLifecycle,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		lifecycle:  lifecycle,
	}
}

// Handle runs the create delivery use case.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.CreateDelivery, services.Resource{}); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	deliveryRepo := uow.DeliveryRepository()
	userRepo := uow.UserRepository()

	p, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	courier, err := userRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	d, err := h.lifecycle.Assign(kernel.NewUUID(), p, courier, cmd.PickupDate(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
