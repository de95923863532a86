package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/services"
)

// UpdateDeliveryCommandHandler handles the update delivery use case.
type UpdateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewUpdateDeliveryCommandHandler wires the handler to its dependencies.
func NewUpdateDeliveryCommandHandler(uowFactory UoWFactory, policy services.AccessPolicy) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{uowFactory: uowFactory, policy: policy}
}

// Handle answers a courier asking for someone else's, or a missing, delivery with the same
// access denied error.
func (h *UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	actor := cmd.Actor()

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, h.policy.ConcealMissing(actor, services.UpdateDelivery, err)
	}
	if err = h.policy.Authorize(actor, services.UpdateDelivery, services.DeliveryResource(d.CourierID())); err != nil {
		return nil, err
	}

	now := time.Now()
	if err = d.Reschedule(cmd.PickupDate(), cmd.EstimatedDelivery(), now); err != nil {
		return nil, err
	}
	if proof := cmd.Proof(); proof != nil {
		if err = d.AttachProof(*proof, now); err != nil {
			return nil, err
		}
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
