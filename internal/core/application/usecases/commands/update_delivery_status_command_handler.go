package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/services"
)

// UpdateDeliveryStatusCommandHandler applies a courier report to the delivery and mirrors
// it onto the parcel in one transaction.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
	lifecycle  services.ParcelLifecycle
}

// NewUpdateDeliveryStatusCommandHandler wires the handler to its dependencies.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory UoWFactory,
	policy services.AccessPolicy,
	lifecycle services.ParcelLifecycle,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		lifecycle:  lifecycle,
	}
}

// Handle only accepts reports from the assigned courier. Anyone else gets access denied,
// whether or not the delivery exists.
func (h *UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
) (*delivery.Delivery, error) {
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
	parcelRepo := uow.ParcelRepository()
	actor := cmd.Actor()

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, h.policy.ConcealMissing(actor, services.ReportDeliveryStatus, err)
	}
	if err = h.policy.Authorize(actor, services.ReportDeliveryStatus, services.DeliveryResource(d.CourierID())); err != nil {
		return nil, err
	}

	p, err := parcelRepo.Get(ctx, d.ParcelID())
	if err != nil {
		return nil, err
	}

	if _, err = h.lifecycle.Report(d, p, cmd.Update(), time.Now()); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
