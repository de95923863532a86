package commands

import (
	"context"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"
)

// UpdateParcelCommandHandler handles the update parcel use case.
type UpdateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     services.AccessPolicy
	calculator services.ShippingCalculator
}

// NewUpdateParcelCommandHandler wires the handler to its dependencies.
func NewUpdateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	policy services.AccessPolicy,
	calculator services.ShippingCalculator,
) UpdateParcelCommandHandler {
	return UpdateParcelCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		calculator: calculator,
	}
}

// Handle applies the changes and re-prices the parcel when its weight or service changed.
// A status change records exactly one history entry; an unchanged status records none.
func (h *UpdateParcelCommandHandler) Handle(ctx context.Context, cmd UpdateParcelCommand) (*parcel.Parcel, error) {
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

	parcelRepo := uow.ParcelRepository()
	p, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if err = h.policy.Authorize(actor, services.UpdateParcel,
		services.ParcelResource(p.SenderID(), p.AssignedCourier())); err != nil {
		return nil, err
	}

	changes := cmd.Changes()
	if actor.Role != user.Admin && !changes.OnlyStatus() {
		return nil, errs.NewAccessDeniedError(string(services.UpdateParcel), "couriers may only change the status")
	}

	now := time.Now()
	if err = h.apply(ctx, uow, p, changes, now); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

func (h *UpdateParcelCommandHandler) apply(
	ctx context.Context,
	uow ParcelUoW,
	p *parcel.Parcel,
	c ParcelChanges,
	now time.Time,
) error {
	if c.Recipient != nil {
		if err := p.UpdateRecipient(*c.Recipient, now); err != nil {
			return err
		}
	}
	if c.Details != nil {
		if err := p.UpdateDetails(*c.Details, now); err != nil {
			return err
		}
	}
	if c.requote() {
		if err := h.requote(p, c.Service, now); err != nil {
			return err
		}
	}
	if c.PaymentStatus != nil {
		if err := p.SetPaymentStatus(*c.PaymentStatus, now); err != nil {
			return err
		}
	}
	if c.AssignedCourier != nil {
		courier, err := uow.UserRepository().Get(ctx, *c.AssignedCourier)
		if err != nil {
			return err
		}
		if !courier.HasRole(user.Courier) || !courier.IsActive() {
			return fmt.Errorf("%w: %w", services.ErrCourierUnavailable, errs.NewValueIsInvalidError("assignedCourier"))
		}
		if err = p.AssignCourier(courier.ID(), now); err != nil {
			return err
		}
	}
	if c.Status != nil {
		if _, err := p.ChangeStatus(*c.Status, c.Location, c.Notes, now); err != nil {
			return err
		}
	}
	return nil
}

// requote prices the current details again. A new service also moves the estimate,
// counted from the day the parcel was registered.
func (h *UpdateParcelCommandHandler) requote(p *parcel.Parcel, service *parcel.Service, now time.Time) error {
	shipping := p.Shipping()
	if service != nil && *service != shipping.Service {
		eta, err := h.calculator.EstimatedDeliveryDate(*service, p.CreatedAt())
		if err != nil {
			return err
		}
		shipping.Service = *service
		shipping.EstimatedDelivery = eta
	}

	cost, err := h.calculator.ShippingCost(p.Details().Weight, shipping.Service, services.DefaultDistance)
	if err != nil {
		return err
	}
	shipping.Cost = cost

	return p.UpdateShipping(shipping, now)
}
