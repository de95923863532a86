package commands

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"
)

// TrackingNumberAttempts bounds how often a colliding tracking number is regenerated.
const TrackingNumberAttempts = 3

// CreateParcelCommandHandler quotes the parcel and stores it with a fresh tracking number.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	calculator services.ShippingCalculator
}

// NewCreateParcelCommandHandler wires the handler to its dependencies.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	calculator services.ShippingCalculator,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle retries with a new tracking number when the store reports a collision. Each
// attempt runs in its own transaction, since a failed insert aborts the one it ran in.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	shipping, err := h.calculator.Quote(cmd.Details().Weight, cmd.Service(), now)
	if err != nil {
		return nil, err
	}

	id := kernel.NewUUID()
	for attempt := 1; ; attempt++ {
		p, err := parcel.NewParcel(id, parcel.NewTrackingNumber(now), cmd.SenderID(),
			cmd.Recipient(), cmd.Details(), shipping, now)
		if err != nil {
			return nil, err
		}

		err = h.store(ctx, p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, ports.ErrDuplicateTrackingNumber) || attempt == TrackingNumberAttempts {
			return nil, err
		}
		now = time.Now()
	}
}

func (h *CreateParcelCommandHandler) store(ctx context.Context, p *parcel.Parcel) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ParcelRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
