package queries

import (
	"context"
	"errors"

	"parceltrack/internal/pkg/errs"
)

// TrackParcelQueryHandler handles the track parcel use case.
type TrackParcelQueryHandler struct {
	reposFactory RepositoriesFactory
}

// NewTrackParcelQueryHandler wires the handler to its dependencies.
func NewTrackParcelQueryHandler(reposFactory RepositoriesFactory) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{reposFactory: reposFactory}
}

// Handle leaves AssignedCourier nil when no courier is assigned or the account is gone.
func (h TrackParcelQueryHandler) Handle(ctx context.Context, query TrackParcelQuery) (TrackingView, error) {
	if err := query.Validate(); err != nil {
		return TrackingView{}, err
	}

	repos := h.reposFactory.Create()
	p, err := repos.ParcelRepository().GetByTrackingNumber(ctx, query.TrackingNumber())
	if err != nil {
		return TrackingView{}, err
	}

	view := TrackingView{
		TrackingNumber:    p.TrackingNumber(),
		Status:            p.Status(),
		StatusHistory:     p.StatusHistory(),
		EstimatedDelivery: p.Shipping().EstimatedDelivery,
	}

	if courierID := p.AssignedCourier(); courierID != nil {
		courier, err := repos.UserRepository().Get(ctx, *courierID)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
		case err != nil:
			return TrackingView{}, err
		default:
			view.AssignedCourier = &CourierContact{ID: courier.ID(), Name: courier.Name(), Phone: courier.Phone()}
		}
	}

	return view, nil
}
