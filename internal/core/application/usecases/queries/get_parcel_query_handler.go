package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
)

// GetParcelQueryHandler handles the get parcel use case.
type GetParcelQueryHandler struct {
	reposFactory RepositoriesFactory
	policy       services.AccessPolicy
}

// NewGetParcelQueryHandler wires the handler to its dependencies.
func NewGetParcelQueryHandler(reposFactory RepositoriesFactory, policy services.AccessPolicy) GetParcelQueryHandler {
	return GetParcelQueryHandler{reposFactory: reposFactory, policy: policy}
}

// Handle lets the sender, any courier and admins read the parcel.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (*parcel.Parcel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p, err := h.reposFactory.Create().ParcelRepository().Get(ctx, query.ParcelID())
	if err != nil {
		return nil, err
	}

	res := services.ParcelResource(p.SenderID(), p.AssignedCourier())
	if err = h.policy.Authorize(query.Actor(), services.ReadParcel, res); err != nil {
		return nil, err
	}
	return p, nil
}
