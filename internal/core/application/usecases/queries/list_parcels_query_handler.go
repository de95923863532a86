package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/listing"
)

// ListParcelsQueryHandler handles the list parcels use case.
type ListParcelsQueryHandler struct {
	reposFactory RepositoriesFactory
	policy       services.AccessPolicy
}

// NewListParcelsQueryHandler wires the handler to its dependencies.
func NewListParcelsQueryHandler(reposFactory RepositoriesFactory, policy services.AccessPolicy) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{reposFactory: reposFactory, policy: policy}
}

// Handle runs the list parcels use case.
func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) (listing.Result[*parcel.Parcel], error) {
	if err := query.Validate(); err != nil {
		return listing.Result[*parcel.Parcel]{}, err
	}

	actor := query.Actor()
	q := query.Listing()
	if query.OwnOnly() || h.policy.Authorize(actor, services.ListAllParcels, services.Resource{}) != nil {
		q = q.Where(listing.Eq("sender", actor.ID.Bytes()))
	}

	parcels, total, err := h.reposFactory.Create().ParcelRepository().List(ctx, q)
	if err != nil {
		return listing.Result[*parcel.Parcel]{}, err
	}
	return listing.NewResult(parcels, q.Page, total), nil
}
