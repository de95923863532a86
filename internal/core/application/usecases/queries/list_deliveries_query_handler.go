package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/listing"
)

// ListDeliveriesQueryHandler handles the list deliveries use case.
type ListDeliveriesQueryHandler struct {
	reposFactory RepositoriesFactory
	policy       services.AccessPolicy
}

// NewListDeliveriesQueryHandler wires the handler to its dependencies.
func NewListDeliveriesQueryHandler(reposFactory RepositoriesFactory, policy services.AccessPolicy) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{reposFactory: reposFactory, policy: policy}
}

// Handle runs the list deliveries use case.
func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesQuery,
) (listing.Result[*delivery.Delivery], error) {
	if err := query.Validate(); err != nil {
		return listing.Result[*delivery.Delivery]{}, err
	}

	actor := query.Actor()
	q := query.Listing()
	if query.OwnOnly() {
		if err := h.policy.Authorize(actor, services.ListOwnDeliveries, services.Resource{}); err != nil {
			return listing.Result[*delivery.Delivery]{}, err
		}
		q = q.Where(listing.Eq("courier", actor.ID.Bytes()))
	} else if err := h.policy.Authorize(actor, services.ListDeliveries, services.Resource{}); err != nil {
		return listing.Result[*delivery.Delivery]{}, err
	}

	deliveries, total, err := h.reposFactory.Create().DeliveryRepository().List(ctx, q)
	if err != nil {
		return listing.Result[*delivery.Delivery]{}, err
	}
	return listing.NewResult(deliveries, q.Page, total), nil
}
