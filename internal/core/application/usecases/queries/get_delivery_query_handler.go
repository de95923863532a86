package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/services"
)

// GetDeliveryQueryHandler handles the get delivery use case.
type GetDeliveryQueryHandler struct {
	reposFactory RepositoriesFactory
	policy       services.AccessPolicy
}

// NewGetDeliveryQueryHandler wires the handler to its dependencies.
func NewGetDeliveryQueryHandler(reposFactory RepositoriesFactory, policy services.AccessPolicy) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{reposFactory: reposFactory, policy: policy}
}

// Handle answers a non-admin asking for a missing delivery with access denied.
func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (*delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	d, err := h.reposFactory.Create().DeliveryRepository().Get(ctx, query.DeliveryID())
	if err != nil {
		return nil, h.policy.ConcealMissing(actor, services.ReadDelivery, err)
	}
	if err = h.policy.Authorize(actor, services.ReadDelivery, services.DeliveryResource(d.CourierID())); err != nil {
		return nil, err
	}
	return d, nil
}
