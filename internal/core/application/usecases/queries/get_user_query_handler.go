package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/domain/services"
)

// GetUserQueryHandler handles the get user use case.
type GetUserQueryHandler struct {
	reposFactory RepositoriesFactory
	policy       services.AccessPolicy
}

// NewGetUserQueryHandler wires the handler to its dependencies.
func NewGetUserQueryHandler(reposFactory RepositoriesFactory, policy services.AccessPolicy) GetUserQueryHandler {
	return GetUserQueryHandler{reposFactory: reposFactory, policy: policy}
}

// Handle checks access before the lookup, so only admins can tell a missing account apart.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ReadUser, services.UserResource(query.UserID())); err != nil {
		return nil, err
	}

	return h.reposFactory.Create().UserRepository().Get(ctx, query.UserID())
}
