package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/listing"
)

// ListUsersQueryHandler handles the list users use case.
type ListUsersQueryHandler struct {
	reposFactory RepositoriesFactory
	policy       services.AccessPolicy
}

// NewListUsersQueryHandler wires the handler to its dependencies.
func NewListUsersQueryHandler(reposFactory RepositoriesFactory, policy services.AccessPolicy) ListUsersQueryHandler {
	return ListUsersQueryHandler{reposFactory: reposFactory, policy: policy}
}

// Handle runs the list users use case.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) (listing.Result[*user.User], error) {
	if err := query.Validate(); err != nil {
		return listing.Result[*user.User]{}, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ManageUsers, services.Resource{}); err != nil {
		return listing.Result[*user.User]{}, err
	}

	q := query.Listing()
	users, total, err := h.reposFactory.Create().UserRepository().List(ctx, q)
	if err != nil {
		return listing.Result[*user.User]{}, err
	}
	return listing.NewResult(users, q.Page, total), nil
}
