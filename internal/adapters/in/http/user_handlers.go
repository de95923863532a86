package http

import (
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(c echo.Context) error {
	q, err := listingQuery(c, ports.UserListing)
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewListUsersQuery(currentActor(c), q)
	if err != nil {
		return s.respondError(c, err)
	}

	result, err := s.h.ListUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return respondList(c, result, toUserResponse)
}

// GetUser handles GET /api/users/:id.
func (s *Server) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewGetUserQuery(currentActor(c), id)
	if err != nil {
		return s.respondError(c, err)
	}

	u, err := s.h.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, http.StatusOK, toUserResponse(u))
}

// UpdateUser handles PUT /api/users/:id.
func (s *Server) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.respondError(c, err)
	}

	var req UpdateUserRequest
	if err = bind(c, &req); err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewUpdateUserCommand(id, req.changes(), req.Role, req.IsActive)
	if err != nil {
		return s.respondError(c, err)
	}

	u, err := s.h.UpdateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, http.StatusOK, toUserResponse(u))
}

// DeleteUser handles DELETE /api/users/:id.
func (s *Server) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewDeleteUserCommand(id)
	if err != nil {
		return s.respondError(c, err)
	}

	if err = s.h.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: struct{}{}})
}
