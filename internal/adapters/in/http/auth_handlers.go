package http

import (
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Register handles POST /api/auth/register.
func (s *Server) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewRegisterUserCommand(req.profile(), req.Password, req.Role)
	if err != nil {
		return s.respondError(c, err)
	}

	session, err := s.h.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Token:   session.Token,
		Data:    toUserResponse(session.User),
	})
}

// Login handles POST /api/auth/login.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return s.respondError(c, err)
	}

	session, err := s.h.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Token:   session.Token,
		Data:    toUserResponse(session.User),
	})
}

// Me handles GET /api/auth/me.
func (s *Server) Me(c echo.Context) error {
	actor := currentActor(c)
	query, err := queries.NewGetUserQuery(actor, actor.ID)
	if err != nil {
		return s.respondError(c, err)
	}

	u, err := s.h.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, http.StatusOK, toUserResponse(u))
}

// UpdateProfile handles PUT /api/auth/profile.
func (s *Server) UpdateProfile(c echo.Context) error {
	var req ProfileRequest
	if err := bind(c, &req); err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewUpdateProfileCommand(currentUser(c).ID(), req.changes())
	if err != nil {
		return s.respondError(c, err)
	}

	u, err := s.h.UpdateProfile.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, http.StatusOK, toUserResponse(u))
}
