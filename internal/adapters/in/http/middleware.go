package http

import (
	"errors"
	"strings"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	ctxUser  = "user"
	ctxActor = "actor"
)

var errNoToken = errors.New("no bearer token")

// Authenticator resolves the bearer token of a request to an active user.
type Authenticator struct {
	tokens       ports.TokenService
	reposFactory queries.RepositoriesFactory
}

// NewAuthenticator resolves bearer tokens to users through tokens and the user repository.
func NewAuthenticator(tokens ports.TokenService, reposFactory queries.RepositoriesFactory) Authenticator {
	return Authenticator{tokens: tokens, reposFactory: reposFactory}
}

// Protect rejects requests without a valid token for an existing, active account.
func (s *Server) Protect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return s.respondError(c, errs.NewAccessDeniedError("authenticate", errNoToken.Error()))
		}

		id, err := s.auth.tokens.Verify(token)
		if err != nil {
			return s.respondError(c, err)
		}

		u, err := s.auth.reposFactory.Create().UserRepository().Get(c.Request().Context(), id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return s.respondError(c, errs.NewAccessDeniedError("authenticate", "user no longer exists"))
		}
		if err != nil {
			return s.respondError(c, err)
		}
		if !u.IsActive() {
			return s.respondError(c, errs.NewAccessDeniedError("authenticate", "account is deactivated"))
		}

		c.Set(ctxUser, u)
		c.Set(ctxActor, services.Actor{ID: u.ID(), Role: u.Role()})
		return next(c)
	}
}

// Authorize admits only the given roles. It must run after Protect.
func (s *Server) Authorize(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := c.Get(ctxUser).(*user.User)
			if !ok || !u.HasRole(roles...) {
				return s.respondError(c, errs.NewAccessDeniedError(c.Path(), "role is not allowed"))
			}
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func currentUser(c echo.Context) *user.User {
	u, _ := c.Get(ctxUser).(*user.User)
	return u
}

func currentActor(c echo.Context) services.Actor {
	a, _ := c.Get(ctxActor).(services.Actor)
	return a
}
