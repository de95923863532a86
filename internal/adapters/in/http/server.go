// Package http is the REST adapter: echo routes, authentication middleware and the mapping
// between JSON bodies and use case commands and queries.
package http

import (
	"log/slog"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/listing"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the routes dispatch to.
type Handlers struct {
	RegisterUser   commands.RegisterUserCommandHandler
	Login          commands.LoginCommandHandler
	UpdateProfile  commands.UpdateProfileCommandHandler
	UpdateUser     commands.UpdateUserCommandHandler
	DeleteUser     commands.DeleteUserCommandHandler
	CreateParcel   commands.CreateParcelCommandHandler
	UpdateParcel   commands.UpdateParcelCommandHandler
	DeleteParcel   commands.DeleteParcelCommandHandler
	AssignAgent    commands.AssignAgentCommandHandler
	CreateDelivery commands.CreateDeliveryCommandHandler
	UpdateDelivery commands.UpdateDeliveryCommandHandler
	ReportDelivery commands.UpdateDeliveryStatusCommandHandler

	GetUser         queries.GetUserQueryHandler
	ListUsers       queries.ListUsersQueryHandler
	GetParcel       queries.GetParcelQueryHandler
	ListParcels     queries.ListParcelsQueryHandler
	TrackParcel     queries.TrackParcelQueryHandler
	GetDelivery     queries.GetDeliveryQueryHandler
	ListDeliveries  queries.ListDeliveriesQueryHandler
	GetAllCouriers  queries.GetAllCouriersQueryHandler
	GetCourierStats queries.GetCourierStatsQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	h      Handlers
	auth   Authenticator
	logger *slog.Logger
}

// NewServer creates a server over the given use case handlers.
func NewServer(h Handlers, auth Authenticator, logger *slog.Logger) *Server {
	return &Server{h: h, auth: auth, logger: logger.With("component", "http")}
}

// bind decodes the body into req and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return c.Validate(req)
}

// parseID turns a path or body identifier into a UUID; malformed ids are client errors.
func parseID(name, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func pathID(c echo.Context) (kernel.UUID, error) {
	return parseID("id", c.Param("id"))
}

func listingQuery(c echo.Context, schema listing.Schema) (listing.Query, error) {
	return listing.ParseQuery(c.QueryParams(), schema)
}
