package http

import (
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/listing"

	"github.com/labstack/echo/v4"
)

// CreateParcel handles POST /api/parcels. Cost and delivery estimate are computed server side.
func (s *Server) CreateParcel(c echo.Context) error {
	var req CreateParcelRequest
	if err := bind(c, &req); err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewCreateParcelCommand(
		currentActor(c).ID,
		req.Recipient.toRecipient(),
		req.ParcelDetails.toDetails(),
		req.Shipping.Service,
	)
	if err != nil {
		return s.respondError(c, err)
	}

	p, err := s.h.CreateParcel.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, http.StatusCreated, toParcelResponse(p))
}

// ListParcels handles GET /api/parcels. Customers only see the parcels they sent.
func (s *Server) ListParcels(c echo.Context) error {
	return s.listParcels(c, queries.NewListParcelsQuery)
}

// ListMyParcels handles GET /api/parcels/my-parcels.
func (s *Server) ListMyParcels(c echo.Context) error {
	return s.listParcels(c, queries.NewListMyParcelsQuery)
}

func (s *Server) listParcels(
	c echo.Context,
	newQuery func(actor services.Actor, q listing.Query) (queries.ListParcelsQuery, error),
) error {
	q, err := listingQuery(c, ports.ParcelListing)
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := newQuery(currentActor(c), q)
	if err != nil {
		return s.respondError(c, err)
	}

	result, err := s.h.ListParcels.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return respondList(c, result, toParcelResponse)
}

// TrackParcel handles GET /api/parcels/track/:trackingNumber without authentication.
func (s *Server) TrackParcel(c echo.Context) error {
	query, err := queries.NewTrackParcelQuery(c.Param("trackingNumber"))
	if err != nil {
		return s.respondError(c, err)
	}

	view, err := s.h.TrackParcel.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, http.StatusOK, toTrackingResponse(view))
}

// GetParcel handles GET /api/parcels/:id.
func (s *Server) GetParcel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewGetParcelQuery(currentActor(c), id)
	if err != nil {
		return s.respondError(c, err)
	}

	p, err := s.h.GetParcel.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, http.StatusOK, toParcelResponse(p))
}

// UpdateParcel handles PUT /api/parcels/:id.
func (s *Server) UpdateParcel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.respondError(c, err)
	}

	var req UpdateParcelRequest
	if err = bind(c, &req); err != nil {
		return s.respondError(c, err)
	}
	changes, err := req.changes()
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewUpdateParcelCommand(currentActor(c), id, changes)
	if err != nil {
		return s.respondError(c, err)
	}

	p, err := s.h.UpdateParcel.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, http.StatusOK, toParcelResponse(p))
}

// DeleteParcel handles DELETE /api/parcels/:id.
func (s *Server) DeleteParcel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewDeleteParcelCommand(currentActor(c), id)
	if err != nil {
		return s.respondError(c, err)
	}

	if err = s.h.DeleteParcel.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: struct{}{}})
}

// AssignAgent handles PATCH /api/parcels/:id/assign-agent.
func (s *Server) AssignAgent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.respondError(c, err)
	}

	var req AssignAgentRequest
	if err = bind(c, &req); err != nil {
		return s.respondError(c, err)
	}
	agentID, err := parseID("agentId", req.AgentID)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewAssignAgentCommand(currentActor(c), id, agentID)
	if err != nil {
		return s.respondError(c, err)
	}

	p, err := s.h.AssignAgent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, http.StatusOK, toParcelResponse(p))
}
