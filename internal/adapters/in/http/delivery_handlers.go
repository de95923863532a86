package http

import (
	"net/http"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/listing"

	"github.com/labstack/echo/v4"
)

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// CreateDelivery handles POST /api/deliveries. The parcel is marked picked up in the same
// transaction.
func (s *Server) CreateDelivery(c echo.Context) error {
	var req CreateDeliveryRequest
	if err := bind(c, &req); err != nil {
		return s.respondError(c, err)
	}

	parcelID, err := parseID("parcelId", req.ParcelID)
	if err != nil {
		return s.respondError(c, err)
	}
	courierID, err := parseID("courierId", req.CourierID)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewCreateDeliveryCommand(currentActor(c), parcelID, courierID, timeOrZero(req.PickupDate))
	if err != nil {
		return s.respondError(c, err)
	}

	d, err := s.h.CreateDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, http.StatusCreated, toDeliveryResponse(d))
}

// ListDeliveries handles GET /api/deliveries.
func (s *Server) ListDeliveries(c echo.Context) error {
	return s.listDeliveries(c, queries.NewListDeliveriesQuery)
}

// ListMyDeliveries handles GET /api/deliveries/my-deliveries.
func (s *Server) ListMyDeliveries(c echo.Context) error {
	return s.listDeliveries(c, queries.NewListMyDeliveriesQuery)
}

func (s *Server) listDeliveries(
	c echo.Context,
	newQuery func(actor services.Actor, q listing.Query) (queries.ListDeliveriesQuery, error),
) error {
	q, err := listingQuery(c, ports.DeliveryListing)
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := newQuery(currentActor(c), q)
	if err != nil {
		return s.respondError(c, err)
	}

	result, err := s.h.ListDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return respondList(c, result, toDeliveryResponse)
}

// GetDelivery handles GET /api/deliveries/:id.
func (s *Server) GetDelivery(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewGetDeliveryQuery(currentActor(c), id)
	if err != nil {
		return s.respondError(c, err)
	}

	d, err := s.h.GetDelivery.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, http.StatusOK, toDeliveryResponse(d))
}

// UpdateDelivery handles PUT /api/deliveries/:id.
func (s *Server) UpdateDelivery(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.respondError(c, err)
	}

	var req UpdateDeliveryRequest
	if err = bind(c, &req); err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewUpdateDeliveryCommand(
		currentActor(c),
		id,
		timeOrZero(req.PickupDate),
		timeOrZero(req.EstimatedDelivery),
		req.DeliveryProof.toProof(),
	)
	if err != nil {
		return s.respondError(c, err)
	}

	d, err := s.h.UpdateDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, http.StatusOK, toDeliveryResponse(d))
}

// ReportDeliveryStatus handles PUT /api/deliveries/:id/status.
func (s *Server) ReportDeliveryStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.respondError(c, err)
	}

	var req DeliveryStatusRequest
	if err = bind(c, &req); err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(currentActor(c), id, delivery.StatusUpdate{
		Status:   delivery.Status(req.Status),
		Location: req.Location,
		Notes:    req.Notes,
		Proof:    req.DeliveryProof.toProof(),
	})
	if err != nil {
		return s.respondError(c, err)
	}

	d, err := s.h.ReportDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return respond(c, http.StatusOK, toDeliveryResponse(d))
}
