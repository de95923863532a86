package http

import (
	"parceltrack/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetCouriers handles GET /api/couriers.
func (s *Server) GetCouriers(c echo.Context) error {
	query, err := queries.NewGetAllCouriersQuery(currentActor(c))
	if err != nil {
		return s.respondError(c, err)
	}

	couriers, err := s.h.GetAllCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	response := make([]CourierResponse, len(couriers))
	for i, courier := range couriers {
		response[i] = toCourierResponse(courier)
	}
	return respondAll(c, response)
}

// GetCourierStats handles GET /api/couriers/stats.
func (s *Server) GetCourierStats(c echo.Context) error {
	query, err := queries.NewGetCourierStatsQuery(currentActor(c))
	if err != nil {
		return s.respondError(c, err)
	}

	stats, err := s.h.GetCourierStats.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	response := make([]CourierStatsResponse, len(stats))
	for i, st := range stats {
		response[i] = toCourierStatsResponse(st)
	}
	return respondAll(c, response)
}
