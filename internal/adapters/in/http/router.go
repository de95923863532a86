package http

import (
	"log/slog"
	"net/http"

	"parceltrack/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance with every route and middleware installed.
func NewRouter(s *Server, corsOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewCustomValidator()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		_ = s.respondError(c, err)
	}

	e.Use(middleware.Recover())
	if len(corsOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: corsOrigins}))
	}
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)
	auth.GET("/me", s.Me, s.Protect)
	auth.PUT("/profile", s.UpdateProfile, s.Protect)

	users := api.Group("/users", s.Protect)
	users.GET("", s.ListUsers, s.Authorize(user.Admin))
	users.GET("/:id", s.GetUser)
	users.PUT("/:id", s.UpdateUser, s.Authorize(user.Admin))
	users.DELETE("/:id", s.DeleteUser, s.Authorize(user.Admin))

	// The public tracking route is registered outside the protected group.
	api.GET("/parcels/track/:trackingNumber", s.TrackParcel)
	parcels := api.Group("/parcels", s.Protect)
	parcels.POST("", s.CreateParcel)
	parcels.GET("", s.ListParcels)
	parcels.GET("/my-parcels", s.ListMyParcels)
	parcels.GET("/:id", s.GetParcel)
	parcels.PUT("/:id", s.UpdateParcel, s.Authorize(user.Admin, user.Courier))
	parcels.DELETE("/:id", s.DeleteParcel, s.Authorize(user.Admin))
	parcels.PATCH("/:id/assign-agent", s.AssignAgent, s.Authorize(user.Admin))

	deliveries := api.Group("/deliveries", s.Protect)
	deliveries.GET("", s.ListDeliveries, s.Authorize(user.Admin))
	deliveries.POST("", s.CreateDelivery, s.Authorize(user.Admin))
	deliveries.GET("/my-deliveries", s.ListMyDeliveries, s.Authorize(user.Courier))
	deliveries.GET("/:id", s.GetDelivery)
	deliveries.PUT("/:id", s.UpdateDelivery, s.Authorize(user.Admin, user.Courier))
	deliveries.PUT("/:id/status", s.ReportDeliveryStatus, s.Authorize(user.Courier))

	couriers := api.Group("/couriers", s.Protect, s.Authorize(user.Admin))
	couriers.GET("", s.GetCouriers)
	couriers.GET("/stats", s.GetCourierStats)

	return e
}
