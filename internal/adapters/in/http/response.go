package http

import (
	"errors"
	"log/slog"
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/listing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	msgServerError   = "Server error"
	msgNotAuthorized = "Not authorized to access this route"
)

// Envelope is the body of every response.
type Envelope struct {
	Success    bool                `json:"success"`
	Data       any                 `json:"data,omitempty"`
	Count      *int                `json:"count,omitempty"`
	Pagination *listing.Pagination `json:"pagination,omitempty"`
	Message    string              `json:"message,omitempty"`
	Token      string              `json:"token,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

func respondList[T, U any](c echo.Context, r listing.Result[T], fn func(T) U) error {
	page := listing.Map(r, fn)
	return c.JSON(http.StatusOK, Envelope{
		Success:    true,
		Data:       page.Data,
		Count:      &page.Count,
		Pagination: &page.Pagination,
	})
}

func respondAll[T any](c echo.Context, items []T) error {
	count := len(items)
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: items, Count: &count})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: status < http.StatusBadRequest, Message: message})
}

// respondError is the single place errors become status codes:
// validation 400, not found 404, access denied 401, everything else 500.
func (s *Server) respondError(c echo.Context, err error) error {
	var (
		httpErr  *echo.HTTPError
		notFound *errs.ObjectNotFoundError
		invalid  validator.ValidationErrors
	)

	switch {
	case errors.Is(err, ports.ErrDuplicateEmail):
		return respondMessage(c, http.StatusBadRequest, ports.ErrDuplicateEmail.Error())
	case errors.As(err, &invalid):
		return respondMessage(c, http.StatusBadRequest, validationMessage(invalid))
	case errs.IsValidation(err):
		return respondMessage(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		return respondMessage(c, http.StatusNotFound, notFound.ParamName+" not found")
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondMessage(c, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrInvalidCredentials):
		return respondMessage(c, http.StatusUnauthorized, commands.ErrInvalidCredentials.Error())
	case errors.Is(err, errs.ErrAccessDenied), errors.Is(err, ports.ErrInvalidToken):
		return respondMessage(c, http.StatusUnauthorized, msgNotAuthorized)
	case errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError:
		return respondMessage(c, httpErr.Code, http.StatusText(httpErr.Code))
	}

	s.logger.ErrorContext(c.Request().Context(), "request failed",
		slog.String("method", c.Request().Method),
		slog.String("path", c.Path()),
		slog.Any("error", err),
	)
	return respondMessage(c, http.StatusInternalServerError, msgServerError)
}
