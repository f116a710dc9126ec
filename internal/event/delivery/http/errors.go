package http

import (
	"errors"
	"net/http"

	"task-calendar/internal/event"
	pkgErrors "task-calendar/pkg/errors"
)

var (
	errIDRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidTime = pkgErrors.NewHTTPError(http.StatusBadRequest, "start and end must be RFC3339 or YYYY-MM-DDTHH:MM[:SS]")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Event not found")
	case errors.Is(err, event.ErrForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "Not authorized to modify this event")
	case errors.Is(err, event.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
