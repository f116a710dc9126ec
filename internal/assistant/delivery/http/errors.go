package http

import (
	"errors"
	"net/http"

	"task-calendar/internal/assistant"
	pkgErrors "task-calendar/pkg/errors"
)

var errSessionIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Text is required")
	case errors.Is(err, assistant.ErrSessionBusy):
		return pkgErrors.NewHTTPError(http.StatusConflict, "A command for this session is already being processed")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
