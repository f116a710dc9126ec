package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that knows which status code and error code to render.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError builds an HTTPError whose status code equals code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: code}
}

// NewHTTPErrorWithStatus builds an HTTPError with an application code distinct from the status.
func NewHTTPErrorWithStatus(code int, message string, status int) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

// Predefined errors.
var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "forbidden")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "resource not found")
	ErrConflict            = NewHTTPError(http.StatusConflict, "conflict")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// AsHTTPError extracts an *HTTPError from err's chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
