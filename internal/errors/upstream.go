package errors

import (
	"context"
	"errors"
	"net/http"
)

// MapHTTPStatus maps a backend HTTP status to an AppError.
// 2xx statuses return nil.
func MapHTTPStatus(status int, message string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return Unauthorized(message)
	case status == http.StatusNotFound:
		return NotFound(message)
	case status == http.StatusConflict:
		return Conflict(message)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return Validation(message)
	case status == http.StatusGatewayTimeout || status == http.StatusRequestTimeout:
		return newError(ErrCodeTimeout, message)
	default:
		return Upstreamf("%s (status %d)", message, status)
	}
}

// MapTransportError maps errors from calling the backend to AppError instances.
// Context errors map to Timeout/Canceled; anything else is Upstream.
func MapTransportError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrCodeTimeout, "backend request timed out")
	}
	if errors.Is(err, context.Canceled) {
		return Wrap(err, ErrCodeCanceled, "backend request canceled")
	}
	return Wrap(err, ErrCodeUpstream, "backend request failed")
}
