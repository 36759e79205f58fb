package client

import (
	"errors"
	"fmt"
)

// APIError is returned when the backend answers with a non-success envelope code.
// It is a business rejection (wrong password, out of stock), not a transport failure.
type APIError struct {
	Code    int
	Message string
	Method  string
	Path    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request rejected"
	}
	return fmt.Sprintf("backend %s %s: %s (code %d)", e.Method, e.Path, msg, e.Code)
}

// AsAPIError extracts an *APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
