package whatsapp

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when no access token or phone number id is set.
var ErrNotConfigured = errors.New("whatsapp: gateway not configured")

// APIError represents a structured Cloud API error response.
type APIError struct {
	HTTPStatus int
	Code       int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("whatsapp API error %d (code %d): %s", e.HTTPStatus, e.Code, e.Message)
}

// IsOutsideServiceWindow reports whether free text was rejected because the
// recipient has not messaged within the last 24 hours.
func IsOutsideServiceWindow(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == 131047
	}
	return false
}
