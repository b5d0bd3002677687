package errors

import (
	"net/http"
)

const ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"

// NewInvalidCredentialsError is returned for any failed staff login. It never
// says whether the username or the password was wrong.
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidCredentials,
		Message: "invalid username or password",
		Code:    http.StatusUnauthorized,
	}
}

// IsInvalidCredentialsError checks if the error is a failed login
func IsInvalidCredentialsError(err error) bool {
	return isType(err, ErrorTypeInvalidCredentials)
}
