// utils/errors.go
package utils

import "errors"

// Request-scoped error classes. Controllers map these onto HTTP status codes
// with errors.Is; model functions wrap the underlying cause with %w.
var (
	ErrInvalidInterval = errors.New("end date must not be before start date")
	ErrInvalidDate     = errors.New("invalid date format")

	ErrVehicleNotFound = errors.New("vehicle not found or not available")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrBookingConflict     = errors.New("vehicle is not available for selected dates")
	ErrBookingStateChanged = errors.New("booking was modified concurrently")

	ErrUserIDNotFound = errors.New("authentication required: user ID not found")
	ErrUnauthorized   = errors.New("unauthorized access")
)
