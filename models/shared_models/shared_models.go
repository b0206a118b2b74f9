package shared_models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joy095/rental/logger"
	"github.com/joy095/rental/utils"
)

// User roles
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Vehicle types
const (
	VehicleTypeCar        = "car"
	VehicleTypeMotorcycle = "motorcycle"
	VehicleTypeTruck      = "truck"
	VehicleTypeVan        = "van"
)

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusActive    = "active"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment status, tracked independently of booking status
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

const ACCESS_TOKEN_EXPIRY = time.Hour * 24 * 7

// BlockingStatuses are the booking statuses that reserve a vehicle's dates.
// Pending bookings do not block: only an admin confirmation takes the dates
// off the market.
var BlockingStatuses = []string{BookingStatusConfirmed, BookingStatusActive}

// bookingTransitions is the allowed-edges table for booking status.
// cancelled and completed are terminal.
var bookingTransitions = map[string][]string{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusActive, BookingStatusCancelled},
	BookingStatusActive:    {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCancelled: {},
	BookingStatusCompleted: {},
}

// paymentTransitions is the allowed-edges table for payment status. It is not
// gated by booking status: paid-while-cancelled is a legal combination.
var paymentTransitions = map[string][]string{
	PaymentStatusPending:  {PaymentStatusPaid, PaymentStatusFailed},
	PaymentStatusPaid:     {PaymentStatusRefunded},
	PaymentStatusFailed:   {},
	PaymentStatusRefunded: {},
}

// IsValidBookingStatus reports whether s names a known booking status.
func IsValidBookingStatus(s string) bool {
	_, ok := bookingTransitions[s]
	return ok
}

// IsValidPaymentStatus reports whether s names a known payment status.
func IsValidPaymentStatus(s string) bool {
	_, ok := paymentTransitions[s]
	return ok
}

// IsValidVehicleType reports whether t names a known vehicle type.
func IsValidVehicleType(t string) bool {
	switch t {
	case VehicleTypeCar, VehicleTypeMotorcycle, VehicleTypeTruck, VehicleTypeVan:
		return true
	}
	return false
}

// IsBlockingStatus reports whether a booking in status s reserves its dates.
func IsBlockingStatus(s string) bool {
	for _, b := range BlockingStatuses {
		if s == b {
			return true
		}
	}
	return false
}

// CanTransitionBooking validates a booking status change against the edge
// table. Re-applying the current status is accepted as a no-op rewrite.
func CanTransitionBooking(current, next string) bool {
	if current == next {
		return IsValidBookingStatus(next)
	}
	for _, allowed := range bookingTransitions[current] {
		if next == allowed {
			return true
		}
	}
	return false
}

// CanTransitionPayment validates a payment status change against the edge
// table. Same-state rewrites are accepted.
func CanTransitionPayment(current, next string) bool {
	if current == next {
		return IsValidPaymentStatus(next)
	}
	for _, allowed := range paymentTransitions[current] {
		if next == allowed {
			return true
		}
	}
	return false
}

// GenerateUUIDv7 generates a new UUIDv7
func GenerateUUIDv7() (uuid.UUID, error) {
	return uuid.NewV7()
}

// GenerateAccessToken creates a signed JWT carrying the user ID and role.
func GenerateAccessToken(userID uuid.UUID, role string, duration time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    role,
		"iat":     now.Unix(),
		"exp":     now.Add(duration).Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := utils.GetJWTSecret()

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		logger.ErrorLogger.Errorf("failed to sign access token: %v", err)
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}
