package shared_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingTransitions(t *testing.T) {
	allowed := []struct{ from, to string }{
		{BookingStatusPending, BookingStatusConfirmed},
		{BookingStatusPending, BookingStatusCancelled},
		{BookingStatusConfirmed, BookingStatusActive},
		{BookingStatusConfirmed, BookingStatusCancelled},
		{BookingStatusActive, BookingStatusCompleted},
		{BookingStatusActive, BookingStatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransitionBooking(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	rejected := []struct{ from, to string }{
		{BookingStatusPending, BookingStatusActive},
		{BookingStatusPending, BookingStatusCompleted},
		{BookingStatusConfirmed, BookingStatusCompleted},
		{BookingStatusConfirmed, BookingStatusPending},
		{BookingStatusCancelled, BookingStatusPending},
		{BookingStatusCancelled, BookingStatusConfirmed},
		{BookingStatusCompleted, BookingStatusActive},
	}
	for _, tc := range rejected {
		assert.False(t, CanTransitionBooking(tc.from, tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}

	t.Run("SameStateRewriteAccepted", func(t *testing.T) {
		for _, s := range []string{
			BookingStatusPending, BookingStatusConfirmed, BookingStatusActive,
			BookingStatusCancelled, BookingStatusCompleted,
		} {
			assert.True(t, CanTransitionBooking(s, s))
		}
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		assert.False(t, CanTransitionBooking(BookingStatusPending, "archived"))
		assert.False(t, CanTransitionBooking("archived", BookingStatusPending))
		assert.False(t, CanTransitionBooking("archived", "archived"))
	})
}

func TestPaymentTransitions(t *testing.T) {
	assert.True(t, CanTransitionPayment(PaymentStatusPending, PaymentStatusPaid))
	assert.True(t, CanTransitionPayment(PaymentStatusPending, PaymentStatusFailed))
	assert.True(t, CanTransitionPayment(PaymentStatusPaid, PaymentStatusRefunded))

	assert.False(t, CanTransitionPayment(PaymentStatusPending, PaymentStatusRefunded))
	assert.False(t, CanTransitionPayment(PaymentStatusFailed, PaymentStatusPaid))
	assert.False(t, CanTransitionPayment(PaymentStatusRefunded, PaymentStatusPaid))

	t.Run("SameStateRewriteAccepted", func(t *testing.T) {
		for _, s := range []string{
			PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded,
		} {
			assert.True(t, CanTransitionPayment(s, s))
		}
	})
}

func TestBlockingStatuses(t *testing.T) {
	assert.True(t, IsBlockingStatus(BookingStatusConfirmed))
	assert.True(t, IsBlockingStatus(BookingStatusActive))

	// pending bookings do not take dates off the market
	assert.False(t, IsBlockingStatus(BookingStatusPending))
	assert.False(t, IsBlockingStatus(BookingStatusCancelled))
	assert.False(t, IsBlockingStatus(BookingStatusCompleted))
}

func TestGenerateUUIDv7(t *testing.T) {
	a, err := GenerateUUIDv7()
	require.NoError(t, err)
	b, err := GenerateUUIDv7()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestIsValidVehicleType(t *testing.T) {
	for _, v := range []string{VehicleTypeCar, VehicleTypeMotorcycle, VehicleTypeTruck, VehicleTypeVan} {
		assert.True(t, IsValidVehicleType(v))
	}
	assert.False(t, IsValidVehicleType("boat"))
	assert.False(t, IsValidVehicleType(""))
}
