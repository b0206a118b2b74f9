package booking_controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joy095/rental/logger"
	"github.com/joy095/rental/models/booking_models"
	"github.com/joy095/rental/models/shared_models"
	"github.com/joy095/rental/models/user_models"
	"github.com/joy095/rental/models/vehicle_models"
	"github.com/joy095/rental/utils"
	"github.com/joy095/rental/utils/mail"
)

// BookingController holds dependencies for reservation operations.
type BookingController struct {
	DB *pgxpool.Pool
}

// NewBookingController creates a new instance of BookingController.
func NewBookingController(db *pgxpool.Pool) *BookingController {
	return &BookingController{DB: db}
}

// CreateBookingRequest represents the JSON payload for committing a
// reservation. Dates accept RFC3339 timestamps or plain calendar dates.
type CreateBookingRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// UpdateBookingStatusRequest represents the JSON payload for an admin status
// transition.
type UpdateBookingStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	PaymentStatus string `json:"payment_status,omitempty"`
}

// parseFlexibleDate accepts RFC3339 timestamps or plain "2006-01-02" dates.
func parseFlexibleDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, utils.ErrInvalidDate
}

func parseInterval(startStr, endStr string) (booking_models.DateInterval, error) {
	start, err := parseFlexibleDate(startStr)
	if err != nil {
		return booking_models.DateInterval{}, err
	}
	end, err := parseFlexibleDate(endStr)
	if err != nil {
		return booking_models.DateInterval{}, err
	}
	return booking_models.NewDateInterval(start, end)
}

// CreateBooking commits a reservation: it re-checks conflicts at commit time
// regardless of any earlier availability read and writes nothing on failure.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.ErrorLogger.Errorf("Failed to bind booking payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking data"})
		return
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle ID"})
		return
	}

	interval, err := parseInterval(req.StartDate, req.EndDate)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInterval) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not be before start date"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	booking, err := booking_models.CreateBookingIfAvailable(c.Request.Context(), bc.DB, userID, vehicleID, interval)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found or not available"})
		case errors.Is(err, utils.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Vehicle is not available for selected dates"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create booking"})
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CheckAvailability is the advisory pre-booking check. A true result is not
// a hold; the commit path re-checks under the vehicle lock.
func (bc *BookingController) CheckAvailability(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicle_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle ID"})
		return
	}

	interval, err := parseInterval(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInterval) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not be before start date"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	conflict, err := booking_models.HasConflictingBooking(c.Request.Context(), bc.DB, vehicleID, interval)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not check availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": !conflict})
}

// GetMyBookings lists the requester's bookings with vehicle details.
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	bookings, err := booking_models.GetBookingsByUser(c.Request.Context(), bc.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetAllBookings lists every booking with details, newest first (admin).
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	bookings, err := booking_models.GetAllBookings(c.Request.Context(), bc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus applies an admin transition to a booking's status and,
// optionally, its payment status. Both are validated against their edge
// tables; re-applying the current value is accepted as a no-op rewrite.
// Payment status is not gated by booking status. Confirming re-checks date
// conflicts, so two overlapping bookings cannot both become blocking; a
// booking changed by a concurrent admin call is rejected with 409.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("booking_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status data"})
		return
	}

	if !shared_models.IsValidBookingStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown booking status"})
		return
	}
	if req.PaymentStatus != "" && !shared_models.IsValidPaymentStatus(req.PaymentStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment status"})
		return
	}

	booking, err := booking_models.GetBookingByID(c.Request.Context(), bc.DB, bookingID)
	if err != nil {
		if errors.Is(err, utils.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch booking"})
		return
	}

	if !shared_models.CanTransitionBooking(booking.Status, req.Status) {
		logger.WarnLogger.Warnf("Rejected booking transition %s -> %s for %s", booking.Status, req.Status, bookingID)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Cannot transition booking from %s to %s", booking.Status, req.Status)})
		return
	}
	if req.PaymentStatus != "" && !shared_models.CanTransitionPayment(booking.PaymentStatus, req.PaymentStatus) {
		logger.WarnLogger.Warnf("Rejected payment transition %s -> %s for %s", booking.PaymentStatus, req.PaymentStatus, bookingID)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Cannot transition payment from %s to %s", booking.PaymentStatus, req.PaymentStatus)})
		return
	}

	if err := booking_models.UpdateBookingStatus(c.Request.Context(), bc.DB, booking, req.Status, req.PaymentStatus); err != nil {
		switch {
		case errors.Is(err, utils.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, utils.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		case errors.Is(err, utils.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Vehicle is not available for selected dates"})
		case errors.Is(err, utils.ErrBookingStateChanged):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking was modified concurrently, reload and retry"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update booking status"})
		}
		return
	}

	if req.Status == shared_models.BookingStatusConfirmed && booking.Status != shared_models.BookingStatusConfirmed {
		go bc.sendConfirmationEmail(booking)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated successfully"})
}

// sendConfirmationEmail notifies the requester after an admin confirmation.
// Best effort: failures are logged and never surfaced to the admin call.
func (bc *BookingController) sendConfirmationEmail(booking *booking_models.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := user_models.GetUserByID(ctx, bc.DB, booking.UserID)
	if err != nil {
		logger.WarnLogger.Warnf("Skipping confirmation email, user %s not found: %v", booking.UserID, err)
		return
	}
	vehicle, err := vehicle_models.GetVehicleByID(ctx, bc.DB, booking.VehicleID)
	if err != nil {
		logger.WarnLogger.Warnf("Skipping confirmation email, vehicle %s not found: %v", booking.VehicleID, err)
		return
	}

	data := mail.BookingConfirmationData{
		UserName:    user.Name,
		VehicleName: vehicle.Name,
		StartDate:   booking.StartDate.Format("2006-01-02"),
		EndDate:     booking.EndDate.Format("2006-01-02"),
		TotalDays:   booking.TotalDays,
		TotalAmount: fmt.Sprintf("%d.%02d", booking.TotalAmountCents/100, booking.TotalAmountCents%100),
	}
	if err := mail.SendBookingConfirmation(user.Email, data); err != nil {
		logger.WarnLogger.Warnf("Failed to send confirmation email for booking %s: %v", booking.ID, err)
	}
}
