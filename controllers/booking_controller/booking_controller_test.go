package booking_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joy095/rental/logger"
)

func TestMain(m *testing.M) {
	logger.InitLoggers()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeAuth stands in for the JWT middleware and injects an authenticated
// principal.
func fakeAuth(userID uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID.String())
		c.Set("role", role)
		c.Next()
	}
}

func newTestRouter() (*gin.Engine, *BookingController) {
	r := gin.New()
	controller := NewBookingController(nil)
	return r, controller
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingValidation(t *testing.T) {
	userID := uuid.New()

	t.Run("MissingAuthRejected", func(t *testing.T) {
		r, controller := newTestRouter()
		r.POST("/bookings", controller.CreateBooking)

		w := postJSON(t, r, "/bookings", map[string]string{
			"vehicle_id": uuid.New().String(),
			"start_date": "2025-03-10",
			"end_date":   "2025-03-13",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("InvalidVehicleIDRejected", func(t *testing.T) {
		r, controller := newTestRouter()
		r.POST("/bookings", fakeAuth(userID, "customer"), controller.CreateBooking)

		w := postJSON(t, r, "/bookings", map[string]string{
			"vehicle_id": "not-a-uuid",
			"start_date": "2025-03-10",
			"end_date":   "2025-03-13",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MalformedDatesRejected", func(t *testing.T) {
		r, controller := newTestRouter()
		r.POST("/bookings", fakeAuth(userID, "customer"), controller.CreateBooking)

		w := postJSON(t, r, "/bookings", map[string]string{
			"vehicle_id": uuid.New().String(),
			"start_date": "10/03/2025",
			"end_date":   "13/03/2025",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("InvertedIntervalRejected", func(t *testing.T) {
		r, controller := newTestRouter()
		r.POST("/bookings", fakeAuth(userID, "customer"), controller.CreateBooking)

		w := postJSON(t, r, "/bookings", map[string]string{
			"vehicle_id": uuid.New().String(),
			"start_date": "2025-03-13",
			"end_date":   "2025-03-10",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MissingFieldsRejected", func(t *testing.T) {
		r, controller := newTestRouter()
		r.POST("/bookings", fakeAuth(userID, "customer"), controller.CreateBooking)

		w := postJSON(t, r, "/bookings", map[string]string{
			"vehicle_id": uuid.New().String(),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCheckAvailabilityValidation(t *testing.T) {
	t.Run("InvalidVehicleIDRejected", func(t *testing.T) {
		r, controller := newTestRouter()
		r.GET("/vehicles/:vehicle_id/availability", controller.CheckAvailability)

		req, _ := http.NewRequest(http.MethodGet,
			"/vehicles/nope/availability?start_date=2025-03-10&end_date=2025-03-13", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MalformedDatesRejected", func(t *testing.T) {
		r, controller := newTestRouter()
		r.GET("/vehicles/:vehicle_id/availability", controller.CheckAvailability)

		req, _ := http.NewRequest(http.MethodGet,
			"/vehicles/"+uuid.New().String()+"/availability?start_date=soon&end_date=later", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("InvertedIntervalRejected", func(t *testing.T) {
		r, controller := newTestRouter()
		r.GET("/vehicles/:vehicle_id/availability", controller.CheckAvailability)

		req, _ := http.NewRequest(http.MethodGet,
			"/vehicles/"+uuid.New().String()+"/availability?start_date=2025-03-13&end_date=2025-03-10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateBookingStatusValidation(t *testing.T) {
	adminID := uuid.New()

	putJSON := func(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
		t.Helper()
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodPut, path, bytes.NewBuffer(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("InvalidBookingIDRejected", func(t *testing.T) {
		r, controller := newTestRouter()
		r.PUT("/bookings/:booking_id/status", fakeAuth(adminID, "admin"), controller.UpdateBookingStatus)

		w := putJSON(t, r, "/bookings/nope/status", map[string]string{"status": "confirmed"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		r, controller := newTestRouter()
		r.PUT("/bookings/:booking_id/status", fakeAuth(adminID, "admin"), controller.UpdateBookingStatus)

		w := putJSON(t, r, "/bookings/"+uuid.New().String()+"/status", map[string]string{"status": "archived"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UnknownPaymentStatusRejected", func(t *testing.T) {
		r, controller := newTestRouter()
		r.PUT("/bookings/:booking_id/status", fakeAuth(adminID, "admin"), controller.UpdateBookingStatus)

		w := putJSON(t, r, "/bookings/"+uuid.New().String()+"/status", map[string]string{
			"status":         "confirmed",
			"payment_status": "chargeback",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestParseFlexibleDate(t *testing.T) {
	t.Run("AcceptsRFC3339", func(t *testing.T) {
		got, err := parseFlexibleDate("2025-03-10T15:04:05Z")
		require.NoError(t, err)
		assert.Equal(t, 2025, got.Year())
	})

	t.Run("AcceptsPlainDate", func(t *testing.T) {
		got, err := parseFlexibleDate("2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, 10, got.Day())
	})

	t.Run("RejectsGarbage", func(t *testing.T) {
		_, err := parseFlexibleDate("next tuesday")
		assert.Error(t, err)
	})
}
