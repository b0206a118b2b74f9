package dashboard_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joy095/rental/models/booking_models"
	"github.com/joy095/rental/models/shared_models"
	"github.com/joy095/rental/models/user_models"
	"github.com/joy095/rental/models/vehicle_models"
)

// DashboardController holds dependencies for admin aggregate views.
type DashboardController struct {
	DB *pgxpool.Pool
}

// NewDashboardController creates a new instance of DashboardController.
func NewDashboardController(db *pgxpool.Pool) *DashboardController {
	return &DashboardController{DB: db}
}

// GetStats returns fleet and booking counts plus paid revenue for the admin
// dashboard.
func (dc *DashboardController) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	totalVehicles, err := vehicle_models.CountVehicles(ctx, dc.DB, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute stats"})
		return
	}
	availableVehicles, err := vehicle_models.CountVehicles(ctx, dc.DB, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute stats"})
		return
	}
	totalBookings, err := booking_models.CountBookings(ctx, dc.DB, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute stats"})
		return
	}
	activeBookings, err := booking_models.CountBookings(ctx, dc.DB, shared_models.BookingStatusActive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute stats"})
		return
	}
	totalCustomers, err := user_models.CountUsersByRole(ctx, dc.DB, shared_models.RoleCustomer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute stats"})
		return
	}
	totalRevenueCents, err := booking_models.SumPaidRevenueCents(ctx, dc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_vehicles":      totalVehicles,
		"available_vehicles":  availableVehicles,
		"total_bookings":      totalBookings,
		"active_bookings":     activeBookings,
		"total_customers":     totalCustomers,
		"total_revenue_cents": totalRevenueCents,
	})
}
