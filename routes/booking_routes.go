package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/joy095/rental/config/db"
	"github.com/joy095/rental/controllers/booking_controller"
	middleware "github.com/joy095/rental/middlewares"
	"github.com/joy095/rental/middlewares/auth"
)

// RegisterBookingRoutes registers reservation commitment, listing and admin
// status transition routes.
func RegisterBookingRoutes(router *gin.Engine) {
	bookingController := booking_controller.NewBookingController(db.DB)

	protected := router.Group("/bookings")
	protected.Use(auth.AuthMiddleware())
	{
		protected.POST("",
			middleware.CombinedRateLimiter("create-booking", "5-1m", "20-10m"),
			bookingController.CreateBooking)

		protected.GET("", bookingController.GetMyBookings)
	}

	admin := router.Group("/bookings")
	admin.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
	{
		admin.GET("/all", bookingController.GetAllBookings)

		admin.PUT("/:booking_id/status",
			middleware.NewRateLimiter("20-1m", "update-booking-status"),
			bookingController.UpdateBookingStatus)
	}
}
