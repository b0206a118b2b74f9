package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/joy095/rental/config/db"
	"github.com/joy095/rental/controllers/booking_controller"
	"github.com/joy095/rental/controllers/vehicle_controller"
	middleware "github.com/joy095/rental/middlewares"
	"github.com/joy095/rental/middlewares/auth"
)

// RegisterVehicleRoutes registers the public catalog, the advisory
// availability check and the admin fleet management routes.
func RegisterVehicleRoutes(router *gin.Engine) {
	vehicleController := vehicle_controller.NewVehicleController(db.DB)
	bookingController := booking_controller.NewBookingController(db.DB)

	// Public routes
	router.GET("/vehicles", vehicleController.GetVehicles)
	router.GET("/vehicles/:vehicle_id/availability",
		middleware.NewRateLimiter("30-1m", "check-availability"),
		bookingController.CheckAvailability)

	// Admin routes
	adminGroup := router.Group("/vehicles")
	adminGroup.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
	{
		adminGroup.GET("/all", vehicleController.GetAllVehicles)
		adminGroup.POST("", vehicleController.CreateVehicle)
		adminGroup.DELETE("/:vehicle_id", vehicleController.DeleteVehicle)
		adminGroup.POST("/:vehicle_id/upload-image", vehicleController.UploadVehicleImage)
	}
}
