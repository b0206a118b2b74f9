package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/joy095/rental/config/db"
	"github.com/joy095/rental/controllers/dashboard_controller"
	"github.com/joy095/rental/middlewares/auth"
)

// RegisterDashboardRoutes registers the admin aggregate stats route.
func RegisterDashboardRoutes(router *gin.Engine) {
	dashboardController := dashboard_controller.NewDashboardController(db.DB)

	admin := router.Group("/dashboard")
	admin.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
	{
		admin.GET("/stats", dashboardController.GetStats)
	}
}
