package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/joy095/rental/config/db"
	"github.com/joy095/rental/controllers/user_controller"
	middleware "github.com/joy095/rental/middlewares"
	"github.com/joy095/rental/middlewares/auth"
)

// RegisterUserRoutes registers account registration, login and profile
// routes.
func RegisterUserRoutes(router *gin.Engine) {
	userController := user_controller.NewUserController(db.DB)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register",
			middleware.CombinedRateLimiter("auth-register", "5-1m", "20-10m"),
			userController.Register)

		authGroup.POST("/login",
			middleware.CombinedRateLimiter("auth-login", "10-1m", "30-10m"),
			userController.Login)

		authGroup.GET("/me", auth.AuthMiddleware(), userController.GetMe)
	}
}
