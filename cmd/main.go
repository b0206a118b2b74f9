package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/joy095/rental/config"
	"github.com/joy095/rental/config/db"
	"github.com/joy095/rental/logger"
	"github.com/joy095/rental/middlewares/cors"
	logger_middleware "github.com/joy095/rental/middlewares/logger"
	"github.com/joy095/rental/routes"
)

func init() {
	// Initialize loggers before using
	logger.InitLoggers()

	config.LoadEnv()
}

func main() {
	db.Connect()
	defer db.Close()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	if err := os.MkdirAll("uploads", 0o755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// Apply CORS Middleware
	r.Use(cors.CorsMiddleware())

	// Apply Logger Middleware
	r.Use(logger_middleware.GinLogger())

	r.MaxMultipartMemory = 32 << 20 // 32 MB

	// Vehicle images are pass-through blobs served statically
	r.Static("/uploads", "./uploads")

	routes.RegisterUserRoutes(r)
	routes.RegisterVehicleRoutes(r)
	routes.RegisterBookingRoutes(r)
	routes.RegisterDashboardRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ok from rental service"})
	})

	r.HEAD("/health", func(c *gin.Context) {
		c.Status(200)
	})

	logger.InfoLogger.Info("Server is started")

	log.Printf("Starting server on port %s...", port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
