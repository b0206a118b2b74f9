package vehicle_controller

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joy095/rental/logger"
	"github.com/joy095/rental/models/shared_models"
	"github.com/joy095/rental/models/vehicle_models"
	"github.com/joy095/rental/utils"
)

const uploadDir = "uploads"

// VehicleController holds dependencies for fleet catalog operations.
type VehicleController struct {
	DB *pgxpool.Pool
}

// NewVehicleController creates a new instance of VehicleController.
func NewVehicleController(db *pgxpool.Pool) *VehicleController {
	return &VehicleController{DB: db}
}

// CreateVehicleRequest represents the JSON payload for adding a fleet unit.
type CreateVehicleRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=100"`
	Type             string `json:"type" binding:"required"`
	Brand            string `json:"brand" binding:"required"`
	Model            string `json:"model" binding:"required"`
	Year             int    `json:"year" binding:"required,min=1950,max=2100"`
	PricePerDayCents int64  `json:"price_per_day_cents" binding:"required,min=1"`
	Capacity         int    `json:"capacity" binding:"required,min=1"`
	Description      string `json:"description" binding:"required"`
}

// GetVehicles lists vehicles that are open for booking (public catalog).
func (vc *VehicleController) GetVehicles(c *gin.Context) {
	vehicles, err := vehicle_models.GetVehicles(c.Request.Context(), vc.DB, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch vehicles"})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// GetAllVehicles lists the whole fleet, disabled units included (admin).
func (vc *VehicleController) GetAllVehicles(c *gin.Context) {
	vehicles, err := vehicle_models.GetVehicles(c.Request.Context(), vc.DB, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch vehicles"})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle adds a unit to the fleet catalog (admin).
func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.ErrorLogger.Errorf("Failed to bind vehicle payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle data"})
		return
	}

	if !shared_models.IsValidVehicleType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle type"})
		return
	}

	vehicle, err := vehicle_models.NewVehicle(
		req.Name, req.Type, req.Brand, req.Model, req.Description,
		req.Year, req.Capacity, req.PricePerDayCents,
	)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to build vehicle model: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process vehicle"})
		return
	}

	createdVehicle, err := vehicle_models.CreateVehicle(c.Request.Context(), vc.DB, vehicle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save vehicle"})
		return
	}

	c.JSON(http.StatusOK, createdVehicle)
}

// DeleteVehicle removes a unit from the fleet catalog (admin).
func (vc *VehicleController) DeleteVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicle_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle ID"})
		return
	}

	if err := vehicle_models.DeleteVehicle(c.Request.Context(), vc.DB, vehicleID); err != nil {
		if errors.Is(err, utils.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete vehicle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}

// UploadVehicleImage stores an image for a vehicle under uploads/ and
// records its URL. The upload is a pass-through blob: only the content type
// is checked.
func (vc *VehicleController) UploadVehicleImage(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicle_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle ID"})
		return
	}

	if _, err := vehicle_models.GetVehicleByID(c.Request.Context(), vc.DB, vehicleID); err != nil {
		if errors.Is(err, utils.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch vehicle"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
		return
	}

	ext := strings.TrimPrefix(filepath.Ext(fileHeader.Filename), ".")
	filename := fmt.Sprintf("%s_%s.%s", vehicleID, uuid.New(), ext)
	dst := filepath.Join(uploadDir, filename)

	if err := c.SaveUploadedFile(fileHeader, dst); err != nil {
		logger.ErrorLogger.Errorf("Failed to save uploaded image for vehicle %s: %v", vehicleID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save image"})
		return
	}

	imageURL := "/uploads/" + filename
	if err := vehicle_models.UpdateVehicleImage(c.Request.Context(), vc.DB, vehicleID, imageURL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update vehicle image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded successfully", "image_url": imageURL})
}
