package vehicle_models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joy095/rental/logger"
	"github.com/joy095/rental/models/shared_models"
	"github.com/joy095/rental/utils"
)

// Vehicle is a rentable unit in the fleet. PricePerDayCents is the daily rate
// in minor currency units; bookings snapshot it at creation time.
type Vehicle struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	Capacity         int       `json:"capacity"`
	ImageURL         string    `json:"image_url,omitempty"`
	Description      string    `json:"description"`
	Available        bool      `json:"available"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewVehicle creates a Vehicle struct with a fresh UUIDv7, available by
// default.
func NewVehicle(name, vehicleType, brand, model, description string, year, capacity int, pricePerDayCents int64) (*Vehicle, error) {
	id, err := shared_models.GenerateUUIDv7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for vehicle: %w", err)
	}

	return &Vehicle{
		ID:               id,
		Name:             name,
		Type:             vehicleType,
		Brand:            brand,
		Model:            model,
		Year:             year,
		PricePerDayCents: pricePerDayCents,
		Capacity:         capacity,
		Description:      description,
		Available:        true,
		CreatedAt:        time.Now(),
	}, nil
}

const vehicleColumns = `id, name, type, brand, model, year, price_per_day_cents, capacity, image_url, description, available, created_at`

func scanVehicle(row pgx.Row) (*Vehicle, error) {
	v := &Vehicle{}
	err := row.Scan(
		&v.ID, &v.Name, &v.Type, &v.Brand, &v.Model, &v.Year,
		&v.PricePerDayCents, &v.Capacity, &v.ImageURL, &v.Description,
		&v.Available, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// CreateVehicle inserts a new vehicle record into the database.
func CreateVehicle(ctx context.Context, db *pgxpool.Pool, vehicle *Vehicle) (*Vehicle, error) {
	logger.InfoLogger.Infof("Attempting to create vehicle record: %s", vehicle.Name)

	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var insertedID uuid.UUID
	err := db.QueryRow(ctx, query,
		vehicle.ID, vehicle.Name, vehicle.Type, vehicle.Brand, vehicle.Model,
		vehicle.Year, vehicle.PricePerDayCents, vehicle.Capacity, vehicle.ImageURL,
		vehicle.Description, vehicle.Available, vehicle.CreatedAt,
	).Scan(&insertedID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert vehicle %s: %v", vehicle.Name, err)
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	vehicle.ID = insertedID
	logger.InfoLogger.Infof("Vehicle %s created successfully", vehicle.ID)
	return vehicle, nil
}

// GetVehicleByID fetches a vehicle record by its ID.
func GetVehicleByID(ctx context.Context, db *pgxpool.Pool, vehicleID uuid.UUID) (*Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	vehicle, err := scanVehicle(db.QueryRow(ctx, query, vehicleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.WarnLogger.Warnf("Vehicle with ID %s not found", vehicleID)
			return nil, utils.ErrVehicleNotFound
		}
		logger.ErrorLogger.Errorf("Failed to fetch vehicle %s: %v", vehicleID, err)
		return nil, fmt.Errorf("database error fetching vehicle: %w", err)
	}

	return vehicle, nil
}

// GetVehicles lists vehicles. When availableOnly is set, disabled units are
// filtered out (the public catalog view).
func GetVehicles(ctx context.Context, db *pgxpool.Pool, availableOnly bool) ([]Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	if availableOnly {
		query += ` WHERE available = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(ctx, query)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch vehicles: %v", err)
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			logger.ErrorLogger.Errorf("Failed to scan vehicle row: %v", err)
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, *v)
	}

	return vehicles, nil
}

// UpdateVehicleImage stores the uploaded image URL on the vehicle.
func UpdateVehicleImage(ctx context.Context, db *pgxpool.Pool, vehicleID uuid.UUID, imageURL string) error {
	cmdTag, err := db.Exec(ctx, `UPDATE vehicles SET image_url = $2 WHERE id = $1`, vehicleID, imageURL)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to update image for vehicle %s: %v", vehicleID, err)
		return fmt.Errorf("failed to update vehicle image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return utils.ErrVehicleNotFound
	}

	logger.InfoLogger.Infof("Vehicle %s image updated", vehicleID)
	return nil
}

// DeleteVehicle removes a vehicle from the fleet catalog.
func DeleteVehicle(ctx context.Context, db *pgxpool.Pool, vehicleID uuid.UUID) error {
	cmdTag, err := db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, vehicleID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to delete vehicle %s: %v", vehicleID, err)
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return utils.ErrVehicleNotFound
	}

	logger.InfoLogger.Infof("Vehicle %s deleted", vehicleID)
	return nil
}

// CountVehicles counts fleet units, optionally only the bookable ones.
func CountVehicles(ctx context.Context, db *pgxpool.Pool, availableOnly bool) (int64, error) {
	query := `SELECT COUNT(*) FROM vehicles`
	if availableOnly {
		query += ` WHERE available = TRUE`
	}

	var count int64
	if err := db.QueryRow(ctx, query).Scan(&count); err != nil {
		logger.ErrorLogger.Errorf("Failed to count vehicles: %v", err)
		return 0, fmt.Errorf("database error counting vehicles: %w", err)
	}
	return count, nil
}
