package user_models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/joy095/rental/logger"
	"github.com/joy095/rental/models/shared_models"
	"github.com/joy095/rental/utils"
)

// User represents a platform account, either an administrator managing the
// fleet or a customer booking vehicles. PasswordHash is never serialized.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser creates a User with a hashed password. Role defaults to customer.
func NewUser(email, name, phone, password, role string) (*User, error) {
	id, err := shared_models.GenerateUUIDv7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for user: %w", err)
	}

	if role == "" {
		role = shared_models.RoleCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &User{
		ID:           id,
		Email:        email,
		Name:         name,
		Phone:        phone,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}, nil
}

// CheckPassword compares a candidate password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// CreateUser inserts a new user record into the database.
func CreateUser(ctx context.Context, db *pgxpool.Pool, user *User) (*User, error) {
	logger.InfoLogger.Infof("Attempting to create user record for email: %s", user.Email)

	query := `
		INSERT INTO users (id, email, name, phone, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var insertedID uuid.UUID
	err := db.QueryRow(ctx, query,
		user.ID, user.Email, user.Name, user.Phone, user.Role, user.PasswordHash, user.CreatedAt,
	).Scan(&insertedID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert user %s: %v", user.Email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = insertedID
	logger.InfoLogger.Infof("User %s created successfully", user.ID)
	return user, nil
}

// GetUserByEmail fetches a user by email, including the password hash for
// login verification.
func GetUserByEmail(ctx context.Context, db *pgxpool.Pool, email string) (*User, error) {
	user := &User{}
	query := `
		SELECT id, email, name, phone, role, password_hash, created_at
		FROM users
		WHERE email = $1`

	err := db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Name, &user.Phone, &user.Role,
		&user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrUserNotFound
		}
		logger.ErrorLogger.Errorf("Failed to fetch user by email %s: %v", email, err)
		return nil, fmt.Errorf("database error fetching user: %w", err)
	}

	return user, nil
}

// GetUserByID fetches a user record by its ID.
func GetUserByID(ctx context.Context, db *pgxpool.Pool, userID uuid.UUID) (*User, error) {
	user := &User{}
	query := `
		SELECT id, email, name, phone, role, password_hash, created_at
		FROM users
		WHERE id = $1`

	err := db.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Email, &user.Name, &user.Phone, &user.Role,
		&user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.WarnLogger.Warnf("User with ID %s not found", userID)
			return nil, utils.ErrUserNotFound
		}
		logger.ErrorLogger.Errorf("Failed to fetch user %s: %v", userID, err)
		return nil, fmt.Errorf("database error fetching user: %w", err)
	}

	return user, nil
}

// EmailExists reports whether a user with the given email is already
// registered.
func EmailExists(ctx context.Context, db *pgxpool.Pool, email string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to check email existence for %s: %v", email, err)
		return false, fmt.Errorf("database error checking email: %w", err)
	}
	return exists, nil
}

// CountUsersByRole counts users with a given role, used by the dashboard.
func CountUsersByRole(ctx context.Context, db *pgxpool.Pool, role string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to count users with role %s: %v", role, err)
		return 0, fmt.Errorf("database error counting users: %w", err)
	}
	return count, nil
}
