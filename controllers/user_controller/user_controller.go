package user_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joy095/rental/logger"
	"github.com/joy095/rental/models/shared_models"
	"github.com/joy095/rental/models/user_models"
	"github.com/joy095/rental/utils"
)

// UserController holds dependencies for account operations.
type UserController struct {
	DB *pgxpool.Pool
}

// NewUserController creates a new instance of UserController.
func NewUserController(db *pgxpool.Pool) *UserController {
	return &UserController{DB: db}
}

// RegisterRequest represents the JSON payload for account registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Phone    string `json:"phone" binding:"required,min=5,max=20"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and returns a signed access token.
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.ErrorLogger.Errorf("Failed to bind register payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration data"})
		return
	}

	if req.Role != "" && req.Role != shared_models.RoleAdmin && req.Role != shared_models.RoleCustomer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	exists, err := user_models.EmailExists(c.Request.Context(), uc.DB, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not check registration"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	user, err := user_models.NewUser(req.Email, req.Name, req.Phone, req.Password, req.Role)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to build user model: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process registration"})
		return
	}

	createdUser, err := user_models.CreateUser(c.Request.Context(), uc.DB, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save user"})
		return
	}

	token, err := shared_models.GenerateAccessToken(createdUser.ID, createdUser.Role, shared_models.ACCESS_TOKEN_EXPIRY)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    createdUser,
	})
}

// Login verifies credentials and returns a signed access token.
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login data"})
		return
	}

	user, err := user_models.GetUserByEmail(c.Request.Context(), uc.DB, req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		logger.WarnLogger.Warnf("Failed login attempt for %s", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := shared_models.GenerateAccessToken(user.ID, user.Role, shared_models.ACCESS_TOKEN_EXPIRY)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// GetMe returns the authenticated user's account record.
func (uc *UserController) GetMe(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := user_models.GetUserByID(c.Request.Context(), uc.DB, userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
