// File: /controllers/auth_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tampa-blades-api/middleware"
	"tampa-blades-api/models"
	"tampa-blades-api/services"
	"tampa-blades-api/utils"
)

type AuthController struct {
	db           *gorm.DB
	jwtSecret    string
	emailService *services.EmailService
}

func NewAuthController(db *gorm.DB, jwtSecret string, emailService *services.EmailService) *AuthController {
	return &AuthController{
		db:           db,
		jwtSecret:    jwtSecret,
		emailService: emailService,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Field checks are collected and returned as one combined error string
	var errs []string
	if !utils.IsValidUsername(req.Username) {
		errs = append(errs, "Username must be 3-20 characters and contain only letters, numbers, and underscores")
	}
	if !utils.IsValidEmail(req.Email) {
		errs = append(errs, "Please provide a valid email address")
	}
	if !utils.IsValidPassword(req.Password) {
		errs = append(errs, "Password must be at least 8 characters with uppercase, lowercase, and number")
	}
	if len(errs) > 0 {
		utils.SendValidationError(c, strings.Join(errs, ", "))
		return
	}

	username := utils.SanitizeText(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Duplicate pre-check; the unique indexes remain the backstop
	var existing models.User
	if err := ac.db.Where("username = ? OR email = ?", username, email).First(&existing).Error; err == nil {
		utils.SendError(c, http.StatusBadRequest, "Username or email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     models.RoleUser,
		Verified: true,
	}

	if err := ac.db.Create(&user).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	token, err := middleware.CreateToken(&user, ac.jwtSecret)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Welcome mail is best-effort
	go func() {
		if err := ac.emailService.SendWelcomeEmail(user.Email, user.Username); err != nil {
			fmt.Printf("Failed to send welcome email: %v\n", err)
		}
	}()

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user.Public()})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Same generic error for unknown user and wrong password
	var user models.User
	if err := ac.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := middleware.CreateToken(&user, ac.jwtSecret)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user.Public()})
}

// Me returns the caller's identity, re-read from the database.
func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := ac.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
