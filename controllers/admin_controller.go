// File: /controllers/admin_controller.go
package controllers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tampa-blades-api/models"
	"tampa-blades-api/utils"
)

type AdminController struct {
	db *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{db: db}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// SystemStats is the counters block for the admin dashboard.
type SystemStats struct {
	TotalUsers      int64 `json:"totalUsers"`
	AdminUsers      int64 `json:"adminUsers"`
	SuperAdminUsers int64 `json:"superAdminUsers"`
	TotalEvents     int64 `json:"totalEvents"`
	TotalSkateSpots int64 `json:"totalSkateSpots"`
	TotalPhotos     int64 `json:"totalPhotos"`
	TotalMessages   int64 `json:"totalMessages"`
}

type LogEntry struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	User      string `json:"user"`
}

// GetUsers lists accounts newest first, with optional substring search and
// role filter, paginated.
func (ac *AdminController) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := ac.db.Model(&models.User{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("username LIKE ? OR email LIKE ?", like, like)
	}
	if role := c.Query("role"); role != "" && role != "all" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to get user count")
		return
	}

	var users []models.User
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}

	c.JSON(http.StatusOK, gin.H{
		"users": public,
		"pagination": models.Pagination{
			Current: page,
			Total:   int(math.Ceil(float64(total) / float64(limit))),
			HasMore: int64(page*limit) < total,
		},
	})
}

// CreateUser provisions an account with an explicit role, pre-verified.
func (ac *AdminController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		utils.SendError(c, http.StatusBadRequest, "Username, email, and password are required")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		utils.SendError(c, http.StatusBadRequest, "Invalid role")
		return
	}

	var existing models.User
	if err := ac.db.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error; err == nil {
		utils.SendError(c, http.StatusBadRequest, "Username or email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
		Verified: true,
	}

	if err := ac.db.Create(&user).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user.Public(),
		"message": "User created successfully",
	})
}

// UpdateRole changes an account's role. The acting super admin cannot
// demote themselves.
func (ac *AdminController) UpdateRole(c *gin.Context) {
	targetID := c.Param("id")

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidRole(req.Role) {
		utils.SendError(c, http.StatusBadRequest, "Invalid role")
		return
	}

	if targetID == c.GetString("user_id") && req.Role != models.RoleSuperAdmin {
		utils.SendError(c, http.StatusBadRequest, "Cannot demote yourself from super admin")
		return
	}

	result := ac.db.Model(&models.User{}).Where("id = ?", targetID).Update("role", req.Role)
	if result.Error != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update user role")
		return
	}
	if result.RowsAffected == 0 {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User role updated successfully"})
}

// DeleteUser removes an account and everything it owns: messages in either
// direction, likes, comments, gallery photos, reviews, spot photos, spot
// submissions, and events submitted under the account's username.
func (ac *AdminController) DeleteUser(c *gin.Context) {
	targetID := c.Param("id")

	if targetID == c.GetString("user_id") {
		utils.SendError(c, http.StatusBadRequest, "Cannot delete yourself")
		return
	}

	var user models.User
	if err := ac.db.First(&user, "id = ?", targetID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	err := ac.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sender_id = ? OR receiver_id = ?", targetID, targetID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", targetID).Delete(&models.PhotoLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", targetID).Delete(&models.PhotoComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", targetID).Delete(&models.GalleryPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", targetID).Delete(&models.SpotReview{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", targetID).Delete(&models.SpotPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("submitted_by_id = ?", targetID).Delete(&models.SkateSpot{}).Error; err != nil {
			return err
		}
		if err := tx.Where("submitted_by = ?", user.Username).Delete(&models.Event{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}

// GetStats reports row counts across the platform.
func (ac *AdminController) GetStats(c *gin.Context) {
	var stats SystemStats

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalUsers, ac.db.Model(&models.User{})},
		{&stats.AdminUsers, ac.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin)},
		{&stats.SuperAdminUsers, ac.db.Model(&models.User{}).Where("role = ?", models.RoleSuperAdmin)},
		{&stats.TotalEvents, ac.db.Model(&models.Event{})},
		{&stats.TotalSkateSpots, ac.db.Model(&models.SkateSpot{})},
		{&stats.TotalPhotos, ac.db.Model(&models.GalleryPhoto{})},
		{&stats.TotalMessages, ac.db.Model(&models.Message{})},
	}

	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to get system stats")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetLogs returns placeholder log entries until real audit logging lands.
func (ac *AdminController) GetLogs(c *gin.Context) {
	now := time.Now().UTC()

	logs := []LogEntry{
		{
			ID:        1,
			Timestamp: now.Format(time.RFC3339),
			Level:     "INFO",
			Message:   "System started successfully",
			User:      "system",
		},
		{
			ID:        2,
			Timestamp: now.Add(-time.Hour).Format(time.RFC3339),
			Level:     "INFO",
			Message:   "New user registered: testuser",
			User:      "system",
		},
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
