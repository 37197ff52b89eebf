// File: /controllers/gallery_controller.go
package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tampa-blades-api/models"
	"tampa-blades-api/services"
	"tampa-blades-api/utils"
)

type GalleryController struct {
	db            *gorm.DB
	uploadService *services.UploadService
}

func NewGalleryController(db *gorm.DB, uploadService *services.UploadService) *GalleryController {
	return &GalleryController{db: db, uploadService: uploadService}
}

type AddCommentRequest struct {
	Comment string `json:"comment"`
}

type PostPhotoRequest struct {
	PhotoURL string   `json:"photoUrl"`
	Caption  string   `json:"caption"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Location string   `json:"location"`
	IsPublic bool     `json:"isPublic"`
}

// PostPhoto records a gallery entry for an already-uploaded image. The image
// itself comes in through the shared upload endpoint or an external URL.
func (gc *GalleryController) PostPhoto(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PostPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PhotoURL == "" {
		utils.SendError(c, http.StatusBadRequest, "Photo URL is required")
		return
	}

	category := req.Category
	if category == "" {
		category = "general"
	}

	photo := models.GalleryPhoto{
		ID:       uuid.New().String(),
		UserID:   userID,
		PhotoURL: req.PhotoURL,
		Caption:  utils.SanitizeText(req.Caption),
		Category: category,
		Tags:     models.StringSlice(req.Tags),
		Location: utils.SanitizeText(req.Location),
		IsPublic: req.IsPublic,
	}

	if err := gc.db.Create(&photo).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to upload photo")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"photoId": photo.ID,
		"message": "Photo uploaded successfully",
	})
}

// UploadImage stores an image file and returns its public URL, for use with
// PostPhoto.
func (gc *GalleryController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Photo file is required")
		return
	}

	photoURL, err := gc.uploadService.SaveImage(c, file)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"photoUrl": photoURL,
	})
}

// GetPhotos lists public photos newest first, with optional category and
// free-text filters, paginated.
func (gc *GalleryController) GetPhotos(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := gc.db.Model(&models.GalleryPhoto{}).Where("is_public = ?", true)

	if category := c.Query("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("caption LIKE ? OR location LIKE ? OR tags LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}

	var photos []models.GalleryPhotoWithCounts
	err := query.
		Select("gallery_photos.*, users.username AS author_name, " +
			"(SELECT COUNT(*) FROM photo_likes WHERE photo_likes.photo_id = gallery_photos.id) AS like_count, " +
			"(SELECT COUNT(*) FROM photo_comments WHERE photo_comments.photo_id = gallery_photos.id) AS comment_count").
		Joins("JOIN users ON users.id = gallery_photos.user_id").
		Order("gallery_photos.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&photos).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"photos": photos,
		"pagination": models.Pagination{
			Current: page,
			Total:   int(math.Ceil(float64(total) / float64(limit))),
			HasMore: int64(page*limit) < total,
			Count:   total,
		},
	})
}

// GetMyPhotos lists the current user's photos newest first, public or not,
// paginated.
func (gc *GalleryController) GetMyPhotos(c *gin.Context) {
	userID := c.GetString("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var photos []models.GalleryPhotoWithCounts
	err := gc.db.Model(&models.GalleryPhoto{}).
		Select("gallery_photos.*, "+
			"(SELECT COUNT(*) FROM photo_likes WHERE photo_likes.photo_id = gallery_photos.id) AS like_count, "+
			"(SELECT COUNT(*) FROM photo_comments WHERE photo_comments.photo_id = gallery_photos.id) AS comment_count").
		Where("user_id = ?", userID).
		Order("gallery_photos.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&photos).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

// ToggleLike flips the current user's like on a photo and keeps the
// denormalized counter in step.
func (gc *GalleryController) ToggleLike(c *gin.Context) {
	userID := c.GetString("user_id")
	photoID := c.Param("id")

	var photo models.GalleryPhoto
	if err := gc.db.First(&photo, "id = ?", photoID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Photo not found")
		return
	}

	var existing models.PhotoLike
	err := gc.db.Where("photo_id = ? AND user_id = ?", photoID, userID).First(&existing).Error

	liked := false
	if err == gorm.ErrRecordNotFound {
		if err := gc.db.Create(&models.PhotoLike{PhotoID: photoID, UserID: userID}).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to like photo")
			return
		}
		gc.db.Model(&photo).Update("likes", gorm.Expr("likes + ?", 1))
		liked = true
	} else if err == nil {
		if err := gc.db.Delete(&existing).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to unlike photo")
			return
		}
		gc.db.Model(&photo).Update("likes", gorm.Expr("likes - ?", 1))
	} else {
		utils.SendError(c, http.StatusInternalServerError, "Failed to toggle like")
		return
	}

	var likeCount int64
	gc.db.Model(&models.PhotoLike{}).Where("photo_id = ?", photoID).Count(&likeCount)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"liked":   liked,
		"likes":   likeCount,
	})
}

// AddComment attaches a comment to a photo.
func (gc *GalleryController) AddComment(c *gin.Context) {
	userID := c.GetString("user_id")
	photoID := c.Param("id")

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment := utils.SanitizeText(req.Comment)
	if comment == "" {
		utils.SendError(c, http.StatusBadRequest, "Comment cannot be empty")
		return
	}
	if len(comment) > 500 {
		utils.SendError(c, http.StatusBadRequest, "Comment must be less than 500 characters")
		return
	}

	var photo models.GalleryPhoto
	if err := gc.db.First(&photo, "id = ?", photoID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Photo not found")
		return
	}

	row := models.PhotoComment{
		ID:      uuid.New().String(),
		PhotoID: photoID,
		UserID:  userID,
		Comment: comment,
	}

	if err := gc.db.Create(&row).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"commentId": row.ID,
		"message":   "Comment added successfully",
	})
}

// GetComments lists a photo's comments oldest first with author names.
func (gc *GalleryController) GetComments(c *gin.Context) {
	var comments []struct {
		models.PhotoComment
		Username string `json:"username"`
	}

	err := gc.db.Model(&models.PhotoComment{}).
		Select("photo_comments.*, users.username").
		Joins("JOIN users ON users.id = photo_comments.user_id").
		Where("photo_comments.photo_id = ?", c.Param("id")).
		Order("photo_comments.created_at ASC").
		Scan(&comments).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// DeletePhoto removes a photo the current user owns, along with its likes
// and comments.
func (gc *GalleryController) DeletePhoto(c *gin.Context) {
	userID := c.GetString("user_id")
	photoID := c.Param("id")

	var photo models.GalleryPhoto
	if err := gc.db.First(&photo, "id = ?", photoID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Photo not found")
		return
	}

	if photo.UserID != userID {
		utils.SendError(c, http.StatusForbidden, "You can only delete your own photos")
		return
	}

	gc.db.Where("photo_id = ?", photoID).Delete(&models.PhotoLike{})
	gc.db.Where("photo_id = ?", photoID).Delete(&models.PhotoComment{})

	if err := gc.db.Delete(&photo).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete photo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Photo deleted successfully"})
}
