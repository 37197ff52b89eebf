// File: /controllers/spot_controller.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tampa-blades-api/models"
	"tampa-blades-api/repositories"
	"tampa-blades-api/services"
	"tampa-blades-api/utils"
)

type SpotController struct {
	db             *gorm.DB
	spots          *repositories.SpotRepository
	weatherService *services.WeatherService
	placesService  *services.PlacesService
}

func NewSpotController(db *gorm.DB, weatherService *services.WeatherService, placesService *services.PlacesService) *SpotController {
	return &SpotController{
		db:             db,
		spots:          repositories.NewSpotRepository(db),
		weatherService: weatherService,
		placesService:  placesService,
	}
}

type CreateSpotRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Difficulty  string   `json:"difficulty"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Hours       string   `json:"hours"`
}

type RateSpotRequest struct {
	Rating int `json:"rating"`
}

type AddReviewRequest struct {
	Rating  int      `json:"rating"`
	Comment string   `json:"comment"`
	Photos  []string `json:"photos"`
}

type AddSpotPhotoRequest struct {
	PhotoURL string `json:"photoUrl"`
	Caption  string `json:"caption"`
	Source   string `json:"source"`
}

// EnhancedSpot is a spot with its enrichment data flattened alongside the
// base columns.
type EnhancedSpot struct {
	models.SkateSpot
	Weather    *services.WeatherData         `json:"weather"`
	GoogleData *services.PlaceEnrichment     `json:"googleData"`
	Reviews    []models.SpotReviewWithAuthor `json:"reviews"`
	Photos     []models.SpotPhoto            `json:"photos"`
}

// GetSpots lists approved spots, best rated first.
func (sc *SpotController) GetSpots(c *gin.Context) {
	spots, err := sc.spots.ListApproved()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch skate spots")
		return
	}

	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

// GetSpotsByArea returns approved spots inside a map viewport. All four
// bounds are required and boundary-inclusive.
func (sc *SpotController) GetSpotsByArea(c *gin.Context) {
	north, okN := utils.ParseCoordinate(c.Query("north"))
	south, okS := utils.ParseCoordinate(c.Query("south"))
	east, okE := utils.ParseCoordinate(c.Query("east"))
	west, okW := utils.ParseCoordinate(c.Query("west"))

	if !okN || !okS || !okE || !okW {
		utils.SendError(c, http.StatusBadRequest, "Map bounds required (north, south, east, west)")
		return
	}

	spots, err := sc.spots.ListInBounds(north, south, east, west)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch database spots")
		return
	}

	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

// GetSpotsByType lists approved spots of a single type.
func (sc *SpotController) GetSpotsByType(c *gin.Context) {
	spotType := c.Param("type")
	if !utils.OneOf(spotType, models.SpotTypes) {
		utils.SendError(c, http.StatusBadRequest, "Spot type must be one of: park, street, trail, bowl")
		return
	}

	spots, err := sc.spots.ListApprovedByType(spotType)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch skate spots")
		return
	}

	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

// CreateSpot submits a new spot for approval.
func (sc *SpotController) CreateSpot(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := utils.SanitizeText(req.Name)
	description := utils.SanitizeText(req.Description)

	var errs []string
	if len(name) < 3 {
		errs = append(errs, "Spot name must be at least 3 characters")
	}
	if !utils.OneOf(req.Type, models.SpotTypes) {
		errs = append(errs, "Spot type must be one of: park, street, trail, bowl")
	}
	if !utils.OneOf(req.Difficulty, models.SpotDifficulties) {
		errs = append(errs, "Difficulty must be one of: beginner, intermediate, advanced, expert")
	}
	if req.Latitude == nil || !utils.IsValidLatitude(*req.Latitude) {
		errs = append(errs, "Invalid latitude coordinate")
	}
	if req.Longitude == nil || !utils.IsValidLongitude(*req.Longitude) {
		errs = append(errs, "Invalid longitude coordinate")
	}
	if len(description) > 1000 {
		errs = append(errs, "Description must be less than 1000 characters")
	}
	if len(errs) > 0 {
		utils.SendValidationError(c, strings.Join(errs, ", "))
		return
	}

	spot := models.SkateSpot{
		ID:            uuid.New().String(),
		Name:          name,
		Type:          req.Type,
		Difficulty:    req.Difficulty,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		Description:   description,
		Features:      models.StringSlice(req.Features),
		Hours:         req.Hours,
		SubmittedByID: &userID,
		Approved:      false,
	}

	if err := sc.spots.Create(&spot); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to submit skate spot")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      spot.ID,
		"message": "Skate spot submitted for approval",
	})
}

// RateSpot folds a single 1-5 rating into the spot's running average.
func (sc *SpotController) RateSpot(c *gin.Context) {
	var req RateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		utils.SendError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	newRating, newReviews, err := sc.spots.ApplyRating(c.Param("id"), req.Rating)
	if err != nil {
		if err == repositories.ErrSpotNotFound {
			utils.SendError(c, http.StatusNotFound, "Skate spot not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to update rating")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"newRating":  newRating,
		"newReviews": newReviews,
	})
}

// GetPendingSpots lists spots awaiting moderation.
func (sc *SpotController) GetPendingSpots(c *gin.Context) {
	spots, err := sc.spots.ListPending()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch pending spots")
		return
	}

	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

func (sc *SpotController) ApproveSpot(c *gin.Context) {
	if err := sc.spots.Approve(c.Param("id")); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to approve skate spot")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (sc *SpotController) DeleteSpot(c *gin.Context) {
	if err := sc.spots.Delete(c.Param("id")); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete skate spot")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetEnhancedSpot aggregates the base spot with weather, Google Places data,
// reviews, and photos. The enrichment halves are nullable: a provider
// failure never fails the request.
func (sc *SpotController) GetEnhancedSpot(c *gin.Context) {
	spot, err := sc.spots.Get(c.Param("id"))
	if err != nil {
		if err == repositories.ErrSpotNotFound {
			utils.SendError(c, http.StatusNotFound, "Spot not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch spot")
		return
	}

	weather, werr := sc.weatherService.GetWeatherData(spot.Latitude, spot.Longitude)
	if werr != nil {
		weather = nil
	}

	googleData := sc.placesService.GetPlaceEnrichment(spot.Latitude, spot.Longitude, spot.Name)

	reviews, err := sc.spots.ListReviews(spot.ID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}
	if reviews == nil {
		reviews = []models.SpotReviewWithAuthor{}
	}

	photos, err := sc.spots.ListPhotos(spot.ID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}
	if photos == nil {
		photos = []models.SpotPhoto{}
	}

	c.JSON(http.StatusOK, gin.H{
		"spot": EnhancedSpot{
			SkateSpot:  *spot,
			Weather:    weather,
			GoogleData: googleData,
			Reviews:    reviews,
			Photos:     photos,
		},
	})
}

// AddReview stores a review and resyncs the parent spot's aggregate rating.
func (sc *SpotController) AddReview(c *gin.Context) {
	userID := c.GetString("user_id")
	spotID := c.Param("id")

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		utils.SendError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	if _, err := sc.spots.Get(spotID); err != nil {
		utils.SendError(c, http.StatusNotFound, "Skate spot not found")
		return
	}

	review := models.SpotReview{
		ID:      uuid.New().String(),
		SpotID:  spotID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: utils.SanitizeText(req.Comment),
		Photos:  models.StringSlice(req.Photos),
	}

	if err := sc.spots.AddReview(&review); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to add review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"reviewId": review.ID,
		"message":  "Review added successfully",
	})
}

func (sc *SpotController) GetReviews(c *gin.Context) {
	reviews, err := sc.spots.ListReviews(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (sc *SpotController) AddPhoto(c *gin.Context) {
	userID := c.GetString("user_id")

	var req AddSpotPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.PhotoURL == "" {
		utils.SendError(c, http.StatusBadRequest, "Photo URL is required")
		return
	}

	source := req.Source
	if source == "" {
		source = "user"
	}

	photo := models.SpotPhoto{
		ID:       uuid.New().String(),
		SpotID:   c.Param("id"),
		UserID:   userID,
		PhotoURL: req.PhotoURL,
		Caption:  utils.SanitizeText(req.Caption),
		Source:   source,
	}

	if err := sc.spots.AddPhoto(&photo); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to add photo")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"photoId": photo.ID,
		"message": "Photo added successfully",
	})
}

func (sc *SpotController) GetPhotos(c *gin.Context) {
	photos, err := sc.spots.ListPhotos(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photos": photos})
}
