// File: /controllers/places_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tampa-blades-api/services"
	"tampa-blades-api/utils"
)

type PlacesController struct {
	placesService *services.PlacesService
}

func NewPlacesController(placesService *services.PlacesService) *PlacesController {
	return &PlacesController{placesService: placesService}
}

type NearbySearchRequest struct {
	Location *struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Radius  int    `json:"radius"`
	Keyword string `json:"keyword"`
}

// SearchLocation resolves a free-text query into coordinates plus the
// underlying autocomplete predictions.
func (pc *PlacesController) SearchLocation(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		utils.SendError(c, http.StatusBadRequest, "Search query is required")
		return
	}

	location, predictions, err := pc.placesService.SearchLocation(query)
	if err != nil {
		if status := services.StatusOf(err); status != "" {
			c.JSON(http.StatusNotFound, gin.H{
				"error":  "Location not found",
				"status": status,
			})
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to search location")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"location":    location,
		"predictions": predictions,
	})
}

// Autocomplete returns geocode predictions for a partial input.
func (pc *PlacesController) Autocomplete(c *gin.Context) {
	input := c.Query("input")
	if len(input) < 2 {
		utils.SendError(c, http.StatusBadRequest, "Input must be at least 2 characters")
		return
	}

	predictions, err := pc.placesService.Autocomplete(input)
	if err != nil {
		if status := services.StatusOf(err); status != "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Failed to get predictions",
				"status": status,
			})
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to get autocomplete predictions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"predictions": predictions,
	})
}

// GetNearbyPlaces lists establishments around a coordinate.
func (pc *PlacesController) GetNearbyPlaces(c *gin.Context) {
	lat, okLat := utils.ParseCoordinate(c.Query("lat"))
	lng, okLng := utils.ParseCoordinate(c.Query("lng"))
	if !okLat || !okLng {
		utils.SendError(c, http.StatusBadRequest, "Latitude and longitude are required")
		return
	}

	radius, err := strconv.Atoi(c.DefaultQuery("radius", "5000"))
	if err != nil || radius < 1 {
		radius = 5000
	}
	placeType := c.DefaultQuery("type", "establishment")

	places, err := pc.placesService.NearbyPlaces(lat, lng, radius, placeType)
	if err != nil {
		if status := services.StatusOf(err); status != "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Failed to fetch nearby places",
				"status": status,
			})
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch nearby places")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"places":  places,
	})
}

// NearbySearch is the keyword-driven discovery endpoint used to find skate
// parks around a point. A search with no hits still succeeds.
func (pc *PlacesController) NearbySearch(c *gin.Context) {
	var req NearbySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Location == nil {
		utils.SendError(c, http.StatusBadRequest, "Location with lat and lng is required")
		return
	}

	if !pc.placesService.Enabled() {
		utils.SendError(c, http.StatusInternalServerError, "Google Places API key not configured")
		return
	}

	radius := req.Radius
	if radius < 1 {
		radius = 5000
	}

	results, status, err := pc.placesService.NearbySearchRaw(req.Location.Lat, req.Location.Lng, radius, req.Keyword)
	if err != nil {
		if status != "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Failed to search for places",
				"status": status,
			})
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to search for places")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
		"status":  status,
	})
}
