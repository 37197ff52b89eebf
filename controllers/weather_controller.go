// File: /controllers/weather_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tampa-blades-api/services"
	"tampa-blades-api/utils"
)

type WeatherController struct {
	weatherService *services.WeatherService
}

func NewWeatherController(weatherService *services.WeatherService) *WeatherController {
	return &WeatherController{weatherService: weatherService}
}

// GetWeather returns current conditions for a coordinate, or a null body
// when the provider is unconfigured or unreachable.
func (wc *WeatherController) GetWeather(c *gin.Context) {
	lat, okLat := utils.ParseCoordinate(c.Param("lat"))
	lng, okLng := utils.ParseCoordinate(c.Param("lng"))
	if !okLat || !okLng {
		utils.SendError(c, http.StatusBadRequest, "Invalid coordinates")
		return
	}

	if !wc.weatherService.Enabled() {
		c.JSON(http.StatusOK, gin.H{"weather": nil})
		return
	}

	weather, err := wc.weatherService.GetWeatherData(lat, lng)
	if err != nil {
		// Weather is an enrichment, never a hard failure.
		c.JSON(http.StatusOK, gin.H{"weather": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"weather": weather})
}
