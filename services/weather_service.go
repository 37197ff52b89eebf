// File: /services/weather_service.go
package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
)

// WeatherService fetches current conditions from OpenWeather and classifies
// whether they are good for skating. Responses are cached for 30 minutes by
// coordinates rounded to two decimals (roughly a 1 km grid).
type WeatherService struct {
	client  *http.Client
	cache   *cache.Cache
	baseURL string
	apiKey  string
}

// WeatherData is the flat weather payload attached to spots and proxied
// through the weather endpoint.
type WeatherData struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	IsSkateable bool    `json:"isSkateable"`
}

// openWeatherResponse mirrors the provider fields we read.
type openWeatherResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

func NewWeatherService(apiKey string) *WeatherService {
	return &WeatherService{
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache.New(30*time.Minute, 10*time.Minute),
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		apiKey:  apiKey,
	}
}

// Enabled reports whether an API key is configured.
func (ws *WeatherService) Enabled() bool {
	return ws.apiKey != ""
}

// SetBaseURL overrides the provider endpoint.
func (ws *WeatherService) SetBaseURL(url string) {
	ws.baseURL = url
}

// GetWeatherData returns current conditions for a coordinate, or an error the
// caller is expected to swallow into a null payload.
func (ws *WeatherService) GetWeatherData(lat, lng float64) (*WeatherData, error) {
	if !ws.Enabled() {
		return nil, fmt.Errorf("weather API key not configured")
	}

	key := fmt.Sprintf("%.2f,%.2f", lat, lng)
	if cached, found := ws.cache.Get(key); found {
		return cached.(*WeatherData), nil
	}

	url := fmt.Sprintf("%s?lat=%f&lon=%f&appid=%s&units=metric", ws.baseURL, lat, lng, ws.apiKey)
	resp, err := ws.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	var raw openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	data := &WeatherData{
		Temperature: raw.Main.Temp,
		FeelsLike:   raw.Main.FeelsLike,
		Humidity:    raw.Main.Humidity,
		WindSpeed:   raw.Wind.Speed,
	}
	var weatherMain string
	if len(raw.Weather) > 0 {
		weatherMain = raw.Weather[0].Main
		data.Description = raw.Weather[0].Description
		data.Icon = raw.Weather[0].Icon
	}
	data.IsSkateable = IsGoodSkatingWeather(data.Temperature, data.WindSpeed, weatherMain)

	ws.cache.Set(key, data, cache.DefaultExpiration)
	return data, nil
}

// IsGoodSkatingWeather classifies skateable conditions: 10-30 degrees C,
// wind below 5.5 m/s, and no rain, snow, or thunderstorm.
func IsGoodSkatingWeather(tempC, windSpeed float64, weatherMain string) bool {
	if tempC < 10 || tempC > 30 {
		return false
	}
	if windSpeed >= 5.5 {
		return false
	}
	switch weatherMain {
	case "Rain", "Snow", "Thunderstorm":
		return false
	}
	return true
}
