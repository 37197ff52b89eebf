package services

import (
	"testing"
)

func TestIsGoodSkatingWeather(t *testing.T) {
	tests := []struct {
		name        string
		tempC       float64
		windSpeed   float64
		weatherMain string
		want        bool
	}{
		{"ideal", 22, 2.0, "Clear", true},
		{"cloudy_ok", 18, 4.0, "Clouds", true},
		{"temp_lower_bound", 10, 1.0, "Clear", true},
		{"temp_upper_bound", 30, 1.0, "Clear", true},
		{"too_cold", 9.9, 1.0, "Clear", false},
		{"too_hot", 30.1, 1.0, "Clear", false},
		{"wind_at_limit", 20, 5.5, "Clear", false},
		{"wind_over_limit", 20, 8.0, "Clear", false},
		{"rain", 22, 2.0, "Rain", false},
		{"snow", 15, 1.0, "Snow", false},
		{"thunderstorm", 25, 2.0, "Thunderstorm", false},
		{"drizzle_allowed", 22, 2.0, "Drizzle", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsGoodSkatingWeather(tt.tempC, tt.windSpeed, tt.weatherMain)
			if got != tt.want {
				t.Errorf("IsGoodSkatingWeather(%v, %v, %q) = %v, want %v",
					tt.tempC, tt.windSpeed, tt.weatherMain, got, tt.want)
			}
		})
	}
}

func TestWeatherServiceDisabled(t *testing.T) {
	ws := NewWeatherService("")

	if ws.Enabled() {
		t.Fatal("service without an API key should report disabled")
	}
	if _, err := ws.GetWeatherData(27.95, -82.46); err == nil {
		t.Fatal("GetWeatherData should fail when no API key is configured")
	}
}
