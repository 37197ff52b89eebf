// File: /services/places_service_test.go
package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetPlaceEnrichmentDisabled(t *testing.T) {
	ps := NewPlacesService("")
	if got := ps.GetPlaceEnrichment(27.95, -82.46, "rink"); got != nil {
		t.Errorf("enrichment = %v, want nil without an API key", got)
	}
}

func TestGetPlaceEnrichmentPicksNearestCandidate(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/nearbysearch/json":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "OK",
				"results": []map[string]interface{}{
					{
						"place_id": "far-place",
						"name":     "Far Rink",
						"geometry": map[string]interface{}{
							"location": map[string]float64{"lat": 27.80, "lng": -82.60},
						},
					},
					{
						"place_id": "near-place",
						"name":     "Near Rink",
						"geometry": map[string]interface{}{
							"location": map[string]float64{"lat": 27.951, "lng": -82.461},
						},
					},
				},
			})
		case "/details/json":
			if got := r.URL.Query().Get("place_id"); got != "near-place" {
				t.Errorf("details place_id = %q, want near-place", got)
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "OK",
				"result": map[string]interface{}{
					"name":   "Near Rink",
					"rating": 4.5,
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer provider.Close()

	ps := NewPlacesService("test-key")
	ps.baseURL = provider.URL

	enrichment := ps.GetPlaceEnrichment(27.95, -82.46, "rink")
	if enrichment == nil {
		t.Fatal("expected an enrichment result")
	}
	if enrichment.PlaceID != "near-place" {
		t.Errorf("PlaceID = %q, want near-place", enrichment.PlaceID)
	}
	if enrichment.GoogleRating != 4.5 {
		t.Errorf("GoogleRating = %v, want 4.5", enrichment.GoogleRating)
	}
}
