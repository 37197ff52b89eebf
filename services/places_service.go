// File: /services/places_service.go
package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tampa-blades-api/utils"
)

// PlacesService wraps the Google Places endpoints used for spot enrichment,
// location search, and nearby discovery. Every lookup fails open: callers get
// a nil result and must still render the base entity.
type PlacesService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// PlaceEnrichment is the Google-sourced data attached to a skate spot.
type PlaceEnrichment struct {
	PlaceID       string   `json:"placeId"`
	GoogleRating  float64  `json:"googleRating"`
	GoogleReviews int      `json:"googleReviews"`
	OpeningHours  []string `json:"openingHours"`
	Photos        []string `json:"photos"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	Website       string   `json:"website"`
}

// PlaceSummary is a trimmed nearby-search result.
type PlaceSummary struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Address  string      `json:"address"`
	Rating   float64     `json:"rating"`
	Types    []string    `json:"types"`
	Location PlaceLatLng `json:"location"`
}

type PlaceLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Prediction is a Places autocomplete suggestion.
type Prediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

// ResolvedLocation is a search query resolved to coordinates.
type ResolvedLocation struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
	PlaceID          string  `json:"place_id"`
	Name             string  `json:"name"`
}

type placesStatusError struct {
	Status  string
	Message string
}

func (e *placesStatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("places API status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("places API status %s", e.Status)
}

// StatusOf extracts the provider status string from a places error, if any.
func StatusOf(err error) string {
	if se, ok := err.(*placesStatusError); ok {
		return se.Status
	}
	return ""
}

func NewPlacesService(apiKey string) *PlacesService {
	return &PlacesService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://maps.googleapis.com/maps/api/place",
		apiKey:  apiKey,
	}
}

// Enabled reports whether an API key is configured.
func (ps *PlacesService) Enabled() bool {
	return ps.apiKey != ""
}

type nearbySearchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		PlaceID  string   `json:"place_id"`
		Name     string   `json:"name"`
		Vicinity string   `json:"vicinity"`
		Rating   float64  `json:"rating"`
		Types    []string `json:"types"`
		Geometry struct {
			Location PlaceLatLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type placeDetailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		Name             string  `json:"name"`
		Rating           float64 `json:"rating"`
		UserRatingsTotal int     `json:"user_ratings_total"`
		FormattedAddress string  `json:"formatted_address"`
		FormattedPhone   string  `json:"formatted_phone_number"`
		Website          string  `json:"website"`
		OpeningHours     struct {
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
		Geometry struct {
			Location PlaceLatLng `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

type autocompleteResponse struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
	Predictions  []Prediction `json:"predictions"`
}

func (ps *PlacesService) get(endpoint string, params url.Values, out interface{}) error {
	params.Set("key", ps.apiKey)
	resp, err := ps.client.Get(ps.baseURL + endpoint + "?" + params.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}

// GetPlaceEnrichment resolves a coordinate and spot name into Google place
// details via a nearby search followed by a details lookup. Returns nil on
// no match or any request failure.
func (ps *PlacesService) GetPlaceEnrichment(lat, lng float64, spotName string) *PlaceEnrichment {
	if !ps.Enabled() {
		return nil
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", "1000")
	params.Set("keyword", spotName)

	var search nearbySearchResponse
	if err := ps.get("/nearbysearch/json", params, &search); err != nil {
		return nil
	}
	if len(search.Results) == 0 {
		return nil
	}

	// Keyword results come back in prominence order; take the candidate
	// closest to the spot itself.
	nearest := 0
	best := utils.Distance(lat, lng, search.Results[0].Geometry.Location.Lat, search.Results[0].Geometry.Location.Lng)
	for i := 1; i < len(search.Results); i++ {
		loc := search.Results[i].Geometry.Location
		if d := utils.Distance(lat, lng, loc.Lat, loc.Lng); d < best {
			best = d
			nearest = i
		}
	}
	placeID := search.Results[nearest].PlaceID

	detailParams := url.Values{}
	detailParams.Set("place_id", placeID)
	detailParams.Set("fields", "name,rating,user_ratings_total,opening_hours,photos,formatted_address,formatted_phone_number,website")

	var details placeDetailsResponse
	if err := ps.get("/details/json", detailParams, &details); err != nil {
		return nil
	}

	enrichment := &PlaceEnrichment{
		PlaceID:       placeID,
		GoogleRating:  details.Result.Rating,
		GoogleReviews: details.Result.UserRatingsTotal,
		OpeningHours:  details.Result.OpeningHours.WeekdayText,
		Address:       details.Result.FormattedAddress,
		Phone:         details.Result.FormattedPhone,
		Website:       details.Result.Website,
	}
	for i, photo := range details.Result.Photos {
		if i >= 5 {
			break
		}
		enrichment.Photos = append(enrichment.Photos,
			fmt.Sprintf("%s/photo?maxwidth=400&photoreference=%s&key=%s", ps.baseURL, photo.PhotoReference, ps.apiKey))
	}

	return enrichment
}

// Autocomplete returns up to five geocode predictions for an input string.
func (ps *PlacesService) Autocomplete(input string) ([]Prediction, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("types", "geocode")

	var data autocompleteResponse
	if err := ps.get("/autocomplete/json", params, &data); err != nil {
		return nil, err
	}
	if data.Status != "OK" {
		return nil, &placesStatusError{Status: data.Status, Message: data.ErrorMessage}
	}

	if len(data.Predictions) > 5 {
		data.Predictions = data.Predictions[:5]
	}
	return data.Predictions, nil
}

// SearchLocation resolves a free-text query to coordinates by chaining
// autocomplete with a place-details lookup on the top prediction.
func (ps *PlacesService) SearchLocation(query string) (*ResolvedLocation, []Prediction, error) {
	predictions, err := ps.Autocomplete(query)
	if err != nil {
		return nil, nil, err
	}
	if len(predictions) == 0 {
		return nil, nil, &placesStatusError{Status: "ZERO_RESULTS"}
	}

	placeID := predictions[0].PlaceID

	detailParams := url.Values{}
	detailParams.Set("place_id", placeID)
	detailParams.Set("fields", "geometry,formatted_address,name")

	var details placeDetailsResponse
	if err := ps.get("/details/json", detailParams, &details); err != nil {
		return nil, nil, err
	}
	if details.Status != "OK" {
		return nil, nil, &placesStatusError{Status: details.Status, Message: details.ErrorMessage}
	}

	location := &ResolvedLocation{
		Lat:              details.Result.Geometry.Location.Lat,
		Lng:              details.Result.Geometry.Location.Lng,
		FormattedAddress: details.Result.FormattedAddress,
		PlaceID:          placeID,
		Name:             details.Result.Name,
	}
	return location, predictions, nil
}

// NearbyPlaces lists places around a coordinate filtered by type.
func (ps *PlacesService) NearbyPlaces(lat, lng float64, radius int, placeType string) ([]PlaceSummary, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%d", radius))
	params.Set("type", placeType)

	var data nearbySearchResponse
	if err := ps.get("/nearbysearch/json", params, &data); err != nil {
		return nil, err
	}
	if data.Status != "OK" {
		return nil, &placesStatusError{Status: data.Status, Message: data.ErrorMessage}
	}

	places := make([]PlaceSummary, 0, len(data.Results))
	for _, r := range data.Results {
		places = append(places, PlaceSummary{
			ID:       r.PlaceID,
			Name:     r.Name,
			Address:  r.Vicinity,
			Rating:   r.Rating,
			Types:    r.Types,
			Location: r.Geometry.Location,
		})
	}
	return places, nil
}

// NearbySearchRaw performs a keyword nearby search and returns the raw
// provider results, used for skate park discovery. ZERO_RESULTS is not an
// error for this endpoint.
func (ps *PlacesService) NearbySearchRaw(lat, lng float64, radius int, keyword string) ([]json.RawMessage, string, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%d", radius))
	if keyword != "" {
		params.Set("keyword", keyword)
	}
	params.Set("key", ps.apiKey)

	resp, err := ps.client.Get(ps.baseURL + "/nearbysearch/json?" + params.Encode())
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	var data struct {
		Status       string            `json:"status"`
		ErrorMessage string            `json:"error_message"`
		Results      []json.RawMessage `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, "", err
	}

	if data.Status != "OK" && data.Status != "ZERO_RESULTS" {
		return nil, data.Status, &placesStatusError{Status: data.Status, Message: data.ErrorMessage}
	}
	return data.Results, data.Status, nil
}
