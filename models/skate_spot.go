// File: /models/skate_spot.go
package models

import (
	"time"
)

type SkateSpot struct {
	ID            string      `json:"id" gorm:"primaryKey;size:191"`
	Name          string      `json:"name" gorm:"not null;size:255"`
	Type          string      `json:"type" gorm:"not null;size:50"`
	Difficulty    string      `json:"difficulty" gorm:"not null;size:50"`
	Latitude      float64     `json:"latitude" gorm:"not null;index"`
	Longitude     float64     `json:"longitude" gorm:"not null;index"`
	Description   string      `json:"description" gorm:"type:text"`
	Features      StringSlice `json:"features" gorm:"type:json"`
	Hours         string      `json:"hours" gorm:"size:100"`
	Rating        float64     `json:"rating" gorm:"default:0"`
	Reviews       int         `json:"reviews" gorm:"default:0"`
	CrowdLevel    string      `json:"crowd_level" gorm:"default:'medium';size:20"`
	Photos        StringSlice `json:"photos" gorm:"type:json"`
	SubmittedByID *string     `json:"submitted_by" gorm:"size:191"`
	Approved      bool        `json:"approved" gorm:"default:false;index"`
	CreatedAt     time.Time   `json:"created_at"`

	// Enrichment fields (populated lazily, may stay empty)
	GooglePlacesID string `json:"google_places_id" gorm:"size:191"`
	WeatherData    string `json:"weather_data" gorm:"type:text"`
	Amenities      string `json:"amenities" gorm:"size:500"`
	SurfaceType    string `json:"surface_type" gorm:"size:50"`

	Submitter *User `json:"submitter,omitempty" gorm:"foreignKey:SubmittedByID"`
}

type SpotReview struct {
	ID        string      `json:"id" gorm:"primaryKey;size:191"`
	SpotID    string      `json:"spot_id" gorm:"not null;index;size:191"`
	UserID    string      `json:"user_id" gorm:"not null;index;size:191"`
	Rating    int         `json:"rating" gorm:"not null"`
	Comment   string      `json:"comment" gorm:"type:text"`
	Photos    StringSlice `json:"photos" gorm:"type:json"`
	CreatedAt time.Time   `json:"created_at"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

type SpotPhoto struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	SpotID    string    `json:"spot_id" gorm:"not null;index;size:191"`
	UserID    string    `json:"user_id" gorm:"not null;size:191"`
	PhotoURL  string    `json:"photo_url" gorm:"not null;size:500"`
	Caption   string    `json:"caption" gorm:"size:500"`
	Source    string    `json:"source" gorm:"default:'user';size:20"`
	CreatedAt time.Time `json:"created_at"`
}

// Valid spot types and difficulties for submission
var (
	SpotTypes        = []string{"park", "street", "trail", "bowl"}
	SpotDifficulties = []string{"beginner", "intermediate", "advanced", "expert"}
)

// SpotReviewWithAuthor is a review row joined with the reviewer's username.
type SpotReviewWithAuthor struct {
	SpotReview
	Username string `json:"username"`
}
