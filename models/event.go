// File: /models/event.go
package models

import (
	"time"
)

type Event struct {
	ID              string    `json:"id" gorm:"primaryKey;size:191"`
	Title           string    `json:"title" gorm:"not null;size:255"`
	Description     string    `json:"description" gorm:"not null;type:text"`
	Date            string    `json:"date" gorm:"not null;size:30"`
	StartTime       string    `json:"startTime" gorm:"not null;size:20"`
	EndTime         string    `json:"endTime" gorm:"not null;size:20"`
	Location        string    `json:"location" gorm:"not null;size:255"`
	EventType       string    `json:"eventType" gorm:"not null;size:50"`
	SkillLevel      string    `json:"skillLevel" gorm:"size:50"`
	MaxParticipants int       `json:"maxParticipants"`
	ContactEmail    string    `json:"contactEmail" gorm:"not null;size:255"`
	ContactPhone    string    `json:"contactPhone" gorm:"size:50"`
	Cost            string    `json:"cost" gorm:"default:'Free';size:100"`
	Equipment       string    `json:"equipment" gorm:"size:500"`
	EventPhoto      string    `json:"eventPhoto" gorm:"size:500"`
	Approved        bool      `json:"approved" gorm:"default:false"`
	SubmittedBy     string    `json:"submittedBy" gorm:"not null;size:50"`
	CreatedAt       time.Time `json:"created_at"`
}

// Valid event types and skill levels for submission
var (
	EventTypes  = []string{"competition", "workshop", "meetup", "demo", "tournament", "skate-jam"}
	SkillLevels = []string{"all", "beginner", "intermediate", "advanced"}
)
