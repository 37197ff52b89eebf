// File: /controllers/event_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tampa-blades-api/models"
	"tampa-blades-api/services"
	"tampa-blades-api/utils"
)

type EventController struct {
	db            *gorm.DB
	uploadService *services.UploadService
	emailService  *services.EmailService
}

func NewEventController(db *gorm.DB, uploadService *services.UploadService, emailService *services.EmailService) *EventController {
	return &EventController{
		db:            db,
		uploadService: uploadService,
		emailService:  emailService,
	}
}

// GetEvents lists approved events, soonest first.
func (ec *EventController) GetEvents(c *gin.Context) {
	var events []models.Event
	if err := ec.db.Where("approved = ?", true).Order("date ASC").Find(&events).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CreateEvent accepts a multipart form so an event photo can ride along with
// the submission. Events start unapproved and stay off the public calendar
// until an admin approves them.
func (ec *EventController) CreateEvent(c *gin.Context) {
	username := c.GetString("username")

	title := utils.SanitizeText(c.PostForm("title"))
	description := utils.SanitizeText(c.PostForm("description"))
	date := c.PostForm("date")
	startTime := c.PostForm("startTime")
	endTime := c.PostForm("endTime")
	location := utils.SanitizeText(c.PostForm("location"))
	eventType := c.PostForm("eventType")
	skillLevel := c.PostForm("skillLevel")

	var errs []string
	if len(title) < 3 {
		errs = append(errs, "Event title must be at least 3 characters")
	}
	if description == "" {
		errs = append(errs, "Event description is required")
	}
	if date == "" {
		errs = append(errs, "Please provide a valid event date")
	}
	if startTime == "" || endTime == "" {
		errs = append(errs, "Event start and end times are required")
	}
	if len(location) < 3 {
		errs = append(errs, "Event location must be at least 3 characters")
	}
	if !utils.OneOf(eventType, models.EventTypes) {
		errs = append(errs, "Invalid event type")
	}
	if skillLevel != "" && !utils.OneOf(skillLevel, models.SkillLevels) {
		errs = append(errs, "Invalid skill level")
	}
	contactEmail := c.PostForm("contactEmail")
	if !utils.IsValidEmail(contactEmail) {
		errs = append(errs, "Please provide a valid contact email")
	}
	if len(description) > 2000 {
		errs = append(errs, "Description must be less than 2000 characters")
	}
	if len(errs) > 0 {
		utils.SendValidationError(c, strings.Join(errs, ", "))
		return
	}

	var photoPath string
	if file, err := c.FormFile("eventPhoto"); err == nil {
		photoPath, err = ec.uploadService.SaveImage(c, file)
		if err != nil {
			utils.SendError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	cost := c.PostForm("cost")
	if cost == "" {
		cost = "Free"
	}

	maxParticipants := 0
	fmt.Sscanf(c.PostForm("maxParticipants"), "%d", &maxParticipants)

	event := models.Event{
		ID:              uuid.New().String(),
		Title:           title,
		Description:     description,
		Date:            date,
		StartTime:       startTime,
		EndTime:         endTime,
		Location:        location,
		EventType:       eventType,
		SkillLevel:      skillLevel,
		MaxParticipants: maxParticipants,
		ContactEmail:    contactEmail,
		ContactPhone:    c.PostForm("contactPhone"),
		Cost:            cost,
		Equipment:       c.PostForm("equipment"),
		EventPhoto:      photoPath,
		Approved:        false,
		SubmittedBy:     username,
	}

	if err := ec.db.Create(&event).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to submit event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// GetPendingEvents lists events awaiting moderation.
func (ec *EventController) GetPendingEvents(c *gin.Context) {
	var events []models.Event
	if err := ec.db.Where("approved = ?", false).Order("date ASC").Find(&events).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// ApproveEvent flips the approval flag and notifies the submitter.
func (ec *EventController) ApproveEvent(c *gin.Context) {
	eventID := c.Param("id")

	var event models.Event
	if err := ec.db.First(&event, "id = ?", eventID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Event not found")
		return
	}

	if err := ec.db.Model(&event).Update("approved", true).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to approve event")
		return
	}

	// Approval notice is best-effort
	go func() {
		if err := ec.emailService.SendEventApprovedEmail(event.ContactEmail, event.Title, event.Date); err != nil {
			fmt.Printf("Failed to send approval email: %v\n", err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteEvent removes an event outright (reject or retire).
func (ec *EventController) DeleteEvent(c *gin.Context) {
	if err := ec.db.Delete(&models.Event{}, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
