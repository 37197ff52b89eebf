package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tampa-blades-api/middleware"
	"tampa-blades-api/models"
)

func newEventRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	ec := NewEventController(db, nil, newTestEmailService())

	r := gin.New()
	r.GET("/api/events", ec.GetEvents)
	r.POST("/api/events", authed(), ec.CreateEvent)
	r.GET("/api/events/pending", authed(), middleware.RequireAdmin(), ec.GetPendingEvents)
	r.POST("/api/events/:id/approve", authed(), middleware.RequireAdmin(), ec.ApproveEvent)
	r.DELETE("/api/events/:id", authed(), middleware.RequireAdmin(), ec.DeleteEvent)
	return r, db
}

func postEventForm(t *testing.T, router *gin.Engine, token string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("failed to write form field: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/api/events", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validEventFields() map[string]string {
	return map[string]string{
		"title":        "Friday Night Skate",
		"description":  "Casual group skate along the riverwalk",
		"date":         "2026-09-18",
		"startTime":    "19:00",
		"endTime":      "21:00",
		"location":     "Curtis Hixon Park",
		"eventType":    "meetup",
		"skillLevel":   "all",
		"contactEmail": "organizer@example.com",
	}
}

func TestCreateEventStartsUnapproved(t *testing.T) {
	router, db := newEventRouter(t)
	token := tokenFor(t, seedUser(t, db, "organizer", models.RoleUser))

	w := postEventForm(t, router, token, validEventFields())
	expectStatus(t, w, http.StatusOK)

	var event models.Event
	if err := db.First(&event, "title = ?", "Friday Night Skate").Error; err != nil {
		t.Fatalf("event not persisted: %v", err)
	}
	if event.Approved {
		t.Error("new events must start unapproved")
	}
	if event.SubmittedBy != "organizer" {
		t.Errorf("submittedBy = %q, want organizer", event.SubmittedBy)
	}
	if event.Cost != "Free" {
		t.Errorf("cost should default to Free, got %q", event.Cost)
	}

	// Unapproved events are invisible on the public calendar.
	listw := doJSON(t, router, "GET", "/api/events", "", nil)
	expectStatus(t, listw, http.StatusOK)
	events, _ := decodeBody(t, listw)["events"].([]interface{})
	if len(events) != 0 {
		t.Errorf("public list has %d events, want 0 before approval", len(events))
	}
}

func TestCreateEventValidation(t *testing.T) {
	router, db := newEventRouter(t)
	token := tokenFor(t, seedUser(t, db, "organizer", models.RoleUser))

	fields := validEventFields()
	fields["title"] = "ab"
	fields["eventType"] = "rave"
	fields["contactEmail"] = "nope"

	w := postEventForm(t, router, token, fields)
	expectStatus(t, w, http.StatusBadRequest)

	var count int64
	db.Model(&models.Event{}).Count(&count)
	if count != 0 {
		t.Error("invalid submission must not persist anything")
	}
}

func TestApproveEventPublishesIt(t *testing.T) {
	router, db := newEventRouter(t)
	token := tokenFor(t, seedUser(t, db, "organizer", models.RoleUser))
	adminToken := tokenFor(t, seedUser(t, db, "moderator", models.RoleAdmin))

	expectStatus(t, postEventForm(t, router, token, validEventFields()), http.StatusOK)

	var event models.Event
	db.First(&event)

	// Pending queue is admin-only.
	expectStatus(t, doJSON(t, router, "GET", "/api/events/pending", token, nil), http.StatusForbidden)

	w := doJSON(t, router, "GET", "/api/events/pending", adminToken, nil)
	expectStatus(t, w, http.StatusOK)
	pending, _ := decodeBody(t, w)["events"].([]interface{})
	if len(pending) != 1 {
		t.Fatalf("pending queue has %d events, want 1", len(pending))
	}

	expectStatus(t, doJSON(t, router, "POST", "/api/events/"+event.ID+"/approve", adminToken, nil), http.StatusOK)

	w = doJSON(t, router, "GET", "/api/events", "", nil)
	events, _ := decodeBody(t, w)["events"].([]interface{})
	if len(events) != 1 {
		t.Errorf("public list has %d events after approval, want 1", len(events))
	}
}

func TestApproveMissingEvent(t *testing.T) {
	router, db := newEventRouter(t)
	adminToken := tokenFor(t, seedUser(t, db, "moderator", models.RoleAdmin))

	w := doJSON(t, router, "POST", "/api/events/"+uuid.New().String()+"/approve", adminToken, nil)
	expectStatus(t, w, http.StatusNotFound)
}

func TestDeleteEvent(t *testing.T) {
	router, db := newEventRouter(t)
	adminToken := tokenFor(t, seedUser(t, db, "moderator", models.RoleAdmin))

	event := models.Event{ID: uuid.New().String(), Title: "Doomed Jam", Date: "2026-10-01", SubmittedBy: "someone"}
	db.Create(&event)

	expectStatus(t, doJSON(t, router, "DELETE", "/api/events/"+event.ID, adminToken, nil), http.StatusOK)

	var count int64
	db.Model(&models.Event{}).Where("id = ?", event.ID).Count(&count)
	if count != 0 {
		t.Error("event should be deleted")
	}
}
