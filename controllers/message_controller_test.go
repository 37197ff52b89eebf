package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tampa-blades-api/models"
)

func newMessageRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	mc := NewMessageController(db)

	r := gin.New()
	api := r.Group("/api/messages", authed())
	api.POST("", mc.SendMessage)
	api.GET("", mc.GetMessages)
	api.GET("/unread/count", mc.GetUnreadCount)
	api.GET("/:userId", mc.GetConversation)
	api.PUT("/:id/read", mc.MarkRead)
	return r, db
}

func TestSendMessageAndConversation(t *testing.T) {
	router, db := newMessageRouter(t)
	alice := seedUser(t, db, "alice", models.RoleUser)
	bob := seedUser(t, db, "bob", models.RoleUser)

	w := doJSON(t, router, "POST", "/api/messages", tokenFor(t, alice), gin.H{
		"receiverId": bob.ID,
		"message":    "session at the bowl tonight?",
	})
	expectStatus(t, w, http.StatusOK)
	if body := decodeBody(t, w); body["messageId"] == "" {
		t.Error("response should include the message id")
	}

	w = doJSON(t, router, "POST", "/api/messages", tokenFor(t, bob), gin.H{
		"receiverId": alice.ID,
		"message":    "yes, 7pm",
	})
	expectStatus(t, w, http.StatusOK)

	// Both directions show up in the conversation, oldest first.
	w = doJSON(t, router, "GET", "/api/messages/"+bob.ID, tokenFor(t, alice), nil)
	expectStatus(t, w, http.StatusOK)

	messages, _ := decodeBody(t, w)["messages"].([]interface{})
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	first, _ := messages[0].(map[string]interface{})
	if first["senderName"] != "alice" || first["receiverName"] != "bob" {
		t.Errorf("first message names = %v/%v, want alice/bob", first["senderName"], first["receiverName"])
	}
}

func TestSendMessageReceiverMustExist(t *testing.T) {
	router, db := newMessageRouter(t)
	alice := seedUser(t, db, "alice", models.RoleUser)

	w := doJSON(t, router, "POST", "/api/messages", tokenFor(t, alice), gin.H{
		"receiverId": "no-such-user",
		"message":    "hello?",
	})
	expectStatus(t, w, http.StatusNotFound)

	w = doJSON(t, router, "POST", "/api/messages", tokenFor(t, alice), gin.H{"message": "no receiver"})
	expectStatus(t, w, http.StatusBadRequest)
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	router, db := newMessageRouter(t)
	alice := seedUser(t, db, "alice", models.RoleUser)
	bob := seedUser(t, db, "bob", models.RoleUser)

	w := doJSON(t, router, "POST", "/api/messages", tokenFor(t, alice), gin.H{
		"receiverId": bob.ID,
		"message":    "unread one",
	})
	expectStatus(t, w, http.StatusOK)
	messageID, _ := decodeBody(t, w)["messageId"].(string)

	w = doJSON(t, router, "GET", "/api/messages/unread/count", tokenFor(t, bob), nil)
	expectStatus(t, w, http.StatusOK)
	if count, _ := decodeBody(t, w)["unreadCount"].(float64); count != 1 {
		t.Errorf("unreadCount = %v, want 1", count)
	}

	// Only the receiver's mark-read takes effect; the sender's is a no-op.
	w = doJSON(t, router, "PUT", "/api/messages/"+messageID+"/read", tokenFor(t, alice), nil)
	expectStatus(t, w, http.StatusOK)

	var msg models.Message
	db.First(&msg, "id = ?", messageID)
	if msg.Read {
		t.Error("sender must not be able to mark the message read")
	}

	w = doJSON(t, router, "PUT", "/api/messages/"+messageID+"/read", tokenFor(t, bob), nil)
	expectStatus(t, w, http.StatusOK)

	w = doJSON(t, router, "GET", "/api/messages/unread/count", tokenFor(t, bob), nil)
	if count, _ := decodeBody(t, w)["unreadCount"].(float64); count != 0 {
		t.Errorf("unreadCount after read = %v, want 0", count)
	}
}
