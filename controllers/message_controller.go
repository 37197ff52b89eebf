// File: /controllers/message_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tampa-blades-api/models"
	"tampa-blades-api/utils"
)

type MessageController struct {
	db *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{db: db}
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
}

// SendMessage delivers a private message to another user.
func (mc *MessageController) SendMessage(c *gin.Context) {
	senderID := c.GetString("user_id")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ReceiverID == "" || req.Message == "" {
		utils.SendError(c, http.StatusBadRequest, "Receiver ID and message required")
		return
	}

	var receiver models.User
	if err := mc.db.Select("id").First(&receiver, "id = ?", req.ReceiverID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Receiver not found")
		return
	}

	message := models.Message{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Message:    utils.SanitizeText(req.Message),
	}

	if err := mc.db.Create(&message).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"messageId": message.ID,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetMessages lists everything the current user has sent or received,
// newest first, with both usernames joined in.
func (mc *MessageController) GetMessages(c *gin.Context) {
	userID := c.GetString("user_id")

	var messages []models.MessageWithNames
	err := mc.db.Model(&models.Message{}).
		Select("messages.*, sender.username AS sender_name, receiver.username AS receiver_name").
		Joins("JOIN users sender ON sender.id = messages.sender_id").
		Joins("JOIN users receiver ON receiver.id = messages.receiver_id").
		Where("messages.sender_id = ? OR messages.receiver_id = ?", userID, userID).
		Order("messages.timestamp DESC").
		Scan(&messages).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// GetConversation lists both directions of the thread with one other user,
// oldest first.
func (mc *MessageController) GetConversation(c *gin.Context) {
	userID := c.GetString("user_id")
	otherID := c.Param("userId")

	var messages []models.MessageWithNames
	err := mc.db.Model(&models.Message{}).
		Select("messages.*, sender.username AS sender_name, receiver.username AS receiver_name").
		Joins("JOIN users sender ON sender.id = messages.sender_id").
		Joins("JOIN users receiver ON receiver.id = messages.receiver_id").
		Where("(messages.sender_id = ? AND messages.receiver_id = ?) OR (messages.sender_id = ? AND messages.receiver_id = ?)",
			userID, otherID, otherID, userID).
		Order("messages.timestamp ASC").
		Scan(&messages).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch conversation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// MarkRead flips the read flag. Only the receiver's own messages match, so
// other callers are a silent no-op.
func (mc *MessageController) MarkRead(c *gin.Context) {
	userID := c.GetString("user_id")

	err := mc.db.Model(&models.Message{}).
		Where("id = ? AND receiver_id = ?", c.Param("id"), userID).
		Update("read", true).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to mark message as read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetUnreadCount reports how many received messages are still unread.
func (mc *MessageController) GetUnreadCount(c *gin.Context) {
	userID := c.GetString("user_id")

	var count int64
	err := mc.db.Model(&models.Message{}).
		Where("receiver_id = ? AND `read` = ?", userID, false).
		Count(&count).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to get unread count")
		return
	}

	c.JSON(http.StatusOK, gin.H{"unreadCount": count})
}
