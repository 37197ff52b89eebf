// File: /models/message.go
package models

import (
	"time"
)

type Message struct {
	ID         string    `json:"id" gorm:"primaryKey;size:191"`
	SenderID   string    `json:"senderId" gorm:"not null;index;size:191"`
	ReceiverID string    `json:"receiverId" gorm:"not null;index;size:191"`
	Message    string    `json:"message" gorm:"not null;type:text"`
	Timestamp  time.Time `json:"timestamp" gorm:"autoCreateTime"`
	Read       bool      `json:"read" gorm:"default:false"`

	Sender   User `json:"-" gorm:"foreignKey:SenderID"`
	Receiver User `json:"-" gorm:"foreignKey:ReceiverID"`
}

// MessageWithNames is a message row joined with both usernames.
type MessageWithNames struct {
	Message
	SenderName   string `json:"senderName"`
	ReceiverName string `json:"receiverName"`
}
