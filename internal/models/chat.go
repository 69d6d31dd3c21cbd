package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Role values carried on a chat message.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one entry of a chat's conversation, in conversational order.
type Message struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewMessage builds a message with a fresh identifier.
func NewMessage(role, content string) Message {
	return Message{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
	}
}

// Chat is one stored conversation. ID is the allocated primary key and never
// changes; URLID is the human-facing slug and may be absent. Writes always
// replace the whole document.
type Chat struct {
	ID          string                       `gorm:"primaryKey;size:64" json:"id"`
	URLID       *string                      `gorm:"column:url_id;uniqueIndex;size:255" json:"urlId,omitempty"`
	Description string                       `gorm:"size:512" json:"description,omitempty"`
	Messages    datatypes.JSONSlice[Message] `json:"messages"`
	Timestamp   time.Time                    `json:"timestamp"`
}

// TableName keeps the collection name stable regardless of pluralization rules.
func (Chat) TableName() string { return "chats" }
