package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect/utils/crypto"
)

// ChatMessage is one line of a user's conversation with the career assistant.
// Rows are append-only: an exchange stores the inbound message followed by the
// assistant's reply.
type ChatMessage struct {
	ID        string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UserID    string         `gorm:"not null;index" json:"user_id"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	IsUser    bool           `gorm:"not null" json:"is_user"`
	Context   string         `gorm:"type:varchar(40)" json:"context,omitempty"` // matched advice category, if any
	Metadata  datatypes.JSON `json:"metadata,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName keeps the historical table name
func (ChatMessage) TableName() string {
	return "chat_messages"
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		id, err := crypto.NewID()
		if err != nil {
			return err
		}
		m.ID = id
	}
	return nil
}
