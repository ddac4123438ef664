package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
)

const (
  RoleUser      = "user"
  RoleAssistant = "assistant"
)

type ChatMessage struct {
  gorm.Model
  ID          uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  SessionID   uuid.UUID       `gorm:"index;not null" json:"sessionID"`
  Role        string          `gorm:"column:role;not null" json:"role"`
  Content     string          `gorm:"column:content;type:text;not null" json:"content"`

  CreatedAt   time.Time       `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt   time.Time       `gorm:"not null;default:now()" json:"updatedAt"`
}

func (ChatMessage) TableName() string {
  return "chat_message"
}
