package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
)

// ChatSession is 1:1 with a user. Creation is idempotent at the service layer;
// the unique index backs that up at the storage layer.
type ChatSession struct {
  gorm.Model
  ID          uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID      uuid.UUID         `gorm:"uniqueIndex;not null" json:"userID"`

  Messages    []ChatMessage     `gorm:"foreignKey:SessionID" json:"messages,omitempty"`

  CreatedAt   time.Time         `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt   time.Time         `gorm:"not null;default:now()" json:"updatedAt"`
}

func (ChatSession) TableName() string {
  return "chat_session"
}
