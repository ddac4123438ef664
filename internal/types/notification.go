package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
)

const (
  NotificationInfo    = "INFO"
  NotificationWarning = "WARNING"
  NotificationSuccess = "SUCCESS"
  NotificationError   = "ERROR"
)

type Notification struct {
  gorm.Model
  ID          uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID      uuid.UUID       `gorm:"index;not null" json:"userID"`
  Type        string          `gorm:"column:type;not null" json:"type"`
  Content     string          `gorm:"column:content;type:text" json:"content"`
  Read        bool            `gorm:"column:read;default:false" json:"read"`

  CreatedAt   time.Time       `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt   time.Time       `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Notification) TableName() string {
  return "notification"
}
