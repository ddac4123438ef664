package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
)

type Fit struct {
  gorm.Model
  ID            uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID        uuid.UUID         `gorm:"index;not null" json:"userID"`
  Name          string            `gorm:"not null;column:name" json:"name"`
  ThumbnailURL  string            `gorm:"column:thumbnail_url" json:"thumbnailURL"`

  Clothes       []ClothingItem    `gorm:"many2many:fit_pieces;" json:"clothes,omitempty"`

  CreatedAt     time.Time         `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt     time.Time         `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Fit) TableName() string {
  return "fit"
}
