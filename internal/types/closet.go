package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
)

type Closet struct {
  gorm.Model
  ID          uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID      uuid.UUID         `gorm:"index;not null" json:"userID"`
  Name        string            `gorm:"not null;column:name" json:"name"`
  Description string            `gorm:"column:description" json:"description"`

  Clothes     []ClothingItem    `gorm:"foreignKey:ClosetID" json:"clothes,omitempty"`

  CreatedAt   time.Time         `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt   time.Time         `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Closet) TableName() string {
  return "closet"
}
