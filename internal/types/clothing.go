package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

type ClothingItem struct {
  gorm.Model
  ID          uuid.UUID                     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID      uuid.UUID                     `gorm:"index;not null" json:"userID"`
  ClosetID    uuid.UUID                     `gorm:"index;not null" json:"closetID"`

  ImageURL    string                        `gorm:"column:image_url" json:"imageURL"`
  Name        string                        `gorm:"column:name" json:"name"`
  Category    string                        `gorm:"column:category" json:"category"`
  Subtype     string                        `gorm:"column:subtype" json:"subtype"`
  Material    string                        `gorm:"column:material" json:"material"`
  Pattern     string                        `gorm:"column:pattern" json:"pattern"`
  Color       string                        `gorm:"column:color" json:"color"`
  Brand       string                        `gorm:"column:brand" json:"brand"`
  Occasions   datatypes.JSONSlice[string]   `gorm:"column:occasions" json:"occasions"`
  Seasons     datatypes.JSONSlice[string]   `gorm:"column:seasons" json:"seasons"`

  WornCount   int                           `gorm:"column:worn_count;default:0" json:"wornCount"`
  LastWornAt  *time.Time                    `gorm:"column:last_worn_at" json:"lastWornAt,omitempty"`

  CreatedAt   time.Time                     `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt   time.Time                     `gorm:"not null;default:now()" json:"updatedAt"`
}

func (ClothingItem) TableName() string {
  return "clothing_item"
}
