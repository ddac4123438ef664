package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

type User struct {
  gorm.Model
  ID                      uuid.UUID                     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

  FirstName               string                        `gorm:"not null;column:first_name" json:"firstName"`
  LastName                string                        `gorm:"not null;column:last_name" json:"lastName"`
  Email                   string                        `gorm:"uniqueIndex;not null;column:email" json:"email"`
  Password                string                        `gorm:"not null;column:password" json:"-"`
  Tokens                  int                           `gorm:"column:tokens;default:0" json:"tokens"`

  BirthDate               *string                       `gorm:"column:birth_date" json:"birthDate,omitempty"`
  Gender                  *string                       `gorm:"column:gender" json:"gender,omitempty"`
  Height                  *float64                      `gorm:"column:height" json:"height,omitempty"`
  Weight                  *float64                      `gorm:"column:weight" json:"weight,omitempty"`

  SkinToneClassification  *string                       `gorm:"column:skin_tone_classification" json:"skinToneClassification,omitempty"`
  SkinToneComplements     datatypes.JSONSlice[string]   `gorm:"column:skin_tone_complements" json:"skinToneComplements"`
  Season                  *string                       `gorm:"column:season" json:"season,omitempty"`
  SubSeason               *string                       `gorm:"column:sub_season" json:"subSeason,omitempty"`
  BodyType                *string                       `gorm:"column:body_type" json:"bodyType,omitempty"`

  StylePreferences        datatypes.JSONSlice[string]   `gorm:"column:style_preferences" json:"stylePreferences"`
  FavoriteColors          datatypes.JSONSlice[string]   `gorm:"column:favorite_colors" json:"favoriteColors"`
  PreferredBrands         datatypes.JSONSlice[string]   `gorm:"column:preferred_brands" json:"preferredBrands"`
  BudgetMin               *int                          `gorm:"column:budget_min" json:"budgetMin,omitempty"`
  BudgetMax               *int                          `gorm:"column:budget_max" json:"budgetMax,omitempty"`

  LocationLat             *string                       `gorm:"column:location_lat" json:"locationLat,omitempty"`
  LocationLon             *string                       `gorm:"column:location_lon" json:"locationLon,omitempty"`
  LocationName            *string                       `gorm:"column:location_name" json:"locationName,omitempty"`

  ConsiderSkinTone        bool                          `gorm:"column:consider_skin_tone;default:false" json:"considerSkinTone"`
  PrioritizePreferences   bool                          `gorm:"column:prioritize_preferences;default:false" json:"prioritizePreferences"`

  AvatarBucketKey         string                        `gorm:"column:avatar_bucket_key" json:"avatarBucketKey"`
  AvatarURL               string                        `gorm:"column:avatar_url" json:"avatarURL"`

  Closets                 []Closet                      `gorm:"foreignKey:UserID" json:"closets,omitempty"`
  Clothes                 []ClothingItem                `gorm:"foreignKey:UserID" json:"clothes,omitempty"`
  ChatSession             *ChatSession                  `gorm:"foreignKey:UserID" json:"chatSession,omitempty"`
  Notifications           []Notification                `gorm:"foreignKey:UserID" json:"notifications,omitempty"`

  CreatedAt               time.Time                     `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt               time.Time                     `gorm:"not null;default:now()" json:"updatedAt"`
}

func (User) TableName() string {
  return "user"
}
