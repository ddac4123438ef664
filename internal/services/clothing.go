package services

import (
  "context"
  "errors"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/onlyfrogs/stylesync-backend/internal/apperr"
  "github.com/onlyfrogs/stylesync-backend/internal/logger"
  "github.com/onlyfrogs/stylesync-backend/internal/repos"
  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type ClothingService interface {
  CreateClothingItem(ctx context.Context, item *types.ClothingItem) (*types.ClothingItem, error)
  GetClothingItem(ctx context.Context, id uuid.UUID) (*types.ClothingItem, error)
  GetClosetClothes(ctx context.Context, closetID uuid.UUID) ([]*types.ClothingItem, error)
  GetUserClothes(ctx context.Context, userID uuid.UUID) ([]*types.ClothingItem, error)
  UpdateClothingItem(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*types.ClothingItem, error)
  MarkWorn(ctx context.Context, id uuid.UUID) (*types.ClothingItem, error)
  DeleteClothingItem(ctx context.Context, id uuid.UUID) error
}

type clothingService struct {
  log          *logger.Logger
  clothingRepo repos.ClothingRepo
  closetRepo   repos.ClosetRepo
}

func NewClothingService(log *logger.Logger, clothingRepo repos.ClothingRepo, closetRepo repos.ClosetRepo) ClothingService {
  return &clothingService{
    log:          log.With("service", "ClothingService"),
    clothingRepo: clothingRepo,
    closetRepo:   closetRepo,
  }
}

// clothingFields is the set of columns an item update may touch.
var clothingFields = map[string]bool{
  "image_url": true,
  "name":      true,
  "category":  true,
  "subtype":   true,
  "material":  true,
  "pattern":   true,
  "color":     true,
  "brand":     true,
  "occasions": true,
  "seasons":   true,
}

func (cls *clothingService) CreateClothingItem(ctx context.Context, item *types.ClothingItem) (*types.ClothingItem, error) {
  if item.Name == "" {
    return nil, apperr.Validation("Clothing item name is required")
  }
  closet, err := cls.closetRepo.GetByID(ctx, nil, item.ClosetID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("Closet not found")
    }
    return nil, apperr.Internal("Failed to load closet", err)
  }
  // Items always belong to the closet owner; the body cannot reassign them.
  item.UserID = closet.UserID
  created, err := cls.clothingRepo.Create(ctx, nil, item)
  if err != nil {
    return nil, apperr.Internal("Failed to create clothing item", err)
  }
  return created, nil
}

func (cls *clothingService) GetClothingItem(ctx context.Context, id uuid.UUID) (*types.ClothingItem, error) {
  item, err := cls.clothingRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("Clothing item not found")
    }
    return nil, apperr.Internal("Failed to load clothing item", err)
  }
  return item, nil
}

func (cls *clothingService) GetClosetClothes(ctx context.Context, closetID uuid.UUID) ([]*types.ClothingItem, error) {
  if _, err := cls.closetRepo.GetByID(ctx, nil, closetID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("Closet not found")
    }
    return nil, apperr.Internal("Failed to load closet", err)
  }
  items, err := cls.clothingRepo.GetByCloset(ctx, nil, closetID)
  if err != nil {
    return nil, apperr.Internal("Failed to load closet clothes", err)
  }
  return items, nil
}

func (cls *clothingService) GetUserClothes(ctx context.Context, userID uuid.UUID) ([]*types.ClothingItem, error) {
  items, err := cls.clothingRepo.GetByUser(ctx, nil, userID)
  if err != nil {
    return nil, apperr.Internal("Failed to load user clothes", err)
  }
  return items, nil
}

func (cls *clothingService) UpdateClothingItem(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*types.ClothingItem, error) {
  if len(fields) == 0 {
    return nil, apperr.Validation("No fields to update")
  }
  for key := range fields {
    if !clothingFields[key] {
      return nil, apperr.Validation("Unknown clothing field: " + key)
    }
  }
  if _, err := cls.clothingRepo.GetByID(ctx, nil, id); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("Clothing item not found")
    }
    return nil, apperr.Internal("Failed to load clothing item", err)
  }
  item, err := cls.clothingRepo.UpdateFields(ctx, nil, id, fields)
  if err != nil {
    return nil, apperr.Internal("Failed to update clothing item", err)
  }
  return item, nil
}

func (cls *clothingService) MarkWorn(ctx context.Context, id uuid.UUID) (*types.ClothingItem, error) {
  if _, err := cls.clothingRepo.GetByID(ctx, nil, id); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("Clothing item not found")
    }
    return nil, apperr.Internal("Failed to load clothing item", err)
  }
  if err := cls.clothingRepo.MarkWorn(ctx, nil, id, time.Now().UTC()); err != nil {
    return nil, apperr.Internal("Failed to mark clothing item worn", err)
  }
  item, err := cls.clothingRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, apperr.Internal("Failed to reload clothing item", err)
  }
  return item, nil
}

func (cls *clothingService) DeleteClothingItem(ctx context.Context, id uuid.UUID) error {
  if _, err := cls.clothingRepo.GetByID(ctx, nil, id); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return apperr.NotFound("Clothing item not found")
    }
    return apperr.Internal("Failed to load clothing item", err)
  }
  if err := cls.clothingRepo.Delete(ctx, nil, id); err != nil {
    return apperr.Internal("Failed to delete clothing item", err)
  }
  return nil
}
