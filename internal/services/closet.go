package services

import (
  "context"
  "errors"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/onlyfrogs/stylesync-backend/internal/apperr"
  "github.com/onlyfrogs/stylesync-backend/internal/logger"
  "github.com/onlyfrogs/stylesync-backend/internal/repos"
  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type ClosetService interface {
  CreateCloset(ctx context.Context, userID uuid.UUID, name string, description string) (*types.Closet, error)
  GetUserClosets(ctx context.Context, userID uuid.UUID) ([]*types.Closet, error)
  UpdateCloset(ctx context.Context, id uuid.UUID, name string, description string) (*types.Closet, error)
  // DeleteCloset removes the closet and every clothing item inside it in one
  // transaction.
  DeleteCloset(ctx context.Context, id uuid.UUID) error
}

type closetService struct {
  db           *gorm.DB
  log          *logger.Logger
  closetRepo   repos.ClosetRepo
  clothingRepo repos.ClothingRepo
  userRepo     repos.UserRepo
}

func NewClosetService(db *gorm.DB, log *logger.Logger, closetRepo repos.ClosetRepo, clothingRepo repos.ClothingRepo, userRepo repos.UserRepo) ClosetService {
  return &closetService{
    db:           db,
    log:          log.With("service", "ClosetService"),
    closetRepo:   closetRepo,
    clothingRepo: clothingRepo,
    userRepo:     userRepo,
  }
}

func (cs *closetService) CreateCloset(ctx context.Context, userID uuid.UUID, name string, description string) (*types.Closet, error) {
  if name == "" {
    return nil, apperr.Validation("Closet name is required")
  }
  if _, err := cs.userRepo.GetByID(ctx, nil, userID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("User not found")
    }
    return nil, apperr.Internal("Failed to load user", err)
  }
  closet, err := cs.closetRepo.Create(ctx, nil, &types.Closet{
    UserID:      userID,
    Name:        name,
    Description: description,
  })
  if err != nil {
    return nil, apperr.Internal("Failed to create closet", err)
  }
  return closet, nil
}

func (cs *closetService) GetUserClosets(ctx context.Context, userID uuid.UUID) ([]*types.Closet, error) {
  closets, err := cs.closetRepo.GetByUser(ctx, nil, userID)
  if err != nil {
    return nil, apperr.Internal("Failed to load closets", err)
  }
  return closets, nil
}

func (cs *closetService) UpdateCloset(ctx context.Context, id uuid.UUID, name string, description string) (*types.Closet, error) {
  if name == "" {
    return nil, apperr.Validation("Closet name is required")
  }
  if _, err := cs.closetRepo.GetByID(ctx, nil, id); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("Closet not found")
    }
    return nil, apperr.Internal("Failed to load closet", err)
  }
  closet, err := cs.closetRepo.UpdateDetails(ctx, nil, id, name, description)
  if err != nil {
    return nil, apperr.Internal("Failed to update closet", err)
  }
  return closet, nil
}

func (cs *closetService) DeleteCloset(ctx context.Context, id uuid.UUID) error {
  if _, err := cs.closetRepo.GetByID(ctx, nil, id); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return apperr.NotFound("Closet not found")
    }
    return apperr.Internal("Failed to load closet", err)
  }
  err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if err := cs.clothingRepo.DeleteByCloset(ctx, tx, id); err != nil {
      return err
    }
    return cs.closetRepo.Delete(ctx, tx, id)
  })
  if err != nil {
    return apperr.Internal("Failed to delete closet", err)
  }
  return nil
}
