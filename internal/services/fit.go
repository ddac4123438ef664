package services

import (
  "bytes"
  "context"
  "errors"
  "fmt"

  "github.com/disintegration/imaging"
  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/onlyfrogs/stylesync-backend/internal/apperr"
  "github.com/onlyfrogs/stylesync-backend/internal/logger"
  "github.com/onlyfrogs/stylesync-backend/internal/repos"
  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type FitService interface {
  // CreateFit saves a named outfit built from existing clothing items. When
  // thumbnail bytes are provided they are resized and uploaded to the bucket
  // before the fit row is written.
  CreateFit(ctx context.Context, userID uuid.UUID, name string, pieceIDs []uuid.UUID, thumbnail []byte) (*types.Fit, error)
  GetFit(ctx context.Context, id uuid.UUID) (*types.Fit, error)
  GetUserFits(ctx context.Context, userID uuid.UUID) ([]*types.Fit, error)
  RenameFit(ctx context.Context, id uuid.UUID, newName string) (*types.Fit, error)
  DeleteFit(ctx context.Context, id uuid.UUID) error
}

type fitService struct {
  log           *logger.Logger
  fitRepo       repos.FitRepo
  clothingRepo  repos.ClothingRepo
  userRepo      repos.UserRepo
  bucketService BucketService
}

const fitThumbnailMaxSize = 512

func NewFitService(log *logger.Logger, fitRepo repos.FitRepo, clothingRepo repos.ClothingRepo, userRepo repos.UserRepo, bucketService BucketService) FitService {
  return &fitService{
    log:           log.With("service", "FitService"),
    fitRepo:       fitRepo,
    clothingRepo:  clothingRepo,
    userRepo:      userRepo,
    bucketService: bucketService,
  }
}

func (fs *fitService) CreateFit(ctx context.Context, userID uuid.UUID, name string, pieceIDs []uuid.UUID, thumbnail []byte) (*types.Fit, error) {
  if name == "" {
    return nil, apperr.Validation("Fit name is required")
  }
  if len(pieceIDs) == 0 {
    return nil, apperr.Validation("A fit needs at least one clothing item")
  }
  if _, err := fs.userRepo.GetByID(ctx, nil, userID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("User not found")
    }
    return nil, apperr.Internal("Failed to load user", err)
  }
  pieces, err := fs.clothingRepo.GetByIDs(ctx, nil, pieceIDs)
  if err != nil {
    return nil, apperr.Internal("Failed to load clothing items", err)
  }
  if len(pieces) != len(pieceIDs) {
    return nil, apperr.Validation("One or more clothing items do not exist")
  }
  for _, piece := range pieces {
    if piece.UserID != userID {
      return nil, apperr.Validation("Fits can only contain the user's own clothes")
    }
  }

  fit := &types.Fit{
    ID:     uuid.New(),
    UserID: userID,
    Name:   name,
  }

  if len(thumbnail) > 0 && fs.bucketService != nil {
    url, err := fs.uploadThumbnail(ctx, fit.ID, thumbnail)
    if err != nil {
      fs.log.Warn("Failed to process fit thumbnail, saving fit without one", "error", err)
    } else {
      fit.ThumbnailURL = url
    }
  }

  created, err := fs.fitRepo.Create(ctx, nil, fit, pieceIDs)
  if err != nil {
    return nil, apperr.Internal("Failed to create fit", err)
  }
  return created, nil
}

func (fs *fitService) uploadThumbnail(ctx context.Context, fitID uuid.UUID, data []byte) (string, error) {
  img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
  if err != nil {
    return "", fmt.Errorf("failed decoding thumbnail image: %w", err)
  }
  resized := imaging.Fit(img, fitThumbnailMaxSize, fitThumbnailMaxSize, imaging.Lanczos)
  var buf bytes.Buffer
  if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
    return "", fmt.Errorf("failed encoding thumbnail jpeg: %w", err)
  }
  key := fmt.Sprintf("fits/%s.jpg", fitID)
  return fs.bucketService.UploadObject(ctx, key, buf.Bytes(), "image/jpeg")
}

func (fs *fitService) GetFit(ctx context.Context, id uuid.UUID) (*types.Fit, error) {
  fit, err := fs.fitRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("Fit not found")
    }
    return nil, apperr.Internal("Failed to load fit", err)
  }
  return fit, nil
}

func (fs *fitService) GetUserFits(ctx context.Context, userID uuid.UUID) ([]*types.Fit, error) {
  fits, err := fs.fitRepo.GetByUser(ctx, nil, userID)
  if err != nil {
    return nil, apperr.Internal("Failed to load fits", err)
  }
  return fits, nil
}

func (fs *fitService) RenameFit(ctx context.Context, id uuid.UUID, newName string) (*types.Fit, error) {
  if newName == "" {
    return nil, apperr.Validation("Fit name is required")
  }
  if _, err := fs.fitRepo.GetByID(ctx, nil, id); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("Fit not found")
    }
    return nil, apperr.Internal("Failed to load fit", err)
  }
  fit, err := fs.fitRepo.Rename(ctx, nil, id, newName)
  if err != nil {
    return nil, apperr.Internal("Failed to rename fit", err)
  }
  return fit, nil
}

func (fs *fitService) DeleteFit(ctx context.Context, id uuid.UUID) error {
  fit, err := fs.fitRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return apperr.NotFound("Fit not found")
    }
    return apperr.Internal("Failed to load fit", err)
  }
  if err := fs.fitRepo.Delete(ctx, nil, id); err != nil {
    return apperr.Internal("Failed to delete fit", err)
  }
  if fit.ThumbnailURL != "" && fs.bucketService != nil {
    key := fmt.Sprintf("fits/%s.jpg", fit.ID)
    if err := fs.bucketService.DeleteObject(ctx, key); err != nil {
      fs.log.Warn("Failed to delete fit thumbnail from bucket", "key", key, "error", err)
    }
  }
  return nil
}
