package repos

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/onlyfrogs/stylesync-backend/internal/logger"
    "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type FitRepo interface {
    // Create persists the fit and attaches the given clothing items through the
    // fit_pieces pivot in a single transaction.
    Create(ctx context.Context, tx *gorm.DB, fit *types.Fit, pieceIDs []uuid.UUID) (*types.Fit, error)
    GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Fit, error)
    GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Fit, error)
    Rename(ctx context.Context, tx *gorm.DB, id uuid.UUID, newName string) (*types.Fit, error)
    // Delete removes the fit and its pivot rows only, never the clothing items.
    Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type fitRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewFitRepo(db *gorm.DB, baseLog *logger.Logger) FitRepo {
    return &fitRepo{
        db:  db,
        log: baseLog.With("repo", "FitRepo"),
    }
}

func (fr *fitRepo) Create(ctx context.Context, tx *gorm.DB, fit *types.Fit, pieceIDs []uuid.UUID) (*types.Fit, error) {
    if tx == nil {
        tx = fr.db
    }
    if fit.ID == uuid.Nil {
        fit.ID = uuid.New()
    }
    err := tx.WithContext(ctx).Transaction(func(inner *gorm.DB) error {
        if err := inner.Create(fit).Error; err != nil {
            return err
        }
        if len(pieceIDs) == 0 {
            return nil
        }
        var pieces []*types.ClothingItem
        if err := inner.Where("id IN ?", pieceIDs).Find(&pieces).Error; err != nil {
            return err
        }
        return inner.Model(fit).Association("Clothes").Append(pieces)
    })
    if err != nil {
        fr.log.Error("failed to create fit", "error", err)
        return nil, err
    }
    return fr.GetByID(ctx, tx, fit.ID)
}

func (fr *fitRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Fit, error) {
    if tx == nil {
        tx = fr.db
    }
    var f types.Fit
    if err := tx.WithContext(ctx).
        Preload("Clothes").
        Where("id = ?", id).
        First(&f).Error; err != nil {
        return nil, err
    }
    return &f, nil
}

func (fr *fitRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Fit, error) {
    if tx == nil {
        tx = fr.db
    }
    var fits []*types.Fit
    if err := tx.WithContext(ctx).
        Preload("Clothes").
        Where("user_id = ?", userID).
        Order("created_at DESC").
        Find(&fits).Error; err != nil {
        fr.log.Error("failed to get fits by user", "error", err)
        return nil, err
    }
    return fits, nil
}

func (fr *fitRepo) Rename(ctx context.Context, tx *gorm.DB, id uuid.UUID, newName string) (*types.Fit, error) {
    if tx == nil {
        tx = fr.db
    }
    if err := tx.WithContext(ctx).
        Model(&types.Fit{}).
        Where("id = ?", id).
        Update("name", newName).Error; err != nil {
        fr.log.Error("failed to rename fit", "error", err)
        return nil, err
    }
    return fr.GetByID(ctx, tx, id)
}

func (fr *fitRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
    if tx == nil {
        tx = fr.db
    }
    err := tx.WithContext(ctx).Transaction(func(inner *gorm.DB) error {
        fit := types.Fit{ID: id}
        if err := inner.Model(&fit).Association("Clothes").Clear(); err != nil {
            return err
        }
        return inner.Unscoped().Where("id = ?", id).Delete(&types.Fit{}).Error
    })
    if err != nil {
        fr.log.Error("failed to delete fit", "error", err)
        return err
    }
    return nil
}
