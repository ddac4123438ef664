package repos

import (
    "context"
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/onlyfrogs/stylesync-backend/internal/logger"
    "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type ClothingRepo interface {
    Create(ctx context.Context, tx *gorm.DB, item *types.ClothingItem) (*types.ClothingItem, error)
    GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ClothingItem, error)
    GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.ClothingItem, error)
    GetByCloset(ctx context.Context, tx *gorm.DB, closetID uuid.UUID) ([]*types.ClothingItem, error)
    GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ClothingItem, error)
    UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) (*types.ClothingItem, error)
    // MarkWorn bumps worn_count and stamps last_worn_at in one update.
    MarkWorn(ctx context.Context, tx *gorm.DB, id uuid.UUID, wornAt time.Time) error
    Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
    DeleteByCloset(ctx context.Context, tx *gorm.DB, closetID uuid.UUID) error
}

type clothingRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewClothingRepo(db *gorm.DB, baseLog *logger.Logger) ClothingRepo {
    return &clothingRepo{
        db:  db,
        log: baseLog.With("repo", "ClothingRepo"),
    }
}

func (clr *clothingRepo) Create(ctx context.Context, tx *gorm.DB, item *types.ClothingItem) (*types.ClothingItem, error) {
    if tx == nil {
        tx = clr.db
    }
    if item.ID == uuid.Nil {
        item.ID = uuid.New()
    }
    if err := tx.WithContext(ctx).Create(item).Error; err != nil {
        clr.log.Error("failed to create clothing item", "error", err)
        return nil, err
    }
    return item, nil
}

func (clr *clothingRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ClothingItem, error) {
    if tx == nil {
        tx = clr.db
    }
    var item types.ClothingItem
    if err := tx.WithContext(ctx).
        Where("id = ?", id).
        First(&item).Error; err != nil {
        return nil, err
    }
    return &item, nil
}

func (clr *clothingRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.ClothingItem, error) {
    if tx == nil {
        tx = clr.db
    }
    if len(ids) == 0 {
        return nil, nil
    }
    var items []*types.ClothingItem
    if err := tx.WithContext(ctx).
        Where("id IN ?", ids).
        Find(&items).Error; err != nil {
        clr.log.Error("failed to get clothing items by ids", "error", err)
        return nil, err
    }
    return items, nil
}

func (clr *clothingRepo) GetByCloset(ctx context.Context, tx *gorm.DB, closetID uuid.UUID) ([]*types.ClothingItem, error) {
    if tx == nil {
        tx = clr.db
    }
    var items []*types.ClothingItem
    if err := tx.WithContext(ctx).
        Where("closet_id = ?", closetID).
        Order("created_at ASC").
        Find(&items).Error; err != nil {
        clr.log.Error("failed to get clothing items by closet", "error", err)
        return nil, err
    }
    return items, nil
}

func (clr *clothingRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ClothingItem, error) {
    if tx == nil {
        tx = clr.db
    }
    var items []*types.ClothingItem
    if err := tx.WithContext(ctx).
        Where("user_id = ?", userID).
        Order("created_at ASC").
        Find(&items).Error; err != nil {
        clr.log.Error("failed to get clothing items by user", "error", err)
        return nil, err
    }
    return items, nil
}

func (clr *clothingRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) (*types.ClothingItem, error) {
    if tx == nil {
        tx = clr.db
    }
    if err := tx.WithContext(ctx).
        Model(&types.ClothingItem{}).
        Where("id = ?", id).
        Updates(fields).Error; err != nil {
        clr.log.Error("failed to update clothing item", "error", err)
        return nil, err
    }
    return clr.GetByID(ctx, tx, id)
}

func (clr *clothingRepo) MarkWorn(ctx context.Context, tx *gorm.DB, id uuid.UUID, wornAt time.Time) error {
    if tx == nil {
        tx = clr.db
    }
    if err := tx.WithContext(ctx).
        Model(&types.ClothingItem{}).
        Where("id = ?", id).
        Updates(map[string]interface{}{
            "worn_count":   gorm.Expr("worn_count + 1"),
            "last_worn_at": wornAt,
        }).Error; err != nil {
        clr.log.Error("failed to mark clothing item worn", "error", err)
        return err
    }
    return nil
}

func (clr *clothingRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
    if tx == nil {
        tx = clr.db
    }
    if err := tx.WithContext(ctx).
        Unscoped().
        Where("id = ?", id).
        Delete(&types.ClothingItem{}).Error; err != nil {
        clr.log.Error("failed to delete clothing item", "error", err)
        return err
    }
    return nil
}

func (clr *clothingRepo) DeleteByCloset(ctx context.Context, tx *gorm.DB, closetID uuid.UUID) error {
    if tx == nil {
        tx = clr.db
    }
    if err := tx.WithContext(ctx).
        Unscoped().
        Where("closet_id = ?", closetID).
        Delete(&types.ClothingItem{}).Error; err != nil {
        clr.log.Error("failed to delete clothing items by closet", "error", err)
        return err
    }
    return nil
}
