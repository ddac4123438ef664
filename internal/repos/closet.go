package repos

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/onlyfrogs/stylesync-backend/internal/logger"
    "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type ClosetRepo interface {
    Create(ctx context.Context, tx *gorm.DB, closet *types.Closet) (*types.Closet, error)
    GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Closet, error)
    GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Closet, error)
    UpdateDetails(ctx context.Context, tx *gorm.DB, id uuid.UUID, name string, description string) (*types.Closet, error)
    Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type closetRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewClosetRepo(db *gorm.DB, baseLog *logger.Logger) ClosetRepo {
    return &closetRepo{
        db:  db,
        log: baseLog.With("repo", "ClosetRepo"),
    }
}

func (cr *closetRepo) Create(ctx context.Context, tx *gorm.DB, closet *types.Closet) (*types.Closet, error) {
    if tx == nil {
        tx = cr.db
    }
    if closet.ID == uuid.Nil {
        closet.ID = uuid.New()
    }
    if err := tx.WithContext(ctx).Create(closet).Error; err != nil {
        cr.log.Error("failed to create closet", "error", err)
        return nil, err
    }
    return closet, nil
}

func (cr *closetRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Closet, error) {
    if tx == nil {
        tx = cr.db
    }
    var c types.Closet
    if err := tx.WithContext(ctx).
        Where("id = ?", id).
        First(&c).Error; err != nil {
        return nil, err
    }
    return &c, nil
}

func (cr *closetRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Closet, error) {
    if tx == nil {
        tx = cr.db
    }
    var closets []*types.Closet
    if err := tx.WithContext(ctx).
        Where("user_id = ?", userID).
        Order("created_at ASC").
        Find(&closets).Error; err != nil {
        cr.log.Error("failed to get closets by user", "error", err)
        return nil, err
    }
    return closets, nil
}

func (cr *closetRepo) UpdateDetails(ctx context.Context, tx *gorm.DB, id uuid.UUID, name string, description string) (*types.Closet, error) {
    if tx == nil {
        tx = cr.db
    }
    if err := tx.WithContext(ctx).
        Model(&types.Closet{}).
        Where("id = ?", id).
        Updates(map[string]interface{}{"name": name, "description": description}).Error; err != nil {
        cr.log.Error("failed to update closet details", "error", err)
        return nil, err
    }
    return cr.GetByID(ctx, tx, id)
}

func (cr *closetRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
    if tx == nil {
        tx = cr.db
    }
    if err := tx.WithContext(ctx).
        Unscoped().
        Where("id = ?", id).
        Delete(&types.Closet{}).Error; err != nil {
        cr.log.Error("failed to delete closet", "error", err)
        return err
    }
    return nil
}
