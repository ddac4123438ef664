package repos

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/onlyfrogs/stylesync-backend/internal/logger"
    "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type NotificationRepo interface {
    Create(ctx context.Context, tx *gorm.DB, n *types.Notification) (*types.Notification, error)
    GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Notification, error)
    GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Notification, error)
    MarkRead(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Notification, error)
    DeleteAllForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type notificationRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewNotificationRepo(db *gorm.DB, baseLog *logger.Logger) NotificationRepo {
    return &notificationRepo{
        db:  db,
        log: baseLog.With("repo", "NotificationRepo"),
    }
}

func (nr *notificationRepo) Create(ctx context.Context, tx *gorm.DB, n *types.Notification) (*types.Notification, error) {
    if tx == nil {
        tx = nr.db
    }
    if n.ID == uuid.Nil {
        n.ID = uuid.New()
    }
    if err := tx.WithContext(ctx).Create(n).Error; err != nil {
        nr.log.Error("failed to create notification", "error", err)
        return nil, err
    }
    return n, nil
}

func (nr *notificationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Notification, error) {
    if tx == nil {
        tx = nr.db
    }
    var n types.Notification
    if err := tx.WithContext(ctx).
        Where("id = ?", id).
        First(&n).Error; err != nil {
        return nil, err
    }
    return &n, nil
}

func (nr *notificationRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Notification, error) {
    if tx == nil {
        tx = nr.db
    }
    var ns []*types.Notification
    if err := tx.WithContext(ctx).
        Where("user_id = ?", userID).
        Order("created_at DESC").
        Find(&ns).Error; err != nil {
        nr.log.Error("failed to get notifications by user", "error", err)
        return nil, err
    }
    return ns, nil
}

func (nr *notificationRepo) MarkRead(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Notification, error) {
    if tx == nil {
        tx = nr.db
    }
    if err := tx.WithContext(ctx).
        Model(&types.Notification{}).
        Where("id = ?", id).
        Update("read", true).Error; err != nil {
        nr.log.Error("failed to mark notification read", "error", err)
        return nil, err
    }
    return nr.GetByID(ctx, tx, id)
}

func (nr *notificationRepo) DeleteAllForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
    if tx == nil {
        tx = nr.db
    }
    res := tx.WithContext(ctx).
        Unscoped().
        Where("user_id = ?", userID).
        Delete(&types.Notification{})
    if res.Error != nil {
        nr.log.Error("failed to delete notifications for user", "error", res.Error)
        return 0, res.Error
    }
    return res.RowsAffected, nil
}
