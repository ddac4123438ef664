package repos

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/onlyfrogs/stylesync-backend/internal/logger"
    "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type ChatMessageRepo interface {
    CreateMessage(ctx context.Context, tx *gorm.DB, msg *types.ChatMessage) (*types.ChatMessage, error)
    GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.ChatMessage, error)
    DeleteBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error
}

type chatMessageRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewChatMessageRepo(db *gorm.DB, baseLog *logger.Logger) ChatMessageRepo {
    return &chatMessageRepo{
        db:  db,
        log: baseLog.With("repo", "ChatMessageRepo"),
    }
}

func (cmr *chatMessageRepo) CreateMessage(ctx context.Context, tx *gorm.DB, msg *types.ChatMessage) (*types.ChatMessage, error) {
    if tx == nil {
        tx = cmr.db
    }
    if msg.ID == uuid.Nil {
        msg.ID = uuid.New()
    }
    if err := tx.WithContext(ctx).Create(msg).Error; err != nil {
        cmr.log.Error("failed to create chat message", "error", err)
        return nil, err
    }
    return msg, nil
}

func (cmr *chatMessageRepo) GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.ChatMessage, error) {
    if tx == nil {
        tx = cmr.db
    }
    var msgs []*types.ChatMessage
    if err := tx.WithContext(ctx).
        Where("session_id = ?", sessionID).
        Order("created_at ASC").
        Find(&msgs).Error; err != nil {
        cmr.log.Error("failed to get chat messages by sessionID", "error", err)
        return nil, err
    }
    return msgs, nil
}

func (cmr *chatMessageRepo) DeleteBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error {
    if tx == nil {
        tx = cmr.db
    }
    if err := tx.WithContext(ctx).
        Unscoped().
        Where("session_id = ?", sessionID).
        Delete(&types.ChatMessage{}).Error; err != nil {
        cmr.log.Error("failed to delete chat messages by sessionID", "error", err)
        return err
    }
    return nil
}
