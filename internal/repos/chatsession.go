package repos

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/onlyfrogs/stylesync-backend/internal/logger"
    "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type ChatSessionRepo interface {
    CreateSession(ctx context.Context, tx *gorm.DB, session *types.ChatSession) (*types.ChatSession, error)
    GetSessionByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ChatSession, error)
    // GetSessionByUser returns gorm.ErrRecordNotFound when the user has no
    // session; callers decide whether that is an error (prompt flow) or a
    // create trigger (create-session flow).
    GetSessionByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ChatSession, error)
}

type chatSessionRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewChatSessionRepo(db *gorm.DB, baseLog *logger.Logger) ChatSessionRepo {
    return &chatSessionRepo{
        db:  db,
        log: baseLog.With("repo", "ChatSessionRepo"),
    }
}

func (csr *chatSessionRepo) CreateSession(ctx context.Context, tx *gorm.DB, session *types.ChatSession) (*types.ChatSession, error) {
    if tx == nil {
        tx = csr.db
    }
    if session.ID == uuid.Nil {
        session.ID = uuid.New()
    }
    if err := tx.WithContext(ctx).Create(session).Error; err != nil {
        csr.log.Error("failed to create chat session", "error", err)
        return nil, err
    }
    return session, nil
}

func (csr *chatSessionRepo) GetSessionByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ChatSession, error) {
    if tx == nil {
        tx = csr.db
    }
    var s types.ChatSession
    if err := tx.WithContext(ctx).
        Where("id = ?", id).
        First(&s).Error; err != nil {
        return nil, err
    }
    return &s, nil
}

func (csr *chatSessionRepo) GetSessionByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ChatSession, error) {
    if tx == nil {
        tx = csr.db
    }
    var s types.ChatSession
    if err := tx.WithContext(ctx).
        Where("user_id = ?", userID).
        First(&s).Error; err != nil {
        return nil, err
    }
    return &s, nil
}
