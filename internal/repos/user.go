package repos

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/onlyfrogs/stylesync-backend/internal/logger"
    "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type UserRepo interface {
    Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)
    GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error)
    GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error)
    // GetWithWardrobe loads the user plus everything the stylist flow needs:
    // closets, clothes and the chat session with its messages in creation order.
    GetWithWardrobe(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error)
    Update(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)
    UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
}

type userRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
    return &userRepo{
        db:  db,
        log: baseLog.With("repo", "UserRepo"),
    }
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
    if tx == nil {
        tx = ur.db
    }
    if user.ID == uuid.Nil {
        user.ID = uuid.New()
    }
    if err := tx.WithContext(ctx).Create(user).Error; err != nil {
        ur.log.Error("failed to create user", "error", err)
        return nil, err
    }
    return user, nil
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error) {
    if tx == nil {
        tx = ur.db
    }
    var u types.User
    if err := tx.WithContext(ctx).
        Where("id = ?", id).
        First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
    if tx == nil {
        tx = ur.db
    }
    var u types.User
    if err := tx.WithContext(ctx).
        Where("email = ?", email).
        First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (ur *userRepo) GetWithWardrobe(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error) {
    if tx == nil {
        tx = ur.db
    }
    var u types.User
    if err := tx.WithContext(ctx).
        Preload("Closets").
        Preload("Clothes").
        Preload("ChatSession").
        Preload("ChatSession.Messages", func(db *gorm.DB) *gorm.DB {
            return db.Order("created_at ASC")
        }).
        Where("id = ?", id).
        First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (ur *userRepo) Update(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
    if tx == nil {
        tx = ur.db
    }
    if err := tx.WithContext(ctx).Save(user).Error; err != nil {
        ur.log.Error("failed to update user", "error", err)
        return nil, err
    }
    return user, nil
}

func (ur *userRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
    if tx == nil {
        tx = ur.db
    }
    if err := tx.WithContext(ctx).
        Model(&types.User{}).
        Where("id = ?", id).
        Updates(fields).Error; err != nil {
        ur.log.Error("failed to update user fields", "error", err)
        return err
    }
    return nil
}
