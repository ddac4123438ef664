package services

import (
  "context"
  "errors"

  "github.com/google/uuid"
  "golang.org/x/crypto/bcrypt"
  "gorm.io/gorm"

  "github.com/onlyfrogs/stylesync-backend/internal/apperr"
  "github.com/onlyfrogs/stylesync-backend/internal/logger"
  "github.com/onlyfrogs/stylesync-backend/internal/repos"
  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type UserService interface {
  CreateUser(ctx context.Context, user *types.User) (*types.User, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.User, error)
  GetByEmail(ctx context.Context, email string) (*types.User, error)
  // UpdateProfile applies a whitelisted field map; unknown keys are rejected
  // at this boundary rather than deep in prompt building.
  UpdateProfile(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*types.User, error)
  UpdateName(ctx context.Context, id uuid.UUID, firstName, lastName string) (*types.User, error)
  UpdatePersonalInformation(ctx context.Context, id uuid.UUID, birthDate, gender *string, height, weight *float64) (*types.User, error)
  UpdateBodyType(ctx context.Context, id uuid.UUID, bodyType string) (*types.User, error)
  UpdateConsiderSkinTone(ctx context.Context, id uuid.UUID, value bool) (*types.User, error)
  UpdatePrioritizePreferences(ctx context.Context, id uuid.UUID, value bool) (*types.User, error)
}

type userService struct {
  db            *gorm.DB
  log           *logger.Logger
  userRepo      repos.UserRepo
  avatarService AvatarService
  emailService  EmailService
  notifications NotificationService
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, avatarService AvatarService, emailService EmailService, notifications NotificationService) UserService {
  return &userService{
    db:            db,
    log:           log.With("service", "UserService"),
    userRepo:      userRepo,
    avatarService: avatarService,
    emailService:  emailService,
    notifications: notifications,
  }
}

// profileFields is the canonical set of columns a profile update may touch.
var profileFields = map[string]bool{
  "first_name":               true,
  "last_name":                true,
  "birth_date":               true,
  "gender":                   true,
  "height":                   true,
  "weight":                   true,
  "skin_tone_classification": true,
  "skin_tone_complements":    true,
  "season":                   true,
  "sub_season":               true,
  "body_type":                true,
  "style_preferences":        true,
  "favorite_colors":          true,
  "preferred_brands":         true,
  "budget_min":               true,
  "budget_max":               true,
  "location_lat":             true,
  "location_lon":             true,
  "location_name":            true,
}

func (us *userService) CreateUser(ctx context.Context, user *types.User) (*types.User, error) {
  if user.Email == "" || user.FirstName == "" || user.LastName == "" {
    return nil, apperr.Validation("Email, first name and last name are required")
  }
  if user.Password == "" {
    return nil, apperr.Validation("Password is required")
  }
  hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
  if err != nil {
    return nil, apperr.Internal("Failed to hash password", err)
  }
  user.Password = string(hashed)
  user.ID = uuid.New()

  if us.avatarService != nil {
    if err := us.avatarService.CreateAndUploadUserAvatar(ctx, user); err != nil {
      us.log.Warn("Failed to create avatar for new user, continuing without one", "error", err)
    }
  }

  created, err := us.userRepo.Create(ctx, nil, user)
  if err != nil {
    return nil, apperr.Internal("Failed to create user", err)
  }

  if us.notifications != nil {
    if _, err := us.notifications.Notify(ctx, created.ID, types.NotificationInfo, "Welcome to StyleSync! Start by adding clothes to your closet."); err != nil {
      us.log.Warn("Failed to create welcome notification", "error", err)
    }
  }
  if us.emailService != nil {
    if err := us.emailService.SendWelcomeEmail(ctx, created.Email, created.FirstName); err != nil {
      us.log.Warn("Failed to send welcome email", "error", err)
    }
  }
  return created, nil
}

func (us *userService) GetByID(ctx context.Context, id uuid.UUID) (*types.User, error) {
  user, err := us.userRepo.GetWithWardrobe(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("User not found")
    }
    return nil, apperr.Internal("Failed to load user", err)
  }
  return user, nil
}

func (us *userService) GetByEmail(ctx context.Context, email string) (*types.User, error) {
  if email == "" {
    return nil, apperr.Validation("Email is required")
  }
  user, err := us.userRepo.GetByEmail(ctx, nil, email)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("User not found")
    }
    return nil, apperr.Internal("Failed to load user", err)
  }
  return user, nil
}

func (us *userService) UpdateProfile(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*types.User, error) {
  if len(fields) == 0 {
    return nil, apperr.Validation("No fields to update")
  }
  for key := range fields {
    if !profileFields[key] {
      return nil, apperr.Validation("Unknown profile field: " + key)
    }
  }
  return us.applyUpdate(ctx, id, fields)
}

func (us *userService) UpdateName(ctx context.Context, id uuid.UUID, firstName, lastName string) (*types.User, error) {
  if firstName == "" || lastName == "" {
    return nil, apperr.Validation("First name and last name are required")
  }
  return us.applyUpdate(ctx, id, map[string]interface{}{
    "first_name": firstName,
    "last_name":  lastName,
  })
}

func (us *userService) UpdatePersonalInformation(ctx context.Context, id uuid.UUID, birthDate, gender *string, height, weight *float64) (*types.User, error) {
  fields := map[string]interface{}{}
  if birthDate != nil {
    fields["birth_date"] = *birthDate
  }
  if gender != nil {
    fields["gender"] = *gender
  }
  if height != nil {
    fields["height"] = *height
  }
  if weight != nil {
    fields["weight"] = *weight
  }
  if len(fields) == 0 {
    return nil, apperr.Validation("No fields to update")
  }
  return us.applyUpdate(ctx, id, fields)
}

func (us *userService) UpdateBodyType(ctx context.Context, id uuid.UUID, bodyType string) (*types.User, error) {
  if bodyType == "" {
    return nil, apperr.Validation("Body type is required")
  }
  return us.applyUpdate(ctx, id, map[string]interface{}{"body_type": bodyType})
}

func (us *userService) UpdateConsiderSkinTone(ctx context.Context, id uuid.UUID, value bool) (*types.User, error) {
  return us.applyUpdate(ctx, id, map[string]interface{}{"consider_skin_tone": value})
}

func (us *userService) UpdatePrioritizePreferences(ctx context.Context, id uuid.UUID, value bool) (*types.User, error) {
  return us.applyUpdate(ctx, id, map[string]interface{}{"prioritize_preferences": value})
}

func (us *userService) applyUpdate(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*types.User, error) {
  if _, err := us.userRepo.GetByID(ctx, nil, id); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("User not found")
    }
    return nil, apperr.Internal("Failed to load user", err)
  }
  if err := us.userRepo.UpdateFields(ctx, nil, id, fields); err != nil {
    return nil, apperr.Internal("Failed to update user", err)
  }
  user, err := us.userRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, apperr.Internal("Failed to reload user", err)
  }
  return user, nil
}
