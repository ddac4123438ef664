package services

import (
  "context"
  "errors"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/onlyfrogs/stylesync-backend/internal/apperr"
  "github.com/onlyfrogs/stylesync-backend/internal/logger"
  "github.com/onlyfrogs/stylesync-backend/internal/repos"
  "github.com/onlyfrogs/stylesync-backend/internal/socket"
  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type NotificationService interface {
  // Notify persists the notification and pushes it to the user's websocket
  // channel. The push is best-effort; persistence is the contract.
  Notify(ctx context.Context, userID uuid.UUID, notifType string, content string) (*types.Notification, error)
  GetForUser(ctx context.Context, userID uuid.UUID) ([]*types.Notification, error)
  MarkRead(ctx context.Context, id uuid.UUID) (*types.Notification, error)
  DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationService struct {
  log              *logger.Logger
  notificationRepo repos.NotificationRepo
  hub              *socket.Hub
}

func NewNotificationService(log *logger.Logger, notificationRepo repos.NotificationRepo, hub *socket.Hub) NotificationService {
  return &notificationService{
    log:              log.With("service", "NotificationService"),
    notificationRepo: notificationRepo,
    hub:              hub,
  }
}

func validNotificationType(t string) bool {
  switch t {
  case types.NotificationInfo, types.NotificationWarning, types.NotificationSuccess, types.NotificationError:
    return true
  }
  return false
}

func (ns *notificationService) Notify(ctx context.Context, userID uuid.UUID, notifType string, content string) (*types.Notification, error) {
  if !validNotificationType(notifType) {
    return nil, apperr.Validation("Notification type must be one of INFO, WARNING, SUCCESS, ERROR")
  }
  n, err := ns.notificationRepo.Create(ctx, nil, &types.Notification{
    UserID:  userID,
    Type:    notifType,
    Content: content,
  })
  if err != nil {
    return nil, apperr.Internal("Failed to create notification", err)
  }
  if ns.hub != nil {
    ns.hub.BroadcastGlobal(ctx, socket.Message{
      Channel: "user:" + userID.String(),
      Payload: n,
    })
  }
  return n, nil
}

func (ns *notificationService) GetForUser(ctx context.Context, userID uuid.UUID) ([]*types.Notification, error) {
  notifs, err := ns.notificationRepo.GetByUser(ctx, nil, userID)
  if err != nil {
    return nil, apperr.Internal("Failed to load notifications", err)
  }
  return notifs, nil
}

func (ns *notificationService) MarkRead(ctx context.Context, id uuid.UUID) (*types.Notification, error) {
  if _, err := ns.notificationRepo.GetByID(ctx, nil, id); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("Notification not found")
    }
    return nil, apperr.Internal("Failed to load notification", err)
  }
  n, err := ns.notificationRepo.MarkRead(ctx, nil, id)
  if err != nil {
    return nil, apperr.Internal("Failed to mark notification read", err)
  }
  return n, nil
}

func (ns *notificationService) DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
  deleted, err := ns.notificationRepo.DeleteAllForUser(ctx, nil, userID)
  if err != nil {
    return 0, apperr.Internal("Failed to delete notifications", err)
  }
  return deleted, nil
}
