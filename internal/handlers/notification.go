package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/onlyfrogs/stylesync-backend/internal/services"
)

type NotificationHandler struct {
  notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
  return &NotificationHandler{notificationService: notificationService}
}

func (nh *NotificationHandler) MyNotifications(c *gin.Context) {
  var req struct {
    UserID string `json:"user_id"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  userID, ok := parseUUIDField(c, "user_id", req.UserID)
  if !ok {
    return
  }
  notifications, err := nh.notificationService.GetForUser(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":        http.StatusOK,
    "message":       "Notifications retrieved",
    "notifications": notifications,
  })
}

func (nh *NotificationHandler) ReadNotification(c *gin.Context) {
  var req struct {
    NotificationID string `json:"notification_id"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  notifID, ok := parseUUIDField(c, "notification_id", req.NotificationID)
  if !ok {
    return
  }
  notification, err := nh.notificationService.MarkRead(c.Request.Context(), notifID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":       http.StatusOK,
    "message":      "Notification marked read",
    "notification": notification,
  })
}

func (nh *NotificationHandler) DeleteAllNotifications(c *gin.Context) {
  var req struct {
    UserID string `json:"user_id"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  userID, ok := parseUUIDField(c, "user_id", req.UserID)
  if !ok {
    return
  }
  deleted, err := nh.notificationService.DeleteAllForUser(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Notifications deleted",
    "deleted": deleted,
  })
}
