package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/onlyfrogs/stylesync-backend/internal/services"
)

type ClosetHandler struct {
  closetService services.ClosetService
}

func NewClosetHandler(closetService services.ClosetService) *ClosetHandler {
  return &ClosetHandler{closetService: closetService}
}

func (clh *ClosetHandler) CreateCloset(c *gin.Context) {
  var req struct {
    UserID      string `json:"user_id"`
    Name        string `json:"name"`
    Description string `json:"description"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  userID, ok := parseUUIDField(c, "user_id", req.UserID)
  if !ok {
    return
  }
  closet, err := clh.closetService.CreateCloset(c.Request.Context(), userID, req.Name, req.Description)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{
    "status":  http.StatusCreated,
    "message": "Closet created",
    "closet":  closet,
  })
}

func (clh *ClosetHandler) MyClosets(c *gin.Context) {
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
  closets, err := clh.closetService.GetUserClosets(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Closets retrieved",
    "closets": closets,
  })
}

func (clh *ClosetHandler) UpdateCloset(c *gin.Context) {
  var req struct {
    ClosetID    string `json:"closet_id"`
    Name        string `json:"name"`
    Description string `json:"description"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  closetID, ok := parseUUIDField(c, "closet_id", req.ClosetID)
  if !ok {
    return
  }
  closet, err := clh.closetService.UpdateCloset(c.Request.Context(), closetID, req.Name, req.Description)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Closet updated",
    "closet":  closet,
  })
}

func (clh *ClosetHandler) DeleteCloset(c *gin.Context) {
  var req struct {
    ClosetID string `json:"closet_id"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  closetID, ok := parseUUIDField(c, "closet_id", req.ClosetID)
  if !ok {
    return
  }
  if err := clh.closetService.DeleteCloset(c.Request.Context(), closetID); err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Closet deleted",
  })
}
