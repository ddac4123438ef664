package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/onlyfrogs/stylesync-backend/internal/services"
  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type UserHandler struct {
  userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
  return &UserHandler{userService: userService}
}

func (uh *UserHandler) CreateUser(c *gin.Context) {
  var req struct {
    Email     string `json:"email"`
    Password  string `json:"password"`
    FirstName string `json:"first_name"`
    LastName  string `json:"last_name"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  user, err := uh.userService.CreateUser(c.Request.Context(), &types.User{
    Email:     req.Email,
    Password:  req.Password,
    FirstName: req.FirstName,
    LastName:  req.LastName,
  })
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{
    "status":  http.StatusCreated,
    "message": "User created",
    "user":    user,
  })
}

// GetMe returns the user with wardrobe preloads, looked up by id or email.
func (uh *UserHandler) GetMe(c *gin.Context) {
  var req struct {
    UserID string `json:"user_id"`
    Email  string `json:"email"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  var user *types.User
  var err error
  if req.UserID != "" {
    userID, ok := parseUUIDField(c, "user_id", req.UserID)
    if !ok {
      return
    }
    user, err = uh.userService.GetByID(c.Request.Context(), userID)
  } else if req.Email != "" {
    user, err = uh.userService.GetByEmail(c.Request.Context(), req.Email)
  } else {
    badRequest(c, "Missing user_id or email")
    return
  }
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "User retrieved",
    "user":    user,
  })
}

func (uh *UserHandler) UpdateUser(c *gin.Context) {
  var req struct {
    UserID string                 `json:"user_id"`
    Fields map[string]interface{} `json:"fields"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  userID, ok := parseUUIDField(c, "user_id", req.UserID)
  if !ok {
    return
  }
  user, err := uh.userService.UpdateProfile(c.Request.Context(), userID, req.Fields)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "User updated",
    "user":    user,
  })
}

func (uh *UserHandler) UpdateName(c *gin.Context) {
  var req struct {
    UserID    string `json:"user_id"`
    FirstName string `json:"first_name"`
    LastName  string `json:"last_name"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  userID, ok := parseUUIDField(c, "user_id", req.UserID)
  if !ok {
    return
  }
  user, err := uh.userService.UpdateName(c.Request.Context(), userID, req.FirstName, req.LastName)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Name updated",
    "user":    user,
  })
}

func (uh *UserHandler) UpdatePersonalInformation(c *gin.Context) {
  var req struct {
    UserID    string   `json:"user_id"`
    BirthDate *string  `json:"birth_date"`
    Gender    *string  `json:"gender"`
    Height    *float64 `json:"height"`
    Weight    *float64 `json:"weight"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  userID, ok := parseUUIDField(c, "user_id", req.UserID)
  if !ok {
    return
  }
  user, err := uh.userService.UpdatePersonalInformation(c.Request.Context(), userID, req.BirthDate, req.Gender, req.Height, req.Weight)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Personal information updated",
    "user":    user,
  })
}

func (uh *UserHandler) UpdateBodyType(c *gin.Context) {
  var req struct {
    UserID   string `json:"user_id"`
    BodyType string `json:"body_type"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  userID, ok := parseUUIDField(c, "user_id", req.UserID)
  if !ok {
    return
  }
  user, err := uh.userService.UpdateBodyType(c.Request.Context(), userID, req.BodyType)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Body type updated",
    "user":    user,
  })
}

// UpdateConsiderSkinTone requires an explicit boolean; a missing value is a
// validation error, not a default.
func (uh *UserHandler) UpdateConsiderSkinTone(c *gin.Context) {
  var req struct {
    UserID          string `json:"user_id"`
    ConsiderSkinTone *bool `json:"consider_skin_tone"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  userID, ok := parseUUIDField(c, "user_id", req.UserID)
  if !ok {
    return
  }
  if req.ConsiderSkinTone == nil {
    badRequest(c, "consider_skin_tone must be a boolean")
    return
  }
  user, err := uh.userService.UpdateConsiderSkinTone(c.Request.Context(), userID, *req.ConsiderSkinTone)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Preference updated",
    "user":    user,
  })
}

func (uh *UserHandler) UpdatePrioritizePreferences(c *gin.Context) {
  var req struct {
    UserID                 string `json:"user_id"`
    PrioritizePreferences  *bool  `json:"prioritize_preferences"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  userID, ok := parseUUIDField(c, "user_id", req.UserID)
  if !ok {
    return
  }
  if req.PrioritizePreferences == nil {
    badRequest(c, "prioritize_preferences must be a boolean")
    return
  }
  user, err := uh.userService.UpdatePrioritizePreferences(c.Request.Context(), userID, *req.PrioritizePreferences)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Preference updated",
    "user":    user,
  })
}
