package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/onlyfrogs/stylesync-backend/internal/services"
)

type ChatHandler struct {
  chatService     services.ChatService
  shoppingService services.ShoppingService
  userService     services.UserService
}

func NewChatHandler(chatService services.ChatService, shoppingService services.ShoppingService, userService services.UserService) *ChatHandler {
  return &ChatHandler{
    chatService:     chatService,
    shoppingService: shoppingService,
    userService:     userService,
  }
}

// CreateSession answers 201 when a session is created and 200 when the user
// already has one; both carry the same session payload.
func (ch *ChatHandler) CreateSession(c *gin.Context) {
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
  session, created, err := ch.chatService.CreateSession(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  status := http.StatusOK
  message := "Chat session already exists"
  if created {
    status = http.StatusCreated
    message = "Chat session created"
  }
  c.JSON(status, gin.H{
    "status":  status,
    "message": message,
    "session": session,
  })
}

func (ch *ChatHandler) PromptStylist(c *gin.Context) {
  var req struct {
    UserID  string `json:"user_id"`
    Message string `json:"message"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  userID, ok := parseUUIDField(c, "user_id", req.UserID)
  if !ok {
    return
  }
  reply, err := ch.chatService.PromptStylist(c.Request.Context(), userID, req.Message)
  if err != nil {
    // A persistence failure after the model replied still carries the reply;
    // surface it so the client does not lose the turn.
    if reply != "" {
      respondErrorWith(c, err, gin.H{"reply": reply})
      return
    }
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Stylist replied",
    "reply":   reply,
  })
}

func (ch *ChatHandler) RetrieveUserSessions(c *gin.Context) {
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
  messages, err := ch.chatService.RetrieveSessionChat(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":   http.StatusOK,
    "message":  "Chat history retrieved",
    "messages": messages,
  })
}

func (ch *ChatHandler) DeleteChatSessionMessages(c *gin.Context) {
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
  if err := ch.chatService.DeleteSessionMessages(c.Request.Context(), userID); err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Chat messages deleted",
  })
}

// ShopTheLook post-processes a stylist reply into owned items plus purchasable
// matches for everything else.
func (ch *ChatHandler) ShopTheLook(c *gin.Context) {
  var req struct {
    UserID string `json:"user_id"`
    Reply  string `json:"reply"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  userID, ok := parseUUIDField(c, "user_id", req.UserID)
  if !ok {
    return
  }
  if req.Reply == "" {
    badRequest(c, "Missing reply")
    return
  }
  user, err := ch.userService.GetByID(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  result, err := ch.shoppingService.ShopTheLook(c.Request.Context(), user, req.Reply)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Shop the look complete",
    "result":  result,
  })
}
