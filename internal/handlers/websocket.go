package handlers

import (
  "context"
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/gorilla/websocket"

  "github.com/onlyfrogs/stylesync-backend/internal/logger"
  "github.com/onlyfrogs/stylesync-backend/internal/socket"
)

var upgrader = websocket.Upgrader{
  CheckOrigin: func(r *http.Request) bool {
    return true
  },
}

// WsHandler upgrades the connection and subscribes the client to its user
// channel. The user id arrives as a query parameter since the socket opens
// before any request body exists.
func WsHandler(hub *socket.Hub, log *logger.Logger) gin.HandlerFunc {
  return func(c *gin.Context) {
    rawID := c.Query("user_id")
    if rawID == "" {
      c.JSON(http.StatusBadRequest, gin.H{
        "status":  http.StatusBadRequest,
        "message": "Missing user_id",
      })
      return
    }
    userID, err := uuid.Parse(rawID)
    if err != nil {
      c.JSON(http.StatusBadRequest, gin.H{
        "status":  http.StatusBadRequest,
        "message": "Invalid user_id UUID",
      })
      return
    }

    conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
    if err != nil {
      log.Warn("Failed to upgrade to websocket", "error", err)
      return
    }

    // The socket outlives the HTTP request context.
    ctx, cancel := context.WithCancel(context.Background())
    client := socket.NewClient(conn, hub, userID, cancel, log)

    hub.Subscribe(client, []string{"user:" + userID.String()})

    go client.ReadLoop(ctx)
    go client.WriteLoop(ctx)
  }
}
