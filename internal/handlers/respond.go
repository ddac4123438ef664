package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/onlyfrogs/stylesync-backend/internal/apperr"
)

// respondError mirrors the service error into the {status, message} envelope.
// The wrapped cause (raw model replies included) rides along under "error"
// so upstream and parse failures stay diagnosable from the response alone.
func respondError(c *gin.Context, err error) {
  respondErrorWith(c, err, nil)
}

func respondErrorWith(c *gin.Context, err error, extra gin.H) {
  status := apperr.StatusOf(err)
  body := gin.H{
    "status":  status,
    "message": apperr.MessageOf(err),
  }
  if cause := apperr.CauseOf(err); cause != "" {
    body["error"] = cause
  }
  for k, v := range extra {
    body[k] = v
  }
  c.JSON(status, body)
}

// parseUUIDField parses a body-provided id, answering 400 itself on failure.
// The boolean reports whether the caller can proceed.
func parseUUIDField(c *gin.Context, field, value string) (uuid.UUID, bool) {
  if value == "" {
    c.JSON(http.StatusBadRequest, gin.H{
      "status":  http.StatusBadRequest,
      "message": "Missing " + field,
    })
    return uuid.Nil, false
  }
  id, err := uuid.Parse(value)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{
      "status":  http.StatusBadRequest,
      "message": "Invalid " + field + " UUID",
    })
    return uuid.Nil, false
  }
  return id, true
}

func badRequest(c *gin.Context, msg string) {
  c.JSON(http.StatusBadRequest, gin.H{
    "status":  http.StatusBadRequest,
    "message": msg,
  })
}
