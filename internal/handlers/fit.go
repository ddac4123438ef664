package handlers

import (
  "io"
  "net/http"
  "strings"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/onlyfrogs/stylesync-backend/internal/services"
)

type FitHandler struct {
  fitService    services.FitService
  outfitService services.OutfitService
}

func NewFitHandler(fitService services.FitService, outfitService services.OutfitService) *FitHandler {
  return &FitHandler{
    fitService:    fitService,
    outfitService: outfitService,
  }
}

// CreateFit takes multipart form data: user_id, name, piece_ids (comma
// separated) and an optional thumbnail file.
func (fh *FitHandler) CreateFit(c *gin.Context) {
  userID, ok := parseUUIDField(c, "user_id", c.PostForm("user_id"))
  if !ok {
    return
  }
  name := c.PostForm("name")
  pieceIDs, ok := parsePieceIDs(c, c.PostForm("piece_ids"))
  if !ok {
    return
  }

  var thumbnail []byte
  if file, err := c.FormFile("thumbnail"); err == nil {
    f, err := file.Open()
    if err != nil {
      badRequest(c, "Failed to read thumbnail")
      return
    }
    defer f.Close()
    data, err := io.ReadAll(f)
    if err != nil {
      badRequest(c, "Failed to read thumbnail")
      return
    }
    thumbnail = data
  }

  fit, err := fh.fitService.CreateFit(c.Request.Context(), userID, name, pieceIDs, thumbnail)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{
    "status":  http.StatusCreated,
    "message": "Fit created",
    "fit":     fit,
  })
}

func (fh *FitHandler) MyFits(c *gin.Context) {
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
  fits, err := fh.fitService.GetUserFits(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Fits retrieved",
    "fits":    fits,
  })
}

func (fh *FitHandler) RenameFit(c *gin.Context) {
  var req struct {
    FitID   string `json:"fit_id"`
    NewName string `json:"new_name"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  fitID, ok := parseUUIDField(c, "fit_id", req.FitID)
  if !ok {
    return
  }
  fit, err := fh.fitService.RenameFit(c.Request.Context(), fitID, req.NewName)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Fit renamed",
    "fit":     fit,
  })
}

func (fh *FitHandler) DeleteFit(c *gin.Context) {
  var req struct {
    FitID string `json:"fit_id"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  fitID, ok := parseUUIDField(c, "fit_id", req.FitID)
  if !ok {
    return
  }
  if err := fh.fitService.DeleteFit(c.Request.Context(), fitID); err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Fit deleted",
  })
}

// CompleteOutfit asks the stylist model which closet items round out the
// user's current selection.
func (fh *FitHandler) CompleteOutfit(c *gin.Context) {
  var req struct {
    UserID      string   `json:"user_id"`
    SelectedIDs []string `json:"selected_ids"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  userID, ok := parseUUIDField(c, "user_id", req.UserID)
  if !ok {
    return
  }
  selected := make([]uuid.UUID, 0, len(req.SelectedIDs))
  for _, raw := range req.SelectedIDs {
    id, err := uuid.Parse(raw)
    if err != nil {
      badRequest(c, "Invalid selected_ids UUID: "+raw)
      return
    }
    selected = append(selected, id)
  }
  suggested, err := fh.outfitService.CompleteOutfit(c.Request.Context(), userID, selected)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":       http.StatusOK,
    "message":      "Outfit completed",
    "suggestedIDs": suggested,
  })
}

func parsePieceIDs(c *gin.Context, raw string) ([]uuid.UUID, bool) {
  if raw == "" {
    badRequest(c, "Missing piece_ids")
    return nil, false
  }
  parts := strings.Split(raw, ",")
  ids := make([]uuid.UUID, 0, len(parts))
  for _, part := range parts {
    part = strings.TrimSpace(part)
    if part == "" {
      continue
    }
    id, err := uuid.Parse(part)
    if err != nil {
      badRequest(c, "Invalid piece_ids UUID: "+part)
      return nil, false
    }
    ids = append(ids, id)
  }
  return ids, true
}
