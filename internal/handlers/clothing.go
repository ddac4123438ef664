package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "gorm.io/datatypes"

  "github.com/onlyfrogs/stylesync-backend/internal/services"
  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type ClothingHandler struct {
  clothingService services.ClothingService
}

func NewClothingHandler(clothingService services.ClothingService) *ClothingHandler {
  return &ClothingHandler{clothingService: clothingService}
}

func (clh *ClothingHandler) CreateClothing(c *gin.Context) {
  var req struct {
    ClosetID string   `json:"closet_id"`
    ImageURL string   `json:"image_url"`
    Name     string   `json:"name"`
    Category string   `json:"category"`
    Subtype  string   `json:"subtype"`
    Material string   `json:"material"`
    Pattern  string   `json:"pattern"`
    Color    string   `json:"color"`
    Brand    string   `json:"brand"`
    Occasions []string `json:"occasions"`
    Seasons   []string `json:"seasons"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  closetID, ok := parseUUIDField(c, "closet_id", req.ClosetID)
  if !ok {
    return
  }
  item, err := clh.clothingService.CreateClothingItem(c.Request.Context(), &types.ClothingItem{
    ClosetID:  closetID,
    ImageURL:  req.ImageURL,
    Name:      req.Name,
    Category:  req.Category,
    Subtype:   req.Subtype,
    Material:  req.Material,
    Pattern:   req.Pattern,
    Color:     req.Color,
    Brand:     req.Brand,
    Occasions: datatypes.NewJSONSlice(req.Occasions),
    Seasons:   datatypes.NewJSONSlice(req.Seasons),
  })
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{
    "status":  http.StatusCreated,
    "message": "Clothing item created",
    "item":    item,
  })
}

func (clh *ClothingHandler) UpdateClothing(c *gin.Context) {
  var req struct {
    ItemID string                 `json:"item_id"`
    Fields map[string]interface{} `json:"fields"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  itemID, ok := parseUUIDField(c, "item_id", req.ItemID)
  if !ok {
    return
  }
  item, err := clh.clothingService.UpdateClothingItem(c.Request.Context(), itemID, req.Fields)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Clothing item updated",
    "item":    item,
  })
}

func (clh *ClothingHandler) DeleteClothing(c *gin.Context) {
  var req struct {
    ItemID string `json:"item_id"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  itemID, ok := parseUUIDField(c, "item_id", req.ItemID)
  if !ok {
    return
  }
  if err := clh.clothingService.DeleteClothingItem(c.Request.Context(), itemID); err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Clothing item deleted",
  })
}

func (clh *ClothingHandler) ClosetClothes(c *gin.Context) {
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
  items, err := clh.clothingService.GetClosetClothes(c.Request.Context(), closetID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Closet clothes retrieved",
    "items":   items,
  })
}

func (clh *ClothingHandler) MarkWorn(c *gin.Context) {
  var req struct {
    ItemID string `json:"item_id"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    badRequest(c, "Invalid request body")
    return
  }
  itemID, ok := parseUUIDField(c, "item_id", req.ItemID)
  if !ok {
    return
  }
  item, err := clh.clothingService.MarkWorn(c.Request.Context(), itemID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "status":  http.StatusOK,
    "message": "Clothing item marked worn",
    "item":    item,
  })
}
