package services

import (
  "context"
  "encoding/json"
  "errors"
  "regexp"
  "strings"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/onlyfrogs/stylesync-backend/internal/apperr"
  "github.com/onlyfrogs/stylesync-backend/internal/logger"
  "github.com/onlyfrogs/stylesync-backend/internal/repos"
  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

// OutfitService asks the model to complete a partially-selected outfit with
// complementary pieces from the user's own closet.
type OutfitService interface {
  CompleteOutfit(ctx context.Context, userID uuid.UUID, selectedIDs []uuid.UUID) ([]uuid.UUID, error)
}

type outfitService struct {
  log          *logger.Logger
  userRepo     repos.UserRepo
  clothingRepo repos.ClothingRepo
  completion   CompletionService
}

func NewOutfitService(log *logger.Logger, userRepo repos.UserRepo, clothingRepo repos.ClothingRepo, completion CompletionService) OutfitService {
  return &outfitService{
    log:          log.With("service", "OutfitService"),
    userRepo:     userRepo,
    clothingRepo: clothingRepo,
    completion:   completion,
  }
}

var jsonArrayRe = regexp.MustCompile(`\[[\s\S]*?\]`)

const notEnoughClothes = "Not enough clothes"

func (ofs *outfitService) CompleteOutfit(ctx context.Context, userID uuid.UUID, selectedIDs []uuid.UUID) ([]uuid.UUID, error) {
  if _, err := ofs.userRepo.GetByID(ctx, nil, userID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("User not found")
    }
    return nil, apperr.Internal("Failed to load user", err)
  }

  closet, err := ofs.clothingRepo.GetByUser(ctx, nil, userID)
  if err != nil {
    return nil, apperr.Internal("Failed to load closet", err)
  }
  if len(closet) == 0 {
    return nil, apperr.NotFound("No clothes found in user closet")
  }

  selected := make(map[uuid.UUID]bool, len(selectedIDs))
  for _, id := range selectedIDs {
    selected[id] = true
  }
  var selectedClothes []*types.ClothingItem
  var available []*types.ClothingItem
  for _, item := range closet {
    if selected[item.ID] {
      selectedClothes = append(selectedClothes, item)
    } else {
      available = append(available, item)
    }
  }

  prompt := buildCompleteOutfitPrompt(selectedClothes, available)
  reply, err := ofs.completion.Complete(ctx, "", nil, prompt)
  if err != nil {
    return nil, apperr.Upstream("Error connecting to the stylist model", err)
  }
  if reply == "" {
    return nil, apperr.Upstream("No valid response from the stylist model", nil)
  }
  if strings.Contains(reply, notEnoughClothes) {
    return nil, apperr.Validation("Not enough clothes to complete an outfit")
  }

  match := jsonArrayRe.FindString(reply)
  if match == "" {
    return nil, apperr.Parse("No valid JSON array found in model reply", reply, errors.New("missing array"))
  }
  var rawIDs []string
  if err := json.Unmarshal([]byte(match), &rawIDs); err != nil {
    return nil, apperr.Parse("Failed to parse model reply", reply, err)
  }

  var suggestion []uuid.UUID
  for _, raw := range rawIDs {
    id, perr := uuid.Parse(strings.TrimSpace(raw))
    if perr != nil {
      return nil, apperr.Parse("Model reply contained a non-id value", reply, perr)
    }
    if selected[id] {
      continue
    }
    suggestion = append(suggestion, id)
  }
  return suggestion, nil
}

func buildCompleteOutfitPrompt(selected []*types.ClothingItem, available []*types.ClothingItem) string {
  var b strings.Builder
  b.WriteString("You are a fashion stylist. The user has selected the following clothing items:\n")
  if len(selected) > 0 {
    writeItemsJSON(&b, selected)
  } else {
    b.WriteString("None\n")
  }
  b.WriteString("The user's closet contains the following clothing items:\n")
  writeItemsJSON(&b, available)
  b.WriteString("Suggest a complete outfit by selecting items from the user's closet. ")
  b.WriteString("If there are not enough items to form a complete outfit, respond with an error message stating \"Not enough clothes to complete an outfit.\" ")
  b.WriteString("Otherwise, return only a JSON array of clothing IDs representing the suggested outfit.\n")
  return b.String()
}

func writeItemsJSON(b *strings.Builder, items []*types.ClothingItem) {
  type promptItem struct {
    ID       uuid.UUID `json:"id"`
    Name     string    `json:"name"`
    Category string    `json:"category"`
    Color    string    `json:"color"`
    Brand    string    `json:"brand"`
  }
  out := make([]promptItem, 0, len(items))
  for _, item := range items {
    out = append(out, promptItem{
      ID:       item.ID,
      Name:     item.Name,
      Category: item.Category,
      Color:    item.Color,
      Brand:    item.Brand,
    })
  }
  raw, err := json.MarshalIndent(out, "", "  ")
  if err != nil {
    b.WriteString("[]\n")
    return
  }
  b.Write(raw)
  b.WriteString("\n")
}
