package services

import (
  "context"
  "fmt"
  "testing"

  "github.com/google/uuid"

  "github.com/onlyfrogs/stylesync-backend/internal/apperr"
  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

func newOutfitFixture(t *testing.T, completion *fakeCompletion) (*fakeUserRepo, *fakeClothingRepo, OutfitService) {
  t.Helper()
  userRepo := newFakeUserRepo()
  clothingRepo := newFakeClothingRepo()
  svc := NewOutfitService(testLogger(t), userRepo, clothingRepo, completion)
  return userRepo, clothingRepo, svc
}

func seedCloset(userRepo *fakeUserRepo, clothingRepo *fakeClothingRepo, count int) (*types.User, []uuid.UUID) {
  user := &types.User{ID: uuid.New(), FirstName: "Dana", LastName: "Reyes"}
  userRepo.users[user.ID] = user
  ids := make([]uuid.UUID, 0, count)
  for i := 0; i < count; i++ {
    item := &types.ClothingItem{ID: uuid.New(), UserID: user.ID, Name: fmt.Sprintf("Item %d", i)}
    clothingRepo.items[item.ID] = item
    ids = append(ids, item.ID)
  }
  return user, ids
}

func TestCompleteOutfitExtractsArrayAndFiltersSelected(t *testing.T) {
  completion := &fakeCompletion{}
  userRepo, clothingRepo, svc := newOutfitFixture(t, completion)
  user, ids := seedCloset(userRepo, clothingRepo, 3)

  selected := ids[0]
  completion.reply = fmt.Sprintf(
    "Here is your outfit:\n[\"%s\", \"%s\", \"%s\"]\nEnjoy!",
    ids[0], ids[1], ids[2],
  )

  suggestion, err := svc.CompleteOutfit(context.Background(), user.ID, []uuid.UUID{selected})
  if err != nil {
    t.Fatalf("complete outfit: %v", err)
  }
  if len(suggestion) != 2 {
    t.Fatalf("expected 2 suggested ids after filtering, got %d", len(suggestion))
  }
  for _, id := range suggestion {
    if id == selected {
      t.Fatalf("already-selected id %s must be filtered out", id)
    }
  }
}

func TestCompleteOutfitEmptyCloset(t *testing.T) {
  completion := &fakeCompletion{}
  userRepo, _, svc := newOutfitFixture(t, completion)
  user := &types.User{ID: uuid.New()}
  userRepo.users[user.ID] = user

  _, err := svc.CompleteOutfit(context.Background(), user.ID, nil)
  if apperr.StatusOf(err) != 404 {
    t.Fatalf("expected 404 for empty closet, got %v", err)
  }
  if len(completion.calls) != 0 {
    t.Fatalf("empty closet must not reach the model")
  }
}

func TestCompleteOutfitNotEnoughClothes(t *testing.T) {
  completion := &fakeCompletion{reply: "Not enough clothes to complete an outfit."}
  userRepo, clothingRepo, svc := newOutfitFixture(t, completion)
  user, _ := seedCloset(userRepo, clothingRepo, 1)

  _, err := svc.CompleteOutfit(context.Background(), user.ID, nil)
  if apperr.StatusOf(err) != 400 {
    t.Fatalf("expected 400 for not-enough-clothes reply, got %v", err)
  }
}

func TestCompleteOutfitNonIDValues(t *testing.T) {
  completion := &fakeCompletion{reply: `["not-a-uuid", "also-bad"]`}
  userRepo, clothingRepo, svc := newOutfitFixture(t, completion)
  user, _ := seedCloset(userRepo, clothingRepo, 2)

  _, err := svc.CompleteOutfit(context.Background(), user.ID, nil)
  if apperr.StatusOf(err) != 500 {
    t.Fatalf("expected 500 for non-id reply, got %v", err)
  }
}

func TestCompleteOutfitMissingArray(t *testing.T) {
  completion := &fakeCompletion{reply: "I would pick the hoodie and the jeans."}
  userRepo, clothingRepo, svc := newOutfitFixture(t, completion)
  user, _ := seedCloset(userRepo, clothingRepo, 2)

  _, err := svc.CompleteOutfit(context.Background(), user.ID, nil)
  if apperr.StatusOf(err) != 500 {
    t.Fatalf("expected 500 when no array is present, got %v", err)
  }
}

func TestCompleteOutfitUnknownUser(t *testing.T) {
  completion := &fakeCompletion{}
  _, _, svc := newOutfitFixture(t, completion)

  _, err := svc.CompleteOutfit(context.Background(), uuid.New(), nil)
  if apperr.StatusOf(err) != 404 {
    t.Fatalf("expected 404 for unknown user, got %v", err)
  }
}
