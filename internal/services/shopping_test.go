package services

import (
  "context"
  "errors"
  "testing"

  "github.com/onlyfrogs/stylesync-backend/internal/apperr"
  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

const sampleReply = `# Casual Day Out
- ![Your Blue Hoodie](https://cdn.example.com/hoodie.png) keeps you warm
- Your White Sneakers go with everything
- A pair of black slim jeans
- A simple silver watch`

const extractionJSON = `{
  "owned_items": [
    {"description": "Blue Hoodie", "image_url": "https://cdn.example.com/hoodie.png", "category": "top"},
    {"description": "White Sneakers", "image_url": "", "category": "shoes"}
  ],
  "other_items": [
    {"description": "black slim jeans", "image_url": "", "category": "bottoms"},
    {"description": "simple silver watch", "image_url": "", "category": "accessory"}
  ]
}`

func TestExtractOutfitPartitionsOwnedAndOther(t *testing.T) {
  completion := &fakeCompletion{reply: extractionJSON}
  svc := NewShoppingService(testLogger(t), completion, &fakeProductSearch{}, false)

  extraction, err := svc.ExtractOutfit(context.Background(), sampleReply)
  if err != nil {
    t.Fatalf("extract: %v", err)
  }
  if len(extraction.OwnedItems) != 2 {
    t.Fatalf("expected 2 owned items, got %d", len(extraction.OwnedItems))
  }
  if len(extraction.OtherItems) != 2 {
    t.Fatalf("expected 2 other items, got %d", len(extraction.OtherItems))
  }
  if extraction.OwnedItems[0].ImageURL != "https://cdn.example.com/hoodie.png" {
    t.Fatalf("expected image url preserved, got %q", extraction.OwnedItems[0].ImageURL)
  }
}

func TestExtractOutfitStripsCodeFence(t *testing.T) {
  completion := &fakeCompletion{reply: "```json\n" + extractionJSON + "\n```"}
  svc := NewShoppingService(testLogger(t), completion, &fakeProductSearch{}, false)

  extraction, err := svc.ExtractOutfit(context.Background(), sampleReply)
  if err != nil {
    t.Fatalf("fenced reply should still parse: %v", err)
  }
  if len(extraction.OwnedItems) != 2 || len(extraction.OtherItems) != 2 {
    t.Fatalf("unexpected partition sizes: %d/%d", len(extraction.OwnedItems), len(extraction.OtherItems))
  }
}

func TestExtractOutfitMalformedJSONFailsClosed(t *testing.T) {
  cases := map[string]string{
    "prose":         "Sure! Here are the items you need.",
    "unknown field": `{"owned_items": [], "other_items": [], "extra": true}`,
    "truncated":     `{"owned_items": [{"description": "jeans"`,
  }
  for name, reply := range cases {
    completion := &fakeCompletion{reply: reply}
    svc := NewShoppingService(testLogger(t), completion, &fakeProductSearch{}, false)
    _, err := svc.ExtractOutfit(context.Background(), sampleReply)
    if err == nil {
      t.Fatalf("%s: expected parse failure", name)
    }
    if apperr.StatusOf(err) != 500 {
      t.Fatalf("%s: expected 500, got %d", name, apperr.StatusOf(err))
    }
  }
}

func TestExtractOutfitNoMarkedLines(t *testing.T) {
  completion := &fakeCompletion{err: errors.New("must not be called")}
  svc := NewShoppingService(testLogger(t), completion, &fakeProductSearch{}, false)

  extraction, err := svc.ExtractOutfit(context.Background(), "just some prose with no items at all")
  if err != nil {
    t.Fatalf("extract: %v", err)
  }
  if len(extraction.OwnedItems) != 0 || len(extraction.OtherItems) != 0 {
    t.Fatalf("expected empty extraction, got %d/%d", len(extraction.OwnedItems), len(extraction.OtherItems))
  }
  if len(completion.calls) != 0 {
    t.Fatalf("no completion call should happen without candidate lines")
  }
}

func TestShopTheLookLooksUpOnlyMissingItems(t *testing.T) {
  completion := &fakeCompletion{reply: extractionJSON}
  search := &fakeProductSearch{
    results: map[string][]types.Product{
      "bottoms black slim jeans": {{Name: "Slim Jeans", Price: "P1299", Source: "zalora"}},
    },
  }
  svc := NewShoppingService(testLogger(t), completion, search, false)

  result, err := svc.ShopTheLook(context.Background(), &types.User{}, sampleReply)
  if err != nil {
    t.Fatalf("shop the look: %v", err)
  }
  if len(result.OwnedItems) != 2 {
    t.Fatalf("owned items must pass through untouched, got %d", len(result.OwnedItems))
  }
  if len(result.Matches) != 2 {
    t.Fatalf("expected one match slot per missing item, got %d", len(result.Matches))
  }
  if len(search.queries) != 2 {
    t.Fatalf("expected 2 product lookups, got %d", len(search.queries))
  }
  if len(result.Matches[0].Products) != 1 || result.Matches[0].Products[0].Name != "Slim Jeans" {
    t.Fatalf("expected jeans match in slot 0, got %+v", result.Matches[0])
  }
}

func TestShopTheLookIsolatesPerItemFailures(t *testing.T) {
  completion := &fakeCompletion{reply: extractionJSON}
  search := &fakeProductSearch{
    results: map[string][]types.Product{
      "accessory simple silver watch": {{Name: "Silver Watch", Price: "P899", Source: "penshoppe"}},
    },
    errs: map[string]error{
      "bottoms black slim jeans": errors.New("site unreachable"),
    },
  }
  svc := NewShoppingService(testLogger(t), completion, search, false)

  result, err := svc.ShopTheLook(context.Background(), &types.User{}, sampleReply)
  if err != nil {
    t.Fatalf("one failed lookup must not fail the batch: %v", err)
  }
  if result.Matches[0].Error == "" {
    t.Fatalf("expected per-item error recorded for jeans slot")
  }
  if len(result.Matches[1].Products) != 1 {
    t.Fatalf("expected watch lookup to succeed despite jeans failure")
  }
}

func TestShopTheLookIncludesGenderInQuery(t *testing.T) {
  completion := &fakeCompletion{reply: extractionJSON}
  search := &fakeProductSearch{}
  svc := NewShoppingService(testLogger(t), completion, search, false)

  gender := "women"
  _, err := svc.ShopTheLook(context.Background(), &types.User{Gender: &gender}, sampleReply)
  if err != nil {
    t.Fatalf("shop the look: %v", err)
  }
  for _, q := range search.queries {
    if len(q) < len("women") || q[:len("women")] != "women" {
      t.Fatalf("expected gender prefix in query, got %q", q)
    }
  }
}

func TestSanitizeQuery(t *testing.T) {
  got := sanitizeQuery("  black  slim-fit jeans! (W32) ")
  if got != "black slim fit jeans W32" {
    t.Fatalf("unexpected sanitized query: %q", got)
  }
}
