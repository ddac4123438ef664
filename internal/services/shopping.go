package services

import (
  "bytes"
  "context"
  "encoding/json"
  "regexp"
  "strings"
  "sync"

  "github.com/onlyfrogs/stylesync-backend/internal/apperr"
  "github.com/onlyfrogs/stylesync-backend/internal/logger"
  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

// ExtractedItem is one clothing reference pulled out of a stylist reply.
type ExtractedItem struct {
  Description string `json:"description"`
  ImageURL    string `json:"image_url"`
  Category    string `json:"category"`
}

// OutfitExtraction is the two-array split of a stylist reply. Owned and Other
// are disjoint by construction (origin, not item identity) and are never
// merged downstream.
type OutfitExtraction struct {
  OwnedItems []ExtractedItem `json:"owned_items"`
  OtherItems []ExtractedItem `json:"other_items"`
}

// ItemMatches holds the product lookups for one missing item. A failed lookup
// is recorded per item and never fails the batch.
type ItemMatches struct {
  Item     ExtractedItem   `json:"item"`
  Query    string          `json:"query"`
  Products []types.Product `json:"products"`
  Error    string          `json:"error,omitempty"`
}

type ShopTheLookResult struct {
  OwnedItems []ExtractedItem `json:"ownedItems"`
  Matches    []ItemMatches   `json:"matches"`
}

type ShoppingService interface {
  // ExtractOutfit turns a free-text stylist reply into the structured
  // owned/other split via a second, schema-constrained completion call.
  ExtractOutfit(ctx context.Context, reply string) (*OutfitExtraction, error)
  // ShopTheLook runs ExtractOutfit and then looks up purchasable matches for
  // every item the user does not own yet.
  ShopTheLook(ctx context.Context, user *types.User, reply string) (*ShopTheLookResult, error)
}

type shoppingService struct {
  log           *logger.Logger
  completion    CompletionService
  productSearch ProductSearchService
  refineQueries bool
}

func NewShoppingService(log *logger.Logger, completion CompletionService, productSearch ProductSearchService, refineQueries bool) ShoppingService {
  return &shoppingService{
    log:           log.With("service", "ShoppingService"),
    completion:    completion,
    productSearch: productSearch,
    refineQueries: refineQueries,
  }
}

var (
  // Lines that carry the ownership marker ("Your ...") or look like a
  // markdown category heading are the only ones worth extracting from.
  ownershipLineRe = regexp.MustCompile(`(?i)(^|[-*]\s*|!\[)\s*your\s`)
  headingLineRe   = regexp.MustCompile(`^#{1,6}\s`)
  codeFenceRe     = regexp.MustCompile("(?s)^```(?:json)?\\s*|\\s*```$")
  querySanitizeRe = regexp.MustCompile(`[^a-zA-Z0-9 ]+`)
  spaceCollapseRe = regexp.MustCompile(`\s+`)
)

const extractionPrompt = `You convert stylist replies into JSON. From the lines you are given, produce exactly this JSON object and nothing else:
{"owned_items": [...], "other_items": [...]}
Each array element has the keys "description", "image_url" and "category".
Lines whose item is prefixed with "Your" belong in owned_items; everything else belongs in other_items.
"image_url" is the URL inside a markdown image tag when present, otherwise an empty string.
Return raw JSON only, no markdown fences, no prose.`

func (ss *shoppingService) ExtractOutfit(ctx context.Context, reply string) (*OutfitExtraction, error) {
  if strings.TrimSpace(reply) == "" {
    return nil, apperr.Validation("Reply text is required")
  }

  var candidates []string
  for _, line := range strings.Split(reply, "\n") {
    trimmed := strings.TrimSpace(line)
    if trimmed == "" {
      continue
    }
    if ownershipLineRe.MatchString(trimmed) || headingLineRe.MatchString(trimmed) {
      candidates = append(candidates, trimmed)
    }
  }
  if len(candidates) == 0 {
    return &OutfitExtraction{OwnedItems: []ExtractedItem{}, OtherItems: []ExtractedItem{}}, nil
  }

  raw, err := ss.completion.Complete(ctx, extractionPrompt, nil, strings.Join(candidates, "\n"))
  if err != nil {
    return nil, apperr.Upstream("Extraction call failed", err)
  }
  if raw == "" {
    return nil, apperr.Upstream("No valid response from extraction call", nil)
  }

  cleaned := strings.TrimSpace(codeFenceRe.ReplaceAllString(strings.TrimSpace(raw), ""))
  var extraction OutfitExtraction
  dec := json.NewDecoder(bytes.NewReader([]byte(cleaned)))
  dec.DisallowUnknownFields()
  if err := dec.Decode(&extraction); err != nil {
    // Fail closed: a malformed reply never becomes a silent partial result.
    return nil, apperr.Parse("Failed to parse extraction reply", raw, err)
  }
  if extraction.OwnedItems == nil {
    extraction.OwnedItems = []ExtractedItem{}
  }
  if extraction.OtherItems == nil {
    extraction.OtherItems = []ExtractedItem{}
  }
  return &extraction, nil
}

func (ss *shoppingService) ShopTheLook(ctx context.Context, user *types.User, reply string) (*ShopTheLookResult, error) {
  extraction, err := ss.ExtractOutfit(ctx, reply)
  if err != nil {
    return nil, err
  }

  gender := ""
  if user != nil && user.Gender != nil {
    gender = *user.Gender
  }

  matches := make([]ItemMatches, len(extraction.OtherItems))
  var wg sync.WaitGroup
  for i, item := range extraction.OtherItems {
    query := ss.buildQuery(ctx, gender, item)
    matches[i] = ItemMatches{Item: item, Query: query}
    if query == "" {
      continue
    }
    wg.Add(1)
    go func(i int, query string) {
      defer wg.Done()
      products, serr := ss.productSearch.Search(ctx, query)
      if serr != nil {
        ss.log.Warn("product lookup failed for query", "query", query, "error", serr)
        matches[i].Error = serr.Error()
        return
      }
      matches[i].Products = products
    }(i, query)
  }
  wg.Wait()

  return &ShopTheLookResult{
    OwnedItems: extraction.OwnedItems,
    Matches:    matches,
  }, nil
}

func (ss *shoppingService) buildQuery(ctx context.Context, gender string, item ExtractedItem) string {
  query := sanitizeQuery(gender + " " + item.Category + " " + item.Description)
  if query == "" || !ss.refineQueries {
    return query
  }
  refined, err := ss.completion.Complete(ctx,
    "Rewrite the given clothing search query into at most six keywords a retail site search box would match well. Reply with the keywords only.",
    nil, query)
  if err != nil || strings.TrimSpace(refined) == "" {
    ss.log.Warn("query refinement failed, keeping original query", "query", query, "error", err)
    return query
  }
  return sanitizeQuery(refined)
}

func sanitizeQuery(q string) string {
  q = querySanitizeRe.ReplaceAllString(q, " ")
  q = spaceCollapseRe.ReplaceAllString(q, " ")
  return strings.TrimSpace(q)
}
