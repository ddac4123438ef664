package services

import (
  "strings"
  "testing"

  "gorm.io/datatypes"

  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int { return &i }

func fullProfileUser() *types.User {
  return &types.User{
    FirstName:              "Dana",
    LastName:               "Reyes",
    LocationName:           strPtr("Manila"),
    Height:                 floatPtr(170),
    Weight:                 floatPtr(62),
    BodyType:               strPtr("hourglass"),
    Season:                 strPtr("summer"),
    BudgetMin:              intPtr(500),
    BudgetMax:              intPtr(3000),
    PrioritizePreferences:  true,
    ConsiderSkinTone:       true,
    SkinToneClassification: strPtr("warm"),
    SkinToneComplements:    datatypes.NewJSONSlice([]string{"olive", "cream"}),
    StylePreferences:       datatypes.NewJSONSlice([]string{"streetwear"}),
    FavoriteColors:         datatypes.NewJSONSlice([]string{"blue", "black"}),
    PreferredBrands:        datatypes.NewJSONSlice([]string{"Uniqlo"}),
  }
}

func TestBuildStylistPromptDeterministic(t *testing.T) {
  user := fullProfileUser()
  weather := &Weather{Description: "light rain", TemperatureC: 25, WindSpeed: 3.5}
  clothes := []*types.ClothingItem{
    {Name: "Blue Hoodie", Category: "top", Color: "blue", Brand: "Uniqlo"},
  }
  first := BuildStylistPrompt(user, weather, clothes)
  second := BuildStylistPrompt(user, weather, clothes)
  if first != second {
    t.Fatalf("expected identical prompts for identical inputs")
  }
}

func TestBuildStylistPromptWeatherSentinels(t *testing.T) {
  user := &types.User{FirstName: "Dana", LastName: "Reyes"}
  prompt := BuildStylistPrompt(user, nil, nil)

  for _, sentinel := range []string{"unknown weather", "unknown temperature", "unknown wind speed"} {
    if !strings.Contains(prompt, sentinel) {
      t.Fatalf("expected prompt to contain %q", sentinel)
    }
  }
  if !strings.Contains(prompt, "The user has no clothing items in their closet.") {
    t.Fatalf("expected empty-closet branch in prompt")
  }
}

func TestBuildStylistPromptFullProfileScenario(t *testing.T) {
  user := fullProfileUser()
  weather := &Weather{Description: "clear sky", TemperatureC: 25, WindSpeed: 2}
  clothes := []*types.ClothingItem{
    {
      Name:      "Blue Hoodie",
      Category:  "top",
      Color:     "blue",
      Brand:     "Uniqlo",
      Material:  "cotton",
      Pattern:   "solid",
      Occasions: datatypes.NewJSONSlice([]string{"casual"}),
      Seasons:   datatypes.NewJSONSlice([]string{"winter"}),
      ImageURL:  "https://cdn.example.com/hoodie.png",
    },
  }
  prompt := BuildStylistPrompt(user, weather, clothes)

  if !strings.Contains(prompt, "Blue Hoodie") {
    t.Fatalf("expected prompt to mention the closet item")
  }
  if !strings.Contains(prompt, "25") {
    t.Fatalf("expected prompt to carry the temperature value")
  }
  if strings.Contains(prompt, "unknown") {
    t.Fatalf("fully-populated profile should not produce any unknown field, got:\n%s", prompt)
  }
  if !strings.Contains(prompt, OwnershipMarker+"Blue Hoodie") {
    t.Fatalf("expected ownership marker instruction with item example")
  }
}

func TestBuildStylistPromptPreferenceGates(t *testing.T) {
  user := fullProfileUser()
  user.PrioritizePreferences = false
  user.ConsiderSkinTone = false
  prompt := BuildStylistPrompt(user, nil, nil)

  if strings.Contains(prompt, "Style preferences:") {
    t.Fatalf("preference block must be gated off when prioritize_preferences is false")
  }
  if strings.Contains(prompt, "Skin Tone:") {
    t.Fatalf("skin tone block must be gated off when consider_skin_tone is false")
  }
}

func TestFormatFloatDropsTrailingZeros(t *testing.T) {
  if got := formatFloat(25); got != "25" {
    t.Fatalf("expected 25, got %q", got)
  }
  if got := formatFloat(3.5); got != "3.5" {
    t.Fatalf("expected 3.5, got %q", got)
  }
}
