package services

import (
  "strconv"
  "strings"

  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

// OwnershipMarker is the prefix the model is told to put in front of closet
// items in its reply. The shopping post-processor keys off this exact string
// to split owned items from to-shop-for items.
const OwnershipMarker = "Your "

const (
  unknownWeather     = "unknown weather"
  unknownTemperature = "unknown temperature"
  unknownWindSpeed   = "unknown wind speed"
)

// BuildStylistPrompt assembles the system instruction for the stylist flow.
// It is pure: no I/O, and identical inputs always yield byte-identical text.
// Missing profile fields degrade to the literal "unknown"; a nil weather
// degrades to the three sentinel strings.
func BuildStylistPrompt(user *types.User, weather *Weather, clothes []*types.ClothingItem) string {
  weatherDesc := unknownWeather
  temperature := unknownTemperature
  windSpeed := unknownWindSpeed
  if weather != nil {
    weatherDesc = weather.Description
    temperature = formatFloat(weather.TemperatureC)
    windSpeed = formatFloat(weather.WindSpeed)
  }
  weatherLine := "Weather: " + weatherDesc + ", Temperature: " + temperature + "°C, Wind Speed: " + windSpeed + " m/s"

  var b strings.Builder
  b.WriteString("You are a virtual stylist assistant named Ali.\n")
  b.WriteString("Only answer questions about fashion, clothing and styling. If the user asks about anything else, politely decline and steer the conversation back to their wardrobe.\n")
  b.WriteString("Always prioritize and suggest clothes from the user's closet before considering any other items. Only suggest items outside their closet if essential items are missing.\n")
  b.WriteString("- User Details: " + user.FirstName + " " + user.LastName + "\n")
  b.WriteString("- Location: " + orUnknown(user.LocationName) + "\n")
  b.WriteString("- Current " + weatherLine + "\n")
  b.WriteString("- Height: " + orUnknownFloat(user.Height) + " cm, Weight: " + orUnknownFloat(user.Weight) + " kg\n")
  b.WriteString("- Body type: " + orUnknown(user.BodyType) + "\n")
  b.WriteString("- Season: " + orUnknown(user.Season) + "\n")
  b.WriteString("- Budget: " + orUnknownInt(user.BudgetMin) + " - " + orUnknownInt(user.BudgetMax) + "\n")

  if user.PrioritizePreferences {
    b.WriteString("The user wants their personal taste weighted heavily. Lean on these when picking or suggesting items:\n")
    b.WriteString("- Style preferences: " + joinOrUnknown(user.StylePreferences) + "\n")
    b.WriteString("- Favorite colors: " + joinOrUnknown(user.FavoriteColors) + "\n")
    b.WriteString("- Preferred brands: " + joinOrUnknown(user.PreferredBrands) + "\n")
  }
  if user.ConsiderSkinTone {
    b.WriteString("Take the user's skin tone into account when recommending colors:\n")
    b.WriteString("- Skin Tone: " + orUnknown(user.SkinToneClassification) + "\n")
    b.WriteString("- Clothing Colors That Complement: " + joinOrUnknown(user.SkinToneComplements) + "\n")
  }

  if len(clothes) > 0 {
    b.WriteString("The user has " + strconv.Itoa(len(clothes)) + " clothing item(s) in their closet:\n")
    for _, item := range clothes {
      b.WriteString("- " + item.Name + ":\n")
      b.WriteString("  - Name: " + item.Name + "\n")
      b.WriteString("  - Brand: " + item.Brand + "\n")
      b.WriteString("  - Category: " + item.Category + "\n")
      b.WriteString("  - Color: " + item.Color + "\n")
      b.WriteString("  - Occasion: " + strings.Join(item.Occasions, ", ") + "\n")
      b.WriteString("  - Pattern: " + item.Pattern + "\n")
      b.WriteString("  - Season: " + strings.Join(item.Seasons, ", ") + "\n")
      b.WriteString("  - Material: " + item.Material + "\n")
      if item.ImageURL != "" {
        b.WriteString("  - Image URL: " + item.ImageURL + "\n")
      } else {
        b.WriteString("  - Image URL: N/A\n")
      }
    }
    b.WriteString("Suggest an outfit using their closet items, and only suggest generic options for missing essential items, considering the weather: " + weatherLine + ".\n")
    b.WriteString("Whenever you mention an item that comes from the user's closet, prefix its name with \"" + OwnershipMarker + "\" (for example \"" + OwnershipMarker + "Blue Hoodie\") so closet items are distinguishable from generic suggestions.\n")
  } else {
    b.WriteString("The user has no clothing items in their closet.\n")
    b.WriteString("Suggest a complete outfit based on the current weather conditions: " + weatherLine + ".\n")
  }

  b.WriteString("Format the response in markdown: a heading per outfit section and a bullet list per item.\n")
  b.WriteString("Render closet items with their image as ![item-name](image-url). Do not attach images to generic items that are not from the closet.\n")
  return b.String()
}

func formatFloat(f float64) string {
  return strconv.FormatFloat(f, 'f', -1, 64)
}

func orUnknown(s *string) string {
  if s == nil || *s == "" {
    return "unknown"
  }
  return *s
}

func orUnknownFloat(f *float64) string {
  if f == nil {
    return "unknown"
  }
  return formatFloat(*f)
}

func orUnknownInt(i *int) string {
  if i == nil {
    return "unknown"
  }
  return strconv.Itoa(*i)
}

func joinOrUnknown(items []string) string {
  if len(items) == 0 {
    return "unknown"
  }
  return strings.Join(items, ", ")
}
