package services

import (
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"
  "net/url"
  "os"
  "time"

  "github.com/onlyfrogs/stylesync-backend/internal/logger"
)

// Weather is the slice of current conditions the stylist prompt cares about.
type Weather struct {
  Description  string
  TemperatureC float64
  WindSpeed    float64
}

// WeatherService is an enrichment, not a dependency: callers substitute the
// "unknown ..." sentinels on any failure instead of aborting.
type WeatherService interface {
  Lookup(ctx context.Context, lat, lon string) (Weather, error)
}

type weatherService struct {
  log     *logger.Logger
  client  *http.Client
  baseURL string
  apiKey  string
}

func NewWeatherService(log *logger.Logger) (WeatherService, error) {
  serviceLog := log.With("service", "WeatherService")
  apiKey := os.Getenv("OPENWEATHER_API_KEY")
  if apiKey == "" {
    return nil, fmt.Errorf("missing OPENWEATHER_API_KEY environment variable")
  }
  baseURL := os.Getenv("OPENWEATHER_API_URL")
  if baseURL == "" {
    baseURL = "https://api.openweathermap.org"
  }
  httpClient := &http.Client{
    Timeout: 10 * time.Second,
  }
  return &weatherService{
    log:     serviceLog,
    client:  httpClient,
    baseURL: baseURL,
    apiKey:  apiKey,
  }, nil
}

type openWeatherResponse struct {
  Weather []struct {
    Description string `json:"description"`
  } `json:"weather"`
  Main struct {
    Temp float64 `json:"temp"`
  } `json:"main"`
  Wind struct {
    Speed float64 `json:"speed"`
  } `json:"wind"`
}

func (ws *weatherService) Lookup(ctx context.Context, lat, lon string) (Weather, error) {
  var out Weather
  if lat == "" || lon == "" {
    return out, fmt.Errorf("missing coordinates")
  }
  q := url.Values{}
  q.Set("lat", lat)
  q.Set("lon", lon)
  q.Set("appid", ws.apiKey)
  q.Set("units", "metric")
  reqURL := fmt.Sprintf("%s/data/2.5/weather?%s", ws.baseURL, q.Encode())
  req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
  if err != nil {
    return out, err
  }
  resp, err := ws.client.Do(req)
  if err != nil {
    ws.log.Warn("failed to call openweather", "error", err)
    return out, err
  }
  defer resp.Body.Close()

  if resp.StatusCode < 200 || resp.StatusCode > 299 {
    bodyBytes, _ := io.ReadAll(resp.Body)
    ws.log.Warn("openweather responded with non-2xx", "statusCode", resp.StatusCode, "body", string(bodyBytes))
    return out, fmt.Errorf("openweather HTTP %d", resp.StatusCode)
  }
  var raw openWeatherResponse
  if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
    ws.log.Warn("failed to decode openweather response", "error", err)
    return out, err
  }
  if len(raw.Weather) > 0 {
    out.Description = raw.Weather[0].Description
  }
  out.TemperatureC = raw.Main.Temp
  out.WindSpeed = raw.Wind.Speed
  return out, nil
}
