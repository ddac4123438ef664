package services

import (
  "context"
  "net/http"
  "net/http/httptest"
  "testing"
)

func newWeatherFixture(t *testing.T, handler http.HandlerFunc) WeatherService {
  t.Helper()
  server := httptest.NewServer(handler)
  t.Cleanup(server.Close)
  t.Setenv("OPENWEATHER_API_KEY", "test-key")
  t.Setenv("OPENWEATHER_API_URL", server.URL)
  svc, err := NewWeatherService(testLogger(t))
  if err != nil {
    t.Fatalf("init weather service: %v", err)
  }
  return svc
}

func TestWeatherLookup(t *testing.T) {
  var gotQuery map[string]string
  svc := newWeatherFixture(t, func(w http.ResponseWriter, r *http.Request) {
    gotQuery = map[string]string{
      "lat":   r.URL.Query().Get("lat"),
      "lon":   r.URL.Query().Get("lon"),
      "units": r.URL.Query().Get("units"),
      "appid": r.URL.Query().Get("appid"),
    }
    w.Header().Set("Content-Type", "application/json")
    _, _ = w.Write([]byte(`{
      "weather": [{"description": "light rain"}],
      "main": {"temp": 25.0},
      "wind": {"speed": 3.5}
    }`))
  })

  weather, err := svc.Lookup(context.Background(), "14.5995", "120.9842")
  if err != nil {
    t.Fatalf("lookup: %v", err)
  }
  if weather.Description != "light rain" || weather.TemperatureC != 25 || weather.WindSpeed != 3.5 {
    t.Fatalf("unexpected weather: %+v", weather)
  }
  if gotQuery["lat"] != "14.5995" || gotQuery["lon"] != "120.9842" {
    t.Fatalf("coordinates not forwarded: %+v", gotQuery)
  }
  if gotQuery["units"] != "metric" {
    t.Fatalf("expected metric units, got %q", gotQuery["units"])
  }
  if gotQuery["appid"] != "test-key" {
    t.Fatalf("expected api key forwarded, got %q", gotQuery["appid"])
  }
}

func TestWeatherLookupMissingCoordinates(t *testing.T) {
  svc := newWeatherFixture(t, func(w http.ResponseWriter, r *http.Request) {
    t.Fatalf("no request should be made without coordinates")
  })

  if _, err := svc.Lookup(context.Background(), "", "120.9842"); err == nil {
    t.Fatalf("expected error for missing latitude")
  }
  if _, err := svc.Lookup(context.Background(), "14.5995", ""); err == nil {
    t.Fatalf("expected error for missing longitude")
  }
}

func TestWeatherLookupUpstreamError(t *testing.T) {
  svc := newWeatherFixture(t, func(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(http.StatusUnauthorized)
    _, _ = w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
  })

  if _, err := svc.Lookup(context.Background(), "14.5995", "120.9842"); err == nil {
    t.Fatalf("expected error on non-2xx response")
  }
}

func TestWeatherServiceRequiresAPIKey(t *testing.T) {
  t.Setenv("OPENWEATHER_API_KEY", "")
  if _, err := NewWeatherService(testLogger(t)); err == nil {
    t.Fatalf("expected init failure without OPENWEATHER_API_KEY")
  }
}
