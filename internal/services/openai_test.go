package services

import (
  "context"
  "encoding/json"
  "net/http"
  "net/http/httptest"
  "testing"
)

func newCompletionFixture(t *testing.T, handler http.HandlerFunc) CompletionService {
  t.Helper()
  server := httptest.NewServer(handler)
  t.Cleanup(server.Close)
  t.Setenv("OPENAI_API_KEY", "test-key")
  t.Setenv("OPENAI_API_URL", server.URL)
  t.Setenv("OPENAI_MODEL", "gpt-3.5-turbo")
  svc, err := NewOpenAIService(testLogger(t))
  if err != nil {
    t.Fatalf("init completion service: %v", err)
  }
  return svc
}

func TestCompleteSendsSystemHistoryAndUserTurn(t *testing.T) {
  var got chatCompletionRequest
  svc := newCompletionFixture(t, func(w http.ResponseWriter, r *http.Request) {
    if r.URL.Path != "/v1/chat/completions" {
      t.Fatalf("unexpected path %s", r.URL.Path)
    }
    if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
      t.Fatalf("unexpected auth header %q", auth)
    }
    if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
      t.Fatalf("decode request: %v", err)
    }
    w.Header().Set("Content-Type", "application/json")
    _, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "Wear the hoodie."}}]}`))
  })

  history := []ChatTurn{
    {Role: "user", Content: "earlier question"},
    {Role: "assistant", Content: "earlier answer"},
  }
  reply, err := svc.Complete(context.Background(), "You are a stylist.", history, "what now?")
  if err != nil {
    t.Fatalf("complete: %v", err)
  }
  if reply != "Wear the hoodie." {
    t.Fatalf("unexpected reply %q", reply)
  }

  if len(got.Messages) != 4 {
    t.Fatalf("expected system+history+user = 4 messages, got %d", len(got.Messages))
  }
  if got.Messages[0].Role != "system" {
    t.Fatalf("expected system message first, got %q", got.Messages[0].Role)
  }
  if got.Messages[3].Role != "user" || got.Messages[3].Content != "what now?" {
    t.Fatalf("expected user turn last, got %+v", got.Messages[3])
  }
  if got.Model != "gpt-3.5-turbo" {
    t.Fatalf("unexpected model %q", got.Model)
  }
}

func TestCompleteOmitsEmptySystemPrompt(t *testing.T) {
  var got chatCompletionRequest
  svc := newCompletionFixture(t, func(w http.ResponseWriter, r *http.Request) {
    if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
      t.Fatalf("decode request: %v", err)
    }
    _, _ = w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
  })

  if _, err := svc.Complete(context.Background(), "", nil, "hello"); err != nil {
    t.Fatalf("complete: %v", err)
  }
  if len(got.Messages) != 1 || got.Messages[0].Role != "user" {
    t.Fatalf("expected only the user turn, got %+v", got.Messages)
  }
}

func TestCompleteEmptyChoicesIsNotAnError(t *testing.T) {
  svc := newCompletionFixture(t, func(w http.ResponseWriter, r *http.Request) {
    _, _ = w.Write([]byte(`{"choices": []}`))
  })

  reply, err := svc.Complete(context.Background(), "", nil, "hello")
  if err != nil {
    t.Fatalf("empty choices must not error: %v", err)
  }
  if reply != "" {
    t.Fatalf("expected empty reply, got %q", reply)
  }
}

func TestCompleteNon2xxFails(t *testing.T) {
  svc := newCompletionFixture(t, func(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(http.StatusTooManyRequests)
    _, _ = w.Write([]byte(`{"error": {"message": "rate limited"}}`))
  })

  if _, err := svc.Complete(context.Background(), "", nil, "hello"); err == nil {
    t.Fatalf("expected error on non-2xx response")
  }
}

func TestOpenAIServiceRequiresAPIKey(t *testing.T) {
  t.Setenv("OPENAI_API_KEY", "")
  if _, err := NewOpenAIService(testLogger(t)); err == nil {
    t.Fatalf("expected init failure without OPENAI_API_KEY")
  }
}
