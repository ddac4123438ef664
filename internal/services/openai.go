package services

import (
  "bytes"
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"
  "os"
  "time"

  "github.com/onlyfrogs/stylesync-backend/internal/logger"
)

// ChatTurn is one prior turn of a conversation, replayed verbatim to the
// completion endpoint.
type ChatTurn struct {
  Role    string `json:"role"`
  Content string `json:"content"`
}

// CompletionService is the single round-trip to the model: no retry, no
// streaming. An empty reply comes back as ("", nil); callers decide whether
// that is terminal.
type CompletionService interface {
  Complete(ctx context.Context, systemPrompt string, history []ChatTurn, userTurn string) (string, error)
}

type openAIService struct {
  log     *logger.Logger
  client  *http.Client
  baseURL string
  apiKey  string
  model   string
}

func NewOpenAIService(log *logger.Logger) (CompletionService, error) {
  serviceLog := log.With("service", "OpenAIService")
  apiKey := os.Getenv("OPENAI_API_KEY")
  if apiKey == "" {
    return nil, fmt.Errorf("missing OPENAI_API_KEY environment variable")
  }
  baseURL := os.Getenv("OPENAI_API_URL")
  if baseURL == "" {
    baseURL = "https://api.openai.com"
  }
  model := os.Getenv("OPENAI_MODEL")
  if model == "" {
    model = "gpt-3.5-turbo"
  }
  httpClient := &http.Client{
    Timeout: 60 * time.Second,
  }
  return &openAIService{
    log:     serviceLog,
    client:  httpClient,
    baseURL: baseURL,
    apiKey:  apiKey,
    model:   model,
  }, nil
}

type chatCompletionRequest struct {
  Model    string     `json:"model"`
  Messages []ChatTurn `json:"messages"`
}

type chatCompletionResponse struct {
  Choices []struct {
    Message struct {
      Role    string `json:"role"`
      Content string `json:"content"`
    } `json:"message"`
  } `json:"choices"`
}

func (oa *openAIService) Complete(ctx context.Context, systemPrompt string, history []ChatTurn, userTurn string) (string, error) {
  messages := make([]ChatTurn, 0, len(history)+2)
  if systemPrompt != "" {
    messages = append(messages, ChatTurn{Role: "system", Content: systemPrompt})
  }
  messages = append(messages, history...)
  messages = append(messages, ChatTurn{Role: "user", Content: userTurn})

  payload, err := json.Marshal(chatCompletionRequest{Model: oa.model, Messages: messages})
  if err != nil {
    return "", err
  }
  reqURL := fmt.Sprintf("%s/v1/chat/completions", oa.baseURL)
  req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
  if err != nil {
    oa.log.Warn("failed to build completion request", "error", err)
    return "", err
  }
  req.Header.Set("Content-Type", "application/json")
  req.Header.Set("Authorization", "Bearer "+oa.apiKey)

  resp, err := oa.client.Do(req)
  if err != nil {
    oa.log.Warn("failed to call completion endpoint", "error", err)
    return "", err
  }
  defer resp.Body.Close()

  if resp.StatusCode < 200 || resp.StatusCode > 299 {
    bodyBytes, _ := io.ReadAll(resp.Body)
    oa.log.Warn("completion endpoint responded with non-2xx", "statusCode", resp.StatusCode, "body", string(bodyBytes))
    return "", fmt.Errorf("completion endpoint HTTP %d: %s", resp.StatusCode, string(bodyBytes))
  }
  bodyBytes, err := io.ReadAll(resp.Body)
  if err != nil {
    oa.log.Warn("failed to read completion response body", "error", err)
    return "", err
  }
  var out chatCompletionResponse
  if err := json.Unmarshal(bodyBytes, &out); err != nil {
    oa.log.Warn("failed to decode completion response", "error", err)
    return "", err
  }
  if len(out.Choices) == 0 {
    return "", nil
  }
  return out.Choices[0].Message.Content, nil
}
