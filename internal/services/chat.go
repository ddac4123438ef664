package services

import (
  "context"
  "errors"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/onlyfrogs/stylesync-backend/internal/apperr"
  "github.com/onlyfrogs/stylesync-backend/internal/logger"
  "github.com/onlyfrogs/stylesync-backend/internal/repos"
  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

type ChatService interface {
  // CreateSession is idempotent: if the user already has a session it is
  // returned with created=false instead of an error.
  CreateSession(ctx context.Context, userID uuid.UUID) (*types.ChatSession, bool, error)
  RetrieveSessionChat(ctx context.Context, userID uuid.UUID) ([]*types.ChatMessage, error)
  DeleteSessionMessages(ctx context.Context, userID uuid.UUID) error
  SendMessage(ctx context.Context, userID uuid.UUID, content string, role string) (*types.ChatMessage, error)
  // PromptStylist runs the full stylist turn. On a persistence failure after
  // the model already replied, the reply text is still returned alongside the
  // error so the caller can decide what to do with it.
  PromptStylist(ctx context.Context, userID uuid.UUID, userMessage string) (string, error)
}

type chatService struct {
  db          *gorm.DB
  log         *logger.Logger
  userRepo    repos.UserRepo
  sessionRepo repos.ChatSessionRepo
  messageRepo repos.ChatMessageRepo
  completion  CompletionService
  weather     WeatherService
}

func NewChatService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, sessionRepo repos.ChatSessionRepo, messageRepo repos.ChatMessageRepo, completion CompletionService, weather WeatherService) ChatService {
  return &chatService{
    db:          db,
    log:         log.With("service", "ChatService"),
    userRepo:    userRepo,
    sessionRepo: sessionRepo,
    messageRepo: messageRepo,
    completion:  completion,
    weather:     weather,
  }
}

func (cs *chatService) CreateSession(ctx context.Context, userID uuid.UUID) (*types.ChatSession, bool, error) {
  existing, err := cs.sessionRepo.GetSessionByUser(ctx, nil, userID)
  if err == nil {
    return existing, false, nil
  }
  if !errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, false, apperr.Internal("Internal Server Error", err)
  }
  if _, err := cs.userRepo.GetByID(ctx, nil, userID); err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, false, apperr.NotFound("User not found")
    }
    return nil, false, apperr.Internal("Internal Server Error", err)
  }
  session, err := cs.sessionRepo.CreateSession(ctx, nil, &types.ChatSession{UserID: userID})
  if err != nil {
    return nil, false, apperr.Internal("Failed to create chat session", err)
  }
  return session, true, nil
}

func (cs *chatService) RetrieveSessionChat(ctx context.Context, userID uuid.UUID) ([]*types.ChatMessage, error) {
  session, err := cs.resolveSession(ctx, userID)
  if err != nil {
    return nil, err
  }
  msgs, err := cs.messageRepo.GetBySessionID(ctx, nil, session.ID)
  if err != nil {
    return nil, apperr.Internal("Failed to retrieve chat messages", err)
  }
  return msgs, nil
}

func (cs *chatService) DeleteSessionMessages(ctx context.Context, userID uuid.UUID) error {
  session, err := cs.resolveSession(ctx, userID)
  if err != nil {
    return err
  }
  if err := cs.messageRepo.DeleteBySessionID(ctx, nil, session.ID); err != nil {
    return apperr.Internal("Failed to delete chat messages", err)
  }
  return nil
}

func (cs *chatService) SendMessage(ctx context.Context, userID uuid.UUID, content string, role string) (*types.ChatMessage, error) {
  if content == "" {
    return nil, apperr.Validation("Message content is required")
  }
  if role != types.RoleUser && role != types.RoleAssistant {
    return nil, apperr.Validation("Role must be \"user\" or \"assistant\"")
  }
  session, err := cs.resolveSession(ctx, userID)
  if err != nil {
    return nil, err
  }
  msg, err := cs.messageRepo.CreateMessage(ctx, nil, &types.ChatMessage{
    SessionID: session.ID,
    Role:      role,
    Content:   content,
  })
  if err != nil {
    return nil, apperr.Internal("Failed to save message", err)
  }
  return msg, nil
}

// PromptStylist is the §"prompt-gpt" flow: resolve session, persist the user
// turn, replay history into one completion call, persist the reply. Every step
// is terminal on failure; nothing is retried.
func (cs *chatService) PromptStylist(ctx context.Context, userID uuid.UUID, userMessage string) (string, error) {
  if userMessage == "" {
    return "", apperr.Validation("User message is required")
  }

  user, err := cs.userRepo.GetWithWardrobe(ctx, nil, userID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return "", apperr.NotFound("User not found")
    }
    return "", apperr.Internal("Failed to load user", err)
  }
  if user.ChatSession == nil {
    return "", apperr.NotFound("No chat session found for user")
  }

  // Weather is an enrichment: a failed lookup degrades the prompt to the
  // "unknown ..." sentinels instead of failing the request.
  var weather *Weather
  if cs.weather != nil && user.LocationLat != nil && user.LocationLon != nil {
    w, werr := cs.weather.Lookup(ctx, *user.LocationLat, *user.LocationLon)
    if werr != nil {
      cs.log.Warn("weather lookup failed, continuing without it", "error", werr)
    } else {
      weather = &w
    }
  }

  // History is the session's persisted messages before this turn; the new
  // user turn is appended to the store first so a completion failure never
  // leaves an unpersisted conversation.
  history := make([]ChatTurn, 0, len(user.ChatSession.Messages))
  for _, m := range user.ChatSession.Messages {
    history = append(history, ChatTurn{Role: m.Role, Content: m.Content})
  }

  if _, err := cs.messageRepo.CreateMessage(ctx, nil, &types.ChatMessage{
    SessionID: user.ChatSession.ID,
    Role:      types.RoleUser,
    Content:   userMessage,
  }); err != nil {
    return "", apperr.Internal("Failed to save user message", err)
  }

  clothes := make([]*types.ClothingItem, 0, len(user.Clothes))
  for i := range user.Clothes {
    clothes = append(clothes, &user.Clothes[i])
  }
  systemPrompt := BuildStylistPrompt(user, weather, clothes)

  reply, err := cs.completion.Complete(ctx, systemPrompt, history, userMessage)
  if err != nil {
    return "", apperr.Upstream("Error connecting to the stylist model", err)
  }
  if reply == "" {
    return "", apperr.Upstream("No valid response from the stylist model", nil)
  }

  if _, err := cs.messageRepo.CreateMessage(ctx, nil, &types.ChatMessage{
    SessionID: user.ChatSession.ID,
    Role:      types.RoleAssistant,
    Content:   reply,
  }); err != nil {
    // The model did reply; hand the text back with the error so the caller
    // can surface or retry the append without another model call.
    return reply, apperr.Internal("Failed to save assistant message", err)
  }
  return reply, nil
}

func (cs *chatService) resolveSession(ctx context.Context, userID uuid.UUID) (*types.ChatSession, error) {
  session, err := cs.sessionRepo.GetSessionByUser(ctx, nil, userID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.NotFound("No chat session found for user")
    }
    return nil, apperr.Internal("Internal Server Error", err)
  }
  return session, nil
}
