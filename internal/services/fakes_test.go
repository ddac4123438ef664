package services

import (
  "context"
  "errors"
  "sync"
  "testing"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/onlyfrogs/stylesync-backend/internal/logger"
  "github.com/onlyfrogs/stylesync-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("failed to init test logger: %v", err)
  }
  return log
}

//---------------------------------------------------------------------
// repo fakes
//---------------------------------------------------------------------

type fakeUserRepo struct {
  users map[uuid.UUID]*types.User
}

func newFakeUserRepo() *fakeUserRepo {
  return &fakeUserRepo{users: make(map[uuid.UUID]*types.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
  if user.ID == uuid.Nil {
    user.ID = uuid.New()
  }
  f.users[user.ID] = user
  return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error) {
  u, ok := f.users[id]
  if !ok {
    return nil, gorm.ErrRecordNotFound
  }
  return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
  for _, u := range f.users {
    if u.Email == email {
      return u, nil
    }
  }
  return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetWithWardrobe(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error) {
  return f.GetByID(ctx, tx, id)
}

func (f *fakeUserRepo) Update(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
  if _, ok := f.users[user.ID]; !ok {
    return nil, gorm.ErrRecordNotFound
  }
  f.users[user.ID] = user
  return user, nil
}

func (f *fakeUserRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
  if _, ok := f.users[id]; !ok {
    return gorm.ErrRecordNotFound
  }
  return nil
}

type fakeSessionRepo struct {
  sessions map[uuid.UUID]*types.ChatSession // keyed by user id
  created  int
}

func newFakeSessionRepo() *fakeSessionRepo {
  return &fakeSessionRepo{sessions: make(map[uuid.UUID]*types.ChatSession)}
}

func (f *fakeSessionRepo) CreateSession(ctx context.Context, tx *gorm.DB, session *types.ChatSession) (*types.ChatSession, error) {
  if session.ID == uuid.Nil {
    session.ID = uuid.New()
  }
  f.sessions[session.UserID] = session
  f.created++
  return session, nil
}

func (f *fakeSessionRepo) GetSessionByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ChatSession, error) {
  for _, s := range f.sessions {
    if s.ID == id {
      return s, nil
    }
  }
  return nil, gorm.ErrRecordNotFound
}

func (f *fakeSessionRepo) GetSessionByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ChatSession, error) {
  s, ok := f.sessions[userID]
  if !ok {
    return nil, gorm.ErrRecordNotFound
  }
  return s, nil
}

type fakeMessageRepo struct {
  messages   []*types.ChatMessage
  failOnRole string // CreateMessage fails when asked to persist this role
}

func (f *fakeMessageRepo) CreateMessage(ctx context.Context, tx *gorm.DB, msg *types.ChatMessage) (*types.ChatMessage, error) {
  if f.failOnRole != "" && msg.Role == f.failOnRole {
    return nil, errors.New("simulated write failure")
  }
  if msg.ID == uuid.Nil {
    msg.ID = uuid.New()
  }
  msg.CreatedAt = time.Now()
  f.messages = append(f.messages, msg)
  return msg, nil
}

func (f *fakeMessageRepo) GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.ChatMessage, error) {
  var out []*types.ChatMessage
  for _, m := range f.messages {
    if m.SessionID == sessionID {
      out = append(out, m)
    }
  }
  return out, nil
}

func (f *fakeMessageRepo) DeleteBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error {
  var kept []*types.ChatMessage
  for _, m := range f.messages {
    if m.SessionID != sessionID {
      kept = append(kept, m)
    }
  }
  f.messages = kept
  return nil
}

type fakeClothingRepo struct {
  items map[uuid.UUID]*types.ClothingItem
}

func newFakeClothingRepo() *fakeClothingRepo {
  return &fakeClothingRepo{items: make(map[uuid.UUID]*types.ClothingItem)}
}

func (f *fakeClothingRepo) Create(ctx context.Context, tx *gorm.DB, item *types.ClothingItem) (*types.ClothingItem, error) {
  if item.ID == uuid.Nil {
    item.ID = uuid.New()
  }
  f.items[item.ID] = item
  return item, nil
}

func (f *fakeClothingRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ClothingItem, error) {
  item, ok := f.items[id]
  if !ok {
    return nil, gorm.ErrRecordNotFound
  }
  return item, nil
}

func (f *fakeClothingRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.ClothingItem, error) {
  var out []*types.ClothingItem
  for _, id := range ids {
    if item, ok := f.items[id]; ok {
      out = append(out, item)
    }
  }
  return out, nil
}

func (f *fakeClothingRepo) GetByCloset(ctx context.Context, tx *gorm.DB, closetID uuid.UUID) ([]*types.ClothingItem, error) {
  var out []*types.ClothingItem
  for _, item := range f.items {
    if item.ClosetID == closetID {
      out = append(out, item)
    }
  }
  return out, nil
}

func (f *fakeClothingRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ClothingItem, error) {
  var out []*types.ClothingItem
  for _, item := range f.items {
    if item.UserID == userID {
      out = append(out, item)
    }
  }
  return out, nil
}

func (f *fakeClothingRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) (*types.ClothingItem, error) {
  return f.GetByID(ctx, tx, id)
}

func (f *fakeClothingRepo) MarkWorn(ctx context.Context, tx *gorm.DB, id uuid.UUID, wornAt time.Time) error {
  item, ok := f.items[id]
  if !ok {
    return gorm.ErrRecordNotFound
  }
  item.WornCount++
  item.LastWornAt = &wornAt
  return nil
}

func (f *fakeClothingRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  delete(f.items, id)
  return nil
}

func (f *fakeClothingRepo) DeleteByCloset(ctx context.Context, tx *gorm.DB, closetID uuid.UUID) error {
  for id, item := range f.items {
    if item.ClosetID == closetID {
      delete(f.items, id)
    }
  }
  return nil
}

//---------------------------------------------------------------------
// external collaborator fakes
//---------------------------------------------------------------------

type completionCall struct {
  SystemPrompt string
  History      []ChatTurn
  UserTurn     string
}

type fakeCompletion struct {
  mu    sync.Mutex
  reply string
  err   error
  // replyFn overrides reply/err when set.
  replyFn func(call completionCall) (string, error)
  calls   []completionCall
}

func (f *fakeCompletion) Complete(ctx context.Context, systemPrompt string, history []ChatTurn, userTurn string) (string, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  call := completionCall{SystemPrompt: systemPrompt, History: history, UserTurn: userTurn}
  f.calls = append(f.calls, call)
  if f.replyFn != nil {
    return f.replyFn(call)
  }
  return f.reply, f.err
}

type fakeProductSearch struct {
  mu      sync.Mutex
  results map[string][]types.Product
  errs    map[string]error
  queries []string
}

func (f *fakeProductSearch) Search(ctx context.Context, query string) ([]types.Product, error) {
  f.mu.Lock()
  f.queries = append(f.queries, query)
  f.mu.Unlock()
  if err, ok := f.errs[query]; ok {
    return nil, err
  }
  return f.results[query], nil
}
