package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"croupier/events"
	"croupier/models"
)

// memStore is a stateful in-memory backend shared by the fake
// repositories. It lets flow tests assert on real ledger arithmetic
// instead of scripting every repository call.
type memStore struct {
	mu        sync.Mutex
	users     map[string]*models.User
	history   []*models.BalanceHistory
	global    map[models.GameKey]models.GameSettings
	overrides map[string]map[models.GameKey]models.GameSettings

	// keys listed here report models.ErrCorruptSettings on read
	corruptGlobal map[models.GameKey]bool

	published []events.Event
}

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[string]*models.User),
		global:        make(map[models.GameKey]models.GameSettings),
		overrides:     make(map[string]map[models.GameKey]models.GameSettings),
		corruptGlobal: make(map[models.GameKey]bool),
	}
}

func (s *memStore) seedUser(userID string, balance int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = &models.User{UserID: userID, Balance: balance}
}

func (s *memStore) balance(userID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[userID]; ok {
		return u.Balance
	}
	return 0
}

func (s *memStore) historyTypes(userID string) []models.TransactionType {
	s.mu.Lock()
	defer s.mu.Unlock()
	var types []models.TransactionType
	for _, h := range s.history {
		if h.UserID == userID {
			types = append(types, h.TransactionType)
		}
	}
	return types
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) GetOrCreate(ctx context.Context, userID string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[userID]; ok {
		copied := *u
		return &copied, nil
	}
	u := &models.User{UserID: userID, CreatedAt: time.Now()}
	r.s.users[userID] = u
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) AdjustBalance(ctx context.Context, userID string, delta int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u := r.s.users[userID]
	u.Balance += delta
	return u.Balance, nil
}

func (r *memUserRepo) SetBalance(ctx context.Context, userID string, balance int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[userID].Balance = balance
	return nil
}

func (r *memUserRepo) SetLastClaim(ctx context.Context, userID string, claimedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[userID].LastClaim = claimedAt
	return nil
}

func (r *memUserRepo) GetTopByBalance(ctx context.Context, limit int) ([]*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := make([]*models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		copied := *u
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Balance > users[j].Balance })
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

type memHistoryRepo struct{ s *memStore }

func (r *memHistoryRepo) Record(ctx context.Context, history *models.BalanceHistory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.history = append(r.s.history, history)
	return nil
}

func (r *memHistoryRepo) GetByUser(ctx context.Context, userID string, limit int) ([]*models.BalanceHistory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var entries []*models.BalanceHistory
	for i := len(r.s.history) - 1; i >= 0 && len(entries) < limit; i-- {
		if r.s.history[i].UserID == userID {
			entries = append(entries, r.s.history[i])
		}
	}
	return entries, nil
}

type memConfigRepo struct{ s *memStore }

func (r *memConfigRepo) GetGlobal(ctx context.Context, key models.GameKey) (*models.GameSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.corruptGlobal[key] {
		return nil, models.ErrCorruptSettings
	}
	if settings, ok := r.s.global[key]; ok {
		return &settings, nil
	}
	return nil, nil
}

func (r *memConfigRepo) SetGlobal(ctx context.Context, key models.GameKey, settings models.GameSettings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.corruptGlobal, key)
	r.s.global[key] = settings
	return nil
}

func (r *memConfigRepo) GetUserOverride(ctx context.Context, userID string, key models.GameKey) (*models.GameSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if settings, ok := r.s.overrides[userID][key]; ok {
		return &settings, nil
	}
	return nil, nil
}

func (r *memConfigRepo) SetUserOverride(ctx context.Context, userID string, key models.GameKey, settings models.GameSettings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.overrides[userID] == nil {
		r.s.overrides[userID] = make(map[models.GameKey]models.GameSettings)
	}
	r.s.overrides[userID][key] = settings
	return nil
}

func (r *memConfigRepo) ClearUserOverride(ctx context.Context, userID string, key models.GameKey) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.overrides[userID], key)
	return nil
}

func (r *memConfigRepo) GetUserOverrides(ctx context.Context, userID string) (map[models.GameKey]*models.GameSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[models.GameKey]*models.GameSettings)
	for key, settings := range r.s.overrides[userID] {
		copied := settings
		out[key] = &copied
	}
	return out, nil
}

type memPublisher struct{ s *memStore }

func (p *memPublisher) Publish(event events.Event) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	p.s.published = append(p.s.published, event)
}

type memUnitOfWork struct{ s *memStore }

func (u *memUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memUnitOfWork) Commit() error                   { return nil }
func (u *memUnitOfWork) Rollback() error                 { return nil }

func (u *memUnitOfWork) UserRepository() UserRepository { return &memUserRepo{s: u.s} }
func (u *memUnitOfWork) BalanceHistoryRepository() BalanceHistoryRepository {
	return &memHistoryRepo{s: u.s}
}
func (u *memUnitOfWork) GameConfigRepository() GameConfigRepository { return &memConfigRepo{s: u.s} }
func (u *memUnitOfWork) EventBus() EventPublisher                   { return &memPublisher{s: u.s} }

type memUnitOfWorkFactory struct{ s *memStore }

func (f *memUnitOfWorkFactory) Create() UnitOfWork { return &memUnitOfWork{s: f.s} }
