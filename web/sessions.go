package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated admin console session
type Session struct {
	ID        string
	DiscordID string
	Username  string
	ExpiresAt time.Time
}

// SessionStore keeps console sessions in memory, keyed by an opaque
// uuid token carried in a cookie
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session for an admin
func (s *SessionStore) Create(discordID, username string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{
		ID:        uuid.NewString(),
		DiscordID: discordID,
		Username:  username,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	s.sessions[session.ID] = session
	return session
}

// Get returns a live session, dropping it if expired
func (s *SessionStore) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if time.Now().After(session.ExpiresAt) {
		delete(s.sessions, id)
		return nil
	}
	return session
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// stateStore tracks pending OAuth state tokens
type stateStore struct {
	mu     sync.Mutex
	states map[string]time.Time
}

const stateTTL = 10 * time.Minute

func newStateStore() *stateStore {
	return &stateStore{states: make(map[string]time.Time)}
}

// Issue creates a single-use state token for the authorize redirect
func (s *stateStore) Issue() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := uuid.NewString()
	s.states[state] = time.Now().Add(stateTTL)
	return state
}

// Consume validates and burns a state token
func (s *stateStore) Consume(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.states[state]
	if !ok {
		return false
	}
	delete(s.states, state)
	return time.Now().Before(expiry)
}
