package service

import (
	"sync"

	"croupier/games"
)

// BlackjackSession holds the transient state of one live hand. Sessions
// live in process memory only; an abandoned session is simply replaced
// the next time the same player starts a hand in the same scope.
type BlackjackSession struct {
	Bet       int64
	WinChance float64
	Deck      *games.Deck
	Player    []games.Card
	Dealer    []games.Card
	Done      bool
}

// SessionStore keys live blackjack sessions by (scope, player). Putting a
// session for an occupied key overwrites the old one.
type SessionStore interface {
	Get(scope, userID string) (*BlackjackSession, bool)
	Put(scope, userID string, session *BlackjackSession)
	Delete(scope, userID string)
}

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*BlackjackSession
}

// NewMemorySessionStore creates an in-memory session store
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]*BlackjackSession),
	}
}

func sessionKey(scope, userID string) string {
	return scope + ":" + userID
}

func (s *memorySessionStore) Get(scope, userID string) (*BlackjackSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionKey(scope, userID)]
	return session, ok
}

func (s *memorySessionStore) Put(scope, userID string, session *BlackjackSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionKey(scope, userID)] = session
}

func (s *memorySessionStore) Delete(scope, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionKey(scope, userID))
}
