package storage

import (
	"sync"

	"github.com/aliskhannn/neet-quiz-bot/internal/domain/entities"
)

// SessionStorage provides in-memory storage for quiz state by session ID.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]entities.QuizState
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]entities.QuizState),
	}
}

// Get returns the state for sessionID, or the zero state if none is stored.
func (s *SessionStorage) Get(sessionID int64) entities.QuizState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[sessionID]
}

// Update applies fn to the stored state under the write lock and saves the result.
func (s *SessionStorage) Update(sessionID int64, fn func(entities.QuizState) entities.QuizState) entities.QuizState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := fn(s.sessions[sessionID])
	s.sessions[sessionID] = state
	return state
}

// Delete removes the state for sessionID.
func (s *SessionStorage) Delete(sessionID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Clear removes every session.
func (s *SessionStorage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.sessions)
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
