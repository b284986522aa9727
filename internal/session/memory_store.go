package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests and single-process setups.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

// Get returns the stored session, or a zero session when absent.
func (m *MemoryStore) Get(_ context.Context, sid string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[sid], nil
}

// Set stores the full session under sid.
func (m *MemoryStore) Set(_ context.Context, sid string, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sid] = s
	return nil
}

// Clear removes the session; clearing an absent sid is a no-op.
func (m *MemoryStore) Clear(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sid)
	return nil
}
