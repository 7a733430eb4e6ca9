package session

import (
	"context"
	"sync"
)

// Store persists one session per form key. Load returns an empty session when
// nothing was saved; a record that cannot be decoded also loads as empty so a
// corrupt blob never wedges the form.
type Store interface {
	Load(ctx context.Context, formKey string) (FormSession, error)
	Save(ctx context.Context, formKey string, s FormSession) error
	Delete(ctx context.Context, formKey string) error
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]FormSession
}

// NewMemoryStore returns an in-process Store, used by tests and by the server
// when no database is configured.
func NewMemoryStore() Store {
	return &memoryStore{sessions: map[string]FormSession{}}
}

func (m *memoryStore) Load(_ context.Context, formKey string) (FormSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[formKey]; ok {
		return s.Clone(), nil
	}
	return Empty(), nil
}

func (m *memoryStore) Save(_ context.Context, formKey string, s FormSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[formKey] = s.Clone()
	return nil
}

func (m *memoryStore) Delete(_ context.Context, formKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, formKey)
	return nil
}
