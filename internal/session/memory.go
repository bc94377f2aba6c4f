package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process fallback used when Redis is unreachable at
// startup, and the store the tests run against. Sessions held here do not
// survive a restart, which matches the degraded mode: operators simply log
// in again.
type MemoryStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]memoryEntry
}

type memoryEntry struct {
	sess    Session
	expires time.Time
}

// NewMemoryStore builds an empty store with the given record TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, items: make(map[string]memoryEntry)}
}

// Get returns the record for id, lazily evicting it when expired.
func (m *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	m.mu.RLock()
	e, ok := m.items[id]
	m.mu.RUnlock()
	if !ok {
		return Session{}, ErrNotFound
	}
	if time.Now().After(e.expires) {
		m.mu.Lock()
		delete(m.items, id)
		m.mu.Unlock()
		return Session{}, ErrNotFound
	}
	return e.sess, nil
}

// Put stores the record and resets its TTL.
func (m *MemoryStore) Put(_ context.Context, id string, s Session) error {
	m.mu.Lock()
	m.items[id] = memoryEntry{sess: s, expires: time.Now().Add(m.ttl)}
	m.mu.Unlock()
	return nil
}

// Delete removes the record. Deleting an absent id is not an error.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.items, id)
	m.mu.Unlock()
	return nil
}
