package persistence

import (
	"context"
	"sync"
)

// MemKV implements KV in memory. Used in tests and as a scratch store.
type MemKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemKV creates an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{values: make(map[string]string)}
}

// Load returns the stored value for key, or found=false when absent.
func (m *MemKV) Load(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Save stores value under key, replacing any previous value.
func (m *MemKV) Save(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Clear removes key.
func (m *MemKV) Clear(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
