package core

import "sync"

// KVStore persists a small set of named scalar values.
// A missing or unreadable value is reported as absent (ok == false).
type KVStore interface {
	GetInt(key string) (value int, ok bool)
	SetInt(key string, value int) error
	GetFloat(key string) (value float64, ok bool)
	SetFloat(key string, value float64) error
}

// MemoryStore is an in-process KVStore.
type MemoryStore struct {
	mu     sync.RWMutex
	ints   map[string]int
	floats map[string]float64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ints:   make(map[string]int),
		floats: make(map[string]float64),
	}
}

// GetInt returns the integer stored under key.
func (m *MemoryStore) GetInt(key string) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.ints[key]
	return v, ok
}

// SetInt stores an integer under key.
func (m *MemoryStore) SetInt(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints[key] = value
	return nil
}

// GetFloat returns the float stored under key.
func (m *MemoryStore) GetFloat(key string) (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.floats[key]
	return v, ok
}

// SetFloat stores a float under key.
func (m *MemoryStore) SetFloat(key string, value float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats[key] = value
	return nil
}
