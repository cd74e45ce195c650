package cache

import (
	"context"
	"sync"
)

// Memory is a process-local Cache used in tests and redis-less deployments.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get returns the cached value for key, if present.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	return value, ok
}

// Set stores value under key. Entries never expire; the process lifetime is
// the TTL.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
	return nil
}
