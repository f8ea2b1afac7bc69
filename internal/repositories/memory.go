package repositories

import (
	"context"
	"sync"
)

// MemoryKeyValue keeps entries in process memory. Nothing survives a restart.
type MemoryKeyValue struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryKeyValue() *MemoryKeyValue {
	return &MemoryKeyValue{entries: make(map[string][]byte)}
}

func (m *MemoryKeyValue) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.entries[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryKeyValue) Put(_ context.Context, entries map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, v := range entries {
		buf := make([]byte, len(v))
		copy(buf, v)
		m.entries[k] = buf
	}
	return nil
}
