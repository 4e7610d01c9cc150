package store

import (
	"context"
	"sync"
)

// memoryStorage keeps values in a map for the lifetime of the process.
type memoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage returns an empty in-process [KeyValueStorage].
func NewMemoryStorage() KeyValueStorage {
	return &memoryStorage{values: make(map[string]string)}
}

func (m *memoryStorage) GetString(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryStorage) SetString(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *memoryStorage) Close() error {
	return nil
}
