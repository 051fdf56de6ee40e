package cache

import (
	"context"
	"sync"
	"time"
)

// Store is the cache collaborator used by the search service. Values are
// opaque byte slices; entries expire by TTL or an explicit full reset.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Reset(ctx context.Context) error
}

type memoryEntry struct {
	value  []byte
	expiry time.Time
}

// Memory is an in-process TTL store. Entries are only replaced whole or
// cleared in full; there is no LRU or size bound.
type Memory struct {
	mu    sync.Mutex
	items map[string]memoryEntry
	now   func() time.Time
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string]memoryEntry), now: time.Now}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	if m.now().After(entry.expiry) {
		delete(m.items, key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = memoryEntry{value: value, expiry: m.now().Add(ttl)}
	return nil
}

func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]memoryEntry)
	return nil
}
