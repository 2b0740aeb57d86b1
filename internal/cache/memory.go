package cache

import (
	"strings"
	"sync"

	"github.com/tokentrack/burn-tracker/internal/domain"
)

// memoryStore is the process-wide fallback used while Redis is unreachable.
// It is created once per Store and cleared only by operator action, so data
// written during an outage survives until Redis comes back.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]domain.CacheEntry
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		entries: make(map[string]domain.CacheEntry),
	}
}

func (m *memoryStore) get(key string) (*domain.CacheEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	return &entry, true
}

func (m *memoryStore) put(key string, entry domain.CacheEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry
}

func (m *memoryStore) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *memoryStore) clear() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.entries)
	m.entries = make(map[string]domain.CacheEntry)
	return n
}

func (m *memoryStore) clearPrefix(prefix string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
			n++
		}
	}
	return n
}
