package datastore

import (
	"sync"
	"time"
)

// memoryBackend is the in-process Backend used when no Redis URL is
// configured. Expired entries are skipped on read and reclaimed by the
// janitor's sweep.
type memoryBackend struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	val []byte
	exp time.Time // zero means no expiry
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{entries: make(map[string]memoryEntry)}
}

func (m *memoryBackend) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	if !ok || (!e.exp.IsZero() && time.Now().After(e.exp)) {
		return nil, nil
	}
	return e.val, nil
}

func (m *memoryBackend) Set(key string, val []byte, exp time.Duration) error {
	e := memoryEntry{val: val}
	if exp > 0 {
		e.exp = time.Now().Add(exp)
	}
	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *memoryBackend) Delete(key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *memoryBackend) Reset() error {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry)
	m.mu.Unlock()
	return nil
}

func (m *memoryBackend) Close() error {
	return m.Reset()
}

// sweep removes entries that expired before now and reports how many were
// evicted.
func (m *memoryBackend) sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	for key, e := range m.entries {
		if !e.exp.IsZero() && now.After(e.exp) {
			delete(m.entries, key)
			evicted++
		}
	}
	return evicted
}
