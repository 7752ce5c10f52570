// Package datastore holds uploaded and annotated tables server-side for the
// lifetime of a session. Tables are far too large to keep in the session
// record itself; the session stores only the UUID keys handed out here.
// Entries expire after the configured TTL, so nothing outlives the session
// it belongs to.
package datastore

import (
	"bytes"
	"errors"
	"time"

	"github.com/gofiber/storage/redis/v3"
	"github.com/google/uuid"

	"tacticlens/internal/dataset"
)

// ErrNotFound is returned when a dataset key is unknown or expired.
var ErrNotFound = errors.New("dataset not found")

// Backend is the key-value storage contract, matching the gofiber storage
// driver interface so the Redis driver plugs in directly.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
	Reset() error
	Close() error
}

// Store saves tables as CSV blobs keyed by UUID.
type Store struct {
	backend Backend
	memory  *memoryBackend // non-nil only for the in-process backend
	ttl     time.Duration
}

// New creates a dataset store. When redisURL is non-empty the Redis driver
// backs it; otherwise an in-process store is used (single-instance
// deployments and development).
func New(redisURL string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if redisURL != "" {
		return &Store{
			backend: redis.New(redis.Config{URL: redisURL}),
			ttl:     ttl,
		}
	}
	mem := newMemoryBackend()
	return &Store{backend: mem, memory: mem, ttl: ttl}
}

// Save serializes a table and stores it under a fresh UUID key.
func (s *Store) Save(t *dataset.Table) (string, error) {
	var buf bytes.Buffer
	if err := t.WriteCSV(&buf); err != nil {
		return "", err
	}
	id := uuid.NewString()
	if err := s.backend.Set(id, buf.Bytes(), s.ttl); err != nil {
		return "", err
	}
	return id, nil
}

// Load retrieves and parses a stored table.
func (s *Store) Load(id string) (*dataset.Table, error) {
	data, err := s.backend.Get(id)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		// Both backends report a missing or expired key as a nil value.
		return nil, ErrNotFound
	}
	return dataset.ReadCSV(bytes.NewReader(data))
}

// Delete removes a stored table. Deleting an unknown key is a no-op.
func (s *Store) Delete(id string) error {
	return s.backend.Delete(id)
}

// Sweep evicts expired entries from the in-process backend. The Redis
// backend expires keys itself, so Sweep is a no-op there.
func (s *Store) Sweep() int {
	if s.memory == nil {
		return 0
	}
	return s.memory.sweep(time.Now())
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
