// Package localstore is the durable key/value layer backing session and
// booking state. It reproduces the persisted layout of the original client
// (one value per fixed string key) on top of a directory of flat files.
// Reads are fail-soft: a missing or corrupt value yields the caller's default,
// never an error.
package localstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Remove(key string) error
}

type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key)
}

func (s *FileStore) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *FileStore) Set(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o600)
}

func (s *FileStore) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryStore is the in-process implementation used by tests and by
// deployments that opt out of durability.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// LoadOrDefault decodes the JSON value under key, falling back to def when the
// key is absent or the stored bytes do not decode. One corrupt key never
// affects loading of the others.
func LoadOrDefault[T any](s Store, key string, def T) T {
	raw, ok := s.Get(key)
	if !ok {
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		slog.Warn("discarding malformed stored state", "key", key, "error", err.Error())
		return def
	}
	return value
}

// Save encodes value as JSON and writes it under key. Callers that treat
// durability as best-effort log and swallow the returned error.
func Save(s Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(key, data)
}
