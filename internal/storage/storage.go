package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
)

// DefaultNamespace is the key/value namespace holding tag -> query pairs.
const DefaultNamespace = "searches"

// Store is a flat string -> string key/value namespace.
// Reads are served from memory; every Put and Remove is persisted immediately.
type Store interface {
	Get(key string) string
	Put(key, value string) error
	Remove(key string) error
	Keys() []string
	Close() error
}

// JSONStore implements Store using one JSON object file per namespace.
type JSONStore struct {
	path    string
	entries map[string]string
}

// OpenJSONStore loads the namespace file at path.
// A missing file is an empty namespace; it is created on the first write.
func OpenJSONStore(path string) (*JSONStore, error) {
	s := &JSONStore{path: path, entries: map[string]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// A file containing "null" decodes to a nil map
	if s.entries == nil {
		s.entries = map[string]string{}
	}

	return s, nil
}

// Path returns the namespace file path.
func (s *JSONStore) Path() string {
	return s.path
}

// Get returns the value stored under key, or "" if there is none.
func (s *JSONStore) Get(key string) string {
	return s.entries[key]
}

// Put stores value under key and writes the namespace file.
func (s *JSONStore) Put(key, value string) error {
	s.entries[key] = value
	return s.flush()
}

// Remove deletes key and writes the namespace file.
func (s *JSONStore) Remove(key string) error {
	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.flush()
}

// Keys returns all keys in unspecified order.
func (s *JSONStore) Keys() []string {
	return slices.Collect(maps.Keys(s.entries))
}

// Close is a no-op; every change is already on disk.
func (s *JSONStore) Close() error {
	return nil
}

// flush writes the whole namespace to disk.
// Creates the directory if it doesn't exist.
func (s *JSONStore) flush() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// MemoryStore implements Store without durability.
type MemoryStore struct {
	entries map[string]string
}

// NewMemoryStore creates a MemoryStore seeded with a copy of entries (may be nil).
func NewMemoryStore(entries map[string]string) *MemoryStore {
	m := make(map[string]string, len(entries))
	maps.Copy(m, entries)
	return &MemoryStore{entries: m}
}

func (s *MemoryStore) Get(key string) string { return s.entries[key] }

func (s *MemoryStore) Put(key, value string) error {
	s.entries[key] = value
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	delete(s.entries, key)
	return nil
}

func (s *MemoryStore) Keys() []string { return slices.Collect(maps.Keys(s.entries)) }

func (s *MemoryStore) Close() error { return nil }

// DefaultDir returns the default data directory: ~/.config/tagsearch
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tagsearch"), nil
}

// ResolveBackend returns the backend Open will use for cfg inside dir.
// With no explicit backend it picks SQLite if the database file exists,
// otherwise JSON.
func ResolveBackend(dir string, cfg Config) string {
	if cfg.Backend != "" {
		return cfg.Backend
	}
	if _, err := os.Stat(sqlitePath(dir, cfg)); err == nil {
		return BackendSQLite
	}
	return BackendJSON
}

// Open opens the store backend selected by cfg inside dir.
func Open(dir string, cfg Config) (Store, error) {
	switch backend := ResolveBackend(dir, cfg); backend {
	case BackendSQLite:
		return OpenSQLiteStore(sqlitePath(dir, cfg), namespaceOf(cfg))
	case BackendJSON:
		return OpenJSONStore(filepath.Join(dir, namespaceOf(cfg)+".json"))
	case BackendMemory:
		return NewMemoryStore(nil), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func namespaceOf(cfg Config) string {
	if cfg.Namespace == "" {
		return DefaultNamespace
	}
	return cfg.Namespace
}

func sqlitePath(dir string, cfg Config) string {
	return filepath.Join(dir, namespaceOf(cfg)+".db")
}
