package storage

import (
	"database/sql"
	"maps"
	"os"
	"path/filepath"
	"slices"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
// All entries of the namespace are loaded at open; writes go straight to the database.
type SQLiteStore struct {
	db        *sql.DB
	path      string
	namespace string
	entries   map[string]string
}

// OpenSQLiteStore opens (or creates) the database at path and loads namespace.
func OpenSQLiteStore(path, namespace string) (*SQLiteStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStore{
		db:        db,
		path:      path,
		namespace: namespace,
		entries:   map[string]string{},
	}
	if err := s.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) createTable() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			namespace TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (namespace, key)
		)
	`)
	return err
}

// load reads the whole namespace into memory.
func (s *SQLiteStore) load() error {
	rows, err := s.db.Query(`SELECT key, value FROM entries WHERE namespace = ?`, s.namespace)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		s.entries[key] = value
	}

	return rows.Err()
}

// Get returns the value stored under key, or "" if there is none.
func (s *SQLiteStore) Get(key string) string {
	return s.entries[key]
}

// Put stores value under key.
func (s *SQLiteStore) Put(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO entries (namespace, key, value) VALUES (?, ?, ?)
		ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value
	`, s.namespace, key, value)
	if err != nil {
		return err
	}
	s.entries[key] = value
	return nil
}

// Remove deletes key.
func (s *SQLiteStore) Remove(key string) error {
	_, err := s.db.Exec(`DELETE FROM entries WHERE namespace = ? AND key = ?`, s.namespace, key)
	if err != nil {
		return err
	}
	delete(s.entries, key)
	return nil
}

// Keys returns all keys in unspecified order.
func (s *SQLiteStore) Keys() []string {
	return slices.Collect(maps.Keys(s.entries))
}
