package storage_test

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/nikbrunner/tagsearch/internal/storage"
)

func TestSQLiteStore_PutAndReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "searches.db")

	s, err := storage.OpenSQLiteStore(dbPath, "searches")
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}

	if err := s.Put("news", "breaking news"); err != nil {
		t.Fatalf("failed to put: %v", err)
	}
	if err := s.Put("news", "world news"); err != nil {
		t.Fatalf("failed to overwrite: %v", err)
	}
	s.Close()

	reopened, err := storage.OpenSQLiteStore(dbPath, "searches")
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	defer reopened.Close()

	if got := reopened.Get("news"); got != "world news" {
		t.Errorf("Get(news) = %q, want %q", got, "world news")
	}
	if keys := reopened.Keys(); len(keys) != 1 {
		t.Errorf("expected exactly one key after overwrite, got %v", keys)
	}
}

func TestSQLiteStore_EmptyDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")

	s, err := storage.OpenSQLiteStore(dbPath, "searches")
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer s.Close()

	if len(s.Keys()) != 0 {
		t.Error("expected empty namespace")
	}
	if s.Get("missing") != "" {
		t.Error("expected empty fallback for missing key")
	}
}

func TestSQLiteStore_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "searches.db")

	s, err := storage.OpenSQLiteStore(dbPath, "searches")
	if err != nil {
		t.Fatalf("failed to create storage with nested dir: %v", err)
	}
	defer s.Close()
}

func TestSQLiteStore_Remove(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "searches.db")

	s, err := storage.OpenSQLiteStore(dbPath, "searches")
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	_ = s.Put("news", "breaking news")
	_ = s.Put("Apple", "fruit")

	if err := s.Remove("news"); err != nil {
		t.Fatalf("failed to remove: %v", err)
	}
	s.Close()

	reopened, err := storage.OpenSQLiteStore(dbPath, "searches")
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	defer reopened.Close()

	if keys := reopened.Keys(); !slices.Equal(keys, []string{"Apple"}) {
		t.Errorf("Keys() = %v, want [Apple]", keys)
	}
}

func TestSQLiteStore_NamespacesAreIsolated(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "shared.db")

	a, err := storage.OpenSQLiteStore(dbPath, "searches")
	if err != nil {
		t.Fatalf("failed to open namespace a: %v", err)
	}
	_ = a.Put("news", "breaking news")
	a.Close()

	b, err := storage.OpenSQLiteStore(dbPath, "other")
	if err != nil {
		t.Fatalf("failed to open namespace b: %v", err)
	}
	defer b.Close()

	if len(b.Keys()) != 0 {
		t.Errorf("expected other namespace to be empty, got %v", b.Keys())
	}
}
