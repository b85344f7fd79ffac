package storage_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/nikbrunner/tagsearch/internal/storage"
)

func TestJSONStore_PutAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searches.json")

	s, err := storage.OpenJSONStore(path)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	if err := s.Put("news", "breaking news"); err != nil {
		t.Fatalf("failed to put: %v", err)
	}

	// Verify file exists after the first write
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("namespace file was not created")
	}

	reopened, err := storage.OpenJSONStore(path)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	if got := reopened.Get("news"); got != "breaking news" {
		t.Errorf("Get(news) = %q, want %q", got, "breaking news")
	}
}

func TestJSONStore_LoadNonexistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.json")

	s, err := storage.OpenJSONStore(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if len(s.Keys()) != 0 {
		t.Error("expected empty namespace for missing file")
	}

	// Opening alone must not create the file
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("open should not create the namespace file")
	}
}

func TestJSONStore_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "searches.json")

	s, err := storage.OpenJSONStore(path)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	if err := s.Put("pets", "cats"); err != nil {
		t.Fatalf("failed to put with nested dir: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("namespace file was not created in nested directory")
	}
}

func TestJSONStore_RemovePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searches.json")

	s, _ := storage.OpenJSONStore(path)
	_ = s.Put("news", "breaking news")
	_ = s.Put("Apple", "fruit")

	if err := s.Remove("news"); err != nil {
		t.Fatalf("failed to remove: %v", err)
	}

	reopened, err := storage.OpenJSONStore(path)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	if got := reopened.Get("news"); got != "" {
		t.Errorf("removed key should read as empty, got %q", got)
	}
	if keys := reopened.Keys(); !slices.Equal(keys, []string{"Apple"}) {
		t.Errorf("Keys() = %v, want [Apple]", keys)
	}
}

func TestJSONStore_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searches.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := storage.OpenJSONStore(path); err == nil {
		t.Error("expected error for malformed namespace file")
	}
}

func TestMemoryStore_CopiesSeed(t *testing.T) {
	seed := map[string]string{"news": "breaking news"}
	s := storage.NewMemoryStore(seed)

	_ = s.Put("pets", "cats")
	if _, ok := seed["pets"]; ok {
		t.Error("MemoryStore should not write into the seed map")
	}
	if s.Get("news") != "breaking news" {
		t.Error("expected seeded value")
	}

	_ = s.Remove("news")
	if s.Get("news") != "" {
		t.Error("expected removed key to read as empty")
	}
}

func TestOpen_Backends(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		wantErr bool
	}{
		{"json", storage.BackendJSON, false},
		{"sqlite", storage.BackendSQLite, false},
		{"memory", storage.BackendMemory, false},
		{"auto", "", false},
		{"unknown", "redis", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := storage.DefaultConfig()
			cfg.Backend = tt.backend

			s, err := storage.Open(t.TempDir(), cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer s.Close()

			if err := s.Put("news", "breaking news"); err != nil {
				t.Fatalf("failed to put: %v", err)
			}
			if s.Get("news") != "breaking news" {
				t.Error("expected value back from store")
			}
		})
	}
}

func TestOpen_AutoPrefersExistingSQLite(t *testing.T) {
	dir := t.TempDir()
	cfg := storage.DefaultConfig()

	// Create the database explicitly first
	sqlite, err := storage.OpenSQLiteStore(filepath.Join(dir, "searches.db"), cfg.Namespace)
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}
	_ = sqlite.Put("news", "breaking news")
	sqlite.Close()

	s, err := storage.Open(dir, cfg)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	defer s.Close()

	if _, ok := s.(*storage.SQLiteStore); !ok {
		t.Fatalf("expected SQLiteStore, got %T", s)
	}
	if got := storage.ResolveBackend(dir, cfg); got != storage.BackendSQLite {
		t.Errorf("ResolveBackend = %q, want %q", got, storage.BackendSQLite)
	}
	if s.Get("news") != "breaking news" {
		t.Error("expected value from existing database")
	}
}

func TestResolveBackend(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		want    string
	}{
		{"auto without database", "", storage.BackendJSON},
		{"explicit json", storage.BackendJSON, storage.BackendJSON},
		{"explicit sqlite", storage.BackendSQLite, storage.BackendSQLite},
		{"explicit memory", storage.BackendMemory, storage.BackendMemory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := storage.DefaultConfig()
			cfg.Backend = tt.backend

			if got := storage.ResolveBackend(t.TempDir(), cfg); got != tt.want {
				t.Errorf("ResolveBackend = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadConfig_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.SearchURL != storage.DefaultConfig().SearchURL {
		t.Errorf("expected default search URL, got %q", cfg.SearchURL)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("expected config file to be created with defaults")
	}
}

func TestLoadConfig_FillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"searchURL": "https://duckduckgo.com/?q="}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.SearchURL != "https://duckduckgo.com/?q=" {
		t.Errorf("expected custom search URL, got %q", cfg.SearchURL)
	}
	if cfg.Namespace != storage.DefaultNamespace {
		t.Errorf("expected default namespace, got %q", cfg.Namespace)
	}
	if cfg.ShareMessage == "" {
		t.Error("expected default share message")
	}
}
