package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Storage backends accepted in Config.Backend.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	Backend      string `json:"backend"`   // "", "json", "sqlite" or "memory"
	Namespace    string `json:"namespace"` // key/value namespace name
	SearchURL    string `json:"searchURL"` // the encoded query is appended to this
	ShareSubject string `json:"shareSubject"`
	ShareMessage string `json:"shareMessage"` // %s is replaced by the search URL
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Backend:      "",
		Namespace:    DefaultNamespace,
		SearchURL:    "https://mobile.twitter.com/search?q=",
		ShareSubject: "Twitter search that might interest you",
		ShareMessage: "Check out the results of this Twitter search: %s",
	}
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.Namespace == "" {
		config.Namespace = defaults.Namespace
	}
	if config.SearchURL == "" {
		config.SearchURL = defaults.SearchURL
	}
	if config.ShareSubject == "" {
		config.ShareSubject = defaults.ShareSubject
	}
	if config.ShareMessage == "" {
		config.ShareMessage = defaults.ShareMessage
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/tagsearch/config.json
func DefaultConfigFilePath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
