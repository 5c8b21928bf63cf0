package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists history entries as a pretty-printed JSON array
type Store struct {
	filePath string
}

// NewStore creates a store rooted in the user config directory
func NewStore() *Store {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "skycast")
	os.MkdirAll(dir, 0755)

	return &Store{filePath: filepath.Join(dir, "history.json")}
}

// NewStoreAtPath creates a store backed by a specific file
func NewStoreAtPath(path string) *Store {
	return &Store{filePath: path}
}

// Load reads the persisted history. An absent or unreadable or corrupt
// file yields an empty list, never an error the caller has to handle -
// history that doesn't survive is an acceptable outcome.
func (s *Store) Load() []Entry {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return entries
}

// Save writes the entries as indented JSON
func (s *Store) Save(entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}
