package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	MinQueryChars   int   `toml:"min_query_chars"`  // autocomplete arms at this many characters
	SuggestionLimit int   `toml:"suggestion_limit"` // candidates requested per lookup
	HistoryLimit    int   `toml:"history_limit"`    // searches kept in the history ring
	Units           Units `toml:"units"`
}

// Units selects the measurement units for weather requests
type Units struct {
	Temperature   string `toml:"temperature"`   // "celsius" or "fahrenheit"
	WindSpeed     string `toml:"wind_speed"`    // "kmh", "ms", "mph", "kn"
	Precipitation string `toml:"precipitation"` // "mm" or "inch"
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// service is the concrete implementation
type service struct {
	filePath string
}

// NewService creates a config service rooted in the user config directory
func NewService() Service {
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

	return &service{filePath: filepath.Join(dir, "config.toml")}
}

// Load reads the configuration, returning defaults when no file exists
func (s *service) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return Default(), nil
	}
	return s.LoadFromPath(s.filePath)
}

// Save writes the configuration to the default location
func (s *service) Save(config *Config) error {
	return s.SaveToPath(config, s.filePath)
}

// LoadFromPath loads configuration from a specific path
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (s *service) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalize clamps nonsensical values back to the defaults
func (c *Config) normalize() {
	if c.MinQueryChars < 1 {
		c.MinQueryChars = 3
	}
	if c.SuggestionLimit < 1 {
		c.SuggestionLimit = 10
	}
	if c.HistoryLimit < 1 {
		c.HistoryLimit = 50
	}
	if c.Units.Temperature == "" {
		c.Units.Temperature = "celsius"
	}
	if c.Units.WindSpeed == "" {
		c.Units.WindSpeed = "kmh"
	}
	if c.Units.Precipitation == "" {
		c.Units.Precipitation = "mm"
	}
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		MinQueryChars:   3,
		SuggestionLimit: 10,
		HistoryLimit:    50,
		Units: Units{
			Temperature:   "celsius",
			WindSpeed:     "kmh",
			Precipitation: "mm",
		},
	}
}
