package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Backend  BackendConfig  `toml:"backend"`
	Cache    CacheConfig    `toml:"cache"`
	Player   PlayerConfig   `toml:"player"`
	Defaults DefaultsConfig `toml:"defaults"`
}

// BackendConfig contains connection settings for the MoodTunes backend.
type BackendConfig struct {
	BaseURL      string `toml:"base_url"`
	CallbackAddr string `toml:"callback_addr"`
	TimeoutSecs  int    `toml:"timeout_secs"`
}

// CacheConfig contains offline asset cache settings.
type CacheConfig struct {
	Path         string `toml:"path"`
	Version      string `toml:"version"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// PlayerConfig contains audio preview playback settings.
type PlayerConfig struct {
	// Volume is a gain in the range (0, 1]; previews play at this fixed level.
	Volume float64 `toml:"volume"`
}

// DefaultsConfig contains request defaults applied when a field is omitted.
type DefaultsConfig struct {
	Language  string `toml:"language"`
	Genre     string `toml:"genre"`
	Era       string `toml:"era"`
	SongCount int    `toml:"song_count"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, err)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
