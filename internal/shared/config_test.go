package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Backend.BaseURL != "http://localhost:8000" {
		t.Errorf("unexpected base URL %q", config.Backend.BaseURL)
	}
	if config.Cache.Version != "moodtunes-v1" {
		t.Errorf("unexpected cache version %q", config.Cache.Version)
	}
	if config.Player.Volume <= 0 || config.Player.Volume > 1 {
		t.Errorf("volume out of range: %v", config.Player.Volume)
	}
	if config.Defaults.Language != "any" || config.Defaults.Genre != "any" || config.Defaults.Era != "any" {
		t.Error("expected filter defaults of any")
	}
	if config.Defaults.SongCount != 5 {
		t.Errorf("expected default song count 5, got %d", config.Defaults.SongCount)
	}
}

func TestCreateConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := CreateConfigFile(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected template to load, got %v", err)
	}
	if config.Backend.BaseURL == "" {
		t.Error("expected backend base URL in template")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")

		content := `[backend]
base_url = "http://example.com:9000"
callback_addr = "127.0.0.1:9876"
timeout_secs = 10

[cache]
path = "cache.db"
version = "moodtunes-v2"

[player]
volume = 0.8

[defaults]
language = "english"
genre = "jazz"
era = "90s"
song_count = 10
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if config.Backend.BaseURL != "http://example.com:9000" {
			t.Errorf("unexpected base URL %q", config.Backend.BaseURL)
		}
		if config.Cache.Version != "moodtunes-v2" {
			t.Errorf("unexpected version %q", config.Cache.Version)
		}
		if config.Defaults.SongCount != 10 {
			t.Errorf("unexpected song count %d", config.Defaults.SongCount)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.toml")
		if err := os.WriteFile(path, []byte("[backend\nbase_url ="), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for malformed toml")
		}
	})
}
