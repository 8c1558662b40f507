package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}
		if config.Server.Addr() != "127.0.0.1:3000" {
			t.Errorf("expected addr 127.0.0.1:3000, got %s", config.Server.Addr())
		}
		if config.Lyrics.LRCLibURL != "https://lrclib.net/api" {
			t.Errorf("expected lrclib url https://lrclib.net/api, got %s", config.Lyrics.LRCLibURL)
		}
		if config.Lyrics.LyricsOVHURL != "https://api.lyrics.ovh/v1" {
			t.Errorf("expected lyrics.ovh url https://api.lyrics.ovh/v1, got %s", config.Lyrics.LyricsOVHURL)
		}
		if config.Lyrics.FallThroughOnFailure {
			t.Error("expected fall_through_on_failure to default to false")
		}
		if config.ML.URL != "http://localhost:8000" {
			t.Errorf("expected ml url http://localhost:8000, got %s", config.ML.URL)
		}
		if config.ML.Timeout.Duration != 30*time.Second {
			t.Errorf("expected ml timeout 30s, got %v", config.ML.Timeout)
		}
		if config.Credentials.Spotify.HasCredentials() {
			t.Error("expected placeholder spotify credentials to be rejected")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Server.StaticDir != DefaultConfig().Server.StaticDir {
			t.Errorf("created config static dir doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		testConfig := `[server]
host = "0.0.0.0"
port = 8080

[lyrics]
rate_limit = 2.5
fall_through_on_failure = true

[credentials.spotify]
client_id = "test_client_id"
client_secret = "test_secret"

[ml]
timeout = "5s"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}
		if config.Lyrics.RateLimit != 2.5 {
			t.Errorf("expected rate limit 2.5, got %v", config.Lyrics.RateLimit)
		}
		if !config.Lyrics.FallThroughOnFailure {
			t.Error("expected fall_through_on_failure to be true")
		}
		if !config.Credentials.Spotify.HasCredentials() {
			t.Error("expected spotify credentials to be set")
		}
		if config.ML.Timeout.Duration != 5*time.Second {
			t.Errorf("expected ml timeout 5s, got %v", config.ML.Timeout)
		}
		if config.Lyrics.LRCLibURL != "https://lrclib.net/api" {
			t.Errorf("expected missing keys to keep defaults, got lrclib url %q", config.Lyrics.LRCLibURL)
		}
	})

	t.Run("LoadConfig with bad duration", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[ml]\ntimeout = \"soon\"\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
