package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.TMDB.APIKey)
	assert.Equal(t, "https://api.themoviedb.org/3/search/movie", cfg.TMDB.SearchURL)
	assert.Equal(t, "fr-FR", cfg.TMDB.Language)
	assert.Equal(t, 10*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, 300*time.Millisecond, cfg.UI.DebounceDelay)
	assert.Equal(t, 92, cfg.UI.PosterWidth)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "secret")
	t.Setenv("TMDB_LANGUAGE", "en-US")
	t.Setenv("YMDB_DEBOUNCE", "150ms")
	t.Setenv("YMDB_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.Equal(t, 150*time.Millisecond, cfg.UI.DebounceDelay)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TMDB_API_KEY")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			TMDB: TMDBConfig{
				APIKey:       "k",
				SearchURL:    "https://api.themoviedb.org/3/search/movie",
				ImageBaseURL: "https://image.tmdb.org/t/p",
				Language:     "fr-FR",
				Timeout:      time.Second,
				RateLimit:    4,
				RateBurst:    4,
			},
			UI:  UIConfig{DebounceDelay: 300 * time.Millisecond, PosterWidth: 92},
			Log: LogConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero debounce allowed", func(c *Config) { c.UI.DebounceDelay = 0 }, false},
		{"bad search url", func(c *Config) { c.TMDB.SearchURL = "not a url" }, true},
		{"empty language", func(c *Config) { c.TMDB.Language = "" }, true},
		{"negative debounce", func(c *Config) { c.UI.DebounceDelay = -time.Millisecond }, true},
		{"zero poster width", func(c *Config) { c.UI.PosterWidth = 0 }, true},
		{"zero rate", func(c *Config) { c.TMDB.RateLimit = 0 }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
