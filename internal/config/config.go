package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	_ "github.com/joho/godotenv/autoload"
)

// Config holds all configuration for the application
type Config struct {
	// TMDB API configuration
	TMDB TMDBConfig

	// Terminal UI configuration
	UI UIConfig

	// Logging configuration
	Log LogConfig
}

// TMDBConfig holds The Movie Database API settings
type TMDBConfig struct {
	APIKey       string        `env:"TMDB_API_KEY"`
	SearchURL    string        `env:"TMDB_SEARCH_URL" envDefault:"https://api.themoviedb.org/3/search/movie"`
	ImageBaseURL string        `env:"TMDB_IMAGE_BASE_URL" envDefault:"https://image.tmdb.org/t/p"`
	Language     string        `env:"TMDB_LANGUAGE" envDefault:"fr-FR"`
	Timeout      time.Duration `env:"TMDB_TIMEOUT" envDefault:"10s"`
	RateLimit    float64       `env:"TMDB_RATE_LIMIT" envDefault:"4"` // requests per second
	RateBurst    int           `env:"TMDB_RATE_BURST" envDefault:"4"`
}

// UIConfig holds search widget settings
type UIConfig struct {
	DebounceDelay time.Duration `env:"YMDB_DEBOUNCE" envDefault:"300ms"`
	PosterWidth   int           `env:"YMDB_POSTER_WIDTH" envDefault:"92"`
}

// LogConfig holds logger settings. File defaults to the XDG state directory.
type LogConfig struct {
	Level  string `env:"YMDB_LOG_LEVEL" envDefault:"info"`
	Format string `env:"YMDB_LOG_FORMAT" envDefault:"text"` // text or json
	File   string `env:"YMDB_LOG_FILE" envDefault:""`
}

// Load loads configuration from environment variables (and .env, if present)
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if c.TMDB.APIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is not set")
	}
	if _, err := url.ParseRequestURI(c.TMDB.SearchURL); err != nil {
		return fmt.Errorf("invalid TMDB search url %q: %w", c.TMDB.SearchURL, err)
	}
	if _, err := url.ParseRequestURI(c.TMDB.ImageBaseURL); err != nil {
		return fmt.Errorf("invalid TMDB image base url %q: %w", c.TMDB.ImageBaseURL, err)
	}
	if c.TMDB.Language == "" {
		return fmt.Errorf("TMDB language is required")
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("TMDB timeout must be positive")
	}
	if c.TMDB.RateLimit <= 0 || c.TMDB.RateBurst <= 0 {
		return fmt.Errorf("TMDB rate limit and burst must be positive")
	}

	if c.UI.DebounceDelay < 0 {
		return fmt.Errorf("debounce delay must not be negative")
	}
	if c.UI.PosterWidth <= 0 {
		return fmt.Errorf("invalid poster width: %d", c.UI.PosterWidth)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)",
			c.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log format: %s (must be text or json)",
			c.Log.Format)
	}

	return nil
}
