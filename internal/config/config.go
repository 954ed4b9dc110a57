// Package config loads program configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all externally observable knobs. The server URL is the
// only configuration the core workflow depends on; the rest configure
// the local journal and HTTP behavior.
type Config struct {
	ServerURL   string        `env:"SKILLSCOPE_SERVER_URL" envDefault:"http://localhost:8000"`
	DBPath      string        `env:"SKILLSCOPE_DB"`
	HTTPTimeout time.Duration `env:"SKILLSCOPE_HTTP_TIMEOUT" envDefault:"60s"`
	UseRAG      bool          `env:"SKILLSCOPE_USE_RAG" envDefault:"true"`
}

// Load reads .env (when present) and parses the environment.
func Load() (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the server URL is usable.
func (c *Config) Validate() error {
	u := strings.TrimSpace(c.ServerURL)
	if u == "" {
		return fmt.Errorf("SKILLSCOPE_SERVER_URL must not be empty")
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return fmt.Errorf("SKILLSCOPE_SERVER_URL must start with http:// or https://, got %q", u)
	}
	return nil
}
