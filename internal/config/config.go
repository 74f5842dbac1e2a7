// Package config reads anchorlog configuration from ANCHORLOG_* env vars.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/mr-tron/base58"
)

// Config holds all anchorlog configuration.
type Config struct {
	Program  string `env:"ANCHORLOG_PROGRAM"`
	Strict   bool   `env:"ANCHORLOG_STRICT" envDefault:"false"`
	Filter   string `env:"ANCHORLOG_FILTER"`
	LogLevel string `env:"ANCHORLOG_LOG_LEVEL" envDefault:"info"`
	Source   SourceConfig
	Output   OutputConfig
}

// SourceConfig holds line-source settings.
type SourceConfig struct {
	Kind string `env:"ANCHORLOG_SOURCE" envDefault:"stdin"`
	Path string `env:"ANCHORLOG_PATH"`
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	Format     string `env:"ANCHORLOG_OUTPUT" envDefault:"stdout"`
	Path       string `env:"ANCHORLOG_OUTPUT_PATH"`
	WebhookURL string `env:"ANCHORLOG_WEBHOOK_URL"`
	Verbosity  string `env:"ANCHORLOG_VERBOSITY" envDefault:"standard"`
	Pretty     bool   `env:"ANCHORLOG_PRETTY" envDefault:"false"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ValidateProgram checks that id is a base58-encoded 32-byte public key.
// The engine itself treats identifiers as opaque strings; this guards the
// operational surface, where a real program address is expected.
func ValidateProgram(id string) error {
	raw, err := base58.Decode(id)
	if err != nil {
		return fmt.Errorf("program id %q: %w", id, err)
	}
	if len(raw) != 32 {
		return fmt.Errorf("program id %q: decoded to %d bytes, want 32", id, len(raw))
	}
	return nil
}
