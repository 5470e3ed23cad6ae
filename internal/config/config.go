package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime configuration for the brewnote service.
// Environment variables are parsed from the BREWNOTE prefix,
// e.g. BREWNOTE_HTTP_PORT, BREWNOTE_STATE_HOME.
type Config struct {
	// HTTP Configuration. The server binds loopback only; the journal is a
	// single-user, on-device application.
	HTTPHost string `envconfig:"HTTP_HOST" default:"127.0.0.1"`
	HTTPPort int    `envconfig:"HTTP_PORT" default:"8077"`

	// StateHome overrides the directory holding the journal database.
	// Empty means ~/.brewnote.
	StateHome string `envconfig:"STATE_HOME" default:""`

	// LogLevel is a zerolog level string: debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// TickIntervalMs is the pour-timer clock cadence in milliseconds.
	// The timer state machine counts tenths of a second, so the default is 100.
	TickIntervalMs int `envconfig:"TICK_INTERVAL_MS" default:"100"`
}

// Validate checks ranges that envconfig cannot express.
func (c *Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}
	if c.TickIntervalMs <= 0 {
		return fmt.Errorf("invalid TICK_INTERVAL_MS: %d", c.TickIntervalMs)
	}
	return nil
}

// New creates a Config by parsing BREWNOTE_-prefixed environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("BREWNOTE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetHTTPAddr returns the listen address for the HTTP server.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

// TickInterval returns the pour-timer tick cadence as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}
