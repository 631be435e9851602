package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Default values for configuration.
const (
	DefaultOutput         = "text"
	DefaultLogLevel       = "warn"
	DefaultWebhookTimeout = 10 * time.Second
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
		Webhooks: []WebhookConfig{},
	}
}

// applyEnvironmentOverrides applies LOGTALLY_* environment variables on top
// of the file values. Unset variables leave fields untouched.
func (c *Config) applyEnvironmentOverrides() error {
	return env.Parse(c)
}
