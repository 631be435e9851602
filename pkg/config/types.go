// Package config provides configuration loading and validation for logtally.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
// Fields tagged env can be overridden from the environment.
type Config struct {
	// Output is the report format (text or json).
	Output string `yaml:"output" env:"LOGTALLY_OUTPUT"`

	// NoColor disables terminal colors in text output.
	NoColor bool `yaml:"no_color" env:"LOGTALLY_NO_COLOR"`

	// LogLevel is the diagnostic log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" env:"LOGTALLY_LOG_LEVEL"`

	// Export optionally writes the selected records to a file.
	Export ExportConfig `yaml:"export"`

	// Webhooks receive the JSON report after each run.
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// ExportConfig defines where and how records are exported.
type ExportConfig struct {
	// Path is the output file. Export is disabled when empty.
	Path string `yaml:"path" env:"LOGTALLY_EXPORT_PATH"`

	// Format is jsonl, csv or parquet. Inferred from Path when empty.
	Format string `yaml:"format" env:"LOGTALLY_EXPORT_FORMAT"`
}

// Enabled reports whether an export path is configured.
func (e ExportConfig) Enabled() bool {
	return e.Path != ""
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerAlways fires after every run with records (default).
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerOnMatch fires only when a level filter matched records.
	WebhookTriggerOnMatch WebhookTrigger = "on_match"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "always" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
