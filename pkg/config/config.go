package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/logtally/pkg/export"
)

// Load builds the configuration from defaults, the optional YAML file at
// path, a .env file in the working directory and LOGTALLY_* variables, in
// that order. An empty path skips the file.
func Load(_ context.Context, path string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and fills derived defaults.
func Validate(cfg *Config) error {
	switch cfg.Output {
	case "text", "json":
	case "":
		cfg.Output = DefaultOutput
	default:
		return fmt.Errorf("output: invalid format %q (must be text or json)", cfg.Output)
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
		cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	case "":
		cfg.LogLevel = DefaultLogLevel
	default:
		return fmt.Errorf("log_level: invalid level %q (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if err := validateExport(&cfg.Export); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateExport(ex *ExportConfig) error {
	if ex.Path == "" {
		if ex.Format != "" {
			if _, err := export.ParseFormat(ex.Format); err != nil {
				return err
			}
		}
		return nil
	}

	if ex.Format == "" {
		format, err := export.FormatFromPath(ex.Path)
		if err != nil {
			return fmt.Errorf("format is required: %w", err)
		}
		ex.Format = string(format)
		return nil
	}

	format, err := export.ParseFormat(ex.Format)
	if err != nil {
		return err
	}
	ex.Format = string(format)
	return nil
}

// ValidateWebhook checks a single webhook definition and fills its defaults.
func ValidateWebhook(wh *WebhookConfig) error {
	return validateWebhook(wh)
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("url must have a host")
	}

	// Expand environment variables in token
	wh.Token = expandEnvVar(wh.Token)

	if wh.Trigger != "" {
		switch wh.Trigger {
		case WebhookTriggerAlways, WebhookTriggerOnMatch, WebhookTriggerNever:
			// Valid
		default:
			return fmt.Errorf("invalid trigger %q (must be always, on_match, or never)", wh.Trigger)
		}
	} else {
		wh.Trigger = WebhookTriggerAlways
	}

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	// Handle ${VAR} format
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}

	// Handle $VAR format (no braces)
	if strings.HasPrefix(s, "$") {
		return os.Getenv(s[1:])
	}

	return s
}
