package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/mcp-router/mcp-router/pkg/models"
)

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Locate config.json or config.yaml in configDir
//  2. Expand environment variables in the raw content
//  3. Parse into Config
//  4. Merge over built-in defaults
//  5. Apply API key environment overrides
//  6. Validate
func Initialize(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	log := slog.With("config_dir", configDir)

	cfg, path, err := load(configDir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		log.Info("No configuration file found, using defaults")
	} else {
		log.Info("Loaded configuration", "path", path, "servers", len(cfg.Servers))
	}

	merged := defaults()
	if err := mergo.Merge(&merged, cfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}

	applyEnvOverrides(&merged)

	if err := merged.Validate(); err != nil {
		return nil, err
	}

	return &merged, nil
}

// load reads the first config file present. Returns a zero Config and empty
// path when no file exists; a missing file is not an error because every
// setting has a default.
func load(configDir string) (Config, string, error) {
	candidates := []string{
		filepath.Join(configDir, "config.json"),
		filepath.Join(configDir, "config.yaml"),
		filepath.Join(configDir, "config.yml"),
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, "", fmt.Errorf("failed to read %s: %w", path, err)
		}

		data = ExpandEnv(data)

		var cfg Config
		if strings.HasSuffix(path, ".json") {
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, "", fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
			}
		} else {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, "", fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
			}
		}
		return cfg, path, nil
	}

	return Config{}, "", nil
}

// applyEnvOverrides lets the standard environment variables win over
// file-provided API keys.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		cfg.OpenRouterAPIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAIAPIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.AnthropicAPIKey = v
	}
}

// Validate checks the merged configuration for internal consistency.
func (c *Config) Validate() error {
	var errs []error

	for id, srv := range c.Servers {
		kind := models.TransportKind(srv.TransportKind)
		switch kind {
		case "", models.TransportStdio:
			if srv.Command == "" {
				errs = append(errs, &ValidationError{
					Component: "server", ID: id, Field: "command",
					Err: ErrMissingRequiredField,
				})
			}
		case models.TransportHTTP, models.TransportSSE:
			if srv.URL == "" {
				errs = append(errs, &ValidationError{
					Component: "server", ID: id, Field: "url",
					Err: ErrMissingRequiredField,
				})
			}
		default:
			errs = append(errs, &ValidationError{
				Component: "server", ID: id, Field: "transport_kind",
				Err: fmt.Errorf("%w: %q", ErrInvalidValue, srv.TransportKind),
			})
		}
		for _, cap := range srv.Capabilities {
			if cap != strings.ToLower(cap) {
				errs = append(errs, &ValidationError{
					Component: "server", ID: id, Field: "capabilities",
					Err: fmt.Errorf("%w: capability %q must be lowercase", ErrInvalidValue, cap),
				})
			}
		}
	}

	switch c.Metadata.Backend {
	case "", "sqlite":
	case "postgres":
		if c.Metadata.DSN == "" {
			errs = append(errs, &ValidationError{
				Component: "metadata", ID: "postgres", Field: "dsn",
				Err: ErrMissingRequiredField,
			})
		}
	default:
		errs = append(errs, &ValidationError{
			Component: "metadata", ID: c.Metadata.Backend,
			Err: fmt.Errorf("%w: unknown backend", ErrInvalidValue),
		})
	}

	if c.Cache.MemorySize < 0 || c.Cache.DiskSize < 0 {
		errs = append(errs, &ValidationError{
			Component: "cache", ID: "sizes",
			Err: fmt.Errorf("%w: tier sizes must be non-negative", ErrInvalidValue),
		})
	}

	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return fmt.Errorf("%w:\n  %s", ErrValidationFailed, strings.Join(msgs, "\n  "))
	}
	return nil
}
