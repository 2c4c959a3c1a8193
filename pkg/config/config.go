// Package config loads and validates the router configuration.
//
// The configuration lives in a single config.json (or config.yaml) file in
// the user config directory. Environment variables are expanded with
// {{.VAR_NAME}} template syntax before parsing, and the three LLM API keys
// may additionally be overridden directly from the environment.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/mcp-router/mcp-router/pkg/models"
)

// Config is the fully merged, validated router configuration.
type Config struct {
	// LLM provider API keys for query analysis. All optional; when none is
	// set the router falls back to keyword analysis.
	OpenRouterAPIKey string `json:"openrouter_api_key,omitempty" yaml:"openrouter_api_key,omitempty"`
	OpenAIAPIKey     string `json:"openai_api_key,omitempty" yaml:"openai_api_key,omitempty"`
	AnthropicAPIKey  string `json:"anthropic_api_key,omitempty" yaml:"anthropic_api_key,omitempty"`

	// Servers are the preconfigured MCP servers connected at startup.
	Servers map[string]ServerConfig `json:"servers,omitempty" yaml:"servers,omitempty"`

	// DataDir roots the registry file, metadata database, and cache
	// directory. Defaults to <user-data-dir>/mcprouter.
	DataDir string `json:"data_dir,omitempty" yaml:"data_dir,omitempty"`

	Cache     CacheConfig     `json:"cache,omitempty" yaml:"cache,omitempty"`
	Metadata  MetadataConfig  `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Health    HealthConfig    `json:"health,omitempty" yaml:"health,omitempty"`
	Routing   RoutingConfig   `json:"routing,omitempty" yaml:"routing,omitempty"`
	Retention RetentionConfig `json:"retention,omitempty" yaml:"retention,omitempty"`
	Plugins   PluginConfig    `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	API       APIConfig       `json:"api,omitempty" yaml:"api,omitempty"`
}

// ServerConfig describes one preconfigured MCP server.
type ServerConfig struct {
	Name          string            `json:"name,omitempty" yaml:"name,omitempty"`
	Description   string            `json:"description,omitempty" yaml:"description,omitempty"`
	TransportKind string            `json:"transport_kind,omitempty" yaml:"transport_kind,omitempty"`
	Command       string            `json:"command,omitempty" yaml:"command,omitempty"`
	Args          []string          `json:"args,omitempty" yaml:"args,omitempty"`
	Env           map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
	URL           string            `json:"url,omitempty" yaml:"url,omitempty"`
	Capabilities  []string          `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
	Tags          []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// LaunchSpec converts the server entry into the engine's launch spec.
func (s ServerConfig) LaunchSpec() models.LaunchSpec {
	kind := models.TransportKind(s.TransportKind)
	if kind == "" {
		kind = models.TransportStdio
	}
	return models.LaunchSpec{
		Kind:    kind,
		Command: s.Command,
		Args:    s.Args,
		Env:     s.Env,
		URL:     s.URL,
	}
}

// Spec converts the server entry into a full server spec.
func (s ServerConfig) Spec(id string) models.ServerSpec {
	return models.ServerSpec{
		ID:           id,
		Name:         s.Name,
		Description:  s.Description,
		Launch:       s.LaunchSpec(),
		Capabilities: s.Capabilities,
		Tags:         s.Tags,
	}
}

// CacheConfig bounds the two cache tiers.
type CacheConfig struct {
	MemorySize int    `json:"memory_size,omitempty" yaml:"memory_size,omitempty"`
	DiskSize   int    `json:"disk_size,omitempty" yaml:"disk_size,omitempty"`
	Dir        string `json:"dir,omitempty" yaml:"dir,omitempty"`
	// Disk may be disabled entirely; the memory tier always runs.
	DisableDisk bool `json:"disable_disk,omitempty" yaml:"disable_disk,omitempty"`
}

// MetadataConfig selects the metadata store backend.
// Backend "sqlite" (default) stores metadata.db under DataDir;
// "postgres" connects with the pgx driver using DSN.
type MetadataConfig struct {
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	DSN     string `json:"dsn,omitempty" yaml:"dsn,omitempty"`
}

// HealthConfig tunes the health monitor.
type HealthConfig struct {
	Interval      time.Duration `json:"interval,omitempty" yaml:"interval,omitempty"`
	ProbeTimeout  time.Duration `json:"probe_timeout,omitempty" yaml:"probe_timeout,omitempty"`
	MaxConcurrent int           `json:"max_concurrent,omitempty" yaml:"max_concurrent,omitempty"`
}

// RoutingConfig selects the LLM used for query analysis. Provider "" picks
// the first provider with an API key configured, in the order openrouter,
// openai, anthropic; "keyword" disables LLM analysis entirely.
type RoutingConfig struct {
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
	Model    string `json:"model,omitempty" yaml:"model,omitempty"`
}

// RetentionConfig controls the background pruning of old usage records.
// UsageRetentionDays <= 0 disables pruning.
type RetentionConfig struct {
	UsageRetentionDays int           `json:"usage_retention_days,omitempty" yaml:"usage_retention_days,omitempty"`
	Interval           time.Duration `json:"interval,omitempty" yaml:"interval,omitempty"`
}

// PluginConfig points at the per-plugin JSON config directories.
type PluginConfig struct {
	ConfigDirs []string `json:"config_dirs,omitempty" yaml:"config_dirs,omitempty"`
}

// APIConfig configures the HTTP surface.
type APIConfig struct {
	ListenAddr string `json:"listen_addr,omitempty" yaml:"listen_addr,omitempty"`
}

// RegistryFile returns the path of the persisted server registry.
func (c *Config) RegistryFile() string {
	return filepath.Join(c.DataDir, "server_registry.json")
}

// MetadataPath returns the SQLite database path (sqlite backend only).
func (c *Config) MetadataPath() string {
	if c.Metadata.Path != "" {
		return c.Metadata.Path
	}
	return filepath.Join(c.DataDir, "metadata.db")
}

// CacheDir returns the disk cache root.
func (c *Config) CacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	return filepath.Join(c.DataDir, "cache")
}

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "mcprouter")
	}
	return "./config"
}

// DefaultDataDir returns the per-user data directory, honoring XDG_DATA_HOME.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "mcprouter")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "mcprouter")
	}
	return "./data"
}
