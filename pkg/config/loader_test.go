package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-router/mcp-router/pkg/models"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	return dir
}

func TestInitialize_Defaults(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultMemoryCacheSize, cfg.Cache.MemorySize)
	assert.Equal(t, DefaultDiskCacheSize, cfg.Cache.DiskSize)
	assert.Equal(t, "sqlite", cfg.Metadata.Backend)
	assert.Equal(t, DefaultHealthInterval, cfg.Health.Interval)
	assert.Empty(t, cfg.Servers)
}

func TestInitialize_JSONConfig(t *testing.T) {
	dir := writeConfig(t, "config.json", `{
		"openai_api_key": "sk-test",
		"servers": {
			"fs": {
				"name": "Filesystem",
				"transport_kind": "stdio",
				"command": "npx",
				"args": ["-y", "@modelcontextprotocol/server-filesystem", "/tmp"],
				"env": {"DEBUG": "1"},
				"capabilities": ["filesystem", "file_read"],
				"tags": ["local"]
			}
		},
		"health": {"interval": 60000000000}
	}`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	require.Contains(t, cfg.Servers, "fs")

	spec := cfg.Servers["fs"].Spec("fs")
	assert.Equal(t, models.TransportStdio, spec.Launch.Kind)
	assert.Equal(t, "npx", spec.Launch.Command)
	assert.Equal(t, []string{"filesystem", "file_read"}, spec.Capabilities)
	assert.Equal(t, time.Minute, cfg.Health.Interval)

	// Unset fields keep defaults after the merge.
	assert.Equal(t, DefaultMemoryCacheSize, cfg.Cache.MemorySize)
}

func TestInitialize_YAMLConfig(t *testing.T) {
	dir := writeConfig(t, "config.yaml", `
servers:
  search:
    transport_kind: stdio
    command: uvx
    args: ["mcp-server-search"]
    capabilities: [web_search]
`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	require.Contains(t, cfg.Servers, "search")
	assert.Equal(t, "uvx", cfg.Servers["search"].Command)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_ROUTER_ROOT", "/srv/files")

	dir := writeConfig(t, "config.json", `{
		"servers": {
			"fs": {
				"command": "npx",
				"args": ["{{.TEST_ROUTER_ROOT}}"]
			}
		}
	}`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"/srv/files"}, cfg.Servers["fs"].Args)
}

func TestInitialize_EnvKeyOverride(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-key")

	dir := writeConfig(t, "config.json", `{"anthropic_api_key": "file-key"}`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.AnthropicAPIKey)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{
			name: "stdio server without command",
			mutate: func(c *Config) {
				c.Servers = map[string]ServerConfig{"bad": {TransportKind: "stdio"}}
			},
			wantSub: "command",
		},
		{
			name: "remote server without url",
			mutate: func(c *Config) {
				c.Servers = map[string]ServerConfig{"bad": {TransportKind: "sse"}}
			},
			wantSub: "url",
		},
		{
			name: "unknown transport",
			mutate: func(c *Config) {
				c.Servers = map[string]ServerConfig{"bad": {TransportKind: "carrier-pigeon"}}
			},
			wantSub: "transport_kind",
		},
		{
			name: "uppercase capability",
			mutate: func(c *Config) {
				c.Servers = map[string]ServerConfig{"bad": {Command: "x", Capabilities: []string{"FileSystem"}}}
			},
			wantSub: "lowercase",
		},
		{
			name: "postgres without dsn",
			mutate: func(c *Config) {
				c.Metadata = MetadataConfig{Backend: "postgres"}
			},
			wantSub: "dsn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.wantSub)
		})
	}
}

func TestInitialize_MalformedJSON(t *testing.T) {
	dir := writeConfig(t, "config.json", `{"servers": `)
	_, err := Initialize(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
