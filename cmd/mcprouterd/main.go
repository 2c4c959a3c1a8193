// mcprouterd is the MCP router daemon: it manages connections to MCP
// servers, routes queries to the right ones, and serves the HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mcp-router/mcp-router/pkg/adapter"
	"github.com/mcp-router/mcp-router/pkg/api"
	"github.com/mcp-router/mcp-router/pkg/cache"
	"github.com/mcp-router/mcp-router/pkg/cleanup"
	"github.com/mcp-router/mcp-router/pkg/config"
	"github.com/mcp-router/mcp-router/pkg/health"
	"github.com/mcp-router/mcp-router/pkg/metadata"
	"github.com/mcp-router/mcp-router/pkg/plugin"
	"github.com/mcp-router/mcp-router/pkg/registry"
	"github.com/mcp-router/mcp-router/pkg/router"
	"github.com/mcp-router/mcp-router/pkg/routing"
	"github.com/mcp-router/mcp-router/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// buildAnalyzer picks the LLM analyzer from the configured provider, or the
// first provider with an API key. A nil return means keyword-only analysis.
func buildAnalyzer(cfg *config.Config) routing.Analyzer {
	provider := cfg.Routing.Provider
	if provider == "" {
		switch {
		case cfg.OpenRouterAPIKey != "":
			provider = "openrouter"
		case cfg.OpenAIAPIKey != "":
			provider = "openai"
		case cfg.AnthropicAPIKey != "":
			provider = "anthropic"
		default:
			provider = "keyword"
		}
	}

	model := cfg.Routing.Model
	var (
		analyzer routing.Analyzer
		err      error
	)
	switch provider {
	case "openrouter":
		if model == "" {
			model = config.DefaultOpenRouterModel
		}
		analyzer, err = routing.NewOpenAIAnalyzer(cfg.OpenRouterAPIKey, model, routing.OpenRouterBaseURL)
	case "openai":
		if model == "" {
			model = config.DefaultOpenAIModel
		}
		analyzer, err = routing.NewOpenAIAnalyzer(cfg.OpenAIAPIKey, model, "")
	case "anthropic":
		if model == "" {
			model = config.DefaultAnthropicModel
		}
		analyzer, err = routing.NewAnthropicAnalyzer(cfg.AnthropicAPIKey, model)
	case "keyword":
		slog.Info("No LLM provider configured, using keyword analysis")
		return nil
	default:
		slog.Warn("Unknown LLM provider, using keyword analysis", "provider", provider)
		return nil
	}

	if err != nil {
		slog.Warn("Failed to initialize LLM analyzer, using keyword analysis",
			"provider", provider, "error", err)
		return nil
	}
	slog.Info("LLM analyzer initialized", "provider", provider, "model", model)
	return analyzer
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("MCPROUTER_CONFIG_DIR", config.DefaultConfigDir()),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err == nil {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting mcprouter", "version", version.Full(), "config_dir", *configDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// 1. Configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Result cache
	cacheMgr, err := cache.NewManager(cache.Options{
		MemorySize:  cfg.Cache.MemorySize,
		DiskSize:    cfg.Cache.DiskSize,
		Dir:         cfg.CacheDir(),
		DisableDisk: cfg.Cache.DisableDisk,
	})
	if err != nil {
		slog.Error("Failed to initialize cache", "error", err)
		os.Exit(1)
	}

	// 3. Server registry
	reg, err := registry.New(cfg.RegistryFile())
	if err != nil {
		slog.Error("Failed to load server registry", "error", err)
		os.Exit(1)
	}

	// 4. Metadata store
	var client *metadata.Client
	switch cfg.Metadata.Backend {
	case "postgres":
		client, err = metadata.OpenPostgres(ctx, cfg.Metadata.DSN)
	default:
		client, err = metadata.OpenSQLite(ctx, cfg.MetadataPath())
	}
	if err != nil {
		slog.Error("Failed to open metadata store",
			"backend", cfg.Metadata.Backend, "error", err)
		os.Exit(1)
	}
	store := metadata.NewStore(client)
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Error closing metadata store", "error", err)
		}
	}()
	slog.Info("Metadata store ready", "backend", cfg.Metadata.Backend)

	// 5. Adapters, routing, health, plugins
	adapters := adapter.NewManager(adapter.NewStdioAdapter())
	query := routing.New(reg, store, buildAnalyzer(cfg))
	monitor := health.NewMonitor(reg, store, adapters, health.Options{
		Interval:      cfg.Health.Interval,
		ProbeTimeout:  cfg.Health.ProbeTimeout,
		MaxConcurrent: int64(cfg.Health.MaxConcurrent),
	})
	plugins := plugin.NewManager(cfg.Plugins.ConfigDirs)

	// 6. Router facade
	rt := router.New(router.Options{
		Cache:    cacheMgr,
		Registry: reg,
		Store:    store,
		Adapters: adapters,
		Monitor:  monitor,
		Query:    query,
		Plugins:  plugins,
	})
	if err := rt.Initialize(ctx); err != nil {
		slog.Error("Failed to initialize router", "error", err)
		os.Exit(1)
	}
	defer rt.Shutdown()

	// 6a. Usage retention
	retention := cleanup.NewService(store, cleanup.Options{
		RetentionDays: cfg.Retention.UsageRetentionDays,
		Interval:      cfg.Retention.Interval,
	})
	retention.Start(ctx)
	defer retention.Stop()

	// 7. Preconfigured servers. Already-registered ids are re-registered so
	// config edits take effect; their health history survives.
	for id, sc := range cfg.Servers {
		if err := rt.RegisterServer(ctx, sc.Spec(id)); err != nil {
			slog.Warn("Failed to register configured server", "server", id, "error", err)
		}
	}

	// 8. HTTP API, serving until the shutdown signal
	server := api.NewServer(rt)
	if err := server.Start(ctx, cfg.API.ListenAddr); err != nil {
		slog.Error("HTTP server error", "error", err)
	}
	slog.Info("Shutdown complete")
}
