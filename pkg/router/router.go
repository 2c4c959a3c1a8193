// Package router is the public facade over the engine: cache, registry,
// metadata store, adapters, health monitor, query routing, and plugins. All
// external surfaces (API, CLI) talk to this package only.
package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mcp-router/mcp-router/pkg/adapter"
	"github.com/mcp-router/mcp-router/pkg/cache"
	"github.com/mcp-router/mcp-router/pkg/health"
	"github.com/mcp-router/mcp-router/pkg/metadata"
	"github.com/mcp-router/mcp-router/pkg/models"
	"github.com/mcp-router/mcp-router/pkg/plugin"
	"github.com/mcp-router/mcp-router/pkg/registry"
	"github.com/mcp-router/mcp-router/pkg/routing"
)

// Cache policy for the two cached operations.
const (
	routeTTL = 60 * time.Second
	routeTag = "route"
	execTTL  = 300 * time.Second
	execTag  = "exec"
)

// shutdownGrace bounds the wait for in-flight background work at shutdown.
const shutdownGrace = 5 * time.Second

// Options wires the facade's collaborators. Cache, Registry, Adapters, and
// Query are required; Store, Monitor, and Plugins may be nil for reduced
// deployments.
type Options struct {
	Cache    *cache.Manager
	Registry *registry.Registry
	Store    *metadata.Store
	Adapters *adapter.Manager
	Monitor  *health.Monitor
	Query    *routing.Router
	Plugins  *plugin.Manager
}

// Router is the facade. Safe for concurrent use.
type Router struct {
	cache    *cache.Manager
	registry *registry.Registry
	store    *metadata.Store
	adapters *adapter.Manager
	monitor  *health.Monitor
	query    *routing.Router
	plugins  *plugin.Manager

	// background tracks async work (server connects) so Shutdown can drain.
	background sync.WaitGroup

	logger *slog.Logger
}

// New creates the facade.
func New(opts Options) *Router {
	return &Router{
		cache:    opts.Cache,
		registry: opts.Registry,
		store:    opts.Store,
		adapters: opts.Adapters,
		monitor:  opts.Monitor,
		query:    opts.Query,
		plugins:  opts.Plugins,
		logger:   slog.With("subsystem", "router"),
	}
}

// Initialize starts the engine: cache sweeps, plugin loading, connections
// to every registered server, and the health monitor.
func (r *Router) Initialize(ctx context.Context) error {
	r.cache.Start(ctx)

	if r.plugins != nil {
		r.plugins.LoadAll(handle{r})
		for _, a := range r.plugins.Adapters() {
			r.adapters.Register(a)
		}
		strategies := r.plugins.Strategies()
		routingStrategies := make([]routing.Strategy, len(strategies))
		for i, s := range strategies {
			routingStrategies[i] = s
		}
		r.query.SetStrategies(routingStrategies)
	}

	for _, spec := range r.registry.ListAll() {
		r.connectAsync(ctx, spec)
	}

	if r.monitor != nil {
		r.monitor.Start(ctx)
	}

	r.logger.Info("Router initialized", "servers", len(r.registry.ListAll()))
	return nil
}

// Shutdown stops the engine in reverse order, waiting up to the grace
// period for in-flight background work.
func (r *Router) Shutdown() {
	if r.monitor != nil {
		r.monitor.Stop()
	}

	drained := make(chan struct{})
	go func() {
		r.background.Wait()
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(shutdownGrace):
		r.logger.Warn("Shutdown grace period expired with background work pending")
	}

	r.adapters.CloseAll()
	if r.plugins != nil {
		r.plugins.Shutdown()
	}
	r.cache.Stop()
	r.logger.Info("Router shut down")
}

// Route selects servers for a query. Router-extension plugins may intercept
// and short-circuit; otherwise results are cached for a minute under the
// "route" tag.
func (r *Router) Route(ctx context.Context, query string) models.RouteResult {
	if r.plugins != nil {
		for _, ext := range r.plugins.Extensions() {
			result, err := ext.Intercept(ctx, query)
			if err != nil {
				r.logger.Warn("Router extension failed", "plugin", ext.Name(), "error", err)
				continue
			}
			if result != nil {
				return *result
			}
		}
	}
	return r.routeCached(ctx, query)
}

func (r *Router) routeCached(ctx context.Context, query string) models.RouteResult {
	key := "route:" + query
	if data, ok := r.cache.Get(key); ok {
		var result models.RouteResult
		if err := json.Unmarshal(data, &result); err == nil {
			return result
		}
	}

	result := r.query.Route(ctx, query)
	if len(result.SelectedServers) == 0 {
		result.SelectedServers = []string{}
		result.Confidence = 0
	}

	if data, err := json.Marshal(result); err == nil {
		r.cache.Set(key, data, routeTTL, routeTag)
	}
	return result
}

// ExecRequest describes one tool invocation through the facade.
type ExecRequest struct {
	ServerID string
	Tool     string
	Args     map[string]any

	// NoCache bypasses the result cache for non-idempotent tools.
	NoCache bool
}

// ExecuteTool runs a tool on a server, caching successful results for five
// minutes under the "exec" tag and the server id. Every attempted
// invocation is recorded as usage, succeeded or not; argument validation
// failures never reach the adapter and record nothing.
func (r *Router) ExecuteTool(ctx context.Context, req ExecRequest) (*adapter.ToolResult, error) {
	if !r.registry.Has(req.ServerID) {
		return nil, fmt.Errorf("%w: %s", registry.ErrServerNotFound, req.ServerID)
	}

	key := execCacheKey(req)
	if !req.NoCache {
		if data, ok := r.cache.Get(key); ok {
			var result adapter.ToolResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result, nil
			}
		}
	}

	start := time.Now()
	result, err := r.adapters.ExecuteTool(ctx, req.ServerID, req.Tool, req.Args)
	duration := time.Since(start).Seconds()

	// Validation failures and missing connections never reached the server;
	// they leave no usage trail.
	var verr *adapter.ValidationError
	if errors.As(err, &verr) || errors.Is(err, adapter.ErrNotConnected) {
		return nil, err
	}

	r.recordUsage(ctx, models.UsageRecord{
		ServerID:  req.ServerID,
		ToolName:  req.Tool,
		StartedAt: start,
		Duration:  duration,
		Succeeded: err == nil,
	})
	if err != nil {
		return result, err
	}

	if !req.NoCache {
		if data, merr := json.Marshal(result); merr == nil {
			r.cache.Set(key, data, execTTL, execTag, req.ServerID)
		}
	}
	return result, nil
}

// execCacheKey builds the fingerprint for a tool invocation. Map keys are
// sorted by the JSON encoder, so equal argument sets produce equal keys.
func execCacheKey(req ExecRequest) string {
	args := req.Args
	if args == nil {
		args = map[string]any{}
	}
	canonical, err := json.Marshal(args)
	if err != nil {
		canonical = []byte("{}")
	}
	return fmt.Sprintf("exec:%s:%s:%s", req.ServerID, req.Tool, canonical)
}

func (r *Router) recordUsage(ctx context.Context, rec models.UsageRecord) {
	if r.store == nil {
		return
	}
	if err := r.store.AppendUsage(ctx, rec); err != nil {
		r.logger.Warn("Failed to record usage", "server", rec.ServerID, "tool", rec.ToolName, "error", err)
	}
}

// RegisterServer enters the server into the registry and metadata store,
// then connects it in the background. A connect failure leaves the server
// registered as Offline; the health monitor keeps retrying visibility.
func (r *Router) RegisterServer(ctx context.Context, spec models.ServerSpec) error {
	if _, err := r.adapters.AdapterFor(spec.Launch); err != nil {
		return err
	}
	if err := r.registry.Register(spec); err != nil {
		return err
	}
	if r.store != nil {
		if err := r.store.UpsertServer(ctx, spec, nil); err != nil {
			return fmt.Errorf("failed to persist server metadata: %w", err)
		}
	}

	r.cache.InvalidateTag(routeTag)
	r.connectAsync(ctx, spec)
	return nil
}

// connectAsync brings a server online in the background: connect, read its
// tool list into the metadata store, and run an immediate health check.
func (r *Router) connectAsync(ctx context.Context, spec models.ServerSpec) {
	r.background.Add(1)
	go func() {
		defer r.background.Done()

		if err := r.adapters.Connect(ctx, spec); err != nil {
			r.logger.Warn("Failed to connect server", "server", spec.ID, "error", err)
			if uerr := r.registry.UpdateHealth(spec.ID, models.StatusOffline, -1); uerr != nil {
				r.logger.Debug("Health update skipped", "server", spec.ID, "error", uerr)
			}
			if r.store != nil {
				if uerr := r.store.UpdateHealth(ctx, spec.ID, models.StatusOffline, -1); uerr != nil {
					r.logger.Debug("Durable health update skipped", "server", spec.ID, "error", uerr)
				}
			}
			return
		}

		if tools, err := r.adapters.ListTools(ctx, spec.ID); err == nil && r.store != nil {
			if uerr := r.store.UpdateTools(ctx, spec.ID, tools); uerr != nil {
				r.logger.Warn("Failed to persist tool list", "server", spec.ID, "error", uerr)
			}
		}

		if r.monitor != nil {
			r.monitor.Check(ctx, spec.ID)
		} else if err := r.registry.UpdateHealth(spec.ID, models.StatusOnline, -1); err != nil {
			r.logger.Debug("Health update skipped", "server", spec.ID, "error", err)
		}
	}()
}

// UnregisterServer disconnects the server and removes every trace of it:
// registry entry, metadata rows (cascading to tools, usage, and tags), and
// cache entries tagged with its id.
func (r *Router) UnregisterServer(ctx context.Context, id string) error {
	if err := r.adapters.Disconnect(id); err != nil && !errors.Is(err, adapter.ErrNotConnected) {
		r.logger.Warn("Failed to disconnect server", "server", id, "error", err)
	}

	known := r.registry.Unregister(id)
	if r.store != nil {
		if err := r.store.DeleteServer(ctx, id); err != nil && !errors.Is(err, metadata.ErrNotFound) {
			return err
		} else if err == nil {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("%w: %s", registry.ErrServerNotFound, id)
	}

	r.cache.InvalidateTag(id)
	r.cache.InvalidateTag(routeTag)
	return nil
}

// AnalyzeQuery exposes the query analysis step without routing.
func (r *Router) AnalyzeQuery(ctx context.Context, query string) models.QueryAnalysis {
	return r.query.Analyze(ctx, query)
}

// handle is the plugin.RouterHandle given to plugins. Its Route skips the
// extension chain so an extension calling back in cannot recurse into
// itself.
type handle struct {
	r *Router
}

func (h handle) ListServers() []models.ServerSpec {
	return h.r.registry.ListAll()
}

func (h handle) Route(ctx context.Context, query string) models.RouteResult {
	return h.r.routeCached(ctx, query)
}
