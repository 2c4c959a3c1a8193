package router

import (
	"context"
	"sort"
	"strings"

	"github.com/mcp-router/mcp-router/pkg/adapter"
	"github.com/mcp-router/mcp-router/pkg/cache"
	"github.com/mcp-router/mcp-router/pkg/metadata"
	"github.com/mcp-router/mcp-router/pkg/models"
	"github.com/mcp-router/mcp-router/pkg/plugin"
)

// Read-only views over the engine. Live state (health, connections) comes
// from the registry and adapter manager; durable state (tools, tags, usage)
// prefers the metadata store and falls back to the registry when the store
// is absent.

// GetServer returns the spec and current health of one server.
func (r *Router) GetServer(id string) (models.ServerSpec, models.HealthSnapshot, error) {
	return r.registry.Lookup(id)
}

// GetServers returns every registered server, sorted by id.
func (r *Router) GetServers() []models.ServerSpec {
	return r.registry.ListAll()
}

// GetServerHealth returns the live health snapshot for one server.
func (r *Router) GetServerHealth(id string) (models.HealthSnapshot, error) {
	return r.registry.Health(id)
}

// GetAllServerHealth returns the live health snapshot of every server.
func (r *Router) GetAllServerHealth() map[string]models.HealthSnapshot {
	return r.registry.AllHealth()
}

// GetServerMetadata returns the durable record for one server: spec, tool
// list, and last persisted health.
func (r *Router) GetServerMetadata(ctx context.Context, id string) (*metadata.ServerRecord, error) {
	if r.store != nil {
		return r.store.ReadServer(ctx, id)
	}

	spec, health, err := r.registry.Lookup(id)
	if err != nil {
		return nil, err
	}
	rec := &metadata.ServerRecord{Spec: spec, Health: health}
	if tools, terr := r.adapters.ListTools(ctx, id); terr == nil {
		rec.Tools = tools
	}
	return rec, nil
}

// GetServersByCapability returns the online servers advertising the
// capability.
func (r *Router) GetServersByCapability(cap string) []string {
	return r.registry.ByCapability(cap)
}

// GetServersByTag returns the ids of servers carrying the tag, sorted.
func (r *Router) GetServersByTag(ctx context.Context, tag string) ([]string, error) {
	if r.store != nil {
		return r.store.ByTag(ctx, tag)
	}

	var ids []string
	for _, spec := range r.registry.ListAll() {
		for _, t := range spec.Tags {
			if t == tag {
				ids = append(ids, spec.ID)
				break
			}
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// GetAllCapabilities returns every known capability with the number of
// servers advertising it.
func (r *Router) GetAllCapabilities(ctx context.Context) (map[string]int, error) {
	if r.store != nil {
		return r.store.AllCapabilities(ctx)
	}

	counts := make(map[string]int)
	for _, spec := range r.registry.ListAll() {
		for _, cap := range spec.Capabilities {
			counts[strings.ToLower(cap)]++
		}
	}
	return counts, nil
}

// GetAllTags returns every tag in use, sorted.
func (r *Router) GetAllTags(ctx context.Context) ([]string, error) {
	if r.store != nil {
		return r.store.AllTags(ctx)
	}

	seen := make(map[string]struct{})
	for _, spec := range r.registry.ListAll() {
		for _, tag := range spec.Tags {
			seen[tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}

// GetTools returns the server's advertised tools from the live connection.
func (r *Router) GetTools(ctx context.Context, id string) ([]models.ToolInfo, error) {
	return r.adapters.ListTools(ctx, id)
}

// RefreshTools re-reads the server's tool list and persists it.
func (r *Router) RefreshTools(ctx context.Context, id string) ([]models.ToolInfo, error) {
	tools, err := r.adapters.RefreshTools(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.store != nil {
		if uerr := r.store.UpdateTools(ctx, id, tools); uerr != nil {
			r.logger.Warn("Failed to persist tool list", "server", id, "error", uerr)
		}
	}
	return tools, nil
}

// GetUsageStats aggregates usage records for one server. windowDays <= 0
// uses the default window.
func (r *Router) GetUsageStats(ctx context.Context, id string, windowDays int) (*models.UsageStats, error) {
	if r.store == nil {
		return nil, metadata.ErrNotFound
	}
	return r.store.UsageStats(ctx, id, windowDays)
}

// GetCacheStats returns per-tier cache statistics.
func (r *Router) GetCacheStats() map[string]cache.TierStats {
	return r.cache.Stats()
}

// ClearCache drops every cached entry from both tiers.
func (r *Router) ClearCache() {
	r.cache.Clear()
}

// InvalidateRoutes drops cached routing decisions, forcing fresh selection
// on the next queries. Called after registration changes.
func (r *Router) InvalidateRoutes() int {
	return r.cache.InvalidateTag(routeTag)
}

// GetPlugin returns one active plugin by name.
func (r *Router) GetPlugin(name string) (plugin.Plugin, bool) {
	if r.plugins == nil {
		return nil, false
	}
	return r.plugins.Get(name)
}

// GetAllPlugins returns the active plugin names, sorted.
func (r *Router) GetAllPlugins() []string {
	if r.plugins == nil {
		return nil
	}
	return r.plugins.Names()
}

// GetAdapter returns the adapter that would serve the launch spec.
func (r *Router) GetAdapter(spec models.LaunchSpec) (adapter.Adapter, error) {
	return r.adapters.AdapterFor(spec)
}

// GetAllAdapters returns the registered adapters in selection order.
func (r *Router) GetAllAdapters() []adapter.Adapter {
	return r.adapters.Adapters()
}
