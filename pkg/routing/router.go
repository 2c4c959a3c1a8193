package routing

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/mcp-router/mcp-router/pkg/models"
	"github.com/mcp-router/mcp-router/pkg/registry"
)

// TaskSearcher is the metadata-store fallback used when capability matching
// produces nothing.
type TaskSearcher interface {
	FindServersForTask(ctx context.Context, text string) ([]string, error)
}

// Strategy is an installed routing-strategy plugin. When strategies are
// present they bypass the analyzer cascade entirely.
type Strategy interface {
	Name() string
	Route(ctx context.Context, query string) ([]string, float64, error)
}

// Router turns a query into candidate server ids with a confidence.
type Router struct {
	registry *registry.Registry
	searcher TaskSearcher
	analyzer Analyzer // nil = keyword only

	mu         sync.RWMutex
	strategies []Strategy

	logger *slog.Logger
}

// New creates a router. analyzer may be nil, in which case only the keyword
// heuristic runs.
func New(reg *registry.Registry, searcher TaskSearcher, analyzer Analyzer) *Router {
	return &Router{
		registry: reg,
		searcher: searcher,
		analyzer: analyzer,
		logger:   slog.With("subsystem", "routing"),
	}
}

// SetStrategies installs the routing-strategy plugins, replacing any
// previous set.
func (r *Router) SetStrategies(strategies []Strategy) {
	r.mu.Lock()
	r.strategies = strategies
	r.mu.Unlock()
}

// Route selects servers for the query. Installed strategies short-circuit
// the analysis; the winner is the strategy reporting the highest confidence,
// ties broken by name.
func (r *Router) Route(ctx context.Context, query string) models.RouteResult {
	result := models.RouteResult{Query: query}

	if servers, confidence, ok := r.routeViaStrategies(ctx, query); ok {
		result.SelectedServers = servers
		result.Confidence = confidence
		return result
	}

	analysis := r.Analyze(ctx, query)
	result.Confidence = analysis.Confidence
	result.SelectedServers = r.selectServers(ctx, query, analysis.RequiredCapabilities)
	return result
}

// Analyze runs the LLM analyzer when one is configured, falling back to the
// keyword heuristic on error or malformed output.
func (r *Router) Analyze(ctx context.Context, query string) models.QueryAnalysis {
	capabilities := r.registry.AllCapabilities()

	if r.analyzer != nil {
		analysis, err := r.analyzer.AnalyzeQuery(ctx, query, capabilities)
		if err == nil {
			return analysis
		}
		r.logger.Warn("LLM analysis failed, using keyword fallback", "error", err)
	}
	return KeywordAnalyze(query, capabilities)
}

// selectServers runs the cascade: capabilities with require-all, then
// require-any, then the metadata task search, then every online server.
func (r *Router) selectServers(ctx context.Context, query string, caps []string) []string {
	if len(caps) > 0 {
		if ids := r.registry.ByCapabilities(caps, true); len(ids) > 0 {
			return ids
		}
		if ids := r.registry.ByCapabilities(caps, false); len(ids) > 0 {
			return ids
		}
	}

	if r.searcher != nil {
		ids, err := r.searcher.FindServersForTask(ctx, query)
		if err != nil {
			r.logger.Warn("Task search failed", "error", err)
		} else if len(ids) > 0 {
			return ids
		}
	}

	return r.registry.OnlineIDs()
}

func (r *Router) routeViaStrategies(ctx context.Context, query string) ([]string, float64, bool) {
	r.mu.RLock()
	strategies := r.strategies
	r.mu.RUnlock()
	if len(strategies) == 0 {
		return nil, 0, false
	}

	type outcome struct {
		name       string
		servers    []string
		confidence float64
	}
	var outcomes []outcome
	for _, s := range strategies {
		servers, confidence, err := s.Route(ctx, query)
		if err != nil {
			r.logger.Warn("Routing strategy failed", "strategy", s.Name(), "error", err)
			continue
		}
		outcomes = append(outcomes, outcome{s.Name(), servers, confidence})
	}
	if len(outcomes) == 0 {
		return nil, 0, false
	}

	sort.Slice(outcomes, func(i, j int) bool {
		if outcomes[i].confidence != outcomes[j].confidence {
			return outcomes[i].confidence > outcomes[j].confidence
		}
		return outcomes[i].name < outcomes[j].name
	})
	best := outcomes[0]
	return best.servers, best.confidence, true
}
