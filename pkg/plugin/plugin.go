// Package plugin manages the three extension points of the router: request
// interceptors, server adapters, and routing strategies. Plugins are
// compiled in and announced through a static constructor registry; there is
// no runtime code loading.
package plugin

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/mcp-router/mcp-router/pkg/adapter"
	"github.com/mcp-router/mcp-router/pkg/models"
)

// RouterHandle is the capability handle passed to plugins at initialization.
// Plugins hold only this interface, never the concrete router.
type RouterHandle interface {
	ListServers() []models.ServerSpec
	Route(ctx context.Context, query string) models.RouteResult
}

// Plugin is the common contract of all plugin kinds.
type Plugin interface {
	Name() string
	Version() string // semver
	Description() string

	// Initialize hands the plugin its router handle. Returning false keeps
	// the plugin out of the active set.
	Initialize(router RouterHandle) bool
	Shutdown()
}

// RouterExtension intercepts a request before routing. A nil result passes
// the request through to normal processing.
type RouterExtension interface {
	Plugin
	Intercept(ctx context.Context, query string) (*models.RouteResult, error)
}

// ServerAdapter contributes a transport adapter registered with the adapter
// manager at startup.
type ServerAdapter interface {
	Plugin
	adapter.Adapter
}

// RoutingStrategy overrides server selection. It satisfies the routing
// package's Strategy interface.
type RoutingStrategy interface {
	Plugin
	Route(ctx context.Context, query string) ([]string, float64, error)
}

// Constructor builds a fresh plugin instance.
type Constructor func() Plugin

var (
	registryMu   sync.Mutex
	constructors []Constructor
)

// Register adds a plugin constructor to the static table. Called from init
// functions of plugin packages.
func Register(ctor Constructor) {
	registryMu.Lock()
	constructors = append(constructors, ctor)
	registryMu.Unlock()
}

// registered returns a snapshot of the constructor table.
func registered() []Constructor {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]Constructor, len(constructors))
	copy(out, constructors)
	return out
}

// Manager owns plugin lifecycle and lookup.
type Manager struct {
	configDirs []string

	mu      sync.RWMutex
	plugins map[string]Plugin

	logger *slog.Logger
}

// NewManager creates a manager. configDirs are searched in order for
// per-plugin JSON config files; the first directory receives writes.
func NewManager(configDirs []string) *Manager {
	return &Manager{
		configDirs: configDirs,
		plugins:    make(map[string]Plugin),
		logger:     slog.With("subsystem", "plugin"),
	}
}

// LoadAll instantiates every registered constructor and installs the
// results. Failures to initialize and duplicate names are logged, not
// fatal.
func (m *Manager) LoadAll(handle RouterHandle) {
	for _, ctor := range registered() {
		m.Install(ctor(), handle)
	}
}

// Install initializes one plugin instance and adds it to the active set.
// Reports whether the plugin was accepted.
func (m *Manager) Install(p Plugin, handle RouterHandle) bool {
	name := p.Name()

	m.mu.Lock()
	if _, dup := m.plugins[name]; dup {
		m.mu.Unlock()
		m.logger.Warn("Rejecting duplicate plugin name", "plugin", name)
		return false
	}
	m.mu.Unlock()

	if !p.Initialize(handle) {
		m.logger.Warn("Plugin declined initialization", "plugin", name)
		return false
	}

	m.mu.Lock()
	if _, dup := m.plugins[name]; dup {
		m.mu.Unlock()
		m.logger.Warn("Rejecting duplicate plugin name", "plugin", name)
		p.Shutdown()
		return false
	}
	m.plugins[name] = p
	m.mu.Unlock()

	m.logger.Info("Plugin installed", "plugin", name, "version", p.Version())
	return true
}

// Shutdown stops every active plugin and empties the set.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	plugins := m.plugins
	m.plugins = make(map[string]Plugin)
	m.mu.Unlock()

	for name, p := range plugins {
		p.Shutdown()
		m.logger.Info("Plugin stopped", "plugin", name)
	}
}

// Get returns the active plugin by name.
func (m *Manager) Get(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.plugins[name]
	return p, ok
}

// Names returns the active plugin names, sorted.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.plugins))
	for name := range m.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extensions returns active router extensions, ordered by name.
func (m *Manager) Extensions() []RouterExtension {
	var out []RouterExtension
	for _, name := range m.Names() {
		if p, ok := m.Get(name); ok {
			if ext, ok := p.(RouterExtension); ok {
				out = append(out, ext)
			}
		}
	}
	return out
}

// Strategies returns active routing strategies, ordered by name.
func (m *Manager) Strategies() []RoutingStrategy {
	var out []RoutingStrategy
	for _, name := range m.Names() {
		if p, ok := m.Get(name); ok {
			if s, ok := p.(RoutingStrategy); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// Adapters returns active server-adapter plugins, ordered by name.
func (m *Manager) Adapters() []ServerAdapter {
	var out []ServerAdapter
	for _, name := range m.Names() {
		if p, ok := m.Get(name); ok {
			if a, ok := p.(ServerAdapter); ok {
				out = append(out, a)
			}
		}
	}
	return out
}
