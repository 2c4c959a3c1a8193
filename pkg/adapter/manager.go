package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mcp-router/mcp-router/pkg/models"
)

// operationTimeout bounds individual tool calls and tool-list refreshes.
const operationTimeout = 30 * time.Second

// managedConn is one live connection plus its cached tool list. calls are
// serialized through mu so a single child process never sees interleaved
// requests from concurrent callers.
type managedConn struct {
	mu    sync.Mutex
	conn  Connection
	tools []models.ToolInfo // nil until first ListTools
}

// Manager selects adapters for launch specs and owns the table of active
// connections. Adapters are consulted in registration order: first the ones
// matching the spec's kind, then the generic ones.
type Manager struct {
	mu       sync.RWMutex
	adapters []Adapter
	conns    map[string]*managedConn

	logger *slog.Logger
}

// NewManager creates a manager with the given adapters, consulted in order.
func NewManager(adapters ...Adapter) *Manager {
	return &Manager{
		adapters: adapters,
		conns:    make(map[string]*managedConn),
		logger:   slog.With("subsystem", "adapter"),
	}
}

// Register appends an adapter to the selection order.
func (m *Manager) Register(a Adapter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adapters = append(m.adapters, a)
}

// Adapters returns the registered adapters in selection order.
func (m *Manager) Adapters() []Adapter {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Adapter, len(m.adapters))
	copy(out, m.adapters)
	return out
}

// AdapterFor returns the adapter that would serve the launch spec.
func (m *Manager) AdapterFor(spec models.LaunchSpec) (Adapter, error) {
	return m.selectAdapter(spec)
}

// selectAdapter returns the first kind-matching adapter that accepts the
// spec, falling back to the first generic adapter that does.
func (m *Manager) selectAdapter(spec models.LaunchSpec) (Adapter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.adapters {
		if a.Kind() == spec.Kind && a.CanHandle(spec) {
			return a, nil
		}
	}
	for _, a := range m.adapters {
		if a.Kind() == "" && a.CanHandle(spec) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: kind %q", ErrNoAdapter, spec.Kind)
}

// Connect brings the server online. Connecting an already-connected server
// is a no-op.
func (m *Manager) Connect(ctx context.Context, spec models.ServerSpec) error {
	m.mu.RLock()
	_, exists := m.conns[spec.ID]
	m.mu.RUnlock()
	if exists {
		return nil
	}

	a, err := m.selectAdapter(spec.Launch)
	if err != nil {
		return err
	}

	conn, err := a.Connect(ctx, spec)
	if err != nil {
		return err
	}

	m.mu.Lock()
	if _, exists := m.conns[spec.ID]; exists {
		// Lost the race; keep the existing connection.
		m.mu.Unlock()
		_ = conn.Close()
		return nil
	}
	m.conns[spec.ID] = &managedConn{conn: conn}
	m.mu.Unlock()

	m.logger.Info("Server connected", "server", spec.ID)
	return nil
}

// Disconnect closes the server's connection and drops its cached tool list.
func (m *Manager) Disconnect(id string) error {
	m.mu.Lock()
	mc, ok := m.conns[id]
	delete(m.conns, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotConnected, id)
	}

	err := mc.conn.Close()
	m.logger.Info("Server disconnected", "server", id)
	return err
}

// Connected reports whether the server has a live connection.
func (m *Manager) Connected(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.conns[id]
	return ok
}

// ConnectedIDs returns the ids of all live connections.
func (m *Manager) ConnectedIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.conns))
	for id := range m.conns {
		ids = append(ids, id)
	}
	return ids
}

func (m *Manager) managed(id string) (*managedConn, error) {
	m.mu.RLock()
	mc, ok := m.conns[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotConnected, id)
	}
	return mc, nil
}

// ListTools returns the server's advertised tools, cached from the first
// call until Disconnect or RefreshTools.
func (m *Manager) ListTools(ctx context.Context, id string) ([]models.ToolInfo, error) {
	mc, err := m.managed(id)
	if err != nil {
		return nil, err
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()
	if mc.tools != nil {
		return mc.tools, nil
	}
	return m.refreshToolsLocked(ctx, id, mc)
}

// RefreshTools re-reads the tool list from the live connection, replacing
// the cache.
func (m *Manager) RefreshTools(ctx context.Context, id string) ([]models.ToolInfo, error) {
	mc, err := m.managed(id)
	if err != nil {
		return nil, err
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()
	return m.refreshToolsLocked(ctx, id, mc)
}

func (m *Manager) refreshToolsLocked(ctx context.Context, id string, mc *managedConn) ([]models.ToolInfo, error) {
	opCtx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	tools, err := mc.conn.ListTools(opCtx)
	if err != nil {
		return nil, err
	}
	// A tool without an input schema cannot be validated or invoked safely;
	// it is dropped from the advertised set.
	kept := make([]models.ToolInfo, 0, len(tools))
	for _, t := range tools {
		if t.Schema == nil {
			m.logger.Warn("Skipping tool without input schema", "server", id, "tool", t.Name)
			continue
		}
		kept = append(kept, t)
	}
	mc.tools = kept
	return kept, nil
}

// ExecuteTool validates args against the tool's schema and invokes it. A
// server-reported failure surfaces as *ToolError; missing required args as
// *ValidationError without touching the connection.
func (m *Manager) ExecuteTool(ctx context.Context, id, toolName string, args map[string]any) (*ToolResult, error) {
	mc, err := m.managed(id)
	if err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.tools == nil {
		if _, err := m.refreshToolsLocked(ctx, id, mc); err != nil {
			return nil, fmt.Errorf("failed to load tool list for %q: %w", id, err)
		}
	}
	for _, t := range mc.tools {
		if t.Name == toolName {
			if err := ValidateArgs(toolName, t.Schema, args); err != nil {
				return nil, err
			}
			break
		}
	}

	opCtx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	result, err := mc.conn.CallTool(opCtx, toolName, args)
	if err != nil {
		return nil, &ToolError{ServerID: id, Tool: toolName, Message: err.Error()}
	}
	if result.IsError {
		return result, &ToolError{ServerID: id, Tool: toolName, Message: result.Text()}
	}
	return result, nil
}

// ProbeHealth measures one tools/list round trip on the live connection.
// Returns whether the probe succeeded and its wall time in seconds.
func (m *Manager) ProbeHealth(ctx context.Context, id string) (bool, float64) {
	mc, err := m.managed(id)
	if err != nil {
		return false, 0
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	start := time.Now()
	_, err = m.refreshToolsLocked(ctx, id, mc)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		m.logger.Debug("Health probe failed", "server", id, "error", err)
		return false, elapsed
	}
	return true, elapsed
}

// ProbeConnect measures a transient connect/close round trip for a server
// without a live connection. The connection is not retained; a success only
// proves the server can come up.
func (m *Manager) ProbeConnect(ctx context.Context, spec models.ServerSpec) (bool, float64) {
	a, err := m.selectAdapter(spec.Launch)
	if err != nil {
		return false, 0
	}

	start := time.Now()
	conn, err := a.Connect(ctx, spec)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		m.logger.Debug("Transient health probe failed", "server", spec.ID, "error", err)
		return false, elapsed
	}
	_ = conn.Close()
	return true, elapsed
}

// CloseAll disconnects every live connection. Used at shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	conns := m.conns
	m.conns = make(map[string]*managedConn)
	m.mu.Unlock()

	for id, mc := range conns {
		if err := mc.conn.Close(); err != nil {
			m.logger.Warn("Failed to close connection", "server", id, "error", err)
		}
	}
}
