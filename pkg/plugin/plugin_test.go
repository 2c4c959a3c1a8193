package plugin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-router/mcp-router/pkg/models"
)

// basePlugin is a minimal plugin for tests.
type basePlugin struct {
	name      string
	initOK    bool
	handle    RouterHandle
	shutdowns int
}

func (p *basePlugin) Name() string        { return p.name }
func (p *basePlugin) Version() string     { return "1.0.0" }
func (p *basePlugin) Description() string { return "test plugin" }
func (p *basePlugin) Shutdown()           { p.shutdowns++ }

func (p *basePlugin) Initialize(router RouterHandle) bool {
	p.handle = router
	return p.initOK
}

type strategyPlugin struct {
	basePlugin
	servers    []string
	confidence float64
}

func (p *strategyPlugin) Route(context.Context, string) ([]string, float64, error) {
	return p.servers, p.confidence, nil
}

type extensionPlugin struct {
	basePlugin
	result *models.RouteResult
}

func (p *extensionPlugin) Intercept(context.Context, string) (*models.RouteResult, error) {
	return p.result, nil
}

type fakeHandle struct{}

func (fakeHandle) ListServers() []models.ServerSpec { return nil }

func (fakeHandle) Route(_ context.Context, query string) models.RouteResult {
	return models.RouteResult{Query: query}
}

func TestManager_InstallAndLookup(t *testing.T) {
	m := NewManager(nil)
	t.Cleanup(m.Shutdown)

	strategy := &strategyPlugin{basePlugin: basePlugin{name: "s1", initOK: true}}
	ext := &extensionPlugin{basePlugin: basePlugin{name: "e1", initOK: true}}

	assert.True(t, m.Install(strategy, fakeHandle{}))
	assert.True(t, m.Install(ext, fakeHandle{}))
	assert.NotNil(t, strategy.handle, "plugin receives the router handle")

	assert.Equal(t, []string{"e1", "s1"}, m.Names())

	require.Len(t, m.Strategies(), 1)
	assert.Equal(t, "s1", m.Strategies()[0].Name())
	require.Len(t, m.Extensions(), 1)
	assert.Equal(t, "e1", m.Extensions()[0].Name())
	assert.Empty(t, m.Adapters())

	p, ok := m.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "1.0.0", p.Version())
}

func TestManager_RejectsDuplicateNames(t *testing.T) {
	m := NewManager(nil)
	t.Cleanup(m.Shutdown)

	first := &basePlugin{name: "dup", initOK: true}
	second := &basePlugin{name: "dup", initOK: true}

	assert.True(t, m.Install(first, fakeHandle{}))
	assert.False(t, m.Install(second, fakeHandle{}))
	assert.Equal(t, []string{"dup"}, m.Names())
}

func TestManager_DeclinedInitialization(t *testing.T) {
	m := NewManager(nil)
	t.Cleanup(m.Shutdown)

	declined := &basePlugin{name: "nope", initOK: false}
	assert.False(t, m.Install(declined, fakeHandle{}))
	assert.Empty(t, m.Names())
}

func TestManager_Shutdown(t *testing.T) {
	m := NewManager(nil)

	p := &basePlugin{name: "p", initOK: true}
	require.True(t, m.Install(p, fakeHandle{}))

	m.Shutdown()
	assert.Equal(t, 1, p.shutdowns)
	assert.Empty(t, m.Names())
}

func TestManager_ConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := NewManager([]string{dir})

	// Missing config is an empty map.
	assert.Empty(t, m.LoadConfig("p"))

	m.SaveConfig("p", map[string]any{"enabled": true, "limit": 5.0})
	cfg := m.LoadConfig("p")
	assert.Equal(t, true, cfg["enabled"])
	assert.Equal(t, 5.0, cfg["limit"])

	m.SetConfigValue("p", "limit", 10.0)
	v, ok := m.GetConfigValue("p", "limit")
	require.True(t, ok)
	assert.Equal(t, 10.0, v)

	_, ok = m.GetConfigValue("p", "missing")
	assert.False(t, ok)

	m.DeleteConfig("p")
	assert.Empty(t, m.LoadConfig("p"))
}

func TestManager_ConfigSearchesDirsInOrder(t *testing.T) {
	primary := t.TempDir()
	secondary := t.TempDir()

	seed := NewManager([]string{secondary})
	seed.SaveConfig("p", map[string]any{"from": "secondary"})

	m := NewManager([]string{primary, secondary})
	cfg := m.LoadConfig("p")
	assert.Equal(t, "secondary", cfg["from"])

	// Writes land in the primary directory and shadow the secondary.
	m.SaveConfig("p", map[string]any{"from": "primary"})
	assert.Equal(t, "primary", m.LoadConfig("p")["from"])
}

func TestRegisterAndLoadAll(t *testing.T) {
	Register(func() Plugin {
		return &strategyPlugin{basePlugin: basePlugin{name: "registered-strategy", initOK: true}}
	})

	m := NewManager(nil)
	t.Cleanup(m.Shutdown)
	m.LoadAll(fakeHandle{})

	_, ok := m.Get("registered-strategy")
	assert.True(t, ok)
}
