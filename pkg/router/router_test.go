package router

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-router/mcp-router/pkg/adapter"
	"github.com/mcp-router/mcp-router/pkg/cache"
	"github.com/mcp-router/mcp-router/pkg/metadata"
	"github.com/mcp-router/mcp-router/pkg/models"
	"github.com/mcp-router/mcp-router/pkg/plugin"
	"github.com/mcp-router/mcp-router/pkg/registry"
	"github.com/mcp-router/mcp-router/pkg/routing"
)

// fakeConn is an in-process Connection with scripted tools and handler.
type fakeConn struct {
	tools   []models.ToolInfo
	handler func(name string, args map[string]any) (*adapter.ToolResult, error)
	calls   *atomic.Int32
	closed  atomic.Bool
}

func (c *fakeConn) ListTools(context.Context) ([]models.ToolInfo, error) {
	return c.tools, nil
}

func (c *fakeConn) CallTool(_ context.Context, name string, args map[string]any) (*adapter.ToolResult, error) {
	if c.calls != nil {
		c.calls.Add(1)
	}
	if c.handler != nil {
		return c.handler(name, args)
	}
	return &adapter.ToolResult{
		Content: []adapter.ContentItem{{Type: "text", Text: "ok:" + name}},
	}, nil
}

func (c *fakeConn) Close() error {
	c.closed.Store(true)
	return nil
}

// fakeAdapter hands out fakeConns for stdio specs.
type fakeAdapter struct {
	tools   []models.ToolInfo
	handler func(name string, args map[string]any) (*adapter.ToolResult, error)
	calls   atomic.Int32
	conns   []*fakeConn
}

func (a *fakeAdapter) Kind() models.TransportKind { return models.TransportStdio }
func (a *fakeAdapter) Name() string               { return "fake" }
func (a *fakeAdapter) Version() string            { return "test" }

func (a *fakeAdapter) CanHandle(spec models.LaunchSpec) bool { return spec.Command != "" }

func (a *fakeAdapter) Connect(_ context.Context, _ models.ServerSpec) (adapter.Connection, error) {
	conn := &fakeConn{tools: a.tools, handler: a.handler, calls: &a.calls}
	a.conns = append(a.conns, conn)
	return conn, nil
}

// countingAnalyzer returns a fixed analysis and counts invocations.
type countingAnalyzer struct {
	analysis models.QueryAnalysis
	calls    atomic.Int32
}

func (a *countingAnalyzer) AnalyzeQuery(context.Context, string, []string) (models.QueryAnalysis, error) {
	a.calls.Add(1)
	return a.analysis, nil
}

// interceptor is a router-extension plugin with a fixed response.
type interceptor struct {
	result *models.RouteResult
	handle plugin.RouterHandle
}

func (p *interceptor) Name() string        { return "interceptor" }
func (p *interceptor) Version() string     { return "1.0.0" }
func (p *interceptor) Description() string { return "test extension" }
func (p *interceptor) Shutdown()           {}

func (p *interceptor) Initialize(router plugin.RouterHandle) bool {
	p.handle = router
	return true
}

func (p *interceptor) Intercept(context.Context, string) (*models.RouteResult, error) {
	return p.result, nil
}

type testRig struct {
	router  *Router
	fake    *fakeAdapter
	cache   *cache.Manager
	store   *metadata.Store
	plugins *plugin.Manager
}

func fsTools() []models.ToolInfo {
	return []models.ToolInfo{{
		Name:        "read_file",
		Description: "Read a file from disk",
		Schema: map[string]any{
			"type":     "object",
			"required": []any{"path"},
		},
	}}
}

func newTestRig(t *testing.T, analyzer routing.Analyzer) *testRig {
	t.Helper()
	dir := t.TempDir()

	c, err := cache.NewManager(cache.Options{Dir: filepath.Join(dir, "cache")})
	require.NoError(t, err)
	t.Cleanup(c.Stop)

	reg, err := registry.New(filepath.Join(dir, "servers.json"))
	require.NoError(t, err)

	client, err := metadata.OpenSQLite(context.Background(), filepath.Join(dir, "metadata.db"))
	require.NoError(t, err)
	store := metadata.NewStore(client)
	t.Cleanup(func() { _ = store.Close() })

	fake := &fakeAdapter{tools: fsTools()}
	adapters := adapter.NewManager(fake)
	t.Cleanup(adapters.CloseAll)

	plugins := plugin.NewManager([]string{filepath.Join(dir, "plugins")})

	r := New(Options{
		Cache:    c,
		Registry: reg,
		Store:    store,
		Adapters: adapters,
		Query:    routing.New(reg, store, analyzer),
		Plugins:  plugins,
	})
	t.Cleanup(r.Shutdown)

	return &testRig{router: r, fake: fake, cache: c, store: store, plugins: plugins}
}

func fsSpec(id string) models.ServerSpec {
	return models.ServerSpec{
		ID:           id,
		Name:         id,
		Launch:       models.LaunchSpec{Kind: models.TransportStdio, Command: "unused"},
		Capabilities: []string{"filesystem"},
		Tags:         []string{"local"},
	}
}

// registerAndWait registers a server and blocks until the background
// connect has brought it online.
func registerAndWait(t *testing.T, rig *testRig, spec models.ServerSpec) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, rig.router.RegisterServer(ctx, spec))
	require.Eventually(t, func() bool {
		health, err := rig.router.GetServerHealth(spec.ID)
		return err == nil && health.Status == models.StatusOnline
	}, 2*time.Second, 5*time.Millisecond)
}

func TestRouter_RegisterRouteExecute(t *testing.T) {
	rig := newTestRig(t, nil)
	ctx := context.Background()

	registerAndWait(t, rig, fsSpec("fs"))

	// Keyword analysis: "file" is a substring of "filesystem".
	result := rig.router.Route(ctx, "read the configuration file")
	assert.Equal(t, []string{"fs"}, result.SelectedServers)
	assert.Equal(t, 0.5, result.Confidence)

	exec, err := rig.router.ExecuteTool(ctx, ExecRequest{
		ServerID: "fs",
		Tool:     "read_file",
		Args:     map[string]any{"path": "/etc/hosts"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok:read_file", exec.Text())

	stats, err := rig.router.GetUsageStats(ctx, "fs", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCalls)
	assert.Equal(t, 1.0, stats.SuccessRate)
}

func TestRouter_RegisterRejectsUnsupportedTransport(t *testing.T) {
	rig := newTestRig(t, nil)

	spec := fsSpec("remote")
	spec.Launch = models.LaunchSpec{Kind: models.TransportHTTP, URL: "http://example.invalid"}

	err := rig.router.RegisterServer(context.Background(), spec)
	assert.ErrorIs(t, err, adapter.ErrNoAdapter)
	assert.Empty(t, rig.router.GetServers())
}

func TestRouter_RouteResultIsCached(t *testing.T) {
	analyzer := &countingAnalyzer{analysis: models.QueryAnalysis{
		RequiredCapabilities: []string{"filesystem"},
		Confidence:           0.9,
	}}
	rig := newTestRig(t, analyzer)
	ctx := context.Background()

	registerAndWait(t, rig, fsSpec("fs"))

	first := rig.router.Route(ctx, "list my files")
	second := rig.router.Route(ctx, "list my files")
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), analyzer.calls.Load(), "second route is a cache hit")

	// A different query misses.
	rig.router.Route(ctx, "something else entirely about files")
	assert.Equal(t, int32(2), analyzer.calls.Load())
}

func TestRouter_RegistrationInvalidatesRouteCache(t *testing.T) {
	analyzer := &countingAnalyzer{analysis: models.QueryAnalysis{
		RequiredCapabilities: []string{"filesystem"},
		Confidence:           0.9,
	}}
	rig := newTestRig(t, analyzer)
	ctx := context.Background()

	registerAndWait(t, rig, fsSpec("fs"))
	rig.router.Route(ctx, "list my files")

	registerAndWait(t, rig, fsSpec("fs2"))

	result := rig.router.Route(ctx, "list my files")
	assert.Equal(t, int32(2), analyzer.calls.Load(), "registration drops cached routes")
	assert.ElementsMatch(t, []string{"fs", "fs2"}, result.SelectedServers)
}

func TestRouter_ExecResultIsCached(t *testing.T) {
	rig := newTestRig(t, nil)
	ctx := context.Background()

	registerAndWait(t, rig, fsSpec("fs"))

	req := ExecRequest{ServerID: "fs", Tool: "read_file", Args: map[string]any{"path": "/x"}}
	_, err := rig.router.ExecuteTool(ctx, req)
	require.NoError(t, err)
	_, err = rig.router.ExecuteTool(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int32(1), rig.fake.calls.Load(), "identical invocation is a cache hit")

	// NoCache bypasses both lookup and store.
	req.NoCache = true
	_, err = rig.router.ExecuteTool(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int32(2), rig.fake.calls.Load())

	// Different args miss.
	_, err = rig.router.ExecuteTool(ctx, ExecRequest{
		ServerID: "fs", Tool: "read_file", Args: map[string]any{"path": "/y"},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), rig.fake.calls.Load())
}

func TestRouter_ExecuteToolValidationLeavesNoUsage(t *testing.T) {
	rig := newTestRig(t, nil)
	ctx := context.Background()

	registerAndWait(t, rig, fsSpec("fs"))

	_, err := rig.router.ExecuteTool(ctx, ExecRequest{ServerID: "fs", Tool: "read_file"})
	var verr *adapter.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"path"}, verr.Missing)
	assert.Equal(t, int32(0), rig.fake.calls.Load(), "validation failure must not reach the server")

	stats, err := rig.router.GetUsageStats(ctx, "fs", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalCalls)
}

func TestRouter_ExecuteToolFailureIsRecorded(t *testing.T) {
	rig := newTestRig(t, nil)
	rig.fake.handler = func(name string, _ map[string]any) (*adapter.ToolResult, error) {
		return &adapter.ToolResult{
			IsError: true,
			Content: []adapter.ContentItem{{Type: "text", Text: "boom"}},
		}, nil
	}
	ctx := context.Background()

	registerAndWait(t, rig, fsSpec("fs"))

	_, err := rig.router.ExecuteTool(ctx, ExecRequest{
		ServerID: "fs", Tool: "read_file", Args: map[string]any{"path": "/x"},
	})
	var terr *adapter.ToolError
	require.ErrorAs(t, err, &terr)

	stats, err := rig.router.GetUsageStats(ctx, "fs", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCalls)
	assert.Equal(t, 0.0, stats.SuccessRate)

	// Failures are never cached.
	_, _ = rig.router.ExecuteTool(ctx, ExecRequest{
		ServerID: "fs", Tool: "read_file", Args: map[string]any{"path": "/x"},
	})
	assert.Equal(t, int32(2), rig.fake.calls.Load())
}

func TestRouter_ExecuteToolUnknownServer(t *testing.T) {
	rig := newTestRig(t, nil)

	_, err := rig.router.ExecuteTool(context.Background(), ExecRequest{ServerID: "ghost", Tool: "x"})
	assert.ErrorIs(t, err, registry.ErrServerNotFound)
}

func TestRouter_UnregisterRemovesEveryTrace(t *testing.T) {
	rig := newTestRig(t, nil)
	ctx := context.Background()

	registerAndWait(t, rig, fsSpec("fs"))

	req := ExecRequest{ServerID: "fs", Tool: "read_file", Args: map[string]any{"path": "/x"}}
	_, err := rig.router.ExecuteTool(ctx, req)
	require.NoError(t, err)
	assert.True(t, rig.cache.Exists(execCacheKey(req)))

	require.NoError(t, rig.router.UnregisterServer(ctx, "fs"))

	_, _, err = rig.router.GetServer("fs")
	assert.ErrorIs(t, err, registry.ErrServerNotFound)
	_, err = rig.store.ReadServer(ctx, "fs")
	assert.ErrorIs(t, err, metadata.ErrNotFound)
	assert.False(t, rig.cache.Exists(execCacheKey(req)), "cached results are purged by tag")
	assert.True(t, rig.fake.conns[0].closed.Load(), "connection is closed")

	assert.ErrorIs(t, rig.router.UnregisterServer(ctx, "fs"), registry.ErrServerNotFound)
}

func TestRouter_ExtensionIntercepts(t *testing.T) {
	rig := newTestRig(t, nil)
	ctx := context.Background()

	registerAndWait(t, rig, fsSpec("fs"))

	forced := &models.RouteResult{
		Query:           "anything",
		SelectedServers: []string{"fs"},
		Confidence:      1.0,
	}
	ext := &interceptor{result: forced}
	require.True(t, rig.plugins.Install(ext, handle{rig.router}))

	result := rig.router.Route(ctx, "anything")
	assert.Equal(t, *forced, result)

	// The plugin's own handle routes without re-entering the extension.
	viaHandle := ext.handle.Route(ctx, "read the configuration file")
	assert.Equal(t, []string{"fs"}, viaHandle.SelectedServers)
	assert.NotEqual(t, 1.0, viaHandle.Confidence)

	// A pass-through extension falls back to normal routing.
	ext.result = nil
	result = rig.router.Route(ctx, "read the configuration file")
	assert.Equal(t, []string{"fs"}, result.SelectedServers)
}

func TestRouter_InitializeConnectsRegisteredServers(t *testing.T) {
	rig := newTestRig(t, nil)
	ctx := context.Background()

	// Seed the registry before the engine starts, as a restart would.
	registerAndWait(t, rig, fsSpec("fs"))

	require.NoError(t, rig.router.Initialize(ctx))
	require.Eventually(t, func() bool {
		health, err := rig.router.GetServerHealth("fs")
		return err == nil && health.Status == models.StatusOnline
	}, 2*time.Second, 5*time.Millisecond)

	tools, err := rig.router.GetTools(ctx, "fs")
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "read_file", tools[0].Name)

	rig.router.Shutdown()
	for _, conn := range rig.fake.conns {
		assert.True(t, conn.closed.Load())
	}
}

func TestRouter_IntrospectionViews(t *testing.T) {
	rig := newTestRig(t, nil)
	ctx := context.Background()

	registerAndWait(t, rig, fsSpec("fs"))

	assert.Equal(t, []string{"fs"}, rig.router.GetServersByCapability("filesystem"))

	byTag, err := rig.router.GetServersByTag(ctx, "local")
	require.NoError(t, err)
	assert.Equal(t, []string{"fs"}, byTag)

	caps, err := rig.router.GetAllCapabilities(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"filesystem": 1}, caps)

	tags, err := rig.router.GetAllTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"local"}, tags)

	meta, err := rig.router.GetServerMetadata(ctx, "fs")
	require.NoError(t, err)
	assert.Equal(t, "fs", meta.Spec.ID)

	health := rig.router.GetAllServerHealth()
	require.Contains(t, health, "fs")
	assert.Equal(t, models.StatusOnline, health["fs"].Status)

	a, err := rig.router.GetAdapter(fsSpec("fs").Launch)
	require.NoError(t, err)
	assert.Equal(t, models.TransportStdio, a.Kind())
	assert.Len(t, rig.router.GetAllAdapters(), 1)

	stats := rig.router.GetCacheStats()
	assert.Contains(t, stats, "memory")
	assert.Contains(t, stats, "disk")
}

func TestRouter_AnalyzeQuery(t *testing.T) {
	rig := newTestRig(t, nil)
	ctx := context.Background()

	registerAndWait(t, rig, fsSpec("fs"))

	analysis := rig.router.AnalyzeQuery(ctx, "read a file for me")
	assert.Equal(t, routing.MethodKeyword, analysis.Method)
	assert.Equal(t, []string{"filesystem"}, analysis.RequiredCapabilities)
}

func TestExecCacheKeyIsCanonical(t *testing.T) {
	a := execCacheKey(ExecRequest{ServerID: "s", Tool: "t", Args: map[string]any{"a": 1, "b": 2}})
	b := execCacheKey(ExecRequest{ServerID: "s", Tool: "t", Args: map[string]any{"b": 2, "a": 1}})
	assert.Equal(t, a, b, "argument order must not change the key")

	nilArgs := execCacheKey(ExecRequest{ServerID: "s", Tool: "t"})
	emptyArgs := execCacheKey(ExecRequest{ServerID: "s", Tool: "t", Args: map[string]any{}})
	assert.Equal(t, nilArgs, emptyArgs)
}

func TestRouter_ShutdownDrainsBackgroundConnects(t *testing.T) {
	rig := newTestRig(t, nil)

	require.NoError(t, rig.router.RegisterServer(context.Background(), fsSpec("fs")))
	rig.router.Shutdown()

	// The pending connect either completed and was closed, or never ran.
	for _, conn := range rig.fake.conns {
		assert.True(t, conn.closed.Load())
	}
}
