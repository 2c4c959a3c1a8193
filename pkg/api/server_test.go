package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
	"github.com/mcp-router/mcp-router/pkg/router"
	"github.com/mcp-router/mcp-router/pkg/routing"
)

// fakeConn serves a fixed tool list and echoes invocations.
type fakeConn struct {
	tools []models.ToolInfo
	calls *atomic.Int32
}

func (c *fakeConn) ListTools(context.Context) ([]models.ToolInfo, error) {
	return c.tools, nil
}

func (c *fakeConn) CallTool(_ context.Context, name string, _ map[string]any) (*adapter.ToolResult, error) {
	c.calls.Add(1)
	return &adapter.ToolResult{
		Content: []adapter.ContentItem{{Type: "text", Text: "ok:" + name}},
	}, nil
}

func (c *fakeConn) Close() error { return nil }

type fakeAdapter struct {
	tools []models.ToolInfo
	calls atomic.Int32
}

func (a *fakeAdapter) Kind() models.TransportKind            { return models.TransportStdio }
func (a *fakeAdapter) Name() string                          { return "fake" }
func (a *fakeAdapter) Version() string                       { return "test" }
func (a *fakeAdapter) CanHandle(spec models.LaunchSpec) bool { return spec.Command != "" }

func (a *fakeAdapter) Connect(context.Context, models.ServerSpec) (adapter.Connection, error) {
	return &fakeConn{tools: a.tools, calls: &a.calls}, nil
}

func newTestServer(t *testing.T) (*Server, *fakeAdapter) {
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

	fake := &fakeAdapter{tools: []models.ToolInfo{{
		Name:        "read_file",
		Description: "Read a file from disk",
		Schema: map[string]any{
			"type":     "object",
			"required": []any{"path"},
		},
	}}}
	adapters := adapter.NewManager(fake)
	t.Cleanup(adapters.CloseAll)

	r := router.New(router.Options{
		Cache:    c,
		Registry: reg,
		Store:    store,
		Adapters: adapters,
		Query:    routing.New(reg, store, nil),
		Plugins:  plugin.NewManager(nil),
	})
	t.Cleanup(r.Shutdown)

	return NewServer(r), fake
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func registerFS(t *testing.T, s *Server, id string) {
	t.Helper()

	rec := doJSON(t, s, http.MethodPost, "/api/v1/servers", RegisterServerRequest{
		ID:           id,
		Name:         id,
		Launch:       models.LaunchSpec{Kind: models.TransportStdio, Command: "unused"},
		Capabilities: []string{"filesystem"},
		Tags:         []string{"local"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Wait for the background connect to bring the server online.
	require.Eventually(t, func() bool {
		health := doJSON(t, s, http.MethodGet, "/api/v1/servers/"+id+"/health", nil)
		if health.Code != http.StatusOK {
			return false
		}
		return decode[models.HealthSnapshot](t, health).Status == models.StatusOnline
	}, 2*time.Second, 5*time.Millisecond)
}

func TestAPI_RegisterAndList(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/servers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[ServerListResponse](t, rec).Count)

	registerFS(t, s, "fs")

	rec = doJSON(t, s, http.MethodGet, "/api/v1/servers", nil)
	list := decode[ServerListResponse](t, rec)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "fs", list.Servers[0].ID)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/servers/fs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[ServerDetailResponse](t, rec)
	assert.Equal(t, "fs", detail.Spec.ID)
	require.Len(t, detail.Tools, 1)
	assert.Equal(t, "read_file", detail.Tools[0].Name)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/servers/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_RegisterValidation(t *testing.T) {
	s, _ := newTestServer(t)

	// Missing id fails binding.
	rec := doJSON(t, s, http.MethodPost, "/api/v1/servers", map[string]any{
		"launch": map[string]any{"transport_kind": "stdio", "command": "x"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unsupported transport is rejected before registration.
	rec = doJSON(t, s, http.MethodPost, "/api/v1/servers", RegisterServerRequest{
		ID:     "remote",
		Launch: models.LaunchSpec{Kind: models.TransportHTTP, URL: "http://example.invalid"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_RouteAndAnalyze(t *testing.T) {
	s, _ := newTestServer(t)
	registerFS(t, s, "fs")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/route", QueryRequest{Query: "read the config file"})
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[models.RouteResult](t, rec)
	assert.Equal(t, []string{"fs"}, result.SelectedServers)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/analyze", QueryRequest{Query: "read the config file"})
	require.Equal(t, http.StatusOK, rec.Code)
	analysis := decode[models.QueryAnalysis](t, rec)
	assert.Equal(t, []string{"filesystem"}, analysis.RequiredCapabilities)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/route", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_ExecuteTool(t *testing.T) {
	s, fake := newTestServer(t)
	registerFS(t, s, "fs")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/servers/fs/tools/read_file/call",
		ExecuteToolRequest{Args: map[string]any{"path": "/etc/hosts"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[ExecuteToolResponse](t, rec)
	assert.Equal(t, "ok:read_file", resp.Text)

	// Identical call is served from the cache.
	doJSON(t, s, http.MethodPost, "/api/v1/servers/fs/tools/read_file/call",
		ExecuteToolRequest{Args: map[string]any{"path": "/etc/hosts"}})
	assert.Equal(t, int32(1), fake.calls.Load())

	// Missing required argument.
	rec = doJSON(t, s, http.MethodPost, "/api/v1/servers/fs/tools/read_file/call",
		ExecuteToolRequest{Args: map[string]any{}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "path")

	// Unknown server.
	rec = doJSON(t, s, http.MethodPost, "/api/v1/servers/ghost/tools/x/call",
		ExecuteToolRequest{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_UsageStats(t *testing.T) {
	s, _ := newTestServer(t)
	registerFS(t, s, "fs")

	doJSON(t, s, http.MethodPost, "/api/v1/servers/fs/tools/read_file/call",
		ExecuteToolRequest{Args: map[string]any{"path": "/x"}})

	rec := doJSON(t, s, http.MethodGet, "/api/v1/servers/fs/usage", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[models.UsageStats](t, rec)
	assert.Equal(t, 1, stats.TotalCalls)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/servers/fs/usage?window_days=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_Unregister(t *testing.T) {
	s, _ := newTestServer(t)
	registerFS(t, s, "fs")

	rec := doJSON(t, s, http.MethodDelete, "/api/v1/servers/fs", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/servers/fs", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/servers/fs", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_SystemViews(t *testing.T) {
	s, _ := newTestServer(t)
	registerFS(t, s, "fs")

	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[HealthResponse](t, rec)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 1, health.Servers.Online)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/capabilities", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "filesystem")

	rec = doJSON(t, s, http.MethodGet, "/api/v1/capabilities/filesystem/servers", nil)
	assert.Contains(t, rec.Body.String(), "fs")

	rec = doJSON(t, s, http.MethodGet, "/api/v1/tags", nil)
	assert.Contains(t, rec.Body.String(), "local")

	rec = doJSON(t, s, http.MethodGet, "/api/v1/tags/local/servers", nil)
	assert.Contains(t, rec.Body.String(), "fs")

	rec = doJSON(t, s, http.MethodGet, "/api/v1/cache/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "memory")

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/cache", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/plugins", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/plugins/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/adapters", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	adapters := decode[map[string][]AdapterInfo](t, rec)["adapters"]
	require.Len(t, adapters, 1)
	assert.Equal(t, "fake", adapters[0].Name)
	assert.Equal(t, "stdio", adapters[0].Kind)
	assert.NotEmpty(t, adapters[0].Version)
}

func TestAPI_SecurityHeaders(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAPI_RedactsLaunchEnv(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/servers", RegisterServerRequest{
		ID: "gh",
		Launch: models.LaunchSpec{
			Kind:    models.TransportStdio,
			Command: "mcp-server-github",
			Env:     map[string]string{"GITHUB_TOKEN": "ghp_secret123"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "ghp_secret123")

	rec = doJSON(t, s, http.MethodGet, "/api/v1/servers", nil)
	assert.NotContains(t, rec.Body.String(), "ghp_secret123")
}
