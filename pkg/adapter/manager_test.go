package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-router/mcp-router/pkg/models"
)

// testServer is an in-memory MCP server with its client-side transport.
type testServer struct {
	server          *mcpsdk.Server
	clientTransport *mcpsdk.InMemoryTransport
}

func startTestServer(t *testing.T, tools map[string]mcpsdk.ToolHandler, schemas map[string]json.RawMessage) *testServer {
	t.Helper()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name: "test-server", Version: "test",
	}, nil)

	for name, handler := range tools {
		schema, ok := schemas[name]
		if !ok {
			schema = json.RawMessage(`{"type":"object"}`)
		}
		server.AddTool(&mcpsdk.Tool{
			Name:        name,
			Description: "test tool: " + name,
			InputSchema: schema,
		}, handler)
	}

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()
	go func() {
		_ = server.Run(context.Background(), serverTransport)
	}()

	return &testServer{server: server, clientTransport: clientTransport}
}

// memAdapter connects specs to a fixed in-memory transport. kind "" makes it
// a generic adapter.
type memAdapter struct {
	kind      models.TransportKind
	transport *mcpsdk.InMemoryTransport
	accepts   func(models.LaunchSpec) bool
	connects  atomic.Int32
}

func (a *memAdapter) Kind() models.TransportKind { return a.kind }
func (a *memAdapter) Name() string               { return "mem" }
func (a *memAdapter) Version() string            { return "test" }

func (a *memAdapter) CanHandle(spec models.LaunchSpec) bool {
	if a.accepts != nil {
		return a.accepts(spec)
	}
	return true
}

func (a *memAdapter) Connect(ctx context.Context, _ models.ServerSpec) (Connection, error) {
	a.connects.Add(1)
	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test", Version: "test"}, nil)
	session, err := client.Connect(ctx, a.transport, nil)
	if err != nil {
		return nil, err
	}
	return &sessionConn{session: session}, nil
}

// staticConn serves a fixed tool list without a real transport.
type staticConn struct {
	tools []models.ToolInfo
}

func (c *staticConn) ListTools(context.Context) ([]models.ToolInfo, error) {
	return c.tools, nil
}

func (c *staticConn) CallTool(_ context.Context, name string, _ map[string]any) (*ToolResult, error) {
	return &ToolResult{Content: []ContentItem{{Type: "text", Text: "ok:" + name}}}, nil
}

func (c *staticConn) Close() error { return nil }

// staticAdapter hands out staticConns; connect may be scripted to fail.
type staticAdapter struct {
	tools      []models.ToolInfo
	connectErr error
	connects   atomic.Int32
}

func (a *staticAdapter) Kind() models.TransportKind       { return models.TransportStdio }
func (a *staticAdapter) Name() string                     { return "static" }
func (a *staticAdapter) Version() string                  { return "test" }
func (a *staticAdapter) CanHandle(models.LaunchSpec) bool { return true }

func (a *staticAdapter) Connect(context.Context, models.ServerSpec) (Connection, error) {
	a.connects.Add(1)
	if a.connectErr != nil {
		return nil, a.connectErr
	}
	return &staticConn{tools: a.tools}, nil
}

func echoHandler(calls *atomic.Int32) mcpsdk.ToolHandler {
	return func(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		if calls != nil {
			calls.Add(1)
		}
		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "echo:" + req.Params.Name}},
		}, nil
	}
}

func stdioSpec(id string) models.ServerSpec {
	return models.ServerSpec{
		ID:     id,
		Launch: models.LaunchSpec{Kind: models.TransportStdio, Command: "unused"},
	}
}

func TestManager_AdapterSelection(t *testing.T) {
	ts := startTestServer(t, map[string]mcpsdk.ToolHandler{"ping": echoHandler(nil)}, nil)

	stdio := &memAdapter{kind: models.TransportStdio, transport: ts.clientTransport}
	generic := &memAdapter{kind: "", transport: ts.clientTransport}
	m := NewManager(generic, stdio)
	t.Cleanup(m.CloseAll)

	// Kind-specific adapter wins even when a generic one was registered first.
	require.NoError(t, m.Connect(context.Background(), stdioSpec("a")))
	assert.Equal(t, int32(1), stdio.connects.Load())
	assert.Equal(t, int32(0), generic.connects.Load())
}

func TestManager_GenericFallback(t *testing.T) {
	ts := startTestServer(t, map[string]mcpsdk.ToolHandler{"ping": echoHandler(nil)}, nil)

	// The kind-specific adapter declines; the generic one accepts.
	declining := &memAdapter{
		kind:      models.TransportStdio,
		transport: ts.clientTransport,
		accepts:   func(models.LaunchSpec) bool { return false },
	}
	generic := &memAdapter{kind: "", transport: ts.clientTransport}
	m := NewManager(declining, generic)
	t.Cleanup(m.CloseAll)

	require.NoError(t, m.Connect(context.Background(), stdioSpec("a")))
	assert.Equal(t, int32(1), generic.connects.Load())
}

func TestManager_NoAdapter(t *testing.T) {
	m := NewManager()
	err := m.Connect(context.Background(), stdioSpec("a"))
	assert.ErrorIs(t, err, ErrNoAdapter)
}

func TestManager_ListToolsCached(t *testing.T) {
	ts := startTestServer(t, map[string]mcpsdk.ToolHandler{
		"read":  echoHandler(nil),
		"write": echoHandler(nil),
	}, map[string]json.RawMessage{
		"read": json.RawMessage(`{"type":"object","required":["path"],"properties":{"path":{"type":"string"}}}`),
	})

	m := NewManager(&memAdapter{kind: models.TransportStdio, transport: ts.clientTransport})
	t.Cleanup(m.CloseAll)
	ctx := context.Background()

	require.NoError(t, m.Connect(ctx, stdioSpec("fs")))

	tools, err := m.ListTools(ctx, "fs")
	require.NoError(t, err)
	require.Len(t, tools, 2)

	var read models.ToolInfo
	for _, tool := range tools {
		if tool.Name == "read" {
			read = tool
		}
	}
	require.NotNil(t, read.Schema, "input schema survives normalization")
	assert.Equal(t, []any{"path"}, read.Schema["required"])

	// Second call is served from the cache: same slice contents.
	again, err := m.ListTools(ctx, "fs")
	require.NoError(t, err)
	assert.Equal(t, tools, again)

	_, err = m.ListTools(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestManager_ExecuteTool(t *testing.T) {
	var calls atomic.Int32
	ts := startTestServer(t, map[string]mcpsdk.ToolHandler{"read": echoHandler(&calls)},
		map[string]json.RawMessage{
			"read": json.RawMessage(`{"type":"object","required":["path"]}`),
		})

	m := NewManager(&memAdapter{kind: models.TransportStdio, transport: ts.clientTransport})
	t.Cleanup(m.CloseAll)
	ctx := context.Background()

	require.NoError(t, m.Connect(ctx, stdioSpec("fs")))

	result, err := m.ExecuteTool(ctx, "fs", "read", map[string]any{"path": "/tmp/x"})
	require.NoError(t, err)
	assert.Equal(t, "echo:read", result.Text())
	assert.Equal(t, int32(1), calls.Load())

	// Unknown properties pass through.
	_, err = m.ExecuteTool(ctx, "fs", "read", map[string]any{"path": "/tmp/x", "extra": 1})
	require.NoError(t, err)

	_, err = m.ExecuteTool(ctx, "unknown", "read", nil)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestManager_ExecuteToolValidation(t *testing.T) {
	var calls atomic.Int32
	ts := startTestServer(t, map[string]mcpsdk.ToolHandler{"read": echoHandler(&calls)},
		map[string]json.RawMessage{
			"read": json.RawMessage(`{"type":"object","required":["path"]}`),
		})

	m := NewManager(&memAdapter{kind: models.TransportStdio, transport: ts.clientTransport})
	t.Cleanup(m.CloseAll)
	ctx := context.Background()

	require.NoError(t, m.Connect(ctx, stdioSpec("fs")))

	_, err := m.ExecuteTool(ctx, "fs", "read", map[string]any{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"path"}, verr.Missing)
	assert.Equal(t, int32(0), calls.Load(), "validation failure must not reach the server")
}

func TestManager_ExecuteToolServerError(t *testing.T) {
	ts := startTestServer(t, map[string]mcpsdk.ToolHandler{
		"fail": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				IsError: true,
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "boom"}},
			}, nil
		},
	}, nil)

	m := NewManager(&memAdapter{kind: models.TransportStdio, transport: ts.clientTransport})
	t.Cleanup(m.CloseAll)
	ctx := context.Background()

	require.NoError(t, m.Connect(ctx, stdioSpec("fs")))

	_, err := m.ExecuteTool(ctx, "fs", "fail", nil)
	var terr *ToolError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "fs", terr.ServerID)
	assert.Contains(t, terr.Message, "boom")
}

func TestManager_Disconnect(t *testing.T) {
	ts := startTestServer(t, map[string]mcpsdk.ToolHandler{"ping": echoHandler(nil)}, nil)

	m := NewManager(&memAdapter{kind: models.TransportStdio, transport: ts.clientTransport})
	ctx := context.Background()

	require.NoError(t, m.Connect(ctx, stdioSpec("fs")))
	assert.True(t, m.Connected("fs"))

	require.NoError(t, m.Disconnect("fs"))
	assert.False(t, m.Connected("fs"))
	assert.ErrorIs(t, m.Disconnect("fs"), ErrNotConnected)

	_, err := m.ListTools(ctx, "fs")
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestManager_ProbeHealth(t *testing.T) {
	ts := startTestServer(t, map[string]mcpsdk.ToolHandler{"ping": echoHandler(nil)}, nil)

	m := NewManager(&memAdapter{kind: models.TransportStdio, transport: ts.clientTransport})
	t.Cleanup(m.CloseAll)
	ctx := context.Background()

	require.NoError(t, m.Connect(ctx, stdioSpec("fs")))

	ok, elapsed := m.ProbeHealth(ctx, "fs")
	assert.True(t, ok)
	assert.Greater(t, elapsed, 0.0)

	ok, _ = m.ProbeHealth(ctx, "unknown")
	assert.False(t, ok)
}

func TestManager_ProbeConnect(t *testing.T) {
	up := &staticAdapter{tools: []models.ToolInfo{}}
	m := NewManager(up)
	ctx := context.Background()

	// A server that was never connected still probes healthy through a
	// transient connect, and the connection is not kept.
	ok, _ := m.ProbeConnect(ctx, stdioSpec("fs"))
	assert.True(t, ok)
	assert.Equal(t, int32(1), up.connects.Load())
	assert.False(t, m.Connected("fs"))

	down := &staticAdapter{connectErr: errors.New("spawn failed")}
	m2 := NewManager(down)
	ok, _ = m2.ProbeConnect(ctx, stdioSpec("fs"))
	assert.False(t, ok)

	// No adapter for the spec counts as a failed probe.
	ok, _ = NewManager().ProbeConnect(ctx, stdioSpec("fs"))
	assert.False(t, ok)
}

func TestManager_ListToolsSkipsSchemalessTools(t *testing.T) {
	a := &staticAdapter{tools: []models.ToolInfo{
		{Name: "good", Description: "has a schema", Schema: map[string]any{"type": "object"}},
		{Name: "bare", Description: "no schema"},
	}}
	m := NewManager(a)
	t.Cleanup(m.CloseAll)
	ctx := context.Background()

	require.NoError(t, m.Connect(ctx, stdioSpec("fs")))

	tools, err := m.ListTools(ctx, "fs")
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "good", tools[0].Name)
}

func TestManager_RegisterConcurrentWithSelection(t *testing.T) {
	m := NewManager(&staticAdapter{})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			m.Register(&staticAdapter{})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			_, err := m.AdapterFor(stdioSpec("fs").Launch)
			assert.NoError(t, err)
			_ = m.Adapters()
		}
	}()
	wg.Wait()

	assert.Len(t, m.Adapters(), 21)
}

func TestStdioAdapter_Identity(t *testing.T) {
	a := NewStdioAdapter()
	assert.Equal(t, models.TransportStdio, a.Kind())
	assert.Equal(t, "stdio", a.Name())
	assert.NotEmpty(t, a.Version())
}

func TestValidateArgs(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []any{"path", "mode"},
	}

	err := ValidateArgs("read", schema, map[string]any{"path": "/x"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"mode"}, verr.Missing)

	assert.NoError(t, ValidateArgs("read", schema, map[string]any{"path": "/x", "mode": "r"}))
	assert.NoError(t, ValidateArgs("read", nil, map[string]any{}))

	// Native []string form used by hand-built schemas.
	assert.Error(t, ValidateArgs("read", map[string]any{"required": []string{"path"}}, map[string]any{}))

	// No type coercion: a present field of the wrong type still passes.
	assert.NoError(t, ValidateArgs("read", schema, map[string]any{"path": 42, "mode": nil}))
}
