package adapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcp-router/mcp-router/pkg/models"
	"github.com/mcp-router/mcp-router/pkg/version"
)

// connectTimeout bounds the MCP handshake for child processes.
const connectTimeout = 10 * time.Second

// StdioAdapter launches a server as a child process speaking MCP over its
// stdin/stdout. The spec's env overlay is merged onto the parent
// environment; the working directory is inherited.
type StdioAdapter struct {
	logger *slog.Logger
}

// NewStdioAdapter creates the stdio adapter.
func NewStdioAdapter() *StdioAdapter {
	return &StdioAdapter{logger: slog.With("subsystem", "adapter.stdio")}
}

// Kind returns the stdio transport discriminator.
func (a *StdioAdapter) Kind() models.TransportKind {
	return models.TransportStdio
}

// Name identifies the adapter implementation.
func (a *StdioAdapter) Name() string {
	return "stdio"
}

// Version reports the adapter version, tied to the build.
func (a *StdioAdapter) Version() string {
	return version.GitCommit
}

// CanHandle accepts any spec carrying a launch command.
func (a *StdioAdapter) CanHandle(spec models.LaunchSpec) bool {
	return spec.Command != ""
}

// Connect spawns the child process and performs the MCP handshake.
func (a *StdioAdapter) Connect(ctx context.Context, spec models.ServerSpec) (Connection, error) {
	if spec.Launch.Command == "" {
		return nil, fmt.Errorf("stdio launch spec for %q has no command", spec.ID)
	}

	cmd := exec.Command(spec.Launch.Command, spec.Launch.Args...)
	env := os.Environ()
	for k, v := range spec.Launch.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Env = env

	transport := &mcpsdk.CommandTransport{Command: cmd}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(connectCtx, transport, nil)
	if err != nil {
		// Close the transport if possible so a half-started child does not
		// linger.
		if closer, ok := any(transport).(io.Closer); ok {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("failed to connect to %q: %w", spec.ID, err)
	}

	a.logger.Info("Connected stdio server", "server", spec.ID, "command", spec.Launch.Command)
	return &sessionConn{session: session}, nil
}

// sessionConn adapts an MCP SDK session to the Connection interface.
type sessionConn struct {
	session *mcpsdk.ClientSession
}

func (c *sessionConn) ListTools(ctx context.Context) ([]models.ToolInfo, error) {
	result, err := c.session.ListTools(ctx, nil)
	if err != nil {
		return nil, err
	}
	tools := make([]models.ToolInfo, 0, len(result.Tools))
	for _, t := range result.Tools {
		tools = append(tools, toolInfoFromSDK(t))
	}
	return tools, nil
}

func (c *sessionConn) CallTool(ctx context.Context, name string, args map[string]any) (*ToolResult, error) {
	result, err := c.session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return nil, err
	}
	return resultFromSDK(result), nil
}

func (c *sessionConn) Close() error {
	return c.session.Close()
}
