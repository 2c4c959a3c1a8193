// Package adapter provides the transport abstraction between the router and
// MCP servers. An Adapter knows how to bring one transport kind online; a
// Connection is a live handle to a running server. The Manager owns adapter
// selection and the table of active connections.
package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcp-router/mcp-router/pkg/models"
)

// ErrNoAdapter indicates no registered adapter can handle a launch spec.
var ErrNoAdapter = errors.New("no adapter can handle launch spec")

// ErrNotConnected indicates an operation against a server with no live
// connection.
var ErrNotConnected = errors.New("server is not connected")

// Adapter brings servers of one transport kind online. An adapter with an
// empty Kind is generic: it is consulted only when no kind-specific adapter
// accepts the spec.
type Adapter interface {
	// Kind returns the transport discriminator this adapter serves, or ""
	// for a generic adapter.
	Kind() models.TransportKind

	// Name identifies the adapter implementation.
	Name() string

	// Version reports the adapter implementation version.
	Version() string

	// CanHandle reports whether the adapter can bring this spec online.
	CanHandle(spec models.LaunchSpec) bool

	// Connect establishes a live connection. The returned Connection is
	// owned by the caller and must be closed.
	Connect(ctx context.Context, spec models.ServerSpec) (Connection, error)
}

// Connection is a live, transport-specific handle to a running server.
type Connection interface {
	ListTools(ctx context.Context) ([]models.ToolInfo, error)
	CallTool(ctx context.Context, name string, args map[string]any) (*ToolResult, error)
	Close() error
}

// ToolResult is the normalized outcome of a tool invocation.
type ToolResult struct {
	Content []ContentItem `json:"content"`
	IsError bool          `json:"is_error,omitempty"`
}

// ContentItem is one piece of tool output. Non-text content is carried as
// its JSON encoding.
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Text concatenates the textual content of the result.
func (r *ToolResult) Text() string {
	var parts []string
	for _, c := range r.Content {
		if c.Text != "" {
			parts = append(parts, c.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// ToolError is returned when a server reports a failed tool invocation.
type ToolError struct {
	ServerID string
	Tool     string
	Message  string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("tool %s.%s failed: %s", e.ServerID, e.Tool, e.Message)
}

// resultFromSDK converts an MCP SDK call result into a ToolResult.
func resultFromSDK(result *mcpsdk.CallToolResult) *ToolResult {
	out := &ToolResult{IsError: result.IsError}
	for _, c := range result.Content {
		switch item := c.(type) {
		case *mcpsdk.TextContent:
			out.Content = append(out.Content, ContentItem{Type: "text", Text: item.Text})
		default:
			data, err := json.Marshal(item)
			if err != nil {
				continue
			}
			out.Content = append(out.Content, ContentItem{Type: "json", Text: string(data)})
		}
	}
	return out
}

// toolInfoFromSDK normalizes an MCP SDK tool descriptor. The input schema is
// round-tripped through JSON so callers always see a plain map.
func toolInfoFromSDK(tool *mcpsdk.Tool) models.ToolInfo {
	info := models.ToolInfo{
		Name:        tool.Name,
		Description: tool.Description,
	}
	if tool.InputSchema != nil {
		data, err := json.Marshal(tool.InputSchema)
		if err == nil {
			var schema map[string]any
			if json.Unmarshal(data, &schema) == nil {
				info.Schema = schema
			}
		}
	}
	return info
}
