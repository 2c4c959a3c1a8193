// Package models defines the domain types shared across the router engine:
// server specs, launch specs, tools, health snapshots, and usage records.
package models

// TransportKind identifies how a server is reached. Stdio is the only
// transport shipped today; HTTP and SSE follow the same launch-spec shape.
type TransportKind string

const (
	TransportStdio TransportKind = "stdio"
	TransportHTTP  TransportKind = "streamable-http"
	TransportSSE   TransportKind = "sse"
)

// LaunchSpec carries the transport-specific data needed to bring a server
// online. For stdio that is the command line and an environment overlay
// merged onto the parent environment; for remote transports it is a URL.
type LaunchSpec struct {
	Kind    TransportKind     `json:"transport_kind"`
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
	URL     string            `json:"url,omitempty"`
}

// ServerSpec is a registered MCP endpoint as the engine sees it.
type ServerSpec struct {
	ID           string     `json:"id"`
	Name         string     `json:"name,omitempty"`
	Description  string     `json:"description,omitempty"`
	Launch       LaunchSpec `json:"launch"`
	Capabilities []string   `json:"capabilities,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
}

// ToolInfo is one tool advertised by a server, normalized from the MCP
// tools/list response.
type ToolInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Schema      map[string]any `json:"schema,omitempty"`
}
