// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mcp-router/mcp-router/ent/healthrecord"
	"github.com/mcp-router/mcp-router/ent/server"
)

// Server is the model entity for the Server schema.
type Server struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Transport discriminator: stdio, streamable-http, sse
	TransportKind string `json:"transport_kind,omitempty"`
	// Launch command for stdio transports
	Command string `json:"command,omitempty"`
	// Args holds the value of the "args" field.
	Args []string `json:"args,omitempty"`
	// Environment overlay merged onto the parent environment
	Env map[string]string `json:"env,omitempty"`
	// Endpoint for remote transports
	URL string `json:"url,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ServerQuery when eager-loading is set.
	Edges        ServerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ServerEdges holds the relations/edges for other nodes in the graph.
type ServerEdges struct {
	// Capabilities holds the value of the capabilities edge.
	Capabilities []*Capability `json:"capabilities,omitempty"`
	// Tools holds the value of the tools edge.
	Tools []*Tool `json:"tools,omitempty"`
	// Health holds the value of the health edge.
	Health *HealthRecord `json:"health,omitempty"`
	// Usage holds the value of the usage edge.
	Usage []*UsageRecord `json:"usage,omitempty"`
	// Tags holds the value of the tags edge.
	Tags []*ServerTag `json:"tags,omitempty"`
	// ServerCapabilities holds the value of the server_capabilities edge.
	ServerCapabilities []*ServerCapability `json:"server_capabilities,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// CapabilitiesOrErr returns the Capabilities value or an error if the edge
// was not loaded in eager-loading.
func (e ServerEdges) CapabilitiesOrErr() ([]*Capability, error) {
	if e.loadedTypes[0] {
		return e.Capabilities, nil
	}
	return nil, &NotLoadedError{edge: "capabilities"}
}

// ToolsOrErr returns the Tools value or an error if the edge
// was not loaded in eager-loading.
func (e ServerEdges) ToolsOrErr() ([]*Tool, error) {
	if e.loadedTypes[1] {
		return e.Tools, nil
	}
	return nil, &NotLoadedError{edge: "tools"}
}

// HealthOrErr returns the Health value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ServerEdges) HealthOrErr() (*HealthRecord, error) {
	if e.Health != nil {
		return e.Health, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: healthrecord.Label}
	}
	return nil, &NotLoadedError{edge: "health"}
}

// UsageOrErr returns the Usage value or an error if the edge
// was not loaded in eager-loading.
func (e ServerEdges) UsageOrErr() ([]*UsageRecord, error) {
	if e.loadedTypes[3] {
		return e.Usage, nil
	}
	return nil, &NotLoadedError{edge: "usage"}
}

// TagsOrErr returns the Tags value or an error if the edge
// was not loaded in eager-loading.
func (e ServerEdges) TagsOrErr() ([]*ServerTag, error) {
	if e.loadedTypes[4] {
		return e.Tags, nil
	}
	return nil, &NotLoadedError{edge: "tags"}
}

// ServerCapabilitiesOrErr returns the ServerCapabilities value or an error if the edge
// was not loaded in eager-loading.
func (e ServerEdges) ServerCapabilitiesOrErr() ([]*ServerCapability, error) {
	if e.loadedTypes[5] {
		return e.ServerCapabilities, nil
	}
	return nil, &NotLoadedError{edge: "server_capabilities"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Server) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case server.FieldArgs, server.FieldEnv:
			values[i] = new([]byte)
		case server.FieldID, server.FieldName, server.FieldDescription, server.FieldTransportKind, server.FieldCommand, server.FieldURL:
			values[i] = new(sql.NullString)
		case server.FieldCreatedAt, server.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Server fields.
func (_m *Server) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case server.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case server.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case server.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case server.FieldTransportKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transport_kind", values[i])
			} else if value.Valid {
				_m.TransportKind = value.String
			}
		case server.FieldCommand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command", values[i])
			} else if value.Valid {
				_m.Command = value.String
			}
		case server.FieldArgs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field args", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Args); err != nil {
					return fmt.Errorf("unmarshal field args: %w", err)
				}
			}
		case server.FieldEnv:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field env", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Env); err != nil {
					return fmt.Errorf("unmarshal field env: %w", err)
				}
			}
		case server.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case server.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case server.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Server.
// This includes values selected through modifiers, order, etc.
func (_m *Server) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCapabilities queries the "capabilities" edge of the Server entity.
func (_m *Server) QueryCapabilities() *CapabilityQuery {
	return NewServerClient(_m.config).QueryCapabilities(_m)
}

// QueryTools queries the "tools" edge of the Server entity.
func (_m *Server) QueryTools() *ToolQuery {
	return NewServerClient(_m.config).QueryTools(_m)
}

// QueryHealth queries the "health" edge of the Server entity.
func (_m *Server) QueryHealth() *HealthRecordQuery {
	return NewServerClient(_m.config).QueryHealth(_m)
}

// QueryUsage queries the "usage" edge of the Server entity.
func (_m *Server) QueryUsage() *UsageRecordQuery {
	return NewServerClient(_m.config).QueryUsage(_m)
}

// QueryTags queries the "tags" edge of the Server entity.
func (_m *Server) QueryTags() *ServerTagQuery {
	return NewServerClient(_m.config).QueryTags(_m)
}

// QueryServerCapabilities queries the "server_capabilities" edge of the Server entity.
func (_m *Server) QueryServerCapabilities() *ServerCapabilityQuery {
	return NewServerClient(_m.config).QueryServerCapabilities(_m)
}

// Update returns a builder for updating this Server.
// Note that you need to call Server.Unwrap() before calling this method if this Server
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Server) Update() *ServerUpdateOne {
	return NewServerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Server entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Server) Unwrap() *Server {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Server is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Server) String() string {
	var builder strings.Builder
	builder.WriteString("Server(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("transport_kind=")
	builder.WriteString(_m.TransportKind)
	builder.WriteString(", ")
	builder.WriteString("command=")
	builder.WriteString(_m.Command)
	builder.WriteString(", ")
	builder.WriteString("args=")
	builder.WriteString(fmt.Sprintf("%v", _m.Args))
	builder.WriteString(", ")
	builder.WriteString("env=")
	builder.WriteString(fmt.Sprintf("%v", _m.Env))
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Servers is a parsable slice of Server.
type Servers []*Server
