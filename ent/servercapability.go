// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mcp-router/mcp-router/ent/capability"
	"github.com/mcp-router/mcp-router/ent/server"
	"github.com/mcp-router/mcp-router/ent/servercapability"
)

// ServerCapability is the model entity for the ServerCapability schema.
type ServerCapability struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ServerID holds the value of the "server_id" field.
	ServerID string `json:"server_id,omitempty"`
	// CapabilityID holds the value of the "capability_id" field.
	CapabilityID int `json:"capability_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ServerCapabilityQuery when eager-loading is set.
	Edges        ServerCapabilityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ServerCapabilityEdges holds the relations/edges for other nodes in the graph.
type ServerCapabilityEdges struct {
	// Server holds the value of the server edge.
	Server *Server `json:"server,omitempty"`
	// Capability holds the value of the capability edge.
	Capability *Capability `json:"capability,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ServerOrErr returns the Server value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ServerCapabilityEdges) ServerOrErr() (*Server, error) {
	if e.Server != nil {
		return e.Server, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: server.Label}
	}
	return nil, &NotLoadedError{edge: "server"}
}

// CapabilityOrErr returns the Capability value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ServerCapabilityEdges) CapabilityOrErr() (*Capability, error) {
	if e.Capability != nil {
		return e.Capability, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: capability.Label}
	}
	return nil, &NotLoadedError{edge: "capability"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ServerCapability) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case servercapability.FieldID, servercapability.FieldCapabilityID:
			values[i] = new(sql.NullInt64)
		case servercapability.FieldServerID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ServerCapability fields.
func (_m *ServerCapability) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case servercapability.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case servercapability.FieldServerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field server_id", values[i])
			} else if value.Valid {
				_m.ServerID = value.String
			}
		case servercapability.FieldCapabilityID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field capability_id", values[i])
			} else if value.Valid {
				_m.CapabilityID = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ServerCapability.
// This includes values selected through modifiers, order, etc.
func (_m *ServerCapability) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryServer queries the "server" edge of the ServerCapability entity.
func (_m *ServerCapability) QueryServer() *ServerQuery {
	return NewServerCapabilityClient(_m.config).QueryServer(_m)
}

// QueryCapability queries the "capability" edge of the ServerCapability entity.
func (_m *ServerCapability) QueryCapability() *CapabilityQuery {
	return NewServerCapabilityClient(_m.config).QueryCapability(_m)
}

// Update returns a builder for updating this ServerCapability.
// Note that you need to call ServerCapability.Unwrap() before calling this method if this ServerCapability
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ServerCapability) Update() *ServerCapabilityUpdateOne {
	return NewServerCapabilityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ServerCapability entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ServerCapability) Unwrap() *ServerCapability {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ServerCapability is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ServerCapability) String() string {
	var builder strings.Builder
	builder.WriteString("ServerCapability(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("server_id=")
	builder.WriteString(_m.ServerID)
	builder.WriteString(", ")
	builder.WriteString("capability_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CapabilityID))
	builder.WriteByte(')')
	return builder.String()
}

// ServerCapabilities is a parsable slice of ServerCapability.
type ServerCapabilities []*ServerCapability
