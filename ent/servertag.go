// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mcp-router/mcp-router/ent/server"
	"github.com/mcp-router/mcp-router/ent/servertag"
)

// ServerTag is the model entity for the ServerTag schema.
type ServerTag struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ServerID holds the value of the "server_id" field.
	ServerID string `json:"server_id,omitempty"`
	// Tag holds the value of the "tag" field.
	Tag string `json:"tag,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ServerTagQuery when eager-loading is set.
	Edges        ServerTagEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ServerTagEdges holds the relations/edges for other nodes in the graph.
type ServerTagEdges struct {
	// Server holds the value of the server edge.
	Server *Server `json:"server,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ServerOrErr returns the Server value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ServerTagEdges) ServerOrErr() (*Server, error) {
	if e.Server != nil {
		return e.Server, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: server.Label}
	}
	return nil, &NotLoadedError{edge: "server"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ServerTag) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case servertag.FieldID:
			values[i] = new(sql.NullInt64)
		case servertag.FieldServerID, servertag.FieldTag:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ServerTag fields.
func (_m *ServerTag) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case servertag.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case servertag.FieldServerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field server_id", values[i])
			} else if value.Valid {
				_m.ServerID = value.String
			}
		case servertag.FieldTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tag", values[i])
			} else if value.Valid {
				_m.Tag = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ServerTag.
// This includes values selected through modifiers, order, etc.
func (_m *ServerTag) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryServer queries the "server" edge of the ServerTag entity.
func (_m *ServerTag) QueryServer() *ServerQuery {
	return NewServerTagClient(_m.config).QueryServer(_m)
}

// Update returns a builder for updating this ServerTag.
// Note that you need to call ServerTag.Unwrap() before calling this method if this ServerTag
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ServerTag) Update() *ServerTagUpdateOne {
	return NewServerTagClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ServerTag entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ServerTag) Unwrap() *ServerTag {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ServerTag is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ServerTag) String() string {
	var builder strings.Builder
	builder.WriteString("ServerTag(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("server_id=")
	builder.WriteString(_m.ServerID)
	builder.WriteString(", ")
	builder.WriteString("tag=")
	builder.WriteString(_m.Tag)
	builder.WriteByte(')')
	return builder.String()
}

// ServerTags is a parsable slice of ServerTag.
type ServerTags []*ServerTag
