// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mcp-router/mcp-router/ent/capability"
)

// Capability is the model entity for the Capability schema.
type Capability struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Lowercase capability identifier, e.g. 'filesystem'
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CapabilityQuery when eager-loading is set.
	Edges        CapabilityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CapabilityEdges holds the relations/edges for other nodes in the graph.
type CapabilityEdges struct {
	// Servers holds the value of the servers edge.
	Servers []*Server `json:"servers,omitempty"`
	// ServerCapabilities holds the value of the server_capabilities edge.
	ServerCapabilities []*ServerCapability `json:"server_capabilities,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ServersOrErr returns the Servers value or an error if the edge
// was not loaded in eager-loading.
func (e CapabilityEdges) ServersOrErr() ([]*Server, error) {
	if e.loadedTypes[0] {
		return e.Servers, nil
	}
	return nil, &NotLoadedError{edge: "servers"}
}

// ServerCapabilitiesOrErr returns the ServerCapabilities value or an error if the edge
// was not loaded in eager-loading.
func (e CapabilityEdges) ServerCapabilitiesOrErr() ([]*ServerCapability, error) {
	if e.loadedTypes[1] {
		return e.ServerCapabilities, nil
	}
	return nil, &NotLoadedError{edge: "server_capabilities"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Capability) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case capability.FieldID:
			values[i] = new(sql.NullInt64)
		case capability.FieldName, capability.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Capability fields.
func (_m *Capability) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case capability.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case capability.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case capability.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Capability.
// This includes values selected through modifiers, order, etc.
func (_m *Capability) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryServers queries the "servers" edge of the Capability entity.
func (_m *Capability) QueryServers() *ServerQuery {
	return NewCapabilityClient(_m.config).QueryServers(_m)
}

// QueryServerCapabilities queries the "server_capabilities" edge of the Capability entity.
func (_m *Capability) QueryServerCapabilities() *ServerCapabilityQuery {
	return NewCapabilityClient(_m.config).QueryServerCapabilities(_m)
}

// Update returns a builder for updating this Capability.
// Note that you need to call Capability.Unwrap() before calling this method if this Capability
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Capability) Update() *CapabilityUpdateOne {
	return NewCapabilityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Capability entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Capability) Unwrap() *Capability {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Capability is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Capability) String() string {
	var builder strings.Builder
	builder.WriteString("Capability(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteByte(')')
	return builder.String()
}

// Capabilities is a parsable slice of Capability.
type Capabilities []*Capability
