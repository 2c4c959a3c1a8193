// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mcp-router/mcp-router/ent/healthrecord"
	"github.com/mcp-router/mcp-router/ent/server"
)

// HealthRecord is the model entity for the HealthRecord schema.
type HealthRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ServerID holds the value of the "server_id" field.
	ServerID string `json:"server_id,omitempty"`
	// Status holds the value of the "status" field.
	Status healthrecord.Status `json:"status,omitempty"`
	// LastCheck holds the value of the "last_check" field.
	LastCheck *time.Time `json:"last_check,omitempty"`
	// LastSuccessfulConnection holds the value of the "last_successful_connection" field.
	LastSuccessfulConnection *time.Time `json:"last_successful_connection,omitempty"`
	// Consecutive failed probes since the last success
	ErrorCount int `json:"error_count,omitempty"`
	// EWMA of probe response times in seconds
	AvgResponseTime float64 `json:"avg_response_time,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HealthRecordQuery when eager-loading is set.
	Edges        HealthRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HealthRecordEdges holds the relations/edges for other nodes in the graph.
type HealthRecordEdges struct {
	// Server holds the value of the server edge.
	Server *Server `json:"server,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ServerOrErr returns the Server value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HealthRecordEdges) ServerOrErr() (*Server, error) {
	if e.Server != nil {
		return e.Server, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: server.Label}
	}
	return nil, &NotLoadedError{edge: "server"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HealthRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case healthrecord.FieldAvgResponseTime:
			values[i] = new(sql.NullFloat64)
		case healthrecord.FieldID, healthrecord.FieldErrorCount:
			values[i] = new(sql.NullInt64)
		case healthrecord.FieldServerID, healthrecord.FieldStatus:
			values[i] = new(sql.NullString)
		case healthrecord.FieldLastCheck, healthrecord.FieldLastSuccessfulConnection, healthrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HealthRecord fields.
func (_m *HealthRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case healthrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case healthrecord.FieldServerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field server_id", values[i])
			} else if value.Valid {
				_m.ServerID = value.String
			}
		case healthrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = healthrecord.Status(value.String)
			}
		case healthrecord.FieldLastCheck:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_check", values[i])
			} else if value.Valid {
				_m.LastCheck = new(time.Time)
				*_m.LastCheck = value.Time
			}
		case healthrecord.FieldLastSuccessfulConnection:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_successful_connection", values[i])
			} else if value.Valid {
				_m.LastSuccessfulConnection = new(time.Time)
				*_m.LastSuccessfulConnection = value.Time
			}
		case healthrecord.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = int(value.Int64)
			}
		case healthrecord.FieldAvgResponseTime:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_response_time", values[i])
			} else if value.Valid {
				_m.AvgResponseTime = value.Float64
			}
		case healthrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the HealthRecord.
// This includes values selected through modifiers, order, etc.
func (_m *HealthRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryServer queries the "server" edge of the HealthRecord entity.
func (_m *HealthRecord) QueryServer() *ServerQuery {
	return NewHealthRecordClient(_m.config).QueryServer(_m)
}

// Update returns a builder for updating this HealthRecord.
// Note that you need to call HealthRecord.Unwrap() before calling this method if this HealthRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HealthRecord) Update() *HealthRecordUpdateOne {
	return NewHealthRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HealthRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HealthRecord) Unwrap() *HealthRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HealthRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HealthRecord) String() string {
	var builder strings.Builder
	builder.WriteString("HealthRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("server_id=")
	builder.WriteString(_m.ServerID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.LastCheck; v != nil {
		builder.WriteString("last_check=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastSuccessfulConnection; v != nil {
		builder.WriteString("last_successful_connection=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteString(", ")
	builder.WriteString("avg_response_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgResponseTime))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HealthRecords is a parsable slice of HealthRecord.
type HealthRecords []*HealthRecord
