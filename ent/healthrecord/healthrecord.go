// Code generated by ent, DO NOT EDIT.

package healthrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the healthrecord type in the database.
	Label = "health_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldServerID holds the string denoting the server_id field in the database.
	FieldServerID = "server_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastCheck holds the string denoting the last_check field in the database.
	FieldLastCheck = "last_check"
	// FieldLastSuccessfulConnection holds the string denoting the last_successful_connection field in the database.
	FieldLastSuccessfulConnection = "last_successful_connection"
	// FieldErrorCount holds the string denoting the error_count field in the database.
	FieldErrorCount = "error_count"
	// FieldAvgResponseTime holds the string denoting the avg_response_time field in the database.
	FieldAvgResponseTime = "avg_response_time"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeServer holds the string denoting the server edge name in mutations.
	EdgeServer = "server"
	// ServerFieldID holds the string denoting the ID field of the Server.
	ServerFieldID = "server_id"
	// Table holds the table name of the healthrecord in the database.
	Table = "server_health"
	// ServerTable is the table that holds the server relation/edge.
	ServerTable = "server_health"
	// ServerInverseTable is the table name for the Server entity.
	// It exists in this package in order to avoid circular dependency with the "server" package.
	ServerInverseTable = "servers"
	// ServerColumn is the table column denoting the server relation/edge.
	ServerColumn = "server_id"
)

// Columns holds all SQL columns for healthrecord fields.
var Columns = []string{
	FieldID,
	FieldServerID,
	FieldStatus,
	FieldLastCheck,
	FieldLastSuccessfulConnection,
	FieldErrorCount,
	FieldAvgResponseTime,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultErrorCount holds the default value on creation for the "error_count" field.
	DefaultErrorCount int
	// DefaultAvgResponseTime holds the default value on creation for the "avg_response_time" field.
	DefaultAvgResponseTime float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusUnknown is the default value of the Status enum.
const DefaultStatus = StatusUnknown

// Status values.
const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
	StatusError   Status = "error"
	StatusUnknown Status = "unknown"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOnline, StatusOffline, StatusError, StatusUnknown:
		return nil
	default:
		return fmt.Errorf("healthrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the HealthRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByServerID orders the results by the server_id field.
func ByServerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServerID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastCheck orders the results by the last_check field.
func ByLastCheck(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCheck, opts...).ToFunc()
}

// ByLastSuccessfulConnection orders the results by the last_successful_connection field.
func ByLastSuccessfulConnection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSuccessfulConnection, opts...).ToFunc()
}

// ByErrorCount orders the results by the error_count field.
func ByErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCount, opts...).ToFunc()
}

// ByAvgResponseTime orders the results by the avg_response_time field.
func ByAvgResponseTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgResponseTime, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByServerField orders the results by server field.
func ByServerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newServerStep(), sql.OrderByField(field, opts...))
	}
}
func newServerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ServerInverseTable, ServerFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ServerTable, ServerColumn),
	)
}
