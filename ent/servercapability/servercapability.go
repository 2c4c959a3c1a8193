// Code generated by ent, DO NOT EDIT.

package servercapability

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the servercapability type in the database.
	Label = "server_capability"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldServerID holds the string denoting the server_id field in the database.
	FieldServerID = "server_id"
	// FieldCapabilityID holds the string denoting the capability_id field in the database.
	FieldCapabilityID = "capability_id"
	// EdgeServer holds the string denoting the server edge name in mutations.
	EdgeServer = "server"
	// EdgeCapability holds the string denoting the capability edge name in mutations.
	EdgeCapability = "capability"
	// ServerFieldID holds the string denoting the ID field of the Server.
	ServerFieldID = "server_id"
	// Table holds the table name of the servercapability in the database.
	Table = "server_capabilities"
	// ServerTable is the table that holds the server relation/edge.
	ServerTable = "server_capabilities"
	// ServerInverseTable is the table name for the Server entity.
	// It exists in this package in order to avoid circular dependency with the "server" package.
	ServerInverseTable = "servers"
	// ServerColumn is the table column denoting the server relation/edge.
	ServerColumn = "server_id"
	// CapabilityTable is the table that holds the capability relation/edge.
	CapabilityTable = "server_capabilities"
	// CapabilityInverseTable is the table name for the Capability entity.
	// It exists in this package in order to avoid circular dependency with the "capability" package.
	CapabilityInverseTable = "capabilities"
	// CapabilityColumn is the table column denoting the capability relation/edge.
	CapabilityColumn = "capability_id"
)

// Columns holds all SQL columns for servercapability fields.
var Columns = []string{
	FieldID,
	FieldServerID,
	FieldCapabilityID,
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

// OrderOption defines the ordering options for the ServerCapability queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByServerID orders the results by the server_id field.
func ByServerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServerID, opts...).ToFunc()
}

// ByCapabilityID orders the results by the capability_id field.
func ByCapabilityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapabilityID, opts...).ToFunc()
}

// ByServerField orders the results by server field.
func ByServerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newServerStep(), sql.OrderByField(field, opts...))
	}
}

// ByCapabilityField orders the results by capability field.
func ByCapabilityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCapabilityStep(), sql.OrderByField(field, opts...))
	}
}
func newServerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ServerInverseTable, ServerFieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ServerTable, ServerColumn),
	)
}
func newCapabilityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CapabilityInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, CapabilityTable, CapabilityColumn),
	)
}
