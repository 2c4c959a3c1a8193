// Code generated by ent, DO NOT EDIT.

package capability

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the capability type in the database.
	Label = "capability"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// EdgeServers holds the string denoting the servers edge name in mutations.
	EdgeServers = "servers"
	// EdgeServerCapabilities holds the string denoting the server_capabilities edge name in mutations.
	EdgeServerCapabilities = "server_capabilities"
	// ServerFieldID holds the string denoting the ID field of the Server.
	ServerFieldID = "server_id"
	// Table holds the table name of the capability in the database.
	Table = "capabilities"
	// ServersTable is the table that holds the servers relation/edge. The primary key declared below.
	ServersTable = "server_capabilities"
	// ServersInverseTable is the table name for the Server entity.
	// It exists in this package in order to avoid circular dependency with the "server" package.
	ServersInverseTable = "servers"
	// ServerCapabilitiesTable is the table that holds the server_capabilities relation/edge.
	ServerCapabilitiesTable = "server_capabilities"
	// ServerCapabilitiesInverseTable is the table name for the ServerCapability entity.
	// It exists in this package in order to avoid circular dependency with the "servercapability" package.
	ServerCapabilitiesInverseTable = "server_capabilities"
	// ServerCapabilitiesColumn is the table column denoting the server_capabilities relation/edge.
	ServerCapabilitiesColumn = "capability_id"
)

// Columns holds all SQL columns for capability fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
}

var (
	// ServersPrimaryKey and ServersColumn2 are the table columns denoting the
	// primary key for the servers relation (M2M).
	ServersPrimaryKey = []string{"server_id", "capability_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the Capability queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByServersCount orders the results by servers count.
func ByServersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newServersStep(), opts...)
	}
}

// ByServers orders the results by servers terms.
func ByServers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newServersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByServerCapabilitiesCount orders the results by server_capabilities count.
func ByServerCapabilitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newServerCapabilitiesStep(), opts...)
	}
}

// ByServerCapabilities orders the results by server_capabilities terms.
func ByServerCapabilities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newServerCapabilitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newServersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ServersInverseTable, ServerFieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, ServersTable, ServersPrimaryKey...),
	)
}
func newServerCapabilitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ServerCapabilitiesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, ServerCapabilitiesTable, ServerCapabilitiesColumn),
	)
}
