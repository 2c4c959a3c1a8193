// Code generated by ent, DO NOT EDIT.

package server

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the server type in the database.
	Label = "server"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "server_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldTransportKind holds the string denoting the transport_kind field in the database.
	FieldTransportKind = "transport_kind"
	// FieldCommand holds the string denoting the command field in the database.
	FieldCommand = "command"
	// FieldArgs holds the string denoting the args field in the database.
	FieldArgs = "args"
	// FieldEnv holds the string denoting the env field in the database.
	FieldEnv = "env"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCapabilities holds the string denoting the capabilities edge name in mutations.
	EdgeCapabilities = "capabilities"
	// EdgeTools holds the string denoting the tools edge name in mutations.
	EdgeTools = "tools"
	// EdgeHealth holds the string denoting the health edge name in mutations.
	EdgeHealth = "health"
	// EdgeUsage holds the string denoting the usage edge name in mutations.
	EdgeUsage = "usage"
	// EdgeTags holds the string denoting the tags edge name in mutations.
	EdgeTags = "tags"
	// EdgeServerCapabilities holds the string denoting the server_capabilities edge name in mutations.
	EdgeServerCapabilities = "server_capabilities"
	// CapabilityFieldID holds the string denoting the ID field of the Capability.
	CapabilityFieldID = "id"
	// ToolFieldID holds the string denoting the ID field of the Tool.
	ToolFieldID = "id"
	// HealthRecordFieldID holds the string denoting the ID field of the HealthRecord.
	HealthRecordFieldID = "id"
	// UsageRecordFieldID holds the string denoting the ID field of the UsageRecord.
	UsageRecordFieldID = "id"
	// ServerTagFieldID holds the string denoting the ID field of the ServerTag.
	ServerTagFieldID = "id"
	// ServerCapabilityFieldID holds the string denoting the ID field of the ServerCapability.
	ServerCapabilityFieldID = "id"
	// Table holds the table name of the server in the database.
	Table = "servers"
	// CapabilitiesTable is the table that holds the capabilities relation/edge. The primary key declared below.
	CapabilitiesTable = "server_capabilities"
	// CapabilitiesInverseTable is the table name for the Capability entity.
	// It exists in this package in order to avoid circular dependency with the "capability" package.
	CapabilitiesInverseTable = "capabilities"
	// ToolsTable is the table that holds the tools relation/edge.
	ToolsTable = "tools"
	// ToolsInverseTable is the table name for the Tool entity.
	// It exists in this package in order to avoid circular dependency with the "tool" package.
	ToolsInverseTable = "tools"
	// ToolsColumn is the table column denoting the tools relation/edge.
	ToolsColumn = "server_id"
	// HealthTable is the table that holds the health relation/edge.
	HealthTable = "server_health"
	// HealthInverseTable is the table name for the HealthRecord entity.
	// It exists in this package in order to avoid circular dependency with the "healthrecord" package.
	HealthInverseTable = "server_health"
	// HealthColumn is the table column denoting the health relation/edge.
	HealthColumn = "server_id"
	// UsageTable is the table that holds the usage relation/edge.
	UsageTable = "server_usage"
	// UsageInverseTable is the table name for the UsageRecord entity.
	// It exists in this package in order to avoid circular dependency with the "usagerecord" package.
	UsageInverseTable = "server_usage"
	// UsageColumn is the table column denoting the usage relation/edge.
	UsageColumn = "server_id"
	// TagsTable is the table that holds the tags relation/edge.
	TagsTable = "server_tags"
	// TagsInverseTable is the table name for the ServerTag entity.
	// It exists in this package in order to avoid circular dependency with the "servertag" package.
	TagsInverseTable = "server_tags"
	// TagsColumn is the table column denoting the tags relation/edge.
	TagsColumn = "server_id"
	// ServerCapabilitiesTable is the table that holds the server_capabilities relation/edge.
	ServerCapabilitiesTable = "server_capabilities"
	// ServerCapabilitiesInverseTable is the table name for the ServerCapability entity.
	// It exists in this package in order to avoid circular dependency with the "servercapability" package.
	ServerCapabilitiesInverseTable = "server_capabilities"
	// ServerCapabilitiesColumn is the table column denoting the server_capabilities relation/edge.
	ServerCapabilitiesColumn = "server_id"
)

// Columns holds all SQL columns for server fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldTransportKind,
	FieldCommand,
	FieldArgs,
	FieldEnv,
	FieldURL,
	FieldCreatedAt,
	FieldUpdatedAt,
}

var (
	// CapabilitiesPrimaryKey and CapabilitiesColumn2 are the table columns denoting the
	// primary key for the capabilities relation (M2M).
	CapabilitiesPrimaryKey = []string{"server_id", "capability_id"}
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

var (
	// DefaultTransportKind holds the default value on creation for the "transport_kind" field.
	DefaultTransportKind string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Server queries.
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

// ByTransportKind orders the results by the transport_kind field.
func ByTransportKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransportKind, opts...).ToFunc()
}

// ByCommand orders the results by the command field.
func ByCommand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommand, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCapabilitiesCount orders the results by capabilities count.
func ByCapabilitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCapabilitiesStep(), opts...)
	}
}

// ByCapabilities orders the results by capabilities terms.
func ByCapabilities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCapabilitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByToolsCount orders the results by tools count.
func ByToolsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newToolsStep(), opts...)
	}
}

// ByTools orders the results by tools terms.
func ByTools(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newToolsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByHealthField orders the results by health field.
func ByHealthField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHealthStep(), sql.OrderByField(field, opts...))
	}
}

// ByUsageCount orders the results by usage count.
func ByUsageCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUsageStep(), opts...)
	}
}

// ByUsage orders the results by usage terms.
func ByUsage(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsageStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTagsCount orders the results by tags count.
func ByTagsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTagsStep(), opts...)
	}
}

// ByTags orders the results by tags terms.
func ByTags(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTagsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newCapabilitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CapabilitiesInverseTable, CapabilityFieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, CapabilitiesTable, CapabilitiesPrimaryKey...),
	)
}
func newToolsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToolsInverseTable, ToolFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ToolsTable, ToolsColumn),
	)
}
func newHealthStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HealthInverseTable, HealthRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, HealthTable, HealthColumn),
	)
}
func newUsageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsageInverseTable, UsageRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UsageTable, UsageColumn),
	)
}
func newTagsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TagsInverseTable, ServerTagFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TagsTable, TagsColumn),
	)
}
func newServerCapabilitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ServerCapabilitiesInverseTable, ServerCapabilityFieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, ServerCapabilitiesTable, ServerCapabilitiesColumn),
	)
}
