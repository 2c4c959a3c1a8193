// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Capability is the predicate function for capability builders.
type Capability func(*sql.Selector)

// HealthRecord is the predicate function for healthrecord builders.
type HealthRecord func(*sql.Selector)

// Server is the predicate function for server builders.
type Server func(*sql.Selector)

// ServerCapability is the predicate function for servercapability builders.
type ServerCapability func(*sql.Selector)

// ServerTag is the predicate function for servertag builders.
type ServerTag func(*sql.Selector)

// Tool is the predicate function for tool builders.
type Tool func(*sql.Selector)

// UsageRecord is the predicate function for usagerecord builders.
type UsageRecord func(*sql.Selector)
