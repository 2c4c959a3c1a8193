// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mcp-router/mcp-router/ent/healthrecord"
	"github.com/mcp-router/mcp-router/ent/schema"
	"github.com/mcp-router/mcp-router/ent/server"
	"github.com/mcp-router/mcp-router/ent/usagerecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	healthrecordFields := schema.HealthRecord{}.Fields()
	_ = healthrecordFields
	// healthrecordDescErrorCount is the schema descriptor for error_count field.
	healthrecordDescErrorCount := healthrecordFields[4].Descriptor()
	// healthrecord.DefaultErrorCount holds the default value on creation for the error_count field.
	healthrecord.DefaultErrorCount = healthrecordDescErrorCount.Default.(int)
	// healthrecordDescAvgResponseTime is the schema descriptor for avg_response_time field.
	healthrecordDescAvgResponseTime := healthrecordFields[5].Descriptor()
	// healthrecord.DefaultAvgResponseTime holds the default value on creation for the avg_response_time field.
	healthrecord.DefaultAvgResponseTime = healthrecordDescAvgResponseTime.Default.(float64)
	// healthrecordDescUpdatedAt is the schema descriptor for updated_at field.
	healthrecordDescUpdatedAt := healthrecordFields[6].Descriptor()
	// healthrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	healthrecord.DefaultUpdatedAt = healthrecordDescUpdatedAt.Default.(func() time.Time)
	// healthrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	healthrecord.UpdateDefaultUpdatedAt = healthrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	serverFields := schema.Server{}.Fields()
	_ = serverFields
	// serverDescTransportKind is the schema descriptor for transport_kind field.
	serverDescTransportKind := serverFields[3].Descriptor()
	// server.DefaultTransportKind holds the default value on creation for the transport_kind field.
	server.DefaultTransportKind = serverDescTransportKind.Default.(string)
	// serverDescCreatedAt is the schema descriptor for created_at field.
	serverDescCreatedAt := serverFields[8].Descriptor()
	// server.DefaultCreatedAt holds the default value on creation for the created_at field.
	server.DefaultCreatedAt = serverDescCreatedAt.Default.(func() time.Time)
	// serverDescUpdatedAt is the schema descriptor for updated_at field.
	serverDescUpdatedAt := serverFields[9].Descriptor()
	// server.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	server.DefaultUpdatedAt = serverDescUpdatedAt.Default.(func() time.Time)
	// server.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	server.UpdateDefaultUpdatedAt = serverDescUpdatedAt.UpdateDefault.(func() time.Time)
	usagerecordFields := schema.UsageRecord{}.Fields()
	_ = usagerecordFields
	// usagerecordDescTimestamp is the schema descriptor for timestamp field.
	usagerecordDescTimestamp := usagerecordFields[4].Descriptor()
	// usagerecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	usagerecord.DefaultTimestamp = usagerecordDescTimestamp.Default.(func() time.Time)
}
