package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageRecord holds the schema definition for the UsageRecord entity: one
// row per tool invocation, successful or not.
type UsageRecord struct {
	ent.Schema
}

// Fields of the UsageRecord.
func (UsageRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("server_id"),
		field.String("tool_name"),
		field.Float("duration").
			Comment("Invocation wall time in seconds"),
		field.Bool("success"),
		field.Time("timestamp").
			Default(time.Now),
	}
}

// Annotations of the UsageRecord.
func (UsageRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "server_usage"},
	}
}

// Edges of the UsageRecord.
func (UsageRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("server", Server.Type).
			Ref("usage").
			Unique().
			Required().
			Field("server_id"),
	}
}

// Indexes of the UsageRecord.
func (UsageRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("server_id"),
		index.Fields("timestamp"),
	}
}
