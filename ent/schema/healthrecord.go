package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// HealthRecord holds the schema definition for the HealthRecord entity:
// the single durable health row per server, updated in place by probes.
type HealthRecord struct {
	ent.Schema
}

// Fields of the HealthRecord.
func (HealthRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("server_id").
			Unique(),
		field.Enum("status").
			Values("online", "offline", "error", "unknown").
			Default("unknown"),
		field.Time("last_check").
			Optional().
			Nillable(),
		field.Time("last_successful_connection").
			Optional().
			Nillable(),
		field.Int("error_count").
			Default(0).
			Comment("Consecutive failed probes since the last success"),
		field.Float("avg_response_time").
			Default(0).
			Comment("EWMA of probe response times in seconds"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Annotations of the HealthRecord.
func (HealthRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "server_health"},
	}
}

// Edges of the HealthRecord.
func (HealthRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("server", Server.Type).
			Ref("health").
			Unique().
			Required().
			Field("server_id"),
	}
}
