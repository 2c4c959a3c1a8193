package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Server holds the schema definition for the Server entity. It is the root
// of the metadata graph; deleting a server cascades to everything that
// references it.
type Server struct {
	ent.Schema
}

// Fields of the Server.
func (Server) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("server_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.String("transport_kind").
			Default("stdio").
			Comment("Transport discriminator: stdio, streamable-http, sse"),
		field.String("command").
			Optional().
			Comment("Launch command for stdio transports"),
		field.JSON("args", []string{}).
			Optional(),
		field.JSON("env", map[string]string{}).
			Optional().
			Comment("Environment overlay merged onto the parent environment"),
		field.String("url").
			Optional().
			Comment("Endpoint for remote transports"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Server.
func (Server) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("capabilities", Capability.Type).
			Through("server_capabilities", ServerCapability.Type),
		edge.To("tools", Tool.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("health", HealthRecord.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("usage", UsageRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tags", ServerTag.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
