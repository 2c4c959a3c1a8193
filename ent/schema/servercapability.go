package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ServerCapability is the explicit join row between servers and
// capabilities. Modeled as its own entity so both foreign keys carry
// ON DELETE CASCADE and their own indices.
type ServerCapability struct {
	ent.Schema
}

// Fields of the ServerCapability.
func (ServerCapability) Fields() []ent.Field {
	return []ent.Field{
		field.String("server_id"),
		field.Int("capability_id"),
	}
}

// Edges of the ServerCapability.
func (ServerCapability) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("server", Server.Type).
			Unique().
			Required().
			Field("server_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("capability", Capability.Type).
			Unique().
			Required().
			Field("capability_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ServerCapability.
func (ServerCapability) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("server_id"),
		index.Fields("capability_id"),
		index.Fields("server_id", "capability_id").
			Unique(),
	}
}
