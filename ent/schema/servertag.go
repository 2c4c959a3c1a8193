package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ServerTag holds the schema definition for the ServerTag entity: a free
// form label attached to a server.
type ServerTag struct {
	ent.Schema
}

// Fields of the ServerTag.
func (ServerTag) Fields() []ent.Field {
	return []ent.Field{
		field.String("server_id"),
		field.String("tag"),
	}
}

// Edges of the ServerTag.
func (ServerTag) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("server", Server.Type).
			Ref("tags").
			Unique().
			Required().
			Field("server_id"),
	}
}

// Indexes of the ServerTag.
func (ServerTag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tag"),
		index.Fields("server_id", "tag").
			Unique(),
	}
}
