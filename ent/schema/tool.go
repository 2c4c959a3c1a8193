package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tool holds the schema definition for the Tool entity: one named operation
// advertised by a server, with its JSON argument schema.
type Tool struct {
	ent.Schema
}

// Fields of the Tool.
func (Tool) Fields() []ent.Field {
	return []ent.Field{
		field.String("server_id"),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.JSON("schema", map[string]interface{}{}).
			Optional().
			Comment("JSON schema for the tool's arguments"),
	}
}

// Edges of the Tool.
func (Tool) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("server", Server.Type).
			Ref("tools").
			Unique().
			Required().
			Field("server_id"),
	}
}

// Indexes of the Tool.
func (Tool) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("server_id"),
		index.Fields("server_id", "name").
			Unique(),
	}
}
