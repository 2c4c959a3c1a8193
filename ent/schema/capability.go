package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Capability holds the schema definition for the Capability entity.
// Capabilities are shared across servers; the join rows carry the cascade.
type Capability struct {
	ent.Schema
}

// Fields of the Capability.
func (Capability) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Comment("Lowercase capability identifier, e.g. 'filesystem'"),
		field.Text("description").
			Optional(),
	}
}

// Edges of the Capability.
func (Capability) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("servers", Server.Type).
			Ref("capabilities").
			Through("server_capabilities", ServerCapability.Type),
	}
}
