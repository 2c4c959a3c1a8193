// Code generated by ent, DO NOT EDIT.

package servercapability

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mcp-router/mcp-router/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldLTE(FieldID, id))
}

// ServerID applies equality check predicate on the "server_id" field. It's identical to ServerIDEQ.
func ServerID(v string) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldEQ(FieldServerID, v))
}

// CapabilityID applies equality check predicate on the "capability_id" field. It's identical to CapabilityIDEQ.
func CapabilityID(v int) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldEQ(FieldCapabilityID, v))
}

// ServerIDEQ applies the EQ predicate on the "server_id" field.
func ServerIDEQ(v string) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldEQ(FieldServerID, v))
}

// ServerIDNEQ applies the NEQ predicate on the "server_id" field.
func ServerIDNEQ(v string) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldNEQ(FieldServerID, v))
}

// ServerIDIn applies the In predicate on the "server_id" field.
func ServerIDIn(vs ...string) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldIn(FieldServerID, vs...))
}

// ServerIDNotIn applies the NotIn predicate on the "server_id" field.
func ServerIDNotIn(vs ...string) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldNotIn(FieldServerID, vs...))
}

// ServerIDGT applies the GT predicate on the "server_id" field.
func ServerIDGT(v string) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldGT(FieldServerID, v))
}

// ServerIDGTE applies the GTE predicate on the "server_id" field.
func ServerIDGTE(v string) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldGTE(FieldServerID, v))
}

// ServerIDLT applies the LT predicate on the "server_id" field.
func ServerIDLT(v string) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldLT(FieldServerID, v))
}

// ServerIDLTE applies the LTE predicate on the "server_id" field.
func ServerIDLTE(v string) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldLTE(FieldServerID, v))
}

// ServerIDContains applies the Contains predicate on the "server_id" field.
func ServerIDContains(v string) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldContains(FieldServerID, v))
}

// ServerIDHasPrefix applies the HasPrefix predicate on the "server_id" field.
func ServerIDHasPrefix(v string) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldHasPrefix(FieldServerID, v))
}

// ServerIDHasSuffix applies the HasSuffix predicate on the "server_id" field.
func ServerIDHasSuffix(v string) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldHasSuffix(FieldServerID, v))
}

// ServerIDEqualFold applies the EqualFold predicate on the "server_id" field.
func ServerIDEqualFold(v string) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldEqualFold(FieldServerID, v))
}

// ServerIDContainsFold applies the ContainsFold predicate on the "server_id" field.
func ServerIDContainsFold(v string) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldContainsFold(FieldServerID, v))
}

// CapabilityIDEQ applies the EQ predicate on the "capability_id" field.
func CapabilityIDEQ(v int) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldEQ(FieldCapabilityID, v))
}

// CapabilityIDNEQ applies the NEQ predicate on the "capability_id" field.
func CapabilityIDNEQ(v int) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldNEQ(FieldCapabilityID, v))
}

// CapabilityIDIn applies the In predicate on the "capability_id" field.
func CapabilityIDIn(vs ...int) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldIn(FieldCapabilityID, vs...))
}

// CapabilityIDNotIn applies the NotIn predicate on the "capability_id" field.
func CapabilityIDNotIn(vs ...int) predicate.ServerCapability {
	return predicate.ServerCapability(sql.FieldNotIn(FieldCapabilityID, vs...))
}

// HasServer applies the HasEdge predicate on the "server" edge.
func HasServer() predicate.ServerCapability {
	return predicate.ServerCapability(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ServerTable, ServerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasServerWith applies the HasEdge predicate on the "server" edge with a given conditions (other predicates).
func HasServerWith(preds ...predicate.Server) predicate.ServerCapability {
	return predicate.ServerCapability(func(s *sql.Selector) {
		step := newServerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCapability applies the HasEdge predicate on the "capability" edge.
func HasCapability() predicate.ServerCapability {
	return predicate.ServerCapability(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, CapabilityTable, CapabilityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCapabilityWith applies the HasEdge predicate on the "capability" edge with a given conditions (other predicates).
func HasCapabilityWith(preds ...predicate.Capability) predicate.ServerCapability {
	return predicate.ServerCapability(func(s *sql.Selector) {
		step := newCapabilityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ServerCapability) predicate.ServerCapability {
	return predicate.ServerCapability(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ServerCapability) predicate.ServerCapability {
	return predicate.ServerCapability(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ServerCapability) predicate.ServerCapability {
	return predicate.ServerCapability(sql.NotPredicates(p))
}
