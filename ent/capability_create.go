// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mcp-router/mcp-router/ent/capability"
	"github.com/mcp-router/mcp-router/ent/server"
	"github.com/mcp-router/mcp-router/ent/servercapability"
)

// CapabilityCreate is the builder for creating a Capability entity.
type CapabilityCreate struct {
	config
	mutation *CapabilityMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *CapabilityCreate) SetName(v string) *CapabilityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CapabilityCreate) SetDescription(v string) *CapabilityCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CapabilityCreate) SetNillableDescription(v *string) *CapabilityCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// AddServerIDs adds the "servers" edge to the Server entity by IDs.
func (_c *CapabilityCreate) AddServerIDs(ids ...string) *CapabilityCreate {
	_c.mutation.AddServerIDs(ids...)
	return _c
}

// AddServers adds the "servers" edges to the Server entity.
func (_c *CapabilityCreate) AddServers(v ...*Server) *CapabilityCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddServerIDs(ids...)
}

// AddServerCapabilityIDs adds the "server_capabilities" edge to the ServerCapability entity by IDs.
func (_c *CapabilityCreate) AddServerCapabilityIDs(ids ...int) *CapabilityCreate {
	_c.mutation.AddServerCapabilityIDs(ids...)
	return _c
}

// AddServerCapabilities adds the "server_capabilities" edges to the ServerCapability entity.
func (_c *CapabilityCreate) AddServerCapabilities(v ...*ServerCapability) *CapabilityCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddServerCapabilityIDs(ids...)
}

// Mutation returns the CapabilityMutation object of the builder.
func (_c *CapabilityCreate) Mutation() *CapabilityMutation {
	return _c.mutation
}

// Save creates the Capability in the database.
func (_c *CapabilityCreate) Save(ctx context.Context) (*Capability, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CapabilityCreate) SaveX(ctx context.Context) *Capability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CapabilityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CapabilityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CapabilityCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Capability.name"`)}
	}
	return nil
}

func (_c *CapabilityCreate) sqlSave(ctx context.Context) (*Capability, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CapabilityCreate) createSpec() (*Capability, *sqlgraph.CreateSpec) {
	var (
		_node = &Capability{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(capability.Table, sqlgraph.NewFieldSpec(capability.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(capability.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(capability.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if nodes := _c.mutation.ServersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   capability.ServersTable,
			Columns: capability.ServersPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(server.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ServerCapabilitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   capability.ServerCapabilitiesTable,
			Columns: []string{capability.ServerCapabilitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servercapability.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CapabilityCreateBulk is the builder for creating many Capability entities in bulk.
type CapabilityCreateBulk struct {
	config
	err      error
	builders []*CapabilityCreate
}

// Save creates the Capability entities in the database.
func (_c *CapabilityCreateBulk) Save(ctx context.Context) ([]*Capability, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Capability, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CapabilityMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CapabilityCreateBulk) SaveX(ctx context.Context) []*Capability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CapabilityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CapabilityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
