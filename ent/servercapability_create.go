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

// ServerCapabilityCreate is the builder for creating a ServerCapability entity.
type ServerCapabilityCreate struct {
	config
	mutation *ServerCapabilityMutation
	hooks    []Hook
}

// SetServerID sets the "server_id" field.
func (_c *ServerCapabilityCreate) SetServerID(v string) *ServerCapabilityCreate {
	_c.mutation.SetServerID(v)
	return _c
}

// SetCapabilityID sets the "capability_id" field.
func (_c *ServerCapabilityCreate) SetCapabilityID(v int) *ServerCapabilityCreate {
	_c.mutation.SetCapabilityID(v)
	return _c
}

// SetServer sets the "server" edge to the Server entity.
func (_c *ServerCapabilityCreate) SetServer(v *Server) *ServerCapabilityCreate {
	return _c.SetServerID(v.ID)
}

// SetCapability sets the "capability" edge to the Capability entity.
func (_c *ServerCapabilityCreate) SetCapability(v *Capability) *ServerCapabilityCreate {
	return _c.SetCapabilityID(v.ID)
}

// Mutation returns the ServerCapabilityMutation object of the builder.
func (_c *ServerCapabilityCreate) Mutation() *ServerCapabilityMutation {
	return _c.mutation
}

// Save creates the ServerCapability in the database.
func (_c *ServerCapabilityCreate) Save(ctx context.Context) (*ServerCapability, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServerCapabilityCreate) SaveX(ctx context.Context) *ServerCapability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServerCapabilityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServerCapabilityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServerCapabilityCreate) check() error {
	if _, ok := _c.mutation.ServerID(); !ok {
		return &ValidationError{Name: "server_id", err: errors.New(`ent: missing required field "ServerCapability.server_id"`)}
	}
	if _, ok := _c.mutation.CapabilityID(); !ok {
		return &ValidationError{Name: "capability_id", err: errors.New(`ent: missing required field "ServerCapability.capability_id"`)}
	}
	if len(_c.mutation.ServerIDs()) == 0 {
		return &ValidationError{Name: "server", err: errors.New(`ent: missing required edge "ServerCapability.server"`)}
	}
	if len(_c.mutation.CapabilityIDs()) == 0 {
		return &ValidationError{Name: "capability", err: errors.New(`ent: missing required edge "ServerCapability.capability"`)}
	}
	return nil
}

func (_c *ServerCapabilityCreate) sqlSave(ctx context.Context) (*ServerCapability, error) {
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

func (_c *ServerCapabilityCreate) createSpec() (*ServerCapability, *sqlgraph.CreateSpec) {
	var (
		_node = &ServerCapability{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(servercapability.Table, sqlgraph.NewFieldSpec(servercapability.FieldID, field.TypeInt))
	)
	if nodes := _c.mutation.ServerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   servercapability.ServerTable,
			Columns: []string{servercapability.ServerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(server.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ServerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CapabilityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   servercapability.CapabilityTable,
			Columns: []string{servercapability.CapabilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capability.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CapabilityID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ServerCapabilityCreateBulk is the builder for creating many ServerCapability entities in bulk.
type ServerCapabilityCreateBulk struct {
	config
	err      error
	builders []*ServerCapabilityCreate
}

// Save creates the ServerCapability entities in the database.
func (_c *ServerCapabilityCreateBulk) Save(ctx context.Context) ([]*ServerCapability, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServerCapability, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServerCapabilityMutation)
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
func (_c *ServerCapabilityCreateBulk) SaveX(ctx context.Context) []*ServerCapability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServerCapabilityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServerCapabilityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
