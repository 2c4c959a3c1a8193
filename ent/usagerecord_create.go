// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mcp-router/mcp-router/ent/server"
	"github.com/mcp-router/mcp-router/ent/usagerecord"
)

// UsageRecordCreate is the builder for creating a UsageRecord entity.
type UsageRecordCreate struct {
	config
	mutation *UsageRecordMutation
	hooks    []Hook
}

// SetServerID sets the "server_id" field.
func (_c *UsageRecordCreate) SetServerID(v string) *UsageRecordCreate {
	_c.mutation.SetServerID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *UsageRecordCreate) SetToolName(v string) *UsageRecordCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetDuration sets the "duration" field.
func (_c *UsageRecordCreate) SetDuration(v float64) *UsageRecordCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *UsageRecordCreate) SetSuccess(v bool) *UsageRecordCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *UsageRecordCreate) SetTimestamp(v time.Time) *UsageRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableTimestamp(v *time.Time) *UsageRecordCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetServer sets the "server" edge to the Server entity.
func (_c *UsageRecordCreate) SetServer(v *Server) *UsageRecordCreate {
	return _c.SetServerID(v.ID)
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_c *UsageRecordCreate) Mutation() *UsageRecordMutation {
	return _c.mutation
}

// Save creates the UsageRecord in the database.
func (_c *UsageRecordCreate) Save(ctx context.Context) (*UsageRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageRecordCreate) SaveX(ctx context.Context) *UsageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageRecordCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := usagerecord.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageRecordCreate) check() error {
	if _, ok := _c.mutation.ServerID(); !ok {
		return &ValidationError{Name: "server_id", err: errors.New(`ent: missing required field "UsageRecord.server_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "UsageRecord.tool_name"`)}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`ent: missing required field "UsageRecord.duration"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "UsageRecord.success"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "UsageRecord.timestamp"`)}
	}
	if len(_c.mutation.ServerIDs()) == 0 {
		return &ValidationError{Name: "server", err: errors.New(`ent: missing required edge "UsageRecord.server"`)}
	}
	return nil
}

func (_c *UsageRecordCreate) sqlSave(ctx context.Context) (*UsageRecord, error) {
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

func (_c *UsageRecordCreate) createSpec() (*UsageRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usagerecord.Table, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(usagerecord.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(usagerecord.FieldDuration, field.TypeFloat64, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(usagerecord.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(usagerecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if nodes := _c.mutation.ServerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usagerecord.ServerTable,
			Columns: []string{usagerecord.ServerColumn},
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
	return _node, _spec
}

// UsageRecordCreateBulk is the builder for creating many UsageRecord entities in bulk.
type UsageRecordCreateBulk struct {
	config
	err      error
	builders []*UsageRecordCreate
}

// Save creates the UsageRecord entities in the database.
func (_c *UsageRecordCreateBulk) Save(ctx context.Context) ([]*UsageRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageRecordMutation)
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
func (_c *UsageRecordCreateBulk) SaveX(ctx context.Context) []*UsageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
