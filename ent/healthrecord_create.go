// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mcp-router/mcp-router/ent/healthrecord"
	"github.com/mcp-router/mcp-router/ent/server"
)

// HealthRecordCreate is the builder for creating a HealthRecord entity.
type HealthRecordCreate struct {
	config
	mutation *HealthRecordMutation
	hooks    []Hook
}

// SetServerID sets the "server_id" field.
func (_c *HealthRecordCreate) SetServerID(v string) *HealthRecordCreate {
	_c.mutation.SetServerID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *HealthRecordCreate) SetStatus(v healthrecord.Status) *HealthRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *HealthRecordCreate) SetNillableStatus(v *healthrecord.Status) *HealthRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastCheck sets the "last_check" field.
func (_c *HealthRecordCreate) SetLastCheck(v time.Time) *HealthRecordCreate {
	_c.mutation.SetLastCheck(v)
	return _c
}

// SetNillableLastCheck sets the "last_check" field if the given value is not nil.
func (_c *HealthRecordCreate) SetNillableLastCheck(v *time.Time) *HealthRecordCreate {
	if v != nil {
		_c.SetLastCheck(*v)
	}
	return _c
}

// SetLastSuccessfulConnection sets the "last_successful_connection" field.
func (_c *HealthRecordCreate) SetLastSuccessfulConnection(v time.Time) *HealthRecordCreate {
	_c.mutation.SetLastSuccessfulConnection(v)
	return _c
}

// SetNillableLastSuccessfulConnection sets the "last_successful_connection" field if the given value is not nil.
func (_c *HealthRecordCreate) SetNillableLastSuccessfulConnection(v *time.Time) *HealthRecordCreate {
	if v != nil {
		_c.SetLastSuccessfulConnection(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *HealthRecordCreate) SetErrorCount(v int) *HealthRecordCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *HealthRecordCreate) SetNillableErrorCount(v *int) *HealthRecordCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetAvgResponseTime sets the "avg_response_time" field.
func (_c *HealthRecordCreate) SetAvgResponseTime(v float64) *HealthRecordCreate {
	_c.mutation.SetAvgResponseTime(v)
	return _c
}

// SetNillableAvgResponseTime sets the "avg_response_time" field if the given value is not nil.
func (_c *HealthRecordCreate) SetNillableAvgResponseTime(v *float64) *HealthRecordCreate {
	if v != nil {
		_c.SetAvgResponseTime(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HealthRecordCreate) SetUpdatedAt(v time.Time) *HealthRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HealthRecordCreate) SetNillableUpdatedAt(v *time.Time) *HealthRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetServer sets the "server" edge to the Server entity.
func (_c *HealthRecordCreate) SetServer(v *Server) *HealthRecordCreate {
	return _c.SetServerID(v.ID)
}

// Mutation returns the HealthRecordMutation object of the builder.
func (_c *HealthRecordCreate) Mutation() *HealthRecordMutation {
	return _c.mutation
}

// Save creates the HealthRecord in the database.
func (_c *HealthRecordCreate) Save(ctx context.Context) (*HealthRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HealthRecordCreate) SaveX(ctx context.Context) *HealthRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HealthRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := healthrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := healthrecord.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.AvgResponseTime(); !ok {
		v := healthrecord.DefaultAvgResponseTime
		_c.mutation.SetAvgResponseTime(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := healthrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HealthRecordCreate) check() error {
	if _, ok := _c.mutation.ServerID(); !ok {
		return &ValidationError{Name: "server_id", err: errors.New(`ent: missing required field "HealthRecord.server_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "HealthRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := healthrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HealthRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "HealthRecord.error_count"`)}
	}
	if _, ok := _c.mutation.AvgResponseTime(); !ok {
		return &ValidationError{Name: "avg_response_time", err: errors.New(`ent: missing required field "HealthRecord.avg_response_time"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "HealthRecord.updated_at"`)}
	}
	if len(_c.mutation.ServerIDs()) == 0 {
		return &ValidationError{Name: "server", err: errors.New(`ent: missing required edge "HealthRecord.server"`)}
	}
	return nil
}

func (_c *HealthRecordCreate) sqlSave(ctx context.Context) (*HealthRecord, error) {
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

func (_c *HealthRecordCreate) createSpec() (*HealthRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &HealthRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(healthrecord.Table, sqlgraph.NewFieldSpec(healthrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(healthrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastCheck(); ok {
		_spec.SetField(healthrecord.FieldLastCheck, field.TypeTime, value)
		_node.LastCheck = &value
	}
	if value, ok := _c.mutation.LastSuccessfulConnection(); ok {
		_spec.SetField(healthrecord.FieldLastSuccessfulConnection, field.TypeTime, value)
		_node.LastSuccessfulConnection = &value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(healthrecord.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.AvgResponseTime(); ok {
		_spec.SetField(healthrecord.FieldAvgResponseTime, field.TypeFloat64, value)
		_node.AvgResponseTime = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(healthrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ServerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   healthrecord.ServerTable,
			Columns: []string{healthrecord.ServerColumn},
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

// HealthRecordCreateBulk is the builder for creating many HealthRecord entities in bulk.
type HealthRecordCreateBulk struct {
	config
	err      error
	builders []*HealthRecordCreate
}

// Save creates the HealthRecord entities in the database.
func (_c *HealthRecordCreateBulk) Save(ctx context.Context) ([]*HealthRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HealthRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HealthRecordMutation)
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
func (_c *HealthRecordCreateBulk) SaveX(ctx context.Context) []*HealthRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
