// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mcp-router/mcp-router/ent/predicate"
	"github.com/mcp-router/mcp-router/ent/server"
	"github.com/mcp-router/mcp-router/ent/usagerecord"
)

// UsageRecordUpdate is the builder for updating UsageRecord entities.
type UsageRecordUpdate struct {
	config
	hooks    []Hook
	mutation *UsageRecordMutation
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdate) Where(ps ...predicate.UsageRecord) *UsageRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetServerID sets the "server_id" field.
func (_u *UsageRecordUpdate) SetServerID(v string) *UsageRecordUpdate {
	_u.mutation.SetServerID(v)
	return _u
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableServerID(v *string) *UsageRecordUpdate {
	if v != nil {
		_u.SetServerID(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *UsageRecordUpdate) SetToolName(v string) *UsageRecordUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableToolName(v *string) *UsageRecordUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *UsageRecordUpdate) SetDuration(v float64) *UsageRecordUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableDuration(v *float64) *UsageRecordUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *UsageRecordUpdate) AddDuration(v float64) *UsageRecordUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *UsageRecordUpdate) SetSuccess(v bool) *UsageRecordUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableSuccess(v *bool) *UsageRecordUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *UsageRecordUpdate) SetTimestamp(v time.Time) *UsageRecordUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableTimestamp(v *time.Time) *UsageRecordUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *UsageRecordUpdate) SetServer(v *Server) *UsageRecordUpdate {
	return _u.SetServerID(v.ID)
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdate) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *UsageRecordUpdate) ClearServer() *UsageRecordUpdate {
	_u.mutation.ClearServer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageRecordUpdate) check() error {
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UsageRecord.server"`)
	}
	return nil
}

func (_u *UsageRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(usagerecord.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(usagerecord.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(usagerecord.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(usagerecord.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(usagerecord.FieldTimestamp, field.TypeTime, value)
	}
	if _u.mutation.ServerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageRecordUpdateOne is the builder for updating a single UsageRecord entity.
type UsageRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageRecordMutation
}

// SetServerID sets the "server_id" field.
func (_u *UsageRecordUpdateOne) SetServerID(v string) *UsageRecordUpdateOne {
	_u.mutation.SetServerID(v)
	return _u
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableServerID(v *string) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetServerID(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *UsageRecordUpdateOne) SetToolName(v string) *UsageRecordUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableToolName(v *string) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *UsageRecordUpdateOne) SetDuration(v float64) *UsageRecordUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableDuration(v *float64) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *UsageRecordUpdateOne) AddDuration(v float64) *UsageRecordUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *UsageRecordUpdateOne) SetSuccess(v bool) *UsageRecordUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableSuccess(v *bool) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *UsageRecordUpdateOne) SetTimestamp(v time.Time) *UsageRecordUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableTimestamp(v *time.Time) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *UsageRecordUpdateOne) SetServer(v *Server) *UsageRecordUpdateOne {
	return _u.SetServerID(v.ID)
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdateOne) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *UsageRecordUpdateOne) ClearServer() *UsageRecordUpdateOne {
	_u.mutation.ClearServer()
	return _u
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdateOne) Where(ps ...predicate.UsageRecord) *UsageRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageRecordUpdateOne) Select(field string, fields ...string) *UsageRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageRecord entity.
func (_u *UsageRecordUpdateOne) Save(ctx context.Context) (*UsageRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) SaveX(ctx context.Context) *UsageRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageRecordUpdateOne) check() error {
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UsageRecord.server"`)
	}
	return nil
}

func (_u *UsageRecordUpdateOne) sqlSave(ctx context.Context) (_node *UsageRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagerecord.FieldID)
		for _, f := range fields {
			if !usagerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagerecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(usagerecord.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(usagerecord.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(usagerecord.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(usagerecord.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(usagerecord.FieldTimestamp, field.TypeTime, value)
	}
	if _u.mutation.ServerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UsageRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
