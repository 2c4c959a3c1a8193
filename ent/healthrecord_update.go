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
	"github.com/mcp-router/mcp-router/ent/healthrecord"
	"github.com/mcp-router/mcp-router/ent/predicate"
	"github.com/mcp-router/mcp-router/ent/server"
)

// HealthRecordUpdate is the builder for updating HealthRecord entities.
type HealthRecordUpdate struct {
	config
	hooks    []Hook
	mutation *HealthRecordMutation
}

// Where appends a list predicates to the HealthRecordUpdate builder.
func (_u *HealthRecordUpdate) Where(ps ...predicate.HealthRecord) *HealthRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetServerID sets the "server_id" field.
func (_u *HealthRecordUpdate) SetServerID(v string) *HealthRecordUpdate {
	_u.mutation.SetServerID(v)
	return _u
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_u *HealthRecordUpdate) SetNillableServerID(v *string) *HealthRecordUpdate {
	if v != nil {
		_u.SetServerID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *HealthRecordUpdate) SetStatus(v healthrecord.Status) *HealthRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HealthRecordUpdate) SetNillableStatus(v *healthrecord.Status) *HealthRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastCheck sets the "last_check" field.
func (_u *HealthRecordUpdate) SetLastCheck(v time.Time) *HealthRecordUpdate {
	_u.mutation.SetLastCheck(v)
	return _u
}

// SetNillableLastCheck sets the "last_check" field if the given value is not nil.
func (_u *HealthRecordUpdate) SetNillableLastCheck(v *time.Time) *HealthRecordUpdate {
	if v != nil {
		_u.SetLastCheck(*v)
	}
	return _u
}

// ClearLastCheck clears the value of the "last_check" field.
func (_u *HealthRecordUpdate) ClearLastCheck() *HealthRecordUpdate {
	_u.mutation.ClearLastCheck()
	return _u
}

// SetLastSuccessfulConnection sets the "last_successful_connection" field.
func (_u *HealthRecordUpdate) SetLastSuccessfulConnection(v time.Time) *HealthRecordUpdate {
	_u.mutation.SetLastSuccessfulConnection(v)
	return _u
}

// SetNillableLastSuccessfulConnection sets the "last_successful_connection" field if the given value is not nil.
func (_u *HealthRecordUpdate) SetNillableLastSuccessfulConnection(v *time.Time) *HealthRecordUpdate {
	if v != nil {
		_u.SetLastSuccessfulConnection(*v)
	}
	return _u
}

// ClearLastSuccessfulConnection clears the value of the "last_successful_connection" field.
func (_u *HealthRecordUpdate) ClearLastSuccessfulConnection() *HealthRecordUpdate {
	_u.mutation.ClearLastSuccessfulConnection()
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *HealthRecordUpdate) SetErrorCount(v int) *HealthRecordUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *HealthRecordUpdate) SetNillableErrorCount(v *int) *HealthRecordUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *HealthRecordUpdate) AddErrorCount(v int) *HealthRecordUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetAvgResponseTime sets the "avg_response_time" field.
func (_u *HealthRecordUpdate) SetAvgResponseTime(v float64) *HealthRecordUpdate {
	_u.mutation.ResetAvgResponseTime()
	_u.mutation.SetAvgResponseTime(v)
	return _u
}

// SetNillableAvgResponseTime sets the "avg_response_time" field if the given value is not nil.
func (_u *HealthRecordUpdate) SetNillableAvgResponseTime(v *float64) *HealthRecordUpdate {
	if v != nil {
		_u.SetAvgResponseTime(*v)
	}
	return _u
}

// AddAvgResponseTime adds value to the "avg_response_time" field.
func (_u *HealthRecordUpdate) AddAvgResponseTime(v float64) *HealthRecordUpdate {
	_u.mutation.AddAvgResponseTime(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HealthRecordUpdate) SetUpdatedAt(v time.Time) *HealthRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *HealthRecordUpdate) SetServer(v *Server) *HealthRecordUpdate {
	return _u.SetServerID(v.ID)
}

// Mutation returns the HealthRecordMutation object of the builder.
func (_u *HealthRecordUpdate) Mutation() *HealthRecordMutation {
	return _u.mutation
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *HealthRecordUpdate) ClearServer() *HealthRecordUpdate {
	_u.mutation.ClearServer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HealthRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HealthRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HealthRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := healthrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := healthrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HealthRecord.status": %w`, err)}
		}
	}
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HealthRecord.server"`)
	}
	return nil
}

func (_u *HealthRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthrecord.Table, healthrecord.Columns, sqlgraph.NewFieldSpec(healthrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(healthrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastCheck(); ok {
		_spec.SetField(healthrecord.FieldLastCheck, field.TypeTime, value)
	}
	if _u.mutation.LastCheckCleared() {
		_spec.ClearField(healthrecord.FieldLastCheck, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSuccessfulConnection(); ok {
		_spec.SetField(healthrecord.FieldLastSuccessfulConnection, field.TypeTime, value)
	}
	if _u.mutation.LastSuccessfulConnectionCleared() {
		_spec.ClearField(healthrecord.FieldLastSuccessfulConnection, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(healthrecord.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(healthrecord.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgResponseTime(); ok {
		_spec.SetField(healthrecord.FieldAvgResponseTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseTime(); ok {
		_spec.AddField(healthrecord.FieldAvgResponseTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(healthrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ServerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HealthRecordUpdateOne is the builder for updating a single HealthRecord entity.
type HealthRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HealthRecordMutation
}

// SetServerID sets the "server_id" field.
func (_u *HealthRecordUpdateOne) SetServerID(v string) *HealthRecordUpdateOne {
	_u.mutation.SetServerID(v)
	return _u
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_u *HealthRecordUpdateOne) SetNillableServerID(v *string) *HealthRecordUpdateOne {
	if v != nil {
		_u.SetServerID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *HealthRecordUpdateOne) SetStatus(v healthrecord.Status) *HealthRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HealthRecordUpdateOne) SetNillableStatus(v *healthrecord.Status) *HealthRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastCheck sets the "last_check" field.
func (_u *HealthRecordUpdateOne) SetLastCheck(v time.Time) *HealthRecordUpdateOne {
	_u.mutation.SetLastCheck(v)
	return _u
}

// SetNillableLastCheck sets the "last_check" field if the given value is not nil.
func (_u *HealthRecordUpdateOne) SetNillableLastCheck(v *time.Time) *HealthRecordUpdateOne {
	if v != nil {
		_u.SetLastCheck(*v)
	}
	return _u
}

// ClearLastCheck clears the value of the "last_check" field.
func (_u *HealthRecordUpdateOne) ClearLastCheck() *HealthRecordUpdateOne {
	_u.mutation.ClearLastCheck()
	return _u
}

// SetLastSuccessfulConnection sets the "last_successful_connection" field.
func (_u *HealthRecordUpdateOne) SetLastSuccessfulConnection(v time.Time) *HealthRecordUpdateOne {
	_u.mutation.SetLastSuccessfulConnection(v)
	return _u
}

// SetNillableLastSuccessfulConnection sets the "last_successful_connection" field if the given value is not nil.
func (_u *HealthRecordUpdateOne) SetNillableLastSuccessfulConnection(v *time.Time) *HealthRecordUpdateOne {
	if v != nil {
		_u.SetLastSuccessfulConnection(*v)
	}
	return _u
}

// ClearLastSuccessfulConnection clears the value of the "last_successful_connection" field.
func (_u *HealthRecordUpdateOne) ClearLastSuccessfulConnection() *HealthRecordUpdateOne {
	_u.mutation.ClearLastSuccessfulConnection()
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *HealthRecordUpdateOne) SetErrorCount(v int) *HealthRecordUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *HealthRecordUpdateOne) SetNillableErrorCount(v *int) *HealthRecordUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *HealthRecordUpdateOne) AddErrorCount(v int) *HealthRecordUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetAvgResponseTime sets the "avg_response_time" field.
func (_u *HealthRecordUpdateOne) SetAvgResponseTime(v float64) *HealthRecordUpdateOne {
	_u.mutation.ResetAvgResponseTime()
	_u.mutation.SetAvgResponseTime(v)
	return _u
}

// SetNillableAvgResponseTime sets the "avg_response_time" field if the given value is not nil.
func (_u *HealthRecordUpdateOne) SetNillableAvgResponseTime(v *float64) *HealthRecordUpdateOne {
	if v != nil {
		_u.SetAvgResponseTime(*v)
	}
	return _u
}

// AddAvgResponseTime adds value to the "avg_response_time" field.
func (_u *HealthRecordUpdateOne) AddAvgResponseTime(v float64) *HealthRecordUpdateOne {
	_u.mutation.AddAvgResponseTime(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HealthRecordUpdateOne) SetUpdatedAt(v time.Time) *HealthRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *HealthRecordUpdateOne) SetServer(v *Server) *HealthRecordUpdateOne {
	return _u.SetServerID(v.ID)
}

// Mutation returns the HealthRecordMutation object of the builder.
func (_u *HealthRecordUpdateOne) Mutation() *HealthRecordMutation {
	return _u.mutation
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *HealthRecordUpdateOne) ClearServer() *HealthRecordUpdateOne {
	_u.mutation.ClearServer()
	return _u
}

// Where appends a list predicates to the HealthRecordUpdate builder.
func (_u *HealthRecordUpdateOne) Where(ps ...predicate.HealthRecord) *HealthRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HealthRecordUpdateOne) Select(field string, fields ...string) *HealthRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HealthRecord entity.
func (_u *HealthRecordUpdateOne) Save(ctx context.Context) (*HealthRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthRecordUpdateOne) SaveX(ctx context.Context) *HealthRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HealthRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HealthRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := healthrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := healthrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HealthRecord.status": %w`, err)}
		}
	}
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HealthRecord.server"`)
	}
	return nil
}

func (_u *HealthRecordUpdateOne) sqlSave(ctx context.Context) (_node *HealthRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthrecord.Table, healthrecord.Columns, sqlgraph.NewFieldSpec(healthrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HealthRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, healthrecord.FieldID)
		for _, f := range fields {
			if !healthrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != healthrecord.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(healthrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastCheck(); ok {
		_spec.SetField(healthrecord.FieldLastCheck, field.TypeTime, value)
	}
	if _u.mutation.LastCheckCleared() {
		_spec.ClearField(healthrecord.FieldLastCheck, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSuccessfulConnection(); ok {
		_spec.SetField(healthrecord.FieldLastSuccessfulConnection, field.TypeTime, value)
	}
	if _u.mutation.LastSuccessfulConnectionCleared() {
		_spec.ClearField(healthrecord.FieldLastSuccessfulConnection, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(healthrecord.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(healthrecord.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgResponseTime(); ok {
		_spec.SetField(healthrecord.FieldAvgResponseTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseTime(); ok {
		_spec.AddField(healthrecord.FieldAvgResponseTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(healthrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ServerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &HealthRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
