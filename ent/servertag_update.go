// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mcp-router/mcp-router/ent/predicate"
	"github.com/mcp-router/mcp-router/ent/server"
	"github.com/mcp-router/mcp-router/ent/servertag"
)

// ServerTagUpdate is the builder for updating ServerTag entities.
type ServerTagUpdate struct {
	config
	hooks    []Hook
	mutation *ServerTagMutation
}

// Where appends a list predicates to the ServerTagUpdate builder.
func (_u *ServerTagUpdate) Where(ps ...predicate.ServerTag) *ServerTagUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetServerID sets the "server_id" field.
func (_u *ServerTagUpdate) SetServerID(v string) *ServerTagUpdate {
	_u.mutation.SetServerID(v)
	return _u
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_u *ServerTagUpdate) SetNillableServerID(v *string) *ServerTagUpdate {
	if v != nil {
		_u.SetServerID(*v)
	}
	return _u
}

// SetTag sets the "tag" field.
func (_u *ServerTagUpdate) SetTag(v string) *ServerTagUpdate {
	_u.mutation.SetTag(v)
	return _u
}

// SetNillableTag sets the "tag" field if the given value is not nil.
func (_u *ServerTagUpdate) SetNillableTag(v *string) *ServerTagUpdate {
	if v != nil {
		_u.SetTag(*v)
	}
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *ServerTagUpdate) SetServer(v *Server) *ServerTagUpdate {
	return _u.SetServerID(v.ID)
}

// Mutation returns the ServerTagMutation object of the builder.
func (_u *ServerTagUpdate) Mutation() *ServerTagMutation {
	return _u.mutation
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *ServerTagUpdate) ClearServer() *ServerTagUpdate {
	_u.mutation.ClearServer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServerTagUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServerTagUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServerTagUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServerTagUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServerTagUpdate) check() error {
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ServerTag.server"`)
	}
	return nil
}

func (_u *ServerTagUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servertag.Table, servertag.Columns, sqlgraph.NewFieldSpec(servertag.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tag(); ok {
		_spec.SetField(servertag.FieldTag, field.TypeString, value)
	}
	if _u.mutation.ServerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   servertag.ServerTable,
			Columns: []string{servertag.ServerColumn},
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
			Table:   servertag.ServerTable,
			Columns: []string{servertag.ServerColumn},
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
			err = &NotFoundError{servertag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServerTagUpdateOne is the builder for updating a single ServerTag entity.
type ServerTagUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServerTagMutation
}

// SetServerID sets the "server_id" field.
func (_u *ServerTagUpdateOne) SetServerID(v string) *ServerTagUpdateOne {
	_u.mutation.SetServerID(v)
	return _u
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_u *ServerTagUpdateOne) SetNillableServerID(v *string) *ServerTagUpdateOne {
	if v != nil {
		_u.SetServerID(*v)
	}
	return _u
}

// SetTag sets the "tag" field.
func (_u *ServerTagUpdateOne) SetTag(v string) *ServerTagUpdateOne {
	_u.mutation.SetTag(v)
	return _u
}

// SetNillableTag sets the "tag" field if the given value is not nil.
func (_u *ServerTagUpdateOne) SetNillableTag(v *string) *ServerTagUpdateOne {
	if v != nil {
		_u.SetTag(*v)
	}
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *ServerTagUpdateOne) SetServer(v *Server) *ServerTagUpdateOne {
	return _u.SetServerID(v.ID)
}

// Mutation returns the ServerTagMutation object of the builder.
func (_u *ServerTagUpdateOne) Mutation() *ServerTagMutation {
	return _u.mutation
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *ServerTagUpdateOne) ClearServer() *ServerTagUpdateOne {
	_u.mutation.ClearServer()
	return _u
}

// Where appends a list predicates to the ServerTagUpdate builder.
func (_u *ServerTagUpdateOne) Where(ps ...predicate.ServerTag) *ServerTagUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServerTagUpdateOne) Select(field string, fields ...string) *ServerTagUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServerTag entity.
func (_u *ServerTagUpdateOne) Save(ctx context.Context) (*ServerTag, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServerTagUpdateOne) SaveX(ctx context.Context) *ServerTag {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServerTagUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServerTagUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServerTagUpdateOne) check() error {
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ServerTag.server"`)
	}
	return nil
}

func (_u *ServerTagUpdateOne) sqlSave(ctx context.Context) (_node *ServerTag, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servertag.Table, servertag.Columns, sqlgraph.NewFieldSpec(servertag.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ServerTag.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, servertag.FieldID)
		for _, f := range fields {
			if !servertag.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != servertag.FieldID {
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
	if value, ok := _u.mutation.Tag(); ok {
		_spec.SetField(servertag.FieldTag, field.TypeString, value)
	}
	if _u.mutation.ServerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   servertag.ServerTable,
			Columns: []string{servertag.ServerColumn},
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
			Table:   servertag.ServerTable,
			Columns: []string{servertag.ServerColumn},
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
	_node = &ServerTag{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servertag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
