// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mcp-router/mcp-router/ent/capability"
	"github.com/mcp-router/mcp-router/ent/predicate"
	"github.com/mcp-router/mcp-router/ent/server"
	"github.com/mcp-router/mcp-router/ent/servercapability"
)

// ServerCapabilityUpdate is the builder for updating ServerCapability entities.
type ServerCapabilityUpdate struct {
	config
	hooks    []Hook
	mutation *ServerCapabilityMutation
}

// Where appends a list predicates to the ServerCapabilityUpdate builder.
func (_u *ServerCapabilityUpdate) Where(ps ...predicate.ServerCapability) *ServerCapabilityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetServerID sets the "server_id" field.
func (_u *ServerCapabilityUpdate) SetServerID(v string) *ServerCapabilityUpdate {
	_u.mutation.SetServerID(v)
	return _u
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_u *ServerCapabilityUpdate) SetNillableServerID(v *string) *ServerCapabilityUpdate {
	if v != nil {
		_u.SetServerID(*v)
	}
	return _u
}

// SetCapabilityID sets the "capability_id" field.
func (_u *ServerCapabilityUpdate) SetCapabilityID(v int) *ServerCapabilityUpdate {
	_u.mutation.SetCapabilityID(v)
	return _u
}

// SetNillableCapabilityID sets the "capability_id" field if the given value is not nil.
func (_u *ServerCapabilityUpdate) SetNillableCapabilityID(v *int) *ServerCapabilityUpdate {
	if v != nil {
		_u.SetCapabilityID(*v)
	}
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *ServerCapabilityUpdate) SetServer(v *Server) *ServerCapabilityUpdate {
	return _u.SetServerID(v.ID)
}

// SetCapability sets the "capability" edge to the Capability entity.
func (_u *ServerCapabilityUpdate) SetCapability(v *Capability) *ServerCapabilityUpdate {
	return _u.SetCapabilityID(v.ID)
}

// Mutation returns the ServerCapabilityMutation object of the builder.
func (_u *ServerCapabilityUpdate) Mutation() *ServerCapabilityMutation {
	return _u.mutation
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *ServerCapabilityUpdate) ClearServer() *ServerCapabilityUpdate {
	_u.mutation.ClearServer()
	return _u
}

// ClearCapability clears the "capability" edge to the Capability entity.
func (_u *ServerCapabilityUpdate) ClearCapability() *ServerCapabilityUpdate {
	_u.mutation.ClearCapability()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServerCapabilityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServerCapabilityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServerCapabilityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServerCapabilityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServerCapabilityUpdate) check() error {
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ServerCapability.server"`)
	}
	if _u.mutation.CapabilityCleared() && len(_u.mutation.CapabilityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ServerCapability.capability"`)
	}
	return nil
}

func (_u *ServerCapabilityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servercapability.Table, servercapability.Columns, sqlgraph.NewFieldSpec(servercapability.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ServerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CapabilityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CapabilityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servercapability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServerCapabilityUpdateOne is the builder for updating a single ServerCapability entity.
type ServerCapabilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServerCapabilityMutation
}

// SetServerID sets the "server_id" field.
func (_u *ServerCapabilityUpdateOne) SetServerID(v string) *ServerCapabilityUpdateOne {
	_u.mutation.SetServerID(v)
	return _u
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_u *ServerCapabilityUpdateOne) SetNillableServerID(v *string) *ServerCapabilityUpdateOne {
	if v != nil {
		_u.SetServerID(*v)
	}
	return _u
}

// SetCapabilityID sets the "capability_id" field.
func (_u *ServerCapabilityUpdateOne) SetCapabilityID(v int) *ServerCapabilityUpdateOne {
	_u.mutation.SetCapabilityID(v)
	return _u
}

// SetNillableCapabilityID sets the "capability_id" field if the given value is not nil.
func (_u *ServerCapabilityUpdateOne) SetNillableCapabilityID(v *int) *ServerCapabilityUpdateOne {
	if v != nil {
		_u.SetCapabilityID(*v)
	}
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *ServerCapabilityUpdateOne) SetServer(v *Server) *ServerCapabilityUpdateOne {
	return _u.SetServerID(v.ID)
}

// SetCapability sets the "capability" edge to the Capability entity.
func (_u *ServerCapabilityUpdateOne) SetCapability(v *Capability) *ServerCapabilityUpdateOne {
	return _u.SetCapabilityID(v.ID)
}

// Mutation returns the ServerCapabilityMutation object of the builder.
func (_u *ServerCapabilityUpdateOne) Mutation() *ServerCapabilityMutation {
	return _u.mutation
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *ServerCapabilityUpdateOne) ClearServer() *ServerCapabilityUpdateOne {
	_u.mutation.ClearServer()
	return _u
}

// ClearCapability clears the "capability" edge to the Capability entity.
func (_u *ServerCapabilityUpdateOne) ClearCapability() *ServerCapabilityUpdateOne {
	_u.mutation.ClearCapability()
	return _u
}

// Where appends a list predicates to the ServerCapabilityUpdate builder.
func (_u *ServerCapabilityUpdateOne) Where(ps ...predicate.ServerCapability) *ServerCapabilityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServerCapabilityUpdateOne) Select(field string, fields ...string) *ServerCapabilityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServerCapability entity.
func (_u *ServerCapabilityUpdateOne) Save(ctx context.Context) (*ServerCapability, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServerCapabilityUpdateOne) SaveX(ctx context.Context) *ServerCapability {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServerCapabilityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServerCapabilityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServerCapabilityUpdateOne) check() error {
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ServerCapability.server"`)
	}
	if _u.mutation.CapabilityCleared() && len(_u.mutation.CapabilityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ServerCapability.capability"`)
	}
	return nil
}

func (_u *ServerCapabilityUpdateOne) sqlSave(ctx context.Context) (_node *ServerCapability, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servercapability.Table, servercapability.Columns, sqlgraph.NewFieldSpec(servercapability.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ServerCapability.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, servercapability.FieldID)
		for _, f := range fields {
			if !servercapability.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != servercapability.FieldID {
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
	if _u.mutation.ServerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CapabilityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CapabilityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ServerCapability{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servercapability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
