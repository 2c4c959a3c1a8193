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

// CapabilityUpdate is the builder for updating Capability entities.
type CapabilityUpdate struct {
	config
	hooks    []Hook
	mutation *CapabilityMutation
}

// Where appends a list predicates to the CapabilityUpdate builder.
func (_u *CapabilityUpdate) Where(ps ...predicate.Capability) *CapabilityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CapabilityUpdate) SetName(v string) *CapabilityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CapabilityUpdate) SetNillableName(v *string) *CapabilityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CapabilityUpdate) SetDescription(v string) *CapabilityUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CapabilityUpdate) SetNillableDescription(v *string) *CapabilityUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CapabilityUpdate) ClearDescription() *CapabilityUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// AddServerIDs adds the "servers" edge to the Server entity by IDs.
func (_u *CapabilityUpdate) AddServerIDs(ids ...string) *CapabilityUpdate {
	_u.mutation.AddServerIDs(ids...)
	return _u
}

// AddServers adds the "servers" edges to the Server entity.
func (_u *CapabilityUpdate) AddServers(v ...*Server) *CapabilityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServerIDs(ids...)
}

// AddServerCapabilityIDs adds the "server_capabilities" edge to the ServerCapability entity by IDs.
func (_u *CapabilityUpdate) AddServerCapabilityIDs(ids ...int) *CapabilityUpdate {
	_u.mutation.AddServerCapabilityIDs(ids...)
	return _u
}

// AddServerCapabilities adds the "server_capabilities" edges to the ServerCapability entity.
func (_u *CapabilityUpdate) AddServerCapabilities(v ...*ServerCapability) *CapabilityUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServerCapabilityIDs(ids...)
}

// Mutation returns the CapabilityMutation object of the builder.
func (_u *CapabilityUpdate) Mutation() *CapabilityMutation {
	return _u.mutation
}

// ClearServers clears all "servers" edges to the Server entity.
func (_u *CapabilityUpdate) ClearServers() *CapabilityUpdate {
	_u.mutation.ClearServers()
	return _u
}

// RemoveServerIDs removes the "servers" edge to Server entities by IDs.
func (_u *CapabilityUpdate) RemoveServerIDs(ids ...string) *CapabilityUpdate {
	_u.mutation.RemoveServerIDs(ids...)
	return _u
}

// RemoveServers removes "servers" edges to Server entities.
func (_u *CapabilityUpdate) RemoveServers(v ...*Server) *CapabilityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServerIDs(ids...)
}

// ClearServerCapabilities clears all "server_capabilities" edges to the ServerCapability entity.
func (_u *CapabilityUpdate) ClearServerCapabilities() *CapabilityUpdate {
	_u.mutation.ClearServerCapabilities()
	return _u
}

// RemoveServerCapabilityIDs removes the "server_capabilities" edge to ServerCapability entities by IDs.
func (_u *CapabilityUpdate) RemoveServerCapabilityIDs(ids ...int) *CapabilityUpdate {
	_u.mutation.RemoveServerCapabilityIDs(ids...)
	return _u
}

// RemoveServerCapabilities removes "server_capabilities" edges to ServerCapability entities.
func (_u *CapabilityUpdate) RemoveServerCapabilities(v ...*ServerCapability) *CapabilityUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServerCapabilityIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CapabilityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CapabilityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CapabilityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CapabilityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CapabilityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(capability.Table, capability.Columns, sqlgraph.NewFieldSpec(capability.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(capability.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(capability.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(capability.FieldDescription, field.TypeString)
	}
	if _u.mutation.ServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedServersIDs(); len(nodes) > 0 && !_u.mutation.ServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ServerCapabilitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedServerCapabilitiesIDs(); len(nodes) > 0 && !_u.mutation.ServerCapabilitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServerCapabilitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{capability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CapabilityUpdateOne is the builder for updating a single Capability entity.
type CapabilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CapabilityMutation
}

// SetName sets the "name" field.
func (_u *CapabilityUpdateOne) SetName(v string) *CapabilityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CapabilityUpdateOne) SetNillableName(v *string) *CapabilityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CapabilityUpdateOne) SetDescription(v string) *CapabilityUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CapabilityUpdateOne) SetNillableDescription(v *string) *CapabilityUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CapabilityUpdateOne) ClearDescription() *CapabilityUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// AddServerIDs adds the "servers" edge to the Server entity by IDs.
func (_u *CapabilityUpdateOne) AddServerIDs(ids ...string) *CapabilityUpdateOne {
	_u.mutation.AddServerIDs(ids...)
	return _u
}

// AddServers adds the "servers" edges to the Server entity.
func (_u *CapabilityUpdateOne) AddServers(v ...*Server) *CapabilityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServerIDs(ids...)
}

// AddServerCapabilityIDs adds the "server_capabilities" edge to the ServerCapability entity by IDs.
func (_u *CapabilityUpdateOne) AddServerCapabilityIDs(ids ...int) *CapabilityUpdateOne {
	_u.mutation.AddServerCapabilityIDs(ids...)
	return _u
}

// AddServerCapabilities adds the "server_capabilities" edges to the ServerCapability entity.
func (_u *CapabilityUpdateOne) AddServerCapabilities(v ...*ServerCapability) *CapabilityUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServerCapabilityIDs(ids...)
}

// Mutation returns the CapabilityMutation object of the builder.
func (_u *CapabilityUpdateOne) Mutation() *CapabilityMutation {
	return _u.mutation
}

// ClearServers clears all "servers" edges to the Server entity.
func (_u *CapabilityUpdateOne) ClearServers() *CapabilityUpdateOne {
	_u.mutation.ClearServers()
	return _u
}

// RemoveServerIDs removes the "servers" edge to Server entities by IDs.
func (_u *CapabilityUpdateOne) RemoveServerIDs(ids ...string) *CapabilityUpdateOne {
	_u.mutation.RemoveServerIDs(ids...)
	return _u
}

// RemoveServers removes "servers" edges to Server entities.
func (_u *CapabilityUpdateOne) RemoveServers(v ...*Server) *CapabilityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServerIDs(ids...)
}

// ClearServerCapabilities clears all "server_capabilities" edges to the ServerCapability entity.
func (_u *CapabilityUpdateOne) ClearServerCapabilities() *CapabilityUpdateOne {
	_u.mutation.ClearServerCapabilities()
	return _u
}

// RemoveServerCapabilityIDs removes the "server_capabilities" edge to ServerCapability entities by IDs.
func (_u *CapabilityUpdateOne) RemoveServerCapabilityIDs(ids ...int) *CapabilityUpdateOne {
	_u.mutation.RemoveServerCapabilityIDs(ids...)
	return _u
}

// RemoveServerCapabilities removes "server_capabilities" edges to ServerCapability entities.
func (_u *CapabilityUpdateOne) RemoveServerCapabilities(v ...*ServerCapability) *CapabilityUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServerCapabilityIDs(ids...)
}

// Where appends a list predicates to the CapabilityUpdate builder.
func (_u *CapabilityUpdateOne) Where(ps ...predicate.Capability) *CapabilityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CapabilityUpdateOne) Select(field string, fields ...string) *CapabilityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Capability entity.
func (_u *CapabilityUpdateOne) Save(ctx context.Context) (*Capability, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CapabilityUpdateOne) SaveX(ctx context.Context) *Capability {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CapabilityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CapabilityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CapabilityUpdateOne) sqlSave(ctx context.Context) (_node *Capability, err error) {
	_spec := sqlgraph.NewUpdateSpec(capability.Table, capability.Columns, sqlgraph.NewFieldSpec(capability.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Capability.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, capability.FieldID)
		for _, f := range fields {
			if !capability.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != capability.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(capability.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(capability.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(capability.FieldDescription, field.TypeString)
	}
	if _u.mutation.ServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedServersIDs(); len(nodes) > 0 && !_u.mutation.ServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ServerCapabilitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedServerCapabilitiesIDs(); len(nodes) > 0 && !_u.mutation.ServerCapabilitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServerCapabilitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Capability{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{capability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
