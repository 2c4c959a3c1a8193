// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mcp-router/mcp-router/ent/capability"
	"github.com/mcp-router/mcp-router/ent/healthrecord"
	"github.com/mcp-router/mcp-router/ent/predicate"
	"github.com/mcp-router/mcp-router/ent/server"
	"github.com/mcp-router/mcp-router/ent/servercapability"
	"github.com/mcp-router/mcp-router/ent/servertag"
	"github.com/mcp-router/mcp-router/ent/tool"
	"github.com/mcp-router/mcp-router/ent/usagerecord"
)

// ServerUpdate is the builder for updating Server entities.
type ServerUpdate struct {
	config
	hooks    []Hook
	mutation *ServerMutation
}

// Where appends a list predicates to the ServerUpdate builder.
func (_u *ServerUpdate) Where(ps ...predicate.Server) *ServerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ServerUpdate) SetName(v string) *ServerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableName(v *string) *ServerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServerUpdate) SetDescription(v string) *ServerUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableDescription(v *string) *ServerUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ServerUpdate) ClearDescription() *ServerUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetTransportKind sets the "transport_kind" field.
func (_u *ServerUpdate) SetTransportKind(v string) *ServerUpdate {
	_u.mutation.SetTransportKind(v)
	return _u
}

// SetNillableTransportKind sets the "transport_kind" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableTransportKind(v *string) *ServerUpdate {
	if v != nil {
		_u.SetTransportKind(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *ServerUpdate) SetCommand(v string) *ServerUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableCommand(v *string) *ServerUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *ServerUpdate) ClearCommand() *ServerUpdate {
	_u.mutation.ClearCommand()
	return _u
}

// SetArgs sets the "args" field.
func (_u *ServerUpdate) SetArgs(v []string) *ServerUpdate {
	_u.mutation.SetArgs(v)
	return _u
}

// AppendArgs appends value to the "args" field.
func (_u *ServerUpdate) AppendArgs(v []string) *ServerUpdate {
	_u.mutation.AppendArgs(v)
	return _u
}

// ClearArgs clears the value of the "args" field.
func (_u *ServerUpdate) ClearArgs() *ServerUpdate {
	_u.mutation.ClearArgs()
	return _u
}

// SetEnv sets the "env" field.
func (_u *ServerUpdate) SetEnv(v map[string]string) *ServerUpdate {
	_u.mutation.SetEnv(v)
	return _u
}

// ClearEnv clears the value of the "env" field.
func (_u *ServerUpdate) ClearEnv() *ServerUpdate {
	_u.mutation.ClearEnv()
	return _u
}

// SetURL sets the "url" field.
func (_u *ServerUpdate) SetURL(v string) *ServerUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableURL(v *string) *ServerUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *ServerUpdate) ClearURL() *ServerUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServerUpdate) SetUpdatedAt(v time.Time) *ServerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCapabilityIDs adds the "capabilities" edge to the Capability entity by IDs.
func (_u *ServerUpdate) AddCapabilityIDs(ids ...int) *ServerUpdate {
	_u.mutation.AddCapabilityIDs(ids...)
	return _u
}

// AddCapabilities adds the "capabilities" edges to the Capability entity.
func (_u *ServerUpdate) AddCapabilities(v ...*Capability) *ServerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCapabilityIDs(ids...)
}

// AddToolIDs adds the "tools" edge to the Tool entity by IDs.
func (_u *ServerUpdate) AddToolIDs(ids ...int) *ServerUpdate {
	_u.mutation.AddToolIDs(ids...)
	return _u
}

// AddTools adds the "tools" edges to the Tool entity.
func (_u *ServerUpdate) AddTools(v ...*Tool) *ServerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolIDs(ids...)
}

// SetHealthID sets the "health" edge to the HealthRecord entity by ID.
func (_u *ServerUpdate) SetHealthID(id int) *ServerUpdate {
	_u.mutation.SetHealthID(id)
	return _u
}

// SetNillableHealthID sets the "health" edge to the HealthRecord entity by ID if the given value is not nil.
func (_u *ServerUpdate) SetNillableHealthID(id *int) *ServerUpdate {
	if id != nil {
		_u = _u.SetHealthID(*id)
	}
	return _u
}

// SetHealth sets the "health" edge to the HealthRecord entity.
func (_u *ServerUpdate) SetHealth(v *HealthRecord) *ServerUpdate {
	return _u.SetHealthID(v.ID)
}

// AddUsageIDs adds the "usage" edge to the UsageRecord entity by IDs.
func (_u *ServerUpdate) AddUsageIDs(ids ...int) *ServerUpdate {
	_u.mutation.AddUsageIDs(ids...)
	return _u
}

// AddUsage adds the "usage" edges to the UsageRecord entity.
func (_u *ServerUpdate) AddUsage(v ...*UsageRecord) *ServerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUsageIDs(ids...)
}

// AddTagIDs adds the "tags" edge to the ServerTag entity by IDs.
func (_u *ServerUpdate) AddTagIDs(ids ...int) *ServerUpdate {
	_u.mutation.AddTagIDs(ids...)
	return _u
}

// AddTags adds the "tags" edges to the ServerTag entity.
func (_u *ServerUpdate) AddTags(v ...*ServerTag) *ServerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTagIDs(ids...)
}

// AddServerCapabilityIDs adds the "server_capabilities" edge to the ServerCapability entity by IDs.
func (_u *ServerUpdate) AddServerCapabilityIDs(ids ...int) *ServerUpdate {
	_u.mutation.AddServerCapabilityIDs(ids...)
	return _u
}

// AddServerCapabilities adds the "server_capabilities" edges to the ServerCapability entity.
func (_u *ServerUpdate) AddServerCapabilities(v ...*ServerCapability) *ServerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServerCapabilityIDs(ids...)
}

// Mutation returns the ServerMutation object of the builder.
func (_u *ServerUpdate) Mutation() *ServerMutation {
	return _u.mutation
}

// ClearCapabilities clears all "capabilities" edges to the Capability entity.
func (_u *ServerUpdate) ClearCapabilities() *ServerUpdate {
	_u.mutation.ClearCapabilities()
	return _u
}

// RemoveCapabilityIDs removes the "capabilities" edge to Capability entities by IDs.
func (_u *ServerUpdate) RemoveCapabilityIDs(ids ...int) *ServerUpdate {
	_u.mutation.RemoveCapabilityIDs(ids...)
	return _u
}

// RemoveCapabilities removes "capabilities" edges to Capability entities.
func (_u *ServerUpdate) RemoveCapabilities(v ...*Capability) *ServerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCapabilityIDs(ids...)
}

// ClearTools clears all "tools" edges to the Tool entity.
func (_u *ServerUpdate) ClearTools() *ServerUpdate {
	_u.mutation.ClearTools()
	return _u
}

// RemoveToolIDs removes the "tools" edge to Tool entities by IDs.
func (_u *ServerUpdate) RemoveToolIDs(ids ...int) *ServerUpdate {
	_u.mutation.RemoveToolIDs(ids...)
	return _u
}

// RemoveTools removes "tools" edges to Tool entities.
func (_u *ServerUpdate) RemoveTools(v ...*Tool) *ServerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolIDs(ids...)
}

// ClearHealth clears the "health" edge to the HealthRecord entity.
func (_u *ServerUpdate) ClearHealth() *ServerUpdate {
	_u.mutation.ClearHealth()
	return _u
}

// ClearUsage clears all "usage" edges to the UsageRecord entity.
func (_u *ServerUpdate) ClearUsage() *ServerUpdate {
	_u.mutation.ClearUsage()
	return _u
}

// RemoveUsageIDs removes the "usage" edge to UsageRecord entities by IDs.
func (_u *ServerUpdate) RemoveUsageIDs(ids ...int) *ServerUpdate {
	_u.mutation.RemoveUsageIDs(ids...)
	return _u
}

// RemoveUsage removes "usage" edges to UsageRecord entities.
func (_u *ServerUpdate) RemoveUsage(v ...*UsageRecord) *ServerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUsageIDs(ids...)
}

// ClearTags clears all "tags" edges to the ServerTag entity.
func (_u *ServerUpdate) ClearTags() *ServerUpdate {
	_u.mutation.ClearTags()
	return _u
}

// RemoveTagIDs removes the "tags" edge to ServerTag entities by IDs.
func (_u *ServerUpdate) RemoveTagIDs(ids ...int) *ServerUpdate {
	_u.mutation.RemoveTagIDs(ids...)
	return _u
}

// RemoveTags removes "tags" edges to ServerTag entities.
func (_u *ServerUpdate) RemoveTags(v ...*ServerTag) *ServerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTagIDs(ids...)
}

// ClearServerCapabilities clears all "server_capabilities" edges to the ServerCapability entity.
func (_u *ServerUpdate) ClearServerCapabilities() *ServerUpdate {
	_u.mutation.ClearServerCapabilities()
	return _u
}

// RemoveServerCapabilityIDs removes the "server_capabilities" edge to ServerCapability entities by IDs.
func (_u *ServerUpdate) RemoveServerCapabilityIDs(ids ...int) *ServerUpdate {
	_u.mutation.RemoveServerCapabilityIDs(ids...)
	return _u
}

// RemoveServerCapabilities removes "server_capabilities" edges to ServerCapability entities.
func (_u *ServerUpdate) RemoveServerCapabilities(v ...*ServerCapability) *ServerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServerCapabilityIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := server.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ServerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(server.Table, server.Columns, sqlgraph.NewFieldSpec(server.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(server.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(server.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(server.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TransportKind(); ok {
		_spec.SetField(server.FieldTransportKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(server.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(server.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.Args(); ok {
		_spec.SetField(server.FieldArgs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArgs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, server.FieldArgs, value)
		})
	}
	if _u.mutation.ArgsCleared() {
		_spec.ClearField(server.FieldArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Env(); ok {
		_spec.SetField(server.FieldEnv, field.TypeJSON, value)
	}
	if _u.mutation.EnvCleared() {
		_spec.ClearField(server.FieldEnv, field.TypeJSON)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(server.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(server.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(server.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CapabilitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   server.CapabilitiesTable,
			Columns: server.CapabilitiesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capability.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCapabilitiesIDs(); len(nodes) > 0 && !_u.mutation.CapabilitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   server.CapabilitiesTable,
			Columns: server.CapabilitiesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capability.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CapabilitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   server.CapabilitiesTable,
			Columns: server.CapabilitiesPrimaryKey,
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
	if _u.mutation.ToolsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.ToolsTable,
			Columns: []string{server.ToolsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tool.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolsIDs(); len(nodes) > 0 && !_u.mutation.ToolsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.ToolsTable,
			Columns: []string{server.ToolsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tool.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.ToolsTable,
			Columns: []string{server.ToolsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tool.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HealthCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   server.HealthTable,
			Columns: []string{server.HealthColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(healthrecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HealthIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   server.HealthTable,
			Columns: []string{server.HealthColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(healthrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.UsageTable,
			Columns: []string{server.UsageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsageIDs(); len(nodes) > 0 && !_u.mutation.UsageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.UsageTable,
			Columns: []string{server.UsageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.UsageTable,
			Columns: []string{server.UsageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.TagsTable,
			Columns: []string{server.TagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servertag.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTagsIDs(); len(nodes) > 0 && !_u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.TagsTable,
			Columns: []string{server.TagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servertag.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.TagsTable,
			Columns: []string{server.TagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servertag.FieldID, field.TypeInt),
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
			Table:   server.ServerCapabilitiesTable,
			Columns: []string{server.ServerCapabilitiesColumn},
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
			Table:   server.ServerCapabilitiesTable,
			Columns: []string{server.ServerCapabilitiesColumn},
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
			Table:   server.ServerCapabilitiesTable,
			Columns: []string{server.ServerCapabilitiesColumn},
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
			err = &NotFoundError{server.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServerUpdateOne is the builder for updating a single Server entity.
type ServerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServerMutation
}

// SetName sets the "name" field.
func (_u *ServerUpdateOne) SetName(v string) *ServerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableName(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServerUpdateOne) SetDescription(v string) *ServerUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableDescription(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ServerUpdateOne) ClearDescription() *ServerUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetTransportKind sets the "transport_kind" field.
func (_u *ServerUpdateOne) SetTransportKind(v string) *ServerUpdateOne {
	_u.mutation.SetTransportKind(v)
	return _u
}

// SetNillableTransportKind sets the "transport_kind" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableTransportKind(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetTransportKind(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *ServerUpdateOne) SetCommand(v string) *ServerUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableCommand(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *ServerUpdateOne) ClearCommand() *ServerUpdateOne {
	_u.mutation.ClearCommand()
	return _u
}

// SetArgs sets the "args" field.
func (_u *ServerUpdateOne) SetArgs(v []string) *ServerUpdateOne {
	_u.mutation.SetArgs(v)
	return _u
}

// AppendArgs appends value to the "args" field.
func (_u *ServerUpdateOne) AppendArgs(v []string) *ServerUpdateOne {
	_u.mutation.AppendArgs(v)
	return _u
}

// ClearArgs clears the value of the "args" field.
func (_u *ServerUpdateOne) ClearArgs() *ServerUpdateOne {
	_u.mutation.ClearArgs()
	return _u
}

// SetEnv sets the "env" field.
func (_u *ServerUpdateOne) SetEnv(v map[string]string) *ServerUpdateOne {
	_u.mutation.SetEnv(v)
	return _u
}

// ClearEnv clears the value of the "env" field.
func (_u *ServerUpdateOne) ClearEnv() *ServerUpdateOne {
	_u.mutation.ClearEnv()
	return _u
}

// SetURL sets the "url" field.
func (_u *ServerUpdateOne) SetURL(v string) *ServerUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableURL(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *ServerUpdateOne) ClearURL() *ServerUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServerUpdateOne) SetUpdatedAt(v time.Time) *ServerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCapabilityIDs adds the "capabilities" edge to the Capability entity by IDs.
func (_u *ServerUpdateOne) AddCapabilityIDs(ids ...int) *ServerUpdateOne {
	_u.mutation.AddCapabilityIDs(ids...)
	return _u
}

// AddCapabilities adds the "capabilities" edges to the Capability entity.
func (_u *ServerUpdateOne) AddCapabilities(v ...*Capability) *ServerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCapabilityIDs(ids...)
}

// AddToolIDs adds the "tools" edge to the Tool entity by IDs.
func (_u *ServerUpdateOne) AddToolIDs(ids ...int) *ServerUpdateOne {
	_u.mutation.AddToolIDs(ids...)
	return _u
}

// AddTools adds the "tools" edges to the Tool entity.
func (_u *ServerUpdateOne) AddTools(v ...*Tool) *ServerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolIDs(ids...)
}

// SetHealthID sets the "health" edge to the HealthRecord entity by ID.
func (_u *ServerUpdateOne) SetHealthID(id int) *ServerUpdateOne {
	_u.mutation.SetHealthID(id)
	return _u
}

// SetNillableHealthID sets the "health" edge to the HealthRecord entity by ID if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableHealthID(id *int) *ServerUpdateOne {
	if id != nil {
		_u = _u.SetHealthID(*id)
	}
	return _u
}

// SetHealth sets the "health" edge to the HealthRecord entity.
func (_u *ServerUpdateOne) SetHealth(v *HealthRecord) *ServerUpdateOne {
	return _u.SetHealthID(v.ID)
}

// AddUsageIDs adds the "usage" edge to the UsageRecord entity by IDs.
func (_u *ServerUpdateOne) AddUsageIDs(ids ...int) *ServerUpdateOne {
	_u.mutation.AddUsageIDs(ids...)
	return _u
}

// AddUsage adds the "usage" edges to the UsageRecord entity.
func (_u *ServerUpdateOne) AddUsage(v ...*UsageRecord) *ServerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUsageIDs(ids...)
}

// AddTagIDs adds the "tags" edge to the ServerTag entity by IDs.
func (_u *ServerUpdateOne) AddTagIDs(ids ...int) *ServerUpdateOne {
	_u.mutation.AddTagIDs(ids...)
	return _u
}

// AddTags adds the "tags" edges to the ServerTag entity.
func (_u *ServerUpdateOne) AddTags(v ...*ServerTag) *ServerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTagIDs(ids...)
}

// AddServerCapabilityIDs adds the "server_capabilities" edge to the ServerCapability entity by IDs.
func (_u *ServerUpdateOne) AddServerCapabilityIDs(ids ...int) *ServerUpdateOne {
	_u.mutation.AddServerCapabilityIDs(ids...)
	return _u
}

// AddServerCapabilities adds the "server_capabilities" edges to the ServerCapability entity.
func (_u *ServerUpdateOne) AddServerCapabilities(v ...*ServerCapability) *ServerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServerCapabilityIDs(ids...)
}

// Mutation returns the ServerMutation object of the builder.
func (_u *ServerUpdateOne) Mutation() *ServerMutation {
	return _u.mutation
}

// ClearCapabilities clears all "capabilities" edges to the Capability entity.
func (_u *ServerUpdateOne) ClearCapabilities() *ServerUpdateOne {
	_u.mutation.ClearCapabilities()
	return _u
}

// RemoveCapabilityIDs removes the "capabilities" edge to Capability entities by IDs.
func (_u *ServerUpdateOne) RemoveCapabilityIDs(ids ...int) *ServerUpdateOne {
	_u.mutation.RemoveCapabilityIDs(ids...)
	return _u
}

// RemoveCapabilities removes "capabilities" edges to Capability entities.
func (_u *ServerUpdateOne) RemoveCapabilities(v ...*Capability) *ServerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCapabilityIDs(ids...)
}

// ClearTools clears all "tools" edges to the Tool entity.
func (_u *ServerUpdateOne) ClearTools() *ServerUpdateOne {
	_u.mutation.ClearTools()
	return _u
}

// RemoveToolIDs removes the "tools" edge to Tool entities by IDs.
func (_u *ServerUpdateOne) RemoveToolIDs(ids ...int) *ServerUpdateOne {
	_u.mutation.RemoveToolIDs(ids...)
	return _u
}

// RemoveTools removes "tools" edges to Tool entities.
func (_u *ServerUpdateOne) RemoveTools(v ...*Tool) *ServerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolIDs(ids...)
}

// ClearHealth clears the "health" edge to the HealthRecord entity.
func (_u *ServerUpdateOne) ClearHealth() *ServerUpdateOne {
	_u.mutation.ClearHealth()
	return _u
}

// ClearUsage clears all "usage" edges to the UsageRecord entity.
func (_u *ServerUpdateOne) ClearUsage() *ServerUpdateOne {
	_u.mutation.ClearUsage()
	return _u
}

// RemoveUsageIDs removes the "usage" edge to UsageRecord entities by IDs.
func (_u *ServerUpdateOne) RemoveUsageIDs(ids ...int) *ServerUpdateOne {
	_u.mutation.RemoveUsageIDs(ids...)
	return _u
}

// RemoveUsage removes "usage" edges to UsageRecord entities.
func (_u *ServerUpdateOne) RemoveUsage(v ...*UsageRecord) *ServerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUsageIDs(ids...)
}

// ClearTags clears all "tags" edges to the ServerTag entity.
func (_u *ServerUpdateOne) ClearTags() *ServerUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// RemoveTagIDs removes the "tags" edge to ServerTag entities by IDs.
func (_u *ServerUpdateOne) RemoveTagIDs(ids ...int) *ServerUpdateOne {
	_u.mutation.RemoveTagIDs(ids...)
	return _u
}

// RemoveTags removes "tags" edges to ServerTag entities.
func (_u *ServerUpdateOne) RemoveTags(v ...*ServerTag) *ServerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTagIDs(ids...)
}

// ClearServerCapabilities clears all "server_capabilities" edges to the ServerCapability entity.
func (_u *ServerUpdateOne) ClearServerCapabilities() *ServerUpdateOne {
	_u.mutation.ClearServerCapabilities()
	return _u
}

// RemoveServerCapabilityIDs removes the "server_capabilities" edge to ServerCapability entities by IDs.
func (_u *ServerUpdateOne) RemoveServerCapabilityIDs(ids ...int) *ServerUpdateOne {
	_u.mutation.RemoveServerCapabilityIDs(ids...)
	return _u
}

// RemoveServerCapabilities removes "server_capabilities" edges to ServerCapability entities.
func (_u *ServerUpdateOne) RemoveServerCapabilities(v ...*ServerCapability) *ServerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServerCapabilityIDs(ids...)
}

// Where appends a list predicates to the ServerUpdate builder.
func (_u *ServerUpdateOne) Where(ps ...predicate.Server) *ServerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServerUpdateOne) Select(field string, fields ...string) *ServerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Server entity.
func (_u *ServerUpdateOne) Save(ctx context.Context) (*Server, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServerUpdateOne) SaveX(ctx context.Context) *Server {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := server.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ServerUpdateOne) sqlSave(ctx context.Context) (_node *Server, err error) {
	_spec := sqlgraph.NewUpdateSpec(server.Table, server.Columns, sqlgraph.NewFieldSpec(server.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Server.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, server.FieldID)
		for _, f := range fields {
			if !server.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != server.FieldID {
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
		_spec.SetField(server.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(server.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(server.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TransportKind(); ok {
		_spec.SetField(server.FieldTransportKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(server.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(server.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.Args(); ok {
		_spec.SetField(server.FieldArgs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArgs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, server.FieldArgs, value)
		})
	}
	if _u.mutation.ArgsCleared() {
		_spec.ClearField(server.FieldArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Env(); ok {
		_spec.SetField(server.FieldEnv, field.TypeJSON, value)
	}
	if _u.mutation.EnvCleared() {
		_spec.ClearField(server.FieldEnv, field.TypeJSON)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(server.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(server.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(server.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CapabilitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   server.CapabilitiesTable,
			Columns: server.CapabilitiesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capability.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCapabilitiesIDs(); len(nodes) > 0 && !_u.mutation.CapabilitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   server.CapabilitiesTable,
			Columns: server.CapabilitiesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capability.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CapabilitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   server.CapabilitiesTable,
			Columns: server.CapabilitiesPrimaryKey,
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
	if _u.mutation.ToolsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.ToolsTable,
			Columns: []string{server.ToolsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tool.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolsIDs(); len(nodes) > 0 && !_u.mutation.ToolsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.ToolsTable,
			Columns: []string{server.ToolsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tool.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.ToolsTable,
			Columns: []string{server.ToolsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tool.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HealthCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   server.HealthTable,
			Columns: []string{server.HealthColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(healthrecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HealthIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   server.HealthTable,
			Columns: []string{server.HealthColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(healthrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.UsageTable,
			Columns: []string{server.UsageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsageIDs(); len(nodes) > 0 && !_u.mutation.UsageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.UsageTable,
			Columns: []string{server.UsageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.UsageTable,
			Columns: []string{server.UsageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.TagsTable,
			Columns: []string{server.TagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servertag.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTagsIDs(); len(nodes) > 0 && !_u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.TagsTable,
			Columns: []string{server.TagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servertag.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.TagsTable,
			Columns: []string{server.TagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servertag.FieldID, field.TypeInt),
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
			Table:   server.ServerCapabilitiesTable,
			Columns: []string{server.ServerCapabilitiesColumn},
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
			Table:   server.ServerCapabilitiesTable,
			Columns: []string{server.ServerCapabilitiesColumn},
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
			Table:   server.ServerCapabilitiesTable,
			Columns: []string{server.ServerCapabilitiesColumn},
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
	_node = &Server{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{server.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
