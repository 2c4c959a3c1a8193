// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mcp-router/mcp-router/ent/capability"
	"github.com/mcp-router/mcp-router/ent/healthrecord"
	"github.com/mcp-router/mcp-router/ent/server"
	"github.com/mcp-router/mcp-router/ent/servercapability"
	"github.com/mcp-router/mcp-router/ent/servertag"
	"github.com/mcp-router/mcp-router/ent/tool"
	"github.com/mcp-router/mcp-router/ent/usagerecord"
)

// ServerCreate is the builder for creating a Server entity.
type ServerCreate struct {
	config
	mutation *ServerMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ServerCreate) SetName(v string) *ServerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ServerCreate) SetDescription(v string) *ServerCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ServerCreate) SetNillableDescription(v *string) *ServerCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetTransportKind sets the "transport_kind" field.
func (_c *ServerCreate) SetTransportKind(v string) *ServerCreate {
	_c.mutation.SetTransportKind(v)
	return _c
}

// SetNillableTransportKind sets the "transport_kind" field if the given value is not nil.
func (_c *ServerCreate) SetNillableTransportKind(v *string) *ServerCreate {
	if v != nil {
		_c.SetTransportKind(*v)
	}
	return _c
}

// SetCommand sets the "command" field.
func (_c *ServerCreate) SetCommand(v string) *ServerCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_c *ServerCreate) SetNillableCommand(v *string) *ServerCreate {
	if v != nil {
		_c.SetCommand(*v)
	}
	return _c
}

// SetArgs sets the "args" field.
func (_c *ServerCreate) SetArgs(v []string) *ServerCreate {
	_c.mutation.SetArgs(v)
	return _c
}

// SetEnv sets the "env" field.
func (_c *ServerCreate) SetEnv(v map[string]string) *ServerCreate {
	_c.mutation.SetEnv(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *ServerCreate) SetURL(v string) *ServerCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *ServerCreate) SetNillableURL(v *string) *ServerCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServerCreate) SetCreatedAt(v time.Time) *ServerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServerCreate) SetNillableCreatedAt(v *time.Time) *ServerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ServerCreate) SetUpdatedAt(v time.Time) *ServerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ServerCreate) SetNillableUpdatedAt(v *time.Time) *ServerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServerCreate) SetID(v string) *ServerCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddCapabilityIDs adds the "capabilities" edge to the Capability entity by IDs.
func (_c *ServerCreate) AddCapabilityIDs(ids ...int) *ServerCreate {
	_c.mutation.AddCapabilityIDs(ids...)
	return _c
}

// AddCapabilities adds the "capabilities" edges to the Capability entity.
func (_c *ServerCreate) AddCapabilities(v ...*Capability) *ServerCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCapabilityIDs(ids...)
}

// AddToolIDs adds the "tools" edge to the Tool entity by IDs.
func (_c *ServerCreate) AddToolIDs(ids ...int) *ServerCreate {
	_c.mutation.AddToolIDs(ids...)
	return _c
}

// AddTools adds the "tools" edges to the Tool entity.
func (_c *ServerCreate) AddTools(v ...*Tool) *ServerCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddToolIDs(ids...)
}

// SetHealthID sets the "health" edge to the HealthRecord entity by ID.
func (_c *ServerCreate) SetHealthID(id int) *ServerCreate {
	_c.mutation.SetHealthID(id)
	return _c
}

// SetNillableHealthID sets the "health" edge to the HealthRecord entity by ID if the given value is not nil.
func (_c *ServerCreate) SetNillableHealthID(id *int) *ServerCreate {
	if id != nil {
		_c = _c.SetHealthID(*id)
	}
	return _c
}

// SetHealth sets the "health" edge to the HealthRecord entity.
func (_c *ServerCreate) SetHealth(v *HealthRecord) *ServerCreate {
	return _c.SetHealthID(v.ID)
}

// AddUsageIDs adds the "usage" edge to the UsageRecord entity by IDs.
func (_c *ServerCreate) AddUsageIDs(ids ...int) *ServerCreate {
	_c.mutation.AddUsageIDs(ids...)
	return _c
}

// AddUsage adds the "usage" edges to the UsageRecord entity.
func (_c *ServerCreate) AddUsage(v ...*UsageRecord) *ServerCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUsageIDs(ids...)
}

// AddTagIDs adds the "tags" edge to the ServerTag entity by IDs.
func (_c *ServerCreate) AddTagIDs(ids ...int) *ServerCreate {
	_c.mutation.AddTagIDs(ids...)
	return _c
}

// AddTags adds the "tags" edges to the ServerTag entity.
func (_c *ServerCreate) AddTags(v ...*ServerTag) *ServerCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTagIDs(ids...)
}

// AddServerCapabilityIDs adds the "server_capabilities" edge to the ServerCapability entity by IDs.
func (_c *ServerCreate) AddServerCapabilityIDs(ids ...int) *ServerCreate {
	_c.mutation.AddServerCapabilityIDs(ids...)
	return _c
}

// AddServerCapabilities adds the "server_capabilities" edges to the ServerCapability entity.
func (_c *ServerCreate) AddServerCapabilities(v ...*ServerCapability) *ServerCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddServerCapabilityIDs(ids...)
}

// Mutation returns the ServerMutation object of the builder.
func (_c *ServerCreate) Mutation() *ServerMutation {
	return _c.mutation
}

// Save creates the Server in the database.
func (_c *ServerCreate) Save(ctx context.Context) (*Server, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServerCreate) SaveX(ctx context.Context) *Server {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServerCreate) defaults() {
	if _, ok := _c.mutation.TransportKind(); !ok {
		v := server.DefaultTransportKind
		_c.mutation.SetTransportKind(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := server.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := server.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServerCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Server.name"`)}
	}
	if _, ok := _c.mutation.TransportKind(); !ok {
		return &ValidationError{Name: "transport_kind", err: errors.New(`ent: missing required field "Server.transport_kind"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Server.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Server.updated_at"`)}
	}
	return nil
}

func (_c *ServerCreate) sqlSave(ctx context.Context) (*Server, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Server.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ServerCreate) createSpec() (*Server, *sqlgraph.CreateSpec) {
	var (
		_node = &Server{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(server.Table, sqlgraph.NewFieldSpec(server.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(server.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(server.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.TransportKind(); ok {
		_spec.SetField(server.FieldTransportKind, field.TypeString, value)
		_node.TransportKind = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(server.FieldCommand, field.TypeString, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.Args(); ok {
		_spec.SetField(server.FieldArgs, field.TypeJSON, value)
		_node.Args = value
	}
	if value, ok := _c.mutation.Env(); ok {
		_spec.SetField(server.FieldEnv, field.TypeJSON, value)
		_node.Env = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(server.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(server.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(server.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CapabilitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ToolsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HealthIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UsageIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TagsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ServerCapabilitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ServerCreateBulk is the builder for creating many Server entities in bulk.
type ServerCreateBulk struct {
	config
	err      error
	builders []*ServerCreate
}

// Save creates the Server entities in the database.
func (_c *ServerCreateBulk) Save(ctx context.Context) ([]*Server, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Server, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServerMutation)
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
func (_c *ServerCreateBulk) SaveX(ctx context.Context) []*Server {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
