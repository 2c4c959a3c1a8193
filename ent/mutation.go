// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mcp-router/mcp-router/ent/capability"
	"github.com/mcp-router/mcp-router/ent/healthrecord"
	"github.com/mcp-router/mcp-router/ent/predicate"
	"github.com/mcp-router/mcp-router/ent/server"
	"github.com/mcp-router/mcp-router/ent/servercapability"
	"github.com/mcp-router/mcp-router/ent/servertag"
	"github.com/mcp-router/mcp-router/ent/tool"
	"github.com/mcp-router/mcp-router/ent/usagerecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCapability       = "Capability"
	TypeHealthRecord     = "HealthRecord"
	TypeServer           = "Server"
	TypeServerCapability = "ServerCapability"
	TypeServerTag        = "ServerTag"
	TypeTool             = "Tool"
	TypeUsageRecord      = "UsageRecord"
)

// CapabilityMutation represents an operation that mutates the Capability nodes in the graph.
type CapabilityMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	name                       *string
	description                *string
	clearedFields              map[string]struct{}
	servers                    map[string]struct{}
	removedservers             map[string]struct{}
	clearedservers             bool
	server_capabilities        map[int]struct{}
	removedserver_capabilities map[int]struct{}
	clearedserver_capabilities bool
	done                       bool
	oldValue                   func(context.Context) (*Capability, error)
	predicates                 []predicate.Capability
}

var _ ent.Mutation = (*CapabilityMutation)(nil)

// capabilityOption allows management of the mutation configuration using functional options.
type capabilityOption func(*CapabilityMutation)

// newCapabilityMutation creates new mutation for the Capability entity.
func newCapabilityMutation(c config, op Op, opts ...capabilityOption) *CapabilityMutation {
	m := &CapabilityMutation{
		config:        c,
		op:            op,
		typ:           TypeCapability,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCapabilityID sets the ID field of the mutation.
func withCapabilityID(id int) capabilityOption {
	return func(m *CapabilityMutation) {
		var (
			err   error
			once  sync.Once
			value *Capability
		)
		m.oldValue = func(ctx context.Context) (*Capability, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Capability.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCapability sets the old Capability of the mutation.
func withCapability(node *Capability) capabilityOption {
	return func(m *CapabilityMutation) {
		m.oldValue = func(context.Context) (*Capability, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CapabilityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CapabilityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CapabilityMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CapabilityMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Capability.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CapabilityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CapabilityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Capability entity.
// If the Capability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CapabilityMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *CapabilityMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CapabilityMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Capability entity.
// If the Capability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CapabilityMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[capability.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CapabilityMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[capability.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CapabilityMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, capability.FieldDescription)
}

// AddServerIDs adds the "servers" edge to the Server entity by ids.
func (m *CapabilityMutation) AddServerIDs(ids ...string) {
	if m.servers == nil {
		m.servers = make(map[string]struct{})
	}
	for i := range ids {
		m.servers[ids[i]] = struct{}{}
	}
}

// ClearServers clears the "servers" edge to the Server entity.
func (m *CapabilityMutation) ClearServers() {
	m.clearedservers = true
}

// ServersCleared reports if the "servers" edge to the Server entity was cleared.
func (m *CapabilityMutation) ServersCleared() bool {
	return m.clearedservers
}

// RemoveServerIDs removes the "servers" edge to the Server entity by IDs.
func (m *CapabilityMutation) RemoveServerIDs(ids ...string) {
	if m.removedservers == nil {
		m.removedservers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.servers, ids[i])
		m.removedservers[ids[i]] = struct{}{}
	}
}

// RemovedServers returns the removed IDs of the "servers" edge to the Server entity.
func (m *CapabilityMutation) RemovedServersIDs() (ids []string) {
	for id := range m.removedservers {
		ids = append(ids, id)
	}
	return
}

// ServersIDs returns the "servers" edge IDs in the mutation.
func (m *CapabilityMutation) ServersIDs() (ids []string) {
	for id := range m.servers {
		ids = append(ids, id)
	}
	return
}

// ResetServers resets all changes to the "servers" edge.
func (m *CapabilityMutation) ResetServers() {
	m.servers = nil
	m.clearedservers = false
	m.removedservers = nil
}

// AddServerCapabilityIDs adds the "server_capabilities" edge to the ServerCapability entity by ids.
func (m *CapabilityMutation) AddServerCapabilityIDs(ids ...int) {
	if m.server_capabilities == nil {
		m.server_capabilities = make(map[int]struct{})
	}
	for i := range ids {
		m.server_capabilities[ids[i]] = struct{}{}
	}
}

// ClearServerCapabilities clears the "server_capabilities" edge to the ServerCapability entity.
func (m *CapabilityMutation) ClearServerCapabilities() {
	m.clearedserver_capabilities = true
}

// ServerCapabilitiesCleared reports if the "server_capabilities" edge to the ServerCapability entity was cleared.
func (m *CapabilityMutation) ServerCapabilitiesCleared() bool {
	return m.clearedserver_capabilities
}

// RemoveServerCapabilityIDs removes the "server_capabilities" edge to the ServerCapability entity by IDs.
func (m *CapabilityMutation) RemoveServerCapabilityIDs(ids ...int) {
	if m.removedserver_capabilities == nil {
		m.removedserver_capabilities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.server_capabilities, ids[i])
		m.removedserver_capabilities[ids[i]] = struct{}{}
	}
}

// RemovedServerCapabilities returns the removed IDs of the "server_capabilities" edge to the ServerCapability entity.
func (m *CapabilityMutation) RemovedServerCapabilitiesIDs() (ids []int) {
	for id := range m.removedserver_capabilities {
		ids = append(ids, id)
	}
	return
}

// ServerCapabilitiesIDs returns the "server_capabilities" edge IDs in the mutation.
func (m *CapabilityMutation) ServerCapabilitiesIDs() (ids []int) {
	for id := range m.server_capabilities {
		ids = append(ids, id)
	}
	return
}

// ResetServerCapabilities resets all changes to the "server_capabilities" edge.
func (m *CapabilityMutation) ResetServerCapabilities() {
	m.server_capabilities = nil
	m.clearedserver_capabilities = false
	m.removedserver_capabilities = nil
}

// Where appends a list predicates to the CapabilityMutation builder.
func (m *CapabilityMutation) Where(ps ...predicate.Capability) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CapabilityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CapabilityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Capability, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CapabilityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CapabilityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Capability).
func (m *CapabilityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CapabilityMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, capability.FieldName)
	}
	if m.description != nil {
		fields = append(fields, capability.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CapabilityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case capability.FieldName:
		return m.Name()
	case capability.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CapabilityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case capability.FieldName:
		return m.OldName(ctx)
	case capability.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown Capability field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CapabilityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case capability.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case capability.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown Capability field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CapabilityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CapabilityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CapabilityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Capability numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CapabilityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(capability.FieldDescription) {
		fields = append(fields, capability.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CapabilityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CapabilityMutation) ClearField(name string) error {
	switch name {
	case capability.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Capability nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CapabilityMutation) ResetField(name string) error {
	switch name {
	case capability.FieldName:
		m.ResetName()
		return nil
	case capability.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown Capability field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CapabilityMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.servers != nil {
		edges = append(edges, capability.EdgeServers)
	}
	if m.server_capabilities != nil {
		edges = append(edges, capability.EdgeServerCapabilities)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CapabilityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case capability.EdgeServers:
		ids := make([]ent.Value, 0, len(m.servers))
		for id := range m.servers {
			ids = append(ids, id)
		}
		return ids
	case capability.EdgeServerCapabilities:
		ids := make([]ent.Value, 0, len(m.server_capabilities))
		for id := range m.server_capabilities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CapabilityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedservers != nil {
		edges = append(edges, capability.EdgeServers)
	}
	if m.removedserver_capabilities != nil {
		edges = append(edges, capability.EdgeServerCapabilities)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CapabilityMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case capability.EdgeServers:
		ids := make([]ent.Value, 0, len(m.removedservers))
		for id := range m.removedservers {
			ids = append(ids, id)
		}
		return ids
	case capability.EdgeServerCapabilities:
		ids := make([]ent.Value, 0, len(m.removedserver_capabilities))
		for id := range m.removedserver_capabilities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CapabilityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedservers {
		edges = append(edges, capability.EdgeServers)
	}
	if m.clearedserver_capabilities {
		edges = append(edges, capability.EdgeServerCapabilities)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CapabilityMutation) EdgeCleared(name string) bool {
	switch name {
	case capability.EdgeServers:
		return m.clearedservers
	case capability.EdgeServerCapabilities:
		return m.clearedserver_capabilities
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CapabilityMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Capability unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CapabilityMutation) ResetEdge(name string) error {
	switch name {
	case capability.EdgeServers:
		m.ResetServers()
		return nil
	case capability.EdgeServerCapabilities:
		m.ResetServerCapabilities()
		return nil
	}
	return fmt.Errorf("unknown Capability edge %s", name)
}

// HealthRecordMutation represents an operation that mutates the HealthRecord nodes in the graph.
type HealthRecordMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	status                     *healthrecord.Status
	last_check                 *time.Time
	last_successful_connection *time.Time
	error_count                *int
	adderror_count             *int
	avg_response_time          *float64
	addavg_response_time       *float64
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	server                     *string
	clearedserver              bool
	done                       bool
	oldValue                   func(context.Context) (*HealthRecord, error)
	predicates                 []predicate.HealthRecord
}

var _ ent.Mutation = (*HealthRecordMutation)(nil)

// healthrecordOption allows management of the mutation configuration using functional options.
type healthrecordOption func(*HealthRecordMutation)

// newHealthRecordMutation creates new mutation for the HealthRecord entity.
func newHealthRecordMutation(c config, op Op, opts ...healthrecordOption) *HealthRecordMutation {
	m := &HealthRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeHealthRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHealthRecordID sets the ID field of the mutation.
func withHealthRecordID(id int) healthrecordOption {
	return func(m *HealthRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *HealthRecord
		)
		m.oldValue = func(ctx context.Context) (*HealthRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HealthRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHealthRecord sets the old HealthRecord of the mutation.
func withHealthRecord(node *HealthRecord) healthrecordOption {
	return func(m *HealthRecordMutation) {
		m.oldValue = func(context.Context) (*HealthRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HealthRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HealthRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HealthRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HealthRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HealthRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetServerID sets the "server_id" field.
func (m *HealthRecordMutation) SetServerID(s string) {
	m.server = &s
}

// ServerID returns the value of the "server_id" field in the mutation.
func (m *HealthRecordMutation) ServerID() (r string, exists bool) {
	v := m.server
	if v == nil {
		return
	}
	return *v, true
}

// OldServerID returns the old "server_id" field's value of the HealthRecord entity.
// If the HealthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthRecordMutation) OldServerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerID: %w", err)
	}
	return oldValue.ServerID, nil
}

// ResetServerID resets all changes to the "server_id" field.
func (m *HealthRecordMutation) ResetServerID() {
	m.server = nil
}

// SetStatus sets the "status" field.
func (m *HealthRecordMutation) SetStatus(h healthrecord.Status) {
	m.status = &h
}

// Status returns the value of the "status" field in the mutation.
func (m *HealthRecordMutation) Status() (r healthrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the HealthRecord entity.
// If the HealthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthRecordMutation) OldStatus(ctx context.Context) (v healthrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *HealthRecordMutation) ResetStatus() {
	m.status = nil
}

// SetLastCheck sets the "last_check" field.
func (m *HealthRecordMutation) SetLastCheck(t time.Time) {
	m.last_check = &t
}

// LastCheck returns the value of the "last_check" field in the mutation.
func (m *HealthRecordMutation) LastCheck() (r time.Time, exists bool) {
	v := m.last_check
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCheck returns the old "last_check" field's value of the HealthRecord entity.
// If the HealthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthRecordMutation) OldLastCheck(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCheck is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCheck requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCheck: %w", err)
	}
	return oldValue.LastCheck, nil
}

// ClearLastCheck clears the value of the "last_check" field.
func (m *HealthRecordMutation) ClearLastCheck() {
	m.last_check = nil
	m.clearedFields[healthrecord.FieldLastCheck] = struct{}{}
}

// LastCheckCleared returns if the "last_check" field was cleared in this mutation.
func (m *HealthRecordMutation) LastCheckCleared() bool {
	_, ok := m.clearedFields[healthrecord.FieldLastCheck]
	return ok
}

// ResetLastCheck resets all changes to the "last_check" field.
func (m *HealthRecordMutation) ResetLastCheck() {
	m.last_check = nil
	delete(m.clearedFields, healthrecord.FieldLastCheck)
}

// SetLastSuccessfulConnection sets the "last_successful_connection" field.
func (m *HealthRecordMutation) SetLastSuccessfulConnection(t time.Time) {
	m.last_successful_connection = &t
}

// LastSuccessfulConnection returns the value of the "last_successful_connection" field in the mutation.
func (m *HealthRecordMutation) LastSuccessfulConnection() (r time.Time, exists bool) {
	v := m.last_successful_connection
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSuccessfulConnection returns the old "last_successful_connection" field's value of the HealthRecord entity.
// If the HealthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthRecordMutation) OldLastSuccessfulConnection(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSuccessfulConnection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSuccessfulConnection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSuccessfulConnection: %w", err)
	}
	return oldValue.LastSuccessfulConnection, nil
}

// ClearLastSuccessfulConnection clears the value of the "last_successful_connection" field.
func (m *HealthRecordMutation) ClearLastSuccessfulConnection() {
	m.last_successful_connection = nil
	m.clearedFields[healthrecord.FieldLastSuccessfulConnection] = struct{}{}
}

// LastSuccessfulConnectionCleared returns if the "last_successful_connection" field was cleared in this mutation.
func (m *HealthRecordMutation) LastSuccessfulConnectionCleared() bool {
	_, ok := m.clearedFields[healthrecord.FieldLastSuccessfulConnection]
	return ok
}

// ResetLastSuccessfulConnection resets all changes to the "last_successful_connection" field.
func (m *HealthRecordMutation) ResetLastSuccessfulConnection() {
	m.last_successful_connection = nil
	delete(m.clearedFields, healthrecord.FieldLastSuccessfulConnection)
}

// SetErrorCount sets the "error_count" field.
func (m *HealthRecordMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *HealthRecordMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the HealthRecord entity.
// If the HealthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthRecordMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *HealthRecordMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *HealthRecordMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *HealthRecordMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetAvgResponseTime sets the "avg_response_time" field.
func (m *HealthRecordMutation) SetAvgResponseTime(f float64) {
	m.avg_response_time = &f
	m.addavg_response_time = nil
}

// AvgResponseTime returns the value of the "avg_response_time" field in the mutation.
func (m *HealthRecordMutation) AvgResponseTime() (r float64, exists bool) {
	v := m.avg_response_time
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgResponseTime returns the old "avg_response_time" field's value of the HealthRecord entity.
// If the HealthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthRecordMutation) OldAvgResponseTime(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgResponseTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgResponseTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgResponseTime: %w", err)
	}
	return oldValue.AvgResponseTime, nil
}

// AddAvgResponseTime adds f to the "avg_response_time" field.
func (m *HealthRecordMutation) AddAvgResponseTime(f float64) {
	if m.addavg_response_time != nil {
		*m.addavg_response_time += f
	} else {
		m.addavg_response_time = &f
	}
}

// AddedAvgResponseTime returns the value that was added to the "avg_response_time" field in this mutation.
func (m *HealthRecordMutation) AddedAvgResponseTime() (r float64, exists bool) {
	v := m.addavg_response_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgResponseTime resets all changes to the "avg_response_time" field.
func (m *HealthRecordMutation) ResetAvgResponseTime() {
	m.avg_response_time = nil
	m.addavg_response_time = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *HealthRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *HealthRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the HealthRecord entity.
// If the HealthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *HealthRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearServer clears the "server" edge to the Server entity.
func (m *HealthRecordMutation) ClearServer() {
	m.clearedserver = true
	m.clearedFields[healthrecord.FieldServerID] = struct{}{}
}

// ServerCleared reports if the "server" edge to the Server entity was cleared.
func (m *HealthRecordMutation) ServerCleared() bool {
	return m.clearedserver
}

// ServerIDs returns the "server" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServerID instead. It exists only for internal usage by the builders.
func (m *HealthRecordMutation) ServerIDs() (ids []string) {
	if id := m.server; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetServer resets all changes to the "server" edge.
func (m *HealthRecordMutation) ResetServer() {
	m.server = nil
	m.clearedserver = false
}

// Where appends a list predicates to the HealthRecordMutation builder.
func (m *HealthRecordMutation) Where(ps ...predicate.HealthRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HealthRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HealthRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HealthRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HealthRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HealthRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HealthRecord).
func (m *HealthRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HealthRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.server != nil {
		fields = append(fields, healthrecord.FieldServerID)
	}
	if m.status != nil {
		fields = append(fields, healthrecord.FieldStatus)
	}
	if m.last_check != nil {
		fields = append(fields, healthrecord.FieldLastCheck)
	}
	if m.last_successful_connection != nil {
		fields = append(fields, healthrecord.FieldLastSuccessfulConnection)
	}
	if m.error_count != nil {
		fields = append(fields, healthrecord.FieldErrorCount)
	}
	if m.avg_response_time != nil {
		fields = append(fields, healthrecord.FieldAvgResponseTime)
	}
	if m.updated_at != nil {
		fields = append(fields, healthrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HealthRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case healthrecord.FieldServerID:
		return m.ServerID()
	case healthrecord.FieldStatus:
		return m.Status()
	case healthrecord.FieldLastCheck:
		return m.LastCheck()
	case healthrecord.FieldLastSuccessfulConnection:
		return m.LastSuccessfulConnection()
	case healthrecord.FieldErrorCount:
		return m.ErrorCount()
	case healthrecord.FieldAvgResponseTime:
		return m.AvgResponseTime()
	case healthrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HealthRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case healthrecord.FieldServerID:
		return m.OldServerID(ctx)
	case healthrecord.FieldStatus:
		return m.OldStatus(ctx)
	case healthrecord.FieldLastCheck:
		return m.OldLastCheck(ctx)
	case healthrecord.FieldLastSuccessfulConnection:
		return m.OldLastSuccessfulConnection(ctx)
	case healthrecord.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case healthrecord.FieldAvgResponseTime:
		return m.OldAvgResponseTime(ctx)
	case healthrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HealthRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HealthRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case healthrecord.FieldServerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerID(v)
		return nil
	case healthrecord.FieldStatus:
		v, ok := value.(healthrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case healthrecord.FieldLastCheck:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCheck(v)
		return nil
	case healthrecord.FieldLastSuccessfulConnection:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSuccessfulConnection(v)
		return nil
	case healthrecord.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case healthrecord.FieldAvgResponseTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgResponseTime(v)
		return nil
	case healthrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HealthRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HealthRecordMutation) AddedFields() []string {
	var fields []string
	if m.adderror_count != nil {
		fields = append(fields, healthrecord.FieldErrorCount)
	}
	if m.addavg_response_time != nil {
		fields = append(fields, healthrecord.FieldAvgResponseTime)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HealthRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case healthrecord.FieldErrorCount:
		return m.AddedErrorCount()
	case healthrecord.FieldAvgResponseTime:
		return m.AddedAvgResponseTime()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HealthRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case healthrecord.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	case healthrecord.FieldAvgResponseTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgResponseTime(v)
		return nil
	}
	return fmt.Errorf("unknown HealthRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HealthRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(healthrecord.FieldLastCheck) {
		fields = append(fields, healthrecord.FieldLastCheck)
	}
	if m.FieldCleared(healthrecord.FieldLastSuccessfulConnection) {
		fields = append(fields, healthrecord.FieldLastSuccessfulConnection)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HealthRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HealthRecordMutation) ClearField(name string) error {
	switch name {
	case healthrecord.FieldLastCheck:
		m.ClearLastCheck()
		return nil
	case healthrecord.FieldLastSuccessfulConnection:
		m.ClearLastSuccessfulConnection()
		return nil
	}
	return fmt.Errorf("unknown HealthRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HealthRecordMutation) ResetField(name string) error {
	switch name {
	case healthrecord.FieldServerID:
		m.ResetServerID()
		return nil
	case healthrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case healthrecord.FieldLastCheck:
		m.ResetLastCheck()
		return nil
	case healthrecord.FieldLastSuccessfulConnection:
		m.ResetLastSuccessfulConnection()
		return nil
	case healthrecord.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case healthrecord.FieldAvgResponseTime:
		m.ResetAvgResponseTime()
		return nil
	case healthrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown HealthRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HealthRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.server != nil {
		edges = append(edges, healthrecord.EdgeServer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HealthRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case healthrecord.EdgeServer:
		if id := m.server; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HealthRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HealthRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HealthRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedserver {
		edges = append(edges, healthrecord.EdgeServer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HealthRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case healthrecord.EdgeServer:
		return m.clearedserver
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HealthRecordMutation) ClearEdge(name string) error {
	switch name {
	case healthrecord.EdgeServer:
		m.ClearServer()
		return nil
	}
	return fmt.Errorf("unknown HealthRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HealthRecordMutation) ResetEdge(name string) error {
	switch name {
	case healthrecord.EdgeServer:
		m.ResetServer()
		return nil
	}
	return fmt.Errorf("unknown HealthRecord edge %s", name)
}

// ServerMutation represents an operation that mutates the Server nodes in the graph.
type ServerMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	name                       *string
	description                *string
	transport_kind             *string
	command                    *string
	args                       *[]string
	appendargs                 []string
	env                        *map[string]string
	url                        *string
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	capabilities               map[int]struct{}
	removedcapabilities        map[int]struct{}
	clearedcapabilities        bool
	tools                      map[int]struct{}
	removedtools               map[int]struct{}
	clearedtools               bool
	health                     *int
	clearedhealth              bool
	usage                      map[int]struct{}
	removedusage               map[int]struct{}
	clearedusage               bool
	tags                       map[int]struct{}
	removedtags                map[int]struct{}
	clearedtags                bool
	server_capabilities        map[int]struct{}
	removedserver_capabilities map[int]struct{}
	clearedserver_capabilities bool
	done                       bool
	oldValue                   func(context.Context) (*Server, error)
	predicates                 []predicate.Server
}

var _ ent.Mutation = (*ServerMutation)(nil)

// serverOption allows management of the mutation configuration using functional options.
type serverOption func(*ServerMutation)

// newServerMutation creates new mutation for the Server entity.
func newServerMutation(c config, op Op, opts ...serverOption) *ServerMutation {
	m := &ServerMutation{
		config:        c,
		op:            op,
		typ:           TypeServer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServerID sets the ID field of the mutation.
func withServerID(id string) serverOption {
	return func(m *ServerMutation) {
		var (
			err   error
			once  sync.Once
			value *Server
		)
		m.oldValue = func(ctx context.Context) (*Server, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Server.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServer sets the old Server of the mutation.
func withServer(node *Server) serverOption {
	return func(m *ServerMutation) {
		m.oldValue = func(context.Context) (*Server, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Server entities.
func (m *ServerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Server.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ServerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ServerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ServerMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ServerMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ServerMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ServerMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[server.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ServerMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[server.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ServerMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, server.FieldDescription)
}

// SetTransportKind sets the "transport_kind" field.
func (m *ServerMutation) SetTransportKind(s string) {
	m.transport_kind = &s
}

// TransportKind returns the value of the "transport_kind" field in the mutation.
func (m *ServerMutation) TransportKind() (r string, exists bool) {
	v := m.transport_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldTransportKind returns the old "transport_kind" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldTransportKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransportKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransportKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransportKind: %w", err)
	}
	return oldValue.TransportKind, nil
}

// ResetTransportKind resets all changes to the "transport_kind" field.
func (m *ServerMutation) ResetTransportKind() {
	m.transport_kind = nil
}

// SetCommand sets the "command" field.
func (m *ServerMutation) SetCommand(s string) {
	m.command = &s
}

// Command returns the value of the "command" field in the mutation.
func (m *ServerMutation) Command() (r string, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldCommand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ClearCommand clears the value of the "command" field.
func (m *ServerMutation) ClearCommand() {
	m.command = nil
	m.clearedFields[server.FieldCommand] = struct{}{}
}

// CommandCleared returns if the "command" field was cleared in this mutation.
func (m *ServerMutation) CommandCleared() bool {
	_, ok := m.clearedFields[server.FieldCommand]
	return ok
}

// ResetCommand resets all changes to the "command" field.
func (m *ServerMutation) ResetCommand() {
	m.command = nil
	delete(m.clearedFields, server.FieldCommand)
}

// SetArgs sets the "args" field.
func (m *ServerMutation) SetArgs(s []string) {
	m.args = &s
	m.appendargs = nil
}

// Args returns the value of the "args" field in the mutation.
func (m *ServerMutation) Args() (r []string, exists bool) {
	v := m.args
	if v == nil {
		return
	}
	return *v, true
}

// OldArgs returns the old "args" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldArgs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgs: %w", err)
	}
	return oldValue.Args, nil
}

// AppendArgs adds s to the "args" field.
func (m *ServerMutation) AppendArgs(s []string) {
	m.appendargs = append(m.appendargs, s...)
}

// AppendedArgs returns the list of values that were appended to the "args" field in this mutation.
func (m *ServerMutation) AppendedArgs() ([]string, bool) {
	if len(m.appendargs) == 0 {
		return nil, false
	}
	return m.appendargs, true
}

// ClearArgs clears the value of the "args" field.
func (m *ServerMutation) ClearArgs() {
	m.args = nil
	m.appendargs = nil
	m.clearedFields[server.FieldArgs] = struct{}{}
}

// ArgsCleared returns if the "args" field was cleared in this mutation.
func (m *ServerMutation) ArgsCleared() bool {
	_, ok := m.clearedFields[server.FieldArgs]
	return ok
}

// ResetArgs resets all changes to the "args" field.
func (m *ServerMutation) ResetArgs() {
	m.args = nil
	m.appendargs = nil
	delete(m.clearedFields, server.FieldArgs)
}

// SetEnv sets the "env" field.
func (m *ServerMutation) SetEnv(value map[string]string) {
	m.env = &value
}

// Env returns the value of the "env" field in the mutation.
func (m *ServerMutation) Env() (r map[string]string, exists bool) {
	v := m.env
	if v == nil {
		return
	}
	return *v, true
}

// OldEnv returns the old "env" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldEnv(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnv is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnv requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnv: %w", err)
	}
	return oldValue.Env, nil
}

// ClearEnv clears the value of the "env" field.
func (m *ServerMutation) ClearEnv() {
	m.env = nil
	m.clearedFields[server.FieldEnv] = struct{}{}
}

// EnvCleared returns if the "env" field was cleared in this mutation.
func (m *ServerMutation) EnvCleared() bool {
	_, ok := m.clearedFields[server.FieldEnv]
	return ok
}

// ResetEnv resets all changes to the "env" field.
func (m *ServerMutation) ResetEnv() {
	m.env = nil
	delete(m.clearedFields, server.FieldEnv)
}

// SetURL sets the "url" field.
func (m *ServerMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ServerMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *ServerMutation) ClearURL() {
	m.url = nil
	m.clearedFields[server.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *ServerMutation) URLCleared() bool {
	_, ok := m.clearedFields[server.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *ServerMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, server.FieldURL)
}

// SetCreatedAt sets the "created_at" field.
func (m *ServerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ServerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ServerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ServerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddCapabilityIDs adds the "capabilities" edge to the Capability entity by ids.
func (m *ServerMutation) AddCapabilityIDs(ids ...int) {
	if m.capabilities == nil {
		m.capabilities = make(map[int]struct{})
	}
	for i := range ids {
		m.capabilities[ids[i]] = struct{}{}
	}
}

// ClearCapabilities clears the "capabilities" edge to the Capability entity.
func (m *ServerMutation) ClearCapabilities() {
	m.clearedcapabilities = true
}

// CapabilitiesCleared reports if the "capabilities" edge to the Capability entity was cleared.
func (m *ServerMutation) CapabilitiesCleared() bool {
	return m.clearedcapabilities
}

// RemoveCapabilityIDs removes the "capabilities" edge to the Capability entity by IDs.
func (m *ServerMutation) RemoveCapabilityIDs(ids ...int) {
	if m.removedcapabilities == nil {
		m.removedcapabilities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.capabilities, ids[i])
		m.removedcapabilities[ids[i]] = struct{}{}
	}
}

// RemovedCapabilities returns the removed IDs of the "capabilities" edge to the Capability entity.
func (m *ServerMutation) RemovedCapabilitiesIDs() (ids []int) {
	for id := range m.removedcapabilities {
		ids = append(ids, id)
	}
	return
}

// CapabilitiesIDs returns the "capabilities" edge IDs in the mutation.
func (m *ServerMutation) CapabilitiesIDs() (ids []int) {
	for id := range m.capabilities {
		ids = append(ids, id)
	}
	return
}

// ResetCapabilities resets all changes to the "capabilities" edge.
func (m *ServerMutation) ResetCapabilities() {
	m.capabilities = nil
	m.clearedcapabilities = false
	m.removedcapabilities = nil
}

// AddToolIDs adds the "tools" edge to the Tool entity by ids.
func (m *ServerMutation) AddToolIDs(ids ...int) {
	if m.tools == nil {
		m.tools = make(map[int]struct{})
	}
	for i := range ids {
		m.tools[ids[i]] = struct{}{}
	}
}

// ClearTools clears the "tools" edge to the Tool entity.
func (m *ServerMutation) ClearTools() {
	m.clearedtools = true
}

// ToolsCleared reports if the "tools" edge to the Tool entity was cleared.
func (m *ServerMutation) ToolsCleared() bool {
	return m.clearedtools
}

// RemoveToolIDs removes the "tools" edge to the Tool entity by IDs.
func (m *ServerMutation) RemoveToolIDs(ids ...int) {
	if m.removedtools == nil {
		m.removedtools = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tools, ids[i])
		m.removedtools[ids[i]] = struct{}{}
	}
}

// RemovedTools returns the removed IDs of the "tools" edge to the Tool entity.
func (m *ServerMutation) RemovedToolsIDs() (ids []int) {
	for id := range m.removedtools {
		ids = append(ids, id)
	}
	return
}

// ToolsIDs returns the "tools" edge IDs in the mutation.
func (m *ServerMutation) ToolsIDs() (ids []int) {
	for id := range m.tools {
		ids = append(ids, id)
	}
	return
}

// ResetTools resets all changes to the "tools" edge.
func (m *ServerMutation) ResetTools() {
	m.tools = nil
	m.clearedtools = false
	m.removedtools = nil
}

// SetHealthID sets the "health" edge to the HealthRecord entity by id.
func (m *ServerMutation) SetHealthID(id int) {
	m.health = &id
}

// ClearHealth clears the "health" edge to the HealthRecord entity.
func (m *ServerMutation) ClearHealth() {
	m.clearedhealth = true
}

// HealthCleared reports if the "health" edge to the HealthRecord entity was cleared.
func (m *ServerMutation) HealthCleared() bool {
	return m.clearedhealth
}

// HealthID returns the "health" edge ID in the mutation.
func (m *ServerMutation) HealthID() (id int, exists bool) {
	if m.health != nil {
		return *m.health, true
	}
	return
}

// HealthIDs returns the "health" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HealthID instead. It exists only for internal usage by the builders.
func (m *ServerMutation) HealthIDs() (ids []int) {
	if id := m.health; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHealth resets all changes to the "health" edge.
func (m *ServerMutation) ResetHealth() {
	m.health = nil
	m.clearedhealth = false
}

// AddUsageIDs adds the "usage" edge to the UsageRecord entity by ids.
func (m *ServerMutation) AddUsageIDs(ids ...int) {
	if m.usage == nil {
		m.usage = make(map[int]struct{})
	}
	for i := range ids {
		m.usage[ids[i]] = struct{}{}
	}
}

// ClearUsage clears the "usage" edge to the UsageRecord entity.
func (m *ServerMutation) ClearUsage() {
	m.clearedusage = true
}

// UsageCleared reports if the "usage" edge to the UsageRecord entity was cleared.
func (m *ServerMutation) UsageCleared() bool {
	return m.clearedusage
}

// RemoveUsageIDs removes the "usage" edge to the UsageRecord entity by IDs.
func (m *ServerMutation) RemoveUsageIDs(ids ...int) {
	if m.removedusage == nil {
		m.removedusage = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.usage, ids[i])
		m.removedusage[ids[i]] = struct{}{}
	}
}

// RemovedUsage returns the removed IDs of the "usage" edge to the UsageRecord entity.
func (m *ServerMutation) RemovedUsageIDs() (ids []int) {
	for id := range m.removedusage {
		ids = append(ids, id)
	}
	return
}

// UsageIDs returns the "usage" edge IDs in the mutation.
func (m *ServerMutation) UsageIDs() (ids []int) {
	for id := range m.usage {
		ids = append(ids, id)
	}
	return
}

// ResetUsage resets all changes to the "usage" edge.
func (m *ServerMutation) ResetUsage() {
	m.usage = nil
	m.clearedusage = false
	m.removedusage = nil
}

// AddTagIDs adds the "tags" edge to the ServerTag entity by ids.
func (m *ServerMutation) AddTagIDs(ids ...int) {
	if m.tags == nil {
		m.tags = make(map[int]struct{})
	}
	for i := range ids {
		m.tags[ids[i]] = struct{}{}
	}
}

// ClearTags clears the "tags" edge to the ServerTag entity.
func (m *ServerMutation) ClearTags() {
	m.clearedtags = true
}

// TagsCleared reports if the "tags" edge to the ServerTag entity was cleared.
func (m *ServerMutation) TagsCleared() bool {
	return m.clearedtags
}

// RemoveTagIDs removes the "tags" edge to the ServerTag entity by IDs.
func (m *ServerMutation) RemoveTagIDs(ids ...int) {
	if m.removedtags == nil {
		m.removedtags = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tags, ids[i])
		m.removedtags[ids[i]] = struct{}{}
	}
}

// RemovedTags returns the removed IDs of the "tags" edge to the ServerTag entity.
func (m *ServerMutation) RemovedTagsIDs() (ids []int) {
	for id := range m.removedtags {
		ids = append(ids, id)
	}
	return
}

// TagsIDs returns the "tags" edge IDs in the mutation.
func (m *ServerMutation) TagsIDs() (ids []int) {
	for id := range m.tags {
		ids = append(ids, id)
	}
	return
}

// ResetTags resets all changes to the "tags" edge.
func (m *ServerMutation) ResetTags() {
	m.tags = nil
	m.clearedtags = false
	m.removedtags = nil
}

// AddServerCapabilityIDs adds the "server_capabilities" edge to the ServerCapability entity by ids.
func (m *ServerMutation) AddServerCapabilityIDs(ids ...int) {
	if m.server_capabilities == nil {
		m.server_capabilities = make(map[int]struct{})
	}
	for i := range ids {
		m.server_capabilities[ids[i]] = struct{}{}
	}
}

// ClearServerCapabilities clears the "server_capabilities" edge to the ServerCapability entity.
func (m *ServerMutation) ClearServerCapabilities() {
	m.clearedserver_capabilities = true
}

// ServerCapabilitiesCleared reports if the "server_capabilities" edge to the ServerCapability entity was cleared.
func (m *ServerMutation) ServerCapabilitiesCleared() bool {
	return m.clearedserver_capabilities
}

// RemoveServerCapabilityIDs removes the "server_capabilities" edge to the ServerCapability entity by IDs.
func (m *ServerMutation) RemoveServerCapabilityIDs(ids ...int) {
	if m.removedserver_capabilities == nil {
		m.removedserver_capabilities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.server_capabilities, ids[i])
		m.removedserver_capabilities[ids[i]] = struct{}{}
	}
}

// RemovedServerCapabilities returns the removed IDs of the "server_capabilities" edge to the ServerCapability entity.
func (m *ServerMutation) RemovedServerCapabilitiesIDs() (ids []int) {
	for id := range m.removedserver_capabilities {
		ids = append(ids, id)
	}
	return
}

// ServerCapabilitiesIDs returns the "server_capabilities" edge IDs in the mutation.
func (m *ServerMutation) ServerCapabilitiesIDs() (ids []int) {
	for id := range m.server_capabilities {
		ids = append(ids, id)
	}
	return
}

// ResetServerCapabilities resets all changes to the "server_capabilities" edge.
func (m *ServerMutation) ResetServerCapabilities() {
	m.server_capabilities = nil
	m.clearedserver_capabilities = false
	m.removedserver_capabilities = nil
}

// Where appends a list predicates to the ServerMutation builder.
func (m *ServerMutation) Where(ps ...predicate.Server) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Server, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Server).
func (m *ServerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServerMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, server.FieldName)
	}
	if m.description != nil {
		fields = append(fields, server.FieldDescription)
	}
	if m.transport_kind != nil {
		fields = append(fields, server.FieldTransportKind)
	}
	if m.command != nil {
		fields = append(fields, server.FieldCommand)
	}
	if m.args != nil {
		fields = append(fields, server.FieldArgs)
	}
	if m.env != nil {
		fields = append(fields, server.FieldEnv)
	}
	if m.url != nil {
		fields = append(fields, server.FieldURL)
	}
	if m.created_at != nil {
		fields = append(fields, server.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, server.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case server.FieldName:
		return m.Name()
	case server.FieldDescription:
		return m.Description()
	case server.FieldTransportKind:
		return m.TransportKind()
	case server.FieldCommand:
		return m.Command()
	case server.FieldArgs:
		return m.Args()
	case server.FieldEnv:
		return m.Env()
	case server.FieldURL:
		return m.URL()
	case server.FieldCreatedAt:
		return m.CreatedAt()
	case server.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case server.FieldName:
		return m.OldName(ctx)
	case server.FieldDescription:
		return m.OldDescription(ctx)
	case server.FieldTransportKind:
		return m.OldTransportKind(ctx)
	case server.FieldCommand:
		return m.OldCommand(ctx)
	case server.FieldArgs:
		return m.OldArgs(ctx)
	case server.FieldEnv:
		return m.OldEnv(ctx)
	case server.FieldURL:
		return m.OldURL(ctx)
	case server.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case server.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Server field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case server.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case server.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case server.FieldTransportKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransportKind(v)
		return nil
	case server.FieldCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case server.FieldArgs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgs(v)
		return nil
	case server.FieldEnv:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnv(v)
		return nil
	case server.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case server.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case server.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Server field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Server numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(server.FieldDescription) {
		fields = append(fields, server.FieldDescription)
	}
	if m.FieldCleared(server.FieldCommand) {
		fields = append(fields, server.FieldCommand)
	}
	if m.FieldCleared(server.FieldArgs) {
		fields = append(fields, server.FieldArgs)
	}
	if m.FieldCleared(server.FieldEnv) {
		fields = append(fields, server.FieldEnv)
	}
	if m.FieldCleared(server.FieldURL) {
		fields = append(fields, server.FieldURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServerMutation) ClearField(name string) error {
	switch name {
	case server.FieldDescription:
		m.ClearDescription()
		return nil
	case server.FieldCommand:
		m.ClearCommand()
		return nil
	case server.FieldArgs:
		m.ClearArgs()
		return nil
	case server.FieldEnv:
		m.ClearEnv()
		return nil
	case server.FieldURL:
		m.ClearURL()
		return nil
	}
	return fmt.Errorf("unknown Server nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServerMutation) ResetField(name string) error {
	switch name {
	case server.FieldName:
		m.ResetName()
		return nil
	case server.FieldDescription:
		m.ResetDescription()
		return nil
	case server.FieldTransportKind:
		m.ResetTransportKind()
		return nil
	case server.FieldCommand:
		m.ResetCommand()
		return nil
	case server.FieldArgs:
		m.ResetArgs()
		return nil
	case server.FieldEnv:
		m.ResetEnv()
		return nil
	case server.FieldURL:
		m.ResetURL()
		return nil
	case server.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case server.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Server field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServerMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.capabilities != nil {
		edges = append(edges, server.EdgeCapabilities)
	}
	if m.tools != nil {
		edges = append(edges, server.EdgeTools)
	}
	if m.health != nil {
		edges = append(edges, server.EdgeHealth)
	}
	if m.usage != nil {
		edges = append(edges, server.EdgeUsage)
	}
	if m.tags != nil {
		edges = append(edges, server.EdgeTags)
	}
	if m.server_capabilities != nil {
		edges = append(edges, server.EdgeServerCapabilities)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case server.EdgeCapabilities:
		ids := make([]ent.Value, 0, len(m.capabilities))
		for id := range m.capabilities {
			ids = append(ids, id)
		}
		return ids
	case server.EdgeTools:
		ids := make([]ent.Value, 0, len(m.tools))
		for id := range m.tools {
			ids = append(ids, id)
		}
		return ids
	case server.EdgeHealth:
		if id := m.health; id != nil {
			return []ent.Value{*id}
		}
	case server.EdgeUsage:
		ids := make([]ent.Value, 0, len(m.usage))
		for id := range m.usage {
			ids = append(ids, id)
		}
		return ids
	case server.EdgeTags:
		ids := make([]ent.Value, 0, len(m.tags))
		for id := range m.tags {
			ids = append(ids, id)
		}
		return ids
	case server.EdgeServerCapabilities:
		ids := make([]ent.Value, 0, len(m.server_capabilities))
		for id := range m.server_capabilities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedcapabilities != nil {
		edges = append(edges, server.EdgeCapabilities)
	}
	if m.removedtools != nil {
		edges = append(edges, server.EdgeTools)
	}
	if m.removedusage != nil {
		edges = append(edges, server.EdgeUsage)
	}
	if m.removedtags != nil {
		edges = append(edges, server.EdgeTags)
	}
	if m.removedserver_capabilities != nil {
		edges = append(edges, server.EdgeServerCapabilities)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case server.EdgeCapabilities:
		ids := make([]ent.Value, 0, len(m.removedcapabilities))
		for id := range m.removedcapabilities {
			ids = append(ids, id)
		}
		return ids
	case server.EdgeTools:
		ids := make([]ent.Value, 0, len(m.removedtools))
		for id := range m.removedtools {
			ids = append(ids, id)
		}
		return ids
	case server.EdgeUsage:
		ids := make([]ent.Value, 0, len(m.removedusage))
		for id := range m.removedusage {
			ids = append(ids, id)
		}
		return ids
	case server.EdgeTags:
		ids := make([]ent.Value, 0, len(m.removedtags))
		for id := range m.removedtags {
			ids = append(ids, id)
		}
		return ids
	case server.EdgeServerCapabilities:
		ids := make([]ent.Value, 0, len(m.removedserver_capabilities))
		for id := range m.removedserver_capabilities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedcapabilities {
		edges = append(edges, server.EdgeCapabilities)
	}
	if m.clearedtools {
		edges = append(edges, server.EdgeTools)
	}
	if m.clearedhealth {
		edges = append(edges, server.EdgeHealth)
	}
	if m.clearedusage {
		edges = append(edges, server.EdgeUsage)
	}
	if m.clearedtags {
		edges = append(edges, server.EdgeTags)
	}
	if m.clearedserver_capabilities {
		edges = append(edges, server.EdgeServerCapabilities)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServerMutation) EdgeCleared(name string) bool {
	switch name {
	case server.EdgeCapabilities:
		return m.clearedcapabilities
	case server.EdgeTools:
		return m.clearedtools
	case server.EdgeHealth:
		return m.clearedhealth
	case server.EdgeUsage:
		return m.clearedusage
	case server.EdgeTags:
		return m.clearedtags
	case server.EdgeServerCapabilities:
		return m.clearedserver_capabilities
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServerMutation) ClearEdge(name string) error {
	switch name {
	case server.EdgeHealth:
		m.ClearHealth()
		return nil
	}
	return fmt.Errorf("unknown Server unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServerMutation) ResetEdge(name string) error {
	switch name {
	case server.EdgeCapabilities:
		m.ResetCapabilities()
		return nil
	case server.EdgeTools:
		m.ResetTools()
		return nil
	case server.EdgeHealth:
		m.ResetHealth()
		return nil
	case server.EdgeUsage:
		m.ResetUsage()
		return nil
	case server.EdgeTags:
		m.ResetTags()
		return nil
	case server.EdgeServerCapabilities:
		m.ResetServerCapabilities()
		return nil
	}
	return fmt.Errorf("unknown Server edge %s", name)
}

// ServerCapabilityMutation represents an operation that mutates the ServerCapability nodes in the graph.
type ServerCapabilityMutation struct {
	config
	op                Op
	typ               string
	id                *int
	clearedFields     map[string]struct{}
	server            *string
	clearedserver     bool
	capability        *int
	clearedcapability bool
	done              bool
	oldValue          func(context.Context) (*ServerCapability, error)
	predicates        []predicate.ServerCapability
}

var _ ent.Mutation = (*ServerCapabilityMutation)(nil)

// servercapabilityOption allows management of the mutation configuration using functional options.
type servercapabilityOption func(*ServerCapabilityMutation)

// newServerCapabilityMutation creates new mutation for the ServerCapability entity.
func newServerCapabilityMutation(c config, op Op, opts ...servercapabilityOption) *ServerCapabilityMutation {
	m := &ServerCapabilityMutation{
		config:        c,
		op:            op,
		typ:           TypeServerCapability,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServerCapabilityID sets the ID field of the mutation.
func withServerCapabilityID(id int) servercapabilityOption {
	return func(m *ServerCapabilityMutation) {
		var (
			err   error
			once  sync.Once
			value *ServerCapability
		)
		m.oldValue = func(ctx context.Context) (*ServerCapability, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServerCapability.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServerCapability sets the old ServerCapability of the mutation.
func withServerCapability(node *ServerCapability) servercapabilityOption {
	return func(m *ServerCapabilityMutation) {
		m.oldValue = func(context.Context) (*ServerCapability, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServerCapabilityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServerCapabilityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServerCapabilityMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServerCapabilityMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServerCapability.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetServerID sets the "server_id" field.
func (m *ServerCapabilityMutation) SetServerID(s string) {
	m.server = &s
}

// ServerID returns the value of the "server_id" field in the mutation.
func (m *ServerCapabilityMutation) ServerID() (r string, exists bool) {
	v := m.server
	if v == nil {
		return
	}
	return *v, true
}

// OldServerID returns the old "server_id" field's value of the ServerCapability entity.
// If the ServerCapability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerCapabilityMutation) OldServerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerID: %w", err)
	}
	return oldValue.ServerID, nil
}

// ResetServerID resets all changes to the "server_id" field.
func (m *ServerCapabilityMutation) ResetServerID() {
	m.server = nil
}

// SetCapabilityID sets the "capability_id" field.
func (m *ServerCapabilityMutation) SetCapabilityID(i int) {
	m.capability = &i
}

// CapabilityID returns the value of the "capability_id" field in the mutation.
func (m *ServerCapabilityMutation) CapabilityID() (r int, exists bool) {
	v := m.capability
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilityID returns the old "capability_id" field's value of the ServerCapability entity.
// If the ServerCapability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerCapabilityMutation) OldCapabilityID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilityID: %w", err)
	}
	return oldValue.CapabilityID, nil
}

// ResetCapabilityID resets all changes to the "capability_id" field.
func (m *ServerCapabilityMutation) ResetCapabilityID() {
	m.capability = nil
}

// ClearServer clears the "server" edge to the Server entity.
func (m *ServerCapabilityMutation) ClearServer() {
	m.clearedserver = true
	m.clearedFields[servercapability.FieldServerID] = struct{}{}
}

// ServerCleared reports if the "server" edge to the Server entity was cleared.
func (m *ServerCapabilityMutation) ServerCleared() bool {
	return m.clearedserver
}

// ServerIDs returns the "server" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServerID instead. It exists only for internal usage by the builders.
func (m *ServerCapabilityMutation) ServerIDs() (ids []string) {
	if id := m.server; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetServer resets all changes to the "server" edge.
func (m *ServerCapabilityMutation) ResetServer() {
	m.server = nil
	m.clearedserver = false
}

// ClearCapability clears the "capability" edge to the Capability entity.
func (m *ServerCapabilityMutation) ClearCapability() {
	m.clearedcapability = true
	m.clearedFields[servercapability.FieldCapabilityID] = struct{}{}
}

// CapabilityCleared reports if the "capability" edge to the Capability entity was cleared.
func (m *ServerCapabilityMutation) CapabilityCleared() bool {
	return m.clearedcapability
}

// CapabilityIDs returns the "capability" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CapabilityID instead. It exists only for internal usage by the builders.
func (m *ServerCapabilityMutation) CapabilityIDs() (ids []int) {
	if id := m.capability; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCapability resets all changes to the "capability" edge.
func (m *ServerCapabilityMutation) ResetCapability() {
	m.capability = nil
	m.clearedcapability = false
}

// Where appends a list predicates to the ServerCapabilityMutation builder.
func (m *ServerCapabilityMutation) Where(ps ...predicate.ServerCapability) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServerCapabilityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServerCapabilityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServerCapability, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServerCapabilityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServerCapabilityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServerCapability).
func (m *ServerCapabilityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServerCapabilityMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.server != nil {
		fields = append(fields, servercapability.FieldServerID)
	}
	if m.capability != nil {
		fields = append(fields, servercapability.FieldCapabilityID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServerCapabilityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case servercapability.FieldServerID:
		return m.ServerID()
	case servercapability.FieldCapabilityID:
		return m.CapabilityID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServerCapabilityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case servercapability.FieldServerID:
		return m.OldServerID(ctx)
	case servercapability.FieldCapabilityID:
		return m.OldCapabilityID(ctx)
	}
	return nil, fmt.Errorf("unknown ServerCapability field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServerCapabilityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case servercapability.FieldServerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerID(v)
		return nil
	case servercapability.FieldCapabilityID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilityID(v)
		return nil
	}
	return fmt.Errorf("unknown ServerCapability field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServerCapabilityMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServerCapabilityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServerCapabilityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ServerCapability numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServerCapabilityMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServerCapabilityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServerCapabilityMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ServerCapability nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServerCapabilityMutation) ResetField(name string) error {
	switch name {
	case servercapability.FieldServerID:
		m.ResetServerID()
		return nil
	case servercapability.FieldCapabilityID:
		m.ResetCapabilityID()
		return nil
	}
	return fmt.Errorf("unknown ServerCapability field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServerCapabilityMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.server != nil {
		edges = append(edges, servercapability.EdgeServer)
	}
	if m.capability != nil {
		edges = append(edges, servercapability.EdgeCapability)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServerCapabilityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case servercapability.EdgeServer:
		if id := m.server; id != nil {
			return []ent.Value{*id}
		}
	case servercapability.EdgeCapability:
		if id := m.capability; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServerCapabilityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServerCapabilityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServerCapabilityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedserver {
		edges = append(edges, servercapability.EdgeServer)
	}
	if m.clearedcapability {
		edges = append(edges, servercapability.EdgeCapability)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServerCapabilityMutation) EdgeCleared(name string) bool {
	switch name {
	case servercapability.EdgeServer:
		return m.clearedserver
	case servercapability.EdgeCapability:
		return m.clearedcapability
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServerCapabilityMutation) ClearEdge(name string) error {
	switch name {
	case servercapability.EdgeServer:
		m.ClearServer()
		return nil
	case servercapability.EdgeCapability:
		m.ClearCapability()
		return nil
	}
	return fmt.Errorf("unknown ServerCapability unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServerCapabilityMutation) ResetEdge(name string) error {
	switch name {
	case servercapability.EdgeServer:
		m.ResetServer()
		return nil
	case servercapability.EdgeCapability:
		m.ResetCapability()
		return nil
	}
	return fmt.Errorf("unknown ServerCapability edge %s", name)
}

// ServerTagMutation represents an operation that mutates the ServerTag nodes in the graph.
type ServerTagMutation struct {
	config
	op            Op
	typ           string
	id            *int
	tag           *string
	clearedFields map[string]struct{}
	server        *string
	clearedserver bool
	done          bool
	oldValue      func(context.Context) (*ServerTag, error)
	predicates    []predicate.ServerTag
}

var _ ent.Mutation = (*ServerTagMutation)(nil)

// servertagOption allows management of the mutation configuration using functional options.
type servertagOption func(*ServerTagMutation)

// newServerTagMutation creates new mutation for the ServerTag entity.
func newServerTagMutation(c config, op Op, opts ...servertagOption) *ServerTagMutation {
	m := &ServerTagMutation{
		config:        c,
		op:            op,
		typ:           TypeServerTag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServerTagID sets the ID field of the mutation.
func withServerTagID(id int) servertagOption {
	return func(m *ServerTagMutation) {
		var (
			err   error
			once  sync.Once
			value *ServerTag
		)
		m.oldValue = func(ctx context.Context) (*ServerTag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServerTag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServerTag sets the old ServerTag of the mutation.
func withServerTag(node *ServerTag) servertagOption {
	return func(m *ServerTagMutation) {
		m.oldValue = func(context.Context) (*ServerTag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServerTagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServerTagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServerTagMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServerTagMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServerTag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetServerID sets the "server_id" field.
func (m *ServerTagMutation) SetServerID(s string) {
	m.server = &s
}

// ServerID returns the value of the "server_id" field in the mutation.
func (m *ServerTagMutation) ServerID() (r string, exists bool) {
	v := m.server
	if v == nil {
		return
	}
	return *v, true
}

// OldServerID returns the old "server_id" field's value of the ServerTag entity.
// If the ServerTag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerTagMutation) OldServerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerID: %w", err)
	}
	return oldValue.ServerID, nil
}

// ResetServerID resets all changes to the "server_id" field.
func (m *ServerTagMutation) ResetServerID() {
	m.server = nil
}

// SetTag sets the "tag" field.
func (m *ServerTagMutation) SetTag(s string) {
	m.tag = &s
}

// Tag returns the value of the "tag" field in the mutation.
func (m *ServerTagMutation) Tag() (r string, exists bool) {
	v := m.tag
	if v == nil {
		return
	}
	return *v, true
}

// OldTag returns the old "tag" field's value of the ServerTag entity.
// If the ServerTag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerTagMutation) OldTag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTag: %w", err)
	}
	return oldValue.Tag, nil
}

// ResetTag resets all changes to the "tag" field.
func (m *ServerTagMutation) ResetTag() {
	m.tag = nil
}

// ClearServer clears the "server" edge to the Server entity.
func (m *ServerTagMutation) ClearServer() {
	m.clearedserver = true
	m.clearedFields[servertag.FieldServerID] = struct{}{}
}

// ServerCleared reports if the "server" edge to the Server entity was cleared.
func (m *ServerTagMutation) ServerCleared() bool {
	return m.clearedserver
}

// ServerIDs returns the "server" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServerID instead. It exists only for internal usage by the builders.
func (m *ServerTagMutation) ServerIDs() (ids []string) {
	if id := m.server; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetServer resets all changes to the "server" edge.
func (m *ServerTagMutation) ResetServer() {
	m.server = nil
	m.clearedserver = false
}

// Where appends a list predicates to the ServerTagMutation builder.
func (m *ServerTagMutation) Where(ps ...predicate.ServerTag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServerTagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServerTagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServerTag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServerTagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServerTagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServerTag).
func (m *ServerTagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServerTagMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.server != nil {
		fields = append(fields, servertag.FieldServerID)
	}
	if m.tag != nil {
		fields = append(fields, servertag.FieldTag)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServerTagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case servertag.FieldServerID:
		return m.ServerID()
	case servertag.FieldTag:
		return m.Tag()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServerTagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case servertag.FieldServerID:
		return m.OldServerID(ctx)
	case servertag.FieldTag:
		return m.OldTag(ctx)
	}
	return nil, fmt.Errorf("unknown ServerTag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServerTagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case servertag.FieldServerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerID(v)
		return nil
	case servertag.FieldTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTag(v)
		return nil
	}
	return fmt.Errorf("unknown ServerTag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServerTagMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServerTagMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServerTagMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ServerTag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServerTagMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServerTagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServerTagMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ServerTag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServerTagMutation) ResetField(name string) error {
	switch name {
	case servertag.FieldServerID:
		m.ResetServerID()
		return nil
	case servertag.FieldTag:
		m.ResetTag()
		return nil
	}
	return fmt.Errorf("unknown ServerTag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServerTagMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.server != nil {
		edges = append(edges, servertag.EdgeServer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServerTagMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case servertag.EdgeServer:
		if id := m.server; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServerTagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServerTagMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServerTagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedserver {
		edges = append(edges, servertag.EdgeServer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServerTagMutation) EdgeCleared(name string) bool {
	switch name {
	case servertag.EdgeServer:
		return m.clearedserver
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServerTagMutation) ClearEdge(name string) error {
	switch name {
	case servertag.EdgeServer:
		m.ClearServer()
		return nil
	}
	return fmt.Errorf("unknown ServerTag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServerTagMutation) ResetEdge(name string) error {
	switch name {
	case servertag.EdgeServer:
		m.ResetServer()
		return nil
	}
	return fmt.Errorf("unknown ServerTag edge %s", name)
}

// ToolMutation represents an operation that mutates the Tool nodes in the graph.
type ToolMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	description   *string
	schema        *map[string]interface{}
	clearedFields map[string]struct{}
	server        *string
	clearedserver bool
	done          bool
	oldValue      func(context.Context) (*Tool, error)
	predicates    []predicate.Tool
}

var _ ent.Mutation = (*ToolMutation)(nil)

// toolOption allows management of the mutation configuration using functional options.
type toolOption func(*ToolMutation)

// newToolMutation creates new mutation for the Tool entity.
func newToolMutation(c config, op Op, opts ...toolOption) *ToolMutation {
	m := &ToolMutation{
		config:        c,
		op:            op,
		typ:           TypeTool,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolID sets the ID field of the mutation.
func withToolID(id int) toolOption {
	return func(m *ToolMutation) {
		var (
			err   error
			once  sync.Once
			value *Tool
		)
		m.oldValue = func(ctx context.Context) (*Tool, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tool.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTool sets the old Tool of the mutation.
func withTool(node *Tool) toolOption {
	return func(m *ToolMutation) {
		m.oldValue = func(context.Context) (*Tool, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tool.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetServerID sets the "server_id" field.
func (m *ToolMutation) SetServerID(s string) {
	m.server = &s
}

// ServerID returns the value of the "server_id" field in the mutation.
func (m *ToolMutation) ServerID() (r string, exists bool) {
	v := m.server
	if v == nil {
		return
	}
	return *v, true
}

// OldServerID returns the old "server_id" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldServerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerID: %w", err)
	}
	return oldValue.ServerID, nil
}

// ResetServerID resets all changes to the "server_id" field.
func (m *ToolMutation) ResetServerID() {
	m.server = nil
}

// SetName sets the "name" field.
func (m *ToolMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ToolMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ToolMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ToolMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ToolMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ToolMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[tool.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ToolMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[tool.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ToolMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, tool.FieldDescription)
}

// SetSchema sets the "schema" field.
func (m *ToolMutation) SetSchema(value map[string]interface{}) {
	m.schema = &value
}

// Schema returns the value of the "schema" field in the mutation.
func (m *ToolMutation) Schema() (r map[string]interface{}, exists bool) {
	v := m.schema
	if v == nil {
		return
	}
	return *v, true
}

// OldSchema returns the old "schema" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldSchema(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchema: %w", err)
	}
	return oldValue.Schema, nil
}

// ClearSchema clears the value of the "schema" field.
func (m *ToolMutation) ClearSchema() {
	m.schema = nil
	m.clearedFields[tool.FieldSchema] = struct{}{}
}

// SchemaCleared returns if the "schema" field was cleared in this mutation.
func (m *ToolMutation) SchemaCleared() bool {
	_, ok := m.clearedFields[tool.FieldSchema]
	return ok
}

// ResetSchema resets all changes to the "schema" field.
func (m *ToolMutation) ResetSchema() {
	m.schema = nil
	delete(m.clearedFields, tool.FieldSchema)
}

// ClearServer clears the "server" edge to the Server entity.
func (m *ToolMutation) ClearServer() {
	m.clearedserver = true
	m.clearedFields[tool.FieldServerID] = struct{}{}
}

// ServerCleared reports if the "server" edge to the Server entity was cleared.
func (m *ToolMutation) ServerCleared() bool {
	return m.clearedserver
}

// ServerIDs returns the "server" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServerID instead. It exists only for internal usage by the builders.
func (m *ToolMutation) ServerIDs() (ids []string) {
	if id := m.server; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetServer resets all changes to the "server" edge.
func (m *ToolMutation) ResetServer() {
	m.server = nil
	m.clearedserver = false
}

// Where appends a list predicates to the ToolMutation builder.
func (m *ToolMutation) Where(ps ...predicate.Tool) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tool, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tool).
func (m *ToolMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.server != nil {
		fields = append(fields, tool.FieldServerID)
	}
	if m.name != nil {
		fields = append(fields, tool.FieldName)
	}
	if m.description != nil {
		fields = append(fields, tool.FieldDescription)
	}
	if m.schema != nil {
		fields = append(fields, tool.FieldSchema)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tool.FieldServerID:
		return m.ServerID()
	case tool.FieldName:
		return m.Name()
	case tool.FieldDescription:
		return m.Description()
	case tool.FieldSchema:
		return m.Schema()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tool.FieldServerID:
		return m.OldServerID(ctx)
	case tool.FieldName:
		return m.OldName(ctx)
	case tool.FieldDescription:
		return m.OldDescription(ctx)
	case tool.FieldSchema:
		return m.OldSchema(ctx)
	}
	return nil, fmt.Errorf("unknown Tool field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tool.FieldServerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerID(v)
		return nil
	case tool.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tool.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case tool.FieldSchema:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchema(v)
		return nil
	}
	return fmt.Errorf("unknown Tool field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tool numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tool.FieldDescription) {
		fields = append(fields, tool.FieldDescription)
	}
	if m.FieldCleared(tool.FieldSchema) {
		fields = append(fields, tool.FieldSchema)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolMutation) ClearField(name string) error {
	switch name {
	case tool.FieldDescription:
		m.ClearDescription()
		return nil
	case tool.FieldSchema:
		m.ClearSchema()
		return nil
	}
	return fmt.Errorf("unknown Tool nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolMutation) ResetField(name string) error {
	switch name {
	case tool.FieldServerID:
		m.ResetServerID()
		return nil
	case tool.FieldName:
		m.ResetName()
		return nil
	case tool.FieldDescription:
		m.ResetDescription()
		return nil
	case tool.FieldSchema:
		m.ResetSchema()
		return nil
	}
	return fmt.Errorf("unknown Tool field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.server != nil {
		edges = append(edges, tool.EdgeServer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tool.EdgeServer:
		if id := m.server; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedserver {
		edges = append(edges, tool.EdgeServer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolMutation) EdgeCleared(name string) bool {
	switch name {
	case tool.EdgeServer:
		return m.clearedserver
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolMutation) ClearEdge(name string) error {
	switch name {
	case tool.EdgeServer:
		m.ClearServer()
		return nil
	}
	return fmt.Errorf("unknown Tool unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolMutation) ResetEdge(name string) error {
	switch name {
	case tool.EdgeServer:
		m.ResetServer()
		return nil
	}
	return fmt.Errorf("unknown Tool edge %s", name)
}

// UsageRecordMutation represents an operation that mutates the UsageRecord nodes in the graph.
type UsageRecordMutation struct {
	config
	op            Op
	typ           string
	id            *int
	tool_name     *string
	duration      *float64
	addduration   *float64
	success       *bool
	timestamp     *time.Time
	clearedFields map[string]struct{}
	server        *string
	clearedserver bool
	done          bool
	oldValue      func(context.Context) (*UsageRecord, error)
	predicates    []predicate.UsageRecord
}

var _ ent.Mutation = (*UsageRecordMutation)(nil)

// usagerecordOption allows management of the mutation configuration using functional options.
type usagerecordOption func(*UsageRecordMutation)

// newUsageRecordMutation creates new mutation for the UsageRecord entity.
func newUsageRecordMutation(c config, op Op, opts ...usagerecordOption) *UsageRecordMutation {
	m := &UsageRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageRecordID sets the ID field of the mutation.
func withUsageRecordID(id int) usagerecordOption {
	return func(m *UsageRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageRecord
		)
		m.oldValue = func(ctx context.Context) (*UsageRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageRecord sets the old UsageRecord of the mutation.
func withUsageRecord(node *UsageRecord) usagerecordOption {
	return func(m *UsageRecordMutation) {
		m.oldValue = func(context.Context) (*UsageRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetServerID sets the "server_id" field.
func (m *UsageRecordMutation) SetServerID(s string) {
	m.server = &s
}

// ServerID returns the value of the "server_id" field in the mutation.
func (m *UsageRecordMutation) ServerID() (r string, exists bool) {
	v := m.server
	if v == nil {
		return
	}
	return *v, true
}

// OldServerID returns the old "server_id" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldServerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerID: %w", err)
	}
	return oldValue.ServerID, nil
}

// ResetServerID resets all changes to the "server_id" field.
func (m *UsageRecordMutation) ResetServerID() {
	m.server = nil
}

// SetToolName sets the "tool_name" field.
func (m *UsageRecordMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *UsageRecordMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *UsageRecordMutation) ResetToolName() {
	m.tool_name = nil
}

// SetDuration sets the "duration" field.
func (m *UsageRecordMutation) SetDuration(f float64) {
	m.duration = &f
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *UsageRecordMutation) Duration() (r float64, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldDuration(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds f to the "duration" field.
func (m *UsageRecordMutation) AddDuration(f float64) {
	if m.addduration != nil {
		*m.addduration += f
	} else {
		m.addduration = &f
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *UsageRecordMutation) AddedDuration() (r float64, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuration resets all changes to the "duration" field.
func (m *UsageRecordMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
}

// SetSuccess sets the "success" field.
func (m *UsageRecordMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *UsageRecordMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *UsageRecordMutation) ResetSuccess() {
	m.success = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *UsageRecordMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *UsageRecordMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *UsageRecordMutation) ResetTimestamp() {
	m.timestamp = nil
}

// ClearServer clears the "server" edge to the Server entity.
func (m *UsageRecordMutation) ClearServer() {
	m.clearedserver = true
	m.clearedFields[usagerecord.FieldServerID] = struct{}{}
}

// ServerCleared reports if the "server" edge to the Server entity was cleared.
func (m *UsageRecordMutation) ServerCleared() bool {
	return m.clearedserver
}

// ServerIDs returns the "server" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServerID instead. It exists only for internal usage by the builders.
func (m *UsageRecordMutation) ServerIDs() (ids []string) {
	if id := m.server; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetServer resets all changes to the "server" edge.
func (m *UsageRecordMutation) ResetServer() {
	m.server = nil
	m.clearedserver = false
}

// Where appends a list predicates to the UsageRecordMutation builder.
func (m *UsageRecordMutation) Where(ps ...predicate.UsageRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageRecord).
func (m *UsageRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageRecordMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.server != nil {
		fields = append(fields, usagerecord.FieldServerID)
	}
	if m.tool_name != nil {
		fields = append(fields, usagerecord.FieldToolName)
	}
	if m.duration != nil {
		fields = append(fields, usagerecord.FieldDuration)
	}
	if m.success != nil {
		fields = append(fields, usagerecord.FieldSuccess)
	}
	if m.timestamp != nil {
		fields = append(fields, usagerecord.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usagerecord.FieldServerID:
		return m.ServerID()
	case usagerecord.FieldToolName:
		return m.ToolName()
	case usagerecord.FieldDuration:
		return m.Duration()
	case usagerecord.FieldSuccess:
		return m.Success()
	case usagerecord.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usagerecord.FieldServerID:
		return m.OldServerID(ctx)
	case usagerecord.FieldToolName:
		return m.OldToolName(ctx)
	case usagerecord.FieldDuration:
		return m.OldDuration(ctx)
	case usagerecord.FieldSuccess:
		return m.OldSuccess(ctx)
	case usagerecord.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown UsageRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usagerecord.FieldServerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerID(v)
		return nil
	case usagerecord.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case usagerecord.FieldDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case usagerecord.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case usagerecord.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown UsageRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageRecordMutation) AddedFields() []string {
	var fields []string
	if m.addduration != nil {
		fields = append(fields, usagerecord.FieldDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usagerecord.FieldDuration:
		return m.AddedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usagerecord.FieldDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	}
	return fmt.Errorf("unknown UsageRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UsageRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageRecordMutation) ResetField(name string) error {
	switch name {
	case usagerecord.FieldServerID:
		m.ResetServerID()
		return nil
	case usagerecord.FieldToolName:
		m.ResetToolName()
		return nil
	case usagerecord.FieldDuration:
		m.ResetDuration()
		return nil
	case usagerecord.FieldSuccess:
		m.ResetSuccess()
		return nil
	case usagerecord.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown UsageRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.server != nil {
		edges = append(edges, usagerecord.EdgeServer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usagerecord.EdgeServer:
		if id := m.server; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedserver {
		edges = append(edges, usagerecord.EdgeServer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case usagerecord.EdgeServer:
		return m.clearedserver
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageRecordMutation) ClearEdge(name string) error {
	switch name {
	case usagerecord.EdgeServer:
		m.ClearServer()
		return nil
	}
	return fmt.Errorf("unknown UsageRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageRecordMutation) ResetEdge(name string) error {
	switch name {
	case usagerecord.EdgeServer:
		m.ResetServer()
		return nil
	}
	return fmt.Errorf("unknown UsageRecord edge %s", name)
}
