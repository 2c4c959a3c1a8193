// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mcp-router/mcp-router/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mcp-router/mcp-router/ent/capability"
	"github.com/mcp-router/mcp-router/ent/healthrecord"
	"github.com/mcp-router/mcp-router/ent/server"
	"github.com/mcp-router/mcp-router/ent/servercapability"
	"github.com/mcp-router/mcp-router/ent/servertag"
	"github.com/mcp-router/mcp-router/ent/tool"
	"github.com/mcp-router/mcp-router/ent/usagerecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Capability is the client for interacting with the Capability builders.
	Capability *CapabilityClient
	// HealthRecord is the client for interacting with the HealthRecord builders.
	HealthRecord *HealthRecordClient
	// Server is the client for interacting with the Server builders.
	Server *ServerClient
	// ServerCapability is the client for interacting with the ServerCapability builders.
	ServerCapability *ServerCapabilityClient
	// ServerTag is the client for interacting with the ServerTag builders.
	ServerTag *ServerTagClient
	// Tool is the client for interacting with the Tool builders.
	Tool *ToolClient
	// UsageRecord is the client for interacting with the UsageRecord builders.
	UsageRecord *UsageRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Capability = NewCapabilityClient(c.config)
	c.HealthRecord = NewHealthRecordClient(c.config)
	c.Server = NewServerClient(c.config)
	c.ServerCapability = NewServerCapabilityClient(c.config)
	c.ServerTag = NewServerTagClient(c.config)
	c.Tool = NewToolClient(c.config)
	c.UsageRecord = NewUsageRecordClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Capability:       NewCapabilityClient(cfg),
		HealthRecord:     NewHealthRecordClient(cfg),
		Server:           NewServerClient(cfg),
		ServerCapability: NewServerCapabilityClient(cfg),
		ServerTag:        NewServerTagClient(cfg),
		Tool:             NewToolClient(cfg),
		UsageRecord:      NewUsageRecordClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Capability:       NewCapabilityClient(cfg),
		HealthRecord:     NewHealthRecordClient(cfg),
		Server:           NewServerClient(cfg),
		ServerCapability: NewServerCapabilityClient(cfg),
		ServerTag:        NewServerTagClient(cfg),
		Tool:             NewToolClient(cfg),
		UsageRecord:      NewUsageRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Capability.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Capability, c.HealthRecord, c.Server, c.ServerCapability, c.ServerTag, c.Tool,
		c.UsageRecord,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Capability, c.HealthRecord, c.Server, c.ServerCapability, c.ServerTag, c.Tool,
		c.UsageRecord,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CapabilityMutation:
		return c.Capability.mutate(ctx, m)
	case *HealthRecordMutation:
		return c.HealthRecord.mutate(ctx, m)
	case *ServerMutation:
		return c.Server.mutate(ctx, m)
	case *ServerCapabilityMutation:
		return c.ServerCapability.mutate(ctx, m)
	case *ServerTagMutation:
		return c.ServerTag.mutate(ctx, m)
	case *ToolMutation:
		return c.Tool.mutate(ctx, m)
	case *UsageRecordMutation:
		return c.UsageRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CapabilityClient is a client for the Capability schema.
type CapabilityClient struct {
	config
}

// NewCapabilityClient returns a client for the Capability from the given config.
func NewCapabilityClient(c config) *CapabilityClient {
	return &CapabilityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `capability.Hooks(f(g(h())))`.
func (c *CapabilityClient) Use(hooks ...Hook) {
	c.hooks.Capability = append(c.hooks.Capability, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `capability.Intercept(f(g(h())))`.
func (c *CapabilityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Capability = append(c.inters.Capability, interceptors...)
}

// Create returns a builder for creating a Capability entity.
func (c *CapabilityClient) Create() *CapabilityCreate {
	mutation := newCapabilityMutation(c.config, OpCreate)
	return &CapabilityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Capability entities.
func (c *CapabilityClient) CreateBulk(builders ...*CapabilityCreate) *CapabilityCreateBulk {
	return &CapabilityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CapabilityClient) MapCreateBulk(slice any, setFunc func(*CapabilityCreate, int)) *CapabilityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CapabilityCreateBulk{err: fmt.Errorf("calling to CapabilityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CapabilityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CapabilityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Capability.
func (c *CapabilityClient) Update() *CapabilityUpdate {
	mutation := newCapabilityMutation(c.config, OpUpdate)
	return &CapabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CapabilityClient) UpdateOne(_m *Capability) *CapabilityUpdateOne {
	mutation := newCapabilityMutation(c.config, OpUpdateOne, withCapability(_m))
	return &CapabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CapabilityClient) UpdateOneID(id int) *CapabilityUpdateOne {
	mutation := newCapabilityMutation(c.config, OpUpdateOne, withCapabilityID(id))
	return &CapabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Capability.
func (c *CapabilityClient) Delete() *CapabilityDelete {
	mutation := newCapabilityMutation(c.config, OpDelete)
	return &CapabilityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CapabilityClient) DeleteOne(_m *Capability) *CapabilityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CapabilityClient) DeleteOneID(id int) *CapabilityDeleteOne {
	builder := c.Delete().Where(capability.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CapabilityDeleteOne{builder}
}

// Query returns a query builder for Capability.
func (c *CapabilityClient) Query() *CapabilityQuery {
	return &CapabilityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCapability},
		inters: c.Interceptors(),
	}
}

// Get returns a Capability entity by its id.
func (c *CapabilityClient) Get(ctx context.Context, id int) (*Capability, error) {
	return c.Query().Where(capability.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CapabilityClient) GetX(ctx context.Context, id int) *Capability {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryServers queries the servers edge of a Capability.
func (c *CapabilityClient) QueryServers(_m *Capability) *ServerQuery {
	query := (&ServerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(capability.Table, capability.FieldID, id),
			sqlgraph.To(server.Table, server.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, capability.ServersTable, capability.ServersPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryServerCapabilities queries the server_capabilities edge of a Capability.
func (c *CapabilityClient) QueryServerCapabilities(_m *Capability) *ServerCapabilityQuery {
	query := (&ServerCapabilityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(capability.Table, capability.FieldID, id),
			sqlgraph.To(servercapability.Table, servercapability.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, capability.ServerCapabilitiesTable, capability.ServerCapabilitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CapabilityClient) Hooks() []Hook {
	return c.hooks.Capability
}

// Interceptors returns the client interceptors.
func (c *CapabilityClient) Interceptors() []Interceptor {
	return c.inters.Capability
}

func (c *CapabilityClient) mutate(ctx context.Context, m *CapabilityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CapabilityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CapabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CapabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CapabilityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Capability mutation op: %q", m.Op())
	}
}

// HealthRecordClient is a client for the HealthRecord schema.
type HealthRecordClient struct {
	config
}

// NewHealthRecordClient returns a client for the HealthRecord from the given config.
func NewHealthRecordClient(c config) *HealthRecordClient {
	return &HealthRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `healthrecord.Hooks(f(g(h())))`.
func (c *HealthRecordClient) Use(hooks ...Hook) {
	c.hooks.HealthRecord = append(c.hooks.HealthRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `healthrecord.Intercept(f(g(h())))`.
func (c *HealthRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.HealthRecord = append(c.inters.HealthRecord, interceptors...)
}

// Create returns a builder for creating a HealthRecord entity.
func (c *HealthRecordClient) Create() *HealthRecordCreate {
	mutation := newHealthRecordMutation(c.config, OpCreate)
	return &HealthRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HealthRecord entities.
func (c *HealthRecordClient) CreateBulk(builders ...*HealthRecordCreate) *HealthRecordCreateBulk {
	return &HealthRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HealthRecordClient) MapCreateBulk(slice any, setFunc func(*HealthRecordCreate, int)) *HealthRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HealthRecordCreateBulk{err: fmt.Errorf("calling to HealthRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HealthRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HealthRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HealthRecord.
func (c *HealthRecordClient) Update() *HealthRecordUpdate {
	mutation := newHealthRecordMutation(c.config, OpUpdate)
	return &HealthRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HealthRecordClient) UpdateOne(_m *HealthRecord) *HealthRecordUpdateOne {
	mutation := newHealthRecordMutation(c.config, OpUpdateOne, withHealthRecord(_m))
	return &HealthRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HealthRecordClient) UpdateOneID(id int) *HealthRecordUpdateOne {
	mutation := newHealthRecordMutation(c.config, OpUpdateOne, withHealthRecordID(id))
	return &HealthRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HealthRecord.
func (c *HealthRecordClient) Delete() *HealthRecordDelete {
	mutation := newHealthRecordMutation(c.config, OpDelete)
	return &HealthRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HealthRecordClient) DeleteOne(_m *HealthRecord) *HealthRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HealthRecordClient) DeleteOneID(id int) *HealthRecordDeleteOne {
	builder := c.Delete().Where(healthrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HealthRecordDeleteOne{builder}
}

// Query returns a query builder for HealthRecord.
func (c *HealthRecordClient) Query() *HealthRecordQuery {
	return &HealthRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHealthRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a HealthRecord entity by its id.
func (c *HealthRecordClient) Get(ctx context.Context, id int) (*HealthRecord, error) {
	return c.Query().Where(healthrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HealthRecordClient) GetX(ctx context.Context, id int) *HealthRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryServer queries the server edge of a HealthRecord.
func (c *HealthRecordClient) QueryServer(_m *HealthRecord) *ServerQuery {
	query := (&ServerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(healthrecord.Table, healthrecord.FieldID, id),
			sqlgraph.To(server.Table, server.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, healthrecord.ServerTable, healthrecord.ServerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HealthRecordClient) Hooks() []Hook {
	return c.hooks.HealthRecord
}

// Interceptors returns the client interceptors.
func (c *HealthRecordClient) Interceptors() []Interceptor {
	return c.inters.HealthRecord
}

func (c *HealthRecordClient) mutate(ctx context.Context, m *HealthRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HealthRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HealthRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HealthRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HealthRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HealthRecord mutation op: %q", m.Op())
	}
}

// ServerClient is a client for the Server schema.
type ServerClient struct {
	config
}

// NewServerClient returns a client for the Server from the given config.
func NewServerClient(c config) *ServerClient {
	return &ServerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `server.Hooks(f(g(h())))`.
func (c *ServerClient) Use(hooks ...Hook) {
	c.hooks.Server = append(c.hooks.Server, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `server.Intercept(f(g(h())))`.
func (c *ServerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Server = append(c.inters.Server, interceptors...)
}

// Create returns a builder for creating a Server entity.
func (c *ServerClient) Create() *ServerCreate {
	mutation := newServerMutation(c.config, OpCreate)
	return &ServerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Server entities.
func (c *ServerClient) CreateBulk(builders ...*ServerCreate) *ServerCreateBulk {
	return &ServerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServerClient) MapCreateBulk(slice any, setFunc func(*ServerCreate, int)) *ServerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServerCreateBulk{err: fmt.Errorf("calling to ServerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Server.
func (c *ServerClient) Update() *ServerUpdate {
	mutation := newServerMutation(c.config, OpUpdate)
	return &ServerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServerClient) UpdateOne(_m *Server) *ServerUpdateOne {
	mutation := newServerMutation(c.config, OpUpdateOne, withServer(_m))
	return &ServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServerClient) UpdateOneID(id string) *ServerUpdateOne {
	mutation := newServerMutation(c.config, OpUpdateOne, withServerID(id))
	return &ServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Server.
func (c *ServerClient) Delete() *ServerDelete {
	mutation := newServerMutation(c.config, OpDelete)
	return &ServerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServerClient) DeleteOne(_m *Server) *ServerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServerClient) DeleteOneID(id string) *ServerDeleteOne {
	builder := c.Delete().Where(server.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServerDeleteOne{builder}
}

// Query returns a query builder for Server.
func (c *ServerClient) Query() *ServerQuery {
	return &ServerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServer},
		inters: c.Interceptors(),
	}
}

// Get returns a Server entity by its id.
func (c *ServerClient) Get(ctx context.Context, id string) (*Server, error) {
	return c.Query().Where(server.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServerClient) GetX(ctx context.Context, id string) *Server {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCapabilities queries the capabilities edge of a Server.
func (c *ServerClient) QueryCapabilities(_m *Server) *CapabilityQuery {
	query := (&CapabilityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(server.Table, server.FieldID, id),
			sqlgraph.To(capability.Table, capability.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, server.CapabilitiesTable, server.CapabilitiesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTools queries the tools edge of a Server.
func (c *ServerClient) QueryTools(_m *Server) *ToolQuery {
	query := (&ToolClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(server.Table, server.FieldID, id),
			sqlgraph.To(tool.Table, tool.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, server.ToolsTable, server.ToolsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHealth queries the health edge of a Server.
func (c *ServerClient) QueryHealth(_m *Server) *HealthRecordQuery {
	query := (&HealthRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(server.Table, server.FieldID, id),
			sqlgraph.To(healthrecord.Table, healthrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, server.HealthTable, server.HealthColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUsage queries the usage edge of a Server.
func (c *ServerClient) QueryUsage(_m *Server) *UsageRecordQuery {
	query := (&UsageRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(server.Table, server.FieldID, id),
			sqlgraph.To(usagerecord.Table, usagerecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, server.UsageTable, server.UsageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTags queries the tags edge of a Server.
func (c *ServerClient) QueryTags(_m *Server) *ServerTagQuery {
	query := (&ServerTagClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(server.Table, server.FieldID, id),
			sqlgraph.To(servertag.Table, servertag.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, server.TagsTable, server.TagsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryServerCapabilities queries the server_capabilities edge of a Server.
func (c *ServerClient) QueryServerCapabilities(_m *Server) *ServerCapabilityQuery {
	query := (&ServerCapabilityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(server.Table, server.FieldID, id),
			sqlgraph.To(servercapability.Table, servercapability.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, server.ServerCapabilitiesTable, server.ServerCapabilitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ServerClient) Hooks() []Hook {
	return c.hooks.Server
}

// Interceptors returns the client interceptors.
func (c *ServerClient) Interceptors() []Interceptor {
	return c.inters.Server
}

func (c *ServerClient) mutate(ctx context.Context, m *ServerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Server mutation op: %q", m.Op())
	}
}

// ServerCapabilityClient is a client for the ServerCapability schema.
type ServerCapabilityClient struct {
	config
}

// NewServerCapabilityClient returns a client for the ServerCapability from the given config.
func NewServerCapabilityClient(c config) *ServerCapabilityClient {
	return &ServerCapabilityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `servercapability.Hooks(f(g(h())))`.
func (c *ServerCapabilityClient) Use(hooks ...Hook) {
	c.hooks.ServerCapability = append(c.hooks.ServerCapability, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `servercapability.Intercept(f(g(h())))`.
func (c *ServerCapabilityClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServerCapability = append(c.inters.ServerCapability, interceptors...)
}

// Create returns a builder for creating a ServerCapability entity.
func (c *ServerCapabilityClient) Create() *ServerCapabilityCreate {
	mutation := newServerCapabilityMutation(c.config, OpCreate)
	return &ServerCapabilityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServerCapability entities.
func (c *ServerCapabilityClient) CreateBulk(builders ...*ServerCapabilityCreate) *ServerCapabilityCreateBulk {
	return &ServerCapabilityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServerCapabilityClient) MapCreateBulk(slice any, setFunc func(*ServerCapabilityCreate, int)) *ServerCapabilityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServerCapabilityCreateBulk{err: fmt.Errorf("calling to ServerCapabilityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServerCapabilityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServerCapabilityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServerCapability.
func (c *ServerCapabilityClient) Update() *ServerCapabilityUpdate {
	mutation := newServerCapabilityMutation(c.config, OpUpdate)
	return &ServerCapabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServerCapabilityClient) UpdateOne(_m *ServerCapability) *ServerCapabilityUpdateOne {
	mutation := newServerCapabilityMutation(c.config, OpUpdateOne, withServerCapability(_m))
	return &ServerCapabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServerCapabilityClient) UpdateOneID(id int) *ServerCapabilityUpdateOne {
	mutation := newServerCapabilityMutation(c.config, OpUpdateOne, withServerCapabilityID(id))
	return &ServerCapabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServerCapability.
func (c *ServerCapabilityClient) Delete() *ServerCapabilityDelete {
	mutation := newServerCapabilityMutation(c.config, OpDelete)
	return &ServerCapabilityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServerCapabilityClient) DeleteOne(_m *ServerCapability) *ServerCapabilityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServerCapabilityClient) DeleteOneID(id int) *ServerCapabilityDeleteOne {
	builder := c.Delete().Where(servercapability.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServerCapabilityDeleteOne{builder}
}

// Query returns a query builder for ServerCapability.
func (c *ServerCapabilityClient) Query() *ServerCapabilityQuery {
	return &ServerCapabilityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServerCapability},
		inters: c.Interceptors(),
	}
}

// Get returns a ServerCapability entity by its id.
func (c *ServerCapabilityClient) Get(ctx context.Context, id int) (*ServerCapability, error) {
	return c.Query().Where(servercapability.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServerCapabilityClient) GetX(ctx context.Context, id int) *ServerCapability {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryServer queries the server edge of a ServerCapability.
func (c *ServerCapabilityClient) QueryServer(_m *ServerCapability) *ServerQuery {
	query := (&ServerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(servercapability.Table, servercapability.FieldID, id),
			sqlgraph.To(server.Table, server.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, servercapability.ServerTable, servercapability.ServerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCapability queries the capability edge of a ServerCapability.
func (c *ServerCapabilityClient) QueryCapability(_m *ServerCapability) *CapabilityQuery {
	query := (&CapabilityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(servercapability.Table, servercapability.FieldID, id),
			sqlgraph.To(capability.Table, capability.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, servercapability.CapabilityTable, servercapability.CapabilityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ServerCapabilityClient) Hooks() []Hook {
	return c.hooks.ServerCapability
}

// Interceptors returns the client interceptors.
func (c *ServerCapabilityClient) Interceptors() []Interceptor {
	return c.inters.ServerCapability
}

func (c *ServerCapabilityClient) mutate(ctx context.Context, m *ServerCapabilityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServerCapabilityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServerCapabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServerCapabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServerCapabilityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ServerCapability mutation op: %q", m.Op())
	}
}

// ServerTagClient is a client for the ServerTag schema.
type ServerTagClient struct {
	config
}

// NewServerTagClient returns a client for the ServerTag from the given config.
func NewServerTagClient(c config) *ServerTagClient {
	return &ServerTagClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `servertag.Hooks(f(g(h())))`.
func (c *ServerTagClient) Use(hooks ...Hook) {
	c.hooks.ServerTag = append(c.hooks.ServerTag, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `servertag.Intercept(f(g(h())))`.
func (c *ServerTagClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServerTag = append(c.inters.ServerTag, interceptors...)
}

// Create returns a builder for creating a ServerTag entity.
func (c *ServerTagClient) Create() *ServerTagCreate {
	mutation := newServerTagMutation(c.config, OpCreate)
	return &ServerTagCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServerTag entities.
func (c *ServerTagClient) CreateBulk(builders ...*ServerTagCreate) *ServerTagCreateBulk {
	return &ServerTagCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServerTagClient) MapCreateBulk(slice any, setFunc func(*ServerTagCreate, int)) *ServerTagCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServerTagCreateBulk{err: fmt.Errorf("calling to ServerTagClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServerTagCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServerTagCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServerTag.
func (c *ServerTagClient) Update() *ServerTagUpdate {
	mutation := newServerTagMutation(c.config, OpUpdate)
	return &ServerTagUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServerTagClient) UpdateOne(_m *ServerTag) *ServerTagUpdateOne {
	mutation := newServerTagMutation(c.config, OpUpdateOne, withServerTag(_m))
	return &ServerTagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServerTagClient) UpdateOneID(id int) *ServerTagUpdateOne {
	mutation := newServerTagMutation(c.config, OpUpdateOne, withServerTagID(id))
	return &ServerTagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServerTag.
func (c *ServerTagClient) Delete() *ServerTagDelete {
	mutation := newServerTagMutation(c.config, OpDelete)
	return &ServerTagDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServerTagClient) DeleteOne(_m *ServerTag) *ServerTagDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServerTagClient) DeleteOneID(id int) *ServerTagDeleteOne {
	builder := c.Delete().Where(servertag.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServerTagDeleteOne{builder}
}

// Query returns a query builder for ServerTag.
func (c *ServerTagClient) Query() *ServerTagQuery {
	return &ServerTagQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServerTag},
		inters: c.Interceptors(),
	}
}

// Get returns a ServerTag entity by its id.
func (c *ServerTagClient) Get(ctx context.Context, id int) (*ServerTag, error) {
	return c.Query().Where(servertag.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServerTagClient) GetX(ctx context.Context, id int) *ServerTag {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryServer queries the server edge of a ServerTag.
func (c *ServerTagClient) QueryServer(_m *ServerTag) *ServerQuery {
	query := (&ServerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(servertag.Table, servertag.FieldID, id),
			sqlgraph.To(server.Table, server.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, servertag.ServerTable, servertag.ServerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ServerTagClient) Hooks() []Hook {
	return c.hooks.ServerTag
}

// Interceptors returns the client interceptors.
func (c *ServerTagClient) Interceptors() []Interceptor {
	return c.inters.ServerTag
}

func (c *ServerTagClient) mutate(ctx context.Context, m *ServerTagMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServerTagCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServerTagUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServerTagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServerTagDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ServerTag mutation op: %q", m.Op())
	}
}

// ToolClient is a client for the Tool schema.
type ToolClient struct {
	config
}

// NewToolClient returns a client for the Tool from the given config.
func NewToolClient(c config) *ToolClient {
	return &ToolClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tool.Hooks(f(g(h())))`.
func (c *ToolClient) Use(hooks ...Hook) {
	c.hooks.Tool = append(c.hooks.Tool, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tool.Intercept(f(g(h())))`.
func (c *ToolClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tool = append(c.inters.Tool, interceptors...)
}

// Create returns a builder for creating a Tool entity.
func (c *ToolClient) Create() *ToolCreate {
	mutation := newToolMutation(c.config, OpCreate)
	return &ToolCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tool entities.
func (c *ToolClient) CreateBulk(builders ...*ToolCreate) *ToolCreateBulk {
	return &ToolCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolClient) MapCreateBulk(slice any, setFunc func(*ToolCreate, int)) *ToolCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolCreateBulk{err: fmt.Errorf("calling to ToolClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tool.
func (c *ToolClient) Update() *ToolUpdate {
	mutation := newToolMutation(c.config, OpUpdate)
	return &ToolUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolClient) UpdateOne(_m *Tool) *ToolUpdateOne {
	mutation := newToolMutation(c.config, OpUpdateOne, withTool(_m))
	return &ToolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolClient) UpdateOneID(id int) *ToolUpdateOne {
	mutation := newToolMutation(c.config, OpUpdateOne, withToolID(id))
	return &ToolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tool.
func (c *ToolClient) Delete() *ToolDelete {
	mutation := newToolMutation(c.config, OpDelete)
	return &ToolDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolClient) DeleteOne(_m *Tool) *ToolDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolClient) DeleteOneID(id int) *ToolDeleteOne {
	builder := c.Delete().Where(tool.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolDeleteOne{builder}
}

// Query returns a query builder for Tool.
func (c *ToolClient) Query() *ToolQuery {
	return &ToolQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTool},
		inters: c.Interceptors(),
	}
}

// Get returns a Tool entity by its id.
func (c *ToolClient) Get(ctx context.Context, id int) (*Tool, error) {
	return c.Query().Where(tool.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolClient) GetX(ctx context.Context, id int) *Tool {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryServer queries the server edge of a Tool.
func (c *ToolClient) QueryServer(_m *Tool) *ServerQuery {
	query := (&ServerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tool.Table, tool.FieldID, id),
			sqlgraph.To(server.Table, server.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tool.ServerTable, tool.ServerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ToolClient) Hooks() []Hook {
	return c.hooks.Tool
}

// Interceptors returns the client interceptors.
func (c *ToolClient) Interceptors() []Interceptor {
	return c.inters.Tool
}

func (c *ToolClient) mutate(ctx context.Context, m *ToolMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tool mutation op: %q", m.Op())
	}
}

// UsageRecordClient is a client for the UsageRecord schema.
type UsageRecordClient struct {
	config
}

// NewUsageRecordClient returns a client for the UsageRecord from the given config.
func NewUsageRecordClient(c config) *UsageRecordClient {
	return &UsageRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usagerecord.Hooks(f(g(h())))`.
func (c *UsageRecordClient) Use(hooks ...Hook) {
	c.hooks.UsageRecord = append(c.hooks.UsageRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usagerecord.Intercept(f(g(h())))`.
func (c *UsageRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageRecord = append(c.inters.UsageRecord, interceptors...)
}

// Create returns a builder for creating a UsageRecord entity.
func (c *UsageRecordClient) Create() *UsageRecordCreate {
	mutation := newUsageRecordMutation(c.config, OpCreate)
	return &UsageRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageRecord entities.
func (c *UsageRecordClient) CreateBulk(builders ...*UsageRecordCreate) *UsageRecordCreateBulk {
	return &UsageRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageRecordClient) MapCreateBulk(slice any, setFunc func(*UsageRecordCreate, int)) *UsageRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageRecordCreateBulk{err: fmt.Errorf("calling to UsageRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageRecord.
func (c *UsageRecordClient) Update() *UsageRecordUpdate {
	mutation := newUsageRecordMutation(c.config, OpUpdate)
	return &UsageRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageRecordClient) UpdateOne(_m *UsageRecord) *UsageRecordUpdateOne {
	mutation := newUsageRecordMutation(c.config, OpUpdateOne, withUsageRecord(_m))
	return &UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageRecordClient) UpdateOneID(id int) *UsageRecordUpdateOne {
	mutation := newUsageRecordMutation(c.config, OpUpdateOne, withUsageRecordID(id))
	return &UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageRecord.
func (c *UsageRecordClient) Delete() *UsageRecordDelete {
	mutation := newUsageRecordMutation(c.config, OpDelete)
	return &UsageRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageRecordClient) DeleteOne(_m *UsageRecord) *UsageRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageRecordClient) DeleteOneID(id int) *UsageRecordDeleteOne {
	builder := c.Delete().Where(usagerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageRecordDeleteOne{builder}
}

// Query returns a query builder for UsageRecord.
func (c *UsageRecordClient) Query() *UsageRecordQuery {
	return &UsageRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageRecord entity by its id.
func (c *UsageRecordClient) Get(ctx context.Context, id int) (*UsageRecord, error) {
	return c.Query().Where(usagerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageRecordClient) GetX(ctx context.Context, id int) *UsageRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryServer queries the server edge of a UsageRecord.
func (c *UsageRecordClient) QueryServer(_m *UsageRecord) *ServerQuery {
	query := (&ServerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usagerecord.Table, usagerecord.FieldID, id),
			sqlgraph.To(server.Table, server.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usagerecord.ServerTable, usagerecord.ServerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UsageRecordClient) Hooks() []Hook {
	return c.hooks.UsageRecord
}

// Interceptors returns the client interceptors.
func (c *UsageRecordClient) Interceptors() []Interceptor {
	return c.inters.UsageRecord
}

func (c *UsageRecordClient) mutate(ctx context.Context, m *UsageRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Capability, HealthRecord, Server, ServerCapability, ServerTag, Tool,
		UsageRecord []ent.Hook
	}
	inters struct {
		Capability, HealthRecord, Server, ServerCapability, ServerTag, Tool,
		UsageRecord []ent.Interceptor
	}
)
