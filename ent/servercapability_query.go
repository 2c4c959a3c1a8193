// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mcp-router/mcp-router/ent/capability"
	"github.com/mcp-router/mcp-router/ent/predicate"
	"github.com/mcp-router/mcp-router/ent/server"
	"github.com/mcp-router/mcp-router/ent/servercapability"
)

// ServerCapabilityQuery is the builder for querying ServerCapability entities.
type ServerCapabilityQuery struct {
	config
	ctx            *QueryContext
	order          []servercapability.OrderOption
	inters         []Interceptor
	predicates     []predicate.ServerCapability
	withServer     *ServerQuery
	withCapability *CapabilityQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ServerCapabilityQuery builder.
func (_q *ServerCapabilityQuery) Where(ps ...predicate.ServerCapability) *ServerCapabilityQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ServerCapabilityQuery) Limit(limit int) *ServerCapabilityQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ServerCapabilityQuery) Offset(offset int) *ServerCapabilityQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ServerCapabilityQuery) Unique(unique bool) *ServerCapabilityQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ServerCapabilityQuery) Order(o ...servercapability.OrderOption) *ServerCapabilityQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryServer chains the current query on the "server" edge.
func (_q *ServerCapabilityQuery) QueryServer() *ServerQuery {
	query := (&ServerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(servercapability.Table, servercapability.FieldID, selector),
			sqlgraph.To(server.Table, server.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, servercapability.ServerTable, servercapability.ServerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCapability chains the current query on the "capability" edge.
func (_q *ServerCapabilityQuery) QueryCapability() *CapabilityQuery {
	query := (&CapabilityClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(servercapability.Table, servercapability.FieldID, selector),
			sqlgraph.To(capability.Table, capability.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, servercapability.CapabilityTable, servercapability.CapabilityColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ServerCapability entity from the query.
// Returns a *NotFoundError when no ServerCapability was found.
func (_q *ServerCapabilityQuery) First(ctx context.Context) (*ServerCapability, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{servercapability.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ServerCapabilityQuery) FirstX(ctx context.Context) *ServerCapability {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ServerCapability ID from the query.
// Returns a *NotFoundError when no ServerCapability ID was found.
func (_q *ServerCapabilityQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{servercapability.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ServerCapabilityQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ServerCapability entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ServerCapability entity is found.
// Returns a *NotFoundError when no ServerCapability entities are found.
func (_q *ServerCapabilityQuery) Only(ctx context.Context) (*ServerCapability, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{servercapability.Label}
	default:
		return nil, &NotSingularError{servercapability.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ServerCapabilityQuery) OnlyX(ctx context.Context) *ServerCapability {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ServerCapability ID in the query.
// Returns a *NotSingularError when more than one ServerCapability ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ServerCapabilityQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{servercapability.Label}
	default:
		err = &NotSingularError{servercapability.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ServerCapabilityQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ServerCapabilities.
func (_q *ServerCapabilityQuery) All(ctx context.Context) ([]*ServerCapability, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ServerCapability, *ServerCapabilityQuery]()
	return withInterceptors[[]*ServerCapability](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ServerCapabilityQuery) AllX(ctx context.Context) []*ServerCapability {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ServerCapability IDs.
func (_q *ServerCapabilityQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(servercapability.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ServerCapabilityQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ServerCapabilityQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ServerCapabilityQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ServerCapabilityQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ServerCapabilityQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ServerCapabilityQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ServerCapabilityQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ServerCapabilityQuery) Clone() *ServerCapabilityQuery {
	if _q == nil {
		return nil
	}
	return &ServerCapabilityQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]servercapability.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.ServerCapability{}, _q.predicates...),
		withServer:     _q.withServer.Clone(),
		withCapability: _q.withCapability.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithServer tells the query-builder to eager-load the nodes that are connected to
// the "server" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ServerCapabilityQuery) WithServer(opts ...func(*ServerQuery)) *ServerCapabilityQuery {
	query := (&ServerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withServer = query
	return _q
}

// WithCapability tells the query-builder to eager-load the nodes that are connected to
// the "capability" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ServerCapabilityQuery) WithCapability(opts ...func(*CapabilityQuery)) *ServerCapabilityQuery {
	query := (&CapabilityClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCapability = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ServerID string `json:"server_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ServerCapability.Query().
//		GroupBy(servercapability.FieldServerID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ServerCapabilityQuery) GroupBy(field string, fields ...string) *ServerCapabilityGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ServerCapabilityGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = servercapability.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ServerID string `json:"server_id,omitempty"`
//	}
//
//	client.ServerCapability.Query().
//		Select(servercapability.FieldServerID).
//		Scan(ctx, &v)
func (_q *ServerCapabilityQuery) Select(fields ...string) *ServerCapabilitySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ServerCapabilitySelect{ServerCapabilityQuery: _q}
	sbuild.label = servercapability.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ServerCapabilitySelect configured with the given aggregations.
func (_q *ServerCapabilityQuery) Aggregate(fns ...AggregateFunc) *ServerCapabilitySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ServerCapabilityQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !servercapability.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ServerCapabilityQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ServerCapability, error) {
	var (
		nodes       = []*ServerCapability{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withServer != nil,
			_q.withCapability != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ServerCapability).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ServerCapability{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withServer; query != nil {
		if err := _q.loadServer(ctx, query, nodes, nil,
			func(n *ServerCapability, e *Server) { n.Edges.Server = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCapability; query != nil {
		if err := _q.loadCapability(ctx, query, nodes, nil,
			func(n *ServerCapability, e *Capability) { n.Edges.Capability = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ServerCapabilityQuery) loadServer(ctx context.Context, query *ServerQuery, nodes []*ServerCapability, init func(*ServerCapability), assign func(*ServerCapability, *Server)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ServerCapability)
	for i := range nodes {
		fk := nodes[i].ServerID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(server.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "server_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ServerCapabilityQuery) loadCapability(ctx context.Context, query *CapabilityQuery, nodes []*ServerCapability, init func(*ServerCapability), assign func(*ServerCapability, *Capability)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ServerCapability)
	for i := range nodes {
		fk := nodes[i].CapabilityID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(capability.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "capability_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ServerCapabilityQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ServerCapabilityQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(servercapability.Table, servercapability.Columns, sqlgraph.NewFieldSpec(servercapability.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, servercapability.FieldID)
		for i := range fields {
			if fields[i] != servercapability.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withServer != nil {
			_spec.Node.AddColumnOnce(servercapability.FieldServerID)
		}
		if _q.withCapability != nil {
			_spec.Node.AddColumnOnce(servercapability.FieldCapabilityID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ServerCapabilityQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(servercapability.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = servercapability.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ServerCapabilityGroupBy is the group-by builder for ServerCapability entities.
type ServerCapabilityGroupBy struct {
	selector
	build *ServerCapabilityQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ServerCapabilityGroupBy) Aggregate(fns ...AggregateFunc) *ServerCapabilityGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ServerCapabilityGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ServerCapabilityQuery, *ServerCapabilityGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ServerCapabilityGroupBy) sqlScan(ctx context.Context, root *ServerCapabilityQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ServerCapabilitySelect is the builder for selecting fields of ServerCapability entities.
type ServerCapabilitySelect struct {
	*ServerCapabilityQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ServerCapabilitySelect) Aggregate(fns ...AggregateFunc) *ServerCapabilitySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ServerCapabilitySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ServerCapabilityQuery, *ServerCapabilitySelect](ctx, _s.ServerCapabilityQuery, _s, _s.inters, v)
}

func (_s *ServerCapabilitySelect) sqlScan(ctx context.Context, root *ServerCapabilityQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
