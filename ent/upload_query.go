// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dayne-app/dayne/ent/predicate"
	"github.com/dayne-app/dayne/ent/question"
	"github.com/dayne-app/dayne/ent/studysession"
	"github.com/dayne-app/dayne/ent/upload"
)

// UploadQuery is the builder for querying Upload entities.
type UploadQuery struct {
	config
	ctx               *QueryContext
	order             []upload.OrderOption
	inters            []Interceptor
	predicates        []predicate.Upload
	withQuestions     *QuestionQuery
	withStudySessions *StudySessionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UploadQuery builder.
func (_q *UploadQuery) Where(ps ...predicate.Upload) *UploadQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *UploadQuery) Limit(limit int) *UploadQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *UploadQuery) Offset(offset int) *UploadQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *UploadQuery) Unique(unique bool) *UploadQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *UploadQuery) Order(o ...upload.OrderOption) *UploadQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryQuestions chains the current query on the "questions" edge.
func (_q *UploadQuery) QueryQuestions() *QuestionQuery {
	query := (&QuestionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(upload.Table, upload.FieldID, selector),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, upload.QuestionsTable, upload.QuestionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStudySessions chains the current query on the "study_sessions" edge.
func (_q *UploadQuery) QueryStudySessions() *StudySessionQuery {
	query := (&StudySessionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(upload.Table, upload.FieldID, selector),
			sqlgraph.To(studysession.Table, studysession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, upload.StudySessionsTable, upload.StudySessionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Upload entity from the query.
// Returns a *NotFoundError when no Upload was found.
func (_q *UploadQuery) First(ctx context.Context) (*Upload, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{upload.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *UploadQuery) FirstX(ctx context.Context) *Upload {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Upload ID from the query.
// Returns a *NotFoundError when no Upload ID was found.
func (_q *UploadQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{upload.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *UploadQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Upload entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Upload entity is found.
// Returns a *NotFoundError when no Upload entities are found.
func (_q *UploadQuery) Only(ctx context.Context) (*Upload, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{upload.Label}
	default:
		return nil, &NotSingularError{upload.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *UploadQuery) OnlyX(ctx context.Context) *Upload {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Upload ID in the query.
// Returns a *NotSingularError when more than one Upload ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *UploadQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{upload.Label}
	default:
		err = &NotSingularError{upload.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *UploadQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Uploads.
func (_q *UploadQuery) All(ctx context.Context) ([]*Upload, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Upload, *UploadQuery]()
	return withInterceptors[[]*Upload](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *UploadQuery) AllX(ctx context.Context) []*Upload {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Upload IDs.
func (_q *UploadQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(upload.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *UploadQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *UploadQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*UploadQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *UploadQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *UploadQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *UploadQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UploadQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *UploadQuery) Clone() *UploadQuery {
	if _q == nil {
		return nil
	}
	return &UploadQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]upload.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.Upload{}, _q.predicates...),
		withQuestions:     _q.withQuestions.Clone(),
		withStudySessions: _q.withStudySessions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithQuestions tells the query-builder to eager-load the nodes that are connected to
// the "questions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UploadQuery) WithQuestions(opts ...func(*QuestionQuery)) *UploadQuery {
	query := (&QuestionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQuestions = query
	return _q
}

// WithStudySessions tells the query-builder to eager-load the nodes that are connected to
// the "study_sessions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UploadQuery) WithStudySessions(opts ...func(*StudySessionQuery)) *UploadQuery {
	query := (&StudySessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStudySessions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Upload.Query().
//		GroupBy(upload.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *UploadQuery) GroupBy(field string, fields ...string) *UploadGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UploadGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = upload.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Upload.Query().
//		Select(upload.FieldName).
//		Scan(ctx, &v)
func (_q *UploadQuery) Select(fields ...string) *UploadSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &UploadSelect{UploadQuery: _q}
	sbuild.label = upload.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UploadSelect configured with the given aggregations.
func (_q *UploadQuery) Aggregate(fns ...AggregateFunc) *UploadSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *UploadQuery) prepareQuery(ctx context.Context) error {
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
		if !upload.ValidColumn(f) {
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

func (_q *UploadQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Upload, error) {
	var (
		nodes       = []*Upload{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withQuestions != nil,
			_q.withStudySessions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Upload).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Upload{config: _q.config}
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
	if query := _q.withQuestions; query != nil {
		if err := _q.loadQuestions(ctx, query, nodes,
			func(n *Upload) { n.Edges.Questions = []*Question{} },
			func(n *Upload, e *Question) { n.Edges.Questions = append(n.Edges.Questions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStudySessions; query != nil {
		if err := _q.loadStudySessions(ctx, query, nodes,
			func(n *Upload) { n.Edges.StudySessions = []*StudySession{} },
			func(n *Upload, e *StudySession) { n.Edges.StudySessions = append(n.Edges.StudySessions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *UploadQuery) loadQuestions(ctx context.Context, query *QuestionQuery, nodes []*Upload, init func(*Upload), assign func(*Upload, *Question)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Upload)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(question.FieldUploadID)
	}
	query.Where(predicate.Question(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(upload.QuestionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.UploadID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "upload_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *UploadQuery) loadStudySessions(ctx context.Context, query *StudySessionQuery, nodes []*Upload, init func(*Upload), assign func(*Upload, *StudySession)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Upload)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(studysession.FieldUploadID)
	}
	query.Where(predicate.StudySession(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(upload.StudySessionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.UploadID
		if fk == nil {
			return fmt.Errorf(`foreign-key "upload_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "upload_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *UploadQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *UploadQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(upload.Table, upload.Columns, sqlgraph.NewFieldSpec(upload.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, upload.FieldID)
		for i := range fields {
			if fields[i] != upload.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *UploadQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(upload.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = upload.Columns
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

// UploadGroupBy is the group-by builder for Upload entities.
type UploadGroupBy struct {
	selector
	build *UploadQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *UploadGroupBy) Aggregate(fns ...AggregateFunc) *UploadGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *UploadGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UploadQuery, *UploadGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *UploadGroupBy) sqlScan(ctx context.Context, root *UploadQuery, v any) error {
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

// UploadSelect is the builder for selecting fields of Upload entities.
type UploadSelect struct {
	*UploadQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *UploadSelect) Aggregate(fns ...AggregateFunc) *UploadSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *UploadSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UploadQuery, *UploadSelect](ctx, _s.UploadQuery, _s, _s.inters, v)
}

func (_s *UploadSelect) sqlScan(ctx context.Context, root *UploadQuery, v any) error {
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
