// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dayne-app/dayne/ent/predicate"
	"github.com/dayne-app/dayne/ent/studysession"
	"github.com/dayne-app/dayne/ent/upload"
)

// StudySessionUpdate is the builder for updating StudySession entities.
type StudySessionUpdate struct {
	config
	hooks    []Hook
	mutation *StudySessionMutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdate) Where(ps ...predicate.StudySession) *StudySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StudySessionUpdate) SetUserID(v string) *StudySessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableUserID(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUploadID sets the "upload_id" field.
func (_u *StudySessionUpdate) SetUploadID(v int) *StudySessionUpdate {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableUploadID(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// ClearUploadID clears the value of the "upload_id" field.
func (_u *StudySessionUpdate) ClearUploadID() *StudySessionUpdate {
	_u.mutation.ClearUploadID()
	return _u
}

// SetMode sets the "mode" field.
func (_u *StudySessionUpdate) SetMode(v studysession.Mode) *StudySessionUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableMode(v *studysession.Mode) *StudySessionUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *StudySessionUpdate) SetScore(v int) *StudySessionUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableScore(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *StudySessionUpdate) AddScore(v int) *StudySessionUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *StudySessionUpdate) ClearScore() *StudySessionUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *StudySessionUpdate) SetTotalQuestions(v int) *StudySessionUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableTotalQuestions(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *StudySessionUpdate) AddTotalQuestions(v int) *StudySessionUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *StudySessionUpdate) SetTimeSpentSecs(v int) *StudySessionUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableTimeSpentSecs(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *StudySessionUpdate) AddTimeSpentSecs(v int) *StudySessionUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetUpload sets the "upload" edge to the Upload entity.
func (_u *StudySessionUpdate) SetUpload(v *Upload) *StudySessionUpdate {
	return _u.SetUploadID(v.ID)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdate) Mutation() *StudySessionMutation {
	return _u.mutation
}

// ClearUpload clears the "upload" edge to the Upload entity.
func (_u *StudySessionUpdate) ClearUpload() *StudySessionUpdate {
	_u.mutation.ClearUpload()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := studysession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "StudySession.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalQuestions(); ok {
		if err := studysession.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "StudySession.total_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeSpentSecs(); ok {
		if err := studysession.TimeSpentSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_secs", err: fmt.Errorf(`ent: validator failed for field "StudySession.time_spent_secs": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(studysession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(studysession.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(studysession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(studysession.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(studysession.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(studysession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(studysession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(studysession.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(studysession.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if _u.mutation.UploadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studysession.UploadTable,
			Columns: []string{studysession.UploadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upload.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UploadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studysession.UploadTable,
			Columns: []string{studysession.UploadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upload.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySessionUpdateOne is the builder for updating a single StudySession entity.
type StudySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *StudySessionUpdateOne) SetUserID(v string) *StudySessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableUserID(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUploadID sets the "upload_id" field.
func (_u *StudySessionUpdateOne) SetUploadID(v int) *StudySessionUpdateOne {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableUploadID(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// ClearUploadID clears the value of the "upload_id" field.
func (_u *StudySessionUpdateOne) ClearUploadID() *StudySessionUpdateOne {
	_u.mutation.ClearUploadID()
	return _u
}

// SetMode sets the "mode" field.
func (_u *StudySessionUpdateOne) SetMode(v studysession.Mode) *StudySessionUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableMode(v *studysession.Mode) *StudySessionUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *StudySessionUpdateOne) SetScore(v int) *StudySessionUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableScore(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *StudySessionUpdateOne) AddScore(v int) *StudySessionUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *StudySessionUpdateOne) ClearScore() *StudySessionUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *StudySessionUpdateOne) SetTotalQuestions(v int) *StudySessionUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableTotalQuestions(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *StudySessionUpdateOne) AddTotalQuestions(v int) *StudySessionUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *StudySessionUpdateOne) SetTimeSpentSecs(v int) *StudySessionUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableTimeSpentSecs(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *StudySessionUpdateOne) AddTimeSpentSecs(v int) *StudySessionUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetUpload sets the "upload" edge to the Upload entity.
func (_u *StudySessionUpdateOne) SetUpload(v *Upload) *StudySessionUpdateOne {
	return _u.SetUploadID(v.ID)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdateOne) Mutation() *StudySessionMutation {
	return _u.mutation
}

// ClearUpload clears the "upload" edge to the Upload entity.
func (_u *StudySessionUpdateOne) ClearUpload() *StudySessionUpdateOne {
	_u.mutation.ClearUpload()
	return _u
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdateOne) Where(ps ...predicate.StudySession) *StudySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySessionUpdateOne) Select(field string, fields ...string) *StudySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySession entity.
func (_u *StudySessionUpdateOne) Save(ctx context.Context) (*StudySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdateOne) SaveX(ctx context.Context) *StudySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := studysession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "StudySession.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalQuestions(); ok {
		if err := studysession.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "StudySession.total_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeSpentSecs(); ok {
		if err := studysession.TimeSpentSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_secs", err: fmt.Errorf(`ent: validator failed for field "StudySession.time_spent_secs": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdateOne) sqlSave(ctx context.Context) (_node *StudySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studysession.FieldID)
		for _, f := range fields {
			if !studysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studysession.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(studysession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(studysession.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(studysession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(studysession.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(studysession.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(studysession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(studysession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(studysession.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(studysession.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if _u.mutation.UploadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studysession.UploadTable,
			Columns: []string{studysession.UploadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upload.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UploadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studysession.UploadTable,
			Columns: []string{studysession.UploadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upload.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StudySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
