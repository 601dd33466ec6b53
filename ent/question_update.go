// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/dayne-app/dayne/ent/predicate"
	"github.com/dayne-app/dayne/ent/question"
	"github.com/dayne-app/dayne/ent/upload"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUploadID sets the "upload_id" field.
func (_u *QuestionUpdate) SetUploadID(v int) *QuestionUpdate {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableUploadID(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *QuestionUpdate) SetText(v string) *QuestionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableText(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuestionUpdate) SetAnswer(v string) *QuestionUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAnswer(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdate) SetOptions(v []string) *QuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionUpdate) AppendOptions(v []string) *QuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuestionUpdate) ClearOptions() *QuestionUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetType sets the "type" field.
func (_u *QuestionUpdate) SetType(v string) *QuestionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableType(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdate) SetDifficulty(v string) *QuestionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDifficulty(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetUpload sets the "upload" edge to the Upload entity.
func (_u *QuestionUpdate) SetUpload(v *Upload) *QuestionUpdate {
	return _u.SetUploadID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearUpload clears the "upload" edge to the Upload entity.
func (_u *QuestionUpdate) ClearUpload() *QuestionUpdate {
	_u.mutation.ClearUpload()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Question.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := question.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Question.answer": %w`, err)}
		}
	}
	if _u.mutation.UploadCleared() && len(_u.mutation.UploadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.upload"`)
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(question.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.UploadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.UploadTable,
			Columns: []string{question.UploadColumn},
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
			Table:   question.UploadTable,
			Columns: []string{question.UploadColumn},
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
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetUploadID sets the "upload_id" field.
func (_u *QuestionUpdateOne) SetUploadID(v int) *QuestionUpdateOne {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableUploadID(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *QuestionUpdateOne) SetText(v string) *QuestionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableText(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *QuestionUpdateOne) SetAnswer(v string) *QuestionUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAnswer(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdateOne) SetOptions(v []string) *QuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionUpdateOne) AppendOptions(v []string) *QuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuestionUpdateOne) ClearOptions() *QuestionUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetType sets the "type" field.
func (_u *QuestionUpdateOne) SetType(v string) *QuestionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableType(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdateOne) SetDifficulty(v string) *QuestionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDifficulty(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetUpload sets the "upload" edge to the Upload entity.
func (_u *QuestionUpdateOne) SetUpload(v *Upload) *QuestionUpdateOne {
	return _u.SetUploadID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearUpload clears the "upload" edge to the Upload entity.
func (_u *QuestionUpdateOne) ClearUpload() *QuestionUpdateOne {
	_u.mutation.ClearUpload()
	return _u
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Question.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := question.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Question.answer": %w`, err)}
		}
	}
	if _u.mutation.UploadCleared() && len(_u.mutation.UploadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.upload"`)
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(question.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(question.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.UploadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.UploadTable,
			Columns: []string{question.UploadColumn},
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
			Table:   question.UploadTable,
			Columns: []string{question.UploadColumn},
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
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
