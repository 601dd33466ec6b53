// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dayne-app/dayne/ent/predicate"
	"github.com/dayne-app/dayne/ent/question"
	"github.com/dayne-app/dayne/ent/studysession"
	"github.com/dayne-app/dayne/ent/upload"
)

// UploadUpdate is the builder for updating Upload entities.
type UploadUpdate struct {
	config
	hooks    []Hook
	mutation *UploadMutation
}

// Where appends a list predicates to the UploadUpdate builder.
func (_u *UploadUpdate) Where(ps ...predicate.Upload) *UploadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *UploadUpdate) SetName(v string) *UploadUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableName(v *string) *UploadUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UploadUpdate) SetUserID(v string) *UploadUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableUserID(v *string) *UploadUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *UploadUpdate) ClearUserID() *UploadUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *UploadUpdate) SetFileSize(v int64) *UploadUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableFileSize(v *int64) *UploadUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *UploadUpdate) AddFileSize(v int64) *UploadUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// ClearFileSize clears the value of the "file_size" field.
func (_u *UploadUpdate) ClearFileSize() *UploadUpdate {
	_u.mutation.ClearFileSize()
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *UploadUpdate) SetFileType(v string) *UploadUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableFileType(v *string) *UploadUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// ClearFileType clears the value of the "file_type" field.
func (_u *UploadUpdate) ClearFileType() *UploadUpdate {
	_u.mutation.ClearFileType()
	return _u
}

// SetBlobKey sets the "blob_key" field.
func (_u *UploadUpdate) SetBlobKey(v string) *UploadUpdate {
	_u.mutation.SetBlobKey(v)
	return _u
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableBlobKey(v *string) *UploadUpdate {
	if v != nil {
		_u.SetBlobKey(*v)
	}
	return _u
}

// ClearBlobKey clears the value of the "blob_key" field.
func (_u *UploadUpdate) ClearBlobKey() *UploadUpdate {
	_u.mutation.ClearBlobKey()
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *UploadUpdate) SetProcessed(v bool) *UploadUpdate {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableProcessed(v *bool) *UploadUpdate {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UploadUpdate) SetUpdatedAt(v time.Time) *UploadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *UploadUpdate) AddQuestionIDs(ids ...int) *UploadUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *UploadUpdate) AddQuestions(v ...*Question) *UploadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by IDs.
func (_u *UploadUpdate) AddStudySessionIDs(ids ...int) *UploadUpdate {
	_u.mutation.AddStudySessionIDs(ids...)
	return _u
}

// AddStudySessions adds the "study_sessions" edges to the StudySession entity.
func (_u *UploadUpdate) AddStudySessions(v ...*StudySession) *UploadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStudySessionIDs(ids...)
}

// Mutation returns the UploadMutation object of the builder.
func (_u *UploadUpdate) Mutation() *UploadMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *UploadUpdate) ClearQuestions() *UploadUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *UploadUpdate) RemoveQuestionIDs(ids ...int) *UploadUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *UploadUpdate) RemoveQuestions(v ...*Question) *UploadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearStudySessions clears all "study_sessions" edges to the StudySession entity.
func (_u *UploadUpdate) ClearStudySessions() *UploadUpdate {
	_u.mutation.ClearStudySessions()
	return _u
}

// RemoveStudySessionIDs removes the "study_sessions" edge to StudySession entities by IDs.
func (_u *UploadUpdate) RemoveStudySessionIDs(ids ...int) *UploadUpdate {
	_u.mutation.RemoveStudySessionIDs(ids...)
	return _u
}

// RemoveStudySessions removes "study_sessions" edges to StudySession entities.
func (_u *UploadUpdate) RemoveStudySessions(v ...*StudySession) *UploadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStudySessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UploadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := upload.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := upload.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Upload.name": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upload.Table, upload.Columns, sqlgraph.NewFieldSpec(upload.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(upload.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(upload.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(upload.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(upload.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(upload.FieldFileSize, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeCleared() {
		_spec.ClearField(upload.FieldFileSize, field.TypeInt64)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(upload.FieldFileType, field.TypeString, value)
	}
	if _u.mutation.FileTypeCleared() {
		_spec.ClearField(upload.FieldFileType, field.TypeString)
	}
	if value, ok := _u.mutation.BlobKey(); ok {
		_spec.SetField(upload.FieldBlobKey, field.TypeString, value)
	}
	if _u.mutation.BlobKeyCleared() {
		_spec.ClearField(upload.FieldBlobKey, field.TypeString)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(upload.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(upload.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.QuestionsTable,
			Columns: []string{upload.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.QuestionsTable,
			Columns: []string{upload.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.QuestionsTable,
			Columns: []string{upload.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudySessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.StudySessionsTable,
			Columns: []string{upload.StudySessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStudySessionsIDs(); len(nodes) > 0 && !_u.mutation.StudySessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.StudySessionsTable,
			Columns: []string{upload.StudySessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudySessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.StudySessionsTable,
			Columns: []string{upload.StudySessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadUpdateOne is the builder for updating a single Upload entity.
type UploadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadMutation
}

// SetName sets the "name" field.
func (_u *UploadUpdateOne) SetName(v string) *UploadUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableName(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UploadUpdateOne) SetUserID(v string) *UploadUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableUserID(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *UploadUpdateOne) ClearUserID() *UploadUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *UploadUpdateOne) SetFileSize(v int64) *UploadUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableFileSize(v *int64) *UploadUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *UploadUpdateOne) AddFileSize(v int64) *UploadUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// ClearFileSize clears the value of the "file_size" field.
func (_u *UploadUpdateOne) ClearFileSize() *UploadUpdateOne {
	_u.mutation.ClearFileSize()
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *UploadUpdateOne) SetFileType(v string) *UploadUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableFileType(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// ClearFileType clears the value of the "file_type" field.
func (_u *UploadUpdateOne) ClearFileType() *UploadUpdateOne {
	_u.mutation.ClearFileType()
	return _u
}

// SetBlobKey sets the "blob_key" field.
func (_u *UploadUpdateOne) SetBlobKey(v string) *UploadUpdateOne {
	_u.mutation.SetBlobKey(v)
	return _u
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableBlobKey(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetBlobKey(*v)
	}
	return _u
}

// ClearBlobKey clears the value of the "blob_key" field.
func (_u *UploadUpdateOne) ClearBlobKey() *UploadUpdateOne {
	_u.mutation.ClearBlobKey()
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *UploadUpdateOne) SetProcessed(v bool) *UploadUpdateOne {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableProcessed(v *bool) *UploadUpdateOne {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UploadUpdateOne) SetUpdatedAt(v time.Time) *UploadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *UploadUpdateOne) AddQuestionIDs(ids ...int) *UploadUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *UploadUpdateOne) AddQuestions(v ...*Question) *UploadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by IDs.
func (_u *UploadUpdateOne) AddStudySessionIDs(ids ...int) *UploadUpdateOne {
	_u.mutation.AddStudySessionIDs(ids...)
	return _u
}

// AddStudySessions adds the "study_sessions" edges to the StudySession entity.
func (_u *UploadUpdateOne) AddStudySessions(v ...*StudySession) *UploadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStudySessionIDs(ids...)
}

// Mutation returns the UploadMutation object of the builder.
func (_u *UploadUpdateOne) Mutation() *UploadMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *UploadUpdateOne) ClearQuestions() *UploadUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *UploadUpdateOne) RemoveQuestionIDs(ids ...int) *UploadUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *UploadUpdateOne) RemoveQuestions(v ...*Question) *UploadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearStudySessions clears all "study_sessions" edges to the StudySession entity.
func (_u *UploadUpdateOne) ClearStudySessions() *UploadUpdateOne {
	_u.mutation.ClearStudySessions()
	return _u
}

// RemoveStudySessionIDs removes the "study_sessions" edge to StudySession entities by IDs.
func (_u *UploadUpdateOne) RemoveStudySessionIDs(ids ...int) *UploadUpdateOne {
	_u.mutation.RemoveStudySessionIDs(ids...)
	return _u
}

// RemoveStudySessions removes "study_sessions" edges to StudySession entities.
func (_u *UploadUpdateOne) RemoveStudySessions(v ...*StudySession) *UploadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStudySessionIDs(ids...)
}

// Where appends a list predicates to the UploadUpdate builder.
func (_u *UploadUpdateOne) Where(ps ...predicate.Upload) *UploadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadUpdateOne) Select(field string, fields ...string) *UploadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Upload entity.
func (_u *UploadUpdateOne) Save(ctx context.Context) (*Upload, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadUpdateOne) SaveX(ctx context.Context) *Upload {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UploadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := upload.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := upload.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Upload.name": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadUpdateOne) sqlSave(ctx context.Context) (_node *Upload, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upload.Table, upload.Columns, sqlgraph.NewFieldSpec(upload.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Upload.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, upload.FieldID)
		for _, f := range fields {
			if !upload.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != upload.FieldID {
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
		_spec.SetField(upload.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(upload.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(upload.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(upload.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(upload.FieldFileSize, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeCleared() {
		_spec.ClearField(upload.FieldFileSize, field.TypeInt64)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(upload.FieldFileType, field.TypeString, value)
	}
	if _u.mutation.FileTypeCleared() {
		_spec.ClearField(upload.FieldFileType, field.TypeString)
	}
	if value, ok := _u.mutation.BlobKey(); ok {
		_spec.SetField(upload.FieldBlobKey, field.TypeString, value)
	}
	if _u.mutation.BlobKeyCleared() {
		_spec.ClearField(upload.FieldBlobKey, field.TypeString)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(upload.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(upload.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.QuestionsTable,
			Columns: []string{upload.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.QuestionsTable,
			Columns: []string{upload.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.QuestionsTable,
			Columns: []string{upload.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudySessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.StudySessionsTable,
			Columns: []string{upload.StudySessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStudySessionsIDs(); len(nodes) > 0 && !_u.mutation.StudySessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.StudySessionsTable,
			Columns: []string{upload.StudySessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudySessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.StudySessionsTable,
			Columns: []string{upload.StudySessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Upload{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
