// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dayne-app/dayne/ent/question"
	"github.com/dayne-app/dayne/ent/studysession"
	"github.com/dayne-app/dayne/ent/upload"
)

// UploadCreate is the builder for creating a Upload entity.
type UploadCreate struct {
	config
	mutation *UploadMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *UploadCreate) SetName(v string) *UploadCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UploadCreate) SetUserID(v string) *UploadCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *UploadCreate) SetNillableUserID(v *string) *UploadCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *UploadCreate) SetFileSize(v int64) *UploadCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_c *UploadCreate) SetNillableFileSize(v *int64) *UploadCreate {
	if v != nil {
		_c.SetFileSize(*v)
	}
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *UploadCreate) SetFileType(v string) *UploadCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_c *UploadCreate) SetNillableFileType(v *string) *UploadCreate {
	if v != nil {
		_c.SetFileType(*v)
	}
	return _c
}

// SetBlobKey sets the "blob_key" field.
func (_c *UploadCreate) SetBlobKey(v string) *UploadCreate {
	_c.mutation.SetBlobKey(v)
	return _c
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_c *UploadCreate) SetNillableBlobKey(v *string) *UploadCreate {
	if v != nil {
		_c.SetBlobKey(*v)
	}
	return _c
}

// SetProcessed sets the "processed" field.
func (_c *UploadCreate) SetProcessed(v bool) *UploadCreate {
	_c.mutation.SetProcessed(v)
	return _c
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_c *UploadCreate) SetNillableProcessed(v *bool) *UploadCreate {
	if v != nil {
		_c.SetProcessed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UploadCreate) SetCreatedAt(v time.Time) *UploadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UploadCreate) SetNillableCreatedAt(v *time.Time) *UploadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UploadCreate) SetUpdatedAt(v time.Time) *UploadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UploadCreate) SetNillableUpdatedAt(v *time.Time) *UploadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *UploadCreate) AddQuestionIDs(ids ...int) *UploadCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *UploadCreate) AddQuestions(v ...*Question) *UploadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by IDs.
func (_c *UploadCreate) AddStudySessionIDs(ids ...int) *UploadCreate {
	_c.mutation.AddStudySessionIDs(ids...)
	return _c
}

// AddStudySessions adds the "study_sessions" edges to the StudySession entity.
func (_c *UploadCreate) AddStudySessions(v ...*StudySession) *UploadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStudySessionIDs(ids...)
}

// Mutation returns the UploadMutation object of the builder.
func (_c *UploadCreate) Mutation() *UploadMutation {
	return _c.mutation
}

// Save creates the Upload in the database.
func (_c *UploadCreate) Save(ctx context.Context) (*Upload, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadCreate) SaveX(ctx context.Context) *Upload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UploadCreate) defaults() {
	if _, ok := _c.mutation.Processed(); !ok {
		v := upload.DefaultProcessed
		_c.mutation.SetProcessed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := upload.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := upload.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Upload.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := upload.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Upload.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Processed(); !ok {
		return &ValidationError{Name: "processed", err: errors.New(`ent: missing required field "Upload.processed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Upload.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Upload.updated_at"`)}
	}
	return nil
}

func (_c *UploadCreate) sqlSave(ctx context.Context) (*Upload, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UploadCreate) createSpec() (*Upload, *sqlgraph.CreateSpec) {
	var (
		_node = &Upload{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(upload.Table, sqlgraph.NewFieldSpec(upload.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(upload.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(upload.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(upload.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = &value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(upload.FieldFileType, field.TypeString, value)
		_node.FileType = &value
	}
	if value, ok := _c.mutation.BlobKey(); ok {
		_spec.SetField(upload.FieldBlobKey, field.TypeString, value)
		_node.BlobKey = &value
	}
	if value, ok := _c.mutation.Processed(); ok {
		_spec.SetField(upload.FieldProcessed, field.TypeBool, value)
		_node.Processed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(upload.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(upload.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StudySessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UploadCreateBulk is the builder for creating many Upload entities in bulk.
type UploadCreateBulk struct {
	config
	err      error
	builders []*UploadCreate
}

// Save creates the Upload entities in the database.
func (_c *UploadCreateBulk) Save(ctx context.Context) ([]*Upload, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Upload, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *UploadCreateBulk) SaveX(ctx context.Context) []*Upload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
