// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dayne-app/dayne/ent/studysession"
	"github.com/dayne-app/dayne/ent/upload"
)

// StudySessionCreate is the builder for creating a StudySession entity.
type StudySessionCreate struct {
	config
	mutation *StudySessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *StudySessionCreate) SetUserID(v string) *StudySessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetUploadID sets the "upload_id" field.
func (_c *StudySessionCreate) SetUploadID(v int) *StudySessionCreate {
	_c.mutation.SetUploadID(v)
	return _c
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableUploadID(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetUploadID(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *StudySessionCreate) SetMode(v studysession.Mode) *StudySessionCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *StudySessionCreate) SetScore(v int) *StudySessionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableScore(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *StudySessionCreate) SetTotalQuestions(v int) *StudySessionCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *StudySessionCreate) SetTimeSpentSecs(v int) *StudySessionCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableTimeSpentSecs(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetTimeSpentSecs(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StudySessionCreate) SetCompletedAt(v time.Time) *StudySessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableCompletedAt(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetUpload sets the "upload" edge to the Upload entity.
func (_c *StudySessionCreate) SetUpload(v *Upload) *StudySessionCreate {
	return _c.SetUploadID(v.ID)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_c *StudySessionCreate) Mutation() *StudySessionMutation {
	return _c.mutation
}

// Save creates the StudySession in the database.
func (_c *StudySessionCreate) Save(ctx context.Context) (*StudySession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudySessionCreate) SaveX(ctx context.Context) *StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudySessionCreate) defaults() {
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		v := studysession.DefaultTimeSpentSecs
		_c.mutation.SetTimeSpentSecs(v)
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := studysession.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudySessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StudySession.user_id"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "StudySession.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := studysession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "StudySession.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "StudySession.total_questions"`)}
	}
	if v, ok := _c.mutation.TotalQuestions(); ok {
		if err := studysession.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "StudySession.total_questions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "StudySession.time_spent_secs"`)}
	}
	if v, ok := _c.mutation.TimeSpentSecs(); ok {
		if err := studysession.TimeSpentSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_secs", err: fmt.Errorf(`ent: validator failed for field "StudySession.time_spent_secs": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "StudySession.completed_at"`)}
	}
	return nil
}

func (_c *StudySessionCreate) sqlSave(ctx context.Context) (*StudySession, error) {
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

func (_c *StudySessionCreate) createSpec() (*StudySession, *sqlgraph.CreateSpec) {
	var (
		_node = &StudySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studysession.Table, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(studysession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(studysession.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(studysession.FieldScore, field.TypeInt, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(studysession.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(studysession.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(studysession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if nodes := _c.mutation.UploadIDs(); len(nodes) > 0 {
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
		_node.UploadID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StudySessionCreateBulk is the builder for creating many StudySession entities in bulk.
type StudySessionCreateBulk struct {
	config
	err      error
	builders []*StudySessionCreate
}

// Save creates the StudySession entities in the database.
func (_c *StudySessionCreateBulk) Save(ctx context.Context) ([]*StudySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudySessionMutation)
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
func (_c *StudySessionCreateBulk) SaveX(ctx context.Context) []*StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
