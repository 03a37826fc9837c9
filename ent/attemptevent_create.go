// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepdash/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptedOn sets the "attempted_on" field.
func (_c *AttemptEventCreate) SetAttemptedOn(v time.Time) *AttemptEventCreate {
	_c.mutation.SetAttemptedOn(v)
	return _c
}

// SetProblemID sets the "problem_id" field.
func (_c *AttemptEventCreate) SetProblemID(v string) *AttemptEventCreate {
	_c.mutation.SetProblemID(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AttemptEventCreate) SetCorrect(v bool) *AttemptEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetAnswerSecs sets the "answer_secs" field.
func (_c *AttemptEventCreate) SetAnswerSecs(v float64) *AttemptEventCreate {
	_c.mutation.SetAnswerSecs(v)
	return _c
}

// SetNillableAnswerSecs sets the "answer_secs" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableAnswerSecs(v *float64) *AttemptEventCreate {
	if v != nil {
		_c.SetAnswerSecs(*v)
	}
	return _c
}

// SetMissReason sets the "miss_reason" field.
func (_c *AttemptEventCreate) SetMissReason(v string) *AttemptEventCreate {
	_c.mutation.SetMissReason(v)
	return _c
}

// SetNillableMissReason sets the "miss_reason" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableMissReason(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetMissReason(*v)
	}
	return _c
}

// SetStudyMins sets the "study_mins" field.
func (_c *AttemptEventCreate) SetStudyMins(v float64) *AttemptEventCreate {
	_c.mutation.SetStudyMins(v)
	return _c
}

// SetNillableStudyMins sets the "study_mins" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableStudyMins(v *float64) *AttemptEventCreate {
	if v != nil {
		_c.SetStudyMins(*v)
	}
	return _c
}

// SetImportBatch sets the "import_batch" field.
func (_c *AttemptEventCreate) SetImportBatch(v string) *AttemptEventCreate {
	_c.mutation.SetImportBatch(v)
	return _c
}

// SetNillableImportBatch sets the "import_batch" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableImportBatch(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetImportBatch(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AnswerSecs(); !ok {
		v := attemptevent.DefaultAnswerSecs
		_c.mutation.SetAnswerSecs(v)
	}
	if _, ok := _c.mutation.MissReason(); !ok {
		v := attemptevent.DefaultMissReason
		_c.mutation.SetMissReason(v)
	}
	if _, ok := _c.mutation.StudyMins(); !ok {
		v := attemptevent.DefaultStudyMins
		_c.mutation.SetStudyMins(v)
	}
	if _, ok := _c.mutation.ImportBatch(); !ok {
		v := attemptevent.DefaultImportBatch
		_c.mutation.SetImportBatch(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptedOn(); !ok {
		return &ValidationError{Name: "attempted_on", err: errors.New(`ent: missing required field "AttemptEvent.attempted_on"`)}
	}
	if _, ok := _c.mutation.ProblemID(); !ok {
		return &ValidationError{Name: "problem_id", err: errors.New(`ent: missing required field "AttemptEvent.problem_id"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := _c.mutation.AnswerSecs(); !ok {
		return &ValidationError{Name: "answer_secs", err: errors.New(`ent: missing required field "AttemptEvent.answer_secs"`)}
	}
	if _, ok := _c.mutation.MissReason(); !ok {
		return &ValidationError{Name: "miss_reason", err: errors.New(`ent: missing required field "AttemptEvent.miss_reason"`)}
	}
	if _, ok := _c.mutation.StudyMins(); !ok {
		return &ValidationError{Name: "study_mins", err: errors.New(`ent: missing required field "AttemptEvent.study_mins"`)}
	}
	if _, ok := _c.mutation.ImportBatch(); !ok {
		return &ValidationError{Name: "import_batch", err: errors.New(`ent: missing required field "AttemptEvent.import_batch"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptedOn(); ok {
		_spec.SetField(attemptevent.FieldAttemptedOn, field.TypeTime, value)
		_node.AttemptedOn = value
	}
	if value, ok := _c.mutation.ProblemID(); ok {
		_spec.SetField(attemptevent.FieldProblemID, field.TypeString, value)
		_node.ProblemID = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.AnswerSecs(); ok {
		_spec.SetField(attemptevent.FieldAnswerSecs, field.TypeFloat64, value)
		_node.AnswerSecs = value
	}
	if value, ok := _c.mutation.MissReason(); ok {
		_spec.SetField(attemptevent.FieldMissReason, field.TypeString, value)
		_node.MissReason = value
	}
	if value, ok := _c.mutation.StudyMins(); ok {
		_spec.SetField(attemptevent.FieldStudyMins, field.TypeFloat64, value)
		_node.StudyMins = value
	}
	if value, ok := _c.mutation.ImportBatch(); ok {
		_spec.SetField(attemptevent.FieldImportBatch, field.TypeString, value)
		_node.ImportBatch = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
