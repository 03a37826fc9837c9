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
	"github.com/abhisek/prepdash/ent/attemptevent"
	"github.com/abhisek/prepdash/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptedOn sets the "attempted_on" field.
func (_u *AttemptEventUpdate) SetAttemptedOn(v time.Time) *AttemptEventUpdate {
	_u.mutation.SetAttemptedOn(v)
	return _u
}

// SetNillableAttemptedOn sets the "attempted_on" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptedOn(v *time.Time) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptedOn(*v)
	}
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *AttemptEventUpdate) SetProblemID(v string) *AttemptEventUpdate {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableProblemID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetAnswerSecs sets the "answer_secs" field.
func (_u *AttemptEventUpdate) SetAnswerSecs(v float64) *AttemptEventUpdate {
	_u.mutation.ResetAnswerSecs()
	_u.mutation.SetAnswerSecs(v)
	return _u
}

// SetNillableAnswerSecs sets the "answer_secs" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAnswerSecs(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetAnswerSecs(*v)
	}
	return _u
}

// AddAnswerSecs adds value to the "answer_secs" field.
func (_u *AttemptEventUpdate) AddAnswerSecs(v float64) *AttemptEventUpdate {
	_u.mutation.AddAnswerSecs(v)
	return _u
}

// SetMissReason sets the "miss_reason" field.
func (_u *AttemptEventUpdate) SetMissReason(v string) *AttemptEventUpdate {
	_u.mutation.SetMissReason(v)
	return _u
}

// SetNillableMissReason sets the "miss_reason" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableMissReason(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetMissReason(*v)
	}
	return _u
}

// SetStudyMins sets the "study_mins" field.
func (_u *AttemptEventUpdate) SetStudyMins(v float64) *AttemptEventUpdate {
	_u.mutation.ResetStudyMins()
	_u.mutation.SetStudyMins(v)
	return _u
}

// SetNillableStudyMins sets the "study_mins" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableStudyMins(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetStudyMins(*v)
	}
	return _u
}

// AddStudyMins adds value to the "study_mins" field.
func (_u *AttemptEventUpdate) AddStudyMins(v float64) *AttemptEventUpdate {
	_u.mutation.AddStudyMins(v)
	return _u
}

// SetImportBatch sets the "import_batch" field.
func (_u *AttemptEventUpdate) SetImportBatch(v string) *AttemptEventUpdate {
	_u.mutation.SetImportBatch(v)
	return _u
}

// SetNillableImportBatch sets the "import_batch" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableImportBatch(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetImportBatch(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptedOn(); ok {
		_spec.SetField(attemptevent.FieldAttemptedOn, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(attemptevent.FieldProblemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AnswerSecs(); ok {
		_spec.SetField(attemptevent.FieldAnswerSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnswerSecs(); ok {
		_spec.AddField(attemptevent.FieldAnswerSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MissReason(); ok {
		_spec.SetField(attemptevent.FieldMissReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudyMins(); ok {
		_spec.SetField(attemptevent.FieldStudyMins, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStudyMins(); ok {
		_spec.AddField(attemptevent.FieldStudyMins, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ImportBatch(); ok {
		_spec.SetField(attemptevent.FieldImportBatch, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetAttemptedOn sets the "attempted_on" field.
func (_u *AttemptEventUpdateOne) SetAttemptedOn(v time.Time) *AttemptEventUpdateOne {
	_u.mutation.SetAttemptedOn(v)
	return _u
}

// SetNillableAttemptedOn sets the "attempted_on" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptedOn(v *time.Time) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptedOn(*v)
	}
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *AttemptEventUpdateOne) SetProblemID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableProblemID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetAnswerSecs sets the "answer_secs" field.
func (_u *AttemptEventUpdateOne) SetAnswerSecs(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetAnswerSecs()
	_u.mutation.SetAnswerSecs(v)
	return _u
}

// SetNillableAnswerSecs sets the "answer_secs" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAnswerSecs(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAnswerSecs(*v)
	}
	return _u
}

// AddAnswerSecs adds value to the "answer_secs" field.
func (_u *AttemptEventUpdateOne) AddAnswerSecs(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddAnswerSecs(v)
	return _u
}

// SetMissReason sets the "miss_reason" field.
func (_u *AttemptEventUpdateOne) SetMissReason(v string) *AttemptEventUpdateOne {
	_u.mutation.SetMissReason(v)
	return _u
}

// SetNillableMissReason sets the "miss_reason" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableMissReason(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetMissReason(*v)
	}
	return _u
}

// SetStudyMins sets the "study_mins" field.
func (_u *AttemptEventUpdateOne) SetStudyMins(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetStudyMins()
	_u.mutation.SetStudyMins(v)
	return _u
}

// SetNillableStudyMins sets the "study_mins" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableStudyMins(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetStudyMins(*v)
	}
	return _u
}

// AddStudyMins adds value to the "study_mins" field.
func (_u *AttemptEventUpdateOne) AddStudyMins(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddStudyMins(v)
	return _u
}

// SetImportBatch sets the "import_batch" field.
func (_u *AttemptEventUpdateOne) SetImportBatch(v string) *AttemptEventUpdateOne {
	_u.mutation.SetImportBatch(v)
	return _u
}

// SetNillableImportBatch sets the "import_batch" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableImportBatch(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetImportBatch(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.AttemptedOn(); ok {
		_spec.SetField(attemptevent.FieldAttemptedOn, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(attemptevent.FieldProblemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AnswerSecs(); ok {
		_spec.SetField(attemptevent.FieldAnswerSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnswerSecs(); ok {
		_spec.AddField(attemptevent.FieldAnswerSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MissReason(); ok {
		_spec.SetField(attemptevent.FieldMissReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudyMins(); ok {
		_spec.SetField(attemptevent.FieldStudyMins, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStudyMins(); ok {
		_spec.AddField(attemptevent.FieldStudyMins, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ImportBatch(); ok {
		_spec.SetField(attemptevent.FieldImportBatch, field.TypeString, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
