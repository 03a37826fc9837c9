// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepdash/ent/predicate"
	"github.com/abhisek/prepdash/ent/problem"
)

// ProblemUpdate is the builder for updating Problem entities.
type ProblemUpdate struct {
	config
	hooks    []Hook
	mutation *ProblemMutation
}

// Where appends a list predicates to the ProblemUpdate builder.
func (_u *ProblemUpdate) Where(ps ...predicate.Problem) *ProblemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *ProblemUpdate) SetProblemID(v string) *ProblemUpdate {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableProblemID(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ProblemUpdate) SetSubject(v string) *ProblemUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableSubject(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGenre sets the "genre" field.
func (_u *ProblemUpdate) SetGenre(v string) *ProblemUpdate {
	_u.mutation.SetGenre(v)
	return _u
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableGenre(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetGenre(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *ProblemUpdate) SetUnit(v string) *ProblemUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableUnit(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetTargetTimeSecs sets the "target_time_secs" field.
func (_u *ProblemUpdate) SetTargetTimeSecs(v float64) *ProblemUpdate {
	_u.mutation.ResetTargetTimeSecs()
	_u.mutation.SetTargetTimeSecs(v)
	return _u
}

// SetNillableTargetTimeSecs sets the "target_time_secs" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableTargetTimeSecs(v *float64) *ProblemUpdate {
	if v != nil {
		_u.SetTargetTimeSecs(*v)
	}
	return _u
}

// AddTargetTimeSecs adds value to the "target_time_secs" field.
func (_u *ProblemUpdate) AddTargetTimeSecs(v float64) *ProblemUpdate {
	_u.mutation.AddTargetTimeSecs(v)
	return _u
}

// SetTargetAccuracyPct sets the "target_accuracy_pct" field.
func (_u *ProblemUpdate) SetTargetAccuracyPct(v float64) *ProblemUpdate {
	_u.mutation.ResetTargetAccuracyPct()
	_u.mutation.SetTargetAccuracyPct(v)
	return _u
}

// SetNillableTargetAccuracyPct sets the "target_accuracy_pct" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableTargetAccuracyPct(v *float64) *ProblemUpdate {
	if v != nil {
		_u.SetTargetAccuracyPct(*v)
	}
	return _u
}

// AddTargetAccuracyPct adds value to the "target_accuracy_pct" field.
func (_u *ProblemUpdate) AddTargetAccuracyPct(v float64) *ProblemUpdate {
	_u.mutation.AddTargetAccuracyPct(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *ProblemUpdate) SetTier(v string) *ProblemUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableTier(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetFrequencyWeight sets the "frequency_weight" field.
func (_u *ProblemUpdate) SetFrequencyWeight(v int) *ProblemUpdate {
	_u.mutation.ResetFrequencyWeight()
	_u.mutation.SetFrequencyWeight(v)
	return _u
}

// SetNillableFrequencyWeight sets the "frequency_weight" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableFrequencyWeight(v *int) *ProblemUpdate {
	if v != nil {
		_u.SetFrequencyWeight(*v)
	}
	return _u
}

// AddFrequencyWeight adds value to the "frequency_weight" field.
func (_u *ProblemUpdate) AddFrequencyWeight(v int) *ProblemUpdate {
	_u.mutation.AddFrequencyWeight(v)
	return _u
}

// Mutation returns the ProblemMutation object of the builder.
func (_u *ProblemUpdate) Mutation() *ProblemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProblemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProblemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemUpdate) check() error {
	if v, ok := _u.mutation.ProblemID(); ok {
		if err := problem.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "Problem.problem_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problem.Table, problem.Columns, sqlgraph.NewFieldSpec(problem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(problem.FieldProblemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(problem.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Genre(); ok {
		_spec.SetField(problem.FieldGenre, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(problem.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetTimeSecs(); ok {
		_spec.SetField(problem.FieldTargetTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetTimeSecs(); ok {
		_spec.AddField(problem.FieldTargetTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TargetAccuracyPct(); ok {
		_spec.SetField(problem.FieldTargetAccuracyPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetAccuracyPct(); ok {
		_spec.AddField(problem.FieldTargetAccuracyPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(problem.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.FrequencyWeight(); ok {
		_spec.SetField(problem.FieldFrequencyWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrequencyWeight(); ok {
		_spec.AddField(problem.FieldFrequencyWeight, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProblemUpdateOne is the builder for updating a single Problem entity.
type ProblemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProblemMutation
}

// SetProblemID sets the "problem_id" field.
func (_u *ProblemUpdateOne) SetProblemID(v string) *ProblemUpdateOne {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableProblemID(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ProblemUpdateOne) SetSubject(v string) *ProblemUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableSubject(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGenre sets the "genre" field.
func (_u *ProblemUpdateOne) SetGenre(v string) *ProblemUpdateOne {
	_u.mutation.SetGenre(v)
	return _u
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableGenre(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetGenre(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *ProblemUpdateOne) SetUnit(v string) *ProblemUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableUnit(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetTargetTimeSecs sets the "target_time_secs" field.
func (_u *ProblemUpdateOne) SetTargetTimeSecs(v float64) *ProblemUpdateOne {
	_u.mutation.ResetTargetTimeSecs()
	_u.mutation.SetTargetTimeSecs(v)
	return _u
}

// SetNillableTargetTimeSecs sets the "target_time_secs" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableTargetTimeSecs(v *float64) *ProblemUpdateOne {
	if v != nil {
		_u.SetTargetTimeSecs(*v)
	}
	return _u
}

// AddTargetTimeSecs adds value to the "target_time_secs" field.
func (_u *ProblemUpdateOne) AddTargetTimeSecs(v float64) *ProblemUpdateOne {
	_u.mutation.AddTargetTimeSecs(v)
	return _u
}

// SetTargetAccuracyPct sets the "target_accuracy_pct" field.
func (_u *ProblemUpdateOne) SetTargetAccuracyPct(v float64) *ProblemUpdateOne {
	_u.mutation.ResetTargetAccuracyPct()
	_u.mutation.SetTargetAccuracyPct(v)
	return _u
}

// SetNillableTargetAccuracyPct sets the "target_accuracy_pct" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableTargetAccuracyPct(v *float64) *ProblemUpdateOne {
	if v != nil {
		_u.SetTargetAccuracyPct(*v)
	}
	return _u
}

// AddTargetAccuracyPct adds value to the "target_accuracy_pct" field.
func (_u *ProblemUpdateOne) AddTargetAccuracyPct(v float64) *ProblemUpdateOne {
	_u.mutation.AddTargetAccuracyPct(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *ProblemUpdateOne) SetTier(v string) *ProblemUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableTier(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetFrequencyWeight sets the "frequency_weight" field.
func (_u *ProblemUpdateOne) SetFrequencyWeight(v int) *ProblemUpdateOne {
	_u.mutation.ResetFrequencyWeight()
	_u.mutation.SetFrequencyWeight(v)
	return _u
}

// SetNillableFrequencyWeight sets the "frequency_weight" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableFrequencyWeight(v *int) *ProblemUpdateOne {
	if v != nil {
		_u.SetFrequencyWeight(*v)
	}
	return _u
}

// AddFrequencyWeight adds value to the "frequency_weight" field.
func (_u *ProblemUpdateOne) AddFrequencyWeight(v int) *ProblemUpdateOne {
	_u.mutation.AddFrequencyWeight(v)
	return _u
}

// Mutation returns the ProblemMutation object of the builder.
func (_u *ProblemUpdateOne) Mutation() *ProblemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProblemUpdate builder.
func (_u *ProblemUpdateOne) Where(ps ...predicate.Problem) *ProblemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProblemUpdateOne) Select(field string, fields ...string) *ProblemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Problem entity.
func (_u *ProblemUpdateOne) Save(ctx context.Context) (*Problem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemUpdateOne) SaveX(ctx context.Context) *Problem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProblemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemUpdateOne) check() error {
	if v, ok := _u.mutation.ProblemID(); ok {
		if err := problem.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "Problem.problem_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemUpdateOne) sqlSave(ctx context.Context) (_node *Problem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problem.Table, problem.Columns, sqlgraph.NewFieldSpec(problem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Problem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, problem.FieldID)
		for _, f := range fields {
			if !problem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != problem.FieldID {
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
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(problem.FieldProblemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(problem.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Genre(); ok {
		_spec.SetField(problem.FieldGenre, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(problem.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetTimeSecs(); ok {
		_spec.SetField(problem.FieldTargetTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetTimeSecs(); ok {
		_spec.AddField(problem.FieldTargetTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TargetAccuracyPct(); ok {
		_spec.SetField(problem.FieldTargetAccuracyPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetAccuracyPct(); ok {
		_spec.AddField(problem.FieldTargetAccuracyPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(problem.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.FrequencyWeight(); ok {
		_spec.SetField(problem.FieldFrequencyWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrequencyWeight(); ok {
		_spec.AddField(problem.FieldFrequencyWeight, field.TypeInt, value)
	}
	_node = &Problem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
