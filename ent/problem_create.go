// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepdash/ent/problem"
)

// ProblemCreate is the builder for creating a Problem entity.
type ProblemCreate struct {
	config
	mutation *ProblemMutation
	hooks    []Hook
}

// SetProblemID sets the "problem_id" field.
func (_c *ProblemCreate) SetProblemID(v string) *ProblemCreate {
	_c.mutation.SetProblemID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ProblemCreate) SetSubject(v string) *ProblemCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableSubject(v *string) *ProblemCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetGenre sets the "genre" field.
func (_c *ProblemCreate) SetGenre(v string) *ProblemCreate {
	_c.mutation.SetGenre(v)
	return _c
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableGenre(v *string) *ProblemCreate {
	if v != nil {
		_c.SetGenre(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *ProblemCreate) SetUnit(v string) *ProblemCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableUnit(v *string) *ProblemCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetTargetTimeSecs sets the "target_time_secs" field.
func (_c *ProblemCreate) SetTargetTimeSecs(v float64) *ProblemCreate {
	_c.mutation.SetTargetTimeSecs(v)
	return _c
}

// SetNillableTargetTimeSecs sets the "target_time_secs" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableTargetTimeSecs(v *float64) *ProblemCreate {
	if v != nil {
		_c.SetTargetTimeSecs(*v)
	}
	return _c
}

// SetTargetAccuracyPct sets the "target_accuracy_pct" field.
func (_c *ProblemCreate) SetTargetAccuracyPct(v float64) *ProblemCreate {
	_c.mutation.SetTargetAccuracyPct(v)
	return _c
}

// SetNillableTargetAccuracyPct sets the "target_accuracy_pct" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableTargetAccuracyPct(v *float64) *ProblemCreate {
	if v != nil {
		_c.SetTargetAccuracyPct(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *ProblemCreate) SetTier(v string) *ProblemCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableTier(v *string) *ProblemCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetFrequencyWeight sets the "frequency_weight" field.
func (_c *ProblemCreate) SetFrequencyWeight(v int) *ProblemCreate {
	_c.mutation.SetFrequencyWeight(v)
	return _c
}

// SetNillableFrequencyWeight sets the "frequency_weight" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableFrequencyWeight(v *int) *ProblemCreate {
	if v != nil {
		_c.SetFrequencyWeight(*v)
	}
	return _c
}

// Mutation returns the ProblemMutation object of the builder.
func (_c *ProblemCreate) Mutation() *ProblemMutation {
	return _c.mutation
}

// Save creates the Problem in the database.
func (_c *ProblemCreate) Save(ctx context.Context) (*Problem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProblemCreate) SaveX(ctx context.Context) *Problem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProblemCreate) defaults() {
	if _, ok := _c.mutation.Subject(); !ok {
		v := problem.DefaultSubject
		_c.mutation.SetSubject(v)
	}
	if _, ok := _c.mutation.Genre(); !ok {
		v := problem.DefaultGenre
		_c.mutation.SetGenre(v)
	}
	if _, ok := _c.mutation.Unit(); !ok {
		v := problem.DefaultUnit
		_c.mutation.SetUnit(v)
	}
	if _, ok := _c.mutation.TargetTimeSecs(); !ok {
		v := problem.DefaultTargetTimeSecs
		_c.mutation.SetTargetTimeSecs(v)
	}
	if _, ok := _c.mutation.TargetAccuracyPct(); !ok {
		v := problem.DefaultTargetAccuracyPct
		_c.mutation.SetTargetAccuracyPct(v)
	}
	if _, ok := _c.mutation.Tier(); !ok {
		v := problem.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.FrequencyWeight(); !ok {
		v := problem.DefaultFrequencyWeight
		_c.mutation.SetFrequencyWeight(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProblemCreate) check() error {
	if _, ok := _c.mutation.ProblemID(); !ok {
		return &ValidationError{Name: "problem_id", err: errors.New(`ent: missing required field "Problem.problem_id"`)}
	}
	if v, ok := _c.mutation.ProblemID(); ok {
		if err := problem.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "Problem.problem_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Problem.subject"`)}
	}
	if _, ok := _c.mutation.Genre(); !ok {
		return &ValidationError{Name: "genre", err: errors.New(`ent: missing required field "Problem.genre"`)}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "Problem.unit"`)}
	}
	if _, ok := _c.mutation.TargetTimeSecs(); !ok {
		return &ValidationError{Name: "target_time_secs", err: errors.New(`ent: missing required field "Problem.target_time_secs"`)}
	}
	if _, ok := _c.mutation.TargetAccuracyPct(); !ok {
		return &ValidationError{Name: "target_accuracy_pct", err: errors.New(`ent: missing required field "Problem.target_accuracy_pct"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "Problem.tier"`)}
	}
	if _, ok := _c.mutation.FrequencyWeight(); !ok {
		return &ValidationError{Name: "frequency_weight", err: errors.New(`ent: missing required field "Problem.frequency_weight"`)}
	}
	return nil
}

func (_c *ProblemCreate) sqlSave(ctx context.Context) (*Problem, error) {
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

func (_c *ProblemCreate) createSpec() (*Problem, *sqlgraph.CreateSpec) {
	var (
		_node = &Problem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(problem.Table, sqlgraph.NewFieldSpec(problem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProblemID(); ok {
		_spec.SetField(problem.FieldProblemID, field.TypeString, value)
		_node.ProblemID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(problem.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Genre(); ok {
		_spec.SetField(problem.FieldGenre, field.TypeString, value)
		_node.Genre = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(problem.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.TargetTimeSecs(); ok {
		_spec.SetField(problem.FieldTargetTimeSecs, field.TypeFloat64, value)
		_node.TargetTimeSecs = value
	}
	if value, ok := _c.mutation.TargetAccuracyPct(); ok {
		_spec.SetField(problem.FieldTargetAccuracyPct, field.TypeFloat64, value)
		_node.TargetAccuracyPct = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(problem.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.FrequencyWeight(); ok {
		_spec.SetField(problem.FieldFrequencyWeight, field.TypeInt, value)
		_node.FrequencyWeight = value
	}
	return _node, _spec
}

// ProblemCreateBulk is the builder for creating many Problem entities in bulk.
type ProblemCreateBulk struct {
	config
	err      error
	builders []*ProblemCreate
}

// Save creates the Problem entities in the database.
func (_c *ProblemCreateBulk) Save(ctx context.Context) ([]*Problem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Problem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProblemMutation)
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
func (_c *ProblemCreateBulk) SaveX(ctx context.Context) []*Problem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
