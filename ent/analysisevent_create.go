// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyamvada/skillscope/ent/analysisevent"
)

// AnalysisEventCreate is the builder for creating a AnalysisEvent entity.
type AnalysisEventCreate struct {
	config
	mutation *AnalysisEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnalysisEventCreate) SetSequence(v int64) *AnalysisEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnalysisEventCreate) SetTimestamp(v time.Time) *AnalysisEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableTimestamp(v *time.Time) *AnalysisEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProfileID sets the "profile_id" field.
func (_c *AnalysisEventCreate) SetProfileID(v string) *AnalysisEventCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetTargetRole sets the "target_role" field.
func (_c *AnalysisEventCreate) SetTargetRole(v string) *AnalysisEventCreate {
	_c.mutation.SetTargetRole(v)
	return _c
}

// SetGapScore sets the "gap_score" field.
func (_c *AnalysisEventCreate) SetGapScore(v float64) *AnalysisEventCreate {
	_c.mutation.SetGapScore(v)
	return _c
}

// SetNillableGapScore sets the "gap_score" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableGapScore(v *float64) *AnalysisEventCreate {
	if v != nil {
		_c.SetGapScore(*v)
	}
	return _c
}

// SetHasScore sets the "has_score" field.
func (_c *AnalysisEventCreate) SetHasScore(v bool) *AnalysisEventCreate {
	_c.mutation.SetHasScore(v)
	return _c
}

// SetNillableHasScore sets the "has_score" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableHasScore(v *bool) *AnalysisEventCreate {
	if v != nil {
		_c.SetHasScore(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *AnalysisEventCreate) SetLatencyMs(v int64) *AnalysisEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableLatencyMs(v *int64) *AnalysisEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *AnalysisEventCreate) SetSuccess(v bool) *AnalysisEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisEventCreate) SetErrorMessage(v string) *AnalysisEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableErrorMessage(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_c *AnalysisEventCreate) Mutation() *AnalysisEventMutation {
	return _c.mutation
}

// Save creates the AnalysisEvent in the database.
func (_c *AnalysisEventCreate) Save(ctx context.Context) (*AnalysisEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisEventCreate) SaveX(ctx context.Context) *AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := analysisevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.GapScore(); !ok {
		v := analysisevent.DefaultGapScore
		_c.mutation.SetGapScore(v)
	}
	if _, ok := _c.mutation.HasScore(); !ok {
		v := analysisevent.DefaultHasScore
		_c.mutation.SetHasScore(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := analysisevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := analysisevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnalysisEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnalysisEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "AnalysisEvent.profile_id"`)}
	}
	if _, ok := _c.mutation.TargetRole(); !ok {
		return &ValidationError{Name: "target_role", err: errors.New(`ent: missing required field "AnalysisEvent.target_role"`)}
	}
	if _, ok := _c.mutation.GapScore(); !ok {
		return &ValidationError{Name: "gap_score", err: errors.New(`ent: missing required field "AnalysisEvent.gap_score"`)}
	}
	if _, ok := _c.mutation.HasScore(); !ok {
		return &ValidationError{Name: "has_score", err: errors.New(`ent: missing required field "AnalysisEvent.has_score"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "AnalysisEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "AnalysisEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "AnalysisEvent.error_message"`)}
	}
	return nil
}

func (_c *AnalysisEventCreate) sqlSave(ctx context.Context) (*AnalysisEvent, error) {
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

func (_c *AnalysisEventCreate) createSpec() (*AnalysisEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisevent.Table, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(analysisevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(analysisevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(analysisevent.FieldProfileID, field.TypeString, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.TargetRole(); ok {
		_spec.SetField(analysisevent.FieldTargetRole, field.TypeString, value)
		_node.TargetRole = value
	}
	if value, ok := _c.mutation.GapScore(); ok {
		_spec.SetField(analysisevent.FieldGapScore, field.TypeFloat64, value)
		_node.GapScore = value
	}
	if value, ok := _c.mutation.HasScore(); ok {
		_spec.SetField(analysisevent.FieldHasScore, field.TypeBool, value)
		_node.HasScore = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(analysisevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(analysisevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// AnalysisEventCreateBulk is the builder for creating many AnalysisEvent entities in bulk.
type AnalysisEventCreateBulk struct {
	config
	err      error
	builders []*AnalysisEventCreate
}

// Save creates the AnalysisEvent entities in the database.
func (_c *AnalysisEventCreateBulk) Save(ctx context.Context) ([]*AnalysisEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisEventMutation)
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
func (_c *AnalysisEventCreateBulk) SaveX(ctx context.Context) []*AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
