// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyamvada/skillscope/ent/analysisevent"
	"github.com/priyamvada/skillscope/ent/predicate"
)

// AnalysisEventUpdate is the builder for updating AnalysisEvent entities.
type AnalysisEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdate) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *AnalysisEventUpdate) SetProfileID(v string) *AnalysisEventUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableProfileID(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetTargetRole sets the "target_role" field.
func (_u *AnalysisEventUpdate) SetTargetRole(v string) *AnalysisEventUpdate {
	_u.mutation.SetTargetRole(v)
	return _u
}

// SetNillableTargetRole sets the "target_role" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableTargetRole(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetTargetRole(*v)
	}
	return _u
}

// SetGapScore sets the "gap_score" field.
func (_u *AnalysisEventUpdate) SetGapScore(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetGapScore()
	_u.mutation.SetGapScore(v)
	return _u
}

// SetNillableGapScore sets the "gap_score" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableGapScore(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetGapScore(*v)
	}
	return _u
}

// AddGapScore adds value to the "gap_score" field.
func (_u *AnalysisEventUpdate) AddGapScore(v float64) *AnalysisEventUpdate {
	_u.mutation.AddGapScore(v)
	return _u
}

// SetHasScore sets the "has_score" field.
func (_u *AnalysisEventUpdate) SetHasScore(v bool) *AnalysisEventUpdate {
	_u.mutation.SetHasScore(v)
	return _u
}

// SetNillableHasScore sets the "has_score" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableHasScore(v *bool) *AnalysisEventUpdate {
	if v != nil {
		_u.SetHasScore(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AnalysisEventUpdate) SetLatencyMs(v int64) *AnalysisEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableLatencyMs(v *int64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AnalysisEventUpdate) AddLatencyMs(v int64) *AnalysisEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AnalysisEventUpdate) SetSuccess(v bool) *AnalysisEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableSuccess(v *bool) *AnalysisEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisEventUpdate) SetErrorMessage(v string) *AnalysisEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableErrorMessage(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdate) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnalysisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(analysisevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetRole(); ok {
		_spec.SetField(analysisevent.FieldTargetRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.GapScore(); ok {
		_spec.SetField(analysisevent.FieldGapScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGapScore(); ok {
		_spec.AddField(analysisevent.FieldGapScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HasScore(); ok {
		_spec.SetField(analysisevent.FieldHasScore, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(analysisevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(analysisevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(analysisevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisEventUpdateOne is the builder for updating a single AnalysisEvent entity.
type AnalysisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *AnalysisEventUpdateOne) SetProfileID(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableProfileID(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetTargetRole sets the "target_role" field.
func (_u *AnalysisEventUpdateOne) SetTargetRole(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetTargetRole(v)
	return _u
}

// SetNillableTargetRole sets the "target_role" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableTargetRole(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetTargetRole(*v)
	}
	return _u
}

// SetGapScore sets the "gap_score" field.
func (_u *AnalysisEventUpdateOne) SetGapScore(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetGapScore()
	_u.mutation.SetGapScore(v)
	return _u
}

// SetNillableGapScore sets the "gap_score" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableGapScore(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetGapScore(*v)
	}
	return _u
}

// AddGapScore adds value to the "gap_score" field.
func (_u *AnalysisEventUpdateOne) AddGapScore(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddGapScore(v)
	return _u
}

// SetHasScore sets the "has_score" field.
func (_u *AnalysisEventUpdateOne) SetHasScore(v bool) *AnalysisEventUpdateOne {
	_u.mutation.SetHasScore(v)
	return _u
}

// SetNillableHasScore sets the "has_score" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableHasScore(v *bool) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetHasScore(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AnalysisEventUpdateOne) SetLatencyMs(v int64) *AnalysisEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableLatencyMs(v *int64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AnalysisEventUpdateOne) AddLatencyMs(v int64) *AnalysisEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AnalysisEventUpdateOne) SetSuccess(v bool) *AnalysisEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableSuccess(v *bool) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisEventUpdateOne) SetErrorMessage(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableErrorMessage(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdateOne) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdateOne) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisEventUpdateOne) Select(field string, fields ...string) *AnalysisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisEvent entity.
func (_u *AnalysisEventUpdateOne) Save(ctx context.Context) (*AnalysisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) SaveX(ctx context.Context) *AnalysisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnalysisEventUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisevent.FieldID)
		for _, f := range fields {
			if !analysisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisevent.FieldID {
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
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(analysisevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetRole(); ok {
		_spec.SetField(analysisevent.FieldTargetRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.GapScore(); ok {
		_spec.SetField(analysisevent.FieldGapScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGapScore(); ok {
		_spec.AddField(analysisevent.FieldGapScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HasScore(); ok {
		_spec.SetField(analysisevent.FieldHasScore, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(analysisevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(analysisevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(analysisevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &AnalysisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
