// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/priyamvada/skillscope/ent/analysisevent"
	"github.com/priyamvada/skillscope/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisEvent = "AnalysisEvent"
)

// AnalysisEventMutation represents an operation that mutates the AnalysisEvent nodes in the graph.
type AnalysisEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	profile_id    *string
	target_role   *string
	gap_score     *float64
	addgap_score  *float64
	has_score     *bool
	latency_ms    *int64
	addlatency_ms *int64
	success       *bool
	error_message *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AnalysisEvent, error)
	predicates    []predicate.AnalysisEvent
}

var _ ent.Mutation = (*AnalysisEventMutation)(nil)

// analysiseventOption allows management of the mutation configuration using functional options.
type analysiseventOption func(*AnalysisEventMutation)

// newAnalysisEventMutation creates new mutation for the AnalysisEvent entity.
func newAnalysisEventMutation(c config, op Op, opts ...analysiseventOption) *AnalysisEventMutation {
	m := &AnalysisEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisEventID sets the ID field of the mutation.
func withAnalysisEventID(id int) analysiseventOption {
	return func(m *AnalysisEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisEvent
		)
		m.oldValue = func(ctx context.Context) (*AnalysisEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisEvent sets the old AnalysisEvent of the mutation.
func withAnalysisEvent(node *AnalysisEvent) analysiseventOption {
	return func(m *AnalysisEventMutation) {
		m.oldValue = func(context.Context) (*AnalysisEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AnalysisEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AnalysisEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AnalysisEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AnalysisEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AnalysisEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AnalysisEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AnalysisEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AnalysisEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProfileID sets the "profile_id" field.
func (m *AnalysisEventMutation) SetProfileID(s string) {
	m.profile_id = &s
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *AnalysisEventMutation) ProfileID() (r string, exists bool) {
	v := m.profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldProfileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *AnalysisEventMutation) ResetProfileID() {
	m.profile_id = nil
}

// SetTargetRole sets the "target_role" field.
func (m *AnalysisEventMutation) SetTargetRole(s string) {
	m.target_role = &s
}

// TargetRole returns the value of the "target_role" field in the mutation.
func (m *AnalysisEventMutation) TargetRole() (r string, exists bool) {
	v := m.target_role
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetRole returns the old "target_role" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldTargetRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetRole: %w", err)
	}
	return oldValue.TargetRole, nil
}

// ResetTargetRole resets all changes to the "target_role" field.
func (m *AnalysisEventMutation) ResetTargetRole() {
	m.target_role = nil
}

// SetGapScore sets the "gap_score" field.
func (m *AnalysisEventMutation) SetGapScore(f float64) {
	m.gap_score = &f
	m.addgap_score = nil
}

// GapScore returns the value of the "gap_score" field in the mutation.
func (m *AnalysisEventMutation) GapScore() (r float64, exists bool) {
	v := m.gap_score
	if v == nil {
		return
	}
	return *v, true
}

// OldGapScore returns the old "gap_score" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldGapScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGapScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGapScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGapScore: %w", err)
	}
	return oldValue.GapScore, nil
}

// AddGapScore adds f to the "gap_score" field.
func (m *AnalysisEventMutation) AddGapScore(f float64) {
	if m.addgap_score != nil {
		*m.addgap_score += f
	} else {
		m.addgap_score = &f
	}
}

// AddedGapScore returns the value that was added to the "gap_score" field in this mutation.
func (m *AnalysisEventMutation) AddedGapScore() (r float64, exists bool) {
	v := m.addgap_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetGapScore resets all changes to the "gap_score" field.
func (m *AnalysisEventMutation) ResetGapScore() {
	m.gap_score = nil
	m.addgap_score = nil
}

// SetHasScore sets the "has_score" field.
func (m *AnalysisEventMutation) SetHasScore(b bool) {
	m.has_score = &b
}

// HasScore returns the value of the "has_score" field in the mutation.
func (m *AnalysisEventMutation) HasScore() (r bool, exists bool) {
	v := m.has_score
	if v == nil {
		return
	}
	return *v, true
}

// OldHasScore returns the old "has_score" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldHasScore(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasScore: %w", err)
	}
	return oldValue.HasScore, nil
}

// ResetHasScore resets all changes to the "has_score" field.
func (m *AnalysisEventMutation) ResetHasScore() {
	m.has_score = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *AnalysisEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *AnalysisEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *AnalysisEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *AnalysisEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *AnalysisEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *AnalysisEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *AnalysisEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *AnalysisEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AnalysisEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AnalysisEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AnalysisEvent entity.
// If the AnalysisEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AnalysisEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the AnalysisEventMutation builder.
func (m *AnalysisEventMutation) Where(ps ...predicate.AnalysisEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisEvent).
func (m *AnalysisEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, analysisevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, analysisevent.FieldTimestamp)
	}
	if m.profile_id != nil {
		fields = append(fields, analysisevent.FieldProfileID)
	}
	if m.target_role != nil {
		fields = append(fields, analysisevent.FieldTargetRole)
	}
	if m.gap_score != nil {
		fields = append(fields, analysisevent.FieldGapScore)
	}
	if m.has_score != nil {
		fields = append(fields, analysisevent.FieldHasScore)
	}
	if m.latency_ms != nil {
		fields = append(fields, analysisevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, analysisevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, analysisevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisevent.FieldSequence:
		return m.Sequence()
	case analysisevent.FieldTimestamp:
		return m.Timestamp()
	case analysisevent.FieldProfileID:
		return m.ProfileID()
	case analysisevent.FieldTargetRole:
		return m.TargetRole()
	case analysisevent.FieldGapScore:
		return m.GapScore()
	case analysisevent.FieldHasScore:
		return m.HasScore()
	case analysisevent.FieldLatencyMs:
		return m.LatencyMs()
	case analysisevent.FieldSuccess:
		return m.Success()
	case analysisevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisevent.FieldSequence:
		return m.OldSequence(ctx)
	case analysisevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case analysisevent.FieldProfileID:
		return m.OldProfileID(ctx)
	case analysisevent.FieldTargetRole:
		return m.OldTargetRole(ctx)
	case analysisevent.FieldGapScore:
		return m.OldGapScore(ctx)
	case analysisevent.FieldHasScore:
		return m.OldHasScore(ctx)
	case analysisevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case analysisevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case analysisevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case analysisevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case analysisevent.FieldProfileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case analysisevent.FieldTargetRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetRole(v)
		return nil
	case analysisevent.FieldGapScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGapScore(v)
		return nil
	case analysisevent.FieldHasScore:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasScore(v)
		return nil
	case analysisevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case analysisevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case analysisevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, analysisevent.FieldSequence)
	}
	if m.addgap_score != nil {
		fields = append(fields, analysisevent.FieldGapScore)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, analysisevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisevent.FieldSequence:
		return m.AddedSequence()
	case analysisevent.FieldGapScore:
		return m.AddedGapScore()
	case analysisevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case analysisevent.FieldGapScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGapScore(v)
		return nil
	case analysisevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnalysisEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisEventMutation) ResetField(name string) error {
	switch name {
	case analysisevent.FieldSequence:
		m.ResetSequence()
		return nil
	case analysisevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case analysisevent.FieldProfileID:
		m.ResetProfileID()
		return nil
	case analysisevent.FieldTargetRole:
		m.ResetTargetRole()
		return nil
	case analysisevent.FieldGapScore:
		m.ResetGapScore()
		return nil
	case analysisevent.FieldHasScore:
		m.ResetHasScore()
		return nil
	case analysisevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case analysisevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case analysisevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AnalysisEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnalysisEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnalysisEvent edge %s", name)
}
