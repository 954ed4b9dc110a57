// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/priyamvada/skillscope/ent/analysisevent"
)

// AnalysisEvent is the model entity for the AnalysisEvent schema.
type AnalysisEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Server-assigned id of the analyzed profile
	ProfileID string `json:"profile_id,omitempty"`
	// Role name the profile was analyzed against
	TargetRole string `json:"target_role,omitempty"`
	// Overall gap score of the result, 0 when unavailable
	GapScore float64 `json:"gap_score,omitempty"`
	// Whether the result carried a gap score
	HasScore bool `json:"has_score,omitempty"`
	// Wall-clock time for the request
	LatencyMs int64 `json:"latency_ms,omitempty"`
	// Whether the request succeeded
	Success bool `json:"success,omitempty"`
	// Error message if failed
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisevent.FieldHasScore, analysisevent.FieldSuccess:
			values[i] = new(sql.NullBool)
		case analysisevent.FieldGapScore:
			values[i] = new(sql.NullFloat64)
		case analysisevent.FieldID, analysisevent.FieldSequence, analysisevent.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case analysisevent.FieldProfileID, analysisevent.FieldTargetRole, analysisevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case analysisevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisEvent fields.
func (_m *AnalysisEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysisevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case analysisevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case analysisevent.FieldProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				_m.ProfileID = value.String
			}
		case analysisevent.FieldTargetRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_role", values[i])
			} else if value.Valid {
				_m.TargetRole = value.String
			}
		case analysisevent.FieldGapScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gap_score", values[i])
			} else if value.Valid {
				_m.GapScore = value.Float64
			}
		case analysisevent.FieldHasScore:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_score", values[i])
			} else if value.Valid {
				_m.HasScore = value.Bool
			}
		case analysisevent.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = value.Int64
			}
		case analysisevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case analysisevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalysisEvent.
// Note that you need to call AnalysisEvent.Unwrap() before calling this method if this AnalysisEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisEvent) Update() *AnalysisEventUpdateOne {
	return NewAnalysisEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisEvent) Unwrap() *AnalysisEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("profile_id=")
	builder.WriteString(_m.ProfileID)
	builder.WriteString(", ")
	builder.WriteString("target_role=")
	builder.WriteString(_m.TargetRole)
	builder.WriteString(", ")
	builder.WriteString("gap_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.GapScore))
	builder.WriteString(", ")
	builder.WriteString("has_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasScore))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisEvents is a parsable slice of AnalysisEvent.
type AnalysisEvents []*AnalysisEvent
