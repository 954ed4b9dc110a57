// Code generated by ent, DO NOT EDIT.

package analysisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/priyamvada/skillscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldProfileID, v))
}

// TargetRole applies equality check predicate on the "target_role" field. It's identical to TargetRoleEQ.
func TargetRole(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTargetRole, v))
}

// GapScore applies equality check predicate on the "gap_score" field. It's identical to GapScoreEQ.
func GapScore(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldGapScore, v))
}

// HasScore applies equality check predicate on the "has_score" field. It's identical to HasScoreEQ.
func HasScore(v bool) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldHasScore, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldProfileID, v))
}

// ProfileIDContains applies the Contains predicate on the "profile_id" field.
func ProfileIDContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldProfileID, v))
}

// ProfileIDHasPrefix applies the HasPrefix predicate on the "profile_id" field.
func ProfileIDHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldProfileID, v))
}

// ProfileIDHasSuffix applies the HasSuffix predicate on the "profile_id" field.
func ProfileIDHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldProfileID, v))
}

// ProfileIDEqualFold applies the EqualFold predicate on the "profile_id" field.
func ProfileIDEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldProfileID, v))
}

// ProfileIDContainsFold applies the ContainsFold predicate on the "profile_id" field.
func ProfileIDContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldProfileID, v))
}

// TargetRoleEQ applies the EQ predicate on the "target_role" field.
func TargetRoleEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTargetRole, v))
}

// TargetRoleNEQ applies the NEQ predicate on the "target_role" field.
func TargetRoleNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldTargetRole, v))
}

// TargetRoleIn applies the In predicate on the "target_role" field.
func TargetRoleIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldTargetRole, vs...))
}

// TargetRoleNotIn applies the NotIn predicate on the "target_role" field.
func TargetRoleNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldTargetRole, vs...))
}

// TargetRoleGT applies the GT predicate on the "target_role" field.
func TargetRoleGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldTargetRole, v))
}

// TargetRoleGTE applies the GTE predicate on the "target_role" field.
func TargetRoleGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldTargetRole, v))
}

// TargetRoleLT applies the LT predicate on the "target_role" field.
func TargetRoleLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldTargetRole, v))
}

// TargetRoleLTE applies the LTE predicate on the "target_role" field.
func TargetRoleLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldTargetRole, v))
}

// TargetRoleContains applies the Contains predicate on the "target_role" field.
func TargetRoleContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldTargetRole, v))
}

// TargetRoleHasPrefix applies the HasPrefix predicate on the "target_role" field.
func TargetRoleHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldTargetRole, v))
}

// TargetRoleHasSuffix applies the HasSuffix predicate on the "target_role" field.
func TargetRoleHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldTargetRole, v))
}

// TargetRoleEqualFold applies the EqualFold predicate on the "target_role" field.
func TargetRoleEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldTargetRole, v))
}

// TargetRoleContainsFold applies the ContainsFold predicate on the "target_role" field.
func TargetRoleContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldTargetRole, v))
}

// GapScoreEQ applies the EQ predicate on the "gap_score" field.
func GapScoreEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldGapScore, v))
}

// GapScoreNEQ applies the NEQ predicate on the "gap_score" field.
func GapScoreNEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldGapScore, v))
}

// GapScoreIn applies the In predicate on the "gap_score" field.
func GapScoreIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldGapScore, vs...))
}

// GapScoreNotIn applies the NotIn predicate on the "gap_score" field.
func GapScoreNotIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldGapScore, vs...))
}

// GapScoreGT applies the GT predicate on the "gap_score" field.
func GapScoreGT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldGapScore, v))
}

// GapScoreGTE applies the GTE predicate on the "gap_score" field.
func GapScoreGTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldGapScore, v))
}

// GapScoreLT applies the LT predicate on the "gap_score" field.
func GapScoreLT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldGapScore, v))
}

// GapScoreLTE applies the LTE predicate on the "gap_score" field.
func GapScoreLTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldGapScore, v))
}

// HasScoreEQ applies the EQ predicate on the "has_score" field.
func HasScoreEQ(v bool) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldHasScore, v))
}

// HasScoreNEQ applies the NEQ predicate on the "has_score" field.
func HasScoreNEQ(v bool) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldHasScore, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.NotPredicates(p))
}
