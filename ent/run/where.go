// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSessionID, v))
}

// ParentRunID applies equality check predicate on the "parent_run_id" field. It's identical to ParentRunIDEQ.
func ParentRunID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldParentRunID, v))
}

// TriggerSource applies equality check predicate on the "trigger_source" field. It's identical to TriggerSourceEQ.
func TriggerSource(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTriggerSource, v))
}

// InputMessage applies equality check predicate on the "input_message" field. It's identical to InputMessageEQ.
func InputMessage(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldInputMessage, v))
}

// CheckpointThread applies equality check predicate on the "checkpoint_thread" field. It's identical to CheckpointThreadEQ.
func CheckpointThread(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCheckpointThread, v))
}

// CheckpointNs applies equality check predicate on the "checkpoint_ns" field. It's identical to CheckpointNsEQ.
func CheckpointNs(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCheckpointNs, v))
}

// LatestError applies equality check predicate on the "latest_error" field. It's identical to LatestErrorEQ.
func LatestError(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLatestError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldFinishedAt, v))
}

// StateChangedAt applies equality check predicate on the "state_changed_at" field. It's identical to StateChangedAtEQ.
func StateChangedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStateChangedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldSessionID, v))
}

// ParentRunIDEQ applies the EQ predicate on the "parent_run_id" field.
func ParentRunIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldParentRunID, v))
}

// ParentRunIDNEQ applies the NEQ predicate on the "parent_run_id" field.
func ParentRunIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldParentRunID, v))
}

// ParentRunIDIn applies the In predicate on the "parent_run_id" field.
func ParentRunIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldParentRunID, vs...))
}

// ParentRunIDNotIn applies the NotIn predicate on the "parent_run_id" field.
func ParentRunIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldParentRunID, vs...))
}

// ParentRunIDGT applies the GT predicate on the "parent_run_id" field.
func ParentRunIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldParentRunID, v))
}

// ParentRunIDGTE applies the GTE predicate on the "parent_run_id" field.
func ParentRunIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldParentRunID, v))
}

// ParentRunIDLT applies the LT predicate on the "parent_run_id" field.
func ParentRunIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldParentRunID, v))
}

// ParentRunIDLTE applies the LTE predicate on the "parent_run_id" field.
func ParentRunIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldParentRunID, v))
}

// ParentRunIDContains applies the Contains predicate on the "parent_run_id" field.
func ParentRunIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldParentRunID, v))
}

// ParentRunIDHasPrefix applies the HasPrefix predicate on the "parent_run_id" field.
func ParentRunIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldParentRunID, v))
}

// ParentRunIDHasSuffix applies the HasSuffix predicate on the "parent_run_id" field.
func ParentRunIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldParentRunID, v))
}

// ParentRunIDIsNil applies the IsNil predicate on the "parent_run_id" field.
func ParentRunIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldParentRunID))
}

// ParentRunIDNotNil applies the NotNil predicate on the "parent_run_id" field.
func ParentRunIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldParentRunID))
}

// ParentRunIDEqualFold applies the EqualFold predicate on the "parent_run_id" field.
func ParentRunIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldParentRunID, v))
}

// ParentRunIDContainsFold applies the ContainsFold predicate on the "parent_run_id" field.
func ParentRunIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldParentRunID, v))
}

// TriggerSourceEQ applies the EQ predicate on the "trigger_source" field.
func TriggerSourceEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTriggerSource, v))
}

// TriggerSourceNEQ applies the NEQ predicate on the "trigger_source" field.
func TriggerSourceNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldTriggerSource, v))
}

// TriggerSourceIn applies the In predicate on the "trigger_source" field.
func TriggerSourceIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldTriggerSource, vs...))
}

// TriggerSourceNotIn applies the NotIn predicate on the "trigger_source" field.
func TriggerSourceNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldTriggerSource, vs...))
}

// TriggerSourceGT applies the GT predicate on the "trigger_source" field.
func TriggerSourceGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldTriggerSource, v))
}

// TriggerSourceGTE applies the GTE predicate on the "trigger_source" field.
func TriggerSourceGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldTriggerSource, v))
}

// TriggerSourceLT applies the LT predicate on the "trigger_source" field.
func TriggerSourceLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldTriggerSource, v))
}

// TriggerSourceLTE applies the LTE predicate on the "trigger_source" field.
func TriggerSourceLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldTriggerSource, v))
}

// TriggerSourceContains applies the Contains predicate on the "trigger_source" field.
func TriggerSourceContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldTriggerSource, v))
}

// TriggerSourceHasPrefix applies the HasPrefix predicate on the "trigger_source" field.
func TriggerSourceHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldTriggerSource, v))
}

// TriggerSourceHasSuffix applies the HasSuffix predicate on the "trigger_source" field.
func TriggerSourceHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldTriggerSource, v))
}

// TriggerSourceEqualFold applies the EqualFold predicate on the "trigger_source" field.
func TriggerSourceEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldTriggerSource, v))
}

// TriggerSourceContainsFold applies the ContainsFold predicate on the "trigger_source" field.
func TriggerSourceContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldTriggerSource, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStatus, vs...))
}

// InputMessageEQ applies the EQ predicate on the "input_message" field.
func InputMessageEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldInputMessage, v))
}

// InputMessageNEQ applies the NEQ predicate on the "input_message" field.
func InputMessageNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldInputMessage, v))
}

// InputMessageIn applies the In predicate on the "input_message" field.
func InputMessageIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldInputMessage, vs...))
}

// InputMessageNotIn applies the NotIn predicate on the "input_message" field.
func InputMessageNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldInputMessage, vs...))
}

// InputMessageGT applies the GT predicate on the "input_message" field.
func InputMessageGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldInputMessage, v))
}

// InputMessageGTE applies the GTE predicate on the "input_message" field.
func InputMessageGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldInputMessage, v))
}

// InputMessageLT applies the LT predicate on the "input_message" field.
func InputMessageLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldInputMessage, v))
}

// InputMessageLTE applies the LTE predicate on the "input_message" field.
func InputMessageLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldInputMessage, v))
}

// InputMessageContains applies the Contains predicate on the "input_message" field.
func InputMessageContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldInputMessage, v))
}

// InputMessageHasPrefix applies the HasPrefix predicate on the "input_message" field.
func InputMessageHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldInputMessage, v))
}

// InputMessageHasSuffix applies the HasSuffix predicate on the "input_message" field.
func InputMessageHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldInputMessage, v))
}

// InputMessageIsNil applies the IsNil predicate on the "input_message" field.
func InputMessageIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldInputMessage))
}

// InputMessageNotNil applies the NotNil predicate on the "input_message" field.
func InputMessageNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldInputMessage))
}

// InputMessageEqualFold applies the EqualFold predicate on the "input_message" field.
func InputMessageEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldInputMessage, v))
}

// InputMessageContainsFold applies the ContainsFold predicate on the "input_message" field.
func InputMessageContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldInputMessage, v))
}

// ResumePayloadIsNil applies the IsNil predicate on the "resume_payload" field.
func ResumePayloadIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldResumePayload))
}

// ResumePayloadNotNil applies the NotNil predicate on the "resume_payload" field.
func ResumePayloadNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldResumePayload))
}

// CheckpointThreadEQ applies the EQ predicate on the "checkpoint_thread" field.
func CheckpointThreadEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCheckpointThread, v))
}

// CheckpointThreadNEQ applies the NEQ predicate on the "checkpoint_thread" field.
func CheckpointThreadNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCheckpointThread, v))
}

// CheckpointThreadIn applies the In predicate on the "checkpoint_thread" field.
func CheckpointThreadIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCheckpointThread, vs...))
}

// CheckpointThreadNotIn applies the NotIn predicate on the "checkpoint_thread" field.
func CheckpointThreadNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCheckpointThread, vs...))
}

// CheckpointThreadGT applies the GT predicate on the "checkpoint_thread" field.
func CheckpointThreadGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCheckpointThread, v))
}

// CheckpointThreadGTE applies the GTE predicate on the "checkpoint_thread" field.
func CheckpointThreadGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCheckpointThread, v))
}

// CheckpointThreadLT applies the LT predicate on the "checkpoint_thread" field.
func CheckpointThreadLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCheckpointThread, v))
}

// CheckpointThreadLTE applies the LTE predicate on the "checkpoint_thread" field.
func CheckpointThreadLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCheckpointThread, v))
}

// CheckpointThreadContains applies the Contains predicate on the "checkpoint_thread" field.
func CheckpointThreadContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldCheckpointThread, v))
}

// CheckpointThreadHasPrefix applies the HasPrefix predicate on the "checkpoint_thread" field.
func CheckpointThreadHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldCheckpointThread, v))
}

// CheckpointThreadHasSuffix applies the HasSuffix predicate on the "checkpoint_thread" field.
func CheckpointThreadHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldCheckpointThread, v))
}

// CheckpointThreadEqualFold applies the EqualFold predicate on the "checkpoint_thread" field.
func CheckpointThreadEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldCheckpointThread, v))
}

// CheckpointThreadContainsFold applies the ContainsFold predicate on the "checkpoint_thread" field.
func CheckpointThreadContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldCheckpointThread, v))
}

// CheckpointNsEQ applies the EQ predicate on the "checkpoint_ns" field.
func CheckpointNsEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCheckpointNs, v))
}

// CheckpointNsNEQ applies the NEQ predicate on the "checkpoint_ns" field.
func CheckpointNsNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCheckpointNs, v))
}

// CheckpointNsIn applies the In predicate on the "checkpoint_ns" field.
func CheckpointNsIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCheckpointNs, vs...))
}

// CheckpointNsNotIn applies the NotIn predicate on the "checkpoint_ns" field.
func CheckpointNsNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCheckpointNs, vs...))
}

// CheckpointNsGT applies the GT predicate on the "checkpoint_ns" field.
func CheckpointNsGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCheckpointNs, v))
}

// CheckpointNsGTE applies the GTE predicate on the "checkpoint_ns" field.
func CheckpointNsGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCheckpointNs, v))
}

// CheckpointNsLT applies the LT predicate on the "checkpoint_ns" field.
func CheckpointNsLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCheckpointNs, v))
}

// CheckpointNsLTE applies the LTE predicate on the "checkpoint_ns" field.
func CheckpointNsLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCheckpointNs, v))
}

// CheckpointNsContains applies the Contains predicate on the "checkpoint_ns" field.
func CheckpointNsContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldCheckpointNs, v))
}

// CheckpointNsHasPrefix applies the HasPrefix predicate on the "checkpoint_ns" field.
func CheckpointNsHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldCheckpointNs, v))
}

// CheckpointNsHasSuffix applies the HasSuffix predicate on the "checkpoint_ns" field.
func CheckpointNsHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldCheckpointNs, v))
}

// CheckpointNsIsNil applies the IsNil predicate on the "checkpoint_ns" field.
func CheckpointNsIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCheckpointNs))
}

// CheckpointNsNotNil applies the NotNil predicate on the "checkpoint_ns" field.
func CheckpointNsNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCheckpointNs))
}

// CheckpointNsEqualFold applies the EqualFold predicate on the "checkpoint_ns" field.
func CheckpointNsEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldCheckpointNs, v))
}

// CheckpointNsContainsFold applies the ContainsFold predicate on the "checkpoint_ns" field.
func CheckpointNsContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldCheckpointNs, v))
}

// LatestErrorEQ applies the EQ predicate on the "latest_error" field.
func LatestErrorEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLatestError, v))
}

// LatestErrorNEQ applies the NEQ predicate on the "latest_error" field.
func LatestErrorNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldLatestError, v))
}

// LatestErrorIn applies the In predicate on the "latest_error" field.
func LatestErrorIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldLatestError, vs...))
}

// LatestErrorNotIn applies the NotIn predicate on the "latest_error" field.
func LatestErrorNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldLatestError, vs...))
}

// LatestErrorGT applies the GT predicate on the "latest_error" field.
func LatestErrorGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldLatestError, v))
}

// LatestErrorGTE applies the GTE predicate on the "latest_error" field.
func LatestErrorGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldLatestError, v))
}

// LatestErrorLT applies the LT predicate on the "latest_error" field.
func LatestErrorLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldLatestError, v))
}

// LatestErrorLTE applies the LTE predicate on the "latest_error" field.
func LatestErrorLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldLatestError, v))
}

// LatestErrorContains applies the Contains predicate on the "latest_error" field.
func LatestErrorContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldLatestError, v))
}

// LatestErrorHasPrefix applies the HasPrefix predicate on the "latest_error" field.
func LatestErrorHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldLatestError, v))
}

// LatestErrorHasSuffix applies the HasSuffix predicate on the "latest_error" field.
func LatestErrorHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldLatestError, v))
}

// LatestErrorIsNil applies the IsNil predicate on the "latest_error" field.
func LatestErrorIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldLatestError))
}

// LatestErrorNotNil applies the NotNil predicate on the "latest_error" field.
func LatestErrorNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldLatestError))
}

// LatestErrorEqualFold applies the EqualFold predicate on the "latest_error" field.
func LatestErrorEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldLatestError, v))
}

// LatestErrorContainsFold applies the ContainsFold predicate on the "latest_error" field.
func LatestErrorContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldLatestError, v))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldMetrics))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldFinishedAt))
}

// StateChangedAtEQ applies the EQ predicate on the "state_changed_at" field.
func StateChangedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStateChangedAt, v))
}

// StateChangedAtNEQ applies the NEQ predicate on the "state_changed_at" field.
func StateChangedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStateChangedAt, v))
}

// StateChangedAtIn applies the In predicate on the "state_changed_at" field.
func StateChangedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStateChangedAt, vs...))
}

// StateChangedAtNotIn applies the NotIn predicate on the "state_changed_at" field.
func StateChangedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStateChangedAt, vs...))
}

// StateChangedAtGT applies the GT predicate on the "state_changed_at" field.
func StateChangedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStateChangedAt, v))
}

// StateChangedAtGTE applies the GTE predicate on the "state_changed_at" field.
func StateChangedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStateChangedAt, v))
}

// StateChangedAtLT applies the LT predicate on the "state_changed_at" field.
func StateChangedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStateChangedAt, v))
}

// StateChangedAtLTE applies the LTE predicate on the "state_changed_at" field.
func StateChangedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStateChangedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
