// Code generated by ent, DO NOT EDIT.

package projectsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldSessionID, v))
}

// SnapshotNumber applies equality check predicate on the "snapshot_number" field. It's identical to SnapshotNumberEQ.
func SnapshotNumber(v int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldSnapshotNumber, v))
}

// DocContent applies equality check predicate on the "doc_content" field. It's identical to DocContentEQ.
func DocContent(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldDocContent, v))
}

// DocVersion applies equality check predicate on the "doc_version" field. It's identical to DocVersionEQ.
func DocVersion(v int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldDocVersion, v))
}

// IsPinned applies equality check predicate on the "is_pinned" field. It's identical to IsPinnedEQ.
func IsPinned(v bool) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldIsPinned, v))
}

// IsReleased applies equality check predicate on the "is_released" field. It's identical to IsReleasedEQ.
func IsReleased(v bool) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldIsReleased, v))
}

// PayloadPrunedAt applies equality check predicate on the "payload_pruned_at" field. It's identical to PayloadPrunedAtEQ.
func PayloadPrunedAt(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldPayloadPrunedAt, v))
}

// ReleasedAt applies equality check predicate on the "released_at" field. It's identical to ReleasedAtEQ.
func ReleasedAt(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldReleasedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldContainsFold(FieldSessionID, v))
}

// SnapshotNumberEQ applies the EQ predicate on the "snapshot_number" field.
func SnapshotNumberEQ(v int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldSnapshotNumber, v))
}

// SnapshotNumberNEQ applies the NEQ predicate on the "snapshot_number" field.
func SnapshotNumberNEQ(v int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNEQ(FieldSnapshotNumber, v))
}

// SnapshotNumberIn applies the In predicate on the "snapshot_number" field.
func SnapshotNumberIn(vs ...int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIn(FieldSnapshotNumber, vs...))
}

// SnapshotNumberNotIn applies the NotIn predicate on the "snapshot_number" field.
func SnapshotNumberNotIn(vs ...int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotIn(FieldSnapshotNumber, vs...))
}

// SnapshotNumberGT applies the GT predicate on the "snapshot_number" field.
func SnapshotNumberGT(v int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGT(FieldSnapshotNumber, v))
}

// SnapshotNumberGTE applies the GTE predicate on the "snapshot_number" field.
func SnapshotNumberGTE(v int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGTE(FieldSnapshotNumber, v))
}

// SnapshotNumberLT applies the LT predicate on the "snapshot_number" field.
func SnapshotNumberLT(v int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLT(FieldSnapshotNumber, v))
}

// SnapshotNumberLTE applies the LTE predicate on the "snapshot_number" field.
func SnapshotNumberLTE(v int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLTE(FieldSnapshotNumber, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotIn(FieldSource, vs...))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelIsNil applies the IsNil predicate on the "label" field.
func LabelIsNil() predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIsNull(FieldLabel))
}

// LabelNotNil applies the NotNil predicate on the "label" field.
func LabelNotNil() predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotNull(FieldLabel))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldContainsFold(FieldLabel, v))
}

// DocContentEQ applies the EQ predicate on the "doc_content" field.
func DocContentEQ(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldDocContent, v))
}

// DocContentNEQ applies the NEQ predicate on the "doc_content" field.
func DocContentNEQ(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNEQ(FieldDocContent, v))
}

// DocContentIn applies the In predicate on the "doc_content" field.
func DocContentIn(vs ...string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIn(FieldDocContent, vs...))
}

// DocContentNotIn applies the NotIn predicate on the "doc_content" field.
func DocContentNotIn(vs ...string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotIn(FieldDocContent, vs...))
}

// DocContentGT applies the GT predicate on the "doc_content" field.
func DocContentGT(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGT(FieldDocContent, v))
}

// DocContentGTE applies the GTE predicate on the "doc_content" field.
func DocContentGTE(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGTE(FieldDocContent, v))
}

// DocContentLT applies the LT predicate on the "doc_content" field.
func DocContentLT(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLT(FieldDocContent, v))
}

// DocContentLTE applies the LTE predicate on the "doc_content" field.
func DocContentLTE(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLTE(FieldDocContent, v))
}

// DocContentContains applies the Contains predicate on the "doc_content" field.
func DocContentContains(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldContains(FieldDocContent, v))
}

// DocContentHasPrefix applies the HasPrefix predicate on the "doc_content" field.
func DocContentHasPrefix(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldHasPrefix(FieldDocContent, v))
}

// DocContentHasSuffix applies the HasSuffix predicate on the "doc_content" field.
func DocContentHasSuffix(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldHasSuffix(FieldDocContent, v))
}

// DocContentIsNil applies the IsNil predicate on the "doc_content" field.
func DocContentIsNil() predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIsNull(FieldDocContent))
}

// DocContentNotNil applies the NotNil predicate on the "doc_content" field.
func DocContentNotNil() predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotNull(FieldDocContent))
}

// DocContentEqualFold applies the EqualFold predicate on the "doc_content" field.
func DocContentEqualFold(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEqualFold(FieldDocContent, v))
}

// DocContentContainsFold applies the ContainsFold predicate on the "doc_content" field.
func DocContentContainsFold(v string) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldContainsFold(FieldDocContent, v))
}

// DocStructuredIsNil applies the IsNil predicate on the "doc_structured" field.
func DocStructuredIsNil() predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIsNull(FieldDocStructured))
}

// DocStructuredNotNil applies the NotNil predicate on the "doc_structured" field.
func DocStructuredNotNil() predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotNull(FieldDocStructured))
}

// DocVersionEQ applies the EQ predicate on the "doc_version" field.
func DocVersionEQ(v int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldDocVersion, v))
}

// DocVersionNEQ applies the NEQ predicate on the "doc_version" field.
func DocVersionNEQ(v int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNEQ(FieldDocVersion, v))
}

// DocVersionIn applies the In predicate on the "doc_version" field.
func DocVersionIn(vs ...int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIn(FieldDocVersion, vs...))
}

// DocVersionNotIn applies the NotIn predicate on the "doc_version" field.
func DocVersionNotIn(vs ...int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotIn(FieldDocVersion, vs...))
}

// DocVersionGT applies the GT predicate on the "doc_version" field.
func DocVersionGT(v int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGT(FieldDocVersion, v))
}

// DocVersionGTE applies the GTE predicate on the "doc_version" field.
func DocVersionGTE(v int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGTE(FieldDocVersion, v))
}

// DocVersionLT applies the LT predicate on the "doc_version" field.
func DocVersionLT(v int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLT(FieldDocVersion, v))
}

// DocVersionLTE applies the LTE predicate on the "doc_version" field.
func DocVersionLTE(v int) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLTE(FieldDocVersion, v))
}

// PagesIsNil applies the IsNil predicate on the "pages" field.
func PagesIsNil() predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIsNull(FieldPages))
}

// PagesNotNil applies the NotNil predicate on the "pages" field.
func PagesNotNil() predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotNull(FieldPages))
}

// IsPinnedEQ applies the EQ predicate on the "is_pinned" field.
func IsPinnedEQ(v bool) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldIsPinned, v))
}

// IsPinnedNEQ applies the NEQ predicate on the "is_pinned" field.
func IsPinnedNEQ(v bool) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNEQ(FieldIsPinned, v))
}

// IsReleasedEQ applies the EQ predicate on the "is_released" field.
func IsReleasedEQ(v bool) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldIsReleased, v))
}

// IsReleasedNEQ applies the NEQ predicate on the "is_released" field.
func IsReleasedNEQ(v bool) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNEQ(FieldIsReleased, v))
}

// PayloadPrunedAtEQ applies the EQ predicate on the "payload_pruned_at" field.
func PayloadPrunedAtEQ(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtNEQ applies the NEQ predicate on the "payload_pruned_at" field.
func PayloadPrunedAtNEQ(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNEQ(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtIn applies the In predicate on the "payload_pruned_at" field.
func PayloadPrunedAtIn(vs ...time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIn(FieldPayloadPrunedAt, vs...))
}

// PayloadPrunedAtNotIn applies the NotIn predicate on the "payload_pruned_at" field.
func PayloadPrunedAtNotIn(vs ...time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotIn(FieldPayloadPrunedAt, vs...))
}

// PayloadPrunedAtGT applies the GT predicate on the "payload_pruned_at" field.
func PayloadPrunedAtGT(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGT(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtGTE applies the GTE predicate on the "payload_pruned_at" field.
func PayloadPrunedAtGTE(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGTE(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtLT applies the LT predicate on the "payload_pruned_at" field.
func PayloadPrunedAtLT(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLT(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtLTE applies the LTE predicate on the "payload_pruned_at" field.
func PayloadPrunedAtLTE(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLTE(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtIsNil applies the IsNil predicate on the "payload_pruned_at" field.
func PayloadPrunedAtIsNil() predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIsNull(FieldPayloadPrunedAt))
}

// PayloadPrunedAtNotNil applies the NotNil predicate on the "payload_pruned_at" field.
func PayloadPrunedAtNotNil() predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotNull(FieldPayloadPrunedAt))
}

// ReleasedAtEQ applies the EQ predicate on the "released_at" field.
func ReleasedAtEQ(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldReleasedAt, v))
}

// ReleasedAtNEQ applies the NEQ predicate on the "released_at" field.
func ReleasedAtNEQ(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNEQ(FieldReleasedAt, v))
}

// ReleasedAtIn applies the In predicate on the "released_at" field.
func ReleasedAtIn(vs ...time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIn(FieldReleasedAt, vs...))
}

// ReleasedAtNotIn applies the NotIn predicate on the "released_at" field.
func ReleasedAtNotIn(vs ...time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotIn(FieldReleasedAt, vs...))
}

// ReleasedAtGT applies the GT predicate on the "released_at" field.
func ReleasedAtGT(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGT(FieldReleasedAt, v))
}

// ReleasedAtGTE applies the GTE predicate on the "released_at" field.
func ReleasedAtGTE(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGTE(FieldReleasedAt, v))
}

// ReleasedAtLT applies the LT predicate on the "released_at" field.
func ReleasedAtLT(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLT(FieldReleasedAt, v))
}

// ReleasedAtLTE applies the LTE predicate on the "released_at" field.
func ReleasedAtLTE(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLTE(FieldReleasedAt, v))
}

// ReleasedAtIsNil applies the IsNil predicate on the "released_at" field.
func ReleasedAtIsNil() predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIsNull(FieldReleasedAt))
}

// ReleasedAtNotNil applies the NotNil predicate on the "released_at" field.
func ReleasedAtNotNil() predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotNull(FieldReleasedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProjectSnapshot) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProjectSnapshot) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProjectSnapshot) predicate.ProjectSnapshot {
	return predicate.ProjectSnapshot(sql.NotPredicates(p))
}
