// Code generated by ent, DO NOT EDIT.

package productdochistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldContainsFold(FieldID, id))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldDocID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldVersion, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldContent, v))
}

// ChangeSummary applies equality check predicate on the "change_summary" field. It's identical to ChangeSummaryEQ.
func ChangeSummary(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldChangeSummary, v))
}

// IsPinned applies equality check predicate on the "is_pinned" field. It's identical to IsPinnedEQ.
func IsPinned(v bool) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldIsPinned, v))
}

// IsReleased applies equality check predicate on the "is_released" field. It's identical to IsReleasedEQ.
func IsReleased(v bool) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldIsReleased, v))
}

// PayloadPrunedAt applies equality check predicate on the "payload_pruned_at" field. It's identical to PayloadPrunedAtEQ.
func PayloadPrunedAt(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldPayloadPrunedAt, v))
}

// ReleasedAt applies equality check predicate on the "released_at" field. It's identical to ReleasedAtEQ.
func ReleasedAt(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldReleasedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotIn(FieldDocID, vs...))
}

// DocIDGT applies the GT predicate on the "doc_id" field.
func DocIDGT(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGT(FieldDocID, v))
}

// DocIDGTE applies the GTE predicate on the "doc_id" field.
func DocIDGTE(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGTE(FieldDocID, v))
}

// DocIDLT applies the LT predicate on the "doc_id" field.
func DocIDLT(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLT(FieldDocID, v))
}

// DocIDLTE applies the LTE predicate on the "doc_id" field.
func DocIDLTE(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLTE(FieldDocID, v))
}

// DocIDContains applies the Contains predicate on the "doc_id" field.
func DocIDContains(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldContains(FieldDocID, v))
}

// DocIDHasPrefix applies the HasPrefix predicate on the "doc_id" field.
func DocIDHasPrefix(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldHasPrefix(FieldDocID, v))
}

// DocIDHasSuffix applies the HasSuffix predicate on the "doc_id" field.
func DocIDHasSuffix(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldHasSuffix(FieldDocID, v))
}

// DocIDEqualFold applies the EqualFold predicate on the "doc_id" field.
func DocIDEqualFold(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEqualFold(FieldDocID, v))
}

// DocIDContainsFold applies the ContainsFold predicate on the "doc_id" field.
func DocIDContainsFold(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldContainsFold(FieldDocID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLTE(FieldVersion, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldContainsFold(FieldContent, v))
}

// StructuredIsNil applies the IsNil predicate on the "structured" field.
func StructuredIsNil() predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIsNull(FieldStructured))
}

// StructuredNotNil applies the NotNil predicate on the "structured" field.
func StructuredNotNil() predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotNull(FieldStructured))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotIn(FieldSource, vs...))
}

// ChangeSummaryEQ applies the EQ predicate on the "change_summary" field.
func ChangeSummaryEQ(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldChangeSummary, v))
}

// ChangeSummaryNEQ applies the NEQ predicate on the "change_summary" field.
func ChangeSummaryNEQ(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNEQ(FieldChangeSummary, v))
}

// ChangeSummaryIn applies the In predicate on the "change_summary" field.
func ChangeSummaryIn(vs ...string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIn(FieldChangeSummary, vs...))
}

// ChangeSummaryNotIn applies the NotIn predicate on the "change_summary" field.
func ChangeSummaryNotIn(vs ...string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotIn(FieldChangeSummary, vs...))
}

// ChangeSummaryGT applies the GT predicate on the "change_summary" field.
func ChangeSummaryGT(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGT(FieldChangeSummary, v))
}

// ChangeSummaryGTE applies the GTE predicate on the "change_summary" field.
func ChangeSummaryGTE(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGTE(FieldChangeSummary, v))
}

// ChangeSummaryLT applies the LT predicate on the "change_summary" field.
func ChangeSummaryLT(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLT(FieldChangeSummary, v))
}

// ChangeSummaryLTE applies the LTE predicate on the "change_summary" field.
func ChangeSummaryLTE(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLTE(FieldChangeSummary, v))
}

// ChangeSummaryContains applies the Contains predicate on the "change_summary" field.
func ChangeSummaryContains(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldContains(FieldChangeSummary, v))
}

// ChangeSummaryHasPrefix applies the HasPrefix predicate on the "change_summary" field.
func ChangeSummaryHasPrefix(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldHasPrefix(FieldChangeSummary, v))
}

// ChangeSummaryHasSuffix applies the HasSuffix predicate on the "change_summary" field.
func ChangeSummaryHasSuffix(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldHasSuffix(FieldChangeSummary, v))
}

// ChangeSummaryIsNil applies the IsNil predicate on the "change_summary" field.
func ChangeSummaryIsNil() predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIsNull(FieldChangeSummary))
}

// ChangeSummaryNotNil applies the NotNil predicate on the "change_summary" field.
func ChangeSummaryNotNil() predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotNull(FieldChangeSummary))
}

// ChangeSummaryEqualFold applies the EqualFold predicate on the "change_summary" field.
func ChangeSummaryEqualFold(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEqualFold(FieldChangeSummary, v))
}

// ChangeSummaryContainsFold applies the ContainsFold predicate on the "change_summary" field.
func ChangeSummaryContainsFold(v string) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldContainsFold(FieldChangeSummary, v))
}

// AffectedPagesIsNil applies the IsNil predicate on the "affected_pages" field.
func AffectedPagesIsNil() predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIsNull(FieldAffectedPages))
}

// AffectedPagesNotNil applies the NotNil predicate on the "affected_pages" field.
func AffectedPagesNotNil() predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotNull(FieldAffectedPages))
}

// IsPinnedEQ applies the EQ predicate on the "is_pinned" field.
func IsPinnedEQ(v bool) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldIsPinned, v))
}

// IsPinnedNEQ applies the NEQ predicate on the "is_pinned" field.
func IsPinnedNEQ(v bool) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNEQ(FieldIsPinned, v))
}

// IsReleasedEQ applies the EQ predicate on the "is_released" field.
func IsReleasedEQ(v bool) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldIsReleased, v))
}

// IsReleasedNEQ applies the NEQ predicate on the "is_released" field.
func IsReleasedNEQ(v bool) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNEQ(FieldIsReleased, v))
}

// PayloadPrunedAtEQ applies the EQ predicate on the "payload_pruned_at" field.
func PayloadPrunedAtEQ(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtNEQ applies the NEQ predicate on the "payload_pruned_at" field.
func PayloadPrunedAtNEQ(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNEQ(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtIn applies the In predicate on the "payload_pruned_at" field.
func PayloadPrunedAtIn(vs ...time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIn(FieldPayloadPrunedAt, vs...))
}

// PayloadPrunedAtNotIn applies the NotIn predicate on the "payload_pruned_at" field.
func PayloadPrunedAtNotIn(vs ...time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotIn(FieldPayloadPrunedAt, vs...))
}

// PayloadPrunedAtGT applies the GT predicate on the "payload_pruned_at" field.
func PayloadPrunedAtGT(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGT(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtGTE applies the GTE predicate on the "payload_pruned_at" field.
func PayloadPrunedAtGTE(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGTE(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtLT applies the LT predicate on the "payload_pruned_at" field.
func PayloadPrunedAtLT(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLT(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtLTE applies the LTE predicate on the "payload_pruned_at" field.
func PayloadPrunedAtLTE(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLTE(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtIsNil applies the IsNil predicate on the "payload_pruned_at" field.
func PayloadPrunedAtIsNil() predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIsNull(FieldPayloadPrunedAt))
}

// PayloadPrunedAtNotNil applies the NotNil predicate on the "payload_pruned_at" field.
func PayloadPrunedAtNotNil() predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotNull(FieldPayloadPrunedAt))
}

// ReleasedAtEQ applies the EQ predicate on the "released_at" field.
func ReleasedAtEQ(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldReleasedAt, v))
}

// ReleasedAtNEQ applies the NEQ predicate on the "released_at" field.
func ReleasedAtNEQ(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNEQ(FieldReleasedAt, v))
}

// ReleasedAtIn applies the In predicate on the "released_at" field.
func ReleasedAtIn(vs ...time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIn(FieldReleasedAt, vs...))
}

// ReleasedAtNotIn applies the NotIn predicate on the "released_at" field.
func ReleasedAtNotIn(vs ...time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotIn(FieldReleasedAt, vs...))
}

// ReleasedAtGT applies the GT predicate on the "released_at" field.
func ReleasedAtGT(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGT(FieldReleasedAt, v))
}

// ReleasedAtGTE applies the GTE predicate on the "released_at" field.
func ReleasedAtGTE(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGTE(FieldReleasedAt, v))
}

// ReleasedAtLT applies the LT predicate on the "released_at" field.
func ReleasedAtLT(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLT(FieldReleasedAt, v))
}

// ReleasedAtLTE applies the LTE predicate on the "released_at" field.
func ReleasedAtLTE(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLTE(FieldReleasedAt, v))
}

// ReleasedAtIsNil applies the IsNil predicate on the "released_at" field.
func ReleasedAtIsNil() predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIsNull(FieldReleasedAt))
}

// ReleasedAtNotNil applies the NotNil predicate on the "released_at" field.
func ReleasedAtNotNil() predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotNull(FieldReleasedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDoc applies the HasEdge predicate on the "doc" edge.
func HasDoc() predicate.ProductDocHistory {
	return predicate.ProductDocHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocTable, DocColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocWith applies the HasEdge predicate on the "doc" edge with a given conditions (other predicates).
func HasDocWith(preds ...predicate.ProductDoc) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(func(s *sql.Selector) {
		step := newDocStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProductDocHistory) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProductDocHistory) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProductDocHistory) predicate.ProductDocHistory {
	return predicate.ProductDocHistory(sql.NotPredicates(p))
}
