// Code generated by ent, DO NOT EDIT.

package pageversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldContainsFold(FieldID, id))
}

// PageID applies equality check predicate on the "page_id" field. It's identical to PageIDEQ.
func PageID(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldPageID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldVersion, v))
}

// HTML applies equality check predicate on the "html" field. It's identical to HTMLEQ.
func HTML(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldHTML, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldDescription, v))
}

// IsPinned applies equality check predicate on the "is_pinned" field. It's identical to IsPinnedEQ.
func IsPinned(v bool) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldIsPinned, v))
}

// IsReleased applies equality check predicate on the "is_released" field. It's identical to IsReleasedEQ.
func IsReleased(v bool) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldIsReleased, v))
}

// PayloadPrunedAt applies equality check predicate on the "payload_pruned_at" field. It's identical to PayloadPrunedAtEQ.
func PayloadPrunedAt(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldPayloadPrunedAt, v))
}

// ReleasedAt applies equality check predicate on the "released_at" field. It's identical to ReleasedAtEQ.
func ReleasedAt(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldReleasedAt, v))
}

// FallbackUsed applies equality check predicate on the "fallback_used" field. It's identical to FallbackUsedEQ.
func FallbackUsed(v bool) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldFallbackUsed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// PageIDEQ applies the EQ predicate on the "page_id" field.
func PageIDEQ(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldPageID, v))
}

// PageIDNEQ applies the NEQ predicate on the "page_id" field.
func PageIDNEQ(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNEQ(FieldPageID, v))
}

// PageIDIn applies the In predicate on the "page_id" field.
func PageIDIn(vs ...string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldIn(FieldPageID, vs...))
}

// PageIDNotIn applies the NotIn predicate on the "page_id" field.
func PageIDNotIn(vs ...string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNotIn(FieldPageID, vs...))
}

// PageIDGT applies the GT predicate on the "page_id" field.
func PageIDGT(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGT(FieldPageID, v))
}

// PageIDGTE applies the GTE predicate on the "page_id" field.
func PageIDGTE(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGTE(FieldPageID, v))
}

// PageIDLT applies the LT predicate on the "page_id" field.
func PageIDLT(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLT(FieldPageID, v))
}

// PageIDLTE applies the LTE predicate on the "page_id" field.
func PageIDLTE(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLTE(FieldPageID, v))
}

// PageIDContains applies the Contains predicate on the "page_id" field.
func PageIDContains(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldContains(FieldPageID, v))
}

// PageIDHasPrefix applies the HasPrefix predicate on the "page_id" field.
func PageIDHasPrefix(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldHasPrefix(FieldPageID, v))
}

// PageIDHasSuffix applies the HasSuffix predicate on the "page_id" field.
func PageIDHasSuffix(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldHasSuffix(FieldPageID, v))
}

// PageIDEqualFold applies the EqualFold predicate on the "page_id" field.
func PageIDEqualFold(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEqualFold(FieldPageID, v))
}

// PageIDContainsFold applies the ContainsFold predicate on the "page_id" field.
func PageIDContainsFold(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldContainsFold(FieldPageID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLTE(FieldVersion, v))
}

// HTMLEQ applies the EQ predicate on the "html" field.
func HTMLEQ(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldHTML, v))
}

// HTMLNEQ applies the NEQ predicate on the "html" field.
func HTMLNEQ(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNEQ(FieldHTML, v))
}

// HTMLIn applies the In predicate on the "html" field.
func HTMLIn(vs ...string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldIn(FieldHTML, vs...))
}

// HTMLNotIn applies the NotIn predicate on the "html" field.
func HTMLNotIn(vs ...string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNotIn(FieldHTML, vs...))
}

// HTMLGT applies the GT predicate on the "html" field.
func HTMLGT(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGT(FieldHTML, v))
}

// HTMLGTE applies the GTE predicate on the "html" field.
func HTMLGTE(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGTE(FieldHTML, v))
}

// HTMLLT applies the LT predicate on the "html" field.
func HTMLLT(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLT(FieldHTML, v))
}

// HTMLLTE applies the LTE predicate on the "html" field.
func HTMLLTE(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLTE(FieldHTML, v))
}

// HTMLContains applies the Contains predicate on the "html" field.
func HTMLContains(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldContains(FieldHTML, v))
}

// HTMLHasPrefix applies the HasPrefix predicate on the "html" field.
func HTMLHasPrefix(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldHasPrefix(FieldHTML, v))
}

// HTMLHasSuffix applies the HasSuffix predicate on the "html" field.
func HTMLHasSuffix(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldHasSuffix(FieldHTML, v))
}

// HTMLIsNil applies the IsNil predicate on the "html" field.
func HTMLIsNil() predicate.PageVersion {
	return predicate.PageVersion(sql.FieldIsNull(FieldHTML))
}

// HTMLNotNil applies the NotNil predicate on the "html" field.
func HTMLNotNil() predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNotNull(FieldHTML))
}

// HTMLEqualFold applies the EqualFold predicate on the "html" field.
func HTMLEqualFold(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEqualFold(FieldHTML, v))
}

// HTMLContainsFold applies the ContainsFold predicate on the "html" field.
func HTMLContainsFold(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldContainsFold(FieldHTML, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.PageVersion {
	return predicate.PageVersion(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldContainsFold(FieldDescription, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNotIn(FieldSource, vs...))
}

// IsPinnedEQ applies the EQ predicate on the "is_pinned" field.
func IsPinnedEQ(v bool) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldIsPinned, v))
}

// IsPinnedNEQ applies the NEQ predicate on the "is_pinned" field.
func IsPinnedNEQ(v bool) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNEQ(FieldIsPinned, v))
}

// IsReleasedEQ applies the EQ predicate on the "is_released" field.
func IsReleasedEQ(v bool) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldIsReleased, v))
}

// IsReleasedNEQ applies the NEQ predicate on the "is_released" field.
func IsReleasedNEQ(v bool) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNEQ(FieldIsReleased, v))
}

// PayloadPrunedAtEQ applies the EQ predicate on the "payload_pruned_at" field.
func PayloadPrunedAtEQ(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtNEQ applies the NEQ predicate on the "payload_pruned_at" field.
func PayloadPrunedAtNEQ(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNEQ(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtIn applies the In predicate on the "payload_pruned_at" field.
func PayloadPrunedAtIn(vs ...time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldIn(FieldPayloadPrunedAt, vs...))
}

// PayloadPrunedAtNotIn applies the NotIn predicate on the "payload_pruned_at" field.
func PayloadPrunedAtNotIn(vs ...time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNotIn(FieldPayloadPrunedAt, vs...))
}

// PayloadPrunedAtGT applies the GT predicate on the "payload_pruned_at" field.
func PayloadPrunedAtGT(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGT(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtGTE applies the GTE predicate on the "payload_pruned_at" field.
func PayloadPrunedAtGTE(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGTE(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtLT applies the LT predicate on the "payload_pruned_at" field.
func PayloadPrunedAtLT(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLT(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtLTE applies the LTE predicate on the "payload_pruned_at" field.
func PayloadPrunedAtLTE(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLTE(FieldPayloadPrunedAt, v))
}

// PayloadPrunedAtIsNil applies the IsNil predicate on the "payload_pruned_at" field.
func PayloadPrunedAtIsNil() predicate.PageVersion {
	return predicate.PageVersion(sql.FieldIsNull(FieldPayloadPrunedAt))
}

// PayloadPrunedAtNotNil applies the NotNil predicate on the "payload_pruned_at" field.
func PayloadPrunedAtNotNil() predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNotNull(FieldPayloadPrunedAt))
}

// ReleasedAtEQ applies the EQ predicate on the "released_at" field.
func ReleasedAtEQ(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldReleasedAt, v))
}

// ReleasedAtNEQ applies the NEQ predicate on the "released_at" field.
func ReleasedAtNEQ(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNEQ(FieldReleasedAt, v))
}

// ReleasedAtIn applies the In predicate on the "released_at" field.
func ReleasedAtIn(vs ...time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldIn(FieldReleasedAt, vs...))
}

// ReleasedAtNotIn applies the NotIn predicate on the "released_at" field.
func ReleasedAtNotIn(vs ...time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNotIn(FieldReleasedAt, vs...))
}

// ReleasedAtGT applies the GT predicate on the "released_at" field.
func ReleasedAtGT(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGT(FieldReleasedAt, v))
}

// ReleasedAtGTE applies the GTE predicate on the "released_at" field.
func ReleasedAtGTE(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGTE(FieldReleasedAt, v))
}

// ReleasedAtLT applies the LT predicate on the "released_at" field.
func ReleasedAtLT(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLT(FieldReleasedAt, v))
}

// ReleasedAtLTE applies the LTE predicate on the "released_at" field.
func ReleasedAtLTE(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLTE(FieldReleasedAt, v))
}

// ReleasedAtIsNil applies the IsNil predicate on the "released_at" field.
func ReleasedAtIsNil() predicate.PageVersion {
	return predicate.PageVersion(sql.FieldIsNull(FieldReleasedAt))
}

// ReleasedAtNotNil applies the NotNil predicate on the "released_at" field.
func ReleasedAtNotNil() predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNotNull(FieldReleasedAt))
}

// FallbackUsedEQ applies the EQ predicate on the "fallback_used" field.
func FallbackUsedEQ(v bool) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldFallbackUsed, v))
}

// FallbackUsedNEQ applies the NEQ predicate on the "fallback_used" field.
func FallbackUsedNEQ(v bool) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNEQ(FieldFallbackUsed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PageVersion {
	return predicate.PageVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPage applies the HasEdge predicate on the "page" edge.
func HasPage() predicate.PageVersion {
	return predicate.PageVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PageTable, PageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPageWith applies the HasEdge predicate on the "page" edge with a given conditions (other predicates).
func HasPageWith(preds ...predicate.Page) predicate.PageVersion {
	return predicate.PageVersion(func(s *sql.Selector) {
		step := newPageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PageVersion) predicate.PageVersion {
	return predicate.PageVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PageVersion) predicate.PageVersion {
	return predicate.PageVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PageVersion) predicate.PageVersion {
	return predicate.PageVersion(sql.NotPredicates(p))
}
