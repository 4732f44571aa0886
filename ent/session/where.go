// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTitle, v))
}

// ProductType applies equality check predicate on the "product_type" field. It's identical to ProductTypeEQ.
func ProductType(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProductType, v))
}

// Complexity applies equality check predicate on the "complexity" field. It's identical to ComplexityEQ.
func Complexity(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldComplexity, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSkillID, v))
}

// DocTier applies equality check predicate on the "doc_tier" field. It's identical to DocTierEQ.
func DocTier(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDocTier, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTitle, v))
}

// ProductTypeEQ applies the EQ predicate on the "product_type" field.
func ProductTypeEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProductType, v))
}

// ProductTypeNEQ applies the NEQ predicate on the "product_type" field.
func ProductTypeNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldProductType, v))
}

// ProductTypeIn applies the In predicate on the "product_type" field.
func ProductTypeIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldProductType, vs...))
}

// ProductTypeNotIn applies the NotIn predicate on the "product_type" field.
func ProductTypeNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldProductType, vs...))
}

// ProductTypeGT applies the GT predicate on the "product_type" field.
func ProductTypeGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldProductType, v))
}

// ProductTypeGTE applies the GTE predicate on the "product_type" field.
func ProductTypeGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldProductType, v))
}

// ProductTypeLT applies the LT predicate on the "product_type" field.
func ProductTypeLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldProductType, v))
}

// ProductTypeLTE applies the LTE predicate on the "product_type" field.
func ProductTypeLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldProductType, v))
}

// ProductTypeContains applies the Contains predicate on the "product_type" field.
func ProductTypeContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldProductType, v))
}

// ProductTypeHasPrefix applies the HasPrefix predicate on the "product_type" field.
func ProductTypeHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldProductType, v))
}

// ProductTypeHasSuffix applies the HasSuffix predicate on the "product_type" field.
func ProductTypeHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldProductType, v))
}

// ProductTypeIsNil applies the IsNil predicate on the "product_type" field.
func ProductTypeIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldProductType))
}

// ProductTypeNotNil applies the NotNil predicate on the "product_type" field.
func ProductTypeNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldProductType))
}

// ProductTypeEqualFold applies the EqualFold predicate on the "product_type" field.
func ProductTypeEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldProductType, v))
}

// ProductTypeContainsFold applies the ContainsFold predicate on the "product_type" field.
func ProductTypeContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldProductType, v))
}

// ComplexityEQ applies the EQ predicate on the "complexity" field.
func ComplexityEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldComplexity, v))
}

// ComplexityNEQ applies the NEQ predicate on the "complexity" field.
func ComplexityNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldComplexity, v))
}

// ComplexityIn applies the In predicate on the "complexity" field.
func ComplexityIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldComplexity, vs...))
}

// ComplexityNotIn applies the NotIn predicate on the "complexity" field.
func ComplexityNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldComplexity, vs...))
}

// ComplexityGT applies the GT predicate on the "complexity" field.
func ComplexityGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldComplexity, v))
}

// ComplexityGTE applies the GTE predicate on the "complexity" field.
func ComplexityGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldComplexity, v))
}

// ComplexityLT applies the LT predicate on the "complexity" field.
func ComplexityLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldComplexity, v))
}

// ComplexityLTE applies the LTE predicate on the "complexity" field.
func ComplexityLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldComplexity, v))
}

// ComplexityContains applies the Contains predicate on the "complexity" field.
func ComplexityContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldComplexity, v))
}

// ComplexityHasPrefix applies the HasPrefix predicate on the "complexity" field.
func ComplexityHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldComplexity, v))
}

// ComplexityHasSuffix applies the HasSuffix predicate on the "complexity" field.
func ComplexityHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldComplexity, v))
}

// ComplexityIsNil applies the IsNil predicate on the "complexity" field.
func ComplexityIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldComplexity))
}

// ComplexityNotNil applies the NotNil predicate on the "complexity" field.
func ComplexityNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldComplexity))
}

// ComplexityEqualFold applies the EqualFold predicate on the "complexity" field.
func ComplexityEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldComplexity, v))
}

// ComplexityContainsFold applies the ContainsFold predicate on the "complexity" field.
func ComplexityContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldComplexity, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDIsNil applies the IsNil predicate on the "skill_id" field.
func SkillIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldSkillID))
}

// SkillIDNotNil applies the NotNil predicate on the "skill_id" field.
func SkillIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldSkillID))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSkillID, v))
}

// DocTierEQ applies the EQ predicate on the "doc_tier" field.
func DocTierEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDocTier, v))
}

// DocTierNEQ applies the NEQ predicate on the "doc_tier" field.
func DocTierNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldDocTier, v))
}

// DocTierIn applies the In predicate on the "doc_tier" field.
func DocTierIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldDocTier, vs...))
}

// DocTierNotIn applies the NotIn predicate on the "doc_tier" field.
func DocTierNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldDocTier, vs...))
}

// DocTierGT applies the GT predicate on the "doc_tier" field.
func DocTierGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldDocTier, v))
}

// DocTierGTE applies the GTE predicate on the "doc_tier" field.
func DocTierGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldDocTier, v))
}

// DocTierLT applies the LT predicate on the "doc_tier" field.
func DocTierLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldDocTier, v))
}

// DocTierLTE applies the LTE predicate on the "doc_tier" field.
func DocTierLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldDocTier, v))
}

// DocTierContains applies the Contains predicate on the "doc_tier" field.
func DocTierContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldDocTier, v))
}

// DocTierHasPrefix applies the HasPrefix predicate on the "doc_tier" field.
func DocTierHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldDocTier, v))
}

// DocTierHasSuffix applies the HasSuffix predicate on the "doc_tier" field.
func DocTierHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldDocTier, v))
}

// DocTierIsNil applies the IsNil predicate on the "doc_tier" field.
func DocTierIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldDocTier))
}

// DocTierNotNil applies the NotNil predicate on the "doc_tier" field.
func DocTierNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldDocTier))
}

// DocTierEqualFold applies the EqualFold predicate on the "doc_tier" field.
func DocTierEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldDocTier, v))
}

// DocTierContainsFold applies the ContainsFold predicate on the "doc_tier" field.
func DocTierContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldDocTier, v))
}

// GraphStateIsNil applies the IsNil predicate on the "graph_state" field.
func GraphStateIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldGraphState))
}

// GraphStateNotNil applies the NotNil predicate on the "graph_state" field.
func GraphStateNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldGraphState))
}

// BuildStatusEQ applies the EQ predicate on the "build_status" field.
func BuildStatusEQ(v BuildStatus) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldBuildStatus, v))
}

// BuildStatusNEQ applies the NEQ predicate on the "build_status" field.
func BuildStatusNEQ(v BuildStatus) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldBuildStatus, v))
}

// BuildStatusIn applies the In predicate on the "build_status" field.
func BuildStatusIn(vs ...BuildStatus) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldBuildStatus, vs...))
}

// BuildStatusNotIn applies the NotIn predicate on the "build_status" field.
func BuildStatusNotIn(vs ...BuildStatus) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldBuildStatus, vs...))
}

// BuildArtifactsIsNil applies the IsNil predicate on the "build_artifacts" field.
func BuildArtifactsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldBuildArtifacts))
}

// BuildArtifactsNotNil applies the NotNil predicate on the "build_artifacts" field.
func BuildArtifactsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldBuildArtifacts))
}

// AestheticScoresIsNil applies the IsNil predicate on the "aesthetic_scores" field.
func AestheticScoresIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldAestheticScores))
}

// AestheticScoresNotNil applies the NotNil predicate on the "aesthetic_scores" field.
func AestheticScoresNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldAestheticScores))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.Run) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProductDoc applies the HasEdge predicate on the "product_doc" edge.
func HasProductDoc() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ProductDocTable, ProductDocColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductDocWith applies the HasEdge predicate on the "product_doc" edge with a given conditions (other predicates).
func HasProductDocWith(preds ...predicate.ProductDoc) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newProductDocStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPages applies the HasEdge predicate on the "pages" edge.
func HasPages() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PagesTable, PagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPagesWith applies the HasEdge predicate on the "pages" edge with a given conditions (other predicates).
func HasPagesWith(preds ...predicate.Page) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newPagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSnapshots applies the HasEdge predicate on the "snapshots" edge.
func HasSnapshots() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SnapshotsTable, SnapshotsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSnapshotsWith applies the HasEdge predicate on the "snapshots" edge with a given conditions (other predicates).
func HasSnapshotsWith(preds ...predicate.ProjectSnapshot) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newSnapshotsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPlans applies the HasEdge predicate on the "plans" edge.
func HasPlans() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PlansTable, PlansColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPlansWith applies the HasEdge predicate on the "plans" edge with a given conditions (other predicates).
func HasPlansWith(preds ...predicate.Plan) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newPlansStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.SessionEvent) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
