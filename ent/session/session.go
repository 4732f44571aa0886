// Code generated by ent, DO NOT EDIT.

package session

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldProductType holds the string denoting the product_type field in the database.
	FieldProductType = "product_type"
	// FieldComplexity holds the string denoting the complexity field in the database.
	FieldComplexity = "complexity"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldDocTier holds the string denoting the doc_tier field in the database.
	FieldDocTier = "doc_tier"
	// FieldGraphState holds the string denoting the graph_state field in the database.
	FieldGraphState = "graph_state"
	// FieldBuildStatus holds the string denoting the build_status field in the database.
	FieldBuildStatus = "build_status"
	// FieldBuildArtifacts holds the string denoting the build_artifacts field in the database.
	FieldBuildArtifacts = "build_artifacts"
	// FieldAestheticScores holds the string denoting the aesthetic_scores field in the database.
	FieldAestheticScores = "aesthetic_scores"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRuns holds the string denoting the runs edge name in mutations.
	EdgeRuns = "runs"
	// EdgeProductDoc holds the string denoting the product_doc edge name in mutations.
	EdgeProductDoc = "product_doc"
	// EdgePages holds the string denoting the pages edge name in mutations.
	EdgePages = "pages"
	// EdgeSnapshots holds the string denoting the snapshots edge name in mutations.
	EdgeSnapshots = "snapshots"
	// EdgePlans holds the string denoting the plans edge name in mutations.
	EdgePlans = "plans"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// ProductDocFieldID holds the string denoting the ID field of the ProductDoc.
	ProductDocFieldID = "doc_id"
	// PageFieldID holds the string denoting the ID field of the Page.
	PageFieldID = "page_id"
	// ProjectSnapshotFieldID holds the string denoting the ID field of the ProjectSnapshot.
	ProjectSnapshotFieldID = "snapshot_id"
	// PlanFieldID holds the string denoting the ID field of the Plan.
	PlanFieldID = "plan_id"
	// SessionEventFieldID holds the string denoting the ID field of the SessionEvent.
	SessionEventFieldID = "id"
	// Table holds the table name of the session in the database.
	Table = "sessions"
	// RunsTable is the table that holds the runs relation/edge.
	RunsTable = "runs"
	// RunsInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunsInverseTable = "runs"
	// RunsColumn is the table column denoting the runs relation/edge.
	RunsColumn = "session_id"
	// ProductDocTable is the table that holds the product_doc relation/edge.
	ProductDocTable = "product_docs"
	// ProductDocInverseTable is the table name for the ProductDoc entity.
	// It exists in this package in order to avoid circular dependency with the "productdoc" package.
	ProductDocInverseTable = "product_docs"
	// ProductDocColumn is the table column denoting the product_doc relation/edge.
	ProductDocColumn = "session_id"
	// PagesTable is the table that holds the pages relation/edge.
	PagesTable = "pages"
	// PagesInverseTable is the table name for the Page entity.
	// It exists in this package in order to avoid circular dependency with the "page" package.
	PagesInverseTable = "pages"
	// PagesColumn is the table column denoting the pages relation/edge.
	PagesColumn = "session_id"
	// SnapshotsTable is the table that holds the snapshots relation/edge.
	SnapshotsTable = "project_snapshots"
	// SnapshotsInverseTable is the table name for the ProjectSnapshot entity.
	// It exists in this package in order to avoid circular dependency with the "projectsnapshot" package.
	SnapshotsInverseTable = "project_snapshots"
	// SnapshotsColumn is the table column denoting the snapshots relation/edge.
	SnapshotsColumn = "session_id"
	// PlansTable is the table that holds the plans relation/edge.
	PlansTable = "plans"
	// PlansInverseTable is the table name for the Plan entity.
	// It exists in this package in order to avoid circular dependency with the "plan" package.
	PlansInverseTable = "plans"
	// PlansColumn is the table column denoting the plans relation/edge.
	PlansColumn = "session_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "session_events"
	// EventsInverseTable is the table name for the SessionEvent entity.
	// It exists in this package in order to avoid circular dependency with the "sessionevent" package.
	EventsInverseTable = "session_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "session_id"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldProductType,
	FieldComplexity,
	FieldSkillID,
	FieldDocTier,
	FieldGraphState,
	FieldBuildStatus,
	FieldBuildArtifacts,
	FieldAestheticScores,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// BuildStatus defines the type for the "build_status" enum field.
type BuildStatus string

// BuildStatusPending is the default value of the BuildStatus enum.
const DefaultBuildStatus = BuildStatusPending

// BuildStatus values.
const (
	BuildStatusPending BuildStatus = "pending"
	BuildStatusRunning BuildStatus = "running"
	BuildStatusSuccess BuildStatus = "success"
	BuildStatusFailed  BuildStatus = "failed"
)

func (bs BuildStatus) String() string {
	return string(bs)
}

// BuildStatusValidator is a validator for the "build_status" field enum values. It is called by the builders before save.
func BuildStatusValidator(bs BuildStatus) error {
	switch bs {
	case BuildStatusPending, BuildStatusRunning, BuildStatusSuccess, BuildStatusFailed:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for build_status field: %q", bs)
	}
}

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByProductType orders the results by the product_type field.
func ByProductType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductType, opts...).ToFunc()
}

// ByComplexity orders the results by the complexity field.
func ByComplexity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplexity, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByDocTier orders the results by the doc_tier field.
func ByDocTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocTier, opts...).ToFunc()
}

// ByBuildStatus orders the results by the build_status field.
func ByBuildStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRunsCount orders the results by runs count.
func ByRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRunsStep(), opts...)
	}
}

// ByRuns orders the results by runs terms.
func ByRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByProductDocField orders the results by product_doc field.
func ByProductDocField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProductDocStep(), sql.OrderByField(field, opts...))
	}
}

// ByPagesCount orders the results by pages count.
func ByPagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPagesStep(), opts...)
	}
}

// ByPages orders the results by pages terms.
func ByPages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySnapshotsCount orders the results by snapshots count.
func BySnapshotsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSnapshotsStep(), opts...)
	}
}

// BySnapshots orders the results by snapshots terms.
func BySnapshots(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSnapshotsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPlansCount orders the results by plans count.
func ByPlansCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPlansStep(), opts...)
	}
}

// ByPlans orders the results by plans terms.
func ByPlans(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlansStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunsInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
	)
}
func newProductDocStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProductDocInverseTable, ProductDocFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ProductDocTable, ProductDocColumn),
	)
}
func newPagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PagesInverseTable, PageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PagesTable, PagesColumn),
	)
}
func newSnapshotsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SnapshotsInverseTable, ProjectSnapshotFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SnapshotsTable, SnapshotsColumn),
	)
}
func newPlansStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlansInverseTable, PlanFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PlansTable, PlansColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, SessionEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
