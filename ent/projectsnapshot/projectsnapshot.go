// Code generated by ent, DO NOT EDIT.

package projectsnapshot

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the projectsnapshot type in the database.
	Label = "project_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "snapshot_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSnapshotNumber holds the string denoting the snapshot_number field in the database.
	FieldSnapshotNumber = "snapshot_number"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldDocContent holds the string denoting the doc_content field in the database.
	FieldDocContent = "doc_content"
	// FieldDocStructured holds the string denoting the doc_structured field in the database.
	FieldDocStructured = "doc_structured"
	// FieldDocVersion holds the string denoting the doc_version field in the database.
	FieldDocVersion = "doc_version"
	// FieldPages holds the string denoting the pages field in the database.
	FieldPages = "pages"
	// FieldIsPinned holds the string denoting the is_pinned field in the database.
	FieldIsPinned = "is_pinned"
	// FieldIsReleased holds the string denoting the is_released field in the database.
	FieldIsReleased = "is_released"
	// FieldPayloadPrunedAt holds the string denoting the payload_pruned_at field in the database.
	FieldPayloadPrunedAt = "payload_pruned_at"
	// FieldReleasedAt holds the string denoting the released_at field in the database.
	FieldReleasedAt = "released_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the projectsnapshot in the database.
	Table = "project_snapshots"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "project_snapshots"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for projectsnapshot fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldSnapshotNumber,
	FieldSource,
	FieldLabel,
	FieldDocContent,
	FieldDocStructured,
	FieldDocVersion,
	FieldPages,
	FieldIsPinned,
	FieldIsReleased,
	FieldPayloadPrunedAt,
	FieldReleasedAt,
	FieldCreatedAt,
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
	// DefaultDocVersion holds the default value on creation for the "doc_version" field.
	DefaultDocVersion int
	// DefaultIsPinned holds the default value on creation for the "is_pinned" field.
	DefaultIsPinned bool
	// DefaultIsReleased holds the default value on creation for the "is_released" field.
	DefaultIsReleased bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Source defines the type for the "source" enum field.
type Source string

// SourceAuto is the default value of the Source enum.
const DefaultSource = SourceAuto

// Source values.
const (
	SourceAuto     Source = "auto"
	SourceManual   Source = "manual"
	SourceRollback Source = "rollback"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceAuto, SourceManual, SourceRollback:
		return nil
	default:
		return fmt.Errorf("projectsnapshot: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the ProjectSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySnapshotNumber orders the results by the snapshot_number field.
func BySnapshotNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnapshotNumber, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByDocContent orders the results by the doc_content field.
func ByDocContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocContent, opts...).ToFunc()
}

// ByDocVersion orders the results by the doc_version field.
func ByDocVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocVersion, opts...).ToFunc()
}

// ByIsPinned orders the results by the is_pinned field.
func ByIsPinned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPinned, opts...).ToFunc()
}

// ByIsReleased orders the results by the is_released field.
func ByIsReleased(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsReleased, opts...).ToFunc()
}

// ByPayloadPrunedAt orders the results by the payload_pruned_at field.
func ByPayloadPrunedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayloadPrunedAt, opts...).ToFunc()
}

// ByReleasedAt orders the results by the released_at field.
func ByReleasedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReleasedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
