// Code generated by ent, DO NOT EDIT.

package pageversion

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pageversion type in the database.
	Label = "page_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "version_id"
	// FieldPageID holds the string denoting the page_id field in the database.
	FieldPageID = "page_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldHTML holds the string denoting the html field in the database.
	FieldHTML = "html"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldIsPinned holds the string denoting the is_pinned field in the database.
	FieldIsPinned = "is_pinned"
	// FieldIsReleased holds the string denoting the is_released field in the database.
	FieldIsReleased = "is_released"
	// FieldPayloadPrunedAt holds the string denoting the payload_pruned_at field in the database.
	FieldPayloadPrunedAt = "payload_pruned_at"
	// FieldReleasedAt holds the string denoting the released_at field in the database.
	FieldReleasedAt = "released_at"
	// FieldFallbackUsed holds the string denoting the fallback_used field in the database.
	FieldFallbackUsed = "fallback_used"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePage holds the string denoting the page edge name in mutations.
	EdgePage = "page"
	// PageFieldID holds the string denoting the ID field of the Page.
	PageFieldID = "page_id"
	// Table holds the table name of the pageversion in the database.
	Table = "page_versions"
	// PageTable is the table that holds the page relation/edge.
	PageTable = "page_versions"
	// PageInverseTable is the table name for the Page entity.
	// It exists in this package in order to avoid circular dependency with the "page" package.
	PageInverseTable = "pages"
	// PageColumn is the table column denoting the page relation/edge.
	PageColumn = "page_id"
)

// Columns holds all SQL columns for pageversion fields.
var Columns = []string{
	FieldID,
	FieldPageID,
	FieldVersion,
	FieldHTML,
	FieldDescription,
	FieldSource,
	FieldIsPinned,
	FieldIsReleased,
	FieldPayloadPrunedAt,
	FieldReleasedAt,
	FieldFallbackUsed,
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
	// DefaultIsPinned holds the default value on creation for the "is_pinned" field.
	DefaultIsPinned bool
	// DefaultIsReleased holds the default value on creation for the "is_released" field.
	DefaultIsReleased bool
	// DefaultFallbackUsed holds the default value on creation for the "fallback_used" field.
	DefaultFallbackUsed bool
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
		return fmt.Errorf("pageversion: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the PageVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPageID orders the results by the page_id field.
func ByPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByHTML orders the results by the html field.
func ByHTML(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHTML, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
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

// ByFallbackUsed orders the results by the fallback_used field.
func ByFallbackUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFallbackUsed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPageField orders the results by page field.
func ByPageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPageStep(), sql.OrderByField(field, opts...))
	}
}
func newPageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PageInverseTable, PageFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PageTable, PageColumn),
	)
}
