// Code generated by ent, DO NOT EDIT.

package productdochistory

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the productdochistory type in the database.
	Label = "product_doc_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "history_id"
	// FieldDocID holds the string denoting the doc_id field in the database.
	FieldDocID = "doc_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldStructured holds the string denoting the structured field in the database.
	FieldStructured = "structured"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldChangeSummary holds the string denoting the change_summary field in the database.
	FieldChangeSummary = "change_summary"
	// FieldAffectedPages holds the string denoting the affected_pages field in the database.
	FieldAffectedPages = "affected_pages"
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
	// EdgeDoc holds the string denoting the doc edge name in mutations.
	EdgeDoc = "doc"
	// ProductDocFieldID holds the string denoting the ID field of the ProductDoc.
	ProductDocFieldID = "doc_id"
	// Table holds the table name of the productdochistory in the database.
	Table = "product_doc_histories"
	// DocTable is the table that holds the doc relation/edge.
	DocTable = "product_doc_histories"
	// DocInverseTable is the table name for the ProductDoc entity.
	// It exists in this package in order to avoid circular dependency with the "productdoc" package.
	DocInverseTable = "product_docs"
	// DocColumn is the table column denoting the doc relation/edge.
	DocColumn = "doc_id"
)

// Columns holds all SQL columns for productdochistory fields.
var Columns = []string{
	FieldID,
	FieldDocID,
	FieldVersion,
	FieldContent,
	FieldStructured,
	FieldSource,
	FieldChangeSummary,
	FieldAffectedPages,
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
		return fmt.Errorf("productdochistory: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the ProductDocHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocID orders the results by the doc_id field.
func ByDocID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByChangeSummary orders the results by the change_summary field.
func ByChangeSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangeSummary, opts...).ToFunc()
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

// ByDocField orders the results by doc field.
func ByDocField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocStep(), sql.OrderByField(field, opts...))
	}
}
func newDocStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocInverseTable, ProductDocFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocTable, DocColumn),
	)
}
