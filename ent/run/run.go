// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldParentRunID holds the string denoting the parent_run_id field in the database.
	FieldParentRunID = "parent_run_id"
	// FieldTriggerSource holds the string denoting the trigger_source field in the database.
	FieldTriggerSource = "trigger_source"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInputMessage holds the string denoting the input_message field in the database.
	FieldInputMessage = "input_message"
	// FieldResumePayload holds the string denoting the resume_payload field in the database.
	FieldResumePayload = "resume_payload"
	// FieldCheckpointThread holds the string denoting the checkpoint_thread field in the database.
	FieldCheckpointThread = "checkpoint_thread"
	// FieldCheckpointNs holds the string denoting the checkpoint_ns field in the database.
	FieldCheckpointNs = "checkpoint_ns"
	// FieldLatestError holds the string denoting the latest_error field in the database.
	FieldLatestError = "latest_error"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldStateChangedAt holds the string denoting the state_changed_at field in the database.
	FieldStateChangedAt = "state_changed_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the run in the database.
	Table = "runs"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "runs"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldParentRunID,
	FieldTriggerSource,
	FieldStatus,
	FieldInputMessage,
	FieldResumePayload,
	FieldCheckpointThread,
	FieldCheckpointNs,
	FieldLatestError,
	FieldMetrics,
	FieldCreatedAt,
	FieldStartedAt,
	FieldFinishedAt,
	FieldStateChangedAt,
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
	// DefaultTriggerSource holds the default value on creation for the "trigger_source" field.
	DefaultTriggerSource string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultStateChangedAt holds the default value on creation for the "state_changed_at" field.
	DefaultStateChangedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued       Status = "queued"
	StatusRunning      Status = "running"
	StatusWaitingInput Status = "waiting_input"
	StatusCompleted    Status = "completed"
	StatusFailed       Status = "failed"
	StatusCancelled    Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusRunning, StatusWaitingInput, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByParentRunID orders the results by the parent_run_id field.
func ByParentRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentRunID, opts...).ToFunc()
}

// ByTriggerSource orders the results by the trigger_source field.
func ByTriggerSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerSource, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByInputMessage orders the results by the input_message field.
func ByInputMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputMessage, opts...).ToFunc()
}

// ByCheckpointThread orders the results by the checkpoint_thread field.
func ByCheckpointThread(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointThread, opts...).ToFunc()
}

// ByCheckpointNs orders the results by the checkpoint_ns field.
func ByCheckpointNs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointNs, opts...).ToFunc()
}

// ByLatestError orders the results by the latest_error field.
func ByLatestError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatestError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByStateChangedAt orders the results by the state_changed_at field.
func ByStateChangedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateChangedAt, opts...).ToFunc()
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
