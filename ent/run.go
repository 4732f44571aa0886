// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/run"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/session"
)

// Run is the model entity for the Run schema.
type Run struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Set when a run was spawned by another run (e.g. a refine loop)
	ParentRunID *string `json:"parent_run_id,omitempty"`
	// What started the run: api, resume, internal
	TriggerSource string `json:"trigger_source,omitempty"`
	// Status holds the value of the "status" field.
	Status run.Status `json:"status,omitempty"`
	// InputMessage holds the value of the "input_message" field.
	InputMessage string `json:"input_message,omitempty"`
	// Payload supplied on resume; injected into graph state as user_feedback
	ResumePayload map[string]interface{} `json:"resume_payload,omitempty"`
	// Checkpointer thread key, defaults to '{session_id}:{run_id}'
	CheckpointThread string `json:"checkpoint_thread,omitempty"`
	// CheckpointNs holds the value of the "checkpoint_ns" field.
	CheckpointNs string `json:"checkpoint_ns,omitempty"`
	// LatestError holds the value of the "latest_error" field.
	LatestError *string `json:"latest_error,omitempty"`
	// Metrics holds the value of the "metrics" field.
	Metrics map[string]interface{} `json:"metrics,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Set on first entry to running
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Set on first entry to a terminal state
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Last status transition; drives the staleness sweep
	StateChangedAt time.Time `json:"state_changed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunQuery when eager-loading is set.
	Edges        RunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunEdges holds the relations/edges for other nodes in the graph.
type RunEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Run) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case run.FieldResumePayload, run.FieldMetrics:
			values[i] = new([]byte)
		case run.FieldID, run.FieldSessionID, run.FieldParentRunID, run.FieldTriggerSource, run.FieldStatus, run.FieldInputMessage, run.FieldCheckpointThread, run.FieldCheckpointNs, run.FieldLatestError:
			values[i] = new(sql.NullString)
		case run.FieldCreatedAt, run.FieldStartedAt, run.FieldFinishedAt, run.FieldStateChangedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Run fields.
func (_m *Run) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case run.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case run.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case run.FieldParentRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_run_id", values[i])
			} else if value.Valid {
				_m.ParentRunID = new(string)
				*_m.ParentRunID = value.String
			}
		case run.FieldTriggerSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_source", values[i])
			} else if value.Valid {
				_m.TriggerSource = value.String
			}
		case run.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = run.Status(value.String)
			}
		case run.FieldInputMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_message", values[i])
			} else if value.Valid {
				_m.InputMessage = value.String
			}
		case run.FieldResumePayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field resume_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResumePayload); err != nil {
					return fmt.Errorf("unmarshal field resume_payload: %w", err)
				}
			}
		case run.FieldCheckpointThread:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_thread", values[i])
			} else if value.Valid {
				_m.CheckpointThread = value.String
			}
		case run.FieldCheckpointNs:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_ns", values[i])
			} else if value.Valid {
				_m.CheckpointNs = value.String
			}
		case run.FieldLatestError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field latest_error", values[i])
			} else if value.Valid {
				_m.LatestError = new(string)
				*_m.LatestError = value.String
			}
		case run.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case run.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case run.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case run.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case run.FieldStateChangedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field state_changed_at", values[i])
			} else if value.Valid {
				_m.StateChangedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Run.
// This includes values selected through modifiers, order, etc.
func (_m *Run) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Run entity.
func (_m *Run) QuerySession() *SessionQuery {
	return NewRunClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this Run.
// Note that you need to call Run.Unwrap() before calling this method if this Run
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Run) Update() *RunUpdateOne {
	return NewRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Run entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Run) Unwrap() *Run {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Run is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Run) String() string {
	var builder strings.Builder
	builder.WriteString("Run(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	if v := _m.ParentRunID; v != nil {
		builder.WriteString("parent_run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("trigger_source=")
	builder.WriteString(_m.TriggerSource)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("input_message=")
	builder.WriteString(_m.InputMessage)
	builder.WriteString(", ")
	builder.WriteString("resume_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResumePayload))
	builder.WriteString(", ")
	builder.WriteString("checkpoint_thread=")
	builder.WriteString(_m.CheckpointThread)
	builder.WriteString(", ")
	builder.WriteString("checkpoint_ns=")
	builder.WriteString(_m.CheckpointNs)
	builder.WriteString(", ")
	if v := _m.LatestError; v != nil {
		builder.WriteString("latest_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("state_changed_at=")
	builder.WriteString(_m.StateChangedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Runs is a parsable slice of Run.
type Runs []*Run
