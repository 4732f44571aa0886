// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/projectsnapshot"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/session"
)

// ProjectSnapshot is the model entity for the ProjectSnapshot schema.
type ProjectSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Monotonic per session
	SnapshotNumber int `json:"snapshot_number,omitempty"`
	// Source holds the value of the "source" field.
	Source projectsnapshot.Source `json:"source,omitempty"`
	// Label holds the value of the "label" field.
	Label string `json:"label,omitempty"`
	// DocContent holds the value of the "doc_content" field.
	DocContent *string `json:"doc_content,omitempty"`
	// DocStructured holds the value of the "doc_structured" field.
	DocStructured map[string]interface{} `json:"doc_structured,omitempty"`
	// DocVersion holds the value of the "doc_version" field.
	DocVersion int `json:"doc_version,omitempty"`
	// Value copies: slug, title, order_index, html
	Pages []map[string]interface{} `json:"pages,omitempty"`
	// IsPinned holds the value of the "is_pinned" field.
	IsPinned bool `json:"is_pinned,omitempty"`
	// IsReleased holds the value of the "is_released" field.
	IsReleased bool `json:"is_released,omitempty"`
	// PayloadPrunedAt holds the value of the "payload_pruned_at" field.
	PayloadPrunedAt *time.Time `json:"payload_pruned_at,omitempty"`
	// ReleasedAt holds the value of the "released_at" field.
	ReleasedAt *time.Time `json:"released_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectSnapshotQuery when eager-loading is set.
	Edges        ProjectSnapshotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectSnapshotEdges holds the relations/edges for other nodes in the graph.
type ProjectSnapshotEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectSnapshotEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProjectSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case projectsnapshot.FieldDocStructured, projectsnapshot.FieldPages:
			values[i] = new([]byte)
		case projectsnapshot.FieldIsPinned, projectsnapshot.FieldIsReleased:
			values[i] = new(sql.NullBool)
		case projectsnapshot.FieldSnapshotNumber, projectsnapshot.FieldDocVersion:
			values[i] = new(sql.NullInt64)
		case projectsnapshot.FieldID, projectsnapshot.FieldSessionID, projectsnapshot.FieldSource, projectsnapshot.FieldLabel, projectsnapshot.FieldDocContent:
			values[i] = new(sql.NullString)
		case projectsnapshot.FieldPayloadPrunedAt, projectsnapshot.FieldReleasedAt, projectsnapshot.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProjectSnapshot fields.
func (_m *ProjectSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case projectsnapshot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case projectsnapshot.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case projectsnapshot.FieldSnapshotNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_number", values[i])
			} else if value.Valid {
				_m.SnapshotNumber = int(value.Int64)
			}
		case projectsnapshot.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = projectsnapshot.Source(value.String)
			}
		case projectsnapshot.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case projectsnapshot.FieldDocContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_content", values[i])
			} else if value.Valid {
				_m.DocContent = new(string)
				*_m.DocContent = value.String
			}
		case projectsnapshot.FieldDocStructured:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field doc_structured", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DocStructured); err != nil {
					return fmt.Errorf("unmarshal field doc_structured: %w", err)
				}
			}
		case projectsnapshot.FieldDocVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field doc_version", values[i])
			} else if value.Valid {
				_m.DocVersion = int(value.Int64)
			}
		case projectsnapshot.FieldPages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Pages); err != nil {
					return fmt.Errorf("unmarshal field pages: %w", err)
				}
			}
		case projectsnapshot.FieldIsPinned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_pinned", values[i])
			} else if value.Valid {
				_m.IsPinned = value.Bool
			}
		case projectsnapshot.FieldIsReleased:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_released", values[i])
			} else if value.Valid {
				_m.IsReleased = value.Bool
			}
		case projectsnapshot.FieldPayloadPrunedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field payload_pruned_at", values[i])
			} else if value.Valid {
				_m.PayloadPrunedAt = new(time.Time)
				*_m.PayloadPrunedAt = value.Time
			}
		case projectsnapshot.FieldReleasedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field released_at", values[i])
			} else if value.Valid {
				_m.ReleasedAt = new(time.Time)
				*_m.ReleasedAt = value.Time
			}
		case projectsnapshot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProjectSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ProjectSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the ProjectSnapshot entity.
func (_m *ProjectSnapshot) QuerySession() *SessionQuery {
	return NewProjectSnapshotClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this ProjectSnapshot.
// Note that you need to call ProjectSnapshot.Unwrap() before calling this method if this ProjectSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProjectSnapshot) Update() *ProjectSnapshotUpdateOne {
	return NewProjectSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProjectSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProjectSnapshot) Unwrap() *ProjectSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProjectSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProjectSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ProjectSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("snapshot_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SnapshotNumber))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	if v := _m.DocContent; v != nil {
		builder.WriteString("doc_content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("doc_structured=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocStructured))
	builder.WriteString(", ")
	builder.WriteString("doc_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocVersion))
	builder.WriteString(", ")
	builder.WriteString("pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pages))
	builder.WriteString(", ")
	builder.WriteString("is_pinned=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPinned))
	builder.WriteString(", ")
	builder.WriteString("is_released=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsReleased))
	builder.WriteString(", ")
	if v := _m.PayloadPrunedAt; v != nil {
		builder.WriteString("payload_pruned_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReleasedAt; v != nil {
		builder.WriteString("released_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProjectSnapshots is a parsable slice of ProjectSnapshot.
type ProjectSnapshots []*ProjectSnapshot
