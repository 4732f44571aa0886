// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/productdoc"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Product classification (landing, card, invitation, ...)
	ProductType string `json:"product_type,omitempty"`
	// Complexity holds the value of the "complexity" field.
	Complexity string `json:"complexity,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// DocTier holds the value of the "doc_tier" field.
	DocTier string `json:"doc_tier,omitempty"`
	// GraphState holds the value of the "graph_state" field.
	GraphState map[string]interface{} `json:"graph_state,omitempty"`
	// BuildStatus holds the value of the "build_status" field.
	BuildStatus session.BuildStatus `json:"build_status,omitempty"`
	// BuildArtifacts holds the value of the "build_artifacts" field.
	BuildArtifacts map[string]interface{} `json:"build_artifacts,omitempty"`
	// AestheticScores holds the value of the "aesthetic_scores" field.
	AestheticScores map[string]interface{} `json:"aesthetic_scores,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuery when eager-loading is set.
	Edges        SessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionEdges holds the relations/edges for other nodes in the graph.
type SessionEdges struct {
	// Runs holds the value of the runs edge.
	Runs []*Run `json:"runs,omitempty"`
	// ProductDoc holds the value of the product_doc edge.
	ProductDoc *ProductDoc `json:"product_doc,omitempty"`
	// Pages holds the value of the pages edge.
	Pages []*Page `json:"pages,omitempty"`
	// Snapshots holds the value of the snapshots edge.
	Snapshots []*ProjectSnapshot `json:"snapshots,omitempty"`
	// Plans holds the value of the plans edge.
	Plans []*Plan `json:"plans,omitempty"`
	// Events holds the value of the events edge.
	Events []*SessionEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) RunsOrErr() ([]*Run, error) {
	if e.loadedTypes[0] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// ProductDocOrErr returns the ProductDoc value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) ProductDocOrErr() (*ProductDoc, error) {
	if e.ProductDoc != nil {
		return e.ProductDoc, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: productdoc.Label}
	}
	return nil, &NotLoadedError{edge: "product_doc"}
}

// PagesOrErr returns the Pages value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) PagesOrErr() ([]*Page, error) {
	if e.loadedTypes[2] {
		return e.Pages, nil
	}
	return nil, &NotLoadedError{edge: "pages"}
}

// SnapshotsOrErr returns the Snapshots value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) SnapshotsOrErr() ([]*ProjectSnapshot, error) {
	if e.loadedTypes[3] {
		return e.Snapshots, nil
	}
	return nil, &NotLoadedError{edge: "snapshots"}
}

// PlansOrErr returns the Plans value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) PlansOrErr() ([]*Plan, error) {
	if e.loadedTypes[4] {
		return e.Plans, nil
	}
	return nil, &NotLoadedError{edge: "plans"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) EventsOrErr() ([]*SessionEvent, error) {
	if e.loadedTypes[5] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldGraphState, session.FieldBuildArtifacts, session.FieldAestheticScores:
			values[i] = new([]byte)
		case session.FieldID, session.FieldTitle, session.FieldProductType, session.FieldComplexity, session.FieldSkillID, session.FieldDocTier, session.FieldBuildStatus:
			values[i] = new(sql.NullString)
		case session.FieldCreatedAt, session.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case session.FieldProductType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_type", values[i])
			} else if value.Valid {
				_m.ProductType = value.String
			}
		case session.FieldComplexity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field complexity", values[i])
			} else if value.Valid {
				_m.Complexity = value.String
			}
		case session.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case session.FieldDocTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_tier", values[i])
			} else if value.Valid {
				_m.DocTier = value.String
			}
		case session.FieldGraphState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field graph_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GraphState); err != nil {
					return fmt.Errorf("unmarshal field graph_state: %w", err)
				}
			}
		case session.FieldBuildStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field build_status", values[i])
			} else if value.Valid {
				_m.BuildStatus = session.BuildStatus(value.String)
			}
		case session.FieldBuildArtifacts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field build_artifacts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BuildArtifacts); err != nil {
					return fmt.Errorf("unmarshal field build_artifacts: %w", err)
				}
			}
		case session.FieldAestheticScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field aesthetic_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AestheticScores); err != nil {
					return fmt.Errorf("unmarshal field aesthetic_scores: %w", err)
				}
			}
		case session.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case session.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRuns queries the "runs" edge of the Session entity.
func (_m *Session) QueryRuns() *RunQuery {
	return NewSessionClient(_m.config).QueryRuns(_m)
}

// QueryProductDoc queries the "product_doc" edge of the Session entity.
func (_m *Session) QueryProductDoc() *ProductDocQuery {
	return NewSessionClient(_m.config).QueryProductDoc(_m)
}

// QueryPages queries the "pages" edge of the Session entity.
func (_m *Session) QueryPages() *PageQuery {
	return NewSessionClient(_m.config).QueryPages(_m)
}

// QuerySnapshots queries the "snapshots" edge of the Session entity.
func (_m *Session) QuerySnapshots() *ProjectSnapshotQuery {
	return NewSessionClient(_m.config).QuerySnapshots(_m)
}

// QueryPlans queries the "plans" edge of the Session entity.
func (_m *Session) QueryPlans() *PlanQuery {
	return NewSessionClient(_m.config).QueryPlans(_m)
}

// QueryEvents queries the "events" edge of the Session entity.
func (_m *Session) QueryEvents() *SessionEventQuery {
	return NewSessionClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("product_type=")
	builder.WriteString(_m.ProductType)
	builder.WriteString(", ")
	builder.WriteString("complexity=")
	builder.WriteString(_m.Complexity)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("doc_tier=")
	builder.WriteString(_m.DocTier)
	builder.WriteString(", ")
	builder.WriteString("graph_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.GraphState))
	builder.WriteString(", ")
	builder.WriteString("build_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuildStatus))
	builder.WriteString(", ")
	builder.WriteString("build_artifacts=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuildArtifacts))
	builder.WriteString(", ")
	builder.WriteString("aesthetic_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.AestheticScores))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
