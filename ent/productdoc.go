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

// ProductDoc is the model entity for the ProductDoc schema.
type ProductDoc struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Structured holds the value of the "structured" field.
	Structured map[string]interface{} `json:"structured,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Status holds the value of the "status" field.
	Status productdoc.Status `json:"status,omitempty"`
	// Normalized page slugs flagged for regeneration after a doc update
	PendingRegenerationPages []string `json:"pending_regeneration_pages,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProductDocQuery when eager-loading is set.
	Edges        ProductDocEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProductDocEdges holds the relations/edges for other nodes in the graph.
type ProductDocEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// Histories holds the value of the histories edge.
	Histories []*ProductDocHistory `json:"histories,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProductDocEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// HistoriesOrErr returns the Histories value or an error if the edge
// was not loaded in eager-loading.
func (e ProductDocEdges) HistoriesOrErr() ([]*ProductDocHistory, error) {
	if e.loadedTypes[1] {
		return e.Histories, nil
	}
	return nil, &NotLoadedError{edge: "histories"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProductDoc) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case productdoc.FieldStructured, productdoc.FieldPendingRegenerationPages:
			values[i] = new([]byte)
		case productdoc.FieldVersion:
			values[i] = new(sql.NullInt64)
		case productdoc.FieldID, productdoc.FieldSessionID, productdoc.FieldContent, productdoc.FieldStatus:
			values[i] = new(sql.NullString)
		case productdoc.FieldCreatedAt, productdoc.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProductDoc fields.
func (_m *ProductDoc) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case productdoc.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case productdoc.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case productdoc.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case productdoc.FieldStructured:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field structured", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Structured); err != nil {
					return fmt.Errorf("unmarshal field structured: %w", err)
				}
			}
		case productdoc.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case productdoc.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = productdoc.Status(value.String)
			}
		case productdoc.FieldPendingRegenerationPages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pending_regeneration_pages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PendingRegenerationPages); err != nil {
					return fmt.Errorf("unmarshal field pending_regeneration_pages: %w", err)
				}
			}
		case productdoc.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case productdoc.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ProductDoc.
// This includes values selected through modifiers, order, etc.
func (_m *ProductDoc) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the ProductDoc entity.
func (_m *ProductDoc) QuerySession() *SessionQuery {
	return NewProductDocClient(_m.config).QuerySession(_m)
}

// QueryHistories queries the "histories" edge of the ProductDoc entity.
func (_m *ProductDoc) QueryHistories() *ProductDocHistoryQuery {
	return NewProductDocClient(_m.config).QueryHistories(_m)
}

// Update returns a builder for updating this ProductDoc.
// Note that you need to call ProductDoc.Unwrap() before calling this method if this ProductDoc
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProductDoc) Update() *ProductDocUpdateOne {
	return NewProductDocClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProductDoc entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProductDoc) Unwrap() *ProductDoc {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProductDoc is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProductDoc) String() string {
	var builder strings.Builder
	builder.WriteString("ProductDoc(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("structured=")
	builder.WriteString(fmt.Sprintf("%v", _m.Structured))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("pending_regeneration_pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.PendingRegenerationPages))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProductDocs is a parsable slice of ProductDoc.
type ProductDocs []*ProductDoc
