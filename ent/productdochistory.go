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
	"github.com/TheSmartAz/instant-coffee-sub001/ent/productdochistory"
)

// ProductDocHistory is the model entity for the ProductDocHistory schema.
type ProductDocHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocID holds the value of the "doc_id" field.
	DocID string `json:"doc_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Content holds the value of the "content" field.
	Content *string `json:"content,omitempty"`
	// Structured holds the value of the "structured" field.
	Structured map[string]interface{} `json:"structured,omitempty"`
	// Source holds the value of the "source" field.
	Source productdochistory.Source `json:"source,omitempty"`
	// ChangeSummary holds the value of the "change_summary" field.
	ChangeSummary string `json:"change_summary,omitempty"`
	// AffectedPages holds the value of the "affected_pages" field.
	AffectedPages []string `json:"affected_pages,omitempty"`
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
	// The values are being populated by the ProductDocHistoryQuery when eager-loading is set.
	Edges        ProductDocHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProductDocHistoryEdges holds the relations/edges for other nodes in the graph.
type ProductDocHistoryEdges struct {
	// Doc holds the value of the doc edge.
	Doc *ProductDoc `json:"doc,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocOrErr returns the Doc value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProductDocHistoryEdges) DocOrErr() (*ProductDoc, error) {
	if e.Doc != nil {
		return e.Doc, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: productdoc.Label}
	}
	return nil, &NotLoadedError{edge: "doc"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProductDocHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case productdochistory.FieldStructured, productdochistory.FieldAffectedPages:
			values[i] = new([]byte)
		case productdochistory.FieldIsPinned, productdochistory.FieldIsReleased:
			values[i] = new(sql.NullBool)
		case productdochistory.FieldVersion:
			values[i] = new(sql.NullInt64)
		case productdochistory.FieldID, productdochistory.FieldDocID, productdochistory.FieldContent, productdochistory.FieldSource, productdochistory.FieldChangeSummary:
			values[i] = new(sql.NullString)
		case productdochistory.FieldPayloadPrunedAt, productdochistory.FieldReleasedAt, productdochistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProductDocHistory fields.
func (_m *ProductDocHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case productdochistory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case productdochistory.FieldDocID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_id", values[i])
			} else if value.Valid {
				_m.DocID = value.String
			}
		case productdochistory.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case productdochistory.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = new(string)
				*_m.Content = value.String
			}
		case productdochistory.FieldStructured:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field structured", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Structured); err != nil {
					return fmt.Errorf("unmarshal field structured: %w", err)
				}
			}
		case productdochistory.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = productdochistory.Source(value.String)
			}
		case productdochistory.FieldChangeSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_summary", values[i])
			} else if value.Valid {
				_m.ChangeSummary = value.String
			}
		case productdochistory.FieldAffectedPages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field affected_pages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AffectedPages); err != nil {
					return fmt.Errorf("unmarshal field affected_pages: %w", err)
				}
			}
		case productdochistory.FieldIsPinned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_pinned", values[i])
			} else if value.Valid {
				_m.IsPinned = value.Bool
			}
		case productdochistory.FieldIsReleased:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_released", values[i])
			} else if value.Valid {
				_m.IsReleased = value.Bool
			}
		case productdochistory.FieldPayloadPrunedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field payload_pruned_at", values[i])
			} else if value.Valid {
				_m.PayloadPrunedAt = new(time.Time)
				*_m.PayloadPrunedAt = value.Time
			}
		case productdochistory.FieldReleasedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field released_at", values[i])
			} else if value.Valid {
				_m.ReleasedAt = new(time.Time)
				*_m.ReleasedAt = value.Time
			}
		case productdochistory.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ProductDocHistory.
// This includes values selected through modifiers, order, etc.
func (_m *ProductDocHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDoc queries the "doc" edge of the ProductDocHistory entity.
func (_m *ProductDocHistory) QueryDoc() *ProductDocQuery {
	return NewProductDocHistoryClient(_m.config).QueryDoc(_m)
}

// Update returns a builder for updating this ProductDocHistory.
// Note that you need to call ProductDocHistory.Unwrap() before calling this method if this ProductDocHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProductDocHistory) Update() *ProductDocHistoryUpdateOne {
	return NewProductDocHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProductDocHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProductDocHistory) Unwrap() *ProductDocHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProductDocHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProductDocHistory) String() string {
	var builder strings.Builder
	builder.WriteString("ProductDocHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("doc_id=")
	builder.WriteString(_m.DocID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	if v := _m.Content; v != nil {
		builder.WriteString("content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("structured=")
	builder.WriteString(fmt.Sprintf("%v", _m.Structured))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("change_summary=")
	builder.WriteString(_m.ChangeSummary)
	builder.WriteString(", ")
	builder.WriteString("affected_pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffectedPages))
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

// ProductDocHistories is a parsable slice of ProductDocHistory.
type ProductDocHistories []*ProductDocHistory
