// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/page"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/pageversion"
)

// PageVersion is the model entity for the PageVersion schema.
type PageVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PageID holds the value of the "page_id" field.
	PageID string `json:"page_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// HTML holds the value of the "html" field.
	HTML *string `json:"html,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Source holds the value of the "source" field.
	Source pageversion.Source `json:"source,omitempty"`
	// IsPinned holds the value of the "is_pinned" field.
	IsPinned bool `json:"is_pinned,omitempty"`
	// IsReleased holds the value of the "is_released" field.
	IsReleased bool `json:"is_released,omitempty"`
	// PayloadPrunedAt holds the value of the "payload_pruned_at" field.
	PayloadPrunedAt *time.Time `json:"payload_pruned_at,omitempty"`
	// ReleasedAt holds the value of the "released_at" field.
	ReleasedAt *time.Time `json:"released_at,omitempty"`
	// True when the generator fell back to a template rendition
	FallbackUsed bool `json:"fallback_used,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PageVersionQuery when eager-loading is set.
	Edges        PageVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PageVersionEdges holds the relations/edges for other nodes in the graph.
type PageVersionEdges struct {
	// Page holds the value of the page edge.
	Page *Page `json:"page,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PageOrErr returns the Page value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PageVersionEdges) PageOrErr() (*Page, error) {
	if e.Page != nil {
		return e.Page, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: page.Label}
	}
	return nil, &NotLoadedError{edge: "page"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PageVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pageversion.FieldIsPinned, pageversion.FieldIsReleased, pageversion.FieldFallbackUsed:
			values[i] = new(sql.NullBool)
		case pageversion.FieldVersion:
			values[i] = new(sql.NullInt64)
		case pageversion.FieldID, pageversion.FieldPageID, pageversion.FieldHTML, pageversion.FieldDescription, pageversion.FieldSource:
			values[i] = new(sql.NullString)
		case pageversion.FieldPayloadPrunedAt, pageversion.FieldReleasedAt, pageversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PageVersion fields.
func (_m *PageVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pageversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pageversion.FieldPageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_id", values[i])
			} else if value.Valid {
				_m.PageID = value.String
			}
		case pageversion.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case pageversion.FieldHTML:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field html", values[i])
			} else if value.Valid {
				_m.HTML = new(string)
				*_m.HTML = value.String
			}
		case pageversion.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case pageversion.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = pageversion.Source(value.String)
			}
		case pageversion.FieldIsPinned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_pinned", values[i])
			} else if value.Valid {
				_m.IsPinned = value.Bool
			}
		case pageversion.FieldIsReleased:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_released", values[i])
			} else if value.Valid {
				_m.IsReleased = value.Bool
			}
		case pageversion.FieldPayloadPrunedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field payload_pruned_at", values[i])
			} else if value.Valid {
				_m.PayloadPrunedAt = new(time.Time)
				*_m.PayloadPrunedAt = value.Time
			}
		case pageversion.FieldReleasedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field released_at", values[i])
			} else if value.Valid {
				_m.ReleasedAt = new(time.Time)
				*_m.ReleasedAt = value.Time
			}
		case pageversion.FieldFallbackUsed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fallback_used", values[i])
			} else if value.Valid {
				_m.FallbackUsed = value.Bool
			}
		case pageversion.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PageVersion.
// This includes values selected through modifiers, order, etc.
func (_m *PageVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPage queries the "page" edge of the PageVersion entity.
func (_m *PageVersion) QueryPage() *PageQuery {
	return NewPageVersionClient(_m.config).QueryPage(_m)
}

// Update returns a builder for updating this PageVersion.
// Note that you need to call PageVersion.Unwrap() before calling this method if this PageVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PageVersion) Update() *PageVersionUpdateOne {
	return NewPageVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PageVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PageVersion) Unwrap() *PageVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PageVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PageVersion) String() string {
	var builder strings.Builder
	builder.WriteString("PageVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("page_id=")
	builder.WriteString(_m.PageID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	if v := _m.HTML; v != nil {
		builder.WriteString("html=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
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
	builder.WriteString("fallback_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.FallbackUsed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PageVersions is a parsable slice of PageVersion.
type PageVersions []*PageVersion
