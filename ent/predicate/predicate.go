// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Page is the predicate function for page builders.
type Page func(*sql.Selector)

// PageVersion is the predicate function for pageversion builders.
type PageVersion func(*sql.Selector)

// Plan is the predicate function for plan builders.
type Plan func(*sql.Selector)

// ProductDoc is the predicate function for productdoc builders.
type ProductDoc func(*sql.Selector)

// ProductDocHistory is the predicate function for productdochistory builders.
type ProductDocHistory func(*sql.Selector)

// ProjectSnapshot is the predicate function for projectsnapshot builders.
type ProjectSnapshot func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
