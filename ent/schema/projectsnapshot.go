package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProjectSnapshot holds the schema definition for the ProjectSnapshot
// entity — an atomic value copy of the product doc plus the rendered HTML
// of every page at one instant. Payload columns (doc_content,
// doc_structured, pages) are nulled when the row is released by retention.
type ProjectSnapshot struct {
	ent.Schema
}

// Fields of the ProjectSnapshot.
func (ProjectSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("snapshot_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("snapshot_number").
			Immutable().
			Comment("Monotonic per session"),
		field.Enum("source").
			Values("auto", "manual", "rollback").
			Default("auto"),
		field.String("label").
			Optional(),
		field.Text("doc_content").
			Optional().
			Nillable(),
		field.JSON("doc_structured", map[string]interface{}{}).
			Optional(),
		field.Int("doc_version").
			Default(0),
		field.JSON("pages", []map[string]interface{}{}).
			Optional().
			Comment("Value copies: slug, title, order_index, html"),
		field.Bool("is_pinned").
			Default(false),
		field.Bool("is_released").
			Default(false),
		field.Time("payload_pruned_at").
			Optional().
			Nillable(),
		field.Time("released_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ProjectSnapshot.
func (ProjectSnapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("snapshots").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ProjectSnapshot.
func (ProjectSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "snapshot_number").
			Unique(),
		index.Fields("session_id", "created_at"),
		index.Fields("session_id", "is_pinned"),
	}
}
