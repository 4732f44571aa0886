package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProductDocHistory holds the schema definition for the ProductDocHistory
// entity — one appended version of a product doc. Payload columns
// (content, structured) are nulled when the row is released by retention.
type ProductDocHistory struct {
	ent.Schema
}

// Fields of the ProductDocHistory.
func (ProductDocHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("history_id").
			Unique().
			Immutable(),
		field.String("doc_id").
			Immutable(),
		field.Int("version").
			Immutable(),
		field.Text("content").
			Optional().
			Nillable(),
		field.JSON("structured", map[string]interface{}{}).
			Optional(),
		field.Enum("source").
			Values("auto", "manual", "rollback").
			Default("auto"),
		field.Text("change_summary").
			Optional(),
		field.JSON("affected_pages", []string{}).
			Optional(),
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

// Edges of the ProductDocHistory.
func (ProductDocHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("doc", ProductDoc.Type).
			Ref("histories").
			Field("doc_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ProductDocHistory.
func (ProductDocHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doc_id", "version").
			Unique(),
		index.Fields("doc_id", "created_at"),
		index.Fields("doc_id", "is_pinned"),
	}
}
