package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// ProductDoc holds the schema definition for the ProductDoc entity — the
// authoritative structured + markdown description of what to build.
// Exactly one exists per session.
type ProductDoc struct {
	ent.Schema
}

// Fields of the ProductDoc.
func (ProductDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("doc_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique().
			Immutable(),
		field.Text("content"),
		field.JSON("structured", map[string]interface{}{}).
			Optional(),
		field.Int("version").
			Default(1),
		field.Enum("status").
			Values("draft", "confirmed", "outdated").
			Default("draft"),
		field.JSON("pending_regeneration_pages", []string{}).
			Optional().
			Comment("Normalized page slugs flagged for regeneration after a doc update"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ProductDoc.
func (ProductDoc) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("product_doc").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("histories", ProductDocHistory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
