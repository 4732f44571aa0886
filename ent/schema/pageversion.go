package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PageVersion holds the schema definition for the PageVersion entity —
// one immutable HTML rendition of a page. The html payload is nulled when
// the row is released by retention.
type PageVersion struct {
	ent.Schema
}

// Fields of the PageVersion.
func (PageVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("version_id").
			Unique().
			Immutable(),
		field.String("page_id").
			Immutable(),
		field.Int("version").
			Immutable(),
		field.Text("html").
			Optional().
			Nillable(),
		field.Text("description").
			Optional(),
		field.Enum("source").
			Values("auto", "manual", "rollback").
			Default("auto"),
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
		field.Bool("fallback_used").
			Default(false).
			Comment("True when the generator fell back to a template rendition"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PageVersion.
func (PageVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("page", Page.Type).
			Ref("versions").
			Field("page_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PageVersion.
func (PageVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("page_id", "version").
			Unique(),
		index.Fields("page_id", "created_at"),
		index.Fields("page_id", "is_pinned"),
	}
}
