package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Page holds the schema definition for the Page entity — one generated
// page of the web artifact. current_version_id is a weak reference
// resolved at read time, never a foreign key.
type Page struct {
	ent.Schema
}

// Fields of the Page.
func (Page) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("page_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("slug").
			MaxLen(40).
			Comment("Matches [a-z0-9-]+, unique per session"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Int("order_index").
			Default(0),
		field.String("current_version_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Page.
func (Page) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("pages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("versions", PageVersion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Page.
func (Page) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "slug").
			Unique(),
		index.Fields("session_id", "order_index"),
	}
}
