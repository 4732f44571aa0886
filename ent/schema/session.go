package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity — the
// long-lived project container that owns runs, the product doc, pages,
// snapshots, plans and events.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("title").
			Optional(),
		// Routing metadata resolved by the classifier.
		field.String("product_type").
			Optional().
			Comment("Product classification (landing, card, invitation, ...)"),
		field.String("complexity").
			Optional(),
		field.String("skill_id").
			Optional(),
		field.String("doc_tier").
			Optional(),
		// Latest graph-state fields, mirrored from the state store.
		field.JSON("graph_state", map[string]interface{}{}).
			Optional(),
		field.Enum("build_status").
			Values("pending", "running", "success", "failed").
			Default("pending"),
		field.JSON("build_artifacts", map[string]interface{}{}).
			Optional(),
		field.JSON("aesthetic_scores", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("runs", Run.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("product_doc", ProductDoc.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("pages", Page.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("snapshots", ProjectSnapshot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("plans", Plan.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", SessionEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("build_status"),
		index.Fields("created_at"),
	}
}
