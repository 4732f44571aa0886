package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent holds the schema definition for the SessionEvent entity —
// one row of the per-session append-only event log. seq is strictly
// increasing and gap-free for a given session.
type SessionEvent struct {
	ent.Schema
}

// Fields of the SessionEvent.
func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.Int64("seq").
			Immutable(),
		field.String("run_id").
			Optional().
			Immutable(),
		field.String("event_id").
			Unique().
			Immutable().
			Comment("Client-visible event identity (UUID)"),
		field.String("type").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Enum("source").
			Values("session", "plan", "task").
			Default("session"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SessionEvent.
func (SessionEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SessionEvent.
func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "seq").
			Unique(),
		index.Fields("session_id", "run_id", "seq"),
		index.Fields("created_at"),
	}
}
