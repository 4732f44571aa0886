package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the Run entity — one durable unit
// of orchestrator work bound to a single user request and one checkpoint
// thread.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("parent_run_id").
			Optional().
			Nillable().
			Comment("Set when a run was spawned by another run (e.g. a refine loop)"),
		field.String("trigger_source").
			Default("api").
			Comment("What started the run: api, resume, internal"),
		field.Enum("status").
			Values("queued", "running", "waiting_input", "completed", "failed", "cancelled").
			Default("queued"),
		field.Text("input_message").
			Optional(),
		field.JSON("resume_payload", map[string]interface{}{}).
			Optional().
			Comment("Payload supplied on resume; injected into graph state as user_feedback"),
		field.String("checkpoint_thread").
			Comment("Checkpointer thread key, defaults to '{session_id}:{run_id}'"),
		field.String("checkpoint_ns").
			Optional(),
		field.Text("latest_error").
			Optional().
			Nillable(),
		field.JSON("metrics", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("Set on first entry to running"),
		field.Time("finished_at").
			Optional().
			Nillable().
			Comment("Set on first entry to a terminal state"),
		field.Time("state_changed_at").
			Default(time.Now).
			Comment("Last status transition; drives the staleness sweep"),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("runs").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "status"),
		index.Fields("status", "state_changed_at"),
		index.Fields("session_id", "created_at"),
	}
}
