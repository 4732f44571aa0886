package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity — one node of a
// planner-produced task graph.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("plan_id").
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.String("agent_type").
			Comment("Executor strategy: interview, generation, refinement, validator, export"),
		field.Enum("status").
			Values(
				"pending",
				"in_progress",
				"done",
				"failed",
				"blocked",
				"skipped",
				"retrying",
				"aborted",
				"timeout",
			).
			Default("pending"),
		field.Int("progress").
			Default(0).
			Comment("0-100"),
		field.JSON("depends_on", []string{}).
			Optional(),
		field.Bool("can_parallel").
			Default(true),
		field.Int("retry_count").
			Default(0),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", Plan.Type).
			Ref("tasks").
			Field("plan_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id", "status"),
		index.Fields("status", "started_at"),
	}
}
