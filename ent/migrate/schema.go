// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PagesColumns holds the columns for the "pages" table.
	PagesColumns = []*schema.Column{
		{Name: "page_id", Type: field.TypeString, Unique: true},
		{Name: "slug", Type: field.TypeString, Size: 40},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "current_version_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// PagesTable holds the schema information for the "pages" table.
	PagesTable = &schema.Table{
		Name:       "pages",
		Columns:    PagesColumns,
		PrimaryKey: []*schema.Column{PagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pages_sessions_pages",
				Columns:    []*schema.Column{PagesColumns[8]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "page_session_id_slug",
				Unique:  true,
				Columns: []*schema.Column{PagesColumns[8], PagesColumns[1]},
			},
			{
				Name:    "page_session_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{PagesColumns[8], PagesColumns[4]},
			},
		},
	}
	// PageVersionsColumns holds the columns for the "page_versions" table.
	PageVersionsColumns = []*schema.Column{
		{Name: "version_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "html", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"auto", "manual", "rollback"}, Default: "auto"},
		{Name: "is_pinned", Type: field.TypeBool, Default: false},
		{Name: "is_released", Type: field.TypeBool, Default: false},
		{Name: "payload_pruned_at", Type: field.TypeTime, Nullable: true},
		{Name: "released_at", Type: field.TypeTime, Nullable: true},
		{Name: "fallback_used", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "page_id", Type: field.TypeString},
	}
	// PageVersionsTable holds the schema information for the "page_versions" table.
	PageVersionsTable = &schema.Table{
		Name:       "page_versions",
		Columns:    PageVersionsColumns,
		PrimaryKey: []*schema.Column{PageVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "page_versions_pages_versions",
				Columns:    []*schema.Column{PageVersionsColumns[11]},
				RefColumns: []*schema.Column{PagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pageversion_page_id_version",
				Unique:  true,
				Columns: []*schema.Column{PageVersionsColumns[11], PageVersionsColumns[1]},
			},
			{
				Name:    "pageversion_page_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PageVersionsColumns[11], PageVersionsColumns[10]},
			},
			{
				Name:    "pageversion_page_id_is_pinned",
				Unique:  false,
				Columns: []*schema.Column{PageVersionsColumns[11], PageVersionsColumns[5]},
			},
		},
	}
	// PlansColumns holds the columns for the "plans" table.
	PlansColumns = []*schema.Column{
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "goal", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "done", "failed", "aborted"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// PlansTable holds the schema information for the "plans" table.
	PlansTable = &schema.Table{
		Name:       "plans",
		Columns:    PlansColumns,
		PrimaryKey: []*schema.Column{PlansColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "plans_sessions_plans",
				Columns:    []*schema.Column{PlansColumns[5]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "plan_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[5], PlansColumns[2]},
			},
		},
	}
	// ProductDocsColumns holds the columns for the "product_docs" table.
	ProductDocsColumns = []*schema.Column{
		{Name: "doc_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "structured", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "confirmed", "outdated"}, Default: "draft"},
		{Name: "pending_regeneration_pages", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
	}
	// ProductDocsTable holds the schema information for the "product_docs" table.
	ProductDocsTable = &schema.Table{
		Name:       "product_docs",
		Columns:    ProductDocsColumns,
		PrimaryKey: []*schema.Column{ProductDocsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "product_docs_sessions_product_doc",
				Columns:    []*schema.Column{ProductDocsColumns[8]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ProductDocHistoriesColumns holds the columns for the "product_doc_histories" table.
	ProductDocHistoriesColumns = []*schema.Column{
		{Name: "history_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "structured", Type: field.TypeJSON, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"auto", "manual", "rollback"}, Default: "auto"},
		{Name: "change_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "affected_pages", Type: field.TypeJSON, Nullable: true},
		{Name: "is_pinned", Type: field.TypeBool, Default: false},
		{Name: "is_released", Type: field.TypeBool, Default: false},
		{Name: "payload_pruned_at", Type: field.TypeTime, Nullable: true},
		{Name: "released_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "doc_id", Type: field.TypeString},
	}
	// ProductDocHistoriesTable holds the schema information for the "product_doc_histories" table.
	ProductDocHistoriesTable = &schema.Table{
		Name:       "product_doc_histories",
		Columns:    ProductDocHistoriesColumns,
		PrimaryKey: []*schema.Column{ProductDocHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "product_doc_histories_product_docs_histories",
				Columns:    []*schema.Column{ProductDocHistoriesColumns[12]},
				RefColumns: []*schema.Column{ProductDocsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "productdochistory_doc_id_version",
				Unique:  true,
				Columns: []*schema.Column{ProductDocHistoriesColumns[12], ProductDocHistoriesColumns[1]},
			},
			{
				Name:    "productdochistory_doc_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProductDocHistoriesColumns[12], ProductDocHistoriesColumns[11]},
			},
			{
				Name:    "productdochistory_doc_id_is_pinned",
				Unique:  false,
				Columns: []*schema.Column{ProductDocHistoriesColumns[12], ProductDocHistoriesColumns[7]},
			},
		},
	}
	// ProjectSnapshotsColumns holds the columns for the "project_snapshots" table.
	ProjectSnapshotsColumns = []*schema.Column{
		{Name: "snapshot_id", Type: field.TypeString, Unique: true},
		{Name: "snapshot_number", Type: field.TypeInt},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"auto", "manual", "rollback"}, Default: "auto"},
		{Name: "label", Type: field.TypeString, Nullable: true},
		{Name: "doc_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "doc_structured", Type: field.TypeJSON, Nullable: true},
		{Name: "doc_version", Type: field.TypeInt, Default: 0},
		{Name: "pages", Type: field.TypeJSON, Nullable: true},
		{Name: "is_pinned", Type: field.TypeBool, Default: false},
		{Name: "is_released", Type: field.TypeBool, Default: false},
		{Name: "payload_pruned_at", Type: field.TypeTime, Nullable: true},
		{Name: "released_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ProjectSnapshotsTable holds the schema information for the "project_snapshots" table.
	ProjectSnapshotsTable = &schema.Table{
		Name:       "project_snapshots",
		Columns:    ProjectSnapshotsColumns,
		PrimaryKey: []*schema.Column{ProjectSnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "project_snapshots_sessions_snapshots",
				Columns:    []*schema.Column{ProjectSnapshotsColumns[13]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "projectsnapshot_session_id_snapshot_number",
				Unique:  true,
				Columns: []*schema.Column{ProjectSnapshotsColumns[13], ProjectSnapshotsColumns[1]},
			},
			{
				Name:    "projectsnapshot_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectSnapshotsColumns[13], ProjectSnapshotsColumns[12]},
			},
			{
				Name:    "projectsnapshot_session_id_is_pinned",
				Unique:  false,
				Columns: []*schema.Column{ProjectSnapshotsColumns[13], ProjectSnapshotsColumns[8]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "parent_run_id", Type: field.TypeString, Nullable: true},
		{Name: "trigger_source", Type: field.TypeString, Default: "api"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "waiting_input", "completed", "failed", "cancelled"}, Default: "queued"},
		{Name: "input_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "resume_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "checkpoint_thread", Type: field.TypeString},
		{Name: "checkpoint_ns", Type: field.TypeString, Nullable: true},
		{Name: "latest_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "state_changed_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "runs_sessions_runs",
				Columns:    []*schema.Column{RunsColumns[14]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "run_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[14], RunsColumns[3]},
			},
			{
				Name:    "run_status_state_changed_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[3], RunsColumns[13]},
			},
			{
				Name:    "run_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[14], RunsColumns[10]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "product_type", Type: field.TypeString, Nullable: true},
		{Name: "complexity", Type: field.TypeString, Nullable: true},
		{Name: "skill_id", Type: field.TypeString, Nullable: true},
		{Name: "doc_tier", Type: field.TypeString, Nullable: true},
		{Name: "graph_state", Type: field.TypeJSON, Nullable: true},
		{Name: "build_status", Type: field.TypeEnum, Enums: []string{"pending", "running", "success", "failed"}, Default: "pending"},
		{Name: "build_artifacts", Type: field.TypeJSON, Nullable: true},
		{Name: "aesthetic_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_build_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[7]},
			},
			{
				Name:    "session_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[10]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "seq", Type: field.TypeInt64},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"session", "plan", "task"}, Default: "session"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_events_sessions_events",
				Columns:    []*schema.Column{SessionEventsColumns[8]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_session_id_seq",
				Unique:  true,
				Columns: []*schema.Column{SessionEventsColumns[8], SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_session_id_run_id_seq",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[8], SessionEventsColumns[2], SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[7]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "done", "failed", "blocked", "skipped", "retrying", "aborted", "timeout"}, Default: "pending"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "depends_on", Type: field.TypeJSON, Nullable: true},
		{Name: "can_parallel", Type: field.TypeBool, Default: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "plan_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_plans_tasks",
				Columns:    []*schema.Column{TasksColumns[14]},
				RefColumns: []*schema.Column{PlansColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_plan_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[14], TasksColumns[4]},
			},
			{
				Name:    "task_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4], TasksColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PagesTable,
		PageVersionsTable,
		PlansTable,
		ProductDocsTable,
		ProductDocHistoriesTable,
		ProjectSnapshotsTable,
		RunsTable,
		SessionsTable,
		SessionEventsTable,
		TasksTable,
	}
)

func init() {
	PagesTable.ForeignKeys[0].RefTable = SessionsTable
	PageVersionsTable.ForeignKeys[0].RefTable = PagesTable
	PlansTable.ForeignKeys[0].RefTable = SessionsTable
	ProductDocsTable.ForeignKeys[0].RefTable = SessionsTable
	ProductDocHistoriesTable.ForeignKeys[0].RefTable = ProductDocsTable
	ProjectSnapshotsTable.ForeignKeys[0].RefTable = SessionsTable
	RunsTable.ForeignKeys[0].RefTable = SessionsTable
	SessionEventsTable.ForeignKeys[0].RefTable = SessionsTable
	TasksTable.ForeignKeys[0].RefTable = PlansTable
}
