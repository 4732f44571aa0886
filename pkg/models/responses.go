package models

import "time"

// Orchestrator response actions.
const (
	ActionPagesGenerated = "pages_generated"
	ActionDirectReply    = "direct_reply"
	ActionRefineWaiting  = "refine_waiting"
	ActionCancelled      = "cancelled"
	ActionError          = "error"
)

// Response is one high-level record yielded by the orchestrator to its
// caller. The low-level progress stream travels on the event emitter.
type Response struct {
	Action    string                 `json:"action"`
	RunID     string                 `json:"run_id,omitempty"`
	SessionID string                 `json:"session_id,omitempty"`
	Message   string                 `json:"message,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
}

// EventListResponse is the paginated JSON form of the event log.
type EventListResponse struct {
	Events  []EventRecord `json:"events"`
	LastSeq int64         `json:"last_seq"`
	HasMore bool          `json:"has_more"`
}

// EventRecord is the wire form of one session event.
type EventRecord struct {
	Type      string                 `json:"type"`
	SessionID string                 `json:"session_id"`
	Seq       int64                  `json:"seq"`
	RunID     string                 `json:"run_id,omitempty"`
	EventID   string                 `json:"event_id"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Source    string                 `json:"source"`
	CreatedAt time.Time              `json:"created_at"`
}

// PreviewResponse is the rendered form of a page version.
type PreviewResponse struct {
	PageID    string `json:"page_id"`
	VersionID string `json:"version_id"`
	Version   int    `json:"version"`
	HTML      string `json:"html"`
}

// DataModelMigration summarizes schema work done by the app-data store
// during a run; included in the run_completed event when present.
type DataModelMigration struct {
	SchemaName    string   `json:"schema_name"`
	TablesCreated []string `json:"tables_created"`
	RowsInserted  int      `json:"rows_inserted"`
}
