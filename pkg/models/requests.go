package models

// CreateRunRequest creates a new run for a session.
type CreateRunRequest struct {
	SessionID      string   `json:"session_id"`
	Message        string   `json:"message"`
	GenerateNow    bool     `json:"generate_now,omitempty"`
	StyleReference string   `json:"style_reference,omitempty"`
	TargetPages    []string `json:"target_pages,omitempty"`
	TriggerSource  string   `json:"trigger_source,omitempty"`
	ParentRunID    string   `json:"parent_run_id,omitempty"`
}

// ResumeRunRequest re-enters a parked run with a payload that becomes
// part of the graph state.
type ResumeRunRequest struct {
	RunID   string                 `json:"run_id,omitempty"`
	Payload map[string]interface{} `json:"resume_payload,omitempty"`
}

// CreateSessionRequest creates a new session container.
type CreateSessionRequest struct {
	Title string `json:"title,omitempty"`
}

// CreatePageRequest creates a page within a session.
type CreatePageRequest struct {
	SessionID   string `json:"session_id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	OrderIndex  int    `json:"order_index,omitempty"`
}

// UpdateProductDocRequest applies a new revision to the product doc.
type UpdateProductDocRequest struct {
	Content       string                 `json:"content,omitempty"`
	Structured    map[string]interface{} `json:"structured,omitempty"`
	Source        string                 `json:"source,omitempty"`
	ChangeSummary string                 `json:"change_summary,omitempty"`
	AffectedPages []string               `json:"affected_pages,omitempty"`
}

// CreatePlanRequest persists a planner-produced task graph.
type CreatePlanRequest struct {
	SessionID string            `json:"session_id"`
	Goal      string            `json:"goal"`
	Tasks     []PlanTaskRequest `json:"tasks"`
}

// PlanTaskRequest is one task node of a plan request.
type PlanTaskRequest struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	AgentType   string   `json:"agent_type"`
	DependsOn   []string `json:"depends_on,omitempty"`
	CanParallel *bool    `json:"can_parallel,omitempty"`
}
