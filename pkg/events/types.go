// Package events provides the per-session append-only event log and the
// in-process emitter that fans events out to SSE subscribers.
//
// Every event carries a per-session sequence number assigned inside the
// database transaction that writes the row — seq is strictly increasing
// and gap-free for a session, across concurrent emitters.
package events

import "time"

// Run lifecycle event types.
const (
	TypeRunCreated      = "run_created"
	TypeRunStarted      = "run_started"
	TypeRunProgress     = "run_progress"
	TypeRunWaitingInput = "run_waiting_input"
	TypeRunResumed      = "run_resumed"
	TypeRunCancelled    = "run_cancelled"
	TypeRunFailed       = "run_failed"
	TypeRunCompleted    = "run_completed"
	TypeInterrupt       = "interrupt"
)

// Task lifecycle event types (planner task graphs).
const (
	TypeTaskStarted  = "task_started"
	TypeTaskProgress = "task_progress"
	TypeTaskDone     = "task_done"
	TypeTaskFailed   = "task_failed"
	TypeTaskRetrying = "task_retrying"
	TypeTaskBlocked  = "task_blocked"
)

// Versioning event types.
const (
	TypeProductDocGenerated = "product_doc_generated"
	TypeProductDocUpdated   = "product_doc_updated"
	TypeProductDocConfirmed = "product_doc_confirmed"
	TypeProductDocOutdated  = "product_doc_outdated"
	TypeHistoryCreated      = "history_created"
	TypeSnapshotCreated     = "snapshot_created"
	TypePageCreated         = "page_created"
	TypePageVersionCreated  = "page_version_created"
	TypePagePreviewReady    = "page_preview_ready"
)

// Graph node event types.
const (
	TypeVerifyStart    = "verify_start"
	TypeVerifyPass     = "verify_pass"
	TypeVerifyFail     = "verify_fail"
	TypeBriefStart     = "brief_start"
	TypeBriefDone      = "brief_done"
	TypeGenerateStart  = "generate_start"
	TypeGenerateDone   = "generate_done"
	TypeRefineStart    = "refine_start"
	TypeRefineDone     = "refine_done"
	TypeRegistryStart  = "registry_start"
	TypeRegistryDone   = "registry_done"
	TypeStyleExtracted = "style_extracted"
)

// Agent envelope event types.
const (
	TypeAgentStart    = "agent_start"
	TypeAgentProgress = "agent_progress"
	TypeAgentEnd      = "agent_end"
	TypeError         = "error"
	TypeDone          = "done"
)

// Event sources.
const (
	SourceSession = "session"
	SourcePlan    = "plan"
	SourceTask    = "task"
)

// Envelope is one event as seen by in-process listeners and SSE clients.
// Seq is zero until the store assigns it; StoreFailed marks events that
// were surfaced in-process even though the durable write failed.
type Envelope struct {
	Type      string                 `json:"type"`
	SessionID string                 `json:"session_id"`
	Seq       int64                  `json:"seq"`
	RunID     string                 `json:"run_id,omitempty"`
	EventID   string                 `json:"event_id"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Source    string                 `json:"source"`
	CreatedAt time.Time              `json:"created_at"`

	StoreFailed bool `json:"-"`
}
