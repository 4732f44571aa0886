// Package models holds the shared data types exchanged between the
// services, the graph executor, and the HTTP layer.
package models

import "encoding/json"

// EphemeralStateKeys are runtime-only entries stripped from a graph state
// map before it is persisted. They hold live handles (MCP connections,
// tool clients) that cannot be serialized and must not leak into
// checkpoints or the session row.
var EphemeralStateKeys = []string{
	"mcp_client",
	"tool_handles",
	"llm_client",
	"workspace_handle",
}

// GraphState is the typed shared record flowing through the graph
// executor. Nodes receive the current state and return partial updates
// that are merged into it; the merged state is what gets checkpointed.
type GraphState struct {
	UserInput         string                   `json:"user_input,omitempty"`
	Assets            []string                 `json:"assets,omitempty"`
	ProductDoc        map[string]interface{}   `json:"product_doc,omitempty"`
	Pages             []map[string]interface{} `json:"pages,omitempty"`
	DataModel         map[string]interface{}   `json:"data_model,omitempty"`
	StyleTokens       map[string]interface{}   `json:"style_tokens,omitempty"`
	ComponentRegistry map[string]interface{}   `json:"component_registry,omitempty"`
	PageSchemas       map[string]interface{}   `json:"page_schemas,omitempty"`
	AestheticEnabled  bool                     `json:"aesthetic_enabled,omitempty"`
	AestheticScores   map[string]interface{}   `json:"aesthetic_scores,omitempty"`
	UserFeedback      string                   `json:"user_feedback,omitempty"`
	BuildArtifacts    map[string]interface{}   `json:"build_artifacts,omitempty"`
	BuildStatus       string                   `json:"build_status,omitempty"`
	RunID             string                   `json:"run_id,omitempty"`
	RunStatus         string                   `json:"run_status,omitempty"`
	VerifyReport      map[string]interface{}   `json:"verify_report,omitempty"`
	VerifyBlocked     bool                     `json:"verify_blocked,omitempty"`
	CurrentNode       string                   `json:"current_node,omitempty"`
	Error             string                   `json:"error,omitempty"`

	// ProductType routes the aesthetic-scoring conditional.
	ProductType string `json:"product_type,omitempty"`

	// Runtime holds live handles. Never serialized.
	Runtime map[string]interface{} `json:"-"`
}

// Clone returns a deep copy of the state via JSON round-trip. Runtime
// handles are carried over by reference — they are process-local.
func (s *GraphState) Clone() *GraphState {
	raw, err := json.Marshal(s)
	if err != nil {
		// GraphState is plain data; marshal cannot fail on valid input.
		return &GraphState{Runtime: s.Runtime}
	}
	var out GraphState
	_ = json.Unmarshal(raw, &out)
	out.Runtime = s.Runtime
	return &out
}

// ToMap converts the state to its persisted map form with ephemeral keys
// already absent (Runtime is not serialized).
func (s *GraphState) ToMap() map[string]interface{} {
	raw, err := json.Marshal(s)
	if err != nil {
		return map[string]interface{}{}
	}
	var m map[string]interface{}
	_ = json.Unmarshal(raw, &m)
	return m
}

// StateFromMap rebuilds a GraphState from its persisted map form.
func StateFromMap(m map[string]interface{}) *GraphState {
	raw, err := json.Marshal(m)
	if err != nil {
		return &GraphState{}
	}
	var s GraphState
	_ = json.Unmarshal(raw, &s)
	return &s
}

// StripEphemeralKeys removes runtime-only entries from a raw state map.
// Used when state arrives as a map (resume payloads, legacy rows) rather
// than as a typed GraphState.
func StripEphemeralKeys(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	for _, k := range EphemeralStateKeys {
		delete(m, k)
	}
	return m
}
