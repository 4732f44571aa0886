// Package executor drives a plan's task DAG through a bounded pool of
// workers. The scheduler decides readiness; this package owns timeouts,
// retries with backoff, cancellation, and event emission.
package executor

import (
	"context"
	"fmt"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/events"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/llm"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
)

// Agent types a plan task may name.
const (
	AgentInterview  = "interview"
	AgentGeneration = "generation"
	AgentRefinement = "refinement"
	AgentValidator  = "validator"
	AgentExport     = "export"
)

// TaskExecutor is the pluggable per-agent-type strategy.
type TaskExecutor interface {
	// Execute runs one task to completion, emitting progress on the
	// emitter, and returns the task's result map.
	Execute(ctx context.Context, task *ent.Task, emitter *events.Emitter) (map[string]interface{}, error)
}

// Deps holds the collaborators strategies draw on.
type Deps struct {
	LLM       llm.Client
	Docs      *services.ProductDocService
	Pages     *services.PageService
	Snapshots *services.SnapshotService
	SessionID string
	RunID     string
}

// Factory maps an agent_type to its executor.
type Factory func(agentType string, deps Deps) (TaskExecutor, error)

// DefaultFactory builds the built-in strategies.
func DefaultFactory(agentType string, deps Deps) (TaskExecutor, error) {
	switch agentType {
	case AgentInterview:
		return &interviewExecutor{deps: deps}, nil
	case AgentGeneration:
		return &generationExecutor{deps: deps}, nil
	case AgentRefinement:
		return &refinementExecutor{deps: deps}, nil
	case AgentValidator:
		return &validatorExecutor{deps: deps}, nil
	case AgentExport:
		return &exportExecutor{deps: deps}, nil
	default:
		return nil, fmt.Errorf("unknown agent_type %q", agentType)
	}
}
