// Package graph runs the static page-building graph: a fixed node order
// with conditional routing, per-node retries, cooperative cancellation,
// checkpointing, and interrupt/resume.
package graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/events"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
)

// Node names, in base order. Conditional edges are in next().
const (
	NodeMCPSetup          = "mcp_setup"
	NodeBrief             = "brief"
	NodeStyleExtractor    = "style_extractor"
	NodeComponentRegistry = "component_registry"
	NodeGenerate          = "generate"
	NodeAestheticScorer   = "aesthetic_scorer"
	NodeRefineGate        = "refine_gate"
	NodeRefine            = "refine"
	NodeVerify            = "verify"
	NodeRender            = "render"
)

// ErrRunCancelled is raised when the cancellation marker is observed at a
// node boundary.
var ErrRunCancelled = errors.New("run cancelled")

// aestheticProductTypes are the product classes that go through the
// aesthetic scorer.
var aestheticProductTypes = map[string]bool{
	"landing":    true,
	"card":       true,
	"invitation": true,
}

// NodeFunc is one node body: current state in, partial updates out.
// Conditional routing never calls these; predicates are pure functions of
// the state.
type NodeFunc func(ctx context.Context, state *models.GraphState) (map[string]interface{}, error)

// nodeSpec binds a node body to its retry budget and event payload
// extractor.
type nodeSpec struct {
	name        string
	run         NodeFunc
	maxAttempts int
	payload     func(state *models.GraphState) map[string]interface{}
}

// Update is one streamed step of graph execution.
type Update struct {
	Node      string
	Updates   map[string]interface{}
	State     *models.GraphState
	Interrupt *Interrupt
	Err       error
	Done      bool
}

// Input starts or resumes one graph execution.
type Input struct {
	SessionID string
	RunID     string
	ThreadID  string

	// State seeds a fresh execution. Ignored on resume.
	State *models.GraphState

	// Resume carries the payload of a resume command. Non-nil selects the
	// resume path: state is restored from the checkpoint and the payload
	// is injected as user_feedback.
	Resume map[string]interface{}

	Emitter *events.Emitter
}

// Executor drives the static graph.
type Executor struct {
	cfg     *config.GraphConfig
	cp      Checkpointer
	cancels *services.CancelRegistry
	deps    Deps
}

// NewExecutor creates a graph executor.
func NewExecutor(cfg *config.GraphConfig, cp Checkpointer, cancels *services.CancelRegistry, deps Deps) *Executor {
	if cfg == nil {
		cfg = config.DefaultGraphConfig()
	}
	return &Executor{cfg: cfg, cp: cp, cancels: cancels, deps: deps}
}

// Stream executes the graph, emitting node events and sending one Update
// per completed node. The channel closes after a terminal update: Done,
// Interrupt, or Err.
func (e *Executor) Stream(ctx context.Context, in Input) <-chan Update {
	out := make(chan Update, 16)
	go func() {
		defer close(out)
		e.run(ctx, in, out)
	}()
	return out
}

func (e *Executor) run(ctx context.Context, in Input, out chan<- Update) {
	nodes := e.buildNodes(in)

	state, current, err := e.prepare(ctx, in)
	if err != nil {
		out <- Update{Err: err}
		return
	}

	for current != "" {
		if e.cancelled(in.RunID) {
			out <- Update{Err: ErrRunCancelled, State: state}
			return
		}

		spec, ok := nodes[current]
		if !ok {
			out <- Update{Err: fmt.Errorf("unknown node %q", current), State: state}
			return
		}

		e.emitNode(ctx, in, spec.name+"_start", nil)
		updates, err := e.runNode(ctx, spec, state)
		if err != nil {
			if intr, ok := AsInterrupt(err); ok {
				state.CurrentNode = current
				if cpErr := e.cp.Put(ctx, in.ThreadID, Checkpoint{State: state.ToMap(), Node: current}); cpErr != nil {
					slog.Warn("Failed to checkpoint at interrupt", "thread_id", in.ThreadID, "error", cpErr)
				}
				e.emitNode(ctx, in, events.TypeInterrupt, intr.Payload)
				out <- Update{Node: current, State: state, Interrupt: intr}
				return
			}
			out <- Update{Node: current, State: state, Err: err}
			return
		}

		state = mergeState(state, updates)
		state.CurrentNode = current
		if err := e.cp.Put(ctx, in.ThreadID, Checkpoint{State: state.ToMap(), Node: current}); err != nil {
			slog.Warn("Failed to checkpoint", "thread_id", in.ThreadID, "node", current, "error", err)
		}

		var payload map[string]interface{}
		if spec.payload != nil {
			payload = spec.payload(state)
		}
		e.emitNode(ctx, in, spec.name+"_done", payload)
		out <- Update{Node: current, Updates: updates, State: state}

		if e.cancelled(in.RunID) {
			out <- Update{Err: ErrRunCancelled, State: state}
			return
		}
		current = e.next(current, state)
	}

	if err := e.cp.Delete(ctx, in.ThreadID); err != nil {
		slog.Warn("Failed to drop checkpoint", "thread_id", in.ThreadID, "error", err)
	}
	out <- Update{Done: true, State: state}
}

// prepare resolves the starting state and node for fresh and resumed
// executions.
func (e *Executor) prepare(ctx context.Context, in Input) (*models.GraphState, string, error) {
	if in.Resume == nil {
		state := in.State
		if state == nil {
			state = &models.GraphState{}
		}
		return state, NodeMCPSetup, nil
	}

	cp, err := e.cp.Get(ctx, in.ThreadID)
	if err != nil {
		if errors.Is(err, ErrNoCheckpoint) {
			return nil, "", fmt.Errorf("cannot resume thread %s: %w", in.ThreadID, err)
		}
		return nil, "", err
	}

	state := models.StateFromMap(models.StripEphemeralKeys(cp.State))
	if feedback, ok := in.Resume["user_feedback"].(string); ok && feedback != "" {
		state.UserFeedback = feedback
	} else if msg, ok := in.Resume["message"].(string); ok {
		state.UserFeedback = msg
	}
	state.RunID = in.RunID

	// Re-enter at the interrupted node; with feedback present it takes
	// the other branch.
	node := cp.Node
	if node == "" {
		node = NodeMCPSetup
	}
	return state, node, nil
}

// runNode executes one node body with the class retry budget. Interrupts
// and cancellation pass straight through.
func (e *Executor) runNode(ctx context.Context, spec *nodeSpec, state *models.GraphState) (map[string]interface{}, error) {
	var lastErr error
	for attempt := 1; attempt <= spec.maxAttempts; attempt++ {
		updates, err := spec.run(ctx, state)
		if err == nil {
			return updates, nil
		}
		if _, ok := AsInterrupt(err); ok {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, err
		}
		lastErr = err
		if attempt < spec.maxAttempts {
			slog.Warn("Node attempt failed, retrying",
				"node", spec.name, "attempt", attempt, "error", err)
			select {
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("node %s failed after %d attempts: %w", spec.name, spec.maxAttempts, lastErr)
}

// next is the routing table. Predicates read state and never mutate it.
func (e *Executor) next(current string, state *models.GraphState) string {
	switch current {
	case NodeMCPSetup:
		return NodeBrief
	case NodeBrief:
		return NodeStyleExtractor
	case NodeStyleExtractor:
		return NodeComponentRegistry
	case NodeComponentRegistry:
		return NodeGenerate
	case NodeGenerate:
		if e.cfg.AestheticScoringEnabled && aestheticProductTypes[state.ProductType] {
			return NodeAestheticScorer
		}
		return NodeRefineGate
	case NodeAestheticScorer:
		return NodeRefineGate
	case NodeRefineGate:
		if state.UserFeedback != "" {
			return NodeRefine
		}
		return NodeVerify
	case NodeRefine:
		return NodeVerify
	case NodeVerify:
		if !e.cfg.VerifyGateEnabled || !state.VerifyBlocked {
			return NodeRender
		}
		// One repair round through the gate; a second failed verify
		// renders anyway with the report attached.
		if verifyAttempts(state) >= 2 {
			return NodeRender
		}
		return NodeRefineGate
	case NodeRender:
		return ""
	default:
		return ""
	}
}

// verifyAttempts reads the attempt counter the verify node keeps in its
// report.
func verifyAttempts(state *models.GraphState) int {
	if state.VerifyReport == nil {
		return 0
	}
	if n, ok := state.VerifyReport["attempts"].(float64); ok {
		return int(n)
	}
	if n, ok := state.VerifyReport["attempts"].(int); ok {
		return n
	}
	return 0
}

func (e *Executor) cancelled(runID string) bool {
	return e.cancels != nil && e.cancels.IsCancelled(runID)
}

func (e *Executor) emitNode(ctx context.Context, in Input, eventType string, payload map[string]interface{}) {
	if in.Emitter == nil {
		return
	}
	in.Emitter.Emit(ctx, &events.Envelope{
		Type:      eventType,
		SessionID: in.SessionID,
		RunID:     in.RunID,
		Payload:   payload,
		Source:    events.SourceSession,
	})
}

// mergeState folds node updates into the state through its map form.
// Runtime handles survive by reference.
func mergeState(state *models.GraphState, updates map[string]interface{}) *models.GraphState {
	if len(updates) == 0 {
		return state
	}
	m := state.ToMap()
	for k, v := range updates {
		m[k] = v
	}
	merged := models.StateFromMap(m)
	merged.Runtime = state.Runtime
	return merged
}
