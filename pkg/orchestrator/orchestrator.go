// Package orchestrator is the façade the HTTP layer drives: one call per
// user request that opens (or resumes) a run, steers the graph executor,
// persists the outcome, and yields high-level response records. Low-level
// progress travels on the event emitter throughout.
package orchestrator

import (
	"context"
	"errors"
	"log/slog"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	entrun "github.com/TheSmartAz/instant-coffee-sub001/ent/run"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/events"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/graph"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
)

// Orchestrator drives one run per request end to end.
type Orchestrator struct {
	runs    *services.RunService
	state   *services.StateService
	graph   *graph.Executor
	emitter *events.Emitter
	cancels *services.CancelRegistry
}

// New creates an orchestrator.
func New(runs *services.RunService, state *services.StateService, g *graph.Executor, emitter *events.Emitter, cancels *services.CancelRegistry) *Orchestrator {
	return &Orchestrator{runs: runs, state: state, graph: g, emitter: emitter, cancels: cancels}
}

// Request is one user turn. A non-nil Resume selects the resume path.
type Request struct {
	SessionID      string
	Message        string
	GenerateNow    bool
	StyleReference string
	TargetPages    []string

	// Resume re-enters a parked run. RunID empty means "latest waiting
	// run for the session".
	Resume *models.ResumeRunRequest
}

// StreamResponses processes one request end to end, sending response
// records on the returned channel. The channel closes after the terminal
// record.
func (o *Orchestrator) StreamResponses(ctx context.Context, req Request) <-chan models.Response {
	out := make(chan models.Response, 4)
	go func() {
		defer close(out)

		o.emitter.EmitType(ctx, req.SessionID, "", events.TypeAgentStart,
			map[string]interface{}{"message": req.Message})

		var (
			run *ent.Run
			err error
		)
		if req.Resume != nil {
			run, err = o.OpenResume(ctx, req)
		} else {
			run, err = o.OpenRun(ctx, req)
		}
		if err != nil {
			out <- models.Response{
				Action:    models.ActionError,
				SessionID: req.SessionID,
				Message:   err.Error(),
			}
			return
		}

		for resp := range o.Drive(ctx, run, req) {
			out <- resp
		}
	}()
	return out
}

// OpenRun creates a queued run and emits run_created. Driving it is the
// caller's next step, typically in the background.
func (o *Orchestrator) OpenRun(ctx context.Context, req Request) (*ent.Run, error) {
	run, err := o.runs.CreateRun(ctx, models.CreateRunRequest{
		SessionID:      req.SessionID,
		Message:        req.Message,
		GenerateNow:    req.GenerateNow,
		StyleReference: req.StyleReference,
		TargetPages:    req.TargetPages,
	})
	if err != nil {
		return nil, err
	}
	o.emitRun(ctx, run, events.TypeRunCreated, nil)
	return run, nil
}

// OpenResume resolves the target run (explicit or latest waiting),
// transitions it back to running, and emits run_resumed. An invalid
// transition surfaces as a state conflict.
func (o *Orchestrator) OpenResume(ctx context.Context, req Request) (*ent.Run, error) {
	var run *ent.Run
	var err error
	if req.Resume != nil && req.Resume.RunID != "" {
		run, err = o.runs.GetRun(ctx, req.Resume.RunID)
	} else {
		run, err = o.runs.GetLatestWaiting(ctx, req.SessionID)
	}
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{}
	if req.Resume != nil && req.Resume.Payload != nil {
		payload = req.Resume.Payload
	}
	if _, ok := payload["user_feedback"]; !ok && req.Message != "" {
		payload["user_feedback"] = req.Message
	}

	run, err = o.runs.Resume(ctx, run.ID, payload)
	if err != nil {
		return nil, err
	}
	o.emitRun(ctx, run, events.TypeRunResumed, nil)
	return run, nil
}

// Drive steers an opened run through the graph to a terminal outcome,
// persisting it and yielding response records. The channel closes after
// the terminal record.
func (o *Orchestrator) Drive(ctx context.Context, run *ent.Run, req Request) <-chan models.Response {
	out := make(chan models.Response, 4)
	go func() {
		defer close(out)

		input, err := o.prepareInput(ctx, run, req)
		if err != nil {
			o.finishFailed(ctx, run, err, out)
			return
		}
		o.consume(ctx, run, input, out)
	}()
	return out
}

// prepareInput builds the graph input: fresh runs get an initial state
// (starting from any prior session state), resumed runs get a resume
// command carrying the stored payload.
func (o *Orchestrator) prepareInput(ctx context.Context, run *ent.Run, req Request) (graph.Input, error) {
	if req.Resume != nil {
		payload := run.ResumePayload
		if payload == nil {
			payload = map[string]interface{}{}
		}
		return graph.Input{
			SessionID: run.SessionID,
			RunID:     run.ID,
			ThreadID:  run.CheckpointThread,
			Resume:    payload,
			Emitter:   o.emitter,
		}, nil
	}

	if run.Status == entrun.StatusQueued {
		started, err := o.runs.Start(ctx, run.ID)
		if err != nil {
			return graph.Input{}, err
		}
		run = started
		o.emitRun(ctx, run, events.TypeRunStarted, nil)
	}

	state := &models.GraphState{
		UserInput: req.Message,
		RunID:     run.ID,
	}
	if prior, err := o.state.Load(ctx, run.SessionID); err == nil && prior != nil {
		state = models.StateFromMap(models.StripEphemeralKeys(prior))
		state.UserInput = req.Message
		state.UserFeedback = ""
		state.RunID = run.ID
	}

	return graph.Input{
		SessionID: run.SessionID,
		RunID:     run.ID,
		ThreadID:  run.CheckpointThread,
		State:     state,
		Emitter:   o.emitter,
	}, nil
}

// consume drains graph updates to a terminal outcome and persists it.
func (o *Orchestrator) consume(ctx context.Context, run *ent.Run, input graph.Input, out chan<- models.Response) {
	var latest *models.GraphState
	var interrupt *graph.Interrupt
	var runErr error

	for update := range o.graph.Stream(ctx, input) {
		if update.State != nil {
			latest = update.State
		}
		if update.Interrupt != nil {
			interrupt = update.Interrupt
			break
		}
		if update.Err != nil {
			runErr = update.Err
			break
		}
		if update.Done {
			break
		}
	}

	switch {
	case interrupt != nil:
		o.parkWaiting(ctx, run, input, interrupt, out)
	case errors.Is(runErr, graph.ErrRunCancelled) || o.cancels.IsCancelled(run.ID):
		o.finishCancelled(ctx, run, out)
	case runErr != nil:
		o.finishFailed(ctx, run, runErr, out)
	default:
		o.finishCompleted(ctx, run, input.SessionID, latest, out)
	}
}

func (o *Orchestrator) parkWaiting(ctx context.Context, run *ent.Run, input graph.Input, interrupt *graph.Interrupt, out chan<- models.Response) {
	updated, err := o.runs.PersistState(ctx, run.ID, entrun.StatusWaitingInput, nil)
	if err != nil {
		o.finishFailed(ctx, run, err, out)
		return
	}
	o.emitRun(ctx, updated, events.TypeRunWaitingInput, interrupt.Payload)

	message, _ := interrupt.Payload["message"].(string)
	out <- models.Response{
		Action:    models.ActionRefineWaiting,
		RunID:     run.ID,
		SessionID: input.SessionID,
		Message:   message,
		Payload:   interrupt.Payload,
	}
}

func (o *Orchestrator) finishCancelled(ctx context.Context, run *ent.Run, out chan<- models.Response) {
	updated, err := o.runs.PersistState(ctx, run.ID, entrun.StatusCancelled, nil)
	if err != nil {
		if !services.IsStateConflict(err) {
			slog.Error("Failed to persist cancelled run", "run_id", run.ID, "error", err)
		}
		updated = run
	}
	o.emitRun(ctx, updated, events.TypeRunCancelled, nil)
	out <- models.Response{
		Action:    models.ActionCancelled,
		RunID:     run.ID,
		SessionID: run.SessionID,
		Message:   "run cancelled",
	}
}

func (o *Orchestrator) finishFailed(ctx context.Context, run *ent.Run, runErr error, out chan<- models.Response) {
	msg := runErr.Error()
	updated, err := o.runs.PersistState(ctx, run.ID, entrun.StatusFailed, &services.RunStateUpdate{LatestError: &msg})
	if err != nil {
		if !services.IsStateConflict(err) {
			slog.Error("Failed to persist failed run", "run_id", run.ID, "error", err)
		}
		updated = run
	}
	o.emitRun(ctx, updated, events.TypeRunFailed, map[string]interface{}{"error": msg})
	out <- models.Response{
		Action:    models.ActionError,
		RunID:     run.ID,
		SessionID: run.SessionID,
		Message:   msg,
	}
}

func (o *Orchestrator) finishCompleted(ctx context.Context, run *ent.Run, sessionID string, state *models.GraphState, out chan<- models.Response) {
	if state == nil {
		state = &models.GraphState{}
	}

	stateMap := models.StripEphemeralKeys(state.ToMap())
	if err := o.state.Save(ctx, sessionID, stateMap); err != nil {
		slog.Error("Failed to persist session state", "session_id", sessionID, "error", err)
	}

	meta := services.SessionMetadata{}
	if state.BuildStatus != "" {
		status := state.BuildStatus
		meta.BuildStatus = &status
	}
	if state.BuildArtifacts != nil {
		meta.BuildArtifacts = state.BuildArtifacts
	}
	if state.AestheticScores != nil {
		meta.AestheticScores = state.AestheticScores
	}
	if meta.BuildStatus != nil || meta.BuildArtifacts != nil || meta.AestheticScores != nil {
		if err := o.state.UpdateMetadata(ctx, sessionID, meta); err != nil {
			slog.Error("Failed to persist session metadata", "session_id", sessionID, "error", err)
		}
	}

	updated, err := o.runs.PersistState(ctx, run.ID, entrun.StatusCompleted, &services.RunStateUpdate{
		Metrics: map[string]interface{}{"pages": len(state.Pages)},
	})
	if err != nil {
		o.finishFailed(ctx, run, err, out)
		return
	}

	completion := map[string]interface{}{"pages": len(state.Pages)}
	if state.BuildArtifacts != nil {
		if migration, ok := state.BuildArtifacts["data_model_migration"]; ok {
			completion["data_model_migration"] = migration
		}
	}
	o.emitRun(ctx, updated, events.TypeRunCompleted, completion)

	if len(state.Pages) > 0 {
		out <- models.Response{
			Action:    models.ActionPagesGenerated,
			RunID:     run.ID,
			SessionID: sessionID,
			Payload: map[string]interface{}{
				"pages":           state.Pages,
				"build_artifacts": state.BuildArtifacts,
			},
		}
		return
	}

	reply := ""
	if state.ProductDoc != nil {
		reply, _ = state.ProductDoc["content"].(string)
	}
	out <- models.Response{
		Action:    models.ActionDirectReply,
		RunID:     run.ID,
		SessionID: sessionID,
		Message:   reply,
	}
}

func (o *Orchestrator) emitRun(ctx context.Context, run *ent.Run, eventType string, payload map[string]interface{}) {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	payload["status"] = string(run.Status)
	o.emitter.EmitType(ctx, run.SessionID, run.ID, eventType, payload)
}
