package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	entrun "github.com/TheSmartAz/instant-coffee-sub001/ent/run"
	entsession "github.com/TheSmartAz/instant-coffee-sub001/ent/session"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
)

// runTransitions is the allowed status transition matrix. Terminal states
// admit no further transitions.
var runTransitions = map[entrun.Status][]entrun.Status{
	entrun.StatusQueued:       {entrun.StatusRunning, entrun.StatusFailed, entrun.StatusCancelled},
	entrun.StatusRunning:      {entrun.StatusWaitingInput, entrun.StatusCompleted, entrun.StatusFailed, entrun.StatusCancelled},
	entrun.StatusWaitingInput: {entrun.StatusRunning, entrun.StatusCancelled},
}

// IsTerminalRunStatus reports whether a status admits no further transitions.
func IsTerminalRunStatus(status entrun.Status) bool {
	switch status {
	case entrun.StatusCompleted, entrun.StatusFailed, entrun.StatusCancelled:
		return true
	}
	return false
}

func transitionAllowed(from, to entrun.Status) bool {
	for _, t := range runTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// RunStateUpdate carries optional fields persisted alongside a status
// transition.
type RunStateUpdate struct {
	LatestError   *string
	Metrics       map[string]interface{}
	ResumePayload map[string]interface{}
}

// RunService manages run lifecycle and enforces the status machine.
type RunService struct {
	client  *ent.Client
	cancels *CancelRegistry
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client, cancels *CancelRegistry) *RunService {
	return &RunService{client: client, cancels: cancels}
}

// CreateRun creates a queued run bound to a fresh checkpoint thread.
func (s *RunService) CreateRun(httpCtx context.Context, req models.CreateRunRequest) (*ent.Run, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Message == "" {
		return nil, NewValidationError("message", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := s.client.Session.Query().
		Where(entsession.IDEQ(req.SessionID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	runID := uuid.New().String()
	triggerSource := req.TriggerSource
	if triggerSource == "" {
		triggerSource = "api"
	}

	builder := s.client.Run.Create().
		SetID(runID).
		SetSessionID(req.SessionID).
		SetTriggerSource(triggerSource).
		SetStatus(entrun.StatusQueued).
		SetInputMessage(req.Message).
		SetCheckpointThread(fmt.Sprintf("%s:%s", req.SessionID, runID))
	if req.ParentRunID != "" {
		builder.SetParentRunID(req.ParentRunID)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return run, nil
}

// GetRun retrieves a run by ID.
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.Run, error) {
	run, err := s.client.Run.Query().
		Where(entrun.IDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListBySession returns a session's runs, newest first.
func (s *RunService) ListBySession(ctx context.Context, sessionID string, limit int) ([]*ent.Run, error) {
	if limit <= 0 {
		limit = 50
	}
	runs, err := s.client.Run.Query().
		Where(entrun.SessionIDEQ(sessionID)).
		Order(ent.Desc(entrun.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// GetLatestWaiting resolves the most recent waiting_input run for a
// session. Returns ErrNoWaitingRun when none exists.
func (s *RunService) GetLatestWaiting(ctx context.Context, sessionID string) (*ent.Run, error) {
	run, err := s.client.Run.Query().
		Where(
			entrun.SessionIDEQ(sessionID),
			entrun.StatusEQ(entrun.StatusWaitingInput),
		).
		Order(ent.Desc(entrun.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoWaitingRun
		}
		return nil, fmt.Errorf("failed to resolve waiting run: %w", err)
	}
	return run, nil
}

// Start transitions a queued run to running.
func (s *RunService) Start(ctx context.Context, runID string) (*ent.Run, error) {
	return s.PersistState(ctx, runID, entrun.StatusRunning, nil)
}

// Resume transitions a waiting_input run back to running, recording the
// resume payload for injection into graph state.
func (s *RunService) Resume(ctx context.Context, runID string, payload map[string]interface{}) (*ent.Run, error) {
	return s.PersistState(ctx, runID, entrun.StatusRunning, &RunStateUpdate{ResumePayload: payload})
}

// Cancel moves a non-terminal run to cancelled. On a terminal run it is a
// no-op; transitioned reports whether a transition actually happened.
func (s *RunService) Cancel(ctx context.Context, runID string) (run *ent.Run, transitioned bool, err error) {
	current, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, false, err
	}
	if IsTerminalRunStatus(current.Status) {
		return current, false, nil
	}

	updated, err := s.PersistState(ctx, runID, entrun.StatusCancelled, nil)
	if err != nil {
		// A racing transition may have beaten us to a terminal state.
		if IsStateConflict(err) {
			latest, getErr := s.GetRun(ctx, runID)
			if getErr == nil && IsTerminalRunStatus(latest.Status) {
				return latest, false, nil
			}
		}
		return nil, false, err
	}
	return updated, true, nil
}

// PersistState applies one validated status transition with its side
// effects: started_at on first running, finished_at on first terminal,
// and cancellation-marker bookkeeping.
func (s *RunService) PersistState(httpCtx context.Context, runID string, target entrun.Status, upd *RunStateUpdate) (*ent.Run, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.Run.Query().
		Where(entrun.IDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}

	if current.Status != target && !transitionAllowed(current.Status, target) {
		return nil, NewStateConflictError("run", runID, string(current.Status), string(target))
	}

	now := time.Now().UTC()
	update := tx.Run.UpdateOneID(runID).
		SetStatus(target).
		SetStateChangedAt(now)

	if target == entrun.StatusRunning && current.StartedAt == nil {
		update.SetStartedAt(now)
	}
	if IsTerminalRunStatus(target) && current.FinishedAt == nil {
		update.SetFinishedAt(now)
	}
	if upd != nil {
		if upd.LatestError != nil {
			update.SetLatestError(*upd.LatestError)
		}
		if upd.Metrics != nil {
			update.SetMetrics(upd.Metrics)
		}
		if upd.ResumePayload != nil {
			update.SetResumePayload(upd.ResumePayload)
		}
	}

	run, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist run state: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit run state: %w", err)
	}

	// Marker bookkeeping happens after commit so readers never observe a
	// marked run that is not durably cancelled.
	if s.cancels != nil {
		switch {
		case target == entrun.StatusCancelled:
			s.cancels.Mark(runID)
		case IsTerminalRunStatus(target):
			s.cancels.Clear(runID)
		}
	}
	return run, nil
}

// SweepStale fails runs stuck in running whose last transition is older
// than the window. In-flight work is lost on process restart, so a run
// that has not moved within the window is dead.
func (s *RunService) SweepStale(ctx context.Context, window time.Duration) (int, error) {
	if window <= 0 {
		return 0, nil
	}
	cutoff := time.Now().UTC().Add(-window)

	stale, err := s.client.Run.Query().
		Where(
			entrun.StatusEQ(entrun.StatusRunning),
			entrun.StateChangedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale runs: %w", err)
	}

	swept := 0
	for _, run := range stale {
		msg := fmt.Sprintf("run abandoned: no progress since %s", run.StateChangedAt.Format(time.RFC3339))
		if _, err := s.PersistState(ctx, run.ID, entrun.StatusFailed, &RunStateUpdate{LatestError: &msg}); err != nil {
			// A racing transition is fine; skip.
			if IsStateConflict(err) {
				continue
			}
			return swept, err
		}
		swept++
	}
	return swept, nil
}
