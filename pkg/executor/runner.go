package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	entplan "github.com/TheSmartAz/instant-coffee-sub001/ent/plan"
	entsnapshot "github.com/TheSmartAz/instant-coffee-sub001/ent/projectsnapshot"
	enttask "github.com/TheSmartAz/instant-coffee-sub001/ent/task"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/events"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/scheduler"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
)

// ErrPlanCancelled is returned when the run's cancellation marker was
// observed while the plan was executing.
var ErrPlanCancelled = errors.New("plan execution cancelled")

// outcome is one finished task attempt reported back to the driver loop.
type outcome struct {
	taskID  string
	status  enttask.Status
	result  map[string]interface{}
	err     error
	traceID string
}

// ParallelExecutor drives one plan's task DAG with bounded fan-out. Task
// state transitions are linearized through the driver loop; worker
// goroutines only execute strategies and report back.
type ParallelExecutor struct {
	cfg       *config.ExecutorConfig
	plans     *services.PlanService
	snapshots *services.SnapshotService
	cancels   *services.CancelRegistry
	factory   Factory
}

// NewParallelExecutor creates an executor. factory may be nil, defaulting
// to the built-in strategies.
func NewParallelExecutor(cfg *config.ExecutorConfig, plans *services.PlanService, snapshots *services.SnapshotService, cancels *services.CancelRegistry, factory Factory) *ParallelExecutor {
	if cfg == nil {
		cfg = config.DefaultExecutorConfig()
	}
	if factory == nil {
		factory = DefaultFactory
	}
	return &ParallelExecutor{
		cfg:       cfg,
		plans:     plans,
		snapshots: snapshots,
		cancels:   cancels,
		factory:   factory,
	}
}

type runningTask struct {
	task      *ent.Task
	cancel    context.CancelFunc
	startedAt time.Time
}

// Run executes the plan to termination. Events are emitted on the given
// emitter throughout; the caller drains them to the SSE stream.
func (p *ParallelExecutor) Run(ctx context.Context, emitter *events.Emitter, deps Deps, planID string) error {
	tasks, err := p.plans.GetTasks(ctx, planID)
	if err != nil {
		return err
	}
	sched, err := scheduler.New(tasks)
	if err != nil {
		_, _ = p.plans.UpdatePlanStatus(ctx, planID, entplan.StatusFailed)
		return err
	}
	byID := make(map[string]*ent.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	if _, err := p.plans.UpdatePlanStatus(ctx, planID, entplan.StatusInProgress); err != nil {
		return err
	}

	sem := semaphore.NewWeighted(int64(p.cfg.MaxConcurrent))
	results := make(chan outcome, p.cfg.MaxConcurrent)
	running := make(map[string]*runningTask)
	swept := make(map[string]bool)
	lastSweep := time.Now()

	for {
		if p.cancels.IsCancelled(deps.RunID) {
			p.abortInFlight(ctx, emitter, deps, sched, running, swept)
			_, _ = p.plans.UpdatePlanStatus(ctx, planID, entplan.StatusAborted)
			return ErrPlanCancelled
		}

		// Drain finished tasks without blocking.
	drain:
		for {
			select {
			case out := <-results:
				p.handleOutcome(ctx, emitter, deps, sched, running, swept, out)
				sem.Release(1)
			default:
				break drain
			}
		}

		if time.Since(lastSweep) >= p.cfg.SweepInterval {
			p.sweepStuck(ctx, emitter, deps, sched, running, swept)
			lastSweep = time.Now()
		}

		free := p.cfg.MaxConcurrent - len(running)
		for _, id := range sched.GetReadyTasks(free) {
			if !sem.TryAcquire(1) {
				break
			}
			task := byID[id]
			sched.MarkStarted(id)

			now := time.Now().UTC()
			status := enttask.StatusInProgress
			if _, err := p.plans.UpdateTask(ctx, id, services.TaskUpdate{Status: &status, StartedAt: &now}); err != nil {
				slog.Warn("Failed to persist task start", "task_id", id, "error", err)
			}
			p.emitTask(ctx, emitter, deps, events.TypeTaskStarted, map[string]interface{}{
				"task_id": id, "title": task.Title, "agent_type": task.AgentType,
			})

			taskCtx, cancel := context.WithCancel(ctx)
			running[id] = &runningTask{task: task, cancel: cancel, startedAt: now}
			go p.runTask(taskCtx, emitter, deps, task, results)
		}

		if len(running) == 0 && sched.IsTerminated() {
			break
		}

		select {
		case <-ctx.Done():
			p.abortInFlight(ctx, emitter, deps, sched, running, swept)
			_, _ = p.plans.UpdatePlanStatus(context.WithoutCancel(ctx), planID, entplan.StatusAborted)
			return ctx.Err()
		case out := <-results:
			p.handleOutcome(ctx, emitter, deps, sched, running, swept, out)
			sem.Release(1)
		case <-time.After(p.cfg.PollInterval):
		}
	}

	finalStatus := entplan.StatusFailed
	if sched.IsAllDone() {
		finalStatus = entplan.StatusDone
	}
	plan, err := p.plans.UpdatePlanStatus(ctx, planID, finalStatus)
	if err != nil {
		return err
	}

	if finalStatus == entplan.StatusDone {
		p.snapshotOnCompletion(ctx, emitter, deps, plan)
	}
	return nil
}

// runTask executes one task with per-attempt timeout and exponential
// backoff on temporary errors.
func (p *ParallelExecutor) runTask(ctx context.Context, emitter *events.Emitter, deps Deps, task *ent.Task, results chan<- outcome) {
	exec, err := p.factory(task.AgentType, deps)
	if err != nil {
		results <- outcome{taskID: task.ID, status: enttask.StatusFailed, err: err, traceID: NewTraceID()}
		return
	}

	for attempt := 1; ; attempt++ {
		execCtx, cancel := context.WithTimeout(ctx, p.cfg.TaskTimeout)
		result, err := exec.Execute(execCtx, task, emitter)
		timedOut := execCtx.Err() == context.DeadlineExceeded
		cancel()

		switch {
		case err == nil:
			results <- outcome{taskID: task.ID, status: enttask.StatusDone, result: result}
			return

		case ctx.Err() != nil:
			results <- outcome{taskID: task.ID, status: enttask.StatusAborted, err: ctx.Err()}
			return

		case timedOut:
			results <- outcome{taskID: task.ID, status: enttask.StatusTimeout, err: err, traceID: NewTraceID()}
			return

		case IsTemporary(err) && attempt <= p.cfg.RetryMax:
			delay := time.Duration(float64(p.cfg.RetryBaseDelay) * math.Pow(p.cfg.RetryMultiplier, float64(attempt-1)))
			retryCount := task.RetryCount + attempt
			status := enttask.StatusRetrying
			if _, perr := p.plans.UpdateTask(ctx, task.ID, services.TaskUpdate{Status: &status, RetryCount: &retryCount}); perr != nil {
				slog.Warn("Failed to persist retry", "task_id", task.ID, "error", perr)
			}
			p.emitTask(ctx, emitter, deps, events.TypeTaskRetrying, map[string]interface{}{
				"task_id": task.ID, "attempt": attempt, "delay_ms": delay.Milliseconds(), "error": err.Error(),
			})

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				results <- outcome{taskID: task.ID, status: enttask.StatusAborted, err: ctx.Err()}
				return
			}
			inProgress := enttask.StatusInProgress
			if _, perr := p.plans.UpdateTask(ctx, task.ID, services.TaskUpdate{Status: &inProgress}); perr != nil {
				slog.Warn("Failed to persist retry resume", "task_id", task.ID, "error", perr)
			}

		default:
			results <- outcome{taskID: task.ID, status: enttask.StatusFailed, err: err, traceID: NewTraceID()}
			return
		}
	}
}

// handleOutcome applies one finished task to the scheduler and persists
// the transition plus any dependent-state changes.
func (p *ParallelExecutor) handleOutcome(ctx context.Context, emitter *events.Emitter, deps Deps, sched *scheduler.Scheduler, running map[string]*runningTask, swept map[string]bool, out outcome) {
	rt, ok := running[out.taskID]
	if ok {
		rt.cancel()
		delete(running, out.taskID)
	}
	if swept[out.taskID] {
		// The sweep already finished this task as timeout.
		return
	}

	now := time.Now().UTC()
	switch out.status {
	case enttask.StatusDone:
		progress := 100
		status := enttask.StatusDone
		if _, err := p.plans.UpdateTask(ctx, out.taskID, services.TaskUpdate{
			Status: &status, Progress: &progress, Result: out.result, CompletedAt: &now,
		}); err != nil {
			slog.Warn("Failed to persist task completion", "task_id", out.taskID, "error", err)
		}
		p.emitTask(ctx, emitter, deps, events.TypeTaskDone, map[string]interface{}{
			"task_id": out.taskID, "result": out.result,
		})
		for _, unblocked := range sched.MarkCompleted(out.taskID) {
			pending := enttask.StatusPending
			if _, err := p.plans.UpdateTask(ctx, unblocked, services.TaskUpdate{Status: &pending}); err != nil {
				slog.Warn("Failed to persist unblock", "task_id", unblocked, "error", err)
			}
		}

	case enttask.StatusAborted:
		status := enttask.StatusAborted
		if _, err := p.plans.UpdateTask(ctx, out.taskID, services.TaskUpdate{Status: &status, CompletedAt: &now}); err != nil {
			slog.Warn("Failed to persist task abort", "task_id", out.taskID, "error", err)
		}
		sched.MarkAborted(out.taskID)

	case enttask.StatusTimeout:
		p.finishDead(ctx, emitter, deps, sched, out, enttask.StatusTimeout, sched.MarkTimeout(out.taskID))

	default:
		p.finishDead(ctx, emitter, deps, sched, out, enttask.StatusFailed, sched.MarkFailed(out.taskID))
	}
}

// finishDead persists a failed or timed-out task, blocks its dependents,
// and emits the failure with its trace id.
func (p *ParallelExecutor) finishDead(ctx context.Context, emitter *events.Emitter, deps Deps, sched *scheduler.Scheduler, out outcome, status enttask.Status, blocked []string) {
	now := time.Now().UTC()
	msg := ""
	if out.err != nil {
		msg = out.err.Error()
	}
	if _, err := p.plans.UpdateTask(ctx, out.taskID, services.TaskUpdate{
		Status: &status, ErrorMessage: &msg, CompletedAt: &now,
	}); err != nil {
		slog.Warn("Failed to persist task failure", "task_id", out.taskID, "error", err)
	}

	blockedList := make([]interface{}, 0, len(blocked))
	for _, id := range blocked {
		blockedList = append(blockedList, id)
		b := enttask.StatusBlocked
		if _, err := p.plans.UpdateTask(ctx, id, services.TaskUpdate{Status: &b}); err != nil {
			slog.Warn("Failed to persist block", "task_id", id, "error", err)
		}
		p.emitTask(ctx, emitter, deps, events.TypeTaskBlocked, map[string]interface{}{
			"task_id": id, "blocked_by": out.taskID,
		})
	}

	p.emitTask(ctx, emitter, deps, events.TypeTaskFailed, map[string]interface{}{
		"task_id": out.taskID, "status": string(status), "error": msg,
		"trace_id": out.traceID, "blocked_tasks": blockedList,
	})
}

// sweepStuck times out tasks that have been in flight longer than the
// timeout window, blocking their dependents.
func (p *ParallelExecutor) sweepStuck(ctx context.Context, emitter *events.Emitter, deps Deps, sched *scheduler.Scheduler, running map[string]*runningTask, swept map[string]bool) {
	cutoff := time.Now().Add(-p.cfg.TaskTimeoutWindow)
	for id, rt := range running {
		if rt.startedAt.After(cutoff) {
			continue
		}
		swept[id] = true
		rt.cancel()
		delete(running, id)
		p.finishDead(ctx, emitter, deps, sched, outcome{
			taskID:  id,
			err:     fmt.Errorf("task exceeded timeout window of %s", p.cfg.TaskTimeoutWindow),
			traceID: NewTraceID(),
		}, enttask.StatusTimeout, sched.MarkTimeout(id))
	}
}

// abortInFlight cancels workers and marks their tasks aborted.
func (p *ParallelExecutor) abortInFlight(ctx context.Context, emitter *events.Emitter, deps Deps, sched *scheduler.Scheduler, running map[string]*runningTask, swept map[string]bool) {
	persistCtx := context.WithoutCancel(ctx)
	for id, rt := range running {
		rt.cancel()
		sched.MarkAborted(id)
		status := enttask.StatusAborted
		now := time.Now().UTC()
		if _, err := p.plans.UpdateTask(persistCtx, id, services.TaskUpdate{Status: &status, CompletedAt: &now}); err != nil {
			slog.Warn("Failed to persist task abort", "task_id", id, "error", err)
		}
		swept[id] = true
		delete(running, id)
	}
}

// snapshotOnCompletion creates an auto snapshot when none exists past the
// plan's completion.
func (p *ParallelExecutor) snapshotOnCompletion(ctx context.Context, emitter *events.Emitter, deps Deps, plan *ent.Plan) {
	snapshots, err := p.snapshots.ListSnapshots(ctx, deps.SessionID, 10)
	if err != nil {
		slog.Warn("Failed to check snapshots after plan completion", "plan_id", plan.ID, "error", err)
		return
	}
	for _, snap := range snapshots {
		if snap.Source == entsnapshot.SourceAuto && snap.CreatedAt.After(plan.UpdatedAt) {
			return
		}
	}

	snapshot, err := p.snapshots.CreateSnapshot(ctx, deps.SessionID, "auto", fmt.Sprintf("plan %s completed", plan.ID))
	if err != nil {
		slog.Warn("Failed to create completion snapshot", "plan_id", plan.ID, "error", err)
		return
	}
	p.emitTask(ctx, emitter, deps, events.TypeSnapshotCreated, map[string]interface{}{
		"snapshot_id": snapshot.ID, "snapshot_number": snapshot.SnapshotNumber,
	})
}

func (p *ParallelExecutor) emitTask(ctx context.Context, emitter *events.Emitter, deps Deps, eventType string, payload map[string]interface{}) {
	emitter.Emit(ctx, &events.Envelope{
		Type:      eventType,
		SessionID: deps.SessionID,
		RunID:     deps.RunID,
		Payload:   payload,
		Source:    events.SourceTask,
	})
}
