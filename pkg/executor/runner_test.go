package executor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	entplan "github.com/TheSmartAz/instant-coffee-sub001/ent/plan"
	enttask "github.com/TheSmartAz/instant-coffee-sub001/ent/task"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/events"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
	testdb "github.com/TheSmartAz/instant-coffee-sub001/test/database"
)

// stubExecutor runs the injected function for every task.
type stubExecutor struct {
	fn func(ctx context.Context, task *ent.Task) (map[string]interface{}, error)
}

func (s *stubExecutor) Execute(ctx context.Context, task *ent.Task, _ *events.Emitter) (map[string]interface{}, error) {
	return s.fn(ctx, task)
}

func stubFactory(fn func(ctx context.Context, task *ent.Task) (map[string]interface{}, error)) Factory {
	return func(agentType string, deps Deps) (TaskExecutor, error) {
		return &stubExecutor{fn: fn}, nil
	}
}

type runnerFixture struct {
	plans     *services.PlanService
	snapshots *services.SnapshotService
	cancels   *services.CancelRegistry
	emitter   *events.Emitter
	cfg       *config.ExecutorConfig
	sessionID string
}

func newRunnerFixture(t *testing.T) runnerFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	sessions := services.NewSessionService(client.Client)
	session, err := sessions.CreateSession(context.Background(), models.CreateSessionRequest{})
	require.NoError(t, err)

	docs := services.NewProductDocService(client.Client, nil)
	pages := services.NewPageService(client.Client, nil)

	cfg := config.DefaultExecutorConfig()
	cfg.PollInterval = 10 * time.Millisecond
	cfg.TaskTimeout = 5 * time.Second
	cfg.RetryBaseDelay = time.Millisecond

	return runnerFixture{
		plans:     services.NewPlanService(client.Client),
		snapshots: services.NewSnapshotService(client.Client, nil, docs, pages),
		cancels:   services.NewCancelRegistry(),
		emitter:   events.NewEmitter(nil),
		cfg:       cfg,
		sessionID: session.ID,
	}
}

func (f runnerFixture) deps() Deps {
	return Deps{SessionID: f.sessionID, RunID: "run-1"}
}

func (f runnerFixture) eventTypes() []string {
	evts, _ := f.emitter.EventsSince(0)
	types := make([]string, 0, len(evts))
	for _, e := range evts {
		types = append(types, e.Type)
	}
	return types
}

func TestRun_TemporaryErrorRetriesThenSucceeds(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := context.Background()

	plan, tasks, err := f.plans.CreatePlan(ctx, models.CreatePlanRequest{
		SessionID: f.sessionID,
		Goal:      "generate",
		Tasks: []models.PlanTaskRequest{
			{ID: "gen", Title: "Generate pages", AgentType: AgentGeneration},
		},
	})
	require.NoError(t, err)

	var calls atomic.Int32
	exec := NewParallelExecutor(f.cfg, f.plans, f.snapshots, f.cancels, stubFactory(
		func(ctx context.Context, task *ent.Task) (map[string]interface{}, error) {
			if calls.Add(1) <= 2 {
				return nil, Temporary(errors.New("rate limit"))
			}
			return map[string]interface{}{"pages": 1}, nil
		}))

	require.NoError(t, exec.Run(ctx, f.emitter, f.deps(), plan.ID))
	assert.Equal(t, int32(3), calls.Load())

	final, err := f.plans.GetPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, entplan.StatusDone, final.Status)

	task, err := f.plans.GetTask(ctx, tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusDone, task.Status)
	assert.Equal(t, 2, task.RetryCount)
	assert.Equal(t, 100, task.Progress)

	types := f.eventTypes()
	assert.Contains(t, types, events.TypeTaskStarted)
	assert.Contains(t, types, events.TypeTaskDone)
	assert.Contains(t, types, events.TypeSnapshotCreated)

	retries := 0
	evts, _ := f.emitter.EventsSince(0)
	for _, e := range evts {
		if e.Type == events.TypeTaskRetrying {
			retries++
			assert.Equal(t, retries, e.Payload["attempt"])
		}
	}
	assert.Equal(t, 2, retries)
}

func TestRun_PermanentFailureBlocksDependents(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := context.Background()

	plan, tasks, err := f.plans.CreatePlan(ctx, models.CreatePlanRequest{
		SessionID: f.sessionID,
		Goal:      "generate then validate",
		Tasks: []models.PlanTaskRequest{
			{ID: "gen", Title: "Generate", AgentType: AgentGeneration},
			{ID: "check", Title: "Validate", AgentType: AgentValidator, DependsOn: []string{"gen"}},
		},
	})
	require.NoError(t, err)

	exec := NewParallelExecutor(f.cfg, f.plans, f.snapshots, f.cancels, stubFactory(
		func(ctx context.Context, task *ent.Task) (map[string]interface{}, error) {
			return nil, errors.New("schema mismatch")
		}))

	require.NoError(t, exec.Run(ctx, f.emitter, f.deps(), plan.ID))

	final, err := f.plans.GetPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, entplan.StatusFailed, final.Status)

	failed, err := f.plans.GetTask(ctx, tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "schema mismatch")

	blocked, err := f.plans.GetTask(ctx, tasks[1].ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusBlocked, blocked.Status)

	types := f.eventTypes()
	assert.Contains(t, types, events.TypeTaskFailed)
	assert.Contains(t, types, events.TypeTaskBlocked)
	assert.NotContains(t, types, events.TypeSnapshotCreated)
}

func TestRun_TaskTimeout(t *testing.T) {
	f := newRunnerFixture(t)
	f.cfg.TaskTimeout = 50 * time.Millisecond
	ctx := context.Background()

	plan, tasks, err := f.plans.CreatePlan(ctx, models.CreatePlanRequest{
		SessionID: f.sessionID,
		Goal:      "slow",
		Tasks: []models.PlanTaskRequest{
			{ID: "slow", Title: "Slow task", AgentType: AgentGeneration},
		},
	})
	require.NoError(t, err)

	exec := NewParallelExecutor(f.cfg, f.plans, f.snapshots, f.cancels, stubFactory(
		func(ctx context.Context, task *ent.Task) (map[string]interface{}, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}))

	require.NoError(t, exec.Run(ctx, f.emitter, f.deps(), plan.ID))

	task, err := f.plans.GetTask(ctx, tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusTimeout, task.Status)

	final, err := f.plans.GetPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, entplan.StatusFailed, final.Status)
}

func TestRun_CancellationMarker(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := context.Background()

	plan, _, err := f.plans.CreatePlan(ctx, models.CreatePlanRequest{
		SessionID: f.sessionID,
		Goal:      "never runs",
		Tasks: []models.PlanTaskRequest{
			{ID: "gen", Title: "Generate", AgentType: AgentGeneration},
		},
	})
	require.NoError(t, err)

	f.cancels.Mark("run-1")
	exec := NewParallelExecutor(f.cfg, f.plans, f.snapshots, f.cancels, stubFactory(
		func(ctx context.Context, task *ent.Task) (map[string]interface{}, error) {
			return nil, nil
		}))

	err = exec.Run(ctx, f.emitter, f.deps(), plan.ID)
	assert.ErrorIs(t, err, ErrPlanCancelled)

	final, err := f.plans.GetPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, entplan.StatusAborted, final.Status)
}

func TestRun_UnknownAgentTypeFailsTask(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := context.Background()

	plan, tasks, err := f.plans.CreatePlan(ctx, models.CreatePlanRequest{
		SessionID: f.sessionID,
		Goal:      "bad agent",
		Tasks: []models.PlanTaskRequest{
			{ID: "x", Title: "Mystery", AgentType: "mystery"},
		},
	})
	require.NoError(t, err)

	exec := NewParallelExecutor(f.cfg, f.plans, f.snapshots, f.cancels, nil)
	require.NoError(t, exec.Run(ctx, f.emitter, f.deps(), plan.ID))

	task, err := f.plans.GetTask(ctx, tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusFailed, task.Status)
}
