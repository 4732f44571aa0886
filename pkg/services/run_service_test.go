package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	entrun "github.com/TheSmartAz/instant-coffee-sub001/ent/run"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
	testdb "github.com/TheSmartAz/instant-coffee-sub001/test/database"
)

func newRunFixture(t *testing.T) (*RunService, *CancelRegistry, *ent.Client, string) {
	t.Helper()
	client := testdb.NewTestClient(t)

	sessions := NewSessionService(client.Client)
	session, err := sessions.CreateSession(context.Background(), models.CreateSessionRequest{Title: "test"})
	require.NoError(t, err)

	cancels := NewCancelRegistry()
	return NewRunService(client.Client, cancels), cancels, client.Client, session.ID
}

func TestCreateRun(t *testing.T) {
	runs, _, _, sessionID := newRunFixture(t)
	ctx := context.Background()

	run, err := runs.CreateRun(ctx, models.CreateRunRequest{
		SessionID: sessionID,
		Message:   "build a landing page",
	})
	require.NoError(t, err)

	assert.Equal(t, entrun.StatusQueued, run.Status)
	assert.Equal(t, sessionID, run.SessionID)
	assert.Equal(t, "api", run.TriggerSource)
	assert.Equal(t, sessionID+":"+run.ID, run.CheckpointThread)
	assert.Nil(t, run.StartedAt)
	assert.Nil(t, run.FinishedAt)
}

func TestCreateRun_Validation(t *testing.T) {
	runs, _, _, sessionID := newRunFixture(t)
	ctx := context.Background()

	_, err := runs.CreateRun(ctx, models.CreateRunRequest{Message: "hi"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "session_id", ve.Field)

	_, err = runs.CreateRun(ctx, models.CreateRunRequest{SessionID: sessionID})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "message", ve.Field)

	_, err = runs.CreateRun(ctx, models.CreateRunRequest{SessionID: "missing", Message: "hi"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunLifecycle_HappyPath(t *testing.T) {
	runs, _, _, sessionID := newRunFixture(t)
	ctx := context.Background()

	run, err := runs.CreateRun(ctx, models.CreateRunRequest{SessionID: sessionID, Message: "go"})
	require.NoError(t, err)

	started, err := runs.Start(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusRunning, started.Status)
	require.NotNil(t, started.StartedAt)
	assert.Nil(t, started.FinishedAt)

	waiting, err := runs.PersistState(ctx, run.ID, entrun.StatusWaitingInput, nil)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusWaitingInput, waiting.Status)

	resumed, err := runs.Resume(ctx, run.ID, map[string]interface{}{"user_feedback": "darker"})
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusRunning, resumed.Status)
	assert.Equal(t, "darker", resumed.ResumePayload["user_feedback"])
	// started_at is set once, on the first transition to running.
	assert.Equal(t, started.StartedAt.UTC(), resumed.StartedAt.UTC())

	done, err := runs.PersistState(ctx, run.ID, entrun.StatusCompleted, &RunStateUpdate{
		Metrics: map[string]interface{}{"pages": 2},
	})
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusCompleted, done.Status)
	require.NotNil(t, done.FinishedAt)
}

func TestPersistState_RejectsInvalidTransition(t *testing.T) {
	runs, _, _, sessionID := newRunFixture(t)
	ctx := context.Background()

	run, err := runs.CreateRun(ctx, models.CreateRunRequest{SessionID: sessionID, Message: "go"})
	require.NoError(t, err)

	_, err = runs.PersistState(ctx, run.ID, entrun.StatusCompleted, nil)
	require.True(t, IsStateConflict(err))

	var sc *StateConflictError
	require.ErrorAs(t, err, &sc)
	assert.Equal(t, "run", sc.Entity)
	assert.Equal(t, run.ID, sc.ID)
	assert.Equal(t, "queued", sc.Current)
	assert.Equal(t, "completed", sc.Target)
}

func TestPersistState_TerminalAdmitsNothing(t *testing.T) {
	runs, _, _, sessionID := newRunFixture(t)
	ctx := context.Background()

	run, err := runs.CreateRun(ctx, models.CreateRunRequest{SessionID: sessionID, Message: "go"})
	require.NoError(t, err)
	_, err = runs.PersistState(ctx, run.ID, entrun.StatusFailed, nil)
	require.NoError(t, err)

	_, err = runs.PersistState(ctx, run.ID, entrun.StatusRunning, nil)
	assert.True(t, IsStateConflict(err))
}

func TestCancel(t *testing.T) {
	runs, cancels, _, sessionID := newRunFixture(t)
	ctx := context.Background()

	run, err := runs.CreateRun(ctx, models.CreateRunRequest{SessionID: sessionID, Message: "go"})
	require.NoError(t, err)

	cancelled, transitioned, err := runs.Cancel(ctx, run.ID)
	require.NoError(t, err)
	assert.True(t, transitioned)
	assert.Equal(t, entrun.StatusCancelled, cancelled.Status)
	assert.True(t, cancels.IsCancelled(run.ID))

	// Cancelling a terminal run is a no-op.
	again, transitioned, err := runs.Cancel(ctx, run.ID)
	require.NoError(t, err)
	assert.False(t, transitioned)
	assert.Equal(t, entrun.StatusCancelled, again.Status)

	_, _, err = runs.Cancel(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancel_MarkerClearedOnCompletion(t *testing.T) {
	runs, cancels, _, sessionID := newRunFixture(t)
	ctx := context.Background()

	run, err := runs.CreateRun(ctx, models.CreateRunRequest{SessionID: sessionID, Message: "go"})
	require.NoError(t, err)
	_, err = runs.Start(ctx, run.ID)
	require.NoError(t, err)

	cancels.Mark(run.ID)
	_, err = runs.PersistState(ctx, run.ID, entrun.StatusCompleted, nil)
	require.NoError(t, err)
	assert.False(t, cancels.IsCancelled(run.ID))
}

func TestGetLatestWaiting(t *testing.T) {
	runs, _, _, sessionID := newRunFixture(t)
	ctx := context.Background()

	_, err := runs.GetLatestWaiting(ctx, sessionID)
	assert.ErrorIs(t, err, ErrNoWaitingRun)

	first, err := runs.CreateRun(ctx, models.CreateRunRequest{SessionID: sessionID, Message: "one"})
	require.NoError(t, err)
	_, err = runs.Start(ctx, first.ID)
	require.NoError(t, err)
	_, err = runs.PersistState(ctx, first.ID, entrun.StatusWaitingInput, nil)
	require.NoError(t, err)

	// A later queued run does not shadow the waiting one.
	_, err = runs.CreateRun(ctx, models.CreateRunRequest{SessionID: sessionID, Message: "two"})
	require.NoError(t, err)

	waiting, err := runs.GetLatestWaiting(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, waiting.ID)
}

func TestSweepStale(t *testing.T) {
	runs, _, client, sessionID := newRunFixture(t)
	ctx := context.Background()

	stale, err := runs.CreateRun(ctx, models.CreateRunRequest{SessionID: sessionID, Message: "stale"})
	require.NoError(t, err)
	_, err = runs.Start(ctx, stale.ID)
	require.NoError(t, err)

	fresh, err := runs.CreateRun(ctx, models.CreateRunRequest{SessionID: sessionID, Message: "fresh"})
	require.NoError(t, err)
	_, err = runs.Start(ctx, fresh.ID)
	require.NoError(t, err)

	// Age the first run past the staleness window.
	err = client.Run.UpdateOneID(stale.ID).
		SetStateChangedAt(time.Now().UTC().Add(-2 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	swept, err := runs.SweepStale(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	failed, err := runs.GetRun(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusFailed, failed.Status)
	require.NotNil(t, failed.LatestError)
	assert.Contains(t, *failed.LatestError, "abandoned")

	untouched, err := runs.GetRun(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusRunning, untouched.Status)
}

func TestSweepStale_ZeroWindowDisabled(t *testing.T) {
	runs, _, _, _ := newRunFixture(t)
	swept, err := runs.SweepStale(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, swept)
}
