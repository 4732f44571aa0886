package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entrun "github.com/TheSmartAz/instant-coffee-sub001/ent/run"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
	testdb "github.com/TheSmartAz/instant-coffee-sub001/test/database"
)

func TestJanitor_FailsAbandonedRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cancels := services.NewCancelRegistry()
	runs := services.NewRunService(client.Client, cancels)
	sessions := services.NewSessionService(client.Client)

	session, err := sessions.CreateSession(ctx, models.CreateSessionRequest{})
	require.NoError(t, err)
	run, err := runs.CreateRun(ctx, models.CreateRunRequest{SessionID: session.ID, Message: "stuck"})
	require.NoError(t, err)
	_, err = runs.Start(ctx, run.ID)
	require.NoError(t, err)

	// Backdate the last state change past the staleness window.
	require.NoError(t, client.Client.Run.UpdateOneID(run.ID).
		SetStateChangedAt(time.Now().UTC().Add(-2*time.Hour)).
		Exec(ctx))

	svc := NewService(20*time.Millisecond, time.Hour, runs, services.NewIdempotencyCache(time.Minute))
	svc.Start(ctx)
	defer svc.Stop()

	require.Eventually(t, func() bool {
		got, err := runs.GetRun(ctx, run.ID)
		return err == nil && got.Status == entrun.StatusFailed
	}, 5*time.Second, 25*time.Millisecond)

	got, err := runs.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LatestError)
	assert.Contains(t, *got.LatestError, "abandoned")
}

func TestJanitor_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := services.NewRunService(client.Client, services.NewCancelRegistry())

	svc := NewService(10*time.Millisecond, time.Hour, runs, nil)
	svc.Start(context.Background())
	// Second Start is a no-op while running.
	svc.Start(context.Background())

	time.Sleep(30 * time.Millisecond)
	svc.Stop()
}
