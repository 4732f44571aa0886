package events

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	testdb "github.com/TheSmartAz/instant-coffee-sub001/test/database"
)

func newStoreFixture(t *testing.T) (*Store, *ent.Client, string) {
	t.Helper()
	client := testdb.NewTestClient(t)

	session, err := client.Client.Session.Create().
		SetID(uuid.New().String()).
		Save(context.Background())
	require.NoError(t, err)

	return NewStore(client.Client), client.Client, session.ID
}

func TestAppend_AssignsSequentialSeq(t *testing.T) {
	store, client, sessionID := newStoreFixture(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		evt := &Envelope{Type: TypeRunProgress, SessionID: sessionID}
		row, err := store.Append(ctx, evt)
		require.NoError(t, err)
		assert.Equal(t, int64(i), row.Seq)
		assert.Equal(t, int64(i), evt.Seq)
		assert.NotEmpty(t, evt.EventID)
	}

	// Sequences are per session.
	other, err := client.Session.Create().
		SetID(uuid.New().String()).
		Save(ctx)
	require.NoError(t, err)
	row, err := store.Append(ctx, &Envelope{Type: TypeRunProgress, SessionID: other.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), row.Seq)
}

func TestAppend_RequiresSession(t *testing.T) {
	store, _, _ := newStoreFixture(t)

	_, err := store.Append(context.Background(), &Envelope{Type: TypeRunProgress})
	assert.Error(t, err)
}

func TestAppend_ConcurrentWritersGapFree(t *testing.T) {
	store, _, sessionID := newStoreFixture(t)
	ctx := context.Background()

	const writers = 5
	const perWriter = 4

	var wg sync.WaitGroup
	errs := make(chan error, writers*perWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if _, err := store.Append(ctx, &Envelope{Type: TypeRunProgress, SessionID: sessionID}); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	rows, hasMore, err := store.GetEvents(ctx, sessionID, 0, 100)
	require.NoError(t, err)
	assert.False(t, hasMore)
	require.Len(t, rows, writers*perWriter)
	for i, row := range rows {
		assert.Equal(t, int64(i+1), row.Seq)
	}
}

func TestGetEvents_SinceAndLimit(t *testing.T) {
	store, _, sessionID := newStoreFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Append(ctx, &Envelope{Type: TypeRunProgress, SessionID: sessionID})
		require.NoError(t, err)
	}

	rows, hasMore, err := store.GetEvents(ctx, sessionID, 2, 2)
	require.NoError(t, err)
	assert.True(t, hasMore)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(3), rows[0].Seq)
	assert.Equal(t, int64(4), rows[1].Seq)

	rows, hasMore, err = store.GetEvents(ctx, sessionID, 4, 10)
	require.NoError(t, err)
	assert.False(t, hasMore)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(5), rows[0].Seq)
}

func TestGetEventsByRun_Filters(t *testing.T) {
	store, _, sessionID := newStoreFixture(t)
	ctx := context.Background()

	_, err := store.Append(ctx, &Envelope{Type: TypeRunStarted, SessionID: sessionID, RunID: "run-a"})
	require.NoError(t, err)
	_, err = store.Append(ctx, &Envelope{Type: TypeRunStarted, SessionID: sessionID, RunID: "run-b"})
	require.NoError(t, err)
	_, err = store.Append(ctx, &Envelope{Type: TypeRunProgress, SessionID: sessionID, RunID: "run-a"})
	require.NoError(t, err)

	rows, _, err := store.GetEventsByRun(ctx, sessionID, "run-a", 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].Seq)
	assert.Equal(t, int64(3), rows[1].Seq)
}

func TestToEnvelope_Roundtrip(t *testing.T) {
	store, _, sessionID := newStoreFixture(t)
	ctx := context.Background()

	in := &Envelope{
		Type:      TypeRunCompleted,
		SessionID: sessionID,
		RunID:     "run-a",
		Payload:   map[string]interface{}{"pages": float64(2)},
	}
	row, err := store.Append(ctx, in)
	require.NoError(t, err)

	out := ToEnvelope(row)
	assert.Equal(t, in.Type, out.Type)
	assert.Equal(t, in.SessionID, out.SessionID)
	assert.Equal(t, in.RunID, out.RunID)
	assert.Equal(t, in.EventID, out.EventID)
	assert.Equal(t, int64(1), out.Seq)
	assert.Equal(t, in.Payload, out.Payload)
}
