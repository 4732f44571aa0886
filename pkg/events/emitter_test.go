package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitter_BufferAndEventsSince(t *testing.T) {
	e := NewEmitter(nil)
	ctx := context.Background()

	e.EmitType(ctx, "s1", "r1", TypeRunStarted, nil)
	e.EmitType(ctx, "s1", "r1", TypeRunProgress, map[string]interface{}{"node": "brief"})

	evts, next := e.EventsSince(0)
	require.Len(t, evts, 2)
	assert.Equal(t, TypeRunStarted, evts[0].Type)
	assert.Equal(t, TypeRunProgress, evts[1].Type)
	assert.Equal(t, 2, next)

	evts, next = e.EventsSince(next)
	assert.Empty(t, evts)
	assert.Equal(t, 2, next)

	e.EmitType(ctx, "s1", "r1", TypeRunCompleted, nil)
	evts, next = e.EventsSince(next)
	require.Len(t, evts, 1)
	assert.Equal(t, TypeRunCompleted, evts[0].Type)
	assert.Equal(t, 3, next)
	assert.Equal(t, 3, e.Len())
}

func TestEmitter_BufferBounded(t *testing.T) {
	e := NewEmitter(nil)
	ctx := context.Background()

	total := maxBuffered + 200
	for i := 0; i < total; i++ {
		e.EmitType(ctx, "s1", "r1", TypeRunProgress, map[string]interface{}{"i": i})
	}

	// Indexes stay monotonic even after old envelopes are dropped.
	assert.Equal(t, total, e.Len())

	// A reader starting from zero gets the retained tail only, ending at
	// the same index as a fresh reader.
	evts, next := e.EventsSince(0)
	assert.Equal(t, total, next)
	assert.LessOrEqual(t, len(evts), maxBuffered)
	require.NotEmpty(t, evts)
	assert.Equal(t, total-1, evts[len(evts)-1].Payload["i"])

	// A caught-up reader sees nothing new and picks up the next emit.
	evts, next = e.EventsSince(next)
	assert.Empty(t, evts)
	assert.Equal(t, total, next)

	e.EmitType(ctx, "s1", "r1", TypeRunCompleted, nil)
	evts, _ = e.EventsSince(next)
	require.Len(t, evts, 1)
	assert.Equal(t, TypeRunCompleted, evts[0].Type)
}

func TestEmitter_FillsDefaults(t *testing.T) {
	e := NewEmitter(nil)

	evt := e.Emit(context.Background(), &Envelope{Type: TypeRunCreated, SessionID: "s1"})
	assert.NotEmpty(t, evt.EventID)
	assert.Equal(t, SourceSession, evt.Source)
	assert.False(t, evt.CreatedAt.IsZero())
	assert.False(t, evt.StoreFailed)
}

func TestEmitter_WaitWakesOnEmit(t *testing.T) {
	e := NewEmitter(nil)

	done := make(chan struct{})
	go func() {
		e.Wait(context.Background(), 0, 5*time.Second)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	e.EmitType(context.Background(), "s1", "", TypeRunProgress, nil)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not wake on emit")
	}
}

func TestEmitter_WaitReturnsImmediatelyWhenBehind(t *testing.T) {
	e := NewEmitter(nil)
	e.EmitType(context.Background(), "s1", "", TypeRunProgress, nil)

	start := time.Now()
	e.Wait(context.Background(), 0, 5*time.Second)
	assert.Less(t, time.Since(start), time.Second)
}

func TestEmitter_WaitHonorsTimeoutAndContext(t *testing.T) {
	e := NewEmitter(nil)

	start := time.Now()
	e.Wait(context.Background(), 0, 20*time.Millisecond)
	assert.Less(t, time.Since(start), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start = time.Now()
	e.Wait(ctx, 0, 5*time.Second)
	assert.Less(t, time.Since(start), time.Second)
}
