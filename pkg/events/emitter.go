package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Emitter is the in-process event bus. Emit writes through to the durable
// Store, then buffers the enriched envelope so drivers (orchestrator,
// parallel executor) can drain new events between node transitions with
// EventsSince and forward them to SSE subscribers.
//
// A failed store write does not suppress the event: in-process listeners
// still see it, flagged StoreFailed, so a flaky database degrades the
// catchup path without silencing live progress.
//
// The buffer is bounded: once it exceeds maxBuffered the oldest half is
// dropped and base advances, so indexes stay monotonic across the life of
// the process. Readers that fell behind the drop resume from the retained
// tail; the full history stays readable from the Store.
type Emitter struct {
	store *Store

	mu      sync.Mutex
	base    int // envelopes dropped off the front of buffer
	buffer  []*Envelope
	waiters []chan struct{}
}

// maxBuffered caps the live buffer.
const maxBuffered = 1024

// NewEmitter creates an Emitter writing through the given store.
// store may be nil (in-process only — used by unit tests).
func NewEmitter(store *Store) *Emitter {
	return &Emitter{store: store}
}

// Emit records one event. Returns the envelope with seq assigned when the
// durable write succeeded.
func (e *Emitter) Emit(ctx context.Context, evt *Envelope) *Envelope {
	if evt.EventID == "" {
		evt.EventID = uuid.New().String()
	}
	if evt.Source == "" {
		evt.Source = SourceSession
	}
	if evt.CreatedAt.IsZero() {
		evt.CreatedAt = time.Now().UTC()
	}

	if e.store != nil {
		if _, err := e.store.Append(ctx, evt); err != nil {
			evt.StoreFailed = true
			slog.Warn("Event store write failed, surfacing in-process only",
				"type", evt.Type, "session_id", evt.SessionID, "error", err)
		}
	}

	e.mu.Lock()
	e.buffer = append(e.buffer, evt)
	if len(e.buffer) > maxBuffered {
		drop := len(e.buffer) / 2
		e.base += drop
		e.buffer = append([]*Envelope(nil), e.buffer[drop:]...)
	}
	waiters := e.waiters
	e.waiters = nil
	e.mu.Unlock()

	for _, w := range waiters {
		close(w)
	}
	return evt
}

// EmitType is a convenience wrapper for the common case.
func (e *Emitter) EmitType(ctx context.Context, sessionID, runID, eventType string, payload map[string]interface{}) *Envelope {
	return e.Emit(ctx, &Envelope{
		Type:      eventType,
		SessionID: sessionID,
		RunID:     runID,
		Payload:   payload,
	})
}

// EventsSince returns buffered events after index and the new index to
// resume from. An index behind the retained window is clamped forward:
// the dropped envelopes are gone from the buffer and only the Store still
// has them.
func (e *Emitter) EventsSince(index int) ([]*Envelope, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	end := e.base + len(e.buffer)
	if index < e.base {
		index = e.base
	}
	if index >= end {
		return nil, end
	}
	out := make([]*Envelope, end-index)
	copy(out, e.buffer[index-e.base:])
	return out, end
}

// Wait blocks until an event arrives after index, the context is done, or
// the timeout elapses. Used by SSE delivery to avoid busy polling.
func (e *Emitter) Wait(ctx context.Context, index int, timeout time.Duration) {
	e.mu.Lock()
	if index < e.base+len(e.buffer) {
		e.mu.Unlock()
		return
	}
	ch := make(chan struct{})
	e.waiters = append(e.waiters, ch)
	e.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ch:
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Len returns the total number of envelopes emitted so far (the next
// EventsSince index), counting the ones already dropped from the buffer.
func (e *Emitter) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.base + len(e.buffer)
}
