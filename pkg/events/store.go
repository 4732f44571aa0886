package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/sessionevent"
)

// seqRetries is how many times Append retries seq assignment after a
// uniqueness violation caused by a racing emitter.
const seqRetries = 5

// Store is the durable append-only event log.
type Store struct {
	client *ent.Client
}

// NewStore creates a new event Store.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Append persists an event, assigning the next per-session seq inside
// the insert transaction. Concurrent appends for the same session race on
// the (session_id, seq) unique index; losers retry with a fresh seq.
func (s *Store) Append(ctx context.Context, evt *Envelope) (*ent.SessionEvent, error) {
	if evt.SessionID == "" {
		return nil, fmt.Errorf("append event: session_id is required")
	}
	if evt.EventID == "" {
		evt.EventID = uuid.New().String()
	}
	if evt.Source == "" {
		evt.Source = SourceSession
	}
	if evt.CreatedAt.IsZero() {
		evt.CreatedAt = time.Now().UTC()
	}

	var lastErr error
	for attempt := 0; attempt < seqRetries; attempt++ {
		row, err := s.tryAppend(ctx, evt)
		if err == nil {
			evt.Seq = row.Seq
			return row, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("append event: seq contention persisted after %d attempts: %w", seqRetries, lastErr)
}

// tryAppend performs one MAX(seq)+1 insert attempt in a transaction.
func (s *Store) tryAppend(ctx context.Context, evt *Envelope) (*ent.SessionEvent, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var next int64 = 1
	last, err := tx.SessionEvent.Query().
		Where(sessionevent.SessionIDEQ(evt.SessionID)).
		Order(ent.Desc(sessionevent.FieldSeq)).
		First(ctx)
	switch {
	case err == nil:
		next = last.Seq + 1
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to query last seq: %w", err)
	}

	builder := tx.SessionEvent.Create().
		SetSessionID(evt.SessionID).
		SetSeq(next).
		SetEventID(evt.EventID).
		SetType(evt.Type).
		SetSource(sessionevent.Source(evt.Source)).
		SetCreatedAt(evt.CreatedAt)
	if evt.RunID != "" {
		builder.SetRunID(evt.RunID)
	}
	if evt.Payload != nil {
		builder.SetPayload(evt.Payload)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit event: %w", err)
	}
	return row, nil
}

// GetEvents returns events with seq > sinceSeq in ascending seq order.
// hasMore is true when the limit was reached and more rows may exist.
func (s *Store) GetEvents(ctx context.Context, sessionID string, sinceSeq int64, limit int) ([]*ent.SessionEvent, bool, error) {
	return s.query(ctx, sessionID, "", sinceSeq, limit)
}

// GetEventsByRun additionally filters on run_id.
func (s *Store) GetEventsByRun(ctx context.Context, sessionID, runID string, sinceSeq int64, limit int) ([]*ent.SessionEvent, bool, error) {
	return s.query(ctx, sessionID, runID, sinceSeq, limit)
}

func (s *Store) query(ctx context.Context, sessionID, runID string, sinceSeq int64, limit int) ([]*ent.SessionEvent, bool, error) {
	if limit <= 0 {
		limit = 100
	}

	q := s.client.SessionEvent.Query().
		Where(
			sessionevent.SessionIDEQ(sessionID),
			sessionevent.SeqGT(sinceSeq),
		)
	if runID != "" {
		q = q.Where(sessionevent.RunIDEQ(runID))
	}

	rows, err := q.
		Order(ent.Asc(sessionevent.FieldSeq)).
		Limit(limit + 1).
		All(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get events: %w", err)
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}
	return rows, hasMore, nil
}

// ToEnvelope converts a stored row back to its wire form.
func ToEnvelope(row *ent.SessionEvent) *Envelope {
	return &Envelope{
		Type:      row.Type,
		SessionID: row.SessionID,
		Seq:       row.Seq,
		RunID:     row.RunID,
		EventID:   row.EventID,
		Payload:   row.Payload,
		Source:    string(row.Source),
		CreatedAt: row.CreatedAt,
	}
}
