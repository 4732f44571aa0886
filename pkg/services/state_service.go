package services

import (
	"context"
	"fmt"
	"time"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	entsession "github.com/TheSmartAz/instant-coffee-sub001/ent/session"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
)

// SessionMetadata is the partial-update form of the session's latest
// build fields. Nil members are left untouched.
type SessionMetadata struct {
	BuildStatus     *string
	BuildArtifacts  map[string]interface{}
	AestheticScores map[string]interface{}
}

// StateService persists per-session graph state and build metadata on the
// session row.
type StateService struct {
	client *ent.Client
}

// NewStateService creates a new StateService.
func NewStateService(client *ent.Client) *StateService {
	return &StateService{client: client}
}

// Save stores the graph state on the session, stripping ephemeral runtime
// keys first.
func (s *StateService) Save(httpCtx context.Context, sessionID string, state map[string]interface{}) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	state = models.StripEphemeralKeys(state)

	err := s.client.Session.UpdateOneID(sessionID).
		SetGraphState(state).
		SetUpdatedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save graph state: %w", err)
	}
	return nil
}

// Load returns the stored graph state, or nil when none was saved.
func (s *StateService) Load(ctx context.Context, sessionID string) (map[string]interface{}, error) {
	session, err := s.client.Session.Query().
		Where(entsession.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load graph state: %w", err)
	}
	return session.GraphState, nil
}

// UpdateMetadata merges only the supplied metadata fields into the
// session row.
func (s *StateService) UpdateMetadata(httpCtx context.Context, sessionID string, meta SessionMetadata) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.Session.UpdateOneID(sessionID).
		SetUpdatedAt(time.Now().UTC())
	if meta.BuildStatus != nil {
		update.SetBuildStatus(entsession.BuildStatus(*meta.BuildStatus))
	}
	if meta.BuildArtifacts != nil {
		update.SetBuildArtifacts(meta.BuildArtifacts)
	}
	if meta.AestheticScores != nil {
		update.SetAestheticScores(meta.AestheticScores)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update session metadata: %w", err)
	}
	return nil
}

// Clear drops the stored graph state.
func (s *StateService) Clear(httpCtx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.Session.UpdateOneID(sessionID).
		ClearGraphState().
		SetUpdatedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to clear graph state: %w", err)
	}
	return nil
}
