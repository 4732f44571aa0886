package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	entsession "github.com/TheSmartAz/instant-coffee-sub001/ent/session"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
)

// SessionService manages the long-lived project containers.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a new session container.
func (s *SessionService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Session.Create().
		SetID(uuid.New().String())
	if req.Title != "" {
		builder.SetTitle(req.Title)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a session by ID.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	session, err := s.client.Session.Query().
		Where(entsession.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListSessions returns sessions ordered by creation, newest first.
func (s *SessionService) ListSessions(ctx context.Context, limit, offset int) ([]*ent.Session, int, error) {
	if limit <= 0 {
		limit = 50
	}

	total, err := s.client.Session.Query().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	sessions, err := s.client.Session.Query().
		Order(ent.Desc(entsession.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, total, nil
}

// UpdateRouting records the classifier's routing decision on the session.
func (s *SessionService) UpdateRouting(ctx context.Context, sessionID, productType, complexity, skillID, docTier string) error {
	update := s.client.Session.UpdateOneID(sessionID)
	if productType != "" {
		update.SetProductType(productType)
	}
	if complexity != "" {
		update.SetComplexity(complexity)
	}
	if skillID != "" {
		update.SetSkillID(skillID)
	}
	if docTier != "" {
		update.SetDocTier(docTier)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update session routing: %w", err)
	}
	return nil
}

// DeleteSession removes a session and, via cascade, everything it owns.
func (s *SessionService) DeleteSession(httpCtx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.client.Session.DeleteOneID(sessionID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
