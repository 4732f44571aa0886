package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	entdoc "github.com/TheSmartAz/instant-coffee-sub001/ent/productdoc"
	enthistory "github.com/TheSmartAz/instant-coffee-sub001/ent/productdochistory"
	entsession "github.com/TheSmartAz/instant-coffee-sub001/ent/session"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
)

// docTransitions is the allowed product-doc status matrix.
var docTransitions = map[entdoc.Status][]entdoc.Status{
	entdoc.StatusDraft:     {entdoc.StatusConfirmed},
	entdoc.StatusConfirmed: {entdoc.StatusOutdated},
	entdoc.StatusOutdated:  {entdoc.StatusConfirmed},
}

func docTransitionAllowed(from, to entdoc.Status) bool {
	for _, t := range docTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// ProductDocService manages the per-session product doc and its version
// history.
type ProductDocService struct {
	client    *ent.Client
	retention *config.RetentionConfig
}

// NewProductDocService creates a new ProductDocService.
func NewProductDocService(client *ent.Client, retention *config.RetentionConfig) *ProductDocService {
	if retention == nil {
		retention = config.DefaultRetentionConfig()
	}
	return &ProductDocService{client: client, retention: retention}
}

// CreateDoc creates the session's product doc plus its version-1 history
// row. Refuses when one already exists.
func (s *ProductDocService) CreateDoc(httpCtx context.Context, sessionID, content string, structured map[string]interface{}) (*ent.ProductDoc, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := s.client.Session.Query().
		Where(entsession.IDEQ(sessionID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.ProductDoc.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetContent(content).
		SetVersion(1).
		SetStatus(entdoc.StatusDraft)
	if structured != nil {
		builder.SetStructured(structured)
	}

	doc, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create product doc: %w", err)
	}

	historyBuilder := tx.ProductDocHistory.Create().
		SetID(uuid.New().String()).
		SetDocID(doc.ID).
		SetVersion(1).
		SetContent(content).
		SetSource(enthistory.SourceAuto)
	if structured != nil {
		historyBuilder.SetStructured(structured)
	}
	if _, err := historyBuilder.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create initial history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit product doc: %w", err)
	}
	return doc, nil
}

// GetBySession retrieves the session's product doc.
func (s *ProductDocService) GetBySession(ctx context.Context, sessionID string) (*ent.ProductDoc, error) {
	doc, err := s.client.ProductDoc.Query().
		Where(entdoc.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product doc: %w", err)
	}
	return doc, nil
}

// UpdateDoc applies one revision: structured is deep-merged, content
// replaced when supplied, a history row appended with the next version,
// and retention applied. Returns the updated doc and the new history row.
func (s *ProductDocService) UpdateDoc(httpCtx context.Context, sessionID string, req models.UpdateProductDocRequest) (*ent.ProductDoc, *ent.ProductDocHistory, error) {
	source := enthistory.Source(req.Source)
	if req.Source == "" {
		source = enthistory.SourceAuto
	}
	switch source {
	case enthistory.SourceAuto, enthistory.SourceManual, enthistory.SourceRollback:
	default:
		return nil, nil, NewValidationError("source", "must be auto, manual, or rollback")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	doc, err := tx.ProductDoc.Query().
		Where(entdoc.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to load product doc: %w", err)
	}

	content := doc.Content
	if req.Content != "" {
		content = req.Content
	}
	structured := doc.Structured
	if req.Structured != nil {
		structured = mergeDeep(doc.Structured, req.Structured)
	}

	// Next version is monotonic across doc.version and history rows so a
	// manual edit racing a rollback can never reuse a number.
	maxHistory := 0
	last, err := tx.ProductDocHistory.Query().
		Where(enthistory.DocIDEQ(doc.ID)).
		Order(ent.Desc(enthistory.FieldVersion)).
		First(ctx)
	switch {
	case err == nil:
		maxHistory = last.Version
	case !ent.IsNotFound(err):
		return nil, nil, fmt.Errorf("failed to query history versions: %w", err)
	}
	nextVersion := doc.Version
	if maxHistory > nextVersion {
		nextVersion = maxHistory
	}
	nextVersion++

	docUpdate := tx.ProductDoc.UpdateOneID(doc.ID).
		SetContent(content).
		SetVersion(nextVersion).
		SetUpdatedAt(time.Now().UTC())
	if structured != nil {
		docUpdate.SetStructured(structured)
	}
	updated, err := docUpdate.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update product doc: %w", err)
	}

	historyBuilder := tx.ProductDocHistory.Create().
		SetID(uuid.New().String()).
		SetDocID(doc.ID).
		SetVersion(nextVersion).
		SetContent(content).
		SetSource(source)
	if structured != nil {
		historyBuilder.SetStructured(structured)
	}
	if req.ChangeSummary != "" {
		historyBuilder.SetChangeSummary(req.ChangeSummary)
	}
	if len(req.AffectedPages) > 0 {
		historyBuilder.SetAffectedPages(req.AffectedPages)
	}
	history, err := historyBuilder.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to append history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit doc update: %w", err)
	}

	s.runHistoryRetention(ctx, doc.ID)
	return updated, history, nil
}

// Confirm transitions the doc to confirmed.
func (s *ProductDocService) Confirm(ctx context.Context, sessionID string) (*ent.ProductDoc, error) {
	return s.transition(ctx, sessionID, entdoc.StatusConfirmed)
}

// MarkOutdated transitions the doc to outdated.
func (s *ProductDocService) MarkOutdated(ctx context.Context, sessionID string) (*ent.ProductDoc, error) {
	return s.transition(ctx, sessionID, entdoc.StatusOutdated)
}

func (s *ProductDocService) transition(httpCtx context.Context, sessionID string, target entdoc.Status) (*ent.ProductDoc, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, err := s.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if doc.Status == target {
		return doc, nil
	}
	if !docTransitionAllowed(doc.Status, target) {
		return nil, NewStateConflictError("product_doc", doc.ID, string(doc.Status), string(target))
	}

	updated, err := s.client.ProductDoc.UpdateOneID(doc.ID).
		SetStatus(target).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition product doc: %w", err)
	}
	return updated, nil
}

// SetPendingRegeneration stores the normalized slugs of pages that need
// regeneration after a doc update. Invalid slugs are rejected.
func (s *ProductDocService) SetPendingRegeneration(httpCtx context.Context, sessionID string, pages []string) error {
	normalized := make([]string, 0, len(pages))
	seen := make(map[string]bool, len(pages))
	for _, p := range pages {
		slug, err := NormalizeSlug(p)
		if err != nil {
			return err
		}
		if !seen[slug] {
			seen[slug] = true
			normalized = append(normalized, slug)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, err := s.GetBySession(ctx, sessionID)
	if err != nil {
		return err
	}
	err = s.client.ProductDoc.UpdateOneID(doc.ID).
		SetPendingRegenerationPages(normalized).
		SetUpdatedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set pending regeneration pages: %w", err)
	}
	return nil
}

// ListHistory returns the doc's history rows, newest first. Released rows
// appear with nulled payloads.
func (s *ProductDocService) ListHistory(ctx context.Context, sessionID string, limit int) ([]*ent.ProductDocHistory, error) {
	if limit <= 0 {
		limit = 50
	}
	doc, err := s.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	histories, err := s.client.ProductDocHistory.Query().
		Where(enthistory.DocIDEQ(doc.ID)).
		Order(ent.Desc(enthistory.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return histories, nil
}

// PinHistory pins or unpins one history row, enforcing the pin cap, then
// re-applies retention.
func (s *ProductDocService) PinHistory(httpCtx context.Context, historyID string, pinned bool) (*ent.ProductDocHistory, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	history, err := tx.ProductDocHistory.Query().
		Where(enthistory.IDEQ(historyID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	if pinned && !history.IsPinned {
		currentPinned, err := tx.ProductDocHistory.Query().
			Where(
				enthistory.DocIDEQ(history.DocID),
				enthistory.IsPinnedEQ(true),
			).
			Order(ent.Asc(enthistory.FieldCreatedAt)).
			IDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count pinned history: %w", err)
		}
		if err := checkPinLimit(currentPinned, s.retention); err != nil {
			return nil, err
		}
	}

	updated, err := tx.ProductDocHistory.UpdateOneID(historyID).
		SetIsPinned(pinned).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pin history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit pin: %w", err)
	}

	s.runHistoryRetention(ctx, history.DocID)
	return updated, nil
}

// runHistoryRetention applies retention in its own transaction, after the
// write that triggered it has committed. A retention failure must never
// take the committed write down with it, so it is logged and dropped.
func (s *ProductDocService) runHistoryRetention(ctx context.Context, docID string) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		slog.Warn("History retention skipped", "doc_id", docID, "error", err)
		return
	}
	if err := s.applyHistoryRetention(ctx, tx, docID); err != nil {
		_ = tx.Rollback()
		slog.Warn("History retention failed", "doc_id", docID, "error", err)
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Warn("History retention failed", "doc_id", docID, "error", err)
	}
}

// applyHistoryRetention releases history rows beyond the keep set,
// nulling their payload columns.
func (s *ProductDocService) applyHistoryRetention(ctx context.Context, tx *ent.Tx, docID string) error {
	rows, err := tx.ProductDocHistory.Query().
		Where(enthistory.DocIDEQ(docID)).
		Order(ent.Desc(enthistory.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list history for retention: %w", err)
	}

	items := make([]retentionItem, len(rows))
	for i, row := range rows {
		items[i] = retentionItem{
			ID:         row.ID,
			Source:     string(row.Source),
			IsPinned:   row.IsPinned,
			IsReleased: row.IsReleased,
			CreatedAt:  row.CreatedAt,
		}
	}

	plan := planRetention(items, s.retention)
	now := time.Now().UTC()
	for _, id := range plan.Release {
		err := tx.ProductDocHistory.UpdateOneID(id).
			SetIsReleased(true).
			SetReleasedAt(now).
			SetPayloadPrunedAt(now).
			ClearContent().
			ClearStructured().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to release history %s: %w", id, err)
		}
	}
	for _, id := range plan.Unrelease {
		err := tx.ProductDocHistory.UpdateOneID(id).
			SetIsReleased(false).
			ClearReleasedAt().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to unrelease history %s: %w", id, err)
		}
	}
	return nil
}

// mergeDeep merges src into dst recursively: nested maps merge key-wise,
// scalars and arrays overwrite. Neither input is mutated.
func mergeDeep(dst, src map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		srcMap, srcOk := v.(map[string]interface{})
		dstMap, dstOk := out[k].(map[string]interface{})
		if srcOk && dstOk {
			out[k] = mergeDeep(dstMap, srcMap)
			continue
		}
		out[k] = v
	}
	return out
}
