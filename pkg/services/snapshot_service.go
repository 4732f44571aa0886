package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	entpage "github.com/TheSmartAz/instant-coffee-sub001/ent/page"
	entversion "github.com/TheSmartAz/instant-coffee-sub001/ent/pageversion"
	entdoc "github.com/TheSmartAz/instant-coffee-sub001/ent/productdoc"
	entsnapshot "github.com/TheSmartAz/instant-coffee-sub001/ent/projectsnapshot"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
)

// snapshotNumberRetries is how many times snapshot creation retries number
// assignment after a uniqueness violation from a racing writer.
const snapshotNumberRetries = 3

// SnapshotService captures and replays atomic value copies of the product
// doc plus every page's rendered HTML.
type SnapshotService struct {
	client    *ent.Client
	retention *config.RetentionConfig
	docs      *ProductDocService
	pages     *PageService
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(client *ent.Client, retention *config.RetentionConfig, docs *ProductDocService, pages *PageService) *SnapshotService {
	if retention == nil {
		retention = config.DefaultRetentionConfig()
	}
	return &SnapshotService{client: client, retention: retention, docs: docs, pages: pages}
}

// CreateSnapshot captures the current doc and page HTML in one
// transaction. The snapshot number is MAX+1 per session; losers of the
// uniqueness race retry with a fresh number.
func (s *SnapshotService) CreateSnapshot(httpCtx context.Context, sessionID, source, label string) (*ent.ProjectSnapshot, error) {
	src := entsnapshot.Source(source)
	if source == "" {
		src = entsnapshot.SourceAuto
	}
	switch src {
	case entsnapshot.SourceAuto, entsnapshot.SourceManual, entsnapshot.SourceRollback:
	default:
		return nil, NewValidationError("source", "must be auto, manual, or rollback")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt < snapshotNumberRetries; attempt++ {
		snapshot, err := s.tryCreateSnapshot(ctx, sessionID, src, label)
		if err == nil {
			return snapshot, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("snapshot number contention persisted after %d attempts: %w", snapshotNumberRetries, lastErr)
}

func (s *SnapshotService) tryCreateSnapshot(ctx context.Context, sessionID string, src entsnapshot.Source, label string) (*ent.ProjectSnapshot, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	next := 1
	last, err := tx.ProjectSnapshot.Query().
		Where(entsnapshot.SessionIDEQ(sessionID)).
		Order(ent.Desc(entsnapshot.FieldSnapshotNumber)).
		First(ctx)
	switch {
	case err == nil:
		next = last.SnapshotNumber + 1
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to query last snapshot number: %w", err)
	}

	builder := tx.ProjectSnapshot.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetSnapshotNumber(next).
		SetSource(src)
	if label != "" {
		builder.SetLabel(label)
	}

	doc, err := tx.ProductDoc.Query().
		Where(entdoc.SessionIDEQ(sessionID)).
		Only(ctx)
	switch {
	case err == nil:
		builder.SetDocContent(doc.Content).
			SetDocVersion(doc.Version)
		if doc.Structured != nil {
			builder.SetDocStructured(doc.Structured)
		}
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to load product doc: %w", err)
	}

	pageCopies, err := capturePages(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(pageCopies) > 0 {
		builder.SetPages(pageCopies)
	}

	snapshot, err := builder.Save(ctx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	s.runSnapshotRetention(ctx, sessionID)
	return snapshot, nil
}

// capturePages value-copies every page's rendered HTML, preferring the
// current_version_id weak reference and falling back to the highest
// version. Versions are resolved in bulk, one query per batch.
func capturePages(ctx context.Context, tx *ent.Tx, sessionID string) ([]map[string]interface{}, error) {
	pages, err := tx.Page.Query().
		Where(entpage.SessionIDEQ(sessionID)).
		Order(ent.Asc(entpage.FieldOrderIndex), ent.Asc(entpage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	if len(pages) == 0 {
		return nil, nil
	}

	currentIDs := make([]string, 0, len(pages))
	pageIDs := make([]string, 0, len(pages))
	for _, p := range pages {
		pageIDs = append(pageIDs, p.ID)
		if p.CurrentVersionID != nil && *p.CurrentVersionID != "" {
			currentIDs = append(currentIDs, *p.CurrentVersionID)
		}
	}

	byID := make(map[string]*ent.PageVersion, len(currentIDs))
	if len(currentIDs) > 0 {
		versions, err := tx.PageVersion.Query().
			Where(entversion.IDIn(currentIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve current versions: %w", err)
		}
		for _, v := range versions {
			byID[v.ID] = v
		}
	}

	// Latest-per-page fallback for dangling or absent references.
	latestByPage := make(map[string]*ent.PageVersion, len(pages))
	allVersions, err := tx.PageVersion.Query().
		Where(entversion.PageIDIn(pageIDs...)).
		Order(ent.Desc(entversion.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list page versions: %w", err)
	}
	for _, v := range allVersions {
		if _, ok := latestByPage[v.PageID]; !ok {
			latestByPage[v.PageID] = v
		}
	}

	copies := make([]map[string]interface{}, 0, len(pages))
	for _, p := range pages {
		var version *ent.PageVersion
		if p.CurrentVersionID != nil {
			version = byID[*p.CurrentVersionID]
		}
		if version == nil {
			version = latestByPage[p.ID]
		}

		html := ""
		if version != nil && version.HTML != nil {
			html = *version.HTML
		}
		copies = append(copies, map[string]interface{}{
			"slug":        p.Slug,
			"title":       p.Title,
			"order_index": p.OrderIndex,
			"html":        html,
		})
	}
	return copies, nil
}

// GetSnapshot retrieves a snapshot by ID.
func (s *SnapshotService) GetSnapshot(ctx context.Context, snapshotID string) (*ent.ProjectSnapshot, error) {
	snapshot, err := s.client.ProjectSnapshot.Query().
		Where(entsnapshot.IDEQ(snapshotID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return snapshot, nil
}

// ListSnapshots returns the session's snapshots, newest first. Released
// rows appear with nulled payloads.
func (s *SnapshotService) ListSnapshots(ctx context.Context, sessionID string, limit int) ([]*ent.ProjectSnapshot, error) {
	if limit <= 0 {
		limit = 50
	}
	snapshots, err := s.client.ProjectSnapshot.Query().
		Where(entsnapshot.SessionIDEQ(sessionID)).
		Order(ent.Desc(entsnapshot.FieldSnapshotNumber)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}

// RollbackToSnapshot replays a snapshot into the live doc and pages: a
// rollback-source history row, a rollback-source version per captured
// page (creating missing pages), then a rollback-source snapshot of the
// restored state. Released snapshots cannot be rolled back to.
func (s *SnapshotService) RollbackToSnapshot(httpCtx context.Context, snapshotID string) (*ent.ProjectSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snapshot, err := s.GetSnapshot(ctx, snapshotID)
	if err != nil {
		return nil, err
	}
	if snapshot.IsReleased {
		return nil, ErrVersionReleased
	}

	if snapshot.DocContent != nil {
		_, _, err := s.docs.UpdateDoc(ctx, snapshot.SessionID, models.UpdateProductDocRequest{
			Content:       *snapshot.DocContent,
			Structured:    snapshot.DocStructured,
			Source:        "rollback",
			ChangeSummary: fmt.Sprintf("rollback to snapshot %d", snapshot.SnapshotNumber),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to restore product doc: %w", err)
		}
	}

	for _, captured := range snapshot.Pages {
		slug, _ := captured["slug"].(string)
		title, _ := captured["title"].(string)
		html, _ := captured["html"].(string)
		orderIndex := 0
		if f, ok := captured["order_index"].(float64); ok {
			orderIndex = int(f)
		}

		page, err := s.pages.GetBySlug(ctx, snapshot.SessionID, slug)
		if errors.Is(err, ErrNotFound) {
			page, err = s.pages.CreatePage(ctx, models.CreatePageRequest{
				SessionID:  snapshot.SessionID,
				Slug:       slug,
				Title:      title,
				OrderIndex: orderIndex,
			})
		}
		if err != nil {
			return nil, fmt.Errorf("failed to restore page %q: %w", slug, err)
		}

		desc := fmt.Sprintf("rollback to snapshot %d", snapshot.SnapshotNumber)
		if _, err := s.pages.CreateVersion(ctx, page.ID, html, desc, "rollback", false); err != nil {
			return nil, fmt.Errorf("failed to restore page version for %q: %w", slug, err)
		}
	}

	label := fmt.Sprintf("after rollback to %d", snapshot.SnapshotNumber)
	return s.CreateSnapshot(ctx, snapshot.SessionID, "rollback", label)
}

// PinSnapshot pins or unpins one snapshot, enforcing the pin cap, then
// re-applies retention.
func (s *SnapshotService) PinSnapshot(httpCtx context.Context, snapshotID string, pinned bool) (*ent.ProjectSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	snapshot, err := tx.ProjectSnapshot.Query().
		Where(entsnapshot.IDEQ(snapshotID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if pinned && !snapshot.IsPinned {
		currentPinned, err := tx.ProjectSnapshot.Query().
			Where(
				entsnapshot.SessionIDEQ(snapshot.SessionID),
				entsnapshot.IsPinnedEQ(true),
			).
			Order(ent.Asc(entsnapshot.FieldCreatedAt)).
			IDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count pinned snapshots: %w", err)
		}
		if err := checkPinLimit(currentPinned, s.retention); err != nil {
			return nil, err
		}
	}

	updated, err := tx.ProjectSnapshot.UpdateOneID(snapshotID).
		SetIsPinned(pinned).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pin snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit pin: %w", err)
	}

	s.runSnapshotRetention(ctx, snapshot.SessionID)
	return updated, nil
}

// runSnapshotRetention applies retention in its own transaction, after the
// write that triggered it has committed. A retention failure must never
// take the committed write down with it, so it is logged and dropped.
func (s *SnapshotService) runSnapshotRetention(ctx context.Context, sessionID string) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		slog.Warn("Snapshot retention skipped", "session_id", sessionID, "error", err)
		return
	}
	if err := s.applySnapshotRetention(ctx, tx, sessionID); err != nil {
		_ = tx.Rollback()
		slog.Warn("Snapshot retention failed", "session_id", sessionID, "error", err)
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Warn("Snapshot retention failed", "session_id", sessionID, "error", err)
	}
}

// applySnapshotRetention releases snapshots beyond the keep set, nulling
// their doc and page payloads.
func (s *SnapshotService) applySnapshotRetention(ctx context.Context, tx *ent.Tx, sessionID string) error {
	rows, err := tx.ProjectSnapshot.Query().
		Where(entsnapshot.SessionIDEQ(sessionID)).
		Order(ent.Desc(entsnapshot.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list snapshots for retention: %w", err)
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
		err := tx.ProjectSnapshot.UpdateOneID(id).
			SetIsReleased(true).
			SetReleasedAt(now).
			SetPayloadPrunedAt(now).
			ClearDocContent().
			ClearDocStructured().
			ClearPages().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to release snapshot %s: %w", id, err)
		}
	}
	for _, id := range plan.Unrelease {
		err := tx.ProjectSnapshot.UpdateOneID(id).
			SetIsReleased(false).
			ClearReleasedAt().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to unrelease snapshot %s: %w", id, err)
		}
	}
	return nil
}
