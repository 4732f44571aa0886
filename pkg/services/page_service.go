package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	entpage "github.com/TheSmartAz/instant-coffee-sub001/ent/page"
	entversion "github.com/TheSmartAz/instant-coffee-sub001/ent/pageversion"
	entsession "github.com/TheSmartAz/instant-coffee-sub001/ent/session"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
)

const maxSlugLen = 40

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// NormalizeSlug lowercases and dash-joins a raw slug, then validates it
// against the allowed pattern and length cap.
func NormalizeSlug(raw string) (string, error) {
	slug := strings.ToLower(strings.TrimSpace(raw))
	slug = strings.NewReplacer(" ", "-", "_", "-").Replace(slug)
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return "", NewValidationError("slug", "required")
	}
	if len(slug) > maxSlugLen {
		return "", NewValidationError("slug", fmt.Sprintf("must be at most %d characters", maxSlugLen))
	}
	if !slugPattern.MatchString(slug) {
		return "", NewValidationError("slug", "must match [a-z0-9-]+")
	}
	return slug, nil
}

// PageService manages pages and their immutable HTML versions.
type PageService struct {
	client    *ent.Client
	retention *config.RetentionConfig
}

// NewPageService creates a new PageService.
func NewPageService(client *ent.Client, retention *config.RetentionConfig) *PageService {
	if retention == nil {
		retention = config.DefaultRetentionConfig()
	}
	return &PageService{client: client, retention: retention}
}

// CreatePage creates a page with a normalized slug, unique per session.
func (s *PageService) CreatePage(httpCtx context.Context, req models.CreatePageRequest) (*ent.Page, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	slug, err := NormalizeSlug(req.Slug)
	if err != nil {
		return nil, err
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := s.client.Session.Query().
		Where(entsession.IDEQ(req.SessionID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	builder := s.client.Page.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetSlug(slug).
		SetTitle(req.Title).
		SetOrderIndex(req.OrderIndex)
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}

	page, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return page, nil
}

// GetPage retrieves a page by ID.
func (s *PageService) GetPage(ctx context.Context, pageID string) (*ent.Page, error) {
	page, err := s.client.Page.Query().
		Where(entpage.IDEQ(pageID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return page, nil
}

// GetBySlug retrieves a page by (session, slug).
func (s *PageService) GetBySlug(ctx context.Context, sessionID, slug string) (*ent.Page, error) {
	page, err := s.client.Page.Query().
		Where(
			entpage.SessionIDEQ(sessionID),
			entpage.SlugEQ(slug),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get page by slug: %w", err)
	}
	return page, nil
}

// ListPages returns the session's pages in display order.
func (s *PageService) ListPages(ctx context.Context, sessionID string) ([]*ent.Page, error) {
	pages, err := s.client.Page.Query().
		Where(entpage.SessionIDEQ(sessionID)).
		Order(ent.Asc(entpage.FieldOrderIndex), ent.Asc(entpage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	return pages, nil
}

// CreateVersion appends a new HTML rendition, points current_version_id
// at it, and applies retention.
func (s *PageService) CreateVersion(httpCtx context.Context, pageID, html, description, source string, fallbackUsed bool) (*ent.PageVersion, error) {
	src := entversion.Source(source)
	if source == "" {
		src = entversion.SourceAuto
	}
	switch src {
	case entversion.SourceAuto, entversion.SourceManual, entversion.SourceRollback:
	default:
		return nil, NewValidationError("source", "must be auto, manual, or rollback")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Page.Query().Where(entpage.IDEQ(pageID)).Only(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load page: %w", err)
	}

	next := 1
	last, err := tx.PageVersion.Query().
		Where(entversion.PageIDEQ(pageID)).
		Order(ent.Desc(entversion.FieldVersion)).
		First(ctx)
	switch {
	case err == nil:
		next = last.Version + 1
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to query last version: %w", err)
	}

	builder := tx.PageVersion.Create().
		SetID(uuid.New().String()).
		SetPageID(pageID).
		SetVersion(next).
		SetHTML(html).
		SetSource(src).
		SetFallbackUsed(fallbackUsed)
	if description != "" {
		builder.SetDescription(description)
	}
	version, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create page version: %w", err)
	}

	err = tx.Page.UpdateOneID(pageID).
		SetCurrentVersionID(version.ID).
		SetUpdatedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set current version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit page version: %w", err)
	}

	s.runVersionRetention(ctx, pageID)
	return version, nil
}

// GetCurrent resolves the page's live version: the weak
// current_version_id reference when set, otherwise the highest version.
func (s *PageService) GetCurrent(ctx context.Context, pageID string) (*ent.PageVersion, error) {
	page, err := s.GetPage(ctx, pageID)
	if err != nil {
		return nil, err
	}

	if page.CurrentVersionID != nil && *page.CurrentVersionID != "" {
		version, err := s.client.PageVersion.Query().
			Where(entversion.IDEQ(*page.CurrentVersionID)).
			Only(ctx)
		if err == nil {
			return version, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to resolve current version: %w", err)
		}
		// Dangling reference; fall through to the highest version.
	}

	version, err := s.client.PageVersion.Query().
		Where(entversion.PageIDEQ(pageID)).
		Order(ent.Desc(entversion.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve latest version: %w", err)
	}
	return version, nil
}

// ListVersions returns the page's versions, newest first. Released rows
// appear with nulled html.
func (s *PageService) ListVersions(ctx context.Context, pageID string, limit int) ([]*ent.PageVersion, error) {
	if limit <= 0 {
		limit = 50
	}
	versions, err := s.client.PageVersion.Query().
		Where(entversion.PageIDEQ(pageID)).
		Order(ent.Desc(entversion.FieldVersion)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	return versions, nil
}

// PreviewVersion returns one specific version's HTML. Released versions
// fail distinctly.
func (s *PageService) PreviewVersion(ctx context.Context, pageID, versionID string) (*ent.PageVersion, error) {
	version, err := s.client.PageVersion.Query().
		Where(
			entversion.IDEQ(versionID),
			entversion.PageIDEQ(pageID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}
	if version.IsReleased {
		return nil, ErrVersionReleased
	}
	return version, nil
}

// BuildPreview renders the page's current version, inlining the global
// style CSS before </head> when supplied.
func (s *PageService) BuildPreview(ctx context.Context, pageID, globalStyleCSS string) (*ent.PageVersion, string, error) {
	version, err := s.GetCurrent(ctx, pageID)
	if err != nil {
		return nil, "", err
	}
	if version.IsReleased {
		return nil, "", ErrVersionReleased
	}

	html := ""
	if version.HTML != nil {
		html = *version.HTML
	}
	return version, InlineCSS(html, globalStyleCSS), nil
}

// InlineCSS injects a <style> block before </head>. When the document has
// no head close tag the block is prepended.
func InlineCSS(html, css string) string {
	if css == "" {
		return html
	}
	block := fmt.Sprintf("<style>\n%s\n</style>", css)
	if idx := strings.Index(strings.ToLower(html), "</head>"); idx >= 0 {
		return html[:idx] + block + html[idx:]
	}
	return block + html
}

// PinVersion pins or unpins one version, enforcing the pin cap, then
// re-applies retention.
func (s *PageService) PinVersion(httpCtx context.Context, versionID string, pinned bool) (*ent.PageVersion, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	version, err := tx.PageVersion.Query().
		Where(entversion.IDEQ(versionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load version: %w", err)
	}

	if pinned && !version.IsPinned {
		currentPinned, err := tx.PageVersion.Query().
			Where(
				entversion.PageIDEQ(version.PageID),
				entversion.IsPinnedEQ(true),
			).
			Order(ent.Asc(entversion.FieldCreatedAt)).
			IDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count pinned versions: %w", err)
		}
		if err := checkPinLimit(currentPinned, s.retention); err != nil {
			return nil, err
		}
	}

	updated, err := tx.PageVersion.UpdateOneID(versionID).
		SetIsPinned(pinned).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pin version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit pin: %w", err)
	}

	s.runVersionRetention(ctx, version.PageID)
	return updated, nil
}

// runVersionRetention applies retention in its own transaction, after the
// write that triggered it has committed. A retention failure must never
// take the committed write down with it, so it is logged and dropped.
func (s *PageService) runVersionRetention(ctx context.Context, pageID string) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		slog.Warn("Version retention skipped", "page_id", pageID, "error", err)
		return
	}
	if err := s.applyVersionRetention(ctx, tx, pageID); err != nil {
		_ = tx.Rollback()
		slog.Warn("Version retention failed", "page_id", pageID, "error", err)
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Warn("Version retention failed", "page_id", pageID, "error", err)
	}
}

// applyVersionRetention releases versions beyond the keep set, nulling
// their html payload.
func (s *PageService) applyVersionRetention(ctx context.Context, tx *ent.Tx, pageID string) error {
	rows, err := tx.PageVersion.Query().
		Where(entversion.PageIDEQ(pageID)).
		Order(ent.Desc(entversion.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list versions for retention: %w", err)
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
		err := tx.PageVersion.UpdateOneID(id).
			SetIsReleased(true).
			SetReleasedAt(now).
			SetPayloadPrunedAt(now).
			ClearHTML().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to release version %s: %w", id, err)
		}
	}
	for _, id := range plan.Unrelease {
		err := tx.PageVersion.UpdateOneID(id).
			SetIsReleased(false).
			ClearReleasedAt().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to unrelease version %s: %w", id, err)
		}
	}
	return nil
}
