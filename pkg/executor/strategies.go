package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/events"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/llm"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
)

// interviewExecutor drafts clarifying questions against the product doc.
type interviewExecutor struct {
	deps Deps
}

func (e *interviewExecutor) Execute(ctx context.Context, task *ent.Task, emitter *events.Emitter) (map[string]interface{}, error) {
	doc, err := e.deps.Docs.GetBySession(ctx, e.deps.SessionID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return nil, err
	}

	content := ""
	if doc != nil {
		content = doc.Content
	}
	answer, err := e.deps.LLM.Chat(ctx, e.deps.SessionID, []llm.Message{
		{Role: llm.RoleSystem, Content: "You interview users about a website brief. Reply with one clarifying question per line, at most five lines."},
		{Role: llm.RoleUser, Content: fmt.Sprintf("Brief:\n%s\n\nTask: %s", content, task.Description)},
	})
	if err != nil {
		return nil, err
	}

	var questions []interface{}
	for _, line := range strings.Split(answer, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			questions = append(questions, line)
		}
	}
	return map[string]interface{}{"questions": questions}, nil
}

// generationExecutor renders one page's HTML and appends it as a new
// version. When the model output is not a full document it falls back to
// a minimal template rendition.
type generationExecutor struct {
	deps Deps
}

func (e *generationExecutor) Execute(ctx context.Context, task *ent.Task, emitter *events.Emitter) (map[string]interface{}, error) {
	slug, err := services.NormalizeSlug(task.Title)
	if err != nil {
		return nil, err
	}

	page, err := e.deps.Pages.GetBySlug(ctx, e.deps.SessionID, slug)
	if errors.Is(err, services.ErrNotFound) {
		page, err = e.deps.Pages.CreatePage(ctx, models.CreatePageRequest{
			SessionID: e.deps.SessionID,
			Slug:      slug,
			Title:     task.Title,
		})
		if err == nil {
			emitter.EmitType(ctx, e.deps.SessionID, e.deps.RunID, events.TypePageCreated,
				map[string]interface{}{"page_id": page.ID, "slug": slug})
		}
	}
	if err != nil {
		return nil, err
	}

	emitter.EmitType(ctx, e.deps.SessionID, e.deps.RunID, events.TypeTaskProgress,
		map[string]interface{}{"task_id": task.ID, "progress": 30, "stage": "rendering"})

	docContent := ""
	if doc, derr := e.deps.Docs.GetBySession(ctx, e.deps.SessionID); derr == nil {
		docContent = doc.Content
	}
	html, err := e.deps.LLM.Chat(ctx, e.deps.SessionID, []llm.Message{
		{Role: llm.RoleSystem, Content: "You generate complete standalone HTML pages. Reply with one full HTML document and nothing else."},
		{Role: llm.RoleUser, Content: fmt.Sprintf("Product doc:\n%s\n\nGenerate the %q page. %s", docContent, task.Title, task.Description)},
	})
	if err != nil {
		return nil, err
	}

	fallbackUsed := false
	if !strings.Contains(strings.ToLower(html), "<html") {
		html = fallbackDocument(task.Title, html)
		fallbackUsed = true
	}

	version, err := e.deps.Pages.CreateVersion(ctx, page.ID, html, task.Description, "auto", fallbackUsed)
	if err != nil {
		return nil, err
	}
	emitter.EmitType(ctx, e.deps.SessionID, e.deps.RunID, events.TypePageVersionCreated,
		map[string]interface{}{"page_id": page.ID, "version_id": version.ID, "version": version.Version})

	return map[string]interface{}{
		"page_id":       page.ID,
		"version_id":    version.ID,
		"version":       version.Version,
		"fallback_used": fallbackUsed,
	}, nil
}

// refinementExecutor rewrites a page's current HTML per the task's
// feedback and appends the result as a new version.
type refinementExecutor struct {
	deps Deps
}

func (e *refinementExecutor) Execute(ctx context.Context, task *ent.Task, emitter *events.Emitter) (map[string]interface{}, error) {
	slug, err := services.NormalizeSlug(task.Title)
	if err != nil {
		return nil, err
	}
	page, err := e.deps.Pages.GetBySlug(ctx, e.deps.SessionID, slug)
	if err != nil {
		return nil, err
	}
	current, err := e.deps.Pages.GetCurrent(ctx, page.ID)
	if err != nil {
		return nil, err
	}

	html := ""
	if current.HTML != nil {
		html = *current.HTML
	}
	refined, err := e.deps.LLM.Chat(ctx, e.deps.SessionID, []llm.Message{
		{Role: llm.RoleSystem, Content: "You refine existing HTML pages. Reply with the full revised HTML document and nothing else."},
		{Role: llm.RoleUser, Content: fmt.Sprintf("Current page:\n%s\n\nFeedback: %s", html, task.Description)},
	})
	if err != nil {
		return nil, err
	}
	if !strings.Contains(strings.ToLower(refined), "<html") {
		// Refusing a partial rewrite is safer than replacing a full
		// document with a fragment.
		return nil, fmt.Errorf("refinement produced a partial document for page %q", slug)
	}

	version, err := e.deps.Pages.CreateVersion(ctx, page.ID, refined, task.Description, "auto", false)
	if err != nil {
		return nil, err
	}
	emitter.EmitType(ctx, e.deps.SessionID, e.deps.RunID, events.TypePageVersionCreated,
		map[string]interface{}{"page_id": page.ID, "version_id": version.ID, "version": version.Version})

	return map[string]interface{}{
		"page_id":    page.ID,
		"version_id": version.ID,
		"version":    version.Version,
	}, nil
}

// validatorExecutor checks every page's current HTML for structural
// problems. It never mutates anything.
type validatorExecutor struct {
	deps Deps
}

func (e *validatorExecutor) Execute(ctx context.Context, task *ent.Task, emitter *events.Emitter) (map[string]interface{}, error) {
	pages, err := e.deps.Pages.ListPages(ctx, e.deps.SessionID)
	if err != nil {
		return nil, err
	}

	var issues []interface{}
	for _, page := range pages {
		current, err := e.deps.Pages.GetCurrent(ctx, page.ID)
		if errors.Is(err, services.ErrNotFound) {
			issues = append(issues, map[string]interface{}{"slug": page.Slug, "issue": "no version"})
			continue
		}
		if err != nil {
			return nil, err
		}
		html := ""
		if current.HTML != nil {
			html = *current.HTML
		}
		lower := strings.ToLower(html)
		switch {
		case html == "":
			issues = append(issues, map[string]interface{}{"slug": page.Slug, "issue": "empty html"})
		case !strings.Contains(lower, "<html"):
			issues = append(issues, map[string]interface{}{"slug": page.Slug, "issue": "missing <html>"})
		case !strings.Contains(lower, "</head>"):
			issues = append(issues, map[string]interface{}{"slug": page.Slug, "issue": "missing <head>"})
		}
	}

	return map[string]interface{}{
		"checked": len(pages),
		"issues":  issues,
		"passed":  len(issues) == 0,
	}, nil
}

// exportExecutor freezes the current project state into a manual
// snapshot.
type exportExecutor struct {
	deps Deps
}

func (e *exportExecutor) Execute(ctx context.Context, task *ent.Task, emitter *events.Emitter) (map[string]interface{}, error) {
	label := task.Description
	if label == "" {
		label = "export"
	}
	snapshot, err := e.deps.Snapshots.CreateSnapshot(ctx, e.deps.SessionID, "manual", label)
	if err != nil {
		return nil, err
	}
	emitter.EmitType(ctx, e.deps.SessionID, e.deps.RunID, events.TypeSnapshotCreated,
		map[string]interface{}{"snapshot_id": snapshot.ID, "snapshot_number": snapshot.SnapshotNumber})

	return map[string]interface{}{
		"snapshot_id":     snapshot.ID,
		"snapshot_number": snapshot.SnapshotNumber,
	}, nil
}

func fallbackDocument(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`, title, body)
}
