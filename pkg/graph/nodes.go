package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/appdata"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/events"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/llm"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/policy"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
)

// Deps are the collaborators node bodies draw on.
type Deps struct {
	LLM     llm.Client
	Docs    *services.ProductDocService
	Pages   *services.PageService
	AppData appdata.Store
	Policy  *policy.Engine
}

// defaultStyleTokens is the fallback when the style extractor is disabled
// or returns garbage.
var defaultStyleTokens = map[string]interface{}{
	"font_family":   "system-ui, sans-serif",
	"color_primary": "#1a1a2e",
	"color_accent":  "#e94560",
	"spacing_unit":  "8px",
	"radius":        "8px",
}

// briefMinInputLen is the threshold under which the brief node asks for
// clarification instead of guessing.
const briefMinInputLen = 20

func (e *Executor) buildNodes(in Input) map[string]*nodeSpec {
	d := e.deps
	io := e.cfg.IONodeMaxAttempts
	llmAttempts := e.cfg.LLMNodeMaxAttempts
	if io <= 0 {
		io = 2
	}
	if llmAttempts <= 0 {
		llmAttempts = 3
	}

	return map[string]*nodeSpec{
		NodeMCPSetup: {
			name:        NodeMCPSetup,
			maxAttempts: io,
			run:         d.mcpSetup(in),
		},
		NodeBrief: {
			name:        NodeBrief,
			maxAttempts: llmAttempts,
			run:         d.brief(in),
			payload: func(s *models.GraphState) map[string]interface{} {
				if s.ProductDoc == nil {
					return nil
				}
				return map[string]interface{}{"doc_version": s.ProductDoc["version"]}
			},
		},
		NodeStyleExtractor: {
			name:        NodeStyleExtractor,
			maxAttempts: llmAttempts,
			run:         d.styleExtractor(in, e.cfg.StyleExtractorEnabled),
			payload: func(s *models.GraphState) map[string]interface{} {
				return map[string]interface{}{"tokens": len(s.StyleTokens)}
			},
		},
		NodeComponentRegistry: {
			name:        NodeComponentRegistry,
			maxAttempts: llmAttempts,
			run:         d.componentRegistry(in),
			payload: func(s *models.GraphState) map[string]interface{} {
				return map[string]interface{}{"components": len(s.ComponentRegistry)}
			},
		},
		NodeGenerate: {
			name:        NodeGenerate,
			maxAttempts: io,
			run:         d.generate(in),
			payload: func(s *models.GraphState) map[string]interface{} {
				return map[string]interface{}{"pages": len(s.Pages)}
			},
		},
		NodeAestheticScorer: {
			name:        NodeAestheticScorer,
			maxAttempts: llmAttempts,
			run:         d.aestheticScorer(in),
			payload: func(s *models.GraphState) map[string]interface{} {
				return map[string]interface{}{"scored": len(s.AestheticScores)}
			},
		},
		NodeRefineGate: {
			name:        NodeRefineGate,
			maxAttempts: 1,
			run: func(ctx context.Context, state *models.GraphState) (map[string]interface{}, error) {
				// Pure router; the conditional edge does the work.
				return nil, nil
			},
		},
		NodeRefine: {
			name:        NodeRefine,
			maxAttempts: llmAttempts,
			run:         d.refine(in),
			payload: func(s *models.GraphState) map[string]interface{} {
				return map[string]interface{}{"pages": len(s.Pages)}
			},
		},
		NodeVerify: {
			name:        NodeVerify,
			maxAttempts: 1,
			run:         d.verify(in),
		},
		NodeRender: {
			name:        NodeRender,
			maxAttempts: io,
			run:         d.render(in),
		},
	}
}

// mcpSetup prepares the run workspace: the app-data namespace plus the
// runtime handles later nodes use. Handles live outside the serialized
// state.
func (d Deps) mcpSetup(in Input) NodeFunc {
	return func(ctx context.Context, state *models.GraphState) (map[string]interface{}, error) {
		schema, err := d.AppData.CreateSchema(ctx, in.SessionID)
		if err != nil {
			return nil, fmt.Errorf("workspace setup: %w", err)
		}
		if state.Runtime == nil {
			state.Runtime = map[string]interface{}{}
		}
		state.Runtime["workspace_handle"] = schema
		return map[string]interface{}{"run_id": in.RunID}, nil
	}
}

// brief resolves the product doc. Thin input with no feedback parks the
// run and asks for clarification.
func (d Deps) brief(in Input) NodeFunc {
	return func(ctx context.Context, state *models.GraphState) (map[string]interface{}, error) {
		if doc, err := d.Docs.GetBySession(ctx, in.SessionID); err == nil {
			return map[string]interface{}{
				"product_doc": map[string]interface{}{
					"content":    doc.Content,
					"structured": doc.Structured,
					"version":    doc.Version,
					"status":     string(doc.Status),
				},
			}, nil
		} else if !errors.Is(err, services.ErrNotFound) {
			return nil, err
		}

		input := strings.TrimSpace(state.UserInput)
		if len(input) < briefMinInputLen && state.UserFeedback == "" {
			return nil, NewInterrupt("clarification",
				"Tell me more about what you want to build: audience, purpose, and the pages you need.")
		}
		if state.UserFeedback != "" {
			input = input + "\n\nAdditional details: " + state.UserFeedback
		}

		content, err := d.LLM.Chat(ctx, in.SessionID, []llm.Message{
			{Role: llm.RoleSystem, Content: "You write concise product docs for small websites. Reply in markdown with sections Overview, Audience, and Pages (one bullet per page: slug - title - purpose)."},
			{Role: llm.RoleUser, Content: input},
		})
		if err != nil {
			return nil, err
		}

		structured := map[string]interface{}{"pages": parsePageBullets(content)}
		doc, err := d.Docs.CreateDoc(ctx, in.SessionID, content, structured)
		if errors.Is(err, services.ErrAlreadyExists) {
			doc2, _, uerr := d.Docs.UpdateDoc(ctx, in.SessionID, models.UpdateProductDocRequest{
				Content: content, Structured: structured,
			})
			if uerr != nil {
				return nil, uerr
			}
			doc = doc2
		} else if err != nil {
			return nil, err
		}

		if in.Emitter != nil {
			in.Emitter.EmitType(ctx, in.SessionID, in.RunID, events.TypeProductDocGenerated,
				map[string]interface{}{"doc_id": doc.ID, "version": doc.Version})
		}
		return map[string]interface{}{
			"product_doc": map[string]interface{}{
				"content":    doc.Content,
				"structured": structured,
				"version":    doc.Version,
				"status":     string(doc.Status),
			},
			"user_feedback": "",
		}, nil
	}
}

// styleExtractor derives style tokens from the brief and any style
// reference. Disabled, it passes defaults through.
func (d Deps) styleExtractor(in Input, enabled bool) NodeFunc {
	return func(ctx context.Context, state *models.GraphState) (map[string]interface{}, error) {
		if !enabled {
			return map[string]interface{}{"style_tokens": defaultStyleTokens}, nil
		}

		docContent := ""
		if state.ProductDoc != nil {
			docContent, _ = state.ProductDoc["content"].(string)
		}
		answer, err := d.LLM.Chat(ctx, in.SessionID, []llm.Message{
			{Role: llm.RoleSystem, Content: "You derive design tokens from a product brief. Reply with a flat JSON object of token name to CSS value and nothing else."},
			{Role: llm.RoleUser, Content: docContent},
		})
		if err != nil {
			return nil, err
		}

		tokens := parseJSONObject(answer)
		if tokens == nil {
			tokens = defaultStyleTokens
		}
		if in.Emitter != nil {
			in.Emitter.EmitType(ctx, in.SessionID, in.RunID, events.TypeStyleExtracted,
				map[string]interface{}{"tokens": len(tokens)})
		}
		return map[string]interface{}{"style_tokens": tokens}, nil
	}
}

// componentRegistry selects the reusable components pages may use.
func (d Deps) componentRegistry(in Input) NodeFunc {
	return func(ctx context.Context, state *models.GraphState) (map[string]interface{}, error) {
		docContent := ""
		if state.ProductDoc != nil {
			docContent, _ = state.ProductDoc["content"].(string)
		}
		answer, err := d.LLM.Chat(ctx, in.SessionID, []llm.Message{
			{Role: llm.RoleSystem, Content: "You pick UI components for a website. Reply with a JSON object mapping component name to a one-line description and nothing else."},
			{Role: llm.RoleUser, Content: docContent},
		})
		if err != nil {
			return nil, err
		}

		registry := parseJSONObject(answer)
		if registry == nil {
			registry = map[string]interface{}{
				"header": "site header with navigation",
				"hero":   "hero section with headline",
				"footer": "site footer",
			}
		}
		return map[string]interface{}{"component_registry": registry}, nil
	}
}

// generate renders every planned page and appends versions.
func (d Deps) generate(in Input) NodeFunc {
	return func(ctx context.Context, state *models.GraphState) (map[string]interface{}, error) {
		planned := plannedPages(state)
		docContent := ""
		if state.ProductDoc != nil {
			docContent, _ = state.ProductDoc["content"].(string)
		}

		var pages []map[string]interface{}
		for _, spec := range planned {
			slug, err := services.NormalizeSlug(spec.slug)
			if err != nil {
				return nil, err
			}
			page, err := d.Pages.GetBySlug(ctx, in.SessionID, slug)
			if errors.Is(err, services.ErrNotFound) {
				page, err = d.Pages.CreatePage(ctx, models.CreatePageRequest{
					SessionID: in.SessionID,
					Slug:      slug,
					Title:     spec.title,
				})
				if err == nil && in.Emitter != nil {
					in.Emitter.EmitType(ctx, in.SessionID, in.RunID, events.TypePageCreated,
						map[string]interface{}{"page_id": page.ID, "slug": slug})
				}
			}
			if err != nil {
				return nil, err
			}

			html, err := d.LLM.Chat(ctx, in.SessionID, []llm.Message{
				{Role: llm.RoleSystem, Content: "You generate complete standalone HTML pages. Reply with one full HTML document and nothing else."},
				{Role: llm.RoleUser, Content: fmt.Sprintf("Product doc:\n%s\n\nStyle tokens: %v\n\nGenerate the %q page (%s).", docContent, state.StyleTokens, spec.title, spec.purpose)},
			})
			if err != nil {
				return nil, err
			}
			fallback := false
			if !strings.Contains(strings.ToLower(html), "<html") {
				html = fmt.Sprintf("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s\n</body>\n</html>", spec.title, html)
				fallback = true
			}

			version, err := d.Pages.CreateVersion(ctx, page.ID, html, spec.purpose, "auto", fallback)
			if err != nil {
				return nil, err
			}
			if in.Emitter != nil {
				in.Emitter.EmitType(ctx, in.SessionID, in.RunID, events.TypePageVersionCreated,
					map[string]interface{}{"page_id": page.ID, "version_id": version.ID, "version": version.Version})
			}
			pages = append(pages, map[string]interface{}{
				"page_id":    page.ID,
				"slug":       slug,
				"title":      spec.title,
				"version_id": version.ID,
				"version":    version.Version,
			})
		}
		return map[string]interface{}{"pages": pages}, nil
	}
}

// aestheticScorer rates each generated page 0-10.
func (d Deps) aestheticScorer(in Input) NodeFunc {
	return func(ctx context.Context, state *models.GraphState) (map[string]interface{}, error) {
		scores := map[string]interface{}{}
		for _, page := range state.Pages {
			slug, _ := page["slug"].(string)
			pageID, _ := page["page_id"].(string)
			if pageID == "" {
				continue
			}
			current, err := d.Pages.GetCurrent(ctx, pageID)
			if err != nil {
				return nil, err
			}
			html := ""
			if current.HTML != nil {
				html = *current.HTML
			}
			answer, err := d.LLM.Chat(ctx, in.SessionID, []llm.Message{
				{Role: llm.RoleSystem, Content: "You score web page aesthetics. Reply with a single number from 0 to 10 and nothing else."},
				{Role: llm.RoleUser, Content: html},
			})
			if err != nil {
				return nil, err
			}
			scores[slug] = strings.TrimSpace(answer)
		}
		return map[string]interface{}{"aesthetic_scores": scores, "aesthetic_enabled": true}, nil
	}
}

// refine rewrites every page per the user feedback, then clears it.
func (d Deps) refine(in Input) NodeFunc {
	return func(ctx context.Context, state *models.GraphState) (map[string]interface{}, error) {
		feedback := state.UserFeedback
		for _, page := range state.Pages {
			pageID, _ := page["page_id"].(string)
			if pageID == "" {
				continue
			}
			current, err := d.Pages.GetCurrent(ctx, pageID)
			if err != nil {
				return nil, err
			}
			html := ""
			if current.HTML != nil {
				html = *current.HTML
			}
			refined, err := d.LLM.Chat(ctx, in.SessionID, []llm.Message{
				{Role: llm.RoleSystem, Content: "You refine existing HTML pages. Reply with the full revised HTML document and nothing else."},
				{Role: llm.RoleUser, Content: fmt.Sprintf("Current page:\n%s\n\nFeedback: %s", html, feedback)},
			})
			if err != nil {
				return nil, err
			}
			if !strings.Contains(strings.ToLower(refined), "<html") {
				continue
			}
			version, err := d.Pages.CreateVersion(ctx, pageID, refined, feedback, "auto", false)
			if err != nil {
				return nil, err
			}
			if in.Emitter != nil {
				in.Emitter.EmitType(ctx, in.SessionID, in.RunID, events.TypePageVersionCreated,
					map[string]interface{}{"page_id": pageID, "version_id": version.ID, "version": version.Version})
			}
			page["version_id"] = version.ID
			page["version"] = version.Version
		}
		return map[string]interface{}{"pages": state.Pages, "user_feedback": ""}, nil
	}
}

// verify structurally checks every page's current HTML. It emits pass or
// fail and keeps an attempt counter so routing can bound repair rounds.
func (d Deps) verify(in Input) NodeFunc {
	return func(ctx context.Context, state *models.GraphState) (map[string]interface{}, error) {
		if in.Emitter != nil {
			in.Emitter.EmitType(ctx, in.SessionID, in.RunID, events.TypeVerifyStart, nil)
		}

		var issues []interface{}
		for _, page := range state.Pages {
			pageID, _ := page["page_id"].(string)
			slug, _ := page["slug"].(string)
			if pageID == "" {
				continue
			}
			current, err := d.Pages.GetCurrent(ctx, pageID)
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
				issues = append(issues, map[string]interface{}{"slug": slug, "issue": "empty html"})
			case !strings.Contains(lower, "<html"):
				issues = append(issues, map[string]interface{}{"slug": slug, "issue": "missing <html>"})
			case !strings.Contains(lower, "</head>"):
				issues = append(issues, map[string]interface{}{"slug": slug, "issue": "missing <head>"})
			}
		}

		attempts := verifyAttempts(state) + 1
		pass := len(issues) == 0
		report := map[string]interface{}{
			"pass":     pass,
			"issues":   issues,
			"attempts": attempts,
		}
		if in.Emitter != nil {
			eventType := events.TypeVerifyPass
			if !pass {
				eventType = events.TypeVerifyFail
			}
			in.Emitter.EmitType(ctx, in.SessionID, in.RunID, eventType,
				map[string]interface{}{"issues": len(issues), "attempts": attempts})
		}
		return map[string]interface{}{
			"verify_report":  report,
			"verify_blocked": !pass,
		}, nil
	}
}

// render produces the final preview set and materializes the data model.
func (d Deps) render(in Input) NodeFunc {
	return func(ctx context.Context, state *models.GraphState) (map[string]interface{}, error) {
		css := tokensToCSS(state.StyleTokens)

		var previews []interface{}
		for _, page := range state.Pages {
			pageID, _ := page["page_id"].(string)
			slug, _ := page["slug"].(string)
			if pageID == "" {
				continue
			}
			version, _, err := d.Pages.BuildPreview(ctx, pageID, css)
			if err != nil {
				return nil, err
			}
			if in.Emitter != nil {
				in.Emitter.EmitType(ctx, in.SessionID, in.RunID, events.TypePagePreviewReady,
					map[string]interface{}{"page_id": pageID, "version_id": version.ID})
			}
			previews = append(previews, map[string]interface{}{"slug": slug, "version_id": version.ID})
		}

		artifacts := map[string]interface{}{"previews": previews}
		if len(state.DataModel) > 0 {
			migration, err := d.AppData.CreateTables(ctx, in.SessionID, tableSpecs(state.DataModel))
			if err != nil {
				return nil, fmt.Errorf("data model migration: %w", err)
			}
			artifacts["data_model_migration"] = map[string]interface{}{
				"schema_name":    migration.SchemaName,
				"tables_created": migration.TablesCreated,
				"rows_inserted":  migration.RowsInserted,
			}
		}

		return map[string]interface{}{
			"build_artifacts": artifacts,
			"build_status":    "success",
		}, nil
	}
}

// pageSpec is one planned page parsed from the product doc.
type pageSpec struct {
	slug    string
	title   string
	purpose string
}

// plannedPages reads the doc's structured page list, defaulting to a
// single index page.
func plannedPages(state *models.GraphState) []pageSpec {
	var specs []pageSpec
	if state.ProductDoc != nil {
		if structured, ok := state.ProductDoc["structured"].(map[string]interface{}); ok {
			if raw, ok := structured["pages"].([]interface{}); ok {
				for _, item := range raw {
					entry, ok := item.(map[string]interface{})
					if !ok {
						continue
					}
					spec := pageSpec{}
					spec.slug, _ = entry["slug"].(string)
					spec.title, _ = entry["title"].(string)
					spec.purpose, _ = entry["purpose"].(string)
					if spec.slug == "" {
						continue
					}
					if spec.title == "" {
						spec.title = spec.slug
					}
					specs = append(specs, spec)
				}
			}
		}
	}
	if len(specs) == 0 {
		specs = []pageSpec{{slug: "index", title: "Home", purpose: "main landing page"}}
	}
	return specs
}

// parsePageBullets extracts "slug - title - purpose" bullets from the
// Pages section of a generated doc.
func parsePageBullets(content string) []interface{} {
	var pages []interface{}
	inPages := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			inPages = strings.Contains(strings.ToLower(trimmed), "pages")
			continue
		}
		if !inPages || (!strings.HasPrefix(trimmed, "-") && !strings.HasPrefix(trimmed, "*")) {
			continue
		}
		parts := strings.SplitN(strings.TrimLeft(trimmed, "-* "), " - ", 3)
		if len(parts) == 0 || parts[0] == "" {
			continue
		}
		entry := map[string]interface{}{"slug": strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			entry["title"] = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			entry["purpose"] = strings.TrimSpace(parts[2])
		}
		pages = append(pages, entry)
	}
	return pages
}

// parseJSONObject leniently extracts the first JSON object from model
// output.
func parseJSONObject(answer string) map[string]interface{} {
	start := strings.Index(answer, "{")
	end := strings.LastIndex(answer, "}")
	if start < 0 || end <= start {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(answer[start:end+1]), &out); err != nil {
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// tokensToCSS renders style tokens as CSS custom properties.
func tokensToCSS(tokens map[string]interface{}) string {
	if len(tokens) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for name, value := range tokens {
		safe := strings.ReplaceAll(name, "_", "-")
		sb.WriteString(fmt.Sprintf("  --%s: %v;\n", safe, value))
	}
	sb.WriteString("}")
	return sb.String()
}

// tableSpecs converts the state's declared data model into table specs.
func tableSpecs(dataModel map[string]interface{}) []appdata.TableSpec {
	var specs []appdata.TableSpec
	for tableName, raw := range dataModel {
		columns, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		spec := appdata.TableSpec{Name: tableName}
		for colName, colType := range columns {
			kind, _ := colType.(string)
			spec.Columns = append(spec.Columns, appdata.ColumnSpec{Name: colName, Type: kind})
		}
		specs = append(specs, spec)
	}
	return specs
}
