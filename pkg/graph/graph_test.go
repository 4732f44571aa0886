package graph

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/appdata"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/events"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/llm"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
	testdb "github.com/TheSmartAz/instant-coffee-sub001/test/database"
)

// fakeLLM answers by system-prompt dispatch so one client serves every
// node in a scripted run.
type fakeLLM struct{}

func (f *fakeLLM) Chat(_ context.Context, _ string, messages []llm.Message) (string, error) {
	system := messages[0].Content
	switch {
	case strings.Contains(system, "product docs"):
		return "# Overview\nA small shop site.\n\n# Audience\nLocal shoppers.\n\n# Pages\n- index - Home - main landing page\n- about - About - who we are\n", nil
	case strings.Contains(system, "design tokens"):
		return `{"color_primary": "#123456", "font_family": "serif"}`, nil
	case strings.Contains(system, "UI components"):
		return `{"header": "site header", "footer": "site footer"}`, nil
	case strings.Contains(system, "HTML pages"):
		return "<!DOCTYPE html>\n<html lang=\"en\">\n<head><meta charset=\"utf-8\"><title>Page</title></head>\n<body><h1>Generated</h1></body>\n</html>", nil
	case strings.Contains(system, "refine existing"):
		return "<!DOCTYPE html>\n<html lang=\"en\">\n<head><title>Refined</title></head>\n<body><h1>Refined</h1></body>\n</html>", nil
	case strings.Contains(system, "score web page"):
		return "8", nil
	}
	return "", fmt.Errorf("unexpected system prompt: %s", system)
}

func (f *fakeLLM) ChatStream(ctx context.Context, sessionID string, messages []llm.Message) (<-chan llm.StreamChunk, <-chan error) {
	chunks := make(chan llm.StreamChunk, 1)
	errs := make(chan error, 1)
	if text, err := f.Chat(ctx, sessionID, messages); err != nil {
		errs <- err
	} else {
		chunks <- llm.StreamChunk{Content: text, IsFinal: true}
	}
	close(chunks)
	close(errs)
	return chunks, errs
}

func (f *fakeLLM) Close() error { return nil }

type graphFixture struct {
	exec      *Executor
	cp        *MemoryCheckpointer
	cancels   *services.CancelRegistry
	emitter   *events.Emitter
	docs      *services.ProductDocService
	pages     *services.PageService
	sessionID string
}

func newGraphFixture(t *testing.T) *graphFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	sessions := services.NewSessionService(client.Client)
	session, err := sessions.CreateSession(context.Background(), models.CreateSessionRequest{})
	require.NoError(t, err)

	docs := services.NewProductDocService(client.Client, nil)
	pages := services.NewPageService(client.Client, nil)
	deps := Deps{
		LLM:     &fakeLLM{},
		Docs:    docs,
		Pages:   pages,
		AppData: appdata.NewSQLStore(client),
	}

	cp := NewMemoryCheckpointer()
	cancels := services.NewCancelRegistry()
	return &graphFixture{
		exec:      NewExecutor(config.DefaultGraphConfig(), cp, cancels, deps),
		cp:        cp,
		cancels:   cancels,
		emitter:   events.NewEmitter(nil),
		docs:      docs,
		pages:     pages,
		sessionID: session.ID,
	}
}

func (f *graphFixture) input(runID string, state *models.GraphState, resume map[string]interface{}) Input {
	return Input{
		SessionID: f.sessionID,
		RunID:     runID,
		ThreadID:  f.sessionID + ":" + runID,
		State:     state,
		Resume:    resume,
		Emitter:   f.emitter,
	}
}

func (f *graphFixture) eventTypes() []string {
	evts, _ := f.emitter.EventsSince(0)
	types := make([]string, 0, len(evts))
	for _, e := range evts {
		types = append(types, e.Type)
	}
	return types
}

func drain(t *testing.T, ch <-chan Update) []Update {
	t.Helper()
	var updates []Update
	timeout := time.After(30 * time.Second)
	for {
		select {
		case u, ok := <-ch:
			if !ok {
				return updates
			}
			updates = append(updates, u)
		case <-timeout:
			t.Fatal("graph stream did not terminate")
		}
	}
}

func TestStream_InterruptAndResume(t *testing.T) {
	f := newGraphFixture(t)
	ctx := context.Background()

	// Thin input with no doc on file parks the run at the brief node.
	updates := drain(t, f.exec.Stream(ctx, f.input("run-1", &models.GraphState{UserInput: "shop"}, nil)))
	require.NotEmpty(t, updates)

	last := updates[len(updates)-1]
	require.NotNil(t, last.Interrupt)
	assert.Equal(t, NodeBrief, last.Node)
	assert.Equal(t, "clarification", last.Interrupt.Payload["type"])
	assert.NotEmpty(t, last.Interrupt.Payload["message"])

	cp, err := f.cp.Get(ctx, f.sessionID+":run-1")
	require.NoError(t, err)
	assert.Equal(t, NodeBrief, cp.Node)
	assert.Equal(t, "shop", cp.State["user_input"])

	types := f.eventTypes()
	assert.Contains(t, types, "mcp_setup_done")
	assert.Contains(t, types, "brief_start")
	assert.Contains(t, types, events.TypeInterrupt)

	// Resume with feedback re-enters the brief node and runs to completion.
	updates = drain(t, f.exec.Stream(ctx, f.input("run-1", nil, map[string]interface{}{
		"user_feedback": "A storefront for a local bakery with a home page and an about page.",
	})))
	require.NotEmpty(t, updates)

	last = updates[len(updates)-1]
	require.NoError(t, last.Err)
	assert.True(t, last.Done)
	require.NotNil(t, last.State)
	assert.Equal(t, "success", last.State.BuildStatus)
	assert.Len(t, last.State.Pages, 2)
	assert.False(t, last.State.VerifyBlocked)

	doc, err := f.docs.GetBySession(ctx, f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Version)
	assert.Contains(t, doc.Content, "Overview")

	for _, slug := range []string{"index", "about"} {
		page, err := f.pages.GetBySlug(ctx, f.sessionID, slug)
		require.NoError(t, err)
		current, err := f.pages.GetCurrent(ctx, page.ID)
		require.NoError(t, err)
		require.NotNil(t, current.HTML)
		assert.Contains(t, strings.ToLower(*current.HTML), "<html")
	}

	// Completion drops the checkpoint thread.
	_, err = f.cp.Get(ctx, f.sessionID+":run-1")
	assert.ErrorIs(t, err, ErrNoCheckpoint)

	types = f.eventTypes()
	assert.Contains(t, types, events.TypeProductDocGenerated)
	assert.Contains(t, types, events.TypePageCreated)
	assert.Contains(t, types, events.TypePageVersionCreated)
	assert.Contains(t, types, events.TypeVerifyPass)
	assert.Contains(t, types, events.TypePagePreviewReady)
	assert.Contains(t, types, "render_done")
}

func TestStream_ResumeWithoutCheckpoint(t *testing.T) {
	f := newGraphFixture(t)

	updates := drain(t, f.exec.Stream(context.Background(),
		f.input("run-1", nil, map[string]interface{}{"user_feedback": "anything"})))
	require.Len(t, updates, 1)
	require.Error(t, updates[0].Err)
	assert.ErrorIs(t, updates[0].Err, ErrNoCheckpoint)
}

func TestStream_CancellationMarker(t *testing.T) {
	f := newGraphFixture(t)

	f.cancels.Mark("run-1")
	updates := drain(t, f.exec.Stream(context.Background(),
		f.input("run-1", &models.GraphState{UserInput: "a full storefront for my bakery"}, nil)))
	require.NotEmpty(t, updates)
	assert.ErrorIs(t, updates[len(updates)-1].Err, ErrRunCancelled)
}

func TestNext_Routing(t *testing.T) {
	cfg := config.DefaultGraphConfig()
	e := NewExecutor(cfg, noopCheckpointer{}, nil, Deps{})
	s := &models.GraphState{}

	assert.Equal(t, NodeBrief, e.next(NodeMCPSetup, s))
	assert.Equal(t, NodeStyleExtractor, e.next(NodeBrief, s))
	assert.Equal(t, NodeComponentRegistry, e.next(NodeStyleExtractor, s))
	assert.Equal(t, NodeGenerate, e.next(NodeComponentRegistry, s))

	// Aesthetic scoring is gated on product type and config.
	assert.Equal(t, NodeRefineGate, e.next(NodeGenerate, s))
	assert.Equal(t, NodeAestheticScorer, e.next(NodeGenerate, &models.GraphState{ProductType: "landing"}))
	assert.Equal(t, NodeAestheticScorer, e.next(NodeGenerate, &models.GraphState{ProductType: "invitation"}))
	assert.Equal(t, NodeRefineGate, e.next(NodeGenerate, &models.GraphState{ProductType: "dashboard"}))
	assert.Equal(t, NodeRefineGate, e.next(NodeAestheticScorer, s))

	disabled := *cfg
	disabled.AestheticScoringEnabled = false
	eOff := NewExecutor(&disabled, noopCheckpointer{}, nil, Deps{})
	assert.Equal(t, NodeRefineGate, eOff.next(NodeGenerate, &models.GraphState{ProductType: "landing"}))

	// The gate routes on pending feedback.
	assert.Equal(t, NodeVerify, e.next(NodeRefineGate, s))
	assert.Equal(t, NodeRefine, e.next(NodeRefineGate, &models.GraphState{UserFeedback: "make it blue"}))
	assert.Equal(t, NodeVerify, e.next(NodeRefine, s))

	// Verify allows one repair round, then renders with the report attached.
	assert.Equal(t, NodeRender, e.next(NodeVerify, s))
	blocked := &models.GraphState{VerifyBlocked: true, VerifyReport: map[string]interface{}{"attempts": 1}}
	assert.Equal(t, NodeRefineGate, e.next(NodeVerify, blocked))
	blocked.VerifyReport["attempts"] = 2
	assert.Equal(t, NodeRender, e.next(NodeVerify, blocked))

	gateOff := *cfg
	gateOff.VerifyGateEnabled = false
	eGateOff := NewExecutor(&gateOff, noopCheckpointer{}, nil, Deps{})
	assert.Equal(t, NodeRender, eGateOff.next(NodeVerify, &models.GraphState{VerifyBlocked: true}))

	assert.Equal(t, "", e.next(NodeRender, s))
	assert.Equal(t, "", e.next("nonsense", s))
}

func TestVerifyAttempts(t *testing.T) {
	assert.Equal(t, 0, verifyAttempts(&models.GraphState{}))

	// Checkpoint round-trips turn ints into float64.
	assert.Equal(t, 2, verifyAttempts(&models.GraphState{VerifyReport: map[string]interface{}{"attempts": float64(2)}}))
	assert.Equal(t, 1, verifyAttempts(&models.GraphState{VerifyReport: map[string]interface{}{"attempts": 1}}))
	assert.Equal(t, 0, verifyAttempts(&models.GraphState{VerifyReport: map[string]interface{}{"attempts": "two"}}))
}

func TestMergeState(t *testing.T) {
	handle := map[string]interface{}{"workspace_handle": "app_x"}
	state := &models.GraphState{UserInput: "hello", Runtime: handle}

	merged := mergeState(state, map[string]interface{}{
		"build_status": "success",
		"pages":        []map[string]interface{}{{"slug": "index"}},
	})
	assert.Equal(t, "hello", merged.UserInput)
	assert.Equal(t, "success", merged.BuildStatus)
	require.Len(t, merged.Pages, 1)

	// Runtime handles survive the map round-trip by reference.
	handle["probe"] = true
	assert.Equal(t, true, merged.Runtime["probe"])

	same := mergeState(state, nil)
	assert.Same(t, state, same)
}

func TestRunNode_RetriesThenSucceeds(t *testing.T) {
	e := NewExecutor(nil, noopCheckpointer{}, nil, Deps{})

	var calls atomic.Int32
	spec := &nodeSpec{
		name:        "flaky",
		maxAttempts: 2,
		run: func(ctx context.Context, state *models.GraphState) (map[string]interface{}, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("provider hiccup")
			}
			return map[string]interface{}{"build_status": "success"}, nil
		},
	}

	updates, err := e.runNode(context.Background(), spec, &models.GraphState{})
	require.NoError(t, err)
	assert.Equal(t, "success", updates["build_status"])
	assert.Equal(t, int32(2), calls.Load())
}

func TestRunNode_ExhaustsAttempts(t *testing.T) {
	e := NewExecutor(nil, noopCheckpointer{}, nil, Deps{})

	spec := &nodeSpec{
		name:        "broken",
		maxAttempts: 2,
		run: func(ctx context.Context, state *models.GraphState) (map[string]interface{}, error) {
			return nil, errors.New("schema mismatch")
		},
	}

	_, err := e.runNode(context.Background(), spec, &models.GraphState{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 2 attempts")
	assert.Contains(t, err.Error(), "schema mismatch")
}

func TestRunNode_InterruptSkipsRetry(t *testing.T) {
	e := NewExecutor(nil, noopCheckpointer{}, nil, Deps{})

	var calls atomic.Int32
	spec := &nodeSpec{
		name:        "asks",
		maxAttempts: 3,
		run: func(ctx context.Context, state *models.GraphState) (map[string]interface{}, error) {
			calls.Add(1)
			return nil, NewInterrupt("clarification", "tell me more")
		},
	}

	_, err := e.runNode(context.Background(), spec, &models.GraphState{})
	intr, ok := AsInterrupt(err)
	require.True(t, ok)
	assert.Equal(t, "clarification", intr.Payload["type"])
	assert.Equal(t, int32(1), calls.Load())
}
