package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/appdata"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/events"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/graph"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/llm"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/orchestrator"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
	testdb "github.com/TheSmartAz/instant-coffee-sub001/test/database"
)

// scriptedLLM answers by system-prompt dispatch so a full run can play
// out against the real graph without a sidecar.
type scriptedLLM struct{}

func (f *scriptedLLM) Chat(_ context.Context, _ string, messages []llm.Message) (string, error) {
	system := messages[0].Content
	switch {
	case strings.Contains(system, "product docs"):
		return "# Overview\nA bakery storefront.\n\n# Pages\n- index - Home - main landing page\n- about - About - who we are\n", nil
	case strings.Contains(system, "design tokens"):
		return `{"color_primary": "#803020"}`, nil
	case strings.Contains(system, "UI components"):
		return `{"header": "site header"}`, nil
	case strings.Contains(system, "HTML pages"):
		return "<!DOCTYPE html>\n<html lang=\"en\">\n<head><title>Page</title></head>\n<body><h1>Generated</h1></body>\n</html>", nil
	case strings.Contains(system, "refine existing"):
		return "<!DOCTYPE html>\n<html lang=\"en\">\n<head><title>Refined</title></head>\n<body>Refined</body>\n</html>", nil
	case strings.Contains(system, "score web page"):
		return "7", nil
	}
	return "", fmt.Errorf("unexpected system prompt: %s", system)
}

func (f *scriptedLLM) ChatStream(ctx context.Context, sessionID string, messages []llm.Message) (<-chan llm.StreamChunk, <-chan error) {
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

func (f *scriptedLLM) Close() error { return nil }

func newCreateRunRequest(sessionID, message string) models.CreateRunRequest {
	return models.CreateRunRequest{SessionID: sessionID, Message: message}
}

type apiFixture struct {
	ts      *httptest.Server
	runs    *services.RunService
	emitter *events.Emitter
}

func newAPIFixture(t *testing.T, cfg *config.ServerConfig) *apiFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	cancels := services.NewCancelRegistry()
	runs := services.NewRunService(client.Client, cancels)
	state := services.NewStateService(client.Client)
	docs := services.NewProductDocService(client.Client, nil)
	pages := services.NewPageService(client.Client, nil)
	store := events.NewStore(client.Client)
	emitter := events.NewEmitter(store)

	gexec := graph.NewExecutor(config.DefaultGraphConfig(), graph.NewMemoryCheckpointer(), cancels, graph.Deps{
		LLM:     &scriptedLLM{},
		Docs:    docs,
		Pages:   pages,
		AppData: appdata.NewSQLStore(client),
	})
	orch := orchestrator.New(runs, state, gexec, emitter, cancels)

	if cfg == nil {
		cfg = config.DefaultServerConfig()
	}
	server := NewServer(cfg, Deps{
		DB:           client,
		Sessions:     services.NewSessionService(client.Client),
		Runs:         runs,
		State:        state,
		Docs:         docs,
		Pages:        pages,
		Snapshots:    services.NewSnapshotService(client.Client, nil, docs, pages),
		Plans:        services.NewPlanService(client.Client),
		Orchestrator: orch,
		LLM:          &scriptedLLM{},
		Store:        store,
		Emitter:      emitter,
		Idempotency:  services.NewIdempotencyCache(cfg.IdempotencyTTL),
	})

	ts := httptest.NewServer(server.http.Handler)
	t.Cleanup(ts.Close)
	return &apiFixture{ts: ts, runs: runs, emitter: emitter}
}

func (f *apiFixture) do(t *testing.T, method, path string, body interface{}, headers map[string]string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, f.ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func (f *apiFixture) doJSON(t *testing.T, method, path string, body interface{}, wantStatus int) map[string]interface{} {
	t.Helper()
	status, raw := f.do(t, method, path, body, nil)
	require.Equal(t, wantStatus, status, "unexpected status for %s %s: %s", method, path, raw)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func (f *apiFixture) createSession(t *testing.T) string {
	t.Helper()
	rec := f.doJSON(t, http.MethodPost, "/api/sessions", map[string]interface{}{"title": "test"}, http.StatusCreated)
	id, _ := rec["session_id"].(string)
	require.NotEmpty(t, id)
	return id
}

func (f *apiFixture) waitRunStatus(t *testing.T, runID, want string) map[string]interface{} {
	t.Helper()
	deadline := time.Now().Add(30 * time.Second)
	var rec map[string]interface{}
	for time.Now().Before(deadline) {
		rec = f.doJSON(t, http.MethodGet, "/api/runs/"+runID, nil, http.StatusOK)
		status, _ := rec["status"].(string)
		if status == want {
			return rec
		}
		switch status {
		case "failed", "cancelled", "completed":
			t.Fatalf("run %s reached terminal status %q waiting for %q (latest_error=%v)",
				runID, status, want, rec["latest_error"])
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatalf("run %s never reached status %q, last seen %v", runID, want, rec["status"])
	return nil
}

func TestRunLifecycle_EndToEnd(t *testing.T) {
	f := newAPIFixture(t, nil)
	sessionID := f.createSession(t)

	// Thin input parks the run waiting for clarification.
	created := f.doJSON(t, http.MethodPost, "/api/runs", map[string]interface{}{
		"session_id": sessionID,
		"message":    "shop",
	}, http.StatusCreated)
	runID, _ := created["run_id"].(string)
	require.NotEmpty(t, runID)
	assert.Equal(t, "queued", created["status"])
	assert.Equal(t, sessionID, created["session_id"])

	f.waitRunStatus(t, runID, "waiting_input")

	resumed := f.doJSON(t, http.MethodPost, "/api/runs/"+runID+"/resume", map[string]interface{}{
		"resume_payload": map[string]interface{}{
			"user_feedback": "A storefront for a local bakery with a home page and an about page.",
		},
	}, http.StatusOK)
	assert.Equal(t, "running", resumed["status"])

	final := f.waitRunStatus(t, runID, "completed")
	assert.NotEmpty(t, final["started_at"])
	assert.NotEmpty(t, final["finished_at"])
	metrics, _ := final["metrics"].(map[string]interface{})
	require.NotNil(t, metrics)
	assert.Equal(t, float64(2), metrics["pages"])

	// The durable feed recorded the full lifecycle in order.
	feed := f.doJSON(t, http.MethodGet, "/api/runs/"+runID+"/events?limit=100", nil, http.StatusOK)
	rows, _ := feed["events"].([]interface{})
	require.NotEmpty(t, rows)

	var types []string
	lastSeq := float64(0)
	for _, raw := range rows {
		row := raw.(map[string]interface{})
		seq := row["seq"].(float64)
		assert.Greater(t, seq, lastSeq)
		lastSeq = seq
		types = append(types, row["type"].(string))
	}
	for _, want := range []string{"run_created", "run_started", "run_waiting_input", "run_resumed", "run_completed"} {
		assert.Contains(t, types, want)
	}
	assert.Equal(t, "run_completed", types[len(types)-1])
}

func TestCreateRun_IdempotentReplay(t *testing.T) {
	f := newAPIFixture(t, nil)
	sessionID := f.createSession(t)

	body := map[string]interface{}{"session_id": sessionID, "message": "shop"}
	headers := map[string]string{"Idempotency-Key": "key-1"}

	status1, raw1 := f.do(t, http.MethodPost, "/api/runs", body, headers)
	require.Equal(t, http.StatusCreated, status1)
	status2, raw2 := f.do(t, http.MethodPost, "/api/runs", body, headers)
	require.Equal(t, http.StatusCreated, status2)

	// Replay is byte-equal and creates no second run.
	assert.Equal(t, raw1, raw2)

	list := f.doJSON(t, http.MethodGet, "/api/sessions/"+sessionID+"/runs", nil, http.StatusOK)
	runs, _ := list["runs"].([]interface{})
	assert.Len(t, runs, 1)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(raw1, &created))
	f.waitRunStatus(t, created["run_id"].(string), "waiting_input")
}

func TestCancelRun_AcceptedThenIdempotent(t *testing.T) {
	f := newAPIFixture(t, nil)
	sessionID := f.createSession(t)

	// Created directly so nothing drives it; it stays queued.
	run, err := f.runs.CreateRun(context.Background(), newCreateRunRequest(sessionID, "cancel me"))
	require.NoError(t, err)

	status, raw := f.do(t, http.MethodPost, "/api/runs/"+run.ID+"/cancel", map[string]interface{}{}, nil)
	assert.Equal(t, http.StatusAccepted, status)
	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &rec))
	assert.Equal(t, "cancelled", rec["status"])

	status, raw = f.do(t, http.MethodPost, "/api/runs/"+run.ID+"/cancel", map[string]interface{}{}, nil)
	assert.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &rec))
	assert.Equal(t, "cancelled", rec["status"])
}

func TestResumeRun_RequiresPayload(t *testing.T) {
	f := newAPIFixture(t, nil)
	sessionID := f.createSession(t)

	run, err := f.runs.CreateRun(context.Background(), newCreateRunRequest(sessionID, "park me"))
	require.NoError(t, err)

	status, raw := f.do(t, http.MethodPost, "/api/runs/"+run.ID+"/resume", map[string]interface{}{}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, string(raw), "resume payload required")
}

func TestResumeRun_ConflictsOutsideWaiting(t *testing.T) {
	f := newAPIFixture(t, nil)
	sessionID := f.createSession(t)

	run, err := f.runs.CreateRun(context.Background(), newCreateRunRequest(sessionID, "still queued"))
	require.NoError(t, err)

	status, raw := f.do(t, http.MethodPost, "/api/runs/"+run.ID+"/resume", map[string]interface{}{
		"resume_payload": map[string]interface{}{"user_feedback": "go"},
	}, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, string(raw), "queued")
}

func TestGetRun_NotFound(t *testing.T) {
	f := newAPIFixture(t, nil)
	status, _ := f.do(t, http.MethodGet, "/api/runs/no-such-run", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRunEvents_SSE(t *testing.T) {
	f := newAPIFixture(t, nil)
	sessionID := f.createSession(t)
	ctx := context.Background()

	run, err := f.runs.CreateRun(ctx, newCreateRunRequest(sessionID, "sse run"))
	require.NoError(t, err)

	f.emitter.EmitType(ctx, sessionID, run.ID, events.TypeRunStarted, nil)
	f.emitter.EmitType(ctx, sessionID, run.ID, events.TypeRunProgress, map[string]interface{}{"node": "brief"})
	f.emitter.EmitType(ctx, sessionID, "other-run", events.TypeRunProgress, nil)
	f.emitter.EmitType(ctx, sessionID, run.ID, events.TypeRunCompleted, nil)

	req, err := http.NewRequest(http.MethodGet, f.ts.URL+"/api/runs/"+run.ID+"/events", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "text/event-stream")

	resp, err := f.ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	// The stream terminates itself after the run's terminal event, so the
	// body can be read to EOF.
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	frames := sseFrames(raw)
	require.Len(t, frames, 4)
	assert.Equal(t, sseDoneMarker, frames[3])

	var types []string
	for _, frame := range frames[:3] {
		var evt map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(frame), &evt))
		assert.Equal(t, run.ID, evt["run_id"])
		types = append(types, evt["type"].(string))
	}
	assert.Equal(t, []string{"run_started", "run_progress", "run_completed"}, types)
}

func sseFrames(raw []byte) []string {
	var frames []string
	for _, line := range strings.Split(string(raw), "\n") {
		if strings.HasPrefix(line, "data: ") {
			frames = append(frames, strings.TrimPrefix(line, "data: "))
		}
	}
	return frames
}

func (f *apiFixture) openEventStream(t *testing.T, runID string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, f.ts.URL+"/api/runs/"+runID+"/events", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "text/event-stream")

	resp, err := f.ts.Client().Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRunEvents_SSE_EndsAfterHTTPCancel(t *testing.T) {
	f := newAPIFixture(t, nil)
	sessionID := f.createSession(t)

	// Created directly so nothing drives it; the HTTP cancel is the only
	// writer this run ever sees.
	run, err := f.runs.CreateRun(context.Background(), newCreateRunRequest(sessionID, "cancel me"))
	require.NoError(t, err)

	status, _ := f.do(t, http.MethodPost, "/api/runs/"+run.ID+"/cancel", map[string]interface{}{}, nil)
	require.Equal(t, http.StatusAccepted, status)

	resp := f.openEventStream(t, run.ID)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	frames := sseFrames(raw)
	require.Len(t, frames, 2)
	var evt map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(frames[0]), &evt))
	assert.Equal(t, "run_cancelled", evt["type"])
	assert.Equal(t, run.ID, evt["run_id"])
	assert.Equal(t, sseDoneMarker, frames[1])
}

func TestRunEvents_SSE_EndsOnTerminalStatusWithoutEvent(t *testing.T) {
	f := newAPIFixture(t, nil)
	sessionID := f.createSession(t)

	run, err := f.runs.CreateRun(context.Background(), newCreateRunRequest(sessionID, "no events"))
	require.NoError(t, err)

	// Service-level cancel records no event row; the stream must close on
	// the run's status alone instead of keepaliving forever.
	_, transitioned, err := f.runs.Cancel(context.Background(), run.ID)
	require.NoError(t, err)
	require.True(t, transitioned)

	resp := f.openEventStream(t, run.ID)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	frames := sseFrames(raw)
	require.Len(t, frames, 1)
	assert.Equal(t, sseDoneMarker, frames[0])
}

func TestRunEvents_SSE_LiveCancelEndsOpenStream(t *testing.T) {
	f := newAPIFixture(t, nil)
	sessionID := f.createSession(t)

	run, err := f.runs.CreateRun(context.Background(), newCreateRunRequest(sessionID, "cancel live"))
	require.NoError(t, err)

	resp := f.openEventStream(t, run.ID)
	done := make(chan []string, 1)
	go func() {
		raw, _ := io.ReadAll(resp.Body)
		done <- sseFrames(raw)
	}()

	// Give the stream a moment to finish catch-up and block on the live
	// feed before cancelling.
	time.Sleep(50 * time.Millisecond)
	status, _ := f.do(t, http.MethodPost, "/api/runs/"+run.ID+"/cancel", map[string]interface{}{}, nil)
	require.Equal(t, http.StatusAccepted, status)

	select {
	case frames := <-done:
		require.NotEmpty(t, frames)
		assert.Equal(t, sseDoneMarker, frames[len(frames)-1])
	case <-time.After(10 * time.Second):
		t.Fatal("stream did not end after cancel")
	}
}

func TestRecordConverters_OptionalFields(t *testing.T) {
	page := &ent.Page{ID: "p1", SessionID: "s1", Slug: "index", Title: "Home"}
	assert.Empty(t, toPageRecord(page).CurrentVersionID)

	versionID := "v1"
	page.CurrentVersionID = &versionID
	assert.Equal(t, "v1", toPageRecord(page).CurrentVersionID)

	task := &ent.Task{ID: "t1", Title: "build"}
	assert.Empty(t, toTaskRecord(task).ErrorMessage)

	msg := "render failed"
	task.ErrorMessage = &msg
	assert.Equal(t, "render failed", toTaskRecord(task).ErrorMessage)
}

func TestRunAPIDisabled(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.RunAPIEnabled = false
	f := newAPIFixture(t, cfg)

	status, raw := f.do(t, http.MethodPost, "/api/runs", map[string]interface{}{"session_id": "x", "message": "y"}, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, string(raw), "run API disabled")

	status, _ = f.do(t, http.MethodGet, "/api/runs/some-id", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// The rest of the surface stays up.
	status, _ = f.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, status)
	f.createSession(t)
}
