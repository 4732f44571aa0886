package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/events"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/orchestrator"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
)

// sseDoneMarker terminates an SSE stream after the run's terminal event.
const sseDoneMarker = "[DONE]"

// runRecord is the wire form of a run.
type runRecord struct {
	ID            string                 `json:"run_id"`
	SessionID     string                 `json:"session_id"`
	Status        string                 `json:"status"`
	TriggerSource string                 `json:"trigger_source"`
	InputMessage  string                 `json:"input_message,omitempty"`
	ParentRunID   string                 `json:"parent_run_id,omitempty"`
	LatestError   string                 `json:"latest_error,omitempty"`
	Metrics       map[string]interface{} `json:"metrics,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	StartedAt     *time.Time             `json:"started_at,omitempty"`
	FinishedAt    *time.Time             `json:"finished_at,omitempty"`
}

func toRunRecord(run *ent.Run) runRecord {
	rec := runRecord{
		ID:            run.ID,
		SessionID:     run.SessionID,
		Status:        string(run.Status),
		TriggerSource: run.TriggerSource,
		InputMessage:  run.InputMessage,
		Metrics:       run.Metrics,
		CreatedAt:     run.CreatedAt,
		StartedAt:     run.StartedAt,
		FinishedAt:    run.FinishedAt,
	}
	if run.ParentRunID != nil {
		rec.ParentRunID = *run.ParentRunID
	}
	if run.LatestError != nil {
		rec.LatestError = *run.LatestError
	}
	return rec
}

func (s *Server) handleCreateRun(c *gin.Context) {
	var req models.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: "invalid request body: " + err.Error()})
		return
	}

	idemKey := c.GetHeader("Idempotency-Key")
	if cached, ok := s.deps.Idempotency.Get("run_create", req.SessionID, idemKey); ok {
		c.Data(cached.Status, "application/json", cached.Body)
		return
	}

	orchReq := orchestrator.Request{
		SessionID:      req.SessionID,
		Message:        req.Message,
		GenerateNow:    req.GenerateNow,
		StyleReference: req.StyleReference,
		TargetPages:    req.TargetPages,
	}
	run, err := s.deps.Orchestrator.OpenRun(c.Request.Context(), orchReq)
	if err != nil {
		respondError(c, err)
		return
	}

	body, _ := json.Marshal(toRunRecord(run))
	s.deps.Idempotency.Put("run_create", req.SessionID, idemKey, http.StatusCreated, body)
	c.Data(http.StatusCreated, "application/json", body)

	// The run proceeds after the response; progress travels on the event
	// feed.
	go s.drain(run, orchReq)
}

func (s *Server) handleGetRun(c *gin.Context) {
	run, err := s.deps.Runs.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRunRecord(run))
}

// resumeBody accepts both accepted spellings of the resume payload.
type resumeBody struct {
	Resume        map[string]interface{} `json:"resume,omitempty"`
	ResumePayload map[string]interface{} `json:"resume_payload,omitempty"`
}

func (s *Server) handleResumeRun(c *gin.Context) {
	runID := c.Param("id")

	var body resumeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorBody{Error: "invalid resume payload: " + err.Error()})
		return
	}
	payload := body.ResumePayload
	if payload == nil {
		payload = body.Resume
	}
	if payload == nil {
		c.JSON(http.StatusUnprocessableEntity, errorBody{Error: "resume payload required"})
		return
	}

	idemKey := c.GetHeader("Idempotency-Key")
	if cached, ok := s.deps.Idempotency.Get("run_resume", runID, idemKey); ok {
		c.Data(cached.Status, "application/json", cached.Body)
		return
	}

	orchReq := orchestrator.Request{
		Resume: &models.ResumeRunRequest{RunID: runID, Payload: payload},
	}
	run, err := s.deps.Orchestrator.OpenResume(c.Request.Context(), orchReq)
	if err != nil {
		respondError(c, err)
		return
	}
	orchReq.SessionID = run.SessionID

	respBody, _ := json.Marshal(toRunRecord(run))
	s.deps.Idempotency.Put("run_resume", runID, idemKey, http.StatusOK, respBody)
	c.Data(http.StatusOK, "application/json", respBody)

	go s.drain(run, orchReq)
}

func (s *Server) handleCancelRun(c *gin.Context) {
	run, transitioned, err := s.deps.Runs.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if transitioned {
		status = http.StatusAccepted
		// Keep the event log in step with the run's history: a run
		// cancelled before anything drives it has no other writer.
		s.deps.Emitter.EmitType(c.Request.Context(), run.SessionID, run.ID,
			events.TypeRunCancelled, map[string]interface{}{"status": string(run.Status)})
	}
	c.JSON(status, toRunRecord(run))
}

// drain runs the orchestrator to completion in the background, consuming
// its response records. The HTTP response has already been written.
func (s *Server) drain(run *ent.Run, req orchestrator.Request) {
	for range s.deps.Orchestrator.Drive(context.Background(), run, req) {
	}
}

func (s *Server) handleRunEvents(c *gin.Context) {
	run, err := s.deps.Runs.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	sinceSeq, _ := strconv.ParseInt(c.Query("since_seq"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit"))

	if wantsSSE(c) {
		s.streamRunEvents(c, run, sinceSeq)
		return
	}

	rows, hasMore, err := s.deps.Store.GetEventsByRun(c.Request.Context(), run.SessionID, run.ID, sinceSeq, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventList(rows, sinceSeq, hasMore))
}

func wantsSSE(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/event-stream")
}

func toEventList(rows []*ent.SessionEvent, sinceSeq int64, hasMore bool) models.EventListResponse {
	out := models.EventListResponse{
		Events:  make([]models.EventRecord, 0, len(rows)),
		LastSeq: sinceSeq,
		HasMore: hasMore,
	}
	for _, row := range rows {
		out.Events = append(out.Events, models.EventRecord{
			Type:      row.Type,
			SessionID: row.SessionID,
			Seq:       row.Seq,
			RunID:     row.RunID,
			EventID:   row.EventID,
			Payload:   row.Payload,
			Source:    string(row.Source),
			CreatedAt: row.CreatedAt,
		})
		out.LastSeq = row.Seq
	}
	return out
}

// streamRunEvents serves the run's event feed as SSE: stored events past
// since_seq first, then live events from the emitter. Idle streams get a
// keepalive comment; the stream ends with [DONE] after the run's terminal
// event.
func (s *Server) streamRunEvents(c *gin.Context, run *ent.Run, sinceSeq int64) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	keepalive := s.cfg.SSEKeepaliveInterval
	if keepalive <= 0 {
		keepalive = 15 * time.Second
	}

	lastSeq := sinceSeq
	write := func(evt *events.Envelope) bool {
		data, err := json.Marshal(evt)
		if err != nil {
			return true
		}
		if _, err := c.Writer.WriteString("data: " + string(data) + "\n\n"); err != nil {
			return false
		}
		c.Writer.Flush()
		if evt.Seq > lastSeq {
			lastSeq = evt.Seq
		}
		return true
	}
	writeDone := func() {
		_, _ = c.Writer.WriteString("data: " + sseDoneMarker + "\n\n")
		c.Writer.Flush()
	}

	// Catch up from the store.
	rows, _, err := s.deps.Store.GetEventsByRun(ctx, run.SessionID, run.ID, sinceSeq, 1000)
	if err == nil {
		for _, row := range rows {
			if !write(rowToEnvelope(row)) {
				return
			}
			if isTerminalRunEvent(row.Type) {
				writeDone()
				return
			}
		}
	}

	// A run can be terminal without a terminal-type row (cancelled while
	// queued, or the terminal emit failed); the stream must still end.
	if services.IsTerminalRunStatus(run.Status) {
		writeDone()
		return
	}

	// Follow the live feed. flush drains the buffer; its second return
	// reports that the stream is finished (terminal frame written or the
	// client went away).
	index := s.deps.Emitter.Len()
	flush := func() (bool, bool) {
		var batch []*events.Envelope
		batch, index = s.deps.Emitter.EventsSince(index)
		wrote := false
		for _, evt := range batch {
			if evt.RunID != run.ID || (evt.Seq > 0 && evt.Seq <= lastSeq) {
				continue
			}
			if !write(evt) {
				return wrote, true
			}
			wrote = true
			if isTerminalRunEvent(evt.Type) {
				writeDone()
				return wrote, true
			}
		}
		return wrote, false
	}

	lastWrite := time.Now()
	for {
		if ctx.Err() != nil {
			return
		}
		s.deps.Emitter.Wait(ctx, index, keepalive)

		wrote, finished := flush()
		if finished {
			return
		}
		if wrote {
			lastWrite = time.Now()
			continue
		}

		// Idle wakeup: re-check the run itself so a terminal transition
		// that produced no event still terminates the stream. One more
		// drain first, in case the terminal frame landed in between.
		if latest, err := s.deps.Runs.GetRun(ctx, run.ID); err == nil && services.IsTerminalRunStatus(latest.Status) {
			if _, finished := flush(); finished {
				return
			}
			writeDone()
			return
		}

		if time.Since(lastWrite) >= keepalive {
			if _, err := c.Writer.WriteString(": keepalive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
			lastWrite = time.Now()
		}
	}
}

func rowToEnvelope(row *ent.SessionEvent) *events.Envelope {
	return &events.Envelope{
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

func isTerminalRunEvent(eventType string) bool {
	switch eventType {
	case events.TypeRunCompleted, events.TypeRunFailed, events.TypeRunCancelled:
		return true
	}
	return false
}
