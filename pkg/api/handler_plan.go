package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/executor"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
)

// planRecord is the wire form of a plan.
type planRecord struct {
	ID        string    `json:"plan_id"`
	SessionID string    `json:"session_id"`
	Goal      string    `json:"goal"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPlanRecord(plan *ent.Plan) planRecord {
	return planRecord{
		ID:        plan.ID,
		SessionID: plan.SessionID,
		Goal:      plan.Goal,
		Status:    string(plan.Status),
		CreatedAt: plan.CreatedAt,
		UpdatedAt: plan.UpdatedAt,
	}
}

// taskRecord is the wire form of a plan task.
type taskRecord struct {
	ID           string                 `json:"task_id"`
	Title        string                 `json:"title"`
	AgentType    string                 `json:"agent_type"`
	Status       string                 `json:"status"`
	Progress     int                    `json:"progress"`
	RetryCount   int                    `json:"retry_count"`
	DependsOn    []string               `json:"depends_on,omitempty"`
	CanParallel  bool                   `json:"can_parallel"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	Result       map[string]interface{} `json:"result,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

func toTaskRecord(task *ent.Task) taskRecord {
	rec := taskRecord{
		ID:          task.ID,
		Title:       task.Title,
		AgentType:   task.AgentType,
		Status:      string(task.Status),
		Progress:    task.Progress,
		RetryCount:  task.RetryCount,
		DependsOn:   task.DependsOn,
		CanParallel: task.CanParallel,
		Result:      task.Result,
		CreatedAt:   task.CreatedAt,
	}
	if task.ErrorMessage != nil {
		rec.ErrorMessage = *task.ErrorMessage
	}
	return rec
}

func (s *Server) handleCreatePlan(c *gin.Context) {
	var req models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: "invalid request body: " + err.Error()})
		return
	}
	req.SessionID = c.Param("id")

	plan, tasks, err := s.deps.Plans.CreatePlan(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	records := make([]taskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, toTaskRecord(task))
	}
	c.JSON(http.StatusCreated, gin.H{"plan": toPlanRecord(plan), "tasks": records})

	// Execution proceeds after the response; progress travels on the
	// event feed.
	go func() {
		deps := executor.Deps{
			LLM:       s.deps.LLM,
			Docs:      s.deps.Docs,
			Pages:     s.deps.Pages,
			Snapshots: s.deps.Snapshots,
			SessionID: plan.SessionID,
		}
		if err := s.deps.Executor.Run(context.Background(), s.deps.Emitter, deps, plan.ID); err != nil {
			slog.Error("Plan execution failed", "plan_id", plan.ID, "error", err)
		}
	}()
}

func (s *Server) handleListPlans(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	plans, err := s.deps.Plans.ListBySession(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	records := make([]planRecord, 0, len(plans))
	for _, plan := range plans {
		records = append(records, toPlanRecord(plan))
	}
	c.JSON(http.StatusOK, gin.H{"plans": records})
}

func (s *Server) handleGetPlan(c *gin.Context) {
	plan, err := s.deps.Plans.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	tasks, err := s.deps.Plans.GetTasks(c.Request.Context(), plan.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	records := make([]taskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, toTaskRecord(task))
	}
	c.JSON(http.StatusOK, gin.H{"plan": toPlanRecord(plan), "tasks": records})
}
