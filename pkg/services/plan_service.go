package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	entplan "github.com/TheSmartAz/instant-coffee-sub001/ent/plan"
	entsession "github.com/TheSmartAz/instant-coffee-sub001/ent/session"
	enttask "github.com/TheSmartAz/instant-coffee-sub001/ent/task"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
)

// PlanService persists planner-produced task graphs.
type PlanService struct {
	client *ent.Client
}

// NewPlanService creates a new PlanService.
func NewPlanService(client *ent.Client) *PlanService {
	return &PlanService{client: client}
}

// CreatePlan persists a plan with its tasks in one transaction. Task ids
// referenced by depends_on must belong to the same batch.
func (s *PlanService) CreatePlan(httpCtx context.Context, req models.CreatePlanRequest) (*ent.Plan, []*ent.Task, error) {
	if req.SessionID == "" {
		return nil, nil, NewValidationError("session_id", "required")
	}
	if len(req.Tasks) == 0 {
		return nil, nil, NewValidationError("tasks", "at least one task is required")
	}

	// Assign ids up front so depends_on can reference batch members.
	ids := make(map[string]string, len(req.Tasks))
	for i := range req.Tasks {
		t := &req.Tasks[i]
		if t.Title == "" {
			return nil, nil, NewValidationError("tasks", fmt.Sprintf("task %d: title is required", i))
		}
		if t.AgentType == "" {
			return nil, nil, NewValidationError("tasks", fmt.Sprintf("task %d: agent_type is required", i))
		}
		key := t.ID
		if key == "" {
			key = t.Title
		}
		if _, dup := ids[key]; dup {
			return nil, nil, NewValidationError("tasks", fmt.Sprintf("duplicate task id %q", key))
		}
		ids[key] = uuid.New().String()
	}
	for i := range req.Tasks {
		for _, dep := range req.Tasks[i].DependsOn {
			if _, ok := ids[dep]; !ok {
				return nil, nil, NewValidationError("tasks", fmt.Sprintf("task %d depends on unknown task %q", i, dep))
			}
		}
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	exists, err := s.client.Session.Query().
		Where(entsession.IDEQ(req.SessionID)).
		Exist(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return nil, nil, ErrNotFound
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	plan, err := tx.Plan.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetGoal(req.Goal).
		SetStatus(entplan.StatusPending).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create plan: %w", err)
	}

	tasks := make([]*ent.Task, 0, len(req.Tasks))
	for i := range req.Tasks {
		t := req.Tasks[i]
		key := t.ID
		if key == "" {
			key = t.Title
		}

		dependsOn := make([]string, 0, len(t.DependsOn))
		for _, dep := range t.DependsOn {
			dependsOn = append(dependsOn, ids[dep])
		}
		canParallel := true
		if t.CanParallel != nil {
			canParallel = *t.CanParallel
		}

		builder := tx.Task.Create().
			SetID(ids[key]).
			SetPlanID(plan.ID).
			SetTitle(t.Title).
			SetAgentType(t.AgentType).
			SetStatus(enttask.StatusPending).
			SetCanParallel(canParallel)
		if t.Description != "" {
			builder.SetDescription(t.Description)
		}
		if len(dependsOn) > 0 {
			builder.SetDependsOn(dependsOn)
		}

		task, err := builder.Save(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create task %q: %w", t.Title, err)
		}
		tasks = append(tasks, task)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit plan: %w", err)
	}
	return plan, tasks, nil
}

// GetPlan retrieves a plan by ID.
func (s *PlanService) GetPlan(ctx context.Context, planID string) (*ent.Plan, error) {
	plan, err := s.client.Plan.Query().
		Where(entplan.IDEQ(planID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return plan, nil
}

// ListBySession returns a session's plans, newest first.
func (s *PlanService) ListBySession(ctx context.Context, sessionID string, limit int) ([]*ent.Plan, error) {
	if limit <= 0 {
		limit = 20
	}
	plans, err := s.client.Plan.Query().
		Where(entplan.SessionIDEQ(sessionID)).
		Order(ent.Desc(entplan.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// GetTasks returns all tasks of a plan in creation order.
func (s *PlanService) GetTasks(ctx context.Context, planID string) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(enttask.PlanIDEQ(planID)).
		Order(ent.Asc(enttask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdatePlanStatus sets the plan status.
func (s *PlanService) UpdatePlanStatus(httpCtx context.Context, planID string, status entplan.Status) (*ent.Plan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	plan, err := s.client.Plan.UpdateOneID(planID).
		SetStatus(status).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update plan status: %w", err)
	}
	return plan, nil
}

// TaskUpdate carries optional task fields persisted alongside a status
// change. Nil members are left untouched.
type TaskUpdate struct {
	Status       *enttask.Status
	Progress     *int
	RetryCount   *int
	ErrorMessage *string
	Result       map[string]interface{}
	StartedAt    *time.Time
	CompletedAt  *time.Time
}

// UpdateTask persists one task's runtime fields.
func (s *PlanService) UpdateTask(httpCtx context.Context, taskID string, upd TaskUpdate) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.Task.UpdateOneID(taskID)
	if upd.Status != nil {
		update.SetStatus(*upd.Status)
	}
	if upd.Progress != nil {
		update.SetProgress(*upd.Progress)
	}
	if upd.RetryCount != nil {
		update.SetRetryCount(*upd.RetryCount)
	}
	if upd.ErrorMessage != nil {
		update.SetErrorMessage(*upd.ErrorMessage)
	}
	if upd.Result != nil {
		update.SetResult(upd.Result)
	}
	if upd.StartedAt != nil {
		update.SetStartedAt(*upd.StartedAt)
	}
	if upd.CompletedAt != nil {
		update.SetCompletedAt(*upd.CompletedAt)
	}

	task, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// GetTask retrieves a task by ID.
func (s *PlanService) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	task, err := s.client.Task.Query().
		Where(enttask.IDEQ(taskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}
