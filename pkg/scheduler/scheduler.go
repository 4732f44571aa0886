// Package scheduler turns a plan's task list into a dependency DAG and
// answers which tasks may start next. State transitions are linearized
// through the executor's driver loop; the internal mutex only guards
// against auxiliary readers.
package scheduler

import (
	"errors"
	"fmt"
	"sync"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	enttask "github.com/TheSmartAz/instant-coffee-sub001/ent/task"
)

// ErrCycle is returned when the depends_on edges contain a cycle.
var ErrCycle = errors.New("task graph contains a cycle")

type node struct {
	id          string
	status      enttask.Status
	canParallel bool
	dependsOn   []string
}

// Scheduler tracks task readiness over a dependency DAG.
type Scheduler struct {
	mu      sync.Mutex
	nodes   map[string]*node
	order   []string
	reverse map[string][]string
	running map[string]struct{}

	// serialActive is set while a can_parallel=false task executes; it
	// excludes all concurrent admissions.
	serialActive bool
}

// New builds a scheduler from persisted tasks. Fails with ErrCycle on a
// cyclic graph and with a validation-style error on unknown dependencies.
func New(tasks []*ent.Task) (*Scheduler, error) {
	s := &Scheduler{
		nodes:   make(map[string]*node, len(tasks)),
		reverse: make(map[string][]string),
		running: make(map[string]struct{}),
	}
	for _, t := range tasks {
		s.nodes[t.ID] = &node{
			id:          t.ID,
			status:      t.Status,
			canParallel: t.CanParallel,
			dependsOn:   t.DependsOn,
		}
		s.order = append(s.order, t.ID)
	}
	for _, t := range tasks {
		for _, dep := range t.DependsOn {
			if _, ok := s.nodes[dep]; !ok {
				return nil, fmt.Errorf("task %s depends on unknown task %s", t.ID, dep)
			}
			s.reverse[dep] = append(s.reverse[dep], t.ID)
		}
		if t.Status == enttask.StatusInProgress {
			s.running[t.ID] = struct{}{}
			if !t.CanParallel {
				s.serialActive = true
			}
		}
	}
	if s.hasCycle() {
		return nil, ErrCycle
	}
	return s, nil
}

// hasCycle runs a coloring DFS over the forward edges.
func (s *Scheduler) hasCycle() bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(s.nodes))

	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = gray
		for _, dep := range s.nodes[id].dependsOn {
			switch color[dep] {
			case gray:
				return true
			case white:
				if visit(dep) {
					return true
				}
			}
		}
		color[id] = black
		return false
	}

	for _, id := range s.order {
		if color[id] == white && visit(id) {
			return true
		}
	}
	return false
}

func depsSatisfied(s *Scheduler, n *node) bool {
	for _, dep := range n.dependsOn {
		switch s.nodes[dep].status {
		case enttask.StatusDone, enttask.StatusSkipped:
		default:
			return false
		}
	}
	return true
}

// GetReadyTasks returns up to n pending task ids whose dependencies are
// all done or skipped, in plan order. A can_parallel=false task is
// admitted only alone: it requires an idle pool and, once returned, no
// further tasks are admitted in the same call.
func (s *Scheduler) GetReadyTasks(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || s.serialActive {
		return nil
	}

	var ready []string
	for _, id := range s.order {
		if len(ready) >= n {
			break
		}
		task := s.nodes[id]
		if task.status != enttask.StatusPending || !depsSatisfied(s, task) {
			continue
		}
		if !task.canParallel {
			if len(s.running) == 0 && len(ready) == 0 {
				return []string{id}
			}
			continue
		}
		ready = append(ready, id)
	}
	return ready
}

// MarkStarted moves a task to in_progress and reserves its slot.
func (s *Scheduler) MarkStarted(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.nodes[id]
	if !ok {
		return
	}
	task.status = enttask.StatusInProgress
	s.running[id] = struct{}{}
	if !task.canParallel {
		s.serialActive = true
	}
}

// MarkRetrying flags an in-flight task as retrying; it keeps its slot.
func (s *Scheduler) MarkRetrying(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if task, ok := s.nodes[id]; ok {
		task.status = enttask.StatusRetrying
	}
}

// MarkCompleted finishes a task as done and unblocks dependents whose
// remaining dependencies are all satisfied.
func (s *Scheduler) MarkCompleted(id string) []string {
	return s.finishSuccess(id, enttask.StatusDone)
}

// MarkSkipped finishes a task as skipped; for dependents it counts as
// satisfied, symmetric to MarkCompleted.
func (s *Scheduler) MarkSkipped(id string) []string {
	return s.finishSuccess(id, enttask.StatusSkipped)
}

func (s *Scheduler) finishSuccess(id string, status enttask.Status) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.nodes[id]
	if !ok {
		return nil
	}
	task.status = status
	s.release(task)

	var unblocked []string
	for _, depID := range s.reverse[id] {
		dependent := s.nodes[depID]
		if dependent.status == enttask.StatusBlocked && depsSatisfied(s, dependent) {
			dependent.status = enttask.StatusPending
			unblocked = append(unblocked, depID)
		}
	}
	return unblocked
}

// MarkFailed finishes a task as failed and blocks pending dependents,
// transitively. The blocked ids are returned for event emission.
func (s *Scheduler) MarkFailed(id string) []string {
	return s.finishTerminal(id, enttask.StatusFailed)
}

// MarkTimeout is MarkFailed with a timeout status.
func (s *Scheduler) MarkTimeout(id string) []string {
	return s.finishTerminal(id, enttask.StatusTimeout)
}

// MarkAborted finishes a task as aborted on cancellation.
func (s *Scheduler) MarkAborted(id string) []string {
	return s.finishTerminal(id, enttask.StatusAborted)
}

func (s *Scheduler) finishTerminal(id string, status enttask.Status) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.nodes[id]
	if !ok {
		return nil
	}
	task.status = status
	s.release(task)

	// BFS over reverse edges: a dependent of a dead task can never run.
	var blocked []string
	queue := append([]string(nil), s.reverse[id]...)
	for len(queue) > 0 {
		depID := queue[0]
		queue = queue[1:]
		dependent := s.nodes[depID]
		if dependent.status != enttask.StatusPending {
			continue
		}
		dependent.status = enttask.StatusBlocked
		blocked = append(blocked, depID)
		queue = append(queue, s.reverse[depID]...)
	}
	return blocked
}

func (s *Scheduler) release(task *node) {
	delete(s.running, task.id)
	if !task.canParallel {
		s.serialActive = false
	}
}

// Status returns a task's current scheduler-side status.
func (s *Scheduler) Status(id string) (enttask.Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.nodes[id]
	if !ok {
		return "", false
	}
	return task.status, true
}

// RunningCount reports how many tasks currently hold slots.
func (s *Scheduler) RunningCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.running)
}

// IsAllDone reports whether every task finished as done or skipped.
func (s *Scheduler) IsAllDone() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, task := range s.nodes {
		switch task.status {
		case enttask.StatusDone, enttask.StatusSkipped:
		default:
			return false
		}
	}
	return true
}

// IsTerminated reports whether the executor should stop: nothing running,
// nothing ready, and every remaining task either finished or can never
// run.
func (s *Scheduler) IsTerminated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.running) > 0 {
		return false
	}
	for _, task := range s.nodes {
		switch task.status {
		case enttask.StatusPending:
			if depsSatisfied(s, task) {
				return false
			}
			// Pending with an unsatisfiable dependency terminates only if
			// some dependency is dead; otherwise it is still waiting.
			if !s.deadlocked(task) {
				return false
			}
		case enttask.StatusInProgress, enttask.StatusRetrying:
			return false
		}
	}
	return true
}

// deadlocked reports whether a pending task has a dependency that can
// never be satisfied. Caller holds the lock.
func (s *Scheduler) deadlocked(task *node) bool {
	for _, dep := range task.dependsOn {
		switch s.nodes[dep].status {
		case enttask.StatusFailed, enttask.StatusTimeout, enttask.StatusAborted, enttask.StatusBlocked:
			return true
		}
	}
	return false
}
