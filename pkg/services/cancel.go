package services

import "sync"

// CancelRegistry is the process-wide set of cancelled run ids. Graph nodes
// and task executors poll it at their boundaries instead of threading a
// cancel signal through every call. Keys are run ids.
type CancelRegistry struct {
	mu   sync.Mutex
	runs map[string]struct{}
}

// NewCancelRegistry creates an empty registry.
func NewCancelRegistry() *CancelRegistry {
	return &CancelRegistry{runs: make(map[string]struct{})}
}

// Mark records a run as cancelled.
func (r *CancelRegistry) Mark(runID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[runID] = struct{}{}
}

// Clear removes a run from the cancelled set. Called when a run reaches a
// non-cancelled terminal state so ids do not accumulate.
func (r *CancelRegistry) Clear(runID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.runs, runID)
}

// IsCancelled reports whether a run has been cancelled.
func (r *CancelRegistry) IsCancelled(runID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.runs[runID]
	return ok
}
