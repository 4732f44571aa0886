// Package services implements the persistent stores of the orchestrator:
// runs, sessions, graph state, product docs, pages, snapshots, and plans.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrVersionReleased is returned when a released (payload-pruned) item
	// is used for preview or rollback.
	ErrVersionReleased = errors.New("version has been released and cannot be used")

	// ErrNoWaitingRun is returned when a resume request cannot be resolved
	// to a waiting_input run.
	ErrNoWaitingRun = errors.New("no run is waiting for input")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StateConflictError is returned when a status transition is not allowed
// by the entity's state machine. Carries the observed state so callers
// can report it (HTTP 409 payloads include it).
type StateConflictError struct {
	Entity  string
	ID      string
	Current string
	Target  string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("%s %s: invalid transition %s -> %s", e.Entity, e.ID, e.Current, e.Target)
}

// NewStateConflictError creates a state-conflict error.
func NewStateConflictError(entity, id, current, target string) error {
	return &StateConflictError{Entity: entity, ID: id, Current: current, Target: target}
}

// IsStateConflict checks whether err is a state-conflict error.
func IsStateConflict(err error) bool {
	var sc *StateConflictError
	return errors.As(err, &sc)
}

// PinnedLimitError is returned when pinning would exceed the per-parent
// cap. CurrentPinned lists the ids occupying the slots.
type PinnedLimitError struct {
	Limit         int
	CurrentPinned []string
}

func (e *PinnedLimitError) Error() string {
	return fmt.Sprintf("pinned limit exceeded: at most %d items may be pinned (currently pinned: %v)", e.Limit, e.CurrentPinned)
}

// IsPinnedLimit checks whether err is a pinned-limit error.
func IsPinnedLimit(err error) bool {
	var pl *PinnedLimitError
	return errors.As(err, &pl)
}
