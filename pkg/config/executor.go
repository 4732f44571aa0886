package config

import (
	"fmt"
	"time"
)

// ExecutorConfig controls the parallel task executor and its scheduler.
type ExecutorConfig struct {
	// MaxConcurrent is the bounded pool size. A task with
	// can_parallel=false takes an exclusive slot.
	MaxConcurrent int `yaml:"max_concurrent"`

	// PollInterval is the outer loop sleep between scheduling rounds.
	PollInterval time.Duration `yaml:"poll_interval"`

	// TaskTimeout is the per-task execution deadline.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// SweepInterval is how often the stuck-task sweep runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// TaskTimeoutWindow is how long a task may stay in_progress before the
	// sweep transitions it to timeout.
	TaskTimeoutWindow time.Duration `yaml:"task_timeout_window"`

	// Retry policy for temporary errors.
	RetryMax        int           `yaml:"retry_max"`
	RetryBaseDelay  time.Duration `yaml:"retry_base_delay"`
	RetryMultiplier float64       `yaml:"retry_multiplier"`

	// RunStalenessWindow is how long a run may sit in running with no
	// state change before the janitor declares it dead (process restart).
	RunStalenessWindow time.Duration `yaml:"run_staleness_window"`
}

// DefaultExecutorConfig returns the built-in executor defaults.
func DefaultExecutorConfig() *ExecutorConfig {
	return &ExecutorConfig{
		MaxConcurrent:      5,
		PollInterval:       1 * time.Second,
		TaskTimeout:        600 * time.Second,
		SweepInterval:      60 * time.Second,
		TaskTimeoutWindow:  30 * time.Minute,
		RetryMax:           3,
		RetryBaseDelay:     1 * time.Second,
		RetryMultiplier:    2,
		RunStalenessWindow: 30 * time.Minute,
	}
}

// Validate checks invariants that would otherwise wedge the loop.
func (c *ExecutorConfig) Validate() error {
	if c.MaxConcurrent <= 0 {
		return fmt.Errorf("max_concurrent must be positive, got %d", c.MaxConcurrent)
	}
	if c.RetryMultiplier < 1 {
		return fmt.Errorf("retry_multiplier must be >= 1, got %v", c.RetryMultiplier)
	}
	return nil
}
