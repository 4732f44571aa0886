package executor

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// TemporaryError marks a failure worth retrying with backoff: rate
// limits, transport hiccups, upstream 5xx.
type TemporaryError struct {
	Err error
}

func (e *TemporaryError) Error() string { return e.Err.Error() }
func (e *TemporaryError) Unwrap() error { return e.Err }

// Temporary wraps an error as retryable.
func Temporary(err error) error {
	if err == nil {
		return nil
	}
	return &TemporaryError{Err: err}
}

// temporaryMarkers are substrings that identify retryable provider and
// transport failures when the error is not explicitly wrapped.
var temporaryMarkers = []string{
	"rate limit",
	"rate_limit",
	"too many requests",
	"429",
	"502",
	"503",
	"504",
	"connection refused",
	"connection reset",
	"broken pipe",
	"i/o timeout",
	"temporarily unavailable",
	"overloaded",
}

// IsTemporary reports whether an error should be retried at the task
// level. Cancellation and deadline errors are never temporary: they have
// their own terminal statuses.
func IsTemporary(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var tmp *TemporaryError
	if errors.As(err, &tmp) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range temporaryMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// NewTraceID generates the id attached to task failures for correlation
// across events, logs, and the task row.
func NewTraceID() string {
	return "trace-" + uuid.New().String()
}
