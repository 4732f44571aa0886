package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTemporary(t *testing.T) {
	assert.False(t, IsTemporary(nil))
	assert.False(t, IsTemporary(errors.New("invalid input")))

	// Explicit wrap.
	assert.True(t, IsTemporary(Temporary(errors.New("provider hiccup"))))
	assert.True(t, IsTemporary(fmt.Errorf("execute: %w", Temporary(errors.New("x")))))

	// Marker-based classification.
	assert.True(t, IsTemporary(errors.New("upstream returned 429 Too Many Requests")))
	assert.True(t, IsTemporary(errors.New("Rate limit exceeded")))
	assert.True(t, IsTemporary(errors.New("dial tcp: connection refused")))
	assert.True(t, IsTemporary(errors.New("read: i/o timeout")))
	assert.True(t, IsTemporary(errors.New("bad gateway: 502")))

	// Cancellation is never retryable.
	assert.False(t, IsTemporary(context.Canceled))
	assert.False(t, IsTemporary(context.DeadlineExceeded))
	assert.False(t, IsTemporary(fmt.Errorf("task: %w", context.Canceled)))
}

func TestTemporary_NilPassthrough(t *testing.T) {
	assert.NoError(t, Temporary(nil))
}

func TestNewTraceID(t *testing.T) {
	a, b := NewTraceID(), NewTraceID()
	assert.True(t, strings.HasPrefix(a, "trace-"))
	assert.NotEqual(t, a, b)
}
