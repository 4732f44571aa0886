package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
	enttask "github.com/TheSmartAz/instant-coffee-sub001/ent/task"
)

func task(id string, canParallel bool, deps ...string) *ent.Task {
	return &ent.Task{
		ID:          id,
		Status:      enttask.StatusPending,
		CanParallel: canParallel,
		DependsOn:   deps,
	}
}

func TestNew_CycleDetection(t *testing.T) {
	_, err := New([]*ent.Task{
		task("a", true, "c"),
		task("b", true, "a"),
		task("c", true, "b"),
	})
	require.ErrorIs(t, err, ErrCycle)
}

func TestNew_SelfCycle(t *testing.T) {
	_, err := New([]*ent.Task{task("a", true, "a")})
	require.ErrorIs(t, err, ErrCycle)
}

func TestNew_UnknownDependency(t *testing.T) {
	_, err := New([]*ent.Task{task("a", true, "ghost")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown task")
}

func TestGetReadyTasks_RespectsDependencies(t *testing.T) {
	s, err := New([]*ent.Task{
		task("a", true),
		task("b", true, "a"),
		task("c", true),
	})
	require.NoError(t, err)

	ready := s.GetReadyTasks(10)
	assert.Equal(t, []string{"a", "c"}, ready)

	s.MarkStarted("a")
	s.MarkStarted("c")
	assert.Empty(t, s.GetReadyTasks(10))

	unblocked := s.MarkCompleted("a")
	assert.Empty(t, unblocked)
	assert.Equal(t, []string{"b"}, s.GetReadyTasks(10))
}

func TestGetReadyTasks_LimitAndOrder(t *testing.T) {
	s, err := New([]*ent.Task{
		task("a", true),
		task("b", true),
		task("c", true),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, s.GetReadyTasks(2))
}

func TestGetReadyTasks_SkippedCountsAsSatisfied(t *testing.T) {
	s, err := New([]*ent.Task{
		task("a", true),
		task("b", true, "a"),
	})
	require.NoError(t, err)

	s.MarkStarted("a")
	s.MarkSkipped("a")
	assert.Equal(t, []string{"b"}, s.GetReadyTasks(10))
}

func TestSerialTask_RequiresIdlePool(t *testing.T) {
	s, err := New([]*ent.Task{
		task("a", true),
		task("serial", false),
		task("c", true),
	})
	require.NoError(t, err)

	// Parallel task holds a slot: serial not admitted, later parallel is.
	s.MarkStarted("a")
	assert.Equal(t, []string{"c"}, s.GetReadyTasks(10))

	s.MarkStarted("c")
	s.MarkCompleted("a")
	s.MarkCompleted("c")

	// Idle pool: serial is admitted alone.
	assert.Equal(t, []string{"serial"}, s.GetReadyTasks(10))

	// While it runs, nothing else is admitted.
	s.MarkStarted("serial")
	assert.Empty(t, s.GetReadyTasks(10))

	s.MarkCompleted("serial")
	assert.True(t, s.IsAllDone())
}

func TestMarkFailed_BlocksDependentsTransitively(t *testing.T) {
	s, err := New([]*ent.Task{
		task("a", true),
		task("b", true, "a"),
		task("c", true, "b"),
		task("d", true),
	})
	require.NoError(t, err)

	s.MarkStarted("a")
	blocked := s.MarkFailed("a")
	assert.ElementsMatch(t, []string{"b", "c"}, blocked)

	status, ok := s.Status("b")
	require.True(t, ok)
	assert.Equal(t, enttask.StatusBlocked, status)

	// Unrelated task still runs.
	assert.Equal(t, []string{"d"}, s.GetReadyTasks(10))
	assert.False(t, s.IsTerminated())

	s.MarkStarted("d")
	s.MarkCompleted("d")
	assert.True(t, s.IsTerminated())
	assert.False(t, s.IsAllDone())
}

func TestMarkTimeout_ReleasesSlot(t *testing.T) {
	s, err := New([]*ent.Task{
		task("a", true),
		task("b", true),
	})
	require.NoError(t, err)

	s.MarkStarted("a")
	assert.Equal(t, 1, s.RunningCount())
	s.MarkTimeout("a")
	assert.Equal(t, 0, s.RunningCount())

	status, _ := s.Status("a")
	assert.Equal(t, enttask.StatusTimeout, status)
}

func TestNew_ResumesInProgressTasks(t *testing.T) {
	inProgress := task("a", false)
	inProgress.Status = enttask.StatusInProgress

	s, err := New([]*ent.Task{
		inProgress,
		task("b", true),
	})
	require.NoError(t, err)

	// The resumed serial task excludes new admissions.
	assert.Empty(t, s.GetReadyTasks(10))
	assert.Equal(t, 1, s.RunningCount())
}

func TestIsTerminated_WaitsForRunning(t *testing.T) {
	s, err := New([]*ent.Task{task("a", true)})
	require.NoError(t, err)

	assert.False(t, s.IsTerminated())
	s.MarkStarted("a")
	assert.False(t, s.IsTerminated())
	s.MarkCompleted("a")
	assert.True(t, s.IsTerminated())
	assert.True(t, s.IsAllDone())
}
