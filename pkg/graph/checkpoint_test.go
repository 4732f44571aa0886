package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	testdb "github.com/TheSmartAz/instant-coffee-sub001/test/database"
)

func TestMemoryCheckpointer(t *testing.T) {
	cp := NewMemoryCheckpointer()
	ctx := context.Background()

	_, err := cp.Get(ctx, "t1")
	assert.ErrorIs(t, err, ErrNoCheckpoint)

	state := map[string]interface{}{"user_input": "hello", "current_node": "brief"}
	require.NoError(t, cp.Put(ctx, "t1", Checkpoint{State: state, Node: NodeBrief}))

	// The stored copy must not alias the caller's map.
	state["user_input"] = "mutated"

	got, err := cp.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, NodeBrief, got.Node)
	assert.Equal(t, "hello", got.State["user_input"])

	require.NoError(t, cp.Put(ctx, "t1", Checkpoint{State: map[string]interface{}{"user_input": "v2"}, Node: NodeVerify}))
	got, err = cp.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, NodeVerify, got.Node)
	assert.Equal(t, "v2", got.State["user_input"])

	require.NoError(t, cp.Delete(ctx, "t1"))
	_, err = cp.Get(ctx, "t1")
	assert.ErrorIs(t, err, ErrNoCheckpoint)
}

func TestSQLCheckpointer(t *testing.T) {
	client := testdb.NewTestClient(t)
	cp := &sqlCheckpointer{db: client.DB(), dialect: client.Dialect()}
	ctx := context.Background()

	_, err := cp.Get(ctx, "thread-1")
	assert.ErrorIs(t, err, ErrNoCheckpoint)

	require.NoError(t, cp.Put(ctx, "thread-1", Checkpoint{
		State: map[string]interface{}{"user_input": "build a shop", "verify_blocked": true},
		Node:  NodeBrief,
	}))

	got, err := cp.Get(ctx, "thread-1")
	require.NoError(t, err)
	assert.Equal(t, NodeBrief, got.Node)
	assert.Equal(t, "build a shop", got.State["user_input"])
	assert.Equal(t, true, got.State["verify_blocked"])

	// Upsert on the same thread replaces state and node.
	require.NoError(t, cp.Put(ctx, "thread-1", Checkpoint{
		State: map[string]interface{}{"user_input": "revised"},
		Node:  NodeRefineGate,
	}))
	got, err = cp.Get(ctx, "thread-1")
	require.NoError(t, err)
	assert.Equal(t, NodeRefineGate, got.Node)
	assert.Equal(t, "revised", got.State["user_input"])
	_, ok := got.State["verify_blocked"]
	assert.False(t, ok)

	// Threads are independent.
	require.NoError(t, cp.Put(ctx, "thread-2", Checkpoint{State: map[string]interface{}{}, Node: NodeVerify}))
	got, err = cp.Get(ctx, "thread-1")
	require.NoError(t, err)
	assert.Equal(t, NodeRefineGate, got.Node)

	require.NoError(t, cp.Delete(ctx, "thread-1"))
	_, err = cp.Get(ctx, "thread-1")
	assert.ErrorIs(t, err, ErrNoCheckpoint)
	_, err = cp.Get(ctx, "thread-2")
	require.NoError(t, err)
}

func TestNewCheckpointer_Backends(t *testing.T) {
	ctx := context.Background()

	cfg := config.DefaultGraphConfig()
	cfg.Checkpointer = config.CheckpointerOff
	cp, err := NewCheckpointer(ctx, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, cp.Put(ctx, "t", Checkpoint{Node: NodeBrief}))
	_, err = cp.Get(ctx, "t")
	assert.ErrorIs(t, err, ErrNoCheckpoint)

	cfg.Checkpointer = config.CheckpointerMemory
	cp, err = NewCheckpointer(ctx, cfg, nil)
	require.NoError(t, err)
	_, ok := cp.(*MemoryCheckpointer)
	assert.True(t, ok)

	cfg.Checkpointer = "redis"
	_, err = NewCheckpointer(ctx, cfg, nil)
	assert.Error(t, err)
}
