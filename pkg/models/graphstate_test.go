package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphState_ToMapOmitsRuntime(t *testing.T) {
	state := &GraphState{
		UserInput: "build a shop",
		Runtime:   map[string]interface{}{"workspace_handle": struct{}{}},
	}

	m := state.ToMap()
	assert.Equal(t, "build a shop", m["user_input"])
	_, ok := m["Runtime"]
	assert.False(t, ok)
	_, ok = m["workspace_handle"]
	assert.False(t, ok)
}

func TestGraphState_Clone(t *testing.T) {
	handle := map[string]interface{}{"conn": "live"}
	state := &GraphState{
		UserInput:   "hello",
		StyleTokens: map[string]interface{}{"primary": "#111"},
		Runtime:     handle,
	}

	clone := state.Clone()
	clone.StyleTokens["primary"] = "#222"
	assert.Equal(t, "#111", state.StyleTokens["primary"])

	// Runtime handles are shared by reference.
	assert.Equal(t, map[string]interface{}(handle), clone.Runtime)
}

func TestStateFromMap_Roundtrip(t *testing.T) {
	state := &GraphState{
		UserInput:     "hello",
		BuildStatus:   "success",
		VerifyBlocked: true,
		Pages: []map[string]interface{}{
			{"slug": "index", "title": "Home"},
		},
	}

	out := StateFromMap(state.ToMap())
	require.NotNil(t, out)
	assert.Equal(t, state.UserInput, out.UserInput)
	assert.Equal(t, state.BuildStatus, out.BuildStatus)
	assert.True(t, out.VerifyBlocked)
	require.Len(t, out.Pages, 1)
	assert.Equal(t, "index", out.Pages[0]["slug"])
}

func TestStripEphemeralKeys(t *testing.T) {
	m := map[string]interface{}{
		"user_input":   "hello",
		"mcp_client":   struct{}{},
		"tool_handles": []string{"a"},
		"llm_client":   struct{}{},
	}

	out := StripEphemeralKeys(m)
	assert.Equal(t, "hello", out["user_input"])
	for _, k := range EphemeralStateKeys {
		_, ok := out[k]
		assert.False(t, ok, k)
	}

	assert.Nil(t, StripEphemeralKeys(nil))
}
