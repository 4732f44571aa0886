package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Server.RunAPIEnabled)
	assert.Equal(t, CheckpointerMemory, cfg.Graph.Checkpointer)
	assert.Equal(t, 5, cfg.Executor.MaxConcurrent)
	assert.Equal(t, PolicyModeEnforce, cfg.Policy.Mode)
	assert.Equal(t, 2, cfg.Retention.MaxPinned)
	assert.Equal(t, 5, cfg.Retention.MaxAuto)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  run_api_enabled: false
graph:
  checkpointer: sqlite
executor:
  max_concurrent: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Server.RunAPIEnabled)
	assert.Equal(t, CheckpointerSQLite, cfg.Graph.Checkpointer)
	assert.Equal(t, 2, cfg.Executor.MaxConcurrent)

	// Untouched sections keep their defaults.
	assert.Equal(t, PolicyModeEnforce, cfg.Policy.Mode)
}

func TestLoad_UnknownYAMLFieldFails(t *testing.T) {
	path := writeConfig(t, "server:\n  prot: \"9090\"\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"9090\"\n")
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("LANGGRAPH_CHECKPOINTER", "off")
	t.Setenv("TOOL_POLICY_MODE", "log_only")
	t.Setenv("TOOL_POLICY_ALLOWED_CMD_PREFIXES", "npm, node ,")
	t.Setenv("EXECUTOR_TASK_TIMEOUT", "90s")
	t.Setenv("RUN_API_ENABLED", "not-a-bool")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, CheckpointerOff, cfg.Graph.Checkpointer)
	assert.Equal(t, PolicyModeLogOnly, cfg.Policy.Mode)
	assert.Equal(t, []string{"npm", "node"}, cfg.Policy.AllowedCmdPrefixes)
	assert.Equal(t, 90*time.Second, cfg.Executor.TaskTimeout)

	// Unparseable values are ignored, not fatal.
	assert.True(t, cfg.Server.RunAPIEnabled)
}

func TestLoad_InvalidCheckpointerRejected(t *testing.T) {
	t.Setenv("LANGGRAPH_CHECKPOINTER", "redis")
	_, err := Load("")
	assert.Error(t, err)
}

func TestCORSNormalize(t *testing.T) {
	cors := CORSConfig{AllowOrigins: []string{"*"}, AllowCredentials: true}
	assert.True(t, cors.Normalize())
	assert.False(t, cors.AllowCredentials)

	cors = CORSConfig{AllowOrigins: []string{"https://app.example.com"}, AllowCredentials: true}
	assert.False(t, cors.Normalize())
	assert.True(t, cors.AllowCredentials)
}
