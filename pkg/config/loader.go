package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load builds the configuration in three layers: built-in defaults, an
// optional YAML file, then environment overrides. The YAML decoder runs
// with KnownFields so typos fail loudly instead of being ignored.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	cfg.Server.CORS.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadYAML merges a YAML config file over the defaults.
func loadYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Info("No config file found, using defaults + env", "path", path)
			return nil
		}
		return fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	slog.Info("Loaded config file", "path", path)
	return nil
}

// applyEnv applies the recognized environment overrides.
func applyEnv(cfg *Config) {
	setString(&cfg.Server.Port, "HTTP_PORT")
	setBool(&cfg.Server.RunAPIEnabled, "RUN_API_ENABLED")

	setString(&cfg.Graph.Checkpointer, "LANGGRAPH_CHECKPOINTER")
	setString(&cfg.Graph.CheckpointURL, "LANGGRAPH_CHECKPOINT_URL")
	setBool(&cfg.Graph.AestheticScoringEnabled, "AESTHETIC_SCORING_ENABLED")
	setBool(&cfg.Graph.VerifyGateEnabled, "VERIFY_GATE_ENABLED")
	setBool(&cfg.Graph.StyleExtractorEnabled, "STYLE_EXTRACTOR_ENABLED")

	setBool(&cfg.Policy.Enabled, "TOOL_POLICY_ENABLED")
	setString(&cfg.Policy.Mode, "TOOL_POLICY_MODE")
	setList(&cfg.Policy.AllowedCmdPrefixes, "TOOL_POLICY_ALLOWED_CMD_PREFIXES")
	setString(&cfg.Policy.ProjectRoot, "TOOL_POLICY_PROJECT_ROOT")
	setInt(&cfg.Policy.LargeOutputBytes, "TOOL_POLICY_LARGE_OUTPUT_BYTES")

	setList(&cfg.Server.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")
	setBool(&cfg.Server.CORS.AllowCredentials, "CORS_ALLOW_CREDENTIALS")
	setList(&cfg.Server.CORS.AllowHeaders, "CORS_ALLOW_HEADERS")
	setList(&cfg.Server.CORS.AllowMethods, "CORS_ALLOW_METHODS")

	setInt(&cfg.Executor.MaxConcurrent, "EXECUTOR_MAX_CONCURRENT")
	setDuration(&cfg.Executor.TaskTimeout, "EXECUTOR_TASK_TIMEOUT")
	setDuration(&cfg.Executor.TaskTimeoutWindow, "EXECUTOR_TASK_TIMEOUT_WINDOW")
	setDuration(&cfg.Executor.RunStalenessWindow, "RUN_STALENESS_WINDOW")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Ignoring invalid boolean env value", "key", key, "value", v)
		return
	}
	*dst = b
}

func setInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring invalid integer env value", "key", key, "value", v)
		return
	}
	*dst = n
}

func setDuration(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("Ignoring invalid duration env value", "key", key, "value", v)
		return
	}
	*dst = d
}

func setList(dst *[]string, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) > 0 {
		*dst = out
	}
}
