// Package policy screens tool invocations before and after execution:
// shell-command allowlisting, filesystem sandboxing, secret detection,
// and large-output truncation. The engine only reports findings; the
// caller decides whether a blocked call actually aborts.
package policy

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
)

// Finding severities.
const (
	SeverityWarn  = "warn"
	SeverityBlock = "block"
)

// Finding is one policy violation or advisory.
type Finding struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Decision is the engine's verdict for one check.
type Decision struct {
	Allowed  bool      `json:"allowed"`
	Findings []Finding `json:"findings,omitempty"`
}

// TruncatedOutput replaces oversized tool results.
type TruncatedOutput struct {
	Truncated    bool   `json:"truncated"`
	Preview      string `json:"preview"`
	OriginalSize int    `json:"original_size"`
	MaxSize      int    `json:"max_size"`
}

// Engine evaluates tool calls against the configured policy.
type Engine struct {
	cfg         *config.PolicyConfig
	projectRoot string
}

// NewEngine creates an engine. An empty ProjectRoot resolves to the
// process working directory.
func NewEngine(cfg *config.PolicyConfig) *Engine {
	if cfg == nil {
		cfg = config.DefaultPolicyConfig()
	}
	root := cfg.ProjectRoot
	if root == "" {
		if wd, err := os.Getwd(); err == nil {
			root = wd
		}
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Engine{cfg: cfg, projectRoot: root}
}

// PreToolCheck screens a tool invocation before it runs.
func (e *Engine) PreToolCheck(toolName string, args map[string]interface{}) Decision {
	if !e.cfg.Enabled || e.cfg.Mode == config.PolicyModeOff {
		return Decision{Allowed: true}
	}

	var findings []Finding
	if isShellTool(toolName) {
		findings = append(findings, e.checkCommand(args)...)
	}
	findings = append(findings, e.checkPaths(args)...)
	findings = append(findings, scanSensitive("", args)...)

	return e.decide(toolName, findings)
}

// PostToolCheck screens a tool result and truncates oversized output.
// The returned output is nil when the result fits.
func (e *Engine) PostToolCheck(toolName, result string) (Decision, *TruncatedOutput) {
	if !e.cfg.Enabled || e.cfg.Mode == config.PolicyModeOff {
		return Decision{Allowed: true}, nil
	}

	var findings []Finding
	for _, pattern := range secretPatterns {
		if pattern.Regex.MatchString(result) {
			findings = append(findings, Finding{
				Rule:     "sensitive_output:" + pattern.Name,
				Severity: SeverityBlock,
				Message:  fmt.Sprintf("tool output matches %s pattern", pattern.Name),
			})
		}
	}

	var truncated *TruncatedOutput
	if max := e.cfg.LargeOutputBytes; max > 0 && len(result) > max {
		truncated = &TruncatedOutput{
			Truncated:    true,
			Preview:      result[:max],
			OriginalSize: len(result),
			MaxSize:      max,
		}
		findings = append(findings, Finding{
			Rule:     "large_output",
			Severity: SeverityWarn,
			Message:  fmt.Sprintf("output of %d bytes truncated to %d", len(result), max),
		})
	}

	return e.decide(toolName, findings), truncated
}

// decide applies the policy mode: log_only downgrades blocks to warns.
func (e *Engine) decide(toolName string, findings []Finding) Decision {
	blocked := false
	for i := range findings {
		if findings[i].Severity != SeverityBlock {
			continue
		}
		if e.cfg.Mode == config.PolicyModeLogOnly {
			findings[i].Severity = SeverityWarn
			slog.Warn("Tool policy violation (log only)",
				"tool", toolName, "rule", findings[i].Rule, "message", findings[i].Message)
			continue
		}
		blocked = true
	}
	return Decision{Allowed: !blocked, Findings: findings}
}

// isShellTool reports whether the tool name hints at command execution.
func isShellTool(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "shell") ||
		strings.Contains(lower, "exec") ||
		strings.Contains(lower, "bash") ||
		strings.Contains(lower, "command")
}

// checkCommand validates the first token of the command against the
// allowlist.
func (e *Engine) checkCommand(args map[string]interface{}) []Finding {
	cmd := ""
	for _, key := range []string{"command", "cmd", "script"} {
		if v, ok := args[key].(string); ok && v != "" {
			cmd = v
			break
		}
	}
	if cmd == "" {
		return nil
	}

	tokens := strings.Fields(cmd)
	if len(tokens) == 0 {
		return nil
	}
	base := filepath.Base(tokens[0])
	for _, allowed := range e.cfg.AllowedCmdPrefixes {
		if base == allowed {
			return nil
		}
	}
	return []Finding{{
		Rule:     "command_allowlist",
		Severity: SeverityBlock,
		Message:  fmt.Sprintf("command %q is not in the allowlist", base),
	}}
}

// checkPaths verifies that recognized path arguments resolve under the
// project root.
func (e *Engine) checkPaths(args map[string]interface{}) []Finding {
	var findings []Finding
	for _, key := range pathArgKeys {
		raw, ok := args[key].(string)
		if !ok || raw == "" {
			continue
		}
		resolved := raw
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(e.projectRoot, resolved)
		}
		resolved = filepath.Clean(resolved)
		if resolved != e.projectRoot && !strings.HasPrefix(resolved, e.projectRoot+string(filepath.Separator)) {
			findings = append(findings, Finding{
				Rule:     "path_boundary",
				Severity: SeverityBlock,
				Message:  fmt.Sprintf("path %q escapes the project root", raw),
			})
		}
	}
	return findings
}

// scanSensitive walks an argument tree for credential field names and
// secret-shaped strings.
func scanSensitive(prefix string, value interface{}) []Finding {
	var findings []Finding
	switch v := value.(type) {
	case map[string]interface{}:
		for key, child := range v {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			if str, ok := child.(string); ok && str != "" && isSensitiveField(key) {
				findings = append(findings, Finding{
					Rule:     "sensitive_field",
					Severity: SeverityBlock,
					Message:  fmt.Sprintf("argument %q carries a credential value", path),
				})
				continue
			}
			findings = append(findings, scanSensitive(path, child)...)
		}
	case []interface{}:
		for i, child := range v {
			findings = append(findings, scanSensitive(fmt.Sprintf("%s[%d]", prefix, i), child)...)
		}
	case string:
		for _, pattern := range secretPatterns {
			if pattern.Regex.MatchString(v) {
				findings = append(findings, Finding{
					Rule:     "sensitive_content:" + pattern.Name,
					Severity: SeverityBlock,
					Message:  fmt.Sprintf("argument %q matches %s pattern", prefix, pattern.Name),
				})
				break
			}
		}
	}
	return findings
}

func isSensitiveField(key string) bool {
	lower := strings.ToLower(key)
	for _, name := range sensitiveFieldNames {
		if lower == name {
			return true
		}
	}
	return false
}
