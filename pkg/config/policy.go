package config

import "fmt"

// Policy modes.
const (
	PolicyModeOff     = "off"
	PolicyModeLogOnly = "log_only"
	PolicyModeEnforce = "enforce"
)

// PolicyConfig controls the tool-invocation policy engine.
type PolicyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"`

	// AllowedCmdPrefixes is the shell command allowlist; the basename of
	// a command's first token must match one of these.
	AllowedCmdPrefixes []string `yaml:"allowed_cmd_prefixes"`

	// ProjectRoot is the path sandbox boundary. Empty means the process
	// working directory.
	ProjectRoot string `yaml:"project_root"`

	// LargeOutputBytes is the post-tool truncation threshold.
	LargeOutputBytes int `yaml:"large_output_bytes"`
}

// DefaultPolicyConfig returns the built-in policy defaults.
func DefaultPolicyConfig() *PolicyConfig {
	return &PolicyConfig{
		Enabled: true,
		Mode:    PolicyModeEnforce,
		AllowedCmdPrefixes: []string{
			"npm", "npx", "node", "python", "pip", "git", "ls", "cat", "echo", "mkdir", "cp",
		},
		LargeOutputBytes: 100 * 1024,
	}
}

// Validate rejects unknown policy modes.
func (c *PolicyConfig) Validate() error {
	switch c.Mode {
	case PolicyModeOff, PolicyModeLogOnly, PolicyModeEnforce:
		return nil
	default:
		return fmt.Errorf("invalid tool policy mode %q: must be off, log_only, or enforce", c.Mode)
	}
}
