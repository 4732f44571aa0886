// Package config provides the env- and YAML-driven configuration surface
// for the orchestrator. Defaults live next to each concern; Load applies
// YAML (optional) then environment overrides on top of the defaults.
package config

// Config is the umbrella configuration object returned by Load and used
// throughout the application.
type Config struct {
	Server    *ServerConfig    `yaml:"server"`
	Graph     *GraphConfig     `yaml:"graph"`
	Executor  *ExecutorConfig  `yaml:"executor"`
	Policy    *PolicyConfig    `yaml:"tool_policy"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		Server:    DefaultServerConfig(),
		Graph:     DefaultGraphConfig(),
		Executor:  DefaultExecutorConfig(),
		Policy:    DefaultPolicyConfig(),
		Retention: DefaultRetentionConfig(),
	}
}

// Validate checks every sub-config and returns the first error found.
func (c *Config) Validate() error {
	if err := c.Graph.Validate(); err != nil {
		return err
	}
	if err := c.Policy.Validate(); err != nil {
		return err
	}
	if err := c.Executor.Validate(); err != nil {
		return err
	}
	return nil
}
