package config

import "fmt"

// Checkpointer backend names accepted by LANGGRAPH_CHECKPOINTER.
const (
	CheckpointerMemory   = "memory"
	CheckpointerSQLite   = "sqlite"
	CheckpointerPostgres = "postgres"
	CheckpointerOff      = "off"
)

// GraphConfig controls the static graph executor.
type GraphConfig struct {
	// Checkpointer selects the backend: memory, sqlite, postgres, off.
	Checkpointer string `yaml:"checkpointer"`

	// CheckpointURL overrides the checkpoint DB URL. Empty means reuse
	// the core DATABASE_URL.
	CheckpointURL string `yaml:"checkpoint_url"`

	// Node toggles. Disabled nodes stay in the graph but pass state
	// through unchanged, keeping checkpoint threads replayable across
	// configuration changes.
	AestheticScoringEnabled bool `yaml:"aesthetic_scoring_enabled"`
	VerifyGateEnabled       bool `yaml:"verify_gate_enabled"`
	StyleExtractorEnabled   bool `yaml:"style_extractor_enabled"`

	// Retry attempts per node class.
	IONodeMaxAttempts  int `yaml:"io_node_max_attempts"`
	LLMNodeMaxAttempts int `yaml:"llm_node_max_attempts"`
}

// DefaultGraphConfig returns the built-in graph defaults.
func DefaultGraphConfig() *GraphConfig {
	return &GraphConfig{
		Checkpointer:            CheckpointerMemory,
		AestheticScoringEnabled: true,
		VerifyGateEnabled:       true,
		StyleExtractorEnabled:   true,
		IONodeMaxAttempts:       2,
		LLMNodeMaxAttempts:      3,
	}
}

// Validate rejects unknown checkpointer backends.
func (c *GraphConfig) Validate() error {
	switch c.Checkpointer {
	case CheckpointerMemory, CheckpointerSQLite, CheckpointerPostgres, CheckpointerOff:
		return nil
	default:
		return fmt.Errorf("invalid checkpointer %q: must be memory, sqlite, postgres, or off", c.Checkpointer)
	}
}
