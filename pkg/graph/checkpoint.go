package graph

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/database"
)

// ErrNoCheckpoint is returned when a thread has no stored state.
var ErrNoCheckpoint = errors.New("no checkpoint for thread")

// Checkpoint is one thread's parked state.
type Checkpoint struct {
	State map[string]interface{}
	Node  string
}

// Checkpointer persists in-flight graph state keyed by checkpoint thread
// id so a parked run can resume where it stopped.
type Checkpointer interface {
	Put(ctx context.Context, threadID string, cp Checkpoint) error
	Get(ctx context.Context, threadID string) (Checkpoint, error)
	Delete(ctx context.Context, threadID string) error
}

// NewCheckpointer builds the configured backend. The sqlite and postgres
// backends share the core database's checkpoints table unless
// CheckpointURL points elsewhere.
func NewCheckpointer(ctx context.Context, cfg *config.GraphConfig, core *database.Client) (Checkpointer, error) {
	switch cfg.Checkpointer {
	case config.CheckpointerOff:
		return noopCheckpointer{}, nil
	case config.CheckpointerMemory:
		return NewMemoryCheckpointer(), nil
	case config.CheckpointerSQLite, config.CheckpointerPostgres:
		if cfg.CheckpointURL == "" {
			return &sqlCheckpointer{db: core.DB(), dialect: core.Dialect()}, nil
		}
		dbCfg := database.Config{URL: cfg.CheckpointURL}
		client, err := database.NewClient(ctx, dbCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open checkpoint database: %w", err)
		}
		return &sqlCheckpointer{db: client.DB(), dialect: client.Dialect()}, nil
	default:
		return nil, fmt.Errorf("unknown checkpointer backend %q", cfg.Checkpointer)
	}
}

// noopCheckpointer drops everything. Resume is impossible with it; runs
// that interrupt stay parked until cancelled.
type noopCheckpointer struct{}

func (noopCheckpointer) Put(context.Context, string, Checkpoint) error { return nil }
func (noopCheckpointer) Get(context.Context, string) (Checkpoint, error) {
	return Checkpoint{}, ErrNoCheckpoint
}
func (noopCheckpointer) Delete(context.Context, string) error { return nil }

// MemoryCheckpointer keeps checkpoints in process memory. State does not
// survive restarts; suitable for tests and single-node dev.
type MemoryCheckpointer struct {
	mu      sync.Mutex
	threads map[string]Checkpoint
}

// NewMemoryCheckpointer creates an empty in-memory checkpointer.
func NewMemoryCheckpointer() *MemoryCheckpointer {
	return &MemoryCheckpointer{threads: make(map[string]Checkpoint)}
}

func (m *MemoryCheckpointer) Put(_ context.Context, threadID string, cp Checkpoint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(cp.State)
	if err != nil {
		return fmt.Errorf("failed to serialize checkpoint: %w", err)
	}
	var copied map[string]interface{}
	if err := json.Unmarshal(raw, &copied); err != nil {
		return fmt.Errorf("failed to copy checkpoint: %w", err)
	}
	m.threads[threadID] = Checkpoint{State: copied, Node: cp.Node}
	return nil
}

func (m *MemoryCheckpointer) Get(_ context.Context, threadID string) (Checkpoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp, ok := m.threads[threadID]
	if !ok {
		return Checkpoint{}, ErrNoCheckpoint
	}
	return cp, nil
}

func (m *MemoryCheckpointer) Delete(_ context.Context, threadID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.threads, threadID)
	return nil
}

// sqlCheckpointer stores checkpoints in the checkpoints table created by
// the database migrations. Works on both SQLite and PostgreSQL.
type sqlCheckpointer struct {
	db      *stdsql.DB
	dialect string
}

func (s *sqlCheckpointer) Put(ctx context.Context, threadID string, cp Checkpoint) error {
	raw, err := json.Marshal(cp.State)
	if err != nil {
		return fmt.Errorf("failed to serialize checkpoint: %w", err)
	}

	query := `
		INSERT INTO checkpoints (thread_id, ns, state, node, updated_at)
		VALUES ($1, '', $2, $3, $4)
		ON CONFLICT (thread_id, ns)
		DO UPDATE SET state = $2, node = $3, updated_at = $4`
	if s.dialect == dialect.SQLite {
		query = `
			INSERT INTO checkpoints (thread_id, ns, state, node, updated_at)
			VALUES (?, '', ?, ?, ?)
			ON CONFLICT (thread_id, ns)
			DO UPDATE SET state = excluded.state, node = excluded.node, updated_at = excluded.updated_at`
	}

	if _, err := s.db.ExecContext(ctx, query, threadID, string(raw), cp.Node, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	return nil
}

func (s *sqlCheckpointer) Get(ctx context.Context, threadID string) (Checkpoint, error) {
	query := `SELECT state, node FROM checkpoints WHERE thread_id = $1 AND ns = ''`
	if s.dialect == dialect.SQLite {
		query = `SELECT state, node FROM checkpoints WHERE thread_id = ? AND ns = ''`
	}

	var raw, node string
	err := s.db.QueryRowContext(ctx, query, threadID).Scan(&raw, &node)
	if errors.Is(err, stdsql.ErrNoRows) {
		return Checkpoint{}, ErrNoCheckpoint
	}
	if err != nil {
		return Checkpoint{}, fmt.Errorf("failed to read checkpoint: %w", err)
	}

	var state map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return Checkpoint{}, fmt.Errorf("failed to deserialize checkpoint: %w", err)
	}
	return Checkpoint{State: state, Node: node}, nil
}

func (s *sqlCheckpointer) Delete(ctx context.Context, threadID string) error {
	query := `DELETE FROM checkpoints WHERE thread_id = $1 AND ns = ''`
	if s.dialect == dialect.SQLite {
		query = `DELETE FROM checkpoints WHERE thread_id = ? AND ns = ''`
	}
	if _, err := s.db.ExecContext(ctx, query, threadID); err != nil {
		return fmt.Errorf("failed to delete checkpoint: %w", err)
	}
	return nil
}
