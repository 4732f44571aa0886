// Package database provides the core database client and migration
// utilities. The core DB is selected by DATABASE_URL: a postgres:// URL
// uses pgx, anything else is treated as a SQLite path.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	_ "github.com/mattn/go-sqlite3"    // sqlite3 driver for database/sql

	"github.com/TheSmartAz/instant-coffee-sub001/ent"
)

//go:embed migrations
var migrationsFS embed.FS

// Config holds database configuration.
type Config struct {
	// URL is the DATABASE_URL value. postgres://... selects pgx;
	// everything else is a SQLite file path (":memory:" allowed).
	URL string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// LoadConfigFromEnv builds a Config from environment variables.
func LoadConfigFromEnv() (Config, error) {
	u := os.Getenv("DATABASE_URL")
	if u == "" {
		u = "instant-coffee.db"
	}
	return Config{
		URL:             u,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

// IsPostgres reports whether the configured URL selects PostgreSQL.
func (c Config) IsPostgres() bool {
	return strings.HasPrefix(c.URL, "postgres://") || strings.HasPrefix(c.URL, "postgresql://")
}

// Client wraps the Ent client and provides access to the underlying
// database connection.
type Client struct {
	*ent.Client
	db      *stdsql.DB
	dialect string
}

// DB returns the underlying connection for health checks and raw queries.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// Dialect returns dialect.Postgres or dialect.SQLite.
func (c *Client) Dialect() string {
	return c.dialect
}

// NewClientFromEnt wraps an existing Ent client (useful for testing).
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB, dialectName string) *Client {
	return &Client{Client: entClient, db: db, dialect: dialectName}
}

// NewClient opens the core database, applies the schema, and runs any
// pending migrations.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var (
		db          *stdsql.DB
		dialectName string
		err         error
	)

	if cfg.IsPostgres() {
		dialectName = dialect.Postgres
		db, err = stdsql.Open("pgx", cfg.URL)
	} else {
		dialectName = dialect.SQLite
		db, err = stdsql.Open("sqlite3", sqliteDSN(cfg.URL))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialectName == dialect.SQLite {
		// SQLite serializes writers; a pool of open connections only
		// produces SQLITE_BUSY under load.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	drv := entsql.OpenDB(dialectName, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Ent owns the entity tables on both dialects.
	if err := entClient.Schema.Create(ctx); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	// Supplemental SQL (checkpoints table, partial indexes) is managed by
	// golang-migrate on PostgreSQL and applied inline on SQLite.
	if dialectName == dialect.Postgres {
		if err := runMigrations(db, cfg); err != nil {
			_ = entClient.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	} else {
		if err := applySQLiteSupplemental(ctx, db); err != nil {
			_ = entClient.Close()
			return nil, fmt.Errorf("failed to apply sqlite supplemental DDL: %w", err)
		}
	}

	return &Client{Client: entClient, db: db, dialect: dialectName}, nil
}

// sqliteDSN normalizes a SQLite path into a DSN with WAL and a busy
// timeout. ":memory:" gets a shared cache so the single pooled connection
// and any extra ones see the same database.
func sqliteDSN(path string) string {
	if path == ":memory:" || strings.Contains(path, "mode=memory") {
		return "file::memory:?cache=shared&_fk=1"
	}
	p := strings.TrimPrefix(path, "sqlite://")
	q := url.Values{}
	q.Set("_fk", "1")
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "5000")
	return "file:" + p + "?" + q.Encode()
}

// runMigrations applies embedded SQL migrations using golang-migrate.
// Only used on PostgreSQL; SQLite gets the equivalent DDL inline.
func runMigrations(db *stdsql.DB, cfg Config) error {
	hasMigrations, err := hasEmbeddedMigrations()
	if err != nil {
		return fmt.Errorf("failed to check embedded migrations: %w", err)
	}
	if !hasMigrations {
		return errors.New("no embedded migration files found — binary may be built incorrectly")
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "instant_coffee", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Close only the source driver. m.Close() would also close the database
	// driver, which closes the shared *sql.DB and breaks the Ent client.
	if err := sourceDriver.Close(); err != nil {
		return fmt.Errorf("failed to close migration source: %w", err)
	}

	return nil
}

// applySQLiteSupplemental creates the checkpoints table on SQLite, where
// golang-migrate is not wired in.
func applySQLiteSupplemental(ctx context.Context, db *stdsql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS checkpoints (
			thread_id  TEXT NOT NULL,
			ns         TEXT NOT NULL DEFAULT '',
			state      TEXT NOT NULL,
			node       TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (thread_id, ns)
		)`)
	if err != nil {
		return fmt.Errorf("failed to create checkpoints table: %w", err)
	}
	return nil
}

// hasEmbeddedMigrations checks whether the embedded FS contains .sql files.
func hasEmbeddedMigrations() (bool, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read embedded migrations: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			return true, nil
		}
	}
	return false, nil
}
